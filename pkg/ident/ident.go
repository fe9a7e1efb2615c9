// Package ident defines the identifier data model shared by the surface
// AST and the flat IR: plain identifiers, module-qualified identifiers,
// and module names.
package ident

import (
	"strings"

	"github.com/curryfront/curryfront/pkg/position"
)

// Ident is a source identifier: its position, its (immutable) name, and a
// unique index assigned by later renaming passes. The index is zero until
// a renaming pass sets it; within a single module, after renaming, it is
// unique.
type Ident struct {
	pos  position.Position
	name string
	idx  int
}

// NewIdent creates an Ident with no assigned index.
func NewIdent(pos position.Position, name string) Ident {
	return Ident{pos: pos, name: name}
}

// Pos returns the identifier's position.
func (i Ident) Pos() position.Position { return i.pos }

// Name returns the identifier's name. Names are immutable: there is no
// SetName.
func (i Ident) Name() string { return i.name }

// Index returns the identifier's unique index (0 if unassigned).
func (i Ident) Index() int { return i.idx }

// WithPos returns a copy of i with its position updated.
func (i Ident) WithPos(pos position.Position) Ident {
	i.pos = pos
	return i
}

// WithIndex returns a copy of i with its unique index updated.
func (i Ident) WithIndex(idx int) Ident {
	i.idx = idx
	return i
}

// IsConstructorLike reports whether name is syntactically a constructor
// identifier: starts with an uppercase letter, or is the special cons
// constructor symbol ":".
func IsConstructorLike(name string) bool {
	if name == ":" {
		return true
	}
	if name == "" {
		return false
	}
	r := rune(name[0])
	return r >= 'A' && r <= 'Z'
}

// ModuleIdent is a module name: a sequence of dot-separated name
// components, plus the position where it was written.
type ModuleIdent struct {
	pos   position.Position
	parts []string
}

// NewModuleIdent builds a ModuleIdent from its dot-separated components.
func NewModuleIdent(pos position.Position, parts ...string) ModuleIdent {
	cp := make([]string, len(parts))
	copy(cp, parts)
	return ModuleIdent{pos: pos, parts: cp}
}

// ParseModuleIdent splits a dotted module path string ("Data.Map") into a
// ModuleIdent.
func ParseModuleIdent(pos position.Position, dotted string) ModuleIdent {
	return NewModuleIdent(pos, strings.Split(dotted, ".")...)
}

// Main is the canonical default module name used when a source file has no
// module header (spec §4.6): capitalized per Curry/Haskell-family module
// naming convention.
var Main = NewModuleIdent(position.None(), "Main")

// Pos returns the module identifier's position.
func (m ModuleIdent) Pos() position.Position { return m.pos }

// Parts returns the dot-separated name components.
func (m ModuleIdent) Parts() []string {
	cp := make([]string, len(m.parts))
	copy(cp, m.parts)
	return cp
}

// String renders the module name dot-joined, e.g. "Data.Map".
func (m ModuleIdent) String() string {
	return strings.Join(m.parts, ".")
}

// Equal compares two module identifiers by name only; position is
// invisible to equality, matching Position's own convention.
func (m ModuleIdent) Equal(o ModuleIdent) bool {
	return m.String() == o.String()
}

// WithPos returns a copy of m with its position updated.
func (m ModuleIdent) WithPos(pos position.Position) ModuleIdent {
	m.pos = pos
	return m
}

// QualifiedIdent is an identifier optionally qualified by a module name.
// Qualification is syntactic, not semantic: a nil Module denotes an
// unqualified reference in source, to be resolved by later (out-of-scope)
// semantic passes.
type QualifiedIdent struct {
	Module *ModuleIdent
	Ident  Ident
}

// NewUnqualified builds a QualifiedIdent with no module qualifier.
func NewUnqualified(id Ident) QualifiedIdent {
	return QualifiedIdent{Ident: id}
}

// NewQualified builds a QualifiedIdent qualified by the given module.
func NewQualified(mod ModuleIdent, id Ident) QualifiedIdent {
	m := mod
	return QualifiedIdent{Module: &m, Ident: id}
}

// Qualified reports whether q carries an explicit module qualifier.
func (q QualifiedIdent) Qualified() bool { return q.Module != nil }

// String renders the qualified identifier as "Module.name", or just "name"
// when unqualified.
func (q QualifiedIdent) String() string {
	if q.Module == nil {
		return q.Ident.Name()
	}
	return q.Module.String() + "." + q.Ident.Name()
}

// WithModule returns a copy of q re-qualified by the given module name,
// leaving the unqualified Ident untouched. Passing nil makes q
// unqualified.
func (q QualifiedIdent) WithModule(mod *ModuleIdent) QualifiedIdent {
	q.Module = mod
	return q
}
