// Package srcref implements a source-reference injector: a small
// traversal that assigns a fresh, monotonically increasing SourceRef to
// a parsed module's own position plus each of its top-level imports and
// declarations.
//
// This is deliberately a minimal stand-in (see spec §1, §4.2): ParseModule
// invokes Inject once on the finished module. Deep, expression-level
// tagging and real back-mapping to source locations is a concern of the
// (out-of-scope) generic-programming source-reference injector this
// package stands in for.
package srcref

import (
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/position"
)

// Injector hands out fresh SourceRef values in increasing order.
type Injector struct {
	path []int
	next int
}

// New creates an Injector starting its counter at 1.
func New() *Injector {
	return &Injector{next: 1}
}

// Next returns a fresh SourceRef tagged with the injector's current path
// plus a monotonically increasing counter, matching the "integer-list tag"
// shape from spec §3.1.
func (inj *Injector) Next() position.SourceRef {
	tag := inj.next
	inj.next++
	tags := make([]int, len(inj.path)+1)
	copy(tags, inj.path)
	tags[len(inj.path)] = tag
	return position.NewSourceRef(tags...)
}

// Descend runs fn with the injector's path extended by one level, then
// restores it. Callers use this while walking into nested AST structure
// (e.g. a declaration list, then each declaration's sub-fields) so that
// refs assigned deeper in the tree carry a longer tag path.
func (inj *Injector) Descend(fn func()) {
	inj.path = append(inj.path, inj.next)
	fn()
	inj.path = inj.path[:len(inj.path)-1]
}

// Inject tags m's own position, each top-level import, and each top-level
// declaration with a fresh SourceRef. It mutates m in place and returns it
// for convenience at the ParseModule call site. A nil module is returned
// unchanged.
func Inject(m *ast.Module) *ast.Module {
	if m == nil {
		return m
	}
	inj := New()
	m.Name = m.Name.WithPos(m.Name.Pos().WithRef(inj.Next()))
	inj.Descend(func() {
		for i := range m.Imports {
			m.Imports[i].ImportPos = m.Imports[i].ImportPos.WithRef(inj.Next())
		}
		for _, d := range m.Decls {
			tagDeclPos(d, inj.Next())
		}
	})
	return m
}

// tagDeclPos overwrites d's own position with ref. Every concrete Decl in
// pkg/ast stores its position in a DeclPos field reachable only through a
// type switch, since the Decl interface exposes Pos() but no setter.
func tagDeclPos(d ast.Decl, ref position.SourceRef) {
	switch v := d.(type) {
	case *ast.FuncDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.DataDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.NewtypeDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.TypeSynonymDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.FixityDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.TypeSigDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.ForeignDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.ExternalDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.PatternDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	case *ast.FreeDecl:
		v.DeclPos = v.DeclPos.WithRef(ref)
	}
}
