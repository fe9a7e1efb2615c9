// Package position tracks source locations and the opaque back-reference
// tags attached to AST nodes for later re-mapping to original source.
package position

import "fmt"

// SourceRef is an opaque integer-list tag used only for later back-mapping
// of IR or desugared nodes to their originating source locations.
//
// By design SourceRef carries no observable identity: two refs always
// compare equal, order equal, and render as the empty string. Only the
// reference-injection machinery (internal/srcref) distinguishes them
// internally, by holding onto the tag slice it produced.
type SourceRef struct {
	tags []int
}

// NoRef is the zero-value, untagged SourceRef.
var NoRef = SourceRef{}

// NewSourceRef builds a SourceRef from a tag path (e.g. the path a generic
// traversal took to reach the node being tagged).
func NewSourceRef(tags ...int) SourceRef {
	cp := make([]int, len(tags))
	copy(cp, tags)
	return SourceRef{tags: cp}
}

// Tags returns the underlying tag path. It exists for tooling that needs to
// back-map a reference to a location; ordinary comparisons must not use it.
func (r SourceRef) Tags() []int { return r.tags }

// Equal always returns true: SourceRef identity is invisible to equality.
func (r SourceRef) Equal(SourceRef) bool { return true }

// Compare always returns 0: SourceRef ordering is invisible.
func (r SourceRef) Compare(SourceRef) int { return 0 }

// String always returns "": SourceRef has no textual representation.
func (r SourceRef) String() string { return "" }

// Kind distinguishes the three shapes a Position can take.
type Kind int

const (
	// KindNone is a position carrying no location information at all.
	KindNone Kind = iota
	// KindConcrete is a position anchored to a file, line, and column.
	KindConcrete
	// KindASTOnly is a position that exists only to carry a SourceRef,
	// with no textual location (e.g. a synthesized node).
	KindASTOnly
)

// Position is one of: concrete (file, 1-based line, 1-based column, ref),
// ast-only (ref), or none.
//
// Equality and ordering treat the SourceRef as invisible: two positions
// with the same file/line/column are equal regardless of which reference
// they carry.
type Position struct {
	kind   Kind
	file   string
	line   int
	column int
	ref    SourceRef
}

// None is the position carrying no information.
func None() Position { return Position{kind: KindNone} }

// First returns the starting position of a file: line 1, column 1.
func First(file string) Position {
	return Position{kind: KindConcrete, file: file, line: 1, column: 1}
}

// NewConcrete builds a concrete position at the given file/line/column.
func NewConcrete(file string, line, column int) Position {
	return Position{kind: KindConcrete, file: file, line: line, column: column}
}

// ASTOnly builds a position that carries only a SourceRef.
func ASTOnly(ref SourceRef) Position {
	return Position{kind: KindASTOnly, ref: ref}
}

// WithRef returns a copy of p carrying the given SourceRef.
func (p Position) WithRef(ref SourceRef) Position {
	p.ref = ref
	return p
}

// Kind reports which shape this position takes.
func (p Position) Kind() Kind { return p.kind }

// IsConcrete reports whether p carries a file/line/column.
func (p Position) IsConcrete() bool { return p.kind == KindConcrete }

// File returns the file component; "" if not concrete.
func (p Position) File() string { return p.file }

// Line returns the 1-based line; 0 if not concrete.
func (p Position) Line() int { return p.line }

// Column returns the 1-based column; 0 if not concrete.
func (p Position) Column() int { return p.column }

// Ref returns the attached SourceRef.
func (p Position) Ref() SourceRef { return p.ref }

// Incr advances the column of a concrete position by n. It is the identity
// on non-concrete positions.
func Incr(p Position, n int) Position {
	if p.kind != KindConcrete {
		return p
	}
	p.column += n
	return p
}

// Tab advances a concrete position's column to the next multiple of 8,
// plus 1 (tab stops at every 8th column). Identity on non-concrete positions.
func Tab(p Position) Position {
	if p.kind != KindConcrete {
		return p
	}
	p.column = ((p.column-1)/8+1)*8 + 1
	return p
}

// Nl resets a concrete position's column to 1 and increments its line.
// Identity on non-concrete positions.
func Nl(p Position) Position {
	if p.kind != KindConcrete {
		return p
	}
	p.column = 1
	p.line++
	return p
}

// Equal compares two positions, ignoring their SourceRef.
func (p Position) Equal(o Position) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case KindConcrete:
		return p.file == o.file && p.line == o.line && p.column == o.column
	default:
		return true
	}
}

// Compare orders two positions, ignoring their SourceRef. Positions of
// different kind order by kind; KindNone < KindConcrete < KindASTOnly.
// Concrete positions order by file, then line, then column.
func (p Position) Compare(o Position) int {
	if p.kind != o.kind {
		if p.kind < o.kind {
			return -1
		}
		return 1
	}
	if p.kind != KindConcrete {
		return 0
	}
	if p.file != o.file {
		if p.file < o.file {
			return -1
		}
		return 1
	}
	if p.line != o.line {
		if p.line < o.line {
			return -1
		}
		return 1
	}
	switch {
	case p.column < o.column:
		return -1
	case p.column > o.column:
		return 1
	default:
		return 0
	}
}

// String renders a position as "file:line.column", matching the error
// text format used throughout the toolchain.
func (p Position) String() string {
	switch p.kind {
	case KindConcrete:
		return fmt.Sprintf("%s:%d.%d", p.file, p.line, p.column)
	default:
		return "<no position>"
	}
}
