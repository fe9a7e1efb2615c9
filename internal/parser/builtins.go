package parser

import (
	"strings"

	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/token"
)

// The built-in type and data constructors ([], (), (->), (,), (,,), ...)
// have no source-level declaration; when surface syntax denotes one of
// them directly ("[]", "()", "(->)", a bare comma run inside parens) the
// parser builds its QualifiedIdent by hand, unqualified, exactly as the
// corresponding literal/tuple/list AST node would reference it.

func builtinListCons(tok token.Token) ident.QualifiedIdent {
	return ident.NewUnqualified(ident.NewIdent(tok.Pos, "[]"))
}

func builtinUnitCons(tok token.Token) ident.QualifiedIdent {
	return ident.NewUnqualified(ident.NewIdent(tok.Pos, "()"))
}

func builtinArrowCons(tok token.Token) ident.QualifiedIdent {
	return ident.NewUnqualified(ident.NewIdent(tok.Pos, "(->)"))
}

// builtinTupleCons names the n-ary tuple constructor, e.g. "(,)" for pairs,
// "(,,)" for triples.
func builtinTupleCons(tok token.Token, n int) ident.QualifiedIdent {
	return ident.NewUnqualified(ident.NewIdent(tok.Pos, "("+strings.Repeat(",", n-1)+")"))
}
