package irutil

import (
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/ir"
	"github.com/curryfront/curryfront/pkg/position"
)

// TypeEnv supplies the two lookups typeOf needs: the declared type of a
// bound-variable index, and the declared type of a named function or
// constructor.
type TypeEnv struct {
	VarTypes  map[int]ir.TypeExpr
	FuncTypes map[string]ir.TypeExpr
}

func preludeCons(name string) ir.TypeExpr {
	mod := ident.NewModuleIdent(position.None(), "Prelude")
	return ir.TypeCons{Name: ident.NewQualified(mod, ident.NewIdent(position.None(), name))}
}

// UnknownType is the sentinel returned by TypeOf when an expression's type
// cannot be determined from the available declarations (spec §4.7:
// "typeOf returns unknown when ...").
var UnknownType ir.TypeExpr = preludeCons("_Unknown")

// TypeOf computes the static type of e under env, per spec §4.7: a
// variable's type comes from env, a literal's type is its built-in
// Prelude type, a typed expression carries its own annotation, a
// combination's type is its head's declared type with one function arrow
// peeled per argument, let/free recurse into their body, or tries its
// left branch and falls back to its right, and
// case takes the type of its first branch whose type is determined.
func TypeOf(env TypeEnv, e ir.Expr) (ir.TypeExpr, bool) {
	switch n := e.(type) {
	case ir.Variable:
		t, ok := env.VarTypes[n.Index]
		return t, ok
	case ir.LiteralExpr:
		switch n.Lit.(type) {
		case ir.IntLit:
			return preludeCons("Int"), true
		case ir.FloatLit:
			return preludeCons("Float"), true
		case ir.CharLit:
			return preludeCons("Char"), true
		default:
			return nil, false
		}
	case ir.Typed:
		return n.Type, true
	case ir.Combined:
		head, ok := env.FuncTypes[n.Name.String()]
		if !ok {
			return nil, false
		}
		t := head
		for range n.Args {
			fn, ok := t.(ir.TypeFunc)
			if !ok {
				return UnknownType, true
			}
			t = fn.Range
		}
		return t, true
	case ir.Let:
		return TypeOf(env, n.Body)
	case ir.Free:
		return TypeOf(env, n.Body)
	case ir.Or:
		if t, ok := TypeOf(env, n.Left); ok {
			return t, true
		}
		return TypeOf(env, n.Right)
	case ir.Case:
		for _, b := range n.Branches {
			if t, ok := TypeOf(env, b.Expr); ok {
				return t, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}
