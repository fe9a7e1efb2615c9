package irutil

import "github.com/curryfront/curryfront/pkg/ir"

// IsWHNF reports whether e is already in weak-head normal form: a literal,
// a constructor combination (saturated or partial), or any combination
// whose head is not a plain function call (spec §3.6).
func IsWHNF(e ir.Expr) bool {
	switch n := e.(type) {
	case ir.LiteralExpr:
		return true
	case ir.Combined:
		return n.CombType != ir.FuncCall
	default:
		return false
	}
}

// IsGround reports whether e contains no variables: a literal, or a
// saturated constructor combination every one of whose arguments is
// ground (spec §3.6).
func IsGround(e ir.Expr) bool {
	switch n := e.(type) {
	case ir.LiteralExpr:
		return true
	case ir.Combined:
		if n.CombType != ir.ConsCall {
			return false
		}
		for _, a := range n.Args {
			if !IsGround(a) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
