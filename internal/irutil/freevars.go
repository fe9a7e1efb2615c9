package irutil

import "github.com/curryfront/curryfront/pkg/ir"

func cloneBoundSet(b map[int]bool) map[int]bool {
	out := make(map[int]bool, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// FreeVars returns the free-variable indices of e, in first-occurrence
// order: every Variable occurrence not bound by an enclosing let binding,
// free declaration, or case/branch pattern (spec §4.7).
func FreeVars(e ir.Expr) []int {
	seen := map[int]bool{}
	var order []int
	var walk func(e ir.Expr, bound map[int]bool)
	walk = func(e ir.Expr, bound map[int]bool) {
		switch n := e.(type) {
		case ir.Variable:
			if !bound[n.Index] && !seen[n.Index] {
				seen[n.Index] = true
				order = append(order, n.Index)
			}
		case ir.LiteralExpr:
		case ir.Combined:
			for _, a := range n.Args {
				walk(a, bound)
			}
		case ir.Let:
			inner := cloneBoundSet(bound)
			for _, b := range n.Bindings {
				inner[b.Var] = true
			}
			for _, b := range n.Bindings {
				walk(b.Expr, inner)
			}
			walk(n.Body, inner)
		case ir.Free:
			inner := cloneBoundSet(bound)
			for _, v := range n.Vars {
				inner[v] = true
			}
			walk(n.Body, inner)
		case ir.Or:
			walk(n.Left, bound)
			walk(n.Right, bound)
		case ir.Case:
			walk(n.Scrutinee, bound)
			for _, br := range n.Branches {
				inner := cloneBoundSet(bound)
				if cp, ok := br.Pattern.(ir.ConstructorPattern); ok {
					for _, v := range cp.Vars {
						inner[v] = true
					}
				}
				walk(br.Expr, inner)
			}
		case ir.Typed:
			walk(n.Expr, bound)
		}
	}
	walk(e, map[int]bool{})
	return order
}
