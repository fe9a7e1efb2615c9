// Package irutil implements the flat-IR traversal framework (spec §4.7):
// a single structural fold over Expr, plus the selectors, testers,
// updaters, qualified-name rewriter, renamer, variable renumberer,
// free-variable computation, and typeOf/ground/whnf predicates built on
// top of it.
package irutil

import "github.com/curryfront/curryfront/pkg/ir"

// ExprFold is one callback per Expr variant, plus the two auxiliary
// callbacks the spec calls out separately: one for case branches, one for
// typed expressions. Every selector, tester, updater, and renamer in this
// package is expressible through FoldExpr without further recursion.
type ExprFold[R any] struct {
	Variable func(v ir.Variable) R
	Literal  func(lit ir.LiteralExpr) R
	Combined func(c ir.Combined, args []R) R
	Let      func(l ir.Let, bindings []R, body R) R
	Free     func(fr ir.Free, body R) R
	Or       func(o ir.Or, left, right R) R
	Case     func(c ir.Case, scrutinee R, branches []R) R
	// Branch is the auxiliary callback invoked once per case branch,
	// after its expression has been folded.
	Branch func(b ir.Branch, expr R) R
	// Typed is the auxiliary callback for the expression inside a Typed
	// node, after it has been folded.
	Typed func(t ir.Typed, inner R) R
}

// FoldExpr runs f over e, visiting let-binding right-hand sides,
// free-declaration bodies, or-branches, the case scrutinee and branch
// bodies, and the expression inside typed — exactly the set the spec
// requires (§4.7).
func FoldExpr[R any](e ir.Expr, f ExprFold[R]) R {
	switch n := e.(type) {
	case ir.Variable:
		return f.Variable(n)
	case ir.LiteralExpr:
		return f.Literal(n)
	case ir.Combined:
		args := make([]R, len(n.Args))
		for i, a := range n.Args {
			args[i] = FoldExpr(a, f)
		}
		return f.Combined(n, args)
	case ir.Let:
		bindings := make([]R, len(n.Bindings))
		for i, b := range n.Bindings {
			bindings[i] = FoldExpr(b.Expr, f)
		}
		body := FoldExpr(n.Body, f)
		return f.Let(n, bindings, body)
	case ir.Free:
		body := FoldExpr(n.Body, f)
		return f.Free(n, body)
	case ir.Or:
		left := FoldExpr(n.Left, f)
		right := FoldExpr(n.Right, f)
		return f.Or(n, left, right)
	case ir.Case:
		scrutinee := FoldExpr(n.Scrutinee, f)
		branches := make([]R, len(n.Branches))
		for i, b := range n.Branches {
			inner := FoldExpr(b.Expr, f)
			branches[i] = f.Branch(b, inner)
		}
		return f.Case(n, scrutinee, branches)
	case ir.Typed:
		inner := FoldExpr(n.Expr, f)
		return f.Typed(n, inner)
	default:
		panic("irutil: FoldExpr: unknown Expr variant")
	}
}
