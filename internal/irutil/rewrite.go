package irutil

import "github.com/curryfront/curryfront/pkg/ir"

// RewriteExpr applies f to every node of e, bottom-up: f sees each node
// only after its children have already been rewritten.
func RewriteExpr(e ir.Expr, f func(ir.Expr) ir.Expr) ir.Expr {
	fold := ExprFold[ir.Expr]{
		Variable: func(v ir.Variable) ir.Expr { return f(v) },
		Literal:  func(l ir.LiteralExpr) ir.Expr { return f(l) },
		Combined: func(c ir.Combined, args []ir.Expr) ir.Expr {
			c.Args = args
			return f(c)
		},
		Let: func(l ir.Let, bindings []ir.Expr, body ir.Expr) ir.Expr {
			newBindings := make([]ir.Binding, len(l.Bindings))
			for i, b := range l.Bindings {
				newBindings[i] = ir.Binding{Var: b.Var, Expr: bindings[i]}
			}
			l.Bindings = newBindings
			l.Body = body
			return f(l)
		},
		Free: func(fr ir.Free, body ir.Expr) ir.Expr {
			fr.Body = body
			return f(fr)
		},
		Or: func(o ir.Or, left, right ir.Expr) ir.Expr {
			o.Left = left
			o.Right = right
			return f(o)
		},
		Case: func(c ir.Case, scrutinee ir.Expr, branchExprs []ir.Expr) ir.Expr {
			newBranches := make([]ir.Branch, len(c.Branches))
			for i, b := range c.Branches {
				newBranches[i] = ir.Branch{Pattern: b.Pattern, Expr: branchExprs[i]}
			}
			c.Scrutinee = scrutinee
			c.Branches = newBranches
			return f(c)
		},
		Branch: func(b ir.Branch, expr ir.Expr) ir.Expr { return expr },
		Typed: func(t ir.Typed, inner ir.Expr) ir.Expr {
			t.Expr = inner
			return f(t)
		},
	}
	return FoldExpr(e, fold)
}

// UpdExprs lifts an expression rewriter through every defined function
// body in a program (spec §4.7).
func UpdExprs(f func(ir.Expr) ir.Expr, p ir.Program) ir.Program {
	newFuncDecls := make([]ir.FuncDecl, len(p.FuncDecls))
	for i, fd := range p.FuncDecls {
		if dr, ok := fd.Rule.(ir.DefinedRule); ok {
			dr.Body = RewriteExpr(dr.Body, f)
			fd.Rule = dr
		}
		newFuncDecls[i] = fd
	}
	p.FuncDecls = newFuncDecls
	return p
}
