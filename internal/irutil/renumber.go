package irutil

import "github.com/curryfront/curryfront/pkg/ir"

func renumberPattern(p ir.Pattern, f func(int) int) ir.Pattern {
	if cp, ok := p.(ir.ConstructorPattern); ok {
		newVars := make([]int, len(cp.Vars))
		for i, v := range cp.Vars {
			newVars[i] = f(v)
		}
		cp.Vars = newVars
		return cp
	}
	return p
}

// RenumberVarsInExpr applies f to every bound-variable index occurring in
// e: Variable occurrences, let-binding left sides, free-declaration
// binders, and case-pattern binders.
func RenumberVarsInExpr(e ir.Expr, f func(int) int) ir.Expr {
	fold := ExprFold[ir.Expr]{
		Variable: func(v ir.Variable) ir.Expr {
			v.Index = f(v.Index)
			return v
		},
		Literal: func(l ir.LiteralExpr) ir.Expr { return l },
		Combined: func(c ir.Combined, args []ir.Expr) ir.Expr {
			c.Args = args
			return c
		},
		Let: func(l ir.Let, bindings []ir.Expr, body ir.Expr) ir.Expr {
			newBindings := make([]ir.Binding, len(l.Bindings))
			for i, b := range l.Bindings {
				newBindings[i] = ir.Binding{Var: f(b.Var), Expr: bindings[i]}
			}
			l.Bindings = newBindings
			l.Body = body
			return l
		},
		Free: func(fr ir.Free, body ir.Expr) ir.Expr {
			newVars := make([]int, len(fr.Vars))
			for i, v := range fr.Vars {
				newVars[i] = f(v)
			}
			fr.Vars = newVars
			fr.Body = body
			return fr
		},
		Or: func(o ir.Or, left, right ir.Expr) ir.Expr {
			o.Left = left
			o.Right = right
			return o
		},
		Case: func(c ir.Case, scrutinee ir.Expr, branchExprs []ir.Expr) ir.Expr {
			newBranches := make([]ir.Branch, len(c.Branches))
			for i, b := range c.Branches {
				newBranches[i] = ir.Branch{Pattern: renumberPattern(b.Pattern, f), Expr: branchExprs[i]}
			}
			c.Scrutinee = scrutinee
			c.Branches = newBranches
			return c
		},
		Branch: func(b ir.Branch, expr ir.Expr) ir.Expr { return expr },
		Typed: func(t ir.Typed, inner ir.Expr) ir.Expr {
			t.Expr = inner
			return t
		},
	}
	return FoldExpr(e, fold)
}

// RenumberVars applies f to every variable-binder and occurrence index in
// a program's defined function rules (spec §4.7).
func RenumberVars(f func(int) int, p ir.Program) ir.Program {
	newFuncDecls := make([]ir.FuncDecl, len(p.FuncDecls))
	for i, fd := range p.FuncDecls {
		if dr, ok := fd.Rule.(ir.DefinedRule); ok {
			newParams := make([]int, len(dr.Params))
			for j, v := range dr.Params {
				newParams[j] = f(v)
			}
			dr.Params = newParams
			dr.Body = RenumberVarsInExpr(dr.Body, f)
			fd.Rule = dr
		}
		newFuncDecls[i] = fd
	}
	p.FuncDecls = newFuncDecls
	return p
}
