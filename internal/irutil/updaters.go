package irutil

import "github.com/curryfront/curryfront/pkg/ir"

// Update is the shape every updater in this package follows: given a
// rewriter over some field type B, produce a rewriter over the containing
// type A (spec §4.7).
type Update[A, B any] func(f func(B) B, a A) A

// UpdateFuncDeclType rewrites a function declaration's declared type.
func UpdateFuncDeclType(f func(ir.TypeExpr) ir.TypeExpr, fd ir.FuncDecl) ir.FuncDecl {
	fd.Type = f(fd.Type)
	return fd
}

// UpdateFuncDeclRule rewrites a function declaration's rule.
func UpdateFuncDeclRule(f func(ir.Rule) ir.Rule, fd ir.FuncDecl) ir.FuncDecl {
	fd.Rule = f(fd.Rule)
	return fd
}

// UpdateDefinedRuleBody rewrites a defined rule's body expression.
func UpdateDefinedRuleBody(f func(ir.Expr) ir.Expr, r ir.DefinedRule) ir.DefinedRule {
	r.Body = f(r.Body)
	return r
}

// UpdateCaseScrutinee rewrites a case expression's scrutinee, leaving its
// branches untouched.
func UpdateCaseScrutinee(f func(ir.Expr) ir.Expr, c ir.Case) ir.Case {
	c.Scrutinee = f(c.Scrutinee)
	return c
}

// UpdateBranchExpr rewrites a branch's right-hand-side expression, leaving
// its pattern untouched.
func UpdateBranchExpr(f func(ir.Expr) ir.Expr, b ir.Branch) ir.Branch {
	b.Expr = f(b.Expr)
	return b
}

// UpdateProgramFuncDecls rewrites a program's function declarations as a
// whole, e.g. to add, remove, or reorder declarations.
func UpdateProgramFuncDecls(f func([]ir.FuncDecl) []ir.FuncDecl, p ir.Program) ir.Program {
	p.FuncDecls = f(p.FuncDecls)
	return p
}
