package irutil

import (
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/ir"
)

// RewriteTypeExprQNames applies f to every qualified name occurring in t.
func RewriteTypeExprQNames(t ir.TypeExpr, f func(ident.QualifiedIdent) ident.QualifiedIdent) ir.TypeExpr {
	switch n := t.(type) {
	case ir.TypeVar:
		return n
	case ir.TypeCons:
		args := make([]ir.TypeExpr, len(n.Args))
		for i, a := range n.Args {
			args[i] = RewriteTypeExprQNames(a, f)
		}
		n.Name = f(n.Name)
		n.Args = args
		return n
	case ir.TypeFunc:
		n.Domain = RewriteTypeExprQNames(n.Domain, f)
		n.Range = RewriteTypeExprQNames(n.Range, f)
		return n
	default:
		return t
	}
}

func rewritePatternQNames(p ir.Pattern, f func(ident.QualifiedIdent) ident.QualifiedIdent) ir.Pattern {
	if cp, ok := p.(ir.ConstructorPattern); ok {
		cp.Name = f(cp.Name)
		return cp
	}
	return p
}

// RewriteQNamesInExpr applies f to every qualified name reachable from e:
// combined-expression heads, type annotations, and case-branch constructor
// patterns.
func RewriteQNamesInExpr(e ir.Expr, f func(ident.QualifiedIdent) ident.QualifiedIdent) ir.Expr {
	fold := ExprFold[ir.Expr]{
		Variable: func(v ir.Variable) ir.Expr { return v },
		Literal:  func(l ir.LiteralExpr) ir.Expr { return l },
		Combined: func(c ir.Combined, args []ir.Expr) ir.Expr {
			c.Name = f(c.Name)
			c.Args = args
			return c
		},
		Let: func(l ir.Let, bindings []ir.Expr, body ir.Expr) ir.Expr {
			newBindings := make([]ir.Binding, len(l.Bindings))
			for i, b := range l.Bindings {
				newBindings[i] = ir.Binding{Var: b.Var, Expr: bindings[i]}
			}
			l.Bindings = newBindings
			l.Body = body
			return l
		},
		Free: func(fr ir.Free, body ir.Expr) ir.Expr {
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
				newBranches[i] = ir.Branch{Pattern: rewritePatternQNames(b.Pattern, f), Expr: branchExprs[i]}
			}
			c.Scrutinee = scrutinee
			c.Branches = newBranches
			return c
		},
		Branch: func(b ir.Branch, expr ir.Expr) ir.Expr { return expr },
		Typed: func(t ir.Typed, inner ir.Expr) ir.Expr {
			t.Expr = inner
			t.Type = RewriteTypeExprQNames(t.Type, f)
			return t
		},
	}
	return FoldExpr(e, fold)
}

// UpdQNames rewrites every qualified name in a program — type declarations,
// constructors, type expressions, function signatures, operator
// declarations, combined-expression heads, and case-branch constructor
// patterns (spec §4.7).
func UpdQNames(f func(ident.QualifiedIdent) ident.QualifiedIdent, p ir.Program) ir.Program {
	newTypeDecls := make([]ir.TypeDecl, len(p.TypeDecls))
	for i, td := range p.TypeDecls {
		switch t := td.(type) {
		case ir.AlgebraicTypeDecl:
			t.Name = f(t.Name)
			newCons := make([]ir.ConsDecl, len(t.Constructors))
			for j, c := range t.Constructors {
				c.Name = f(c.Name)
				newArgTypes := make([]ir.TypeExpr, len(c.ArgTypes))
				for k, at := range c.ArgTypes {
					newArgTypes[k] = RewriteTypeExprQNames(at, f)
				}
				c.ArgTypes = newArgTypes
				newCons[j] = c
			}
			t.Constructors = newCons
			newTypeDecls[i] = t
		case ir.SynonymTypeDecl:
			t.Name = f(t.Name)
			t.Expr = RewriteTypeExprQNames(t.Expr, f)
			newTypeDecls[i] = t
		default:
			newTypeDecls[i] = td
		}
	}

	newFuncDecls := make([]ir.FuncDecl, len(p.FuncDecls))
	for i, fd := range p.FuncDecls {
		fd.Name = f(fd.Name)
		fd.Type = RewriteTypeExprQNames(fd.Type, f)
		if dr, ok := fd.Rule.(ir.DefinedRule); ok {
			dr.Body = RewriteQNamesInExpr(dr.Body, f)
			fd.Rule = dr
		}
		newFuncDecls[i] = fd
	}

	newOpDecls := make([]ir.OpDecl, len(p.OpDecls))
	for i, od := range p.OpDecls {
		od.Name = f(od.Name)
		newOpDecls[i] = od
	}

	p.TypeDecls = newTypeDecls
	p.FuncDecls = newFuncDecls
	p.OpDecls = newOpDecls
	return p
}
