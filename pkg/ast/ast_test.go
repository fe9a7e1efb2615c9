package ast_test

import (
	"testing"

	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/position"
)

func pos(line, col int) position.Position {
	return position.NewConcrete("m.curry", line, col)
}

func TestModulePosIsModuleNamePos(t *testing.T) {
	name := ident.NewModuleIdent(pos(1, 8), "Main")
	m := &ast.Module{Name: name}
	if !m.Pos().Equal(name.Pos()) {
		t.Errorf("Module.Pos() = %v, want %v", m.Pos(), name.Pos())
	}
}

func TestFuncDeclSatisfiesDecl(t *testing.T) {
	var _ ast.Decl = (*ast.FuncDecl)(nil)
	var _ ast.Decl = (*ast.DataDecl)(nil)
	var _ ast.Decl = (*ast.NewtypeDecl)(nil)
	var _ ast.Decl = (*ast.TypeSynonymDecl)(nil)
	var _ ast.Decl = (*ast.FixityDecl)(nil)
	var _ ast.Decl = (*ast.TypeSigDecl)(nil)
	var _ ast.Decl = (*ast.ForeignDecl)(nil)
	var _ ast.Decl = (*ast.ExternalDecl)(nil)
	var _ ast.Decl = (*ast.PatternDecl)(nil)
	var _ ast.Decl = (*ast.FreeDecl)(nil)
}

func TestExprVariantsSatisfyExpr(t *testing.T) {
	var _ ast.Expr = (*ast.LiteralExpr)(nil)
	var _ ast.Expr = (*ast.VarExpr)(nil)
	var _ ast.Expr = (*ast.ConsExpr)(nil)
	var _ ast.Expr = (*ast.ParenExpr)(nil)
	var _ ast.Expr = (*ast.TypedExpr)(nil)
	var _ ast.Expr = (*ast.RecordExpr)(nil)
	var _ ast.Expr = (*ast.RecordUpdateExpr)(nil)
	var _ ast.Expr = (*ast.TupleExpr)(nil)
	var _ ast.Expr = (*ast.ListExpr)(nil)
	var _ ast.Expr = (*ast.ListCompExpr)(nil)
	var _ ast.Expr = (*ast.EnumExpr)(nil)
	var _ ast.Expr = (*ast.UnaryMinusExpr)(nil)
	var _ ast.Expr = (*ast.AppExpr)(nil)
	var _ ast.Expr = (*ast.InfixAppExpr)(nil)
	var _ ast.Expr = (*ast.LeftSectionExpr)(nil)
	var _ ast.Expr = (*ast.RightSectionExpr)(nil)
	var _ ast.Expr = (*ast.LambdaExpr)(nil)
	var _ ast.Expr = (*ast.LetExpr)(nil)
	var _ ast.Expr = (*ast.DoExpr)(nil)
	var _ ast.Expr = (*ast.IfExpr)(nil)
	var _ ast.Expr = (*ast.CaseExpr)(nil)
	var _ ast.Expr = (*ast.FCaseExpr)(nil)
}

func TestPatternVariantsSatisfyPattern(t *testing.T) {
	var _ ast.Pattern = (*ast.LiteralPattern)(nil)
	var _ ast.Pattern = (*ast.NegLiteralPattern)(nil)
	var _ ast.Pattern = (*ast.VarPattern)(nil)
	var _ ast.Pattern = (*ast.ConsPattern)(nil)
	var _ ast.Pattern = (*ast.InfixPattern)(nil)
	var _ ast.Pattern = (*ast.ParenPattern)(nil)
	var _ ast.Pattern = (*ast.RecordPattern)(nil)
	var _ ast.Pattern = (*ast.TuplePattern)(nil)
	var _ ast.Pattern = (*ast.ListPattern)(nil)
	var _ ast.Pattern = (*ast.AsPattern)(nil)
	var _ ast.Pattern = (*ast.LazyPattern)(nil)
	var _ ast.Pattern = (*ast.FuncPattern)(nil)
	var _ ast.Pattern = (*ast.InfixFuncPattern)(nil)
}

func TestAppExprPosIsFuncPos(t *testing.T) {
	f := &ast.VarExpr{Name: ident.NewUnqualified(ident.NewIdent(pos(2, 1), "f"))}
	arg := &ast.VarExpr{Name: ident.NewUnqualified(ident.NewIdent(pos(2, 3), "x"))}
	app := &ast.AppExpr{Func: f, Arg: arg}
	if !app.Pos().Equal(pos(2, 1)) {
		t.Errorf("AppExpr.Pos() = %v, want %v", app.Pos(), pos(2, 1))
	}
}

func TestInfixAppExprPosIsLeftOperandPos(t *testing.T) {
	left := &ast.LiteralExpr{Lit: &ast.IntLiteral{LitPos: pos(3, 1), Value: 1}}
	right := &ast.LiteralExpr{Lit: &ast.IntLiteral{LitPos: pos(3, 5), Value: 2}}
	op := ident.NewUnqualified(ident.NewIdent(pos(3, 3), "+"))
	e := &ast.InfixAppExpr{Left: left, Op: op, Right: right}
	if !e.Pos().Equal(pos(3, 1)) {
		t.Errorf("InfixAppExpr.Pos() = %v, want %v", e.Pos(), pos(3, 1))
	}
}

func TestCaseExprCarriesKind(t *testing.T) {
	scrut := &ast.VarExpr{Name: ident.NewUnqualified(ident.NewIdent(pos(5, 6), "x"))}
	alt := ast.Alt{
		Pattern: &ast.VarPattern{Name: ident.NewIdent(pos(5, 11), "y")},
		RHS:     &ast.SimpleRHS{EqPos: pos(5, 14), Expr: scrut},
	}
	c := &ast.CaseExpr{CasePos: pos(5, 1), Kind: ast.CaseFlex, Scrutinee: scrut, Alts: []ast.Alt{alt}}
	if c.Kind != ast.CaseFlex {
		t.Errorf("Kind = %v, want CaseFlex", c.Kind)
	}
	if len(c.Alts) != 1 || !c.Alts[0].Pattern.Pos().Equal(pos(5, 11)) {
		t.Errorf("Alts = %+v", c.Alts)
	}
}

func TestFCaseExprHasNoScrutineeField(t *testing.T) {
	alt := ast.Alt{
		Pattern: &ast.VarPattern{Name: ident.NewIdent(pos(6, 8), "z")},
		RHS:     &ast.SimpleRHS{EqPos: pos(6, 10), Expr: &ast.VarExpr{Name: ident.NewUnqualified(ident.NewIdent(pos(6, 12), "z"))}},
	}
	fc := &ast.FCaseExpr{FCasePos: pos(6, 1), Alts: []ast.Alt{alt}}
	if !fc.Pos().Equal(pos(6, 1)) {
		t.Errorf("FCaseExpr.Pos() = %v, want %v", fc.Pos(), pos(6, 1))
	}
}

func TestLHSVariantsSatisfyLHS(t *testing.T) {
	var _ ast.LHS = (*ast.PrefixLHS)(nil)
	var _ ast.LHS = (*ast.OperatorLHS)(nil)
	var _ ast.LHS = (*ast.AppliedLHS)(nil)
}

func TestAppliedLHSPosDelegatesToBase(t *testing.T) {
	base := &ast.PrefixLHS{Name: ident.NewIdent(pos(7, 2), "f")}
	applied := &ast.AppliedLHS{Base: base, Args: []ast.Pattern{&ast.VarPattern{Name: ident.NewIdent(pos(7, 5), "x")}}}
	if !applied.Pos().Equal(pos(7, 2)) {
		t.Errorf("AppliedLHS.Pos() = %v, want %v", applied.Pos(), pos(7, 2))
	}
}

func TestGuardedRHSPosIsFirstGuardPos(t *testing.T) {
	g1 := ast.GuardedExpr{BarPos: pos(8, 3), Result: &ast.LiteralExpr{Lit: &ast.IntLiteral{LitPos: pos(8, 10), Value: 1}}}
	g2 := ast.GuardedExpr{BarPos: pos(9, 3), Result: &ast.LiteralExpr{Lit: &ast.IntLiteral{LitPos: pos(9, 10), Value: 2}}}
	r := &ast.GuardedRHS{Guards: []ast.GuardedExpr{g1, g2}}
	if !r.Pos().Equal(pos(8, 3)) {
		t.Errorf("GuardedRHS.Pos() = %v, want %v", r.Pos(), pos(8, 3))
	}
}

func TestExportItemVariantsSatisfyExportItem(t *testing.T) {
	var _ ast.ExportItem = (*ast.ExportVar)(nil)
	var _ ast.ExportItem = (*ast.ExportType)(nil)
	var _ ast.ExportItem = (*ast.ExportModule)(nil)
}

func TestTypeExprVariantsSatisfyTypeExpr(t *testing.T) {
	var _ ast.TypeExpr = (*ast.TypeVarExpr)(nil)
	var _ ast.TypeExpr = (*ast.TypeConsExpr)(nil)
	var _ ast.TypeExpr = (*ast.TypeTupleExpr)(nil)
	var _ ast.TypeExpr = (*ast.TypeListExpr)(nil)
	var _ ast.TypeExpr = (*ast.TypeArrowExpr)(nil)
	var _ ast.TypeExpr = (*ast.TypeParenExpr)(nil)
}

func TestTypeArrowExprPosIsDomainPos(t *testing.T) {
	dom := &ast.TypeConsExpr{ConsPos: pos(10, 1), Name: ident.NewUnqualified(ident.NewIdent(pos(10, 1), "Int"))}
	rng := &ast.TypeConsExpr{ConsPos: pos(10, 8), Name: ident.NewUnqualified(ident.NewIdent(pos(10, 8), "Int"))}
	arrow := &ast.TypeArrowExpr{Domain: dom, Range: rng}
	if !arrow.Pos().Equal(pos(10, 1)) {
		t.Errorf("TypeArrowExpr.Pos() = %v, want %v", arrow.Pos(), pos(10, 1))
	}
}

func TestStmtVariantsSatisfyStmt(t *testing.T) {
	var _ ast.Stmt = (*ast.ExprStmt)(nil)
	var _ ast.Stmt = (*ast.DeclStmt)(nil)
	var _ ast.Stmt = (*ast.BindStmt)(nil)
}

func TestBindStmtPosIsPatternPos(t *testing.T) {
	p := &ast.VarPattern{Name: ident.NewIdent(pos(11, 2), "x")}
	e := &ast.VarExpr{Name: ident.NewUnqualified(ident.NewIdent(pos(11, 7), "xs"))}
	s := &ast.BindStmt{Pattern: p, Expr: e}
	if !s.Pos().Equal(pos(11, 2)) {
		t.Errorf("BindStmt.Pos() = %v, want %v", s.Pos(), pos(11, 2))
	}
}

func TestNewtypeDeclHasSingleConstructor(t *testing.T) {
	d := &ast.NewtypeDecl{
		DeclPos: pos(12, 1),
		Name:    ident.NewIdent(pos(12, 6), "Wrap"),
		Constructor: ast.ConstructorDecl{
			Name:     ident.NewIdent(pos(12, 13), "Wrap"),
			ArgTypes: []ast.TypeExpr{&ast.TypeVarExpr{Name: ident.NewIdent(pos(12, 18), "a")}},
		},
	}
	if d.Constructor.Name.Name() != "Wrap" {
		t.Errorf("Constructor.Name = %q", d.Constructor.Name.Name())
	}
}

func TestImportDeclDefaultsToImportEverything(t *testing.T) {
	d := ast.ImportDecl{
		ImportPos: pos(1, 1),
		Module:    ident.NewModuleIdent(pos(1, 8), "Data", "List"),
	}
	if d.Items != nil {
		t.Errorf("Items = %v, want nil (import everything)", d.Items)
	}
}
