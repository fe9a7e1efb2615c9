package ir_test

import (
	"testing"

	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/ir"
	"github.com/curryfront/curryfront/pkg/position"
)

func qname(mod, name string) ident.QualifiedIdent {
	m := ident.NewModuleIdent(position.None(), mod)
	return ident.NewQualified(m, ident.NewIdent(position.None(), name))
}

func TestTypeDeclVariantsSatisfyTypeDecl(t *testing.T) {
	var _ ir.TypeDecl = ir.AlgebraicTypeDecl{}
	var _ ir.TypeDecl = ir.SynonymTypeDecl{}
}

func TestAlgebraicTypeDeclQNameRoundTrips(t *testing.T) {
	n := qname("Prelude", "Maybe")
	d := ir.AlgebraicTypeDecl{Name: n}
	if d.QName().String() != "Prelude.Maybe" {
		t.Errorf("QName() = %q, want Prelude.Maybe", d.QName().String())
	}
}

func TestExprVariantsSatisfyExpr(t *testing.T) {
	var _ ir.Expr = ir.Variable{}
	var _ ir.Expr = ir.LiteralExpr{}
	var _ ir.Expr = ir.Combined{}
	var _ ir.Expr = ir.Let{}
	var _ ir.Expr = ir.Free{}
	var _ ir.Expr = ir.Or{}
	var _ ir.Expr = ir.Case{}
	var _ ir.Expr = ir.Typed{}
}

func TestPatternVariantsSatisfyPattern(t *testing.T) {
	var _ ir.Pattern = ir.ConstructorPattern{}
	var _ ir.Pattern = ir.LiteralPattern{}
}

func TestLiteralVariantsSatisfyLiteral(t *testing.T) {
	var _ ir.Literal = ir.IntLit{}
	var _ ir.Literal = ir.FloatLit{}
	var _ ir.Literal = ir.CharLit{}
}

func TestRuleVariantsSatisfyRule(t *testing.T) {
	var _ ir.Rule = ir.DefinedRule{}
	var _ ir.Rule = ir.ExternalRule{}
}

func TestCombinedPartialCallCarriesMissingCount(t *testing.T) {
	c := ir.Combined{
		CombType: ir.FuncPartCall,
		Name:     qname("Prelude", "map"),
		Missing:  1,
		Args:     []ir.Expr{ir.Variable{Index: 0}},
	}
	if c.Missing != 1 {
		t.Errorf("Missing = %d, want 1", c.Missing)
	}
	if len(c.Args) != 1 {
		t.Errorf("len(Args) = %d, want 1", len(c.Args))
	}
}

func TestCaseCarriesBranchesAndKind(t *testing.T) {
	c := ir.Case{
		CaseType:  ir.CaseFlex,
		Scrutinee: ir.Variable{Index: 0},
		Branches: []ir.Branch{
			{
				Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Nothing")},
				Expr:    ir.LiteralExpr{Lit: ir.IntLit{Value: 0}},
			},
			{
				Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Just"), Vars: []int{1}},
				Expr:    ir.Variable{Index: 1},
			},
		},
	}
	if c.CaseType != ir.CaseFlex {
		t.Errorf("CaseType = %v, want CaseFlex", c.CaseType)
	}
	if len(c.Branches) != 2 {
		t.Fatalf("len(Branches) = %d, want 2", len(c.Branches))
	}
	if len(c.Branches[1].Pattern.(ir.ConstructorPattern).Vars) != 1 {
		t.Errorf("second branch should bind one variable")
	}
}

func TestProgramAggregatesDecls(t *testing.T) {
	p := ir.Program{
		ModuleName: ident.NewModuleIdent(position.None(), "Main"),
		TypeDecls:  []ir.TypeDecl{ir.AlgebraicTypeDecl{Name: qname("Main", "T")}},
		FuncDecls: []ir.FuncDecl{
			{Name: qname("Main", "f"), Arity: 1, Rule: ir.DefinedRule{Params: []int{0}, Body: ir.Variable{Index: 0}}},
		},
		OpDecls: []ir.OpDecl{{Name: qname("Main", "+++"), Fixity: ir.FixityLeft, Precedence: 5}},
	}
	if len(p.TypeDecls) != 1 || len(p.FuncDecls) != 1 || len(p.OpDecls) != 1 {
		t.Fatalf("Program = %+v", p)
	}
	rule, ok := p.FuncDecls[0].Rule.(ir.DefinedRule)
	if !ok {
		t.Fatal("expected a DefinedRule")
	}
	if len(rule.Params) != 1 || rule.Params[0] != 0 {
		t.Errorf("Params = %v", rule.Params)
	}
}
