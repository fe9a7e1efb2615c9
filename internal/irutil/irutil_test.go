package irutil_test

import (
	"testing"

	"github.com/curryfront/curryfront/internal/irutil"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/ir"
	"github.com/curryfront/curryfront/pkg/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qname(mod, name string) ident.QualifiedIdent {
	m := ident.NewModuleIdent(position.None(), mod)
	return ident.NewQualified(m, ident.NewIdent(position.None(), name))
}

// f x = Just x
func justExpr() ir.Expr {
	return ir.Combined{
		CombType: ir.ConsCall,
		Name:     qname("Prelude", "Just"),
		Args:     []ir.Expr{ir.Variable{Index: 0}},
	}
}

func TestFoldExprCountsNodes(t *testing.T) {
	e := ir.Let{
		Bindings: []ir.Binding{{Var: 1, Expr: ir.Variable{Index: 0}}},
		Body: ir.Case{
			Scrutinee: ir.Variable{Index: 1},
			Branches: []ir.Branch{
				{Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Nothing")}, Expr: ir.LiteralExpr{Lit: ir.IntLit{Value: 0}}},
				{Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Just"), Vars: []int{2}}, Expr: ir.Variable{Index: 2}},
			},
		},
	}
	count := irutil.FoldExpr(e, irutil.ExprFold[int]{
		Variable: func(ir.Variable) int { return 1 },
		Literal:  func(ir.LiteralExpr) int { return 1 },
		Combined: func(_ ir.Combined, args []int) int { n := 1; for _, a := range args { n += a }; return n },
		Let:      func(_ ir.Let, bindings []int, body int) int { n := 1 + body; for _, b := range bindings { n += b }; return n },
		Free:     func(_ ir.Free, body int) int { return 1 + body },
		Or:       func(_ ir.Or, l, r int) int { return 1 + l + r },
		Case:     func(_ ir.Case, scrutinee int, branches []int) int { n := 1 + scrutinee; for _, b := range branches { n += b }; return n },
		Branch:   func(_ ir.Branch, expr int) int { return expr },
		Typed:    func(_ ir.Typed, inner int) int { return 1 + inner },
	})
	// let(1) + binding var(1) + case(1) + scrutinee var(1) + two branch exprs (1 each) = 6
	assert.Equal(t, 6, count)
}

func TestCombinedArgsAndNameSelectors(t *testing.T) {
	e := justExpr()
	args, err := irutil.CombinedArgs(e)
	require.NoError(t, err)
	assert.Len(t, args, 1)

	name, err := irutil.CombinedName(e)
	require.NoError(t, err)
	assert.Equal(t, "Prelude.Just", name.String())
}

func TestCombinedArgsFailsOnWrongVariant(t *testing.T) {
	_, err := irutil.CombinedArgs(ir.Variable{Index: 0})
	require.Error(t, err)
	assert.Equal(t, "Goodies.combinedArgs: not the expected variant (got ir.Variable)", err.Error())
}

func TestIsTesters(t *testing.T) {
	assert.True(t, irutil.IsCombinedExpr(justExpr()))
	assert.False(t, irutil.IsCombinedExpr(ir.Variable{Index: 0}))
	assert.True(t, irutil.IsConstructorPattern(ir.ConstructorPattern{}))
	assert.False(t, irutil.IsConstructorPattern(ir.LiteralPattern{}))
}

func TestRewriteExprAppliesBottomUp(t *testing.T) {
	order := []string{}
	record := func(e ir.Expr) ir.Expr {
		switch n := e.(type) {
		case ir.Variable:
			order = append(order, "var")
		case ir.Combined:
			order = append(order, "combined")
			_ = n
		}
		return e
	}
	irutil.RewriteExpr(justExpr(), record)
	assert.Equal(t, []string{"var", "combined"}, order)
}

func TestUpdExprsRewritesEveryFunctionBody(t *testing.T) {
	p := ir.Program{
		ModuleName: ident.NewModuleIdent(position.None(), "Main"),
		FuncDecls: []ir.FuncDecl{
			{Name: qname("Main", "f"), Rule: ir.DefinedRule{Params: []int{0}, Body: ir.Variable{Index: 0}}},
			{Name: qname("Main", "g"), Rule: ir.ExternalRule{Name: "prim_g"}},
		},
	}
	out := irutil.UpdExprs(func(e ir.Expr) ir.Expr {
		if v, ok := e.(ir.Variable); ok {
			return ir.Variable{Index: v.Index + 10}
		}
		return e
	}, p)
	body := out.FuncDecls[0].Rule.(ir.DefinedRule).Body.(ir.Variable)
	assert.Equal(t, 10, body.Index)
	_, ok := out.FuncDecls[1].Rule.(ir.ExternalRule)
	assert.True(t, ok)
}

func TestUpdQNamesRewritesCombinedTypeDeclAndOpDecl(t *testing.T) {
	p := ir.Program{
		ModuleName: ident.NewModuleIdent(position.None(), "Main"),
		TypeDecls: []ir.TypeDecl{
			ir.AlgebraicTypeDecl{
				Name: qname("Main", "Box"),
				Constructors: []ir.ConsDecl{
					{Name: qname("Main", "MkBox"), Arity: 1, ArgTypes: []ir.TypeExpr{ir.TypeCons{Name: qname("Prelude", "Int")}}},
				},
			},
		},
		FuncDecls: []ir.FuncDecl{
			{
				Name: qname("Main", "f"),
				Type: ir.TypeCons{Name: qname("Main", "Box")},
				Rule: ir.DefinedRule{Body: justExpr()},
			},
		},
		OpDecls: []ir.OpDecl{{Name: qname("Main", "+++")}},
	}
	rename := func(q ident.QualifiedIdent) ident.QualifiedIdent {
		if q.Module != nil && q.Module.String() == "Main" {
			m := ident.NewModuleIdent(position.None(), "Renamed")
			return q.WithModule(&m)
		}
		return q
	}
	out := irutil.UpdQNames(rename, p)

	td := out.TypeDecls[0].(ir.AlgebraicTypeDecl)
	assert.Equal(t, "Renamed.Box", td.Name.String())
	assert.Equal(t, "Renamed.MkBox", td.Constructors[0].Name.String())
	assert.Equal(t, "Prelude.Int", td.Constructors[0].ArgTypes[0].(ir.TypeCons).Name.String())

	fd := out.FuncDecls[0]
	assert.Equal(t, "Renamed.f", fd.Name.String())
	assert.Equal(t, "Renamed.Box", fd.Type.(ir.TypeCons).Name.String())
	body := fd.Rule.(ir.DefinedRule).Body.(ir.Combined)
	assert.Equal(t, "Prelude.Just", body.Name.String(), "names outside the renamed module are untouched")

	assert.Equal(t, "Renamed.+++", out.OpDecls[0].Name.String())
}

func TestRenameProgramRewritesModuleAndQualifiedNames(t *testing.T) {
	p := ir.Program{
		ModuleName: ident.NewModuleIdent(position.None(), "Main"),
		FuncDecls: []ir.FuncDecl{
			{Name: qname("Main", "f"), Rule: ir.DefinedRule{Body: ir.Combined{CombType: ir.FuncCall, Name: qname("Main", "g")}}},
		},
	}
	newName := ident.NewModuleIdent(position.None(), "App")
	out := irutil.RenameProgram(newName, p)
	assert.Equal(t, "App", out.ModuleName.String())
	assert.Equal(t, "App.f", out.FuncDecls[0].Name.String())
	body := out.FuncDecls[0].Rule.(ir.DefinedRule).Body.(ir.Combined)
	assert.Equal(t, "App.g", body.Name.String())
}

func TestRenumberVarsInExprShiftsEveryBinder(t *testing.T) {
	e := ir.Let{
		Bindings: []ir.Binding{{Var: 0, Expr: ir.Variable{Index: 5}}},
		Body: ir.Case{
			Scrutinee: ir.Variable{Index: 0},
			Branches: []ir.Branch{
				{Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Just"), Vars: []int{1}}, Expr: ir.Variable{Index: 1}},
			},
		},
	}
	shift := func(i int) int { return i + 100 }
	out := irutil.RenumberVarsInExpr(e, shift).(ir.Let)
	assert.Equal(t, 100, out.Bindings[0].Var)
	assert.Equal(t, 105, out.Bindings[0].Expr.(ir.Variable).Index)
	caseExpr := out.Body.(ir.Case)
	assert.Equal(t, 100, caseExpr.Scrutinee.(ir.Variable).Index)
	pat := caseExpr.Branches[0].Pattern.(ir.ConstructorPattern)
	assert.Equal(t, []int{101}, pat.Vars)
	assert.Equal(t, 101, caseExpr.Branches[0].Expr.(ir.Variable).Index)
}

func TestFreeVarsExcludesLetFreeAndPatternBinders(t *testing.T) {
	// let y = x0 in case x1 of { Just z -> z; Nothing -> x2 }
	e := ir.Let{
		Bindings: []ir.Binding{{Var: 10, Expr: ir.Variable{Index: 0}}},
		Body: ir.Case{
			Scrutinee: ir.Variable{Index: 1},
			Branches: []ir.Branch{
				{Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Just"), Vars: []int{11}}, Expr: ir.Variable{Index: 11}},
				{Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Nothing")}, Expr: ir.Variable{Index: 2}},
			},
		},
	}
	free := irutil.FreeVars(e)
	assert.Equal(t, []int{0, 1, 2}, free)
}

func TestFreeVarsExcludesFreeDeclBinders(t *testing.T) {
	e := ir.Free{
		Vars: []int{0},
		Body: ir.Combined{CombType: ir.FuncCall, Name: qname("Main", "eq"), Args: []ir.Expr{ir.Variable{Index: 0}, ir.Variable{Index: 1}}},
	}
	assert.Equal(t, []int{1}, irutil.FreeVars(e))
}

func TestIsWHNF(t *testing.T) {
	assert.True(t, irutil.IsWHNF(ir.LiteralExpr{Lit: ir.IntLit{Value: 1}}))
	assert.True(t, irutil.IsWHNF(ir.Combined{CombType: ir.ConsCall}))
	assert.True(t, irutil.IsWHNF(ir.Combined{CombType: ir.FuncPartCall}))
	assert.False(t, irutil.IsWHNF(ir.Combined{CombType: ir.FuncCall}))
	assert.False(t, irutil.IsWHNF(ir.Variable{Index: 0}))
}

func TestIsGround(t *testing.T) {
	ground := ir.Combined{CombType: ir.ConsCall, Name: qname("Prelude", "Just"), Args: []ir.Expr{ir.LiteralExpr{Lit: ir.IntLit{Value: 1}}}}
	assert.True(t, irutil.IsGround(ground))

	notGround := ir.Combined{CombType: ir.ConsCall, Name: qname("Prelude", "Just"), Args: []ir.Expr{ir.Variable{Index: 0}}}
	assert.False(t, irutil.IsGround(notGround))

	assert.False(t, irutil.IsGround(ir.Combined{CombType: ir.FuncCall}))
}

func TestTypeOfVariableAndLiteral(t *testing.T) {
	env := irutil.TypeEnv{VarTypes: map[int]ir.TypeExpr{0: ir.TypeCons{Name: qname("Prelude", "Bool")}}}
	ty, ok := irutil.TypeOf(env, ir.Variable{Index: 0})
	require.True(t, ok)
	assert.Equal(t, "Prelude.Bool", ty.(ir.TypeCons).Name.String())

	ty, ok = irutil.TypeOf(env, ir.LiteralExpr{Lit: ir.IntLit{Value: 1}})
	require.True(t, ok)
	assert.Equal(t, "Prelude.Int", ty.(ir.TypeCons).Name.String())
}

func TestTypeOfCombinedPeelsArrows(t *testing.T) {
	intType := ir.TypeCons{Name: qname("Prelude", "Int")}
	boolType := ir.TypeCons{Name: qname("Prelude", "Bool")}
	env := irutil.TypeEnv{
		FuncTypes: map[string]ir.TypeExpr{
			"Main.eq": ir.TypeFunc{Domain: intType, Range: ir.TypeFunc{Domain: intType, Range: boolType}},
		},
	}
	e := ir.Combined{CombType: ir.FuncCall, Name: qname("Main", "eq"), Args: []ir.Expr{ir.Variable{Index: 0}, ir.Variable{Index: 1}}}
	ty, ok := irutil.TypeOf(env, e)
	require.True(t, ok)
	assert.Equal(t, "Prelude.Bool", ty.(ir.TypeCons).Name.String())
}

func TestTypeOfOrFallsBackToRight(t *testing.T) {
	env := irutil.TypeEnv{VarTypes: map[int]ir.TypeExpr{1: ir.TypeCons{Name: qname("Prelude", "Int")}}}
	e := ir.Or{Left: ir.Variable{Index: 0}, Right: ir.Variable{Index: 1}}
	ty, ok := irutil.TypeOf(env, e)
	require.True(t, ok)
	assert.Equal(t, "Prelude.Int", ty.(ir.TypeCons).Name.String())
}

func TestTypeOfCaseTakesFirstDeterminedBranch(t *testing.T) {
	env := irutil.TypeEnv{VarTypes: map[int]ir.TypeExpr{2: ir.TypeCons{Name: qname("Prelude", "Char")}}}
	e := ir.Case{
		Scrutinee: ir.Variable{Index: 0},
		Branches: []ir.Branch{
			{Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Nothing")}, Expr: ir.Variable{Index: 1}},
			{Pattern: ir.ConstructorPattern{Name: qname("Prelude", "Just"), Vars: []int{2}}, Expr: ir.Variable{Index: 2}},
		},
	}
	ty, ok := irutil.TypeOf(env, e)
	require.True(t, ok)
	assert.Equal(t, "Prelude.Char", ty.(ir.TypeCons).Name.String())
}

func TestUpdateDefinedRuleBody(t *testing.T) {
	r := ir.DefinedRule{Body: ir.Variable{Index: 0}}
	out := irutil.UpdateDefinedRuleBody(func(ir.Expr) ir.Expr { return ir.LiteralExpr{Lit: ir.IntLit{Value: 9}} }, r)
	lit := out.Body.(ir.LiteralExpr).Lit.(ir.IntLit)
	assert.Equal(t, int64(9), lit.Value)
}
