package irutil

import (
	"fmt"

	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/ir"
)

// SelectorError is returned by a per-variant selector applied to the
// wrong sum-type variant. Failure is reported, not recoverable (spec
// §4.7).
type SelectorError struct {
	Op     string
	Reason string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("Goodies.%s: %s", e.Op, e.Reason)
}

func selectorFail(op string, v any) error {
	return &SelectorError{Op: op, Reason: fmt.Sprintf("not the expected variant (got %T)", v)}
}

// --- product-type selectors ---

func ProgramModuleName(p ir.Program) ident.ModuleIdent { return p.ModuleName }
func ProgramImports(p ir.Program) []ident.ModuleIdent  { return p.Imports }
func ProgramTypeDecls(p ir.Program) []ir.TypeDecl       { return p.TypeDecls }
func ProgramFuncDecls(p ir.Program) []ir.FuncDecl       { return p.FuncDecls }
func ProgramOpDecls(p ir.Program) []ir.OpDecl           { return p.OpDecls }

func ConsDeclName(c ir.ConsDecl) ident.QualifiedIdent { return c.Name }
func ConsDeclArity(c ir.ConsDecl) int                  { return c.Arity }
func ConsDeclVisibility(c ir.ConsDecl) ir.Visibility   { return c.Visibility }
func ConsDeclArgTypes(c ir.ConsDecl) []ir.TypeExpr     { return c.ArgTypes }

func OpDeclName(o ir.OpDecl) ident.QualifiedIdent { return o.Name }
func OpDeclFixity(o ir.OpDecl) ir.Fixity           { return o.Fixity }
func OpDeclPrecedence(o ir.OpDecl) int             { return o.Precedence }

func FuncDeclName(f ir.FuncDecl) ident.QualifiedIdent { return f.Name }
func FuncDeclArity(f ir.FuncDecl) int                  { return f.Arity }
func FuncDeclVisibility(f ir.FuncDecl) ir.Visibility   { return f.Visibility }
func FuncDeclType(f ir.FuncDecl) ir.TypeExpr           { return f.Type }
func FuncDeclRule(f ir.FuncDecl) ir.Rule               { return f.Rule }

func BranchPattern(b ir.Branch) ir.Pattern { return b.Pattern }
func BranchExpr(b ir.Branch) ir.Expr       { return b.Expr }

// --- sum-type testers ---

func IsAlgebraicTypeDecl(t ir.TypeDecl) bool { _, ok := t.(ir.AlgebraicTypeDecl); return ok }
func IsSynonymTypeDecl(t ir.TypeDecl) bool   { _, ok := t.(ir.SynonymTypeDecl); return ok }

func IsDefinedRule(r ir.Rule) bool  { _, ok := r.(ir.DefinedRule); return ok }
func IsExternalRule(r ir.Rule) bool { _, ok := r.(ir.ExternalRule); return ok }

func IsVariableExpr(e ir.Expr) bool { _, ok := e.(ir.Variable); return ok }
func IsLiteralExpr(e ir.Expr) bool  { _, ok := e.(ir.LiteralExpr); return ok }
func IsCombinedExpr(e ir.Expr) bool { _, ok := e.(ir.Combined); return ok }
func IsLetExpr(e ir.Expr) bool      { _, ok := e.(ir.Let); return ok }
func IsFreeExpr(e ir.Expr) bool     { _, ok := e.(ir.Free); return ok }
func IsOrExpr(e ir.Expr) bool       { _, ok := e.(ir.Or); return ok }
func IsCaseExpr(e ir.Expr) bool     { _, ok := e.(ir.Case); return ok }
func IsTypedExpr(e ir.Expr) bool    { _, ok := e.(ir.Typed); return ok }

func IsConstructorPattern(p ir.Pattern) bool { _, ok := p.(ir.ConstructorPattern); return ok }
func IsLiteralPattern(p ir.Pattern) bool     { _, ok := p.(ir.LiteralPattern); return ok }

func IsIntLit(l ir.Literal) bool   { _, ok := l.(ir.IntLit); return ok }
func IsFloatLit(l ir.Literal) bool { _, ok := l.(ir.FloatLit); return ok }
func IsCharLit(l ir.Literal) bool  { _, ok := l.(ir.CharLit); return ok }

// --- sum-type per-variant selectors ---

// CombinedArgs extracts a Combined expression's arguments, failing on any
// other Expr variant.
func CombinedArgs(e ir.Expr) ([]ir.Expr, error) {
	c, ok := e.(ir.Combined)
	if !ok {
		return nil, selectorFail("combinedArgs", e)
	}
	return c.Args, nil
}

// CombinedName extracts a Combined expression's head name.
func CombinedName(e ir.Expr) (ident.QualifiedIdent, error) {
	c, ok := e.(ir.Combined)
	if !ok {
		return ident.QualifiedIdent{}, selectorFail("combinedName", e)
	}
	return c.Name, nil
}

// CaseBranches extracts a Case expression's branches.
func CaseBranches(e ir.Expr) ([]ir.Branch, error) {
	c, ok := e.(ir.Case)
	if !ok {
		return nil, selectorFail("caseBranches", e)
	}
	return c.Branches, nil
}

// CaseScrutinee extracts a Case expression's scrutinee.
func CaseScrutinee(e ir.Expr) (ir.Expr, error) {
	c, ok := e.(ir.Case)
	if !ok {
		return nil, selectorFail("caseScrutinee", e)
	}
	return c.Scrutinee, nil
}

// ConstructorPatternVars extracts the variable binders of a constructor
// pattern.
func ConstructorPatternVars(p ir.Pattern) ([]int, error) {
	cp, ok := p.(ir.ConstructorPattern)
	if !ok {
		return nil, selectorFail("constructorPatternVars", p)
	}
	return cp.Vars, nil
}

// ConstructorPatternName extracts a constructor pattern's constructor
// name.
func ConstructorPatternName(p ir.Pattern) (ident.QualifiedIdent, error) {
	cp, ok := p.(ir.ConstructorPattern)
	if !ok {
		return ident.QualifiedIdent{}, selectorFail("constructorPatternName", p)
	}
	return cp.Name, nil
}

// DefinedRuleBody extracts a defined rule's body expression.
func DefinedRuleBody(r ir.Rule) (ir.Expr, error) {
	dr, ok := r.(ir.DefinedRule)
	if !ok {
		return nil, selectorFail("definedRuleBody", r)
	}
	return dr.Body, nil
}

// DefinedRuleParams extracts a defined rule's parameter-binder indices.
func DefinedRuleParams(r ir.Rule) ([]int, error) {
	dr, ok := r.(ir.DefinedRule)
	if !ok {
		return nil, selectorFail("definedRuleParams", r)
	}
	return dr.Params, nil
}

// ExternalRuleName extracts an external rule's foreign symbol name.
func ExternalRuleName(r ir.Rule) (string, error) {
	er, ok := r.(ir.ExternalRule)
	if !ok {
		return "", selectorFail("externalRuleName", r)
	}
	return er.Name, nil
}

// AlgebraicTypeDeclConstructors extracts an algebraic type's
// constructors.
func AlgebraicTypeDeclConstructors(t ir.TypeDecl) ([]ir.ConsDecl, error) {
	a, ok := t.(ir.AlgebraicTypeDecl)
	if !ok {
		return nil, selectorFail("algebraicTypeDeclConstructors", t)
	}
	return a.Constructors, nil
}

// SynonymTypeDeclExpr extracts a type synonym's right-hand-side type.
func SynonymTypeDeclExpr(t ir.TypeDecl) (ir.TypeExpr, error) {
	s, ok := t.(ir.SynonymTypeDecl)
	if !ok {
		return nil, selectorFail("synonymTypeDeclExpr", t)
	}
	return s.Expr, nil
}
