// Package ir defines the flat intermediate representation (spec §3.6):
// the desugared, renamed program shape that downstream tooling (pattern
// matching compilation, interpretation, code generation — all out of
// scope here) consumes instead of the surface AST.
package ir

import (
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/position"
)

// Visibility classifies whether a declaration is exported from its
// module.
type Visibility int

const (
	Private Visibility = iota
	Public
)

// Fixity classifies an operator's associativity.
type Fixity int

const (
	FixityLeft Fixity = iota
	FixityRight
	FixityNone
)

// Program is a complete flat-IR compilation unit.
type Program struct {
	ModuleName ident.ModuleIdent
	Imports    []ident.ModuleIdent
	TypeDecls  []TypeDecl
	FuncDecls  []FuncDecl
	OpDecls    []OpDecl
}

// TypeDecl is either an algebraic data type or a type synonym.
type TypeDecl interface {
	typeDeclNode()
	QName() ident.QualifiedIdent
}

// AlgebraicTypeDecl declares a data type by its constructors.
type AlgebraicTypeDecl struct {
	Name         ident.QualifiedIdent
	Visibility   Visibility
	TypeParams   int // arity: number of type parameters
	Constructors []ConsDecl
}

func (t AlgebraicTypeDecl) typeDeclNode()             {}
func (t AlgebraicTypeDecl) QName() ident.QualifiedIdent { return t.Name }

// SynonymTypeDecl declares a type synonym.
type SynonymTypeDecl struct {
	Name       ident.QualifiedIdent
	Visibility Visibility
	TypeParams int
	Expr       TypeExpr
}

func (t SynonymTypeDecl) typeDeclNode()             {}
func (t SynonymTypeDecl) QName() ident.QualifiedIdent { return t.Name }

// ConsDecl is one data constructor of an algebraic type.
type ConsDecl struct {
	Name       ident.QualifiedIdent
	Arity      int
	Visibility Visibility
	ArgTypes   []TypeExpr
}

// TypeExpr is a flat-IR type expression.
type TypeExpr interface {
	typeExprNode()
}

// TypeVar is a type-parameter occurrence, referenced by index into the
// enclosing declaration's parameter list.
type TypeVar struct {
	Index int
}

func (TypeVar) typeExprNode() {}

// TypeCons applies a named type constructor to zero or more arguments.
type TypeCons struct {
	Name ident.QualifiedIdent
	Args []TypeExpr
}

func (TypeCons) typeExprNode() {}

// TypeFunc is a function type `domain -> range`.
type TypeFunc struct {
	Domain TypeExpr
	Range  TypeExpr
}

func (TypeFunc) typeExprNode() {}

// OpDecl records an operator's fixity and precedence.
type OpDecl struct {
	Name       ident.QualifiedIdent
	Fixity     Fixity
	Precedence int
}

// Rule is a function declaration's body: a defined equation or an
// external (foreign) binding.
type Rule interface {
	ruleNode()
}

// DefinedRule is a function body over a flat parameter list.
type DefinedRule struct {
	Params []int // variable indices bound by the parameters, len == arity
	Body   Expr
}

func (DefinedRule) ruleNode() {}

// ExternalRule marks a function as implemented outside the module; Name
// is the external symbol.
type ExternalRule struct {
	Name string
}

func (ExternalRule) ruleNode() {}

// FuncDecl is a flat function declaration.
type FuncDecl struct {
	Name       ident.QualifiedIdent
	Arity      int
	Visibility Visibility
	Type       TypeExpr
	Rule       Rule
}

// CombType classifies a Combined expression's head.
type CombType int

const (
	// FuncCall is a fully saturated function call.
	FuncCall CombType = iota
	// FuncPartCall is a partial function application; Missing > 0 is the
	// number of arguments still required.
	FuncPartCall
	// ConsCall is a fully saturated constructor application.
	ConsCall
	// ConsPartCall is a partial constructor application.
	ConsPartCall
)

// Expr is a flat-IR expression.
type Expr interface {
	exprNode()
}

// Variable is a bound-variable occurrence, referenced by index.
type Variable struct {
	Index int
}

func (Variable) exprNode() {}

// LiteralExpr wraps a Literal as an expression.
type LiteralExpr struct {
	Lit Literal
}

func (LiteralExpr) exprNode() {}

// Combined is a function or constructor combination, possibly partial.
type Combined struct {
	CombType CombType
	Name     ident.QualifiedIdent
	// Missing is the number of arguments still required to saturate the
	// combination; zero for FuncCall/ConsCall.
	Missing int
	Args    []Expr
}

func (Combined) exprNode() {}

// Binding is one `let` binder: a variable index bound to a right-hand
// side expression.
type Binding struct {
	Var  int
	Expr Expr
}

// Let is a (possibly mutually recursive) local binding group.
type Let struct {
	Bindings []Binding
	Body     Expr
}

func (Let) exprNode() {}

// Free introduces logic (free) variables scoped over Body.
type Free struct {
	Vars []int
	Body Expr
}

func (Free) exprNode() {}

// Or is non-deterministic disjunction between two expressions.
type Or struct {
	Left  Expr
	Right Expr
}

func (Or) exprNode() {}

// CaseType distinguishes rigid from flexible case analysis.
type CaseType int

const (
	CaseRigid CaseType = iota
	CaseFlex
)

// Pattern is a flat-IR case pattern: a saturated constructor applied to
// fresh variable binders, or a literal.
type Pattern interface {
	patternNode()
}

// ConstructorPattern matches a constructor, binding its arguments to Vars.
type ConstructorPattern struct {
	Name ident.QualifiedIdent
	Vars []int
}

func (ConstructorPattern) patternNode() {}

// LiteralPattern matches a literal value exactly.
type LiteralPattern struct {
	Lit Literal
}

func (LiteralPattern) patternNode() {}

// Branch is one pattern/expression arm of a Case.
type Branch struct {
	Pattern Pattern
	Expr    Expr
}

// Case is pattern-matching case analysis over a scrutinee.
type Case struct {
	SourceRef position.SourceRef
	CaseType  CaseType
	Scrutinee Expr
	Branches  []Branch
}

func (Case) exprNode() {}

// Typed is an expression with an explicit type annotation.
type Typed struct {
	Expr Expr
	Type TypeExpr
}

func (Typed) exprNode() {}

// Literal is a flat-IR literal. There is deliberately no flat string
// literal: strings are elaborated to character lists before reaching this
// representation (spec §3.6).
type Literal interface {
	literalNode()
}

// IntLit is an integer literal, carrying the implicitly generated
// identifier that attaches its polymorphic numeric type.
type IntLit struct {
	AttrIdent ident.Ident
	Value     int64
}

func (IntLit) literalNode() {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	SourceRef position.SourceRef
	Value     float64
}

func (FloatLit) literalNode() {}

// CharLit is a character literal.
type CharLit struct {
	SourceRef position.SourceRef
	Value     rune
}

func (CharLit) literalNode() {}
