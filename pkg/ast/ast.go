// Package ast defines the surface Abstract Syntax Tree produced by the
// language parser (spec §3.5): module headers, declarations, type
// expressions, patterns, and expressions, each carrying a source
// position for diagnostics.
package ast

import (
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/position"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() position.Position
}

// Decl is a top-level or local declaration.
type Decl interface {
	Node
	declNode()
}

// TypeExpr is a surface type expression.
type TypeExpr interface {
	Node
	typeExprNode()
}

// Pattern is a surface pattern.
type Pattern interface {
	Node
	patternNode()
}

// Expr is a surface expression.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a do-block or list-comprehension statement.
type Stmt interface {
	Node
	stmtNode()
}

// Literal is a literal value, shared between pattern and expression
// variants and carrying its own source reference (spec §3.5).
type Literal interface {
	Node
	literalNode()
}

// ExportItem is one entry of a module's export list.
type ExportItem interface {
	Node
	exportItemNode()
}

// --- module header ---

// Pragma is a `{-# ... #-}` annotation attached to a module.
type Pragma interface {
	Node
	pragmaNode()
}

// LanguagePragma lists language extensions, classified into recognized
// and unrecognized names.
type LanguagePragma struct {
	PragmaPos position.Position
	Known     []string
	Unknown   []string
}

func (p *LanguagePragma) Pos() position.Position { return p.PragmaPos }
func (p *LanguagePragma) pragmaNode()             {}

// OptionsPragma carries an optional tool tag and a free-text argument
// string, e.g. `{-# OPTIONS_GHC -Wall #-}`.
type OptionsPragma struct {
	PragmaPos position.Position
	Tool      string // "" if untagged
	Args      string
}

func (p *OptionsPragma) Pos() position.Position { return p.PragmaPos }
func (p *OptionsPragma) pragmaNode()             {}

// ExportVar exports a single value or operator binding.
type ExportVar struct {
	Name ident.QualifiedIdent
}

func (e *ExportVar) Pos() position.Position { return e.Name.Ident.Pos() }
func (e *ExportVar) exportItemNode()         {}

// ExportType exports a type constructor, optionally with a restricted
// set of data constructors; Constructors == nil means "export all".
type ExportType struct {
	Name         ident.QualifiedIdent
	Constructors []ident.QualifiedIdent
}

func (e *ExportType) Pos() position.Position { return e.Name.Ident.Pos() }
func (e *ExportType) exportItemNode()         {}

// ExportModule re-exports everything imported from a module.
type ExportModule struct {
	ModulePos position.Position
	Module    ident.ModuleIdent
}

func (e *ExportModule) Pos() position.Position { return e.ModulePos }
func (e *ExportModule) exportItemNode()         {}

// ImportItem restricts an import to (or hides) a named entity.
type ImportItem struct {
	Name         ident.Ident
	Constructors []ident.Ident // nil unless Name denotes a type
}

// ImportDecl is a single `import` declaration.
type ImportDecl struct {
	ImportPos position.Position
	Module    ident.ModuleIdent
	Qualified bool
	Alias     *ident.ModuleIdent
	Hiding    bool
	Items     []ImportItem // nil means "import everything"
}

func (i *ImportDecl) Pos() position.Position { return i.ImportPos }

// Module is the root node: a single compilation unit.
type Module struct {
	Pragmas []Pragma
	Name    ident.ModuleIdent
	// Exports is nil when no export list was written, meaning "export
	// everything"; a non-nil empty slice is a (legal) empty list.
	Exports []ExportItem
	Imports []ImportDecl
	Decls   []Decl
}

func (m *Module) Pos() position.Position { return m.Name.Pos() }

// --- declarations ---

// ConstructorDecl is one alternative of a data or newtype declaration.
type ConstructorDecl struct {
	Name     ident.Ident
	ArgTypes []TypeExpr
	// Fields is nil unless the constructor uses record syntax, in which
	// case it has the same length as ArgTypes.
	Fields []ident.Ident
}

func (c ConstructorDecl) Pos() position.Position { return c.Name.Pos() }

// Visibility classifies whether a declaration is exported.
type Visibility int

const (
	Private Visibility = iota
	Public
)

// DataDecl declares an algebraic data type.
type DataDecl struct {
	DeclPos      position.Position
	Name         ident.Ident
	Visibility   Visibility
	TypeParams   []ident.Ident
	Constructors []ConstructorDecl
	Deriving     []ident.QualifiedIdent
}

func (d *DataDecl) Pos() position.Position { return d.DeclPos }
func (d *DataDecl) declNode()               {}

// NewtypeDecl declares a single-constructor, single-field wrapper type.
type NewtypeDecl struct {
	DeclPos     position.Position
	Name        ident.Ident
	Visibility  Visibility
	TypeParams  []ident.Ident
	Constructor ConstructorDecl
	Deriving    []ident.QualifiedIdent
}

func (d *NewtypeDecl) Pos() position.Position { return d.DeclPos }
func (d *NewtypeDecl) declNode()               {}

// TypeSynonymDecl declares a `type` alias.
type TypeSynonymDecl struct {
	DeclPos    position.Position
	Name       ident.Ident
	Visibility Visibility
	TypeParams []ident.Ident
	RHS        TypeExpr
}

func (d *TypeSynonymDecl) Pos() position.Position { return d.DeclPos }
func (d *TypeSynonymDecl) declNode()               {}

// Fixity classifies an operator's associativity.
type Fixity int

const (
	FixityLeft Fixity = iota
	FixityRight
	FixityNone
)

// FixityDecl declares the associativity and (optional in surface syntax)
// precedence of one or more operators.
type FixityDecl struct {
	DeclPos    position.Position
	Fixity     Fixity
	Precedence *int // nil when omitted in surface syntax
	Operators  []ident.Ident
}

func (d *FixityDecl) Pos() position.Position { return d.DeclPos }
func (d *FixityDecl) declNode()               {}

// TypeSigDecl declares the type of one or more names.
type TypeSigDecl struct {
	DeclPos position.Position
	Names   []ident.Ident
	Type    TypeExpr
}

func (d *TypeSigDecl) Pos() position.Position { return d.DeclPos }
func (d *TypeSigDecl) declNode()               {}

// FuncDecl defines a function or operator by one or more equations, all
// sharing the same left-hand-side head.
type FuncDecl struct {
	DeclPos    position.Position
	Name       ident.Ident
	Visibility Visibility
	Equations  []Equation
}

func (d *FuncDecl) Pos() position.Position { return d.DeclPos }
func (d *FuncDecl) declNode()               {}

// ForeignDecl declares a foreign-language binding.
type ForeignDecl struct {
	DeclPos  position.Position
	Calling  string // e.g. "ccall"
	Name     ident.Ident
	Type     TypeExpr
	External string // the foreign symbol name
}

func (d *ForeignDecl) Pos() position.Position { return d.DeclPos }
func (d *ForeignDecl) declNode()               {}

// ExternalDecl marks a declared function as implemented externally (no
// equations in source).
type ExternalDecl struct {
	DeclPos position.Position
	Name    ident.Ident
}

func (d *ExternalDecl) Pos() position.Position { return d.DeclPos }
func (d *ExternalDecl) declNode()               {}

// PatternDecl binds a pattern to a right-hand side, e.g. `(x, y) = pair`.
type PatternDecl struct {
	DeclPos position.Position
	LHS     Pattern
	RHS     RHS
}

func (d *PatternDecl) Pos() position.Position { return d.DeclPos }
func (d *PatternDecl) declNode()               {}

// FreeDecl introduces logic (free) variables local to a right-hand side.
type FreeDecl struct {
	DeclPos position.Position
	Vars    []ident.Ident
}

func (d *FreeDecl) Pos() position.Position { return d.DeclPos }
func (d *FreeDecl) declNode()               {}

// --- type expressions ---

// TypeVarExpr is a type variable occurrence.
type TypeVarExpr struct {
	Name ident.Ident
}

func (t *TypeVarExpr) Pos() position.Position { return t.Name.Pos() }
func (t *TypeVarExpr) typeExprNode()           {}

// TypeConsExpr applies a type constructor to zero or more arguments.
type TypeConsExpr struct {
	ConsPos position.Position
	Name    ident.QualifiedIdent
	Args    []TypeExpr
}

func (t *TypeConsExpr) Pos() position.Position { return t.ConsPos }
func (t *TypeConsExpr) typeExprNode()           {}

// TypeTupleExpr is a tuple type `(t1, ..., tn)`, n >= 2.
type TypeTupleExpr struct {
	TuplePos position.Position
	Elems    []TypeExpr
}

func (t *TypeTupleExpr) Pos() position.Position { return t.TuplePos }
func (t *TypeTupleExpr) typeExprNode()           {}

// TypeListExpr is a list type `[t]`.
type TypeListExpr struct {
	ListPos position.Position
	Elem    TypeExpr
}

func (t *TypeListExpr) Pos() position.Position { return t.ListPos }
func (t *TypeListExpr) typeExprNode()           {}

// TypeArrowExpr is a function type `domain -> range`.
type TypeArrowExpr struct {
	Domain TypeExpr
	Range  TypeExpr
}

func (t *TypeArrowExpr) Pos() position.Position { return t.Domain.Pos() }
func (t *TypeArrowExpr) typeExprNode()           {}

// TypeParenExpr is an explicitly parenthesized type, preserved so that
// pretty-printing can round-trip the source.
type TypeParenExpr struct {
	ParenPos position.Position
	Inner    TypeExpr
}

func (t *TypeParenExpr) Pos() position.Position { return t.ParenPos }
func (t *TypeParenExpr) typeExprNode()           {}

// --- equations, left-hand sides, right-hand sides ---

// LHS is a function equation's left-hand side, in one of three shapes
// (spec §4.6): prefix, infix operator, or applied.
type LHS interface {
	Node
	lhsNode()
}

// PrefixLHS is `f p1 ... pn`.
type PrefixLHS struct {
	Name ident.Ident
	Args []Pattern
}

func (l *PrefixLHS) Pos() position.Position { return l.Name.Pos() }
func (l *PrefixLHS) lhsNode()                {}

// OperatorLHS is `p1 ⊕ p2`.
type OperatorLHS struct {
	Left  Pattern
	Op    ident.Ident
	Right Pattern
}

func (l *OperatorLHS) Pos() position.Position { return l.Left.Pos() }
func (l *OperatorLHS) lhsNode()                {}

// AppliedLHS is `(lhs) p1 ... pn`: a parenthesized left-hand side applied
// to further argument patterns.
type AppliedLHS struct {
	Base LHS
	Args []Pattern
}

func (l *AppliedLHS) Pos() position.Position { return l.Base.Pos() }
func (l *AppliedLHS) lhsNode()                {}

// Equation is one equation of a function declaration.
type Equation struct {
	LHS LHS
	RHS RHS
}

func (e Equation) Pos() position.Position { return e.LHS.Pos() }

// RHS is a function or pattern binding's right-hand side: simple or
// guarded, each with optional local `where` bindings.
type RHS interface {
	Node
	rhsNode()
}

// SimpleRHS is `= expr [where decls]`.
type SimpleRHS struct {
	EqPos position.Position
	Expr  Expr
	Where []Decl
}

func (r *SimpleRHS) Pos() position.Position { return r.EqPos }
func (r *SimpleRHS) rhsNode()                {}

// GuardedExpr is one `| cond = expr` guard arm; Conds holds one entry per
// comma-separated guard condition (boolean guards and pattern guards are
// both recorded as expressions here; pattern-guard desugaring is a later,
// out-of-scope pass).
type GuardedExpr struct {
	BarPos position.Position
	Conds  []Expr
	Result Expr
}

func (g GuardedExpr) Pos() position.Position { return g.BarPos }

// GuardedRHS is `| cond1 = e1 | cond2 = e2 ... [where decls]`.
type GuardedRHS struct {
	Guards []GuardedExpr
	Where  []Decl
}

func (r *GuardedRHS) Pos() position.Position { return r.Guards[0].Pos() }
func (r *GuardedRHS) rhsNode()                {}

// --- literals ---

// IntLiteral is an integer literal. AttrIdent is an implicitly generated
// identifier carrying the literal's polymorphic numeric type, assigned by
// a later (out-of-scope) pass; it is nil until then.
type IntLiteral struct {
	LitPos    position.Position
	Value     int64
	AttrIdent *ident.Ident
}

func (l *IntLiteral) Pos() position.Position { return l.LitPos }
func (l *IntLiteral) literalNode()            {}

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	LitPos position.Position
	Value  float64
}

func (l *FloatLiteral) Pos() position.Position { return l.LitPos }
func (l *FloatLiteral) literalNode()            {}

// CharLiteral is a character literal.
type CharLiteral struct {
	LitPos position.Position
	Value  rune
}

func (l *CharLiteral) Pos() position.Position { return l.LitPos }
func (l *CharLiteral) literalNode()            {}

// StringLiteral is a string literal.
type StringLiteral struct {
	LitPos position.Position
	Value  string
}

func (l *StringLiteral) Pos() position.Position { return l.LitPos }
func (l *StringLiteral) literalNode()            {}

// --- patterns ---

// LiteralPattern matches a literal value exactly.
type LiteralPattern struct {
	Lit Literal
}

func (p *LiteralPattern) Pos() position.Position { return p.Lit.Pos() }
func (p *LiteralPattern) patternNode()            {}

// NegLiteralPattern matches the negation of a numeric literal, produced
// by a dedicated grammar rule rather than general unary minus (spec
// §4.6).
type NegLiteralPattern struct {
	MinusPos position.Position
	Lit      Literal
}

func (p *NegLiteralPattern) Pos() position.Position { return p.MinusPos }
func (p *NegLiteralPattern) patternNode()            {}

// VarPattern binds an identifier, or matches anything with `_`.
type VarPattern struct {
	Name ident.Ident
}

func (p *VarPattern) Pos() position.Position { return p.Name.Pos() }
func (p *VarPattern) patternNode()            {}

// ConsPattern matches a data constructor applied to argument patterns.
type ConsPattern struct {
	ConsPos position.Position
	Name    ident.QualifiedIdent
	Args    []Pattern
}

func (p *ConsPattern) Pos() position.Position { return p.ConsPos }
func (p *ConsPattern) patternNode()            {}

// InfixPattern matches the infix constructor application `p1 : p2` (or
// any infix data constructor).
type InfixPattern struct {
	Left  Pattern
	Op    ident.QualifiedIdent
	Right Pattern
}

func (p *InfixPattern) Pos() position.Position { return p.Left.Pos() }
func (p *InfixPattern) patternNode()            {}

// ParenPattern is an explicitly parenthesized pattern. The parser does not
// build it: a parenthesized single pattern is returned as the pattern
// inside the parentheses.
type ParenPattern struct {
	ParenPos position.Position
	Inner    Pattern
}

func (p *ParenPattern) Pos() position.Position { return p.ParenPos }
func (p *ParenPattern) patternNode()            {}

// FieldPattern is one `name = pattern` entry of a record pattern.
type FieldPattern struct {
	Name    ident.QualifiedIdent
	Pattern Pattern
}

// RecordPattern matches a record constructor by field name.
type RecordPattern struct {
	ConsPos position.Position
	Name    ident.QualifiedIdent
	Fields  []FieldPattern
}

func (p *RecordPattern) Pos() position.Position { return p.ConsPos }
func (p *RecordPattern) patternNode()            {}

// TuplePattern matches a tuple, n >= 2.
type TuplePattern struct {
	TuplePos position.Position
	Elems    []Pattern
}

func (p *TuplePattern) Pos() position.Position { return p.TuplePos }
func (p *TuplePattern) patternNode()            {}

// ListPattern matches an explicit-bracket list `[p1, ..., pn]`.
type ListPattern struct {
	ListPos position.Position
	Elems   []Pattern
}

func (p *ListPattern) Pos() position.Position { return p.ListPos }
func (p *ListPattern) patternNode()            {}

// AsPattern binds a name to the whole of an inner pattern: `n@p`.
type AsPattern struct {
	Name  ident.Ident
	Inner Pattern
}

func (p *AsPattern) Pos() position.Position { return p.Name.Pos() }
func (p *AsPattern) patternNode()            {}

// LazyPattern defers matching of its inner pattern: `~p`.
type LazyPattern struct {
	TildePos position.Position
	Inner    Pattern
}

func (p *LazyPattern) Pos() position.Position { return p.TildePos }
func (p *LazyPattern) patternNode()            {}

// FuncPattern is a function applied to argument patterns used itself as
// a pattern (a Curry extension beyond plain constructor patterns).
type FuncPattern struct {
	FuncPos position.Position
	Name    ident.QualifiedIdent
	Args    []Pattern
}

func (p *FuncPattern) Pos() position.Position { return p.FuncPos }
func (p *FuncPattern) patternNode()            {}

// InfixFuncPattern is the infix form of FuncPattern: `p1 \`f\` p2`.
type InfixFuncPattern struct {
	Left  Pattern
	Op    ident.QualifiedIdent
	Right Pattern
}

func (p *InfixFuncPattern) Pos() position.Position { return p.Left.Pos() }
func (p *InfixFuncPattern) patternNode()            {}

// --- statements (do-blocks and list comprehensions) ---

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) Pos() position.Position { return s.Expr.Pos() }
func (s *ExprStmt) stmtNode()               {}

// DeclStmt is a local declaration statement, e.g. a `let` without `in`
// inside a `do`-block (spec §4.6).
type DeclStmt struct {
	LetPos position.Position
	Decls  []Decl
}

func (s *DeclStmt) Pos() position.Position { return s.LetPos }
func (s *DeclStmt) stmtNode()               {}

// BindStmt is a monadic or generator bind `pat <- expr`.
type BindStmt struct {
	Pattern Pattern
	Expr    Expr
}

func (s *BindStmt) Pos() position.Position { return s.Pattern.Pos() }
func (s *BindStmt) stmtNode()               {}

// --- case expressions ---

// CaseKind distinguishes rigid (`case`) from flexible (`fcase`) case
// analysis (spec §4.6).
type CaseKind int

const (
	CaseRigid CaseKind = iota
	CaseFlex
)

// Alt is one `pattern -> rhs` alternative of a case expression.
type Alt struct {
	Pattern Pattern
	RHS     RHS
}

func (a Alt) Pos() position.Position { return a.Pattern.Pos() }

// --- expressions ---

// LiteralExpr wraps a Literal as an expression.
type LiteralExpr struct {
	Lit Literal
}

func (e *LiteralExpr) Pos() position.Position { return e.Lit.Pos() }
func (e *LiteralExpr) exprNode()               {}

// VarExpr is a variable reference.
type VarExpr struct {
	Name ident.QualifiedIdent
}

func (e *VarExpr) Pos() position.Position { return e.Name.Ident.Pos() }
func (e *VarExpr) exprNode()               {}

// ConsExpr is a bare data constructor reference.
type ConsExpr struct {
	Name ident.QualifiedIdent
}

func (e *ConsExpr) Pos() position.Position { return e.Name.Ident.Pos() }
func (e *ConsExpr) exprNode()               {}

// ParenExpr is an explicitly parenthesized expression.
type ParenExpr struct {
	ParenPos position.Position
	Inner    Expr
}

func (e *ParenExpr) Pos() position.Position { return e.ParenPos }
func (e *ParenExpr) exprNode()               {}

// TypedExpr is an expression with an explicit type annotation `e :: t`.
type TypedExpr struct {
	Inner Expr
	Type  TypeExpr
}

func (e *TypedExpr) Pos() position.Position { return e.Inner.Pos() }
func (e *TypedExpr) exprNode()               {}

// FieldExpr is one `name = expr` entry of a record construction or
// update.
type FieldExpr struct {
	Name ident.QualifiedIdent
	Expr Expr
}

// RecordExpr constructs a record value via its constructor and fields.
type RecordExpr struct {
	ConsPos position.Position
	Name    ident.QualifiedIdent
	Fields  []FieldExpr
}

func (e *RecordExpr) Pos() position.Position { return e.ConsPos }
func (e *RecordExpr) exprNode()               {}

// RecordUpdateExpr updates named fields of an existing record value.
type RecordUpdateExpr struct {
	Base   Expr
	Fields []FieldExpr
}

func (e *RecordUpdateExpr) Pos() position.Position { return e.Base.Pos() }
func (e *RecordUpdateExpr) exprNode()               {}

// TupleExpr is a tuple expression, n >= 2.
type TupleExpr struct {
	TuplePos position.Position
	Elems    []Expr
}

func (e *TupleExpr) Pos() position.Position { return e.TuplePos }
func (e *TupleExpr) exprNode()               {}

// ListExpr is an explicit-bracket list expression.
type ListExpr struct {
	ListPos position.Position
	Elems   []Expr
}

func (e *ListExpr) Pos() position.Position { return e.ListPos }
func (e *ListExpr) exprNode()               {}

// ListCompExpr is a list comprehension `[e | q1, ..., qn]`, where each
// qualifier is a generator, guard, or local binding, shared with the
// do-block statement grammar (spec §4.6).
type ListCompExpr struct {
	ListPos    position.Position
	Result     Expr
	Qualifiers []Stmt
}

func (e *ListCompExpr) Pos() position.Position { return e.ListPos }
func (e *ListCompExpr) exprNode()               {}

// EnumKind classifies an arithmetic sequence expression.
type EnumKind int

const (
	EnumFrom EnumKind = iota
	EnumFromTo
	EnumFromThen
	EnumFromThenTo
)

// EnumExpr is an arithmetic sequence `[from ..]`, `[from .. to]`,
// `[from, then ..]`, or `[from, then .. to]`.
type EnumExpr struct {
	ListPos position.Position
	Kind    EnumKind
	From    Expr
	Then    Expr // nil unless Kind is EnumFromThen or EnumFromThenTo
	To      Expr // nil unless Kind is EnumFromTo or EnumFromThenTo
}

func (e *EnumExpr) Pos() position.Position { return e.ListPos }
func (e *EnumExpr) exprNode()               {}

// UnaryMinusExpr is general unary negation `-e` (distinct from the
// dedicated negative-literal pattern grammar, spec §4.6).
type UnaryMinusExpr struct {
	MinusPos position.Position
	Operand  Expr
}

func (e *UnaryMinusExpr) Pos() position.Position { return e.MinusPos }
func (e *UnaryMinusExpr) exprNode()               {}

// AppExpr is function application `f x`, left-associating chains
// represented by nesting.
type AppExpr struct {
	Func Expr
	Arg  Expr
}

func (e *AppExpr) Pos() position.Position { return e.Func.Pos() }
func (e *AppExpr) exprNode()               {}

// InfixAppExpr is an infix operator application `l op r`.
type InfixAppExpr struct {
	Left  Expr
	Op    ident.QualifiedIdent
	Right Expr
}

func (e *InfixAppExpr) Pos() position.Position { return e.Left.Pos() }
func (e *InfixAppExpr) exprNode()               {}

// LeftSectionExpr is a left operator section `(e op)`.
type LeftSectionExpr struct {
	SectionPos position.Position
	Left       Expr
	Op         ident.QualifiedIdent
}

func (e *LeftSectionExpr) Pos() position.Position { return e.SectionPos }
func (e *LeftSectionExpr) exprNode()               {}

// RightSectionExpr is a right operator section `(op e)`.
type RightSectionExpr struct {
	SectionPos position.Position
	Op         ident.QualifiedIdent
	Right      Expr
}

func (e *RightSectionExpr) Pos() position.Position { return e.SectionPos }
func (e *RightSectionExpr) exprNode()               {}

// LambdaExpr is an anonymous function `\p1 ... pn -> body`.
type LambdaExpr struct {
	BackslashPos position.Position
	Params       []Pattern
	Body         Expr
}

func (e *LambdaExpr) Pos() position.Position { return e.BackslashPos }
func (e *LambdaExpr) exprNode()               {}

// LetExpr is `let decls in body`.
type LetExpr struct {
	LetPos position.Position
	Decls  []Decl
	Body   Expr
}

func (e *LetExpr) Pos() position.Position { return e.LetPos }
func (e *LetExpr) exprNode()               {}

// DoExpr is a `do`-block.
type DoExpr struct {
	DoPos position.Position
	Stmts []Stmt
}

func (e *DoExpr) Pos() position.Position { return e.DoPos }
func (e *DoExpr) exprNode()               {}

// IfExpr is `if cond then t else f`.
type IfExpr struct {
	IfPos position.Position
	Cond  Expr
	Then  Expr
	Else  Expr
}

func (e *IfExpr) Pos() position.Position { return e.IfPos }
func (e *IfExpr) exprNode()               {}

// CaseExpr is `case e of { alts }`.
type CaseExpr struct {
	CasePos   position.Position
	Kind      CaseKind
	Scrutinee Expr
	Alts      []Alt
}

func (e *CaseExpr) Pos() position.Position { return e.CasePos }
func (e *CaseExpr) exprNode()               {}

// FCaseExpr is a flexible case analysis over alternatives alone, with no
// scrutinee field. The parser does not build it: `fcase e of alts` is
// parsed into a CaseExpr whose Kind is CaseFlex.
type FCaseExpr struct {
	FCasePos position.Position
	Alts     []Alt
}

func (e *FCaseExpr) Pos() position.Position { return e.FCasePos }
func (e *FCaseExpr) exprNode()               {}
