// Package token defines the lexical token categories and the Token value
// produced by the lexer, including the virtual layout tokens synthesized
// by the off-side rule (spec §3.3, §4.3).
package token

import "github.com/curryfront/curryfront/pkg/position"

// Category classifies a Token. Categories enumerate keywords, punctuation,
// literal kinds, identifier kinds, virtual layout tokens, and end-of-file.
type Category int

const (
	ILLEGAL Category = iota
	EOF

	// Literals.
	INT
	FLOAT
	CHAR
	STRING

	// Identifier kinds.
	IDENT          // plain: foldr, x, Maybe
	QUALIFIED_IDENT // module-qualified: Data.Map.insert
	SYMBOLIC_IDENT // operator-style identifier: +++, >>=, :
	PRAGMA_IDENT   // name appearing inside a {-# ... #-} pragma

	// Virtual layout tokens (spec §3.4, §4.3): synthesized by the lexer,
	// correspond to no input characters.
	VOPEN  // virtual open brace
	VCLOSE // virtual close brace
	VSEMI  // virtual semicolon

	// Punctuation and explicit layout brackets.
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COMMA
	BACKTICK
	SEMICOLON

	// Reserved operator symbols with fixed lexical meaning.
	EQUALS     // =
	PIPE       // |  (guards, data alternatives)
	BACKSLASH  // \  (lambda)
	ARROW      // -> (case alternatives, function type)
	DARROW     // => (context arrows, reserved)
	AT         // @  (as-pattern)
	TILDE      // ~  (lazy pattern)
	DOTDOT     // .. (enumeration)
	DCOLON     // :: (type signature)
	UNDERSCORE // _

	// Keywords.
	KW_MODULE
	KW_WHERE
	KW_IMPORT
	KW_HIDING
	KW_QUALIFIED
	KW_AS
	KW_LET
	KW_IN
	KW_DO
	KW_CASE
	KW_FCASE
	KW_OF
	KW_IF
	KW_THEN
	KW_ELSE
	KW_DATA
	KW_NEWTYPE
	KW_TYPE
	KW_INFIX
	KW_INFIXL
	KW_INFIXR
	KW_FOREIGN
	KW_EXTERNAL
	KW_FREE

	// Pragma delimiters: {-# ... #-}, and the two recognised pragma names.
	PRAGMA_OPEN  // {-#
	PRAGMA_CLOSE // #-}
	KW_LANGUAGE
	KW_OPTIONS
)

var categoryNames = map[Category]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	INT: "INT", FLOAT: "FLOAT", CHAR: "CHAR", STRING: "STRING",
	IDENT: "IDENT", QUALIFIED_IDENT: "QUALIFIED_IDENT", SYMBOLIC_IDENT: "SYMBOLIC_IDENT", PRAGMA_IDENT: "PRAGMA_IDENT",
	VOPEN: "VOPEN", VCLOSE: "VCLOSE", VSEMI: "VSEMI",
	LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]", LBRACE: "{", RBRACE: "}",
	COMMA: ",", BACKTICK: "`", SEMICOLON: ";",
	EQUALS: "=", PIPE: "|", BACKSLASH: "\\", ARROW: "->", DARROW: "=>",
	AT: "@", TILDE: "~", DOTDOT: "..", DCOLON: "::", UNDERSCORE: "_",
	KW_MODULE: "module", KW_WHERE: "where", KW_IMPORT: "import", KW_HIDING: "hiding",
	KW_QUALIFIED: "qualified", KW_AS: "as", KW_LET: "let", KW_IN: "in", KW_DO: "do",
	KW_CASE: "case", KW_FCASE: "fcase", KW_OF: "of", KW_IF: "if", KW_THEN: "then", KW_ELSE: "else",
	KW_DATA: "data", KW_NEWTYPE: "newtype", KW_TYPE: "type",
	KW_INFIX: "infix", KW_INFIXL: "infixl", KW_INFIXR: "infixr",
	KW_FOREIGN: "foreign", KW_EXTERNAL: "external", KW_FREE: "free",
	PRAGMA_OPEN: "{-#", PRAGMA_CLOSE: "#-}", KW_LANGUAGE: "LANGUAGE", KW_OPTIONS: "OPTIONS",
}

// String renders a human-readable category name, used in error messages.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// keywords maps reserved words to their category. Curry is case-sensitive;
// unlike the keyword lookup of a case-insensitive language, no normalization
// is applied here.
var keywords = map[string]Category{
	"module": KW_MODULE, "where": KW_WHERE, "import": KW_IMPORT, "hiding": KW_HIDING,
	"qualified": KW_QUALIFIED, "as": KW_AS, "let": KW_LET, "in": KW_IN, "do": KW_DO,
	"case": KW_CASE, "fcase": KW_FCASE, "of": KW_OF, "if": KW_IF, "then": KW_THEN, "else": KW_ELSE,
	"data": KW_DATA, "newtype": KW_NEWTYPE, "type": KW_TYPE,
	"infix": KW_INFIX, "infixl": KW_INFIXL, "infixr": KW_INFIXR,
	"foreign": KW_FOREIGN, "external": KW_EXTERNAL, "free": KW_FREE,
	"_": UNDERSCORE,
}

// LookupIdent classifies a plain-identifier lexeme as a keyword category or
// plain IDENT.
func LookupIdent(literal string) Category {
	if cat, ok := keywords[literal]; ok {
		return cat
	}
	return IDENT
}

// IsVirtual reports whether a category is one of the three synthesized
// layout tokens.
func (c Category) IsVirtual() bool {
	return c == VOPEN || c == VCLOSE || c == VSEMI
}

// Token is a single lexical unit: its category, literal text, position,
// and — for qualified identifiers — the module-path prefix components.
type Token struct {
	Cat       Category
	Lit       string
	Pos       position.Position
	Qualifier []string // non-nil only for QUALIFIED_IDENT
}

// New builds a Token with no qualifier.
func New(cat Category, lit string, pos position.Position) Token {
	return Token{Cat: cat, Lit: lit, Pos: pos}
}

// NewQualified builds a QUALIFIED_IDENT token.
func NewQualified(lit string, pos position.Position, qualifier []string) Token {
	return Token{Cat: QUALIFIED_IDENT, Lit: lit, Pos: pos, Qualifier: qualifier}
}

// Is reports whether the token has the given category.
func (t Token) Is(cat Category) bool { return t.Cat == cat }

// Length returns the rune length of the token's literal text, used for
// computing end positions and error underlines.
func (t Token) Length() int {
	return len([]rune(t.Lit))
}

// Virtual synthesizes a zero-width virtual layout token at pos.
func Virtual(cat Category, pos position.Position) Token {
	return Token{Cat: cat, Pos: pos}
}
