package parser

import (
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/token"
)

// OpInfo records an operator's declared (or default) associativity and
// binding strength.
type OpInfo struct {
	Fixity     ast.Fixity
	Precedence int
}

// defaultPrecedence is Curry's (and Haskell's) fallback for an operator
// with no fixity declaration in scope: infixl 9.
const defaultPrecedence = 9

// FixityTable resolves an operator's precedence and associativity while
// parsing expressions, patterns, and left-hand sides. It is seeded with the
// Prelude's standard operators and then updated by any FixityDecl the
// parser encounters.
type FixityTable struct {
	ops map[string]OpInfo
}

// NewFixityTable builds a table seeded with the operators the Prelude
// fixes at module scope (mirroring the Haskell Report's Prelude fixity
// table, which Curry inherits).
func NewFixityTable() *FixityTable {
	t := &FixityTable{ops: make(map[string]OpInfo)}
	seed := []struct {
		prec  int
		fix   ast.Fixity
		names []string
	}{
		{9, ast.FixityRight, []string{"."}},
		{9, ast.FixityLeft, []string{"!!"}},
		{8, ast.FixityRight, []string{"^", "^^", "**"}},
		{7, ast.FixityLeft, []string{"*", "/", "div", "mod", "quot", "rem"}},
		{6, ast.FixityLeft, []string{"+", "-"}},
		{5, ast.FixityRight, []string{":", "++"}},
		{4, ast.FixityNone, []string{"==", "/=", "<", "<=", ">=", ">", "=:="}},
		{3, ast.FixityRight, []string{"&&"}},
		{2, ast.FixityRight, []string{"||"}},
		{1, ast.FixityLeft, []string{">>", ">>="}},
		{1, ast.FixityLeft, []string{"&"}},
		{0, ast.FixityRight, []string{"$", "$!", "seq"}},
	}
	for _, s := range seed {
		for _, name := range s.names {
			t.ops[name] = OpInfo{Fixity: s.fix, Precedence: s.prec}
		}
	}
	return t
}

// Declare records a fixity declaration, overriding any default or earlier
// declaration for the same names.
func (t *FixityTable) Declare(names []string, fixity ast.Fixity, precedence int) {
	for _, n := range names {
		t.ops[n] = OpInfo{Fixity: fixity, Precedence: precedence}
	}
}

// Lookup returns an operator's fixity, defaulting to infixl 9 when no
// declaration (explicit or Prelude-seeded) covers it.
func (t *FixityTable) Lookup(name string) OpInfo {
	if info, ok := t.ops[name]; ok {
		return info
	}
	return OpInfo{Fixity: ast.FixityLeft, Precedence: defaultPrecedence}
}

// scanFixities runs a lightweight lookahead pass over the raw token stream
// to collect every fixity declaration's operator names before real parsing
// begins, so a fixity declared after its first use still governs that use
// (spec §4.6 distinguishes left/right/non-associative; precedence is
// optional in surface syntax).
func scanFixities(toks []token.Token) *FixityTable {
	t := NewFixityTable()
	for i := 0; i < len(toks); i++ {
		var fixity ast.Fixity
		switch toks[i].Cat {
		case token.KW_INFIXL:
			fixity = ast.FixityLeft
		case token.KW_INFIXR:
			fixity = ast.FixityRight
		case token.KW_INFIX:
			fixity = ast.FixityNone
		default:
			continue
		}
		i++
		prec := defaultPrecedence
		if i < len(toks) && toks[i].Cat == token.INT {
			prec = parseDecimal(toks[i].Lit)
			i++
		}
		var names []string
		for i < len(toks) {
			tok := toks[i]
			if tok.Cat == token.SYMBOLIC_IDENT || tok.Cat == token.IDENT {
				names = append(names, tok.Lit)
				i++
			} else if tok.Cat == token.BACKTICK && i+2 < len(toks) && toks[i+1].Cat == token.IDENT && toks[i+2].Cat == token.BACKTICK {
				names = append(names, toks[i+1].Lit)
				i += 3
			} else {
				break
			}
			if i < len(toks) && toks[i].Cat == token.COMMA {
				i++
				continue
			}
			break
		}
		t.Declare(names, fixity, prec)
		i--
	}
	return t
}

func parseDecimal(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
