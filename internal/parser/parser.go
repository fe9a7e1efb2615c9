// Package parser implements the Curry surface grammar (spec §4.6) over the
// pcomb engine (C5), producing pkg/ast nodes. The grammar is written as
// ordinary recursive-descent Go methods driven by a pcomb.Cursor: layout
// blocks go through pcomb's LayoutOn/LayoutOff/LayoutEnd exactly as the
// engine intends, and the handful of shapes that cannot be told apart by a
// single lookahead token (is this an `::` type signature, a function
// equation, or a pattern binding?) use the cursor's Save/Restore to try a
// shape and backtrack — the same mechanism pcomb.AltLong uses internally.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/curryfront/curryfront/internal/diag"
	"github.com/curryfront/curryfront/internal/lexer"
	"github.com/curryfront/curryfront/internal/literate"
	"github.com/curryfront/curryfront/internal/pcomb"
	"github.com/curryfront/curryfront/internal/srcref"
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/position"
	"github.com/curryfront/curryfront/pkg/token"
)

// Parser holds the mutable state of one parse: a cursor over the token
// stream and the fixity table used to resolve operator expressions.
type Parser struct {
	cur  *pcomb.Cursor
	fix  *FixityTable
	file string
}

// New builds a Parser over src, pre-scanning its raw token stream for
// fixity declarations before any layout-sensitive parsing begins.
func New(file, src string) *Parser {
	return &Parser{
		cur:  pcomb.NewCursor(lexer.New(file, src)),
		fix:  scanFixities(tokenizeAll(file, src)),
		file: file,
	}
}

func tokenizeAll(file, src string) []token.Token {
	l := lexer.New(file, src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Cat == token.EOF {
			return toks
		}
	}
}

// ParseModule runs the literate preprocessor (if requested) and the full
// grammar over src, returning the parsed module paired with any warnings,
// or the first fatal diagnostic encountered (spec §6.3).
func ParseModule(file, src string, isLiterate bool) diag.Result[*ast.Module] {
	if isLiterate {
		pre, err := literate.Preprocess(file, src, true)
		if err != nil {
			return diag.Fail[*ast.Module](diag.New(diag.KindLiterate, err.Pos, err.Message))
		}
		src = pre
	}
	p := New(file, src)
	m := p.parseModule()
	if f := p.cur.Fatal(); f != nil {
		return diag.Fail[*ast.Module](*f)
	}
	if m.Name.Equal(ident.Main) {
		if name := moduleNameFromFile(file); name != "" {
			m.Name = ident.NewModuleIdent(m.Name.Pos(), name)
		}
	}
	m = srcref.Inject(m)
	return diag.Ok(m).WithWarnings(p.cur.Warnings()...)
}

// moduleNameFromFile derives a module name from file's basename (spec
// §4.6: a still-canonical "Main" module is renamed after the source
// file it came from), stripping a literate or ordinary Curry extension.
// Returns "" for inputs with no usable basename (e.g. "<stdin>" or a
// name containing characters no identifier can start or continue with),
// leaving the canonical default in place.
func moduleNameFromFile(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, ".lcurry")
	base = strings.TrimSuffix(base, ".curry")
	if base == "" {
		return ""
	}
	for i, r := range base {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isLetter {
			return ""
		}
		if !isLetter && !isDigit && r != '_' && r != '\'' {
			return ""
		}
	}
	return base
}

// --- small cursor helpers shared by every grammar file in this package ---

func (p *Parser) peek() token.Token   { return p.cur.Peek() }
func (p *Parser) advance() token.Token { return p.cur.Advance() }
func (p *Parser) failed() bool         { return p.cur.Fatal() != nil }

func (p *Parser) expect(cat token.Category) bool { return p.cur.Expect(cat) }

// expectMsg behaves like expect but records a custom message instead of the
// generic "expected X" text (spec §4.6: "if/then/else ... omission yields a
// specific error message", e.g. "then expected").
func (p *Parser) expectMsg(cat token.Category, msg string) bool {
	if p.peek().Cat == cat {
		p.advance()
		return true
	}
	p.cur.Fail(msg)
	return false
}

func (p *Parser) ident(tok token.Token) ident.Ident {
	return ident.NewIdent(tok.Pos, tok.Lit)
}

// qualifiedFromToken builds a QualifiedIdent from an IDENT, SYMBOLIC_IDENT,
// or QUALIFIED_IDENT token.
func qualifiedFromToken(tok token.Token) ident.QualifiedIdent {
	id := ident.NewIdent(tok.Pos, tok.Lit)
	if tok.Cat != token.QUALIFIED_IDENT || len(tok.Qualifier) == 0 {
		return ident.NewUnqualified(id)
	}
	mod := ident.NewModuleIdent(tok.Pos, tok.Qualifier...)
	return ident.NewQualified(mod, id)
}

// --- layout-block helper (spec §4.5), generalized from pcomb.Layout to a
// heterogeneous list of items separated by `;` or a virtual semicolon ---

// parseBlock runs parseItem repeatedly, separated by `;`/VSEMI, inside an
// explicit-brace or implicit-column block exactly as pcomb.Layout
// dispatches, stopping at the matching close. parseItem reports its own
// failure via the shared cursor.
func (p *Parser) parseBlock(parseItem func() bool) bool {
	c := p.cur
	explicit := p.peek().Cat == token.LBRACE
	closeCat := token.VCLOSE
	if explicit {
		p.advance()
		pcomb.LayoutOff(c)
		closeCat = token.RBRACE
	} else {
		pcomb.LayoutOn(c)
	}

	first := true
	for p.peek().Cat != closeCat && p.peek().Cat != token.EOF {
		if !first {
			sep := token.VSEMI
			if explicit {
				sep = token.SEMICOLON
			}
			if p.peek().Cat == sep {
				p.advance()
				continue
			}
			break
		}
		if !parseItem() {
			pcomb.LayoutEnd(c)
			return false
		}
		first = false
	}

	if explicit {
		if !p.expect(token.RBRACE) {
			pcomb.LayoutEnd(c)
			return false
		}
	} else if p.peek().Cat == token.VCLOSE {
		p.advance()
	}
	pcomb.LayoutEnd(c)
	return true
}

// parseSeparatedBlock collects results into a slice, for the common case
// of a block of homogeneous items.
func parseSeparatedBlock[T any](p *Parser, parseItem func() (T, bool)) ([]T, bool) {
	var out []T
	ok := p.parseBlock(func() bool {
		v, ok := parseItem()
		if !ok {
			return false
		}
		out = append(out, v)
		return true
	})
	return out, ok
}

// peekOperatorTok reports whether the lookahead denotes an infix operator
// usable by both the pattern and expression grammars: a bare
// SYMBOLIC_IDENT, or a backtick-quoted identifier `f`. It never consumes
// more than it needs to decide, restoring the cursor before returning.
func (p *Parser) peekOperatorTok() (token.Token, string, bool) {
	tok := p.peek()
	if tok.Cat == token.SYMBOLIC_IDENT {
		return tok, tok.Lit, true
	}
	if tok.Cat == token.BACKTICK {
		saved := p.cur.Save()
		defer p.cur.Restore(saved)
		p.advance()
		name := p.peek()
		if name.Cat != token.IDENT && name.Cat != token.QUALIFIED_IDENT {
			return token.Token{}, "", false
		}
		p.advance()
		if p.peek().Cat != token.BACKTICK {
			return token.Token{}, "", false
		}
		return name, name.Lit, true
	}
	return token.Token{}, "", false
}

// advanceOperatorTok consumes the operator token sequence identified by
// peekOperatorTok (either the bare symbol, or the backtick/name/backtick
// triple).
func (p *Parser) advanceOperatorTok(tok token.Token) {
	if p.peek().Cat == token.BACKTICK {
		p.advance() // `
		p.advance() // name
		p.advance() // `
		return
	}
	p.advance()
}

func (p *Parser) errorf(pos position.Position, format string, args ...any) {
	p.cur.Warn(diag.New(diag.KindParse, pos, fmt.Sprintf(format, args...)))
}
