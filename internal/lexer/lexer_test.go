package lexer_test

import (
	"testing"

	"github.com/curryfront/curryfront/internal/lexer"
	"github.com/curryfront/curryfront/pkg/token"
)

func collect(l *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Cat == token.EOF {
			return toks
		}
	}
}

func categories(toks []token.Token) []token.Category {
	cats := make([]token.Category, len(toks))
	for i, t := range toks {
		cats[i] = t.Cat
	}
	return cats
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	l := lexer.New("m.curry", "module where f foo Bar")
	toks := collect(l)
	want := []token.Category{token.KW_MODULE, token.KW_WHERE, token.IDENT, token.IDENT, token.IDENT, token.EOF}
	got := categories(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSymbolicIdentifiersAndReservedOps(t *testing.T) {
	l := lexer.New("m.curry", "x +++ y = x")
	toks := collect(l)
	if toks[1].Cat != token.SYMBOLIC_IDENT || toks[1].Lit != "+++" {
		t.Errorf("token[1] = %+v, want SYMBOLIC_IDENT +++", toks[1])
	}
	if toks[3].Cat != token.EQUALS {
		t.Errorf("token[3] = %+v, want EQUALS", toks[3])
	}
}

func TestQualifiedIdentifier(t *testing.T) {
	l := lexer.New("m.curry", "Data.Map.insert")
	tok := l.NextToken()
	if tok.Cat != token.QUALIFIED_IDENT {
		t.Fatalf("cat = %v, want QUALIFIED_IDENT", tok.Cat)
	}
	if tok.Lit != "insert" {
		t.Errorf("Lit = %q, want insert", tok.Lit)
	}
	if len(tok.Qualifier) != 2 || tok.Qualifier[0] != "Data" || tok.Qualifier[1] != "Map" {
		t.Errorf("Qualifier = %v", tok.Qualifier)
	}
}

func TestIntFloatLiterals(t *testing.T) {
	l := lexer.New("m.curry", "42 3.14 1e10 0x1F")
	toks := collect(l)
	wantCats := []token.Category{token.INT, token.FLOAT, token.FLOAT, token.INT, token.EOF}
	for i, want := range wantCats {
		if toks[i].Cat != want {
			t.Errorf("token %d cat = %v, want %v", i, toks[i].Cat, want)
		}
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	l := lexer.New("m.curry", `"hello\n" 'a'`)
	toks := collect(l)
	if toks[0].Cat != token.STRING || toks[0].Lit != "hello\n" {
		t.Errorf("string token = %+v", toks[0])
	}
	if toks[1].Cat != token.CHAR || toks[1].Lit != "a" {
		t.Errorf("char token = %+v", toks[1])
	}
}

func TestLineCommentSkipped(t *testing.T) {
	l := lexer.New("m.curry", "f = 1 -- a comment\ng = 2")
	toks := collect(l)
	cats := categories(toks)
	for _, c := range cats {
		if c == token.ILLEGAL {
			t.Fatalf("unexpected ILLEGAL token in %v", cats)
		}
	}
}

func TestNestedBlockComment(t *testing.T) {
	l := lexer.New("m.curry", "f {- outer {- inner -} still outer -} = 1")
	toks := collect(l)
	if toks[0].Lit != "f" || toks[1].Cat != token.EQUALS {
		t.Fatalf("tokens = %+v", toks[:2])
	}
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	l := lexer.New("m.curry", "f {- never closed")
	collect(l)
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error for unterminated block comment")
	}
}

func TestLayoutSameIndentInsertsVirtualSemicolon(t *testing.T) {
	l := lexer.New("m.curry", "f = 1\ng = 2")
	l.PushLayout(1)
	toks := collect(l)
	var sawSemi bool
	for _, tok := range toks {
		if tok.Cat == token.VSEMI {
			sawSemi = true
		}
	}
	if !sawSemi {
		t.Errorf("expected a VSEMI between same-indent declarations, got %v", categories(toks))
	}
}

func TestLayoutLessIndentInsertsVirtualCloseBrace(t *testing.T) {
	l := lexer.New("m.curry", "f = let x = 1\n    in x")
	l.PushLayout(1)
	l.PushLayout(9) // simulates the let-block's layoutOn at column of 'x'
	toks := collect(l)
	var sawClose bool
	for _, tok := range toks {
		if tok.Cat == token.VCLOSE {
			sawClose = true
		}
	}
	if !sawClose {
		t.Errorf("expected a VCLOSE when indentation decreases, got %v", categories(toks))
	}
}

func TestEndOfInputDrainsLayoutStack(t *testing.T) {
	l := lexer.New("m.curry", "f = 1")
	l.PushLayout(1)
	l.PushLayout(5)
	toks := collect(l)
	closeCount := 0
	for _, tok := range toks {
		if tok.Cat == token.VCLOSE {
			closeCount++
		}
	}
	if closeCount != 2 {
		t.Errorf("closeCount = %d, want 2 (one per positive layout entry)", closeCount)
	}
	if l.LayoutDepth() != 0 {
		t.Errorf("LayoutDepth() = %d, want 0 after drain", l.LayoutDepth())
	}
}

func TestExplicitBlockDisablesLayoutRule(t *testing.T) {
	l := lexer.New("m.curry", "f = 1\ng = 2")
	l.PushExplicit()
	toks := collect(l)
	for _, tok := range toks {
		if tok.Cat == token.VSEMI || tok.Cat == token.VCLOSE {
			t.Errorf("explicit block should suppress virtual tokens, got %v", categories(toks))
		}
	}
}

func TestPragmaLanguageTokens(t *testing.T) {
	l := lexer.New("m.curry", "{-# LANGUAGE CPP #-}")
	toks := collect(l)
	want := []token.Category{token.PRAGMA_OPEN, token.KW_LANGUAGE, token.PRAGMA_IDENT, token.PRAGMA_CLOSE, token.EOF}
	got := categories(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIllegalCharacterRecordsError(t *testing.T) {
	l := lexer.New("m.curry", "f = §")
	collect(l)
	if len(l.Errors()) == 0 {
		t.Fatal("expected an error for illegal character '§'")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := lexer.New("m.curry", "f = 1")
	first := l.Peek(0)
	again := l.NextToken()
	if first.Lit != again.Lit || first.Cat != again.Cat {
		t.Errorf("Peek(0)=%+v then NextToken()=%+v should match", first, again)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := lexer.New("m.curry", "f = 1 g")
	saved := l.SaveState()
	a := l.NextToken()
	b := l.NextToken()
	l.RestoreState(saved)
	a2 := l.NextToken()
	b2 := l.NextToken()
	if a.Lit != a2.Lit || b.Lit != b2.Lit {
		t.Errorf("restored tokens differ: %v/%v vs %v/%v", a, b, a2, b2)
	}
}
