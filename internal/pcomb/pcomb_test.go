package pcomb_test

import (
	"strings"
	"testing"

	"github.com/curryfront/curryfront/internal/lexer"
	"github.com/curryfront/curryfront/internal/pcomb"
	"github.com/curryfront/curryfront/pkg/token"
)

func newCursor(src string) *pcomb.Cursor {
	return pcomb.NewCursor(lexer.New("m.curry", src))
}

func TestCatParsesSingleToken(t *testing.T) {
	c := newCursor("f")
	p := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	v, ok := p.Parse(c)
	if !ok || v != "f" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestSeq2ShortCircuitsOnFailure(t *testing.T) {
	c := newCursor("f 1")
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	eq := pcomb.Cat(token.EQUALS, func(tok token.Token) string { return tok.Lit })
	p := pcomb.Seq2(ident, eq, func(a, b string) string { return a + b })
	_, ok := p.Parse(c)
	if ok {
		t.Fatal("expected failure: second token is not EQUALS")
	}
	if c.Fatal() == nil {
		t.Fatal("expected a fatal diagnostic to be recorded")
	}
}

func TestAltDispatchesOnFirstSet(t *testing.T) {
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return "ident:" + tok.Lit })
	num := pcomb.Cat(token.INT, func(tok token.Token) string { return "int:" + tok.Lit })
	p := pcomb.Alt(ident, num)

	c := newCursor("42")
	v, ok := p.Parse(c)
	if !ok || v != "int:42" {
		t.Errorf("got %q, %v", v, ok)
	}

	c2 := newCursor("x")
	v2, ok2 := p.Parse(c2)
	if !ok2 || v2 != "ident:x" {
		t.Errorf("got %q, %v", v2, ok2)
	}
}

func TestAltPanicsOnOverlappingFirstSets(t *testing.T) {
	a := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	b := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for overlapping first-sets")
		}
		if _, ok := r.(pcomb.InvariantViolation); !ok {
			t.Errorf("recovered value = %#v, want InvariantViolation", r)
		}
	}()
	pcomb.Alt(a, b)
}

func TestAltPanicsOnTwoEmptyActions(t *testing.T) {
	a := pcomb.Pure("a")
	b := pcomb.Pure("b")

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for two empty actions")
		}
	}()
	pcomb.Alt(a, b)
}

func TestPureDoesNotConsumeInput(t *testing.T) {
	c := newCursor("f")
	p := pcomb.Pure(7)
	v, ok := p.Parse(c)
	if !ok || v != 7 {
		t.Fatalf("got %v, %v", v, ok)
	}
	tok := c.Advance()
	if tok.Cat != token.IDENT {
		t.Errorf("input should still be available after Pure, got %v", tok.Cat)
	}
}

func TestManyCollectsZeroOrMore(t *testing.T) {
	c := newCursor("x y z 1")
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	p := pcomb.Many(ident)
	v, ok := p.Parse(c)
	if !ok {
		t.Fatal("Many should always succeed")
	}
	want := []string{"x", "y", "z"}
	if len(v) != len(want) {
		t.Fatalf("got %v, want %v", v, want)
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("v[%d] = %q, want %q", i, v[i], want[i])
		}
	}
}

func TestMany1FailsOnZeroMatches(t *testing.T) {
	c := newCursor("1")
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	p := pcomb.Many1(ident)
	_, ok := p.Parse(c)
	if ok {
		t.Fatal("Many1 should fail with zero matches")
	}
}

func TestSepByParsesSeparatedList(t *testing.T) {
	c := newCursor("x , y , z")
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	comma := pcomb.Cat(token.COMMA, func(tok token.Token) string { return tok.Lit })
	p := pcomb.SepBy(ident, comma)
	v, ok := p.Parse(c)
	if !ok || len(v) != 3 {
		t.Fatalf("got %v, %v", v, ok)
	}
}

func TestAltLongPicksLongestMatch(t *testing.T) {
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	shortAlt := ident
	longAlt := pcomb.Seq2(ident,
		pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit }),
		func(a, b string) string { return a + b })

	p := pcomb.AltLong(shortAlt, longAlt)
	c := newCursor("x y")
	v, ok := p.Parse(c)
	if !ok || v != "xy" {
		t.Fatalf("got %q, %v, want the longer match to win", v, ok)
	}
}

func TestAltLongFailsWhenNoAlternativeMatches(t *testing.T) {
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	p := pcomb.AltLong(ident)
	c := newCursor("1")
	_, ok := p.Parse(c)
	if ok {
		t.Fatal("expected failure: no alternative accepts an INT token")
	}
}

func TestAltLongReportsAmbiguityOnTie(t *testing.T) {
	a := pcomb.Cat(token.IDENT, func(tok token.Token) string { return "a:" + tok.Lit })
	b := pcomb.Cat(token.IDENT, func(tok token.Token) string { return "b:" + tok.Lit })
	p := pcomb.AltLong(a, b)
	c := newCursor("x")
	_, ok := p.Parse(c)
	if ok {
		t.Fatal("expected an ambiguity failure for a same-length tie")
	}
	if c.Fatal() == nil {
		t.Fatal("expected a fatal diagnostic for the ambiguity")
	}
}

func TestRestrictRemovesLookaheadCategory(t *testing.T) {
	ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	restricted := pcomb.Restrict(ident, token.IDENT)
	c := newCursor("x")
	_, ok := restricted.Parse(c)
	if ok {
		t.Fatal("expected failure: IDENT was restricted out of the first-set")
	}
}

func TestLabelIsUsedInFailureMessage(t *testing.T) {
	eq := pcomb.Label(pcomb.Cat(token.EQUALS, func(tok token.Token) string { return tok.Lit }), "expected '='")
	c := newCursor("1")
	_, ok := eq.Parse(c)
	if ok {
		t.Fatal("expected failure")
	}
	if got := c.Fatal().Error(); !strings.Contains(got, "expected '='") {
		t.Fatalf("diagnostic = %q, want the label text", got)
	}
}

func TestLazyAllowsSelfReferentialGrammar(t *testing.T) {
	// list := IDENT list | <empty>
	var list pcomb.Parser[[]string]
	list = pcomb.Lazy([]token.Category{token.IDENT}, func(*pcomb.Cursor) []string { return nil }, func() pcomb.Parser[[]string] {
		ident := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
		return pcomb.Seq2(ident, list, func(head string, tail []string) []string {
			return append([]string{head}, tail...)
		})
	})

	c := newCursor("a b c")
	v, ok := list.Parse(c)
	if !ok {
		t.Fatal("expected success")
	}
	want := []string{"a", "b", "c"}
	if len(v) != len(want) {
		t.Fatalf("got %v, want %v", v, want)
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("v[%d] = %q, want %q", i, v[i], want[i])
		}
	}
}

func TestLayoutExplicitBraceDisablesOffsideRule(t *testing.T) {
	c := newCursor("{ f }")
	body := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	p := pcomb.Layout(body)
	v, ok := p.Parse(c)
	if !ok || v != "f" {
		t.Fatalf("got %q, %v", v, ok)
	}
	if c.Peek().Cat != token.EOF {
		t.Errorf("expected the closing brace to be consumed, next = %v", c.Peek().Cat)
	}
}

func TestLayoutImplicitOpensAndClosesBlock(t *testing.T) {
	c := newCursor("f")
	body := pcomb.Cat(token.IDENT, func(tok token.Token) string { return tok.Lit })
	p := pcomb.Layout(body)
	v, ok := p.Parse(c)
	if !ok || v != "f" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestCursorExpectConsumesMatchingCategory(t *testing.T) {
	c := newCursor("=")
	if !c.Expect(token.EQUALS) {
		t.Fatal("expected Expect to succeed")
	}
}

func TestCursorExpectFailsOnMismatch(t *testing.T) {
	c := newCursor("1")
	if c.Expect(token.EQUALS) {
		t.Fatal("expected Expect to fail on INT token")
	}
	if c.Fatal() == nil {
		t.Fatal("expected a recorded diagnostic")
	}
}

func TestPushFramePopFrameAnnotatesFailures(t *testing.T) {
	c := newCursor("1")
	c.PushFrame("let")
	c.Expect(token.EQUALS)
	msg := c.Fatal().Error()
	if !strings.Contains(msg, "(in let block starting at line 1)") {
		t.Fatalf("diagnostic = %q, want the let block annotation", msg)
	}
	c.PopFrame()
}
