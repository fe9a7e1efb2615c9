// Package pcomb is the parser combinator engine (spec §4.4–§4.5): a
// top-down parser built from Parser[A] values that carry their own
// first-set and optional empty action, so that combining two
// deterministic alternatives can be checked for overlap once, at
// construction time, rather than discovered by running the parser.
//
// The engine is deliberately not built on opaque closures: a Parser[A] is
// data (a first-set plus a dispatch table), which is what lets Alt refuse
// to compose overlapping grammars before a single token has been read.
package pcomb

import (
	"fmt"

	"github.com/curryfront/curryfront/internal/diag"
	"github.com/curryfront/curryfront/internal/lexer"
	"github.com/curryfront/curryfront/pkg/token"
)

// Action consumes input from the cursor and produces a value, or reports
// failure by returning ok == false (having already recorded a diagnostic).
type Action[A any] func(c *Cursor) (A, bool)

// Parser is conceptually "(optional empty-action, map<category, action>)"
// (spec §4.4): the empty action fires when no lookahead category matches;
// each lookahead action handles one token category.
type Parser[A any] struct {
	label    string
	first    map[token.Category]Action[A]
	hasEmpty bool
	emptyFn  func(c *Cursor) A
}

// First returns the set of token categories that can start a successful
// parse, per the GLOSSARY definition.
func (p Parser[A]) First() map[token.Category]struct{} {
	out := make(map[token.Category]struct{}, len(p.first))
	for cat := range p.first {
		out[cat] = struct{}{}
	}
	return out
}

// HasEmpty reports whether p has an ε production.
func (p Parser[A]) HasEmpty() bool { return p.hasEmpty }

// Parse dispatches on the cursor's current lookahead token.
func (p Parser[A]) Parse(c *Cursor) (A, bool) {
	tok := c.Peek()
	if act, ok := p.first[tok.Cat]; ok {
		return act(c)
	}
	if p.hasEmpty {
		return p.emptyFn(c), true
	}
	var zero A
	c.fail(tok, p.label)
	return zero, false
}

// InvariantViolation is the programmer error raised when two parsers are
// combined in a way the engine cannot resolve deterministically (spec §7).
type InvariantViolation struct {
	Message string
}

func (e InvariantViolation) Error() string { return e.Message }

// --- leaf constructors ---

// Satisfy builds a parser that accepts any token whose category is in
// cats, applying f to produce the result.
func Satisfy[A any](label string, cats []token.Category, f func(tok token.Token) A) Parser[A] {
	first := make(map[token.Category]Action[A], len(cats))
	for _, cat := range cats {
		first[cat] = func(c *Cursor) (A, bool) {
			tok := c.Advance()
			return f(tok), true
		}
	}
	return Parser[A]{label: label, first: first}
}

// Cat builds a single-category leaf parser.
func Cat[A any](cat token.Category, f func(tok token.Token) A) Parser[A] {
	return Satisfy[A]("", []token.Category{cat}, f)
}

// Pure builds an ε-production parser that always succeeds without
// consuming input.
func Pure[A any](v A) Parser[A] {
	return Parser[A]{hasEmpty: true, emptyFn: func(*Cursor) A { return v }}
}

// Fail builds a parser with no first-set and no empty action: it always
// fails, reporting msg.
func Fail[A any](msg string) Parser[A] {
	return Parser[A]{label: msg}
}

// --- combinators ---

// Map transforms a parser's result.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	out := Parser[B]{label: p.label, hasEmpty: p.hasEmpty, first: make(map[token.Category]Action[B], len(p.first))}
	if p.hasEmpty {
		out.emptyFn = func(c *Cursor) B { return f(p.emptyFn(c)) }
	}
	for cat, act := range p.first {
		act := act
		out.first[cat] = func(c *Cursor) (B, bool) {
			a, ok := act(c)
			if !ok {
				var zero B
				return zero, false
			}
			return f(a), true
		}
	}
	return out
}

// Seq2 sequences two parsers, folding their results through combine. It
// short-circuits on failure of either side (spec §4.4 "must short-circuit
// on failure").
func Seq2[A, B, C any](pa Parser[A], pb Parser[B], combine func(A, B) C) Parser[C] {
	run := func(c *Cursor) (C, bool) {
		a, ok := pa.Parse(c)
		if !ok {
			var zero C
			return zero, false
		}
		b, ok := pb.Parse(c)
		if !ok {
			var zero C
			return zero, false
		}
		return combine(a, b), true
	}
	first := make(map[token.Category]Action[C], len(pa.first)+len(pb.first))
	for cat := range pa.first {
		first[cat] = run
	}
	hasEmpty := pa.hasEmpty && pb.hasEmpty
	if pa.hasEmpty {
		for cat := range pb.first {
			if _, exists := first[cat]; !exists {
				first[cat] = run
			}
		}
	}
	out := Parser[C]{first: first, hasEmpty: hasEmpty}
	if hasEmpty {
		out.emptyFn = func(c *Cursor) C {
			a := pa.emptyFn(c)
			b := pb.emptyFn(c)
			return combine(a, b)
		}
	}
	return out
}

// Seq3 sequences three parsers.
func Seq3[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], combine func(A, B, C) D) Parser[D] {
	type pair struct {
		a A
		b B
	}
	ab := Seq2(pa, pb, func(a A, b B) pair { return pair{a, b} })
	return Seq2(ab, pc, func(p pair, c C) D { return combine(p.a, p.b, c) })
}

// Alt is deterministic composition (`<|>`): legal only when the operands'
// first-sets are disjoint and at most one has an empty action. A violation
// is a programmer error, detected here at construction time, not at parse
// time (spec §4.4, §7).
func Alt[A any](ps ...Parser[A]) Parser[A] {
	merged := make(map[token.Category]Action[A])
	emptyCount := 0
	var emptyFn func(c *Cursor) A
	for _, p := range ps {
		if p.hasEmpty {
			emptyCount++
			emptyFn = p.emptyFn
		}
		for cat, act := range p.first {
			if _, dup := merged[cat]; dup {
				panic(InvariantViolation{Message: fmt.Sprintf(
					"pcomb.Alt: overlapping first-set entry %s between alternatives", cat)})
			}
			merged[cat] = act
		}
	}
	if emptyCount > 1 {
		panic(InvariantViolation{Message: "pcomb.Alt: more than one alternative has an empty action"})
	}
	return Parser[A]{first: merged, hasEmpty: emptyCount == 1, emptyFn: emptyFn}
}

// AltLong is non-deterministic composition (`<|?>`): used when first-sets
// overlap. Every alternative is attempted from the same starting state;
// the one that consumes the most input wins. A success/success tie at the
// same ending position is an AmbiguityError (spec §4.4, §7).
func AltLong[A any](ps ...Parser[A]) Parser[A] {
	run := func(c *Cursor) (A, bool) {
		start := c.Save()

		type result struct {
			val      A
			consumed int
			state    CursorState
		}
		var best *result
		tie := false

		for _, p := range ps {
			c.Restore(start)
			before := c.offset()
			v, ok := p.Parse(c)
			if !ok {
				continue
			}
			consumed := c.offset() - before
			switch {
			case best == nil || consumed > best.consumed:
				best = &result{val: v, consumed: consumed, state: c.Save()}
				tie = false
			case consumed == best.consumed:
				tie = true
			}
		}

		if best == nil {
			c.Restore(start)
			var zero A
			c.fail(c.Peek(), "no alternative matched")
			return zero, false
		}
		if tie {
			c.Restore(start)
			var zero A
			c.ambiguous(c.Peek())
			return zero, false
		}
		c.Restore(best.state)
		return best.val, true
	}

	first := make(map[token.Category]Action[A])
	hasEmpty := false
	for _, p := range ps {
		if p.hasEmpty {
			hasEmpty = true
		}
		for cat := range p.first {
			first[cat] = run
		}
	}
	out := Parser[A]{first: first, hasEmpty: hasEmpty}
	if hasEmpty {
		out.emptyFn = func(c *Cursor) A {
			v, _ := run(c)
			return v
		}
	}
	return out
}

// Restrict produces a parser identical to p but with the given lookahead
// categories removed from its first-set — used to resolve an overlap
// without resorting to AltLong (spec §4.4).
func Restrict[A any](p Parser[A], remove ...token.Category) Parser[A] {
	out := Parser[A]{label: p.label, hasEmpty: p.hasEmpty, emptyFn: p.emptyFn, first: make(map[token.Category]Action[A], len(p.first))}
	removeSet := make(map[token.Category]struct{}, len(remove))
	for _, cat := range remove {
		removeSet[cat] = struct{}{}
	}
	for cat, act := range p.first {
		if _, skip := removeSet[cat]; skip {
			continue
		}
		out.first[cat] = act
	}
	return out
}

// Label attaches a custom failure message (the `<?>` combinator), used
// verbatim in the ParseError diagnostic instead of the generic
// "unexpected token" text.
func Label[A any](p Parser[A], msg string) Parser[A] {
	p.label = msg
	return p
}

// Lazy defers construction of a recursive parser until it is first used,
// so that mutually- or self-referential grammar rules can be expressed as
// ordinary Go values. cats must describe the eventual parser's first-set
// accurately: it is what construction-time checks (Alt) see, since forcing
// thunk here would recurse infinitely for a self-referential grammar.
// emptyFn, if non-nil, is the grammar's genuine ε-production — a fixed
// zero-consumption value, not a re-attempt of the forced parser — and must
// never itself fail, exactly like every other empty action in this
// package.
func Lazy[A any](cats []token.Category, emptyFn func(c *Cursor) A, thunk func() Parser[A]) Parser[A] {
	var built *Parser[A]
	force := func() Parser[A] {
		if built == nil {
			p := thunk()
			built = &p
		}
		return *built
	}
	first := make(map[token.Category]Action[A], len(cats))
	for _, cat := range cats {
		first[cat] = func(c *Cursor) (A, bool) { return force().Parse(c) }
	}
	return Parser[A]{first: first, hasEmpty: emptyFn != nil, emptyFn: emptyFn}
}

// Many repeats p zero or more times, stopping at the first token outside
// p's first-set (or when p's empty action would fire, to avoid looping
// forever on a production that matches without consuming).
func Many[A any](p Parser[A]) Parser[[]A] {
	run := func(c *Cursor) ([]A, bool) {
		var out []A
		for {
			tok := c.Peek()
			if _, ok := p.first[tok.Cat]; !ok {
				return out, true
			}
			v, ok := p.Parse(c)
			if !ok {
				return out, false
			}
			out = append(out, v)
		}
	}
	first := make(map[token.Category]Action[[]A], len(p.first))
	for cat := range p.first {
		first[cat] = run
	}
	return Parser[[]A]{first: first, hasEmpty: true, emptyFn: func(c *Cursor) []A {
		out, _ := run(c)
		return out
	}}
}

// Many1 repeats p one or more times.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return Seq2(p, Many(p), func(head A, rest []A) []A {
		return append([]A{head}, rest...)
	})
}

// SepBy parses zero or more occurrences of p separated by sep.
func SepBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	rest := Many(Seq2(sep, p, func(S, a A) A { return a }))
	nonEmpty := Seq2(p, rest, func(head A, tail []A) []A { return append([]A{head}, tail...) })
	out := nonEmpty
	out.hasEmpty = true
	out.emptyFn = func(c *Cursor) []A { return nil }
	return out
}

// --- layout combinators (spec §4.5) ---

// LayoutOn pushes the current token's column onto the lexer's layout
// stack, opening an implicit block.
func LayoutOn(c *Cursor) {
	c.lex.PushLayout(c.Peek().Pos.Column())
}

// LayoutOff pushes the explicit-block sentinel, disabling the off-side
// rule until popped.
func LayoutOff(c *Cursor) {
	c.lex.PushExplicit()
}

// LayoutEnd pops one layout entry.
func LayoutEnd(c *Cursor) {
	c.lex.PopLayout()
}

// Layout is the high-level block combinator (spec §4.5): if the next
// token is an explicit '{', it disables layout and expects a matching
// '}'; otherwise it opens an implicit block at the current column and
// closes it on either an explicit virtual-close-brace or by calling
// LayoutEnd once p has finished.
func Layout[A any](p Parser[A]) Parser[A] {
	runExplicit := func(c *Cursor) (A, bool) {
		c.Advance() // '{'
		LayoutOff(c)
		v, ok := p.Parse(c)
		if !ok {
			var zero A
			return zero, false
		}
		if !c.Expect(token.RBRACE) {
			var zero A
			return zero, false
		}
		LayoutEnd(c)
		return v, true
	}
	runImplicit := func(c *Cursor) (A, bool) {
		LayoutOn(c)
		v, ok := p.Parse(c)
		if !ok {
			var zero A
			return zero, false
		}
		if c.Peek().Cat == token.VCLOSE {
			c.Advance()
		}
		LayoutEnd(c)
		return v, true
	}
	dispatch := func(c *Cursor) (A, bool) {
		if c.Peek().Cat == token.LBRACE {
			return runExplicit(c)
		}
		return runImplicit(c)
	}

	first := make(map[token.Category]Action[A], len(p.first)+1)
	for cat := range p.first {
		first[cat] = dispatch
	}
	first[token.LBRACE] = dispatch

	out := Parser[A]{first: first, hasEmpty: p.hasEmpty}
	if p.hasEmpty {
		out.emptyFn = func(c *Cursor) A {
			LayoutOn(c)
			v := p.emptyFn(c)
			LayoutEnd(c)
			return v
		}
	}
	return out
}

// --- Cursor: the mutable state threaded through parsing ---

// Cursor wraps a lexer with the diagnostics channel and block-context
// trace used for error reporting. It is the "current position" that
// success/failure continuations thread through in the spec's description
// of the engine.
type Cursor struct {
	lex   *lexer.Lexer
	ahead token.Token
	ready bool

	diags []diag.Diagnostic
	fatal *diag.Diagnostic
	trace diag.BlockTrace
}

// CursorState is an opaque snapshot of a Cursor, produced by Save and
// consumed by Restore — the same backtracking mechanism AltLong uses
// internally, exposed so the language parser (C6) can implement its own
// speculative lookahead (e.g. disambiguating a declaration's shape)
// without reaching into the lexer directly.
type CursorState struct {
	lex    lexer.State
	ahead  token.Token
	ready  bool
	ndiags int
	trace  diag.BlockTrace
}

// NewCursor builds a Cursor over lex.
func NewCursor(lex *lexer.Lexer) *Cursor {
	return &Cursor{lex: lex}
}

// Peek returns the current lookahead token without consuming it.
func (c *Cursor) Peek() token.Token {
	if !c.ready {
		c.ahead = c.lex.NextToken()
		c.ready = true
	}
	return c.ahead
}

// Advance consumes and returns the current lookahead token.
func (c *Cursor) Advance() token.Token {
	tok := c.Peek()
	c.ready = false
	return tok
}

// Expect consumes the current token if it has category cat, reporting a
// ParseError and returning false otherwise.
func (c *Cursor) Expect(cat token.Category) bool {
	tok := c.Peek()
	if tok.Cat != cat {
		c.fail(tok, fmt.Sprintf("expected %s", cat))
		return false
	}
	c.Advance()
	return true
}

// PushFrame enters a named block context, used to annotate error messages
// (spec §4.9 "stack-trace-shaped context").
func (c *Cursor) PushFrame(kind string) {
	c.trace = c.trace.Push(diag.BlockFrame{Kind: kind, Pos: c.Peek().Pos})
}

// PopFrame exits the innermost block context.
func (c *Cursor) PopFrame() { c.trace = c.trace.Pop() }

func (c *Cursor) fail(tok token.Token, label string) {
	if c.fatal != nil {
		return
	}
	msg := label
	if msg == "" {
		msg = fmt.Sprintf("unexpected %s", tok.Cat)
	}
	d := diag.New(diag.KindParse, tok.Pos, c.trace.Annotate(msg))
	c.fatal = &d
}

func (c *Cursor) ambiguous(tok token.Token) {
	if c.fatal != nil {
		return
	}
	d := diag.New(diag.KindAmbiguity, tok.Pos, "ambiguous alternatives at "+tok.Pos.String())
	c.fatal = &d
}

// Fail records a fatal ParseError with a custom message at the current
// lookahead position, the way Expect does for its generic "expected X"
// text — used by the language parser for shape-specific messages like
// "then expected" (spec §4.6).
func (c *Cursor) Fail(msg string) {
	c.fail(c.Peek(), msg)
}

// Fatal returns the first fatal diagnostic recorded, or nil.
func (c *Cursor) Fatal() *diag.Diagnostic { return c.fatal }

// Warnings returns the accumulated non-fatal diagnostics.
func (c *Cursor) Warnings() []diag.Diagnostic { return c.diags }

// Warn records a non-fatal diagnostic.
func (c *Cursor) Warn(d diag.Diagnostic) { c.diags = append(c.diags, d) }

func (c *Cursor) offset() int { return c.lex.Offset() }

// Save captures the cursor's full state — lexer position, layout stack,
// lookahead buffer, and diagnostics recorded so far — for later
// backtracking via Restore.
func (c *Cursor) Save() CursorState {
	return CursorState{
		lex:    c.lex.SaveState(),
		ahead:  c.ahead,
		ready:  c.ready,
		ndiags: len(c.diags),
		trace:  c.trace,
	}
}

// Restore rewinds the cursor to a previously Saved state, truncating any
// diagnostics recorded since and clearing a speculatively-set fatal error:
// a failed attempt inside a backtracking combinator must not leak into the
// alternative that is ultimately chosen.
func (c *Cursor) Restore(s CursorState) {
	c.lex.RestoreState(s.lex)
	c.ahead = s.ahead
	c.ready = s.ready
	c.diags = c.diags[:s.ndiags]
	c.trace = s.trace
	c.fatal = nil
}
