// Package lexer tokenizes Curry source text and implements the off-side
// layout rule (spec §4.3, §4.8): the layout context stack lives inside the
// Lexer's mutable state, and is manipulated from outside only through
// PushLayout/PushExplicit/PopLayout — the hooks the parser combinator
// engine's layoutOn/layoutOff/layoutEnd call.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/curryfront/curryfront/internal/diag"
	"github.com/curryfront/curryfront/pkg/position"
	"github.com/curryfront/curryfront/pkg/token"
)

// explicitSentinel marks an explicit-brace block on the layout stack,
// disabling the off-side rule until popped (spec §3.4).
const explicitSentinel = -1

// Lexer scans Curry source into a token.Token stream, inserting virtual
// layout tokens as it goes.
//
// Columns are counted in runes, not bytes or display width, matching the
// convention used throughout the rest of the toolchain.
type Lexer struct {
	file string
	input string

	position     int
	readPosition int
	ch           rune
	pos          position.Position

	errors []diag.Diagnostic

	layout []int

	// queue holds tokens already produced but not yet returned, such as
	// virtual tokens synthesized ahead of a real token. Peek() results are
	// buffered separately, in peekBuffer.
	queue []token.Token

	// peekBuffer holds tokens produced purely for Peek/SaveState/RestoreState
	// lookahead, kept separate from queue so draining logic stays simple.
	peekBuffer []token.Token

	atLineStart bool // true once a newline has been crossed since the last real token
	drained     bool // true once the end-of-input stack drain has been queued
	inPragma    bool
	pragmaFirst bool // true for the token immediately after PRAGMA_OPEN
}

// State captures a Lexer snapshot for backtracking, mirroring the
// save/restore pattern used throughout the engine for speculative parses.
type State struct {
	position     int
	readPosition int
	ch           rune
	pos          position.Position
	layout       []int
	queue        []token.Token
	peekBuffer   []token.Token
	atLineStart  bool
	drained      bool
	inPragma     bool
	pragmaFirst  bool
}

// New creates a Lexer over the given source, associated with file for
// position reporting. Strips a leading UTF-8 BOM if present.
func New(file, input string) *Lexer {
	if len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF {
		input = input[3:]
	}
	l := &Lexer{
		file:        file,
		input:       input,
		pos:         position.First(file),
		atLineStart: true,
	}
	l.readChar()
	return l
}

// Errors returns the lexical errors accumulated so far (unterminated
// literals, illegal characters, bad escapes — spec §7 LexError).
func (l *Lexer) Errors() []diag.Diagnostic { return l.errors }

func (l *Lexer) addError(msg string, pos position.Position) {
	l.errors = append(l.errors, diag.New(diag.KindLex, pos, msg))
}

// --- layout stack, manipulated only by the parser engine's three combinators ---

// PushLayout pushes a positive layout column, opening an implicit block.
func (l *Lexer) PushLayout(col int) { l.layout = append(l.layout, col) }

// PushExplicit pushes the explicit-block sentinel, disabling the off-side
// rule until popped.
func (l *Lexer) PushExplicit() { l.layout = append(l.layout, explicitSentinel) }

// PopLayout pops one layout entry (layoutEnd). No-op if the stack is empty.
func (l *Lexer) PopLayout() {
	if len(l.layout) == 0 {
		return
	}
	l.layout = l.layout[:len(l.layout)-1]
}

// LayoutDepth reports the current stack depth, used to check the layout
// balance invariant (spec §8 invariant 2) at the end of a successful parse.
func (l *Lexer) LayoutDepth() int { return len(l.layout) }

// Offset reports the current byte offset into the source, used by the
// engine's non-deterministic composition to measure how much input a
// branch consumed.
func (l *Lexer) Offset() int { return l.position }

// --- rune scanning, following the teacher's readChar/peekChar shape ---

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == utf8.RuneError && size == 1 {
		l.addError("invalid UTF-8 encoding", l.pos)
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// advance consumes the current rune, updating position via the Tab/Nl/Incr
// arithmetic from pkg/position, and tracking whether a newline was crossed.
func (l *Lexer) advance() {
	switch l.ch {
	case '\n':
		l.pos = position.Nl(l.pos)
		l.atLineStart = true
	case '\t':
		l.pos = position.Tab(l.pos)
	case '\r':
		// normalized away; do not move the column
	default:
		l.pos = position.Incr(l.pos, 1)
	}
	l.readChar()
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentCont(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' }
func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }

const symbolChars = "!#$%&*+./<=>?@\\^|-~:"

func isSymbolChar(r rune) bool { return strings.ContainsRune(symbolChars, r) }

var reservedOps = map[string]token.Category{
	"=":  token.EQUALS,
	"|":  token.PIPE,
	"\\": token.BACKSLASH,
	"->": token.ARROW,
	"=>": token.DARROW,
	"@":  token.AT,
	"~":  token.TILDE,
	"..": token.DOTDOT,
	"::": token.DCOLON,
}

// skipWhitespaceAndComments consumes blanks, line comments ("--...") and
// nested block comments ("{- ... -}"), leaving l.ch at the start of the
// next real token (or EOF). Crossing a newline sets atLineStart.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.advance()
		case l.ch == '-' && l.peekChar() == '-' && !l.startsSymbolicOperator():
			for l.ch != '\n' && l.ch != 0 {
				l.advance()
			}
		case l.ch == '{' && l.peekChar() == '-' && !l.startsPragma():
			l.skipNestedBlockComment()
		default:
			return
		}
	}
}

// startsSymbolicOperator reports whether the run of symbol characters
// starting at the current '-' is a symbolic identifier like "-->" rather
// than a line comment. Per the off-side convention, a maximal run made up
// entirely of dashes is a comment; a run containing any other symbol
// character is an operator lexeme.
func (l *Lexer) startsSymbolicOperator() bool {
	pos := l.position
	for pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		if !isSymbolChar(r) {
			break
		}
		if r != '-' {
			return true
		}
		pos += size
	}
	return false
}

// startsPragma reports whether the "{-" at the current position is actually
// the three-character pragma opener "{-#", which must not be swallowed as
// a block comment.
func (l *Lexer) startsPragma() bool {
	pos := l.readPosition // offset of '-' (the char after current '{')
	if pos >= len(l.input) {
		return false
	}
	_, size := utf8.DecodeRuneInString(l.input[pos:]) // the '-'
	pos += size
	if pos >= len(l.input) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r == '#'
}

func (l *Lexer) skipNestedBlockComment() {
	start := l.pos
	l.advance() // {
	l.advance() // -
	depth := 1
	for depth > 0 {
		switch {
		case l.ch == 0:
			l.addError("unterminated block comment", start)
			return
		case l.ch == '{' && l.peekChar() == '-':
			l.advance()
			l.advance()
			depth++
		case l.ch == '-' && l.peekChar() == '}':
			l.advance()
			l.advance()
			depth--
		default:
			l.advance()
		}
	}
}

// --- literal scanning ---

// readIdentLike scans an identifier lexeme and normalizes it to NFC: two
// source files spelling the same name with different combining-mark
// sequences must lex to the same identifier text (spec §4.2's "names are
// compared as text").
func (l *Lexer) readIdentLike() string {
	start := l.position
	for isIdentCont(l.ch) {
		l.advance()
	}
	raw := l.input[start:l.position]
	if norm.NFC.IsNormalString(raw) {
		return raw
	}
	return norm.NFC.String(raw)
}

func (l *Lexer) readSymbolic() string {
	start := l.position
	for isSymbolChar(l.ch) {
		l.advance()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() (token.Category, string) {
	start := l.position
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.advance()
		l.advance()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.advance()
		}
		return token.INT, l.input[start:l.position]
	}
	if l.ch == '0' && (l.peekChar() == 'o' || l.peekChar() == 'O') {
		l.advance()
		l.advance()
		for isOctDigit(l.ch) || l.ch == '_' {
			l.advance()
		}
		return token.INT, l.input[start:l.position]
	}
	for isDigit(l.ch) || l.ch == '_' {
		l.advance()
	}
	isFloat := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.advance()
		for isDigit(l.ch) || l.ch == '_' {
			l.advance()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.advance()
		if l.ch == '+' || l.ch == '-' {
			l.advance()
		}
		for isDigit(l.ch) {
			l.advance()
		}
	}
	if isFloat {
		return token.FLOAT, l.input[start:l.position]
	}
	return token.INT, l.input[start:l.position]
}

func (l *Lexer) readEscape(startPos position.Position) rune {
	l.advance() // skip backslash
	switch l.ch {
	case 'n':
		l.advance()
		return '\n'
	case 't':
		l.advance()
		return '\t'
	case 'r':
		l.advance()
		return '\r'
	case '\\':
		l.advance()
		return '\\'
	case '\'':
		l.advance()
		return '\''
	case '"':
		l.advance()
		return '"'
	case '0':
		l.advance()
		return 0
	default:
		if isDigit(l.ch) {
			start := l.position
			for isDigit(l.ch) {
				l.advance()
			}
			var v rune
			for _, c := range l.input[start:l.position] {
				v = v*10 + (c - '0')
			}
			return v
		}
		l.addError("unknown escape sequence", startPos)
		r := l.ch
		l.advance()
		return r
	}
}

func (l *Lexer) readString(startPos position.Position) string {
	l.advance() // opening quote
	var sb strings.Builder
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			l.addError("unterminated string literal", startPos)
			return sb.String()
		}
		if l.ch == '\\' {
			sb.WriteRune(l.readEscape(l.pos))
			continue
		}
		sb.WriteRune(l.ch)
		l.advance()
	}
	l.advance() // closing quote
	return sb.String()
}

func (l *Lexer) readCharLiteral() (rune, bool) {
	startPos := l.pos
	l.advance() // opening quote
	var r rune
	if l.ch == '\\' {
		r = l.readEscape(startPos)
	} else if l.ch == 0 || l.ch == '\'' {
		l.addError("empty character literal", startPos)
		return 0, false
	} else {
		r = l.ch
		l.advance()
	}
	if l.ch != '\'' {
		l.addError("unterminated character literal", startPos)
		return r, false
	}
	l.advance() // closing quote
	return r, true
}

// --- identifiers, qualified by dots: Module.Sub.name ---

func (l *Lexer) readIdentOrQualified(startPos position.Position) token.Token {
	first := l.readIdentLike()
	if !(len(first) > 0 && unicode.IsUpper([]rune(first)[0])) {
		return token.New(token.LookupIdent(first), first, startPos)
	}

	var qualifier []string
	name := first
	for l.ch == '.' && l.qualifierContinues() {
		qualifier = append(qualifier, name)
		l.advance() // '.'
		if isSymbolChar(l.ch) && l.ch != '.' {
			sym := l.readSymbolic()
			return token.NewQualified(sym, startPos, qualifier)
		}
		name = l.readIdentLike()
	}
	if len(qualifier) == 0 {
		return token.New(token.LookupIdent(first), first, startPos)
	}
	return token.NewQualified(name, startPos, qualifier)
}

// qualifierContinues reports whether the '.' at the current position is
// immediately followed by an identifier or symbolic character with no
// intervening whitespace — the only shape in which a dot introduces another
// qualifier component rather than standing as its own token (e.g. "..", or
// composition ".").
func (l *Lexer) qualifierContinues() bool {
	next := l.peekChar()
	if next == '.' || next == 0 {
		return false
	}
	return isIdentStart(next) || (isSymbolChar(next) && next != '.')
}

// --- pragmas ---

func (l *Lexer) tryPragmaOpen(startPos position.Position) (token.Token, bool) {
	if l.ch == '{' && l.peekChar() == '-' {
		save := l.position
		l.advance()
		l.advance()
		if l.ch == '#' {
			l.advance()
			l.inPragma = true
			l.pragmaFirst = true
			return token.New(token.PRAGMA_OPEN, "{-#", startPos), true
		}
		// not a pragma: rewind is unnecessary because '{' '-' alone can only
		// ever be the start of a block comment, already handled upstream in
		// skipWhitespaceAndComments; reaching here without '#' is malformed.
		l.position = save
		return token.Token{}, false
	}
	return token.Token{}, false
}

func (l *Lexer) tryPragmaClose(startPos position.Position) (token.Token, bool) {
	if l.ch == '#' && l.peekChar() == '-' {
		l.advance()
		l.advance()
		if l.ch == '}' {
			l.advance()
			l.inPragma = false
			return token.New(token.PRAGMA_CLOSE, "#-}", startPos), true
		}
	}
	return token.Token{}, false
}

// --- raw (layout-unaware) token scanning ---

func (l *Lexer) scanRaw() token.Token {
	l.skipWhitespaceAndComments()
	pos := l.pos

	if l.ch == 0 {
		return token.New(token.EOF, "", pos)
	}

	if tok, ok := l.tryPragmaClose(pos); ok {
		return tok
	}
	if tok, ok := l.tryPragmaOpen(pos); ok {
		return tok
	}

	switch l.ch {
	case '(':
		l.advance()
		return token.New(token.LPAREN, "(", pos)
	case ')':
		l.advance()
		return token.New(token.RPAREN, ")", pos)
	case '[':
		l.advance()
		return token.New(token.LBRACKET, "[", pos)
	case ']':
		l.advance()
		return token.New(token.RBRACKET, "]", pos)
	case '{':
		l.advance()
		return token.New(token.LBRACE, "{", pos)
	case '}':
		l.advance()
		return token.New(token.RBRACE, "}", pos)
	case ',':
		l.advance()
		return token.New(token.COMMA, ",", pos)
	case '`':
		l.advance()
		return token.New(token.BACKTICK, "`", pos)
	case ';':
		l.advance()
		return token.New(token.SEMICOLON, ";", pos)
	case '_':
		if !isIdentCont(l.peekChar()) {
			l.advance()
			return token.New(token.UNDERSCORE, "_", pos)
		}
	case '"':
		lit := l.readString(pos)
		return token.New(token.STRING, lit, pos)
	case '\'':
		r, ok := l.readCharLiteral()
		if !ok {
			return token.New(token.ILLEGAL, string(r), pos)
		}
		return token.New(token.CHAR, string(r), pos)
	}

	if l.inPragma {
		if isIdentStart(l.ch) {
			lit := l.readIdentLike()
			if l.pragmaFirst {
				l.pragmaFirst = false
				switch lit {
				case "LANGUAGE":
					return token.New(token.KW_LANGUAGE, lit, pos)
				case "OPTIONS":
					return token.New(token.KW_OPTIONS, lit, pos)
				}
			}
			return token.New(token.PRAGMA_IDENT, lit, pos)
		}
		l.pragmaFirst = false
	}

	switch {
	case isDigit(l.ch):
		cat, lit := l.readNumber()
		return token.New(cat, lit, pos)
	case isIdentStart(l.ch):
		return l.readIdentOrQualified(pos)
	case isSymbolChar(l.ch):
		sym := l.readSymbolic()
		if cat, ok := reservedOps[sym]; ok {
			return token.New(cat, sym, pos)
		}
		return token.New(token.SYMBOLIC_IDENT, sym, pos)
	default:
		l.addError("illegal character: "+string(l.ch), pos)
		ch := l.ch
		l.advance()
		return token.New(token.ILLEGAL, string(ch), pos)
	}
}

// --- layout-aware token delivery (spec §4.3, §4.8) ---

// NextToken returns the next token, applying the off-side layout rule and
// draining the layout stack into virtual close braces at end of input.
func (l *Lexer) NextToken() token.Token {
	if len(l.peekBuffer) > 0 {
		tok := l.peekBuffer[0]
		l.peekBuffer = l.peekBuffer[1:]
		return tok
	}
	return l.nextLayoutToken()
}

func (l *Lexer) nextLayoutToken() token.Token {
	if len(l.queue) > 0 {
		tok := l.queue[0]
		l.queue = l.queue[1:]
		return tok
	}

	wasNewLine := l.atLineStart
	tok := l.scanRaw()
	l.atLineStart = false

	if tok.Cat == token.EOF {
		if !l.drained {
			l.drained = true
			for len(l.layout) > 0 {
				top := l.layout[len(l.layout)-1]
				l.layout = l.layout[:len(l.layout)-1]
				if top >= 0 {
					l.queue = append(l.queue, token.Virtual(token.VCLOSE, tok.Pos))
				}
			}
			l.queue = append(l.queue, tok)
			return l.nextLayoutToken()
		}
		return tok
	}

	if !wasNewLine || len(l.layout) == 0 {
		return tok
	}

	col := tok.Pos.Column()
	var virtuals []token.Token
	for len(l.layout) > 0 {
		top := l.layout[len(l.layout)-1]
		if top < 0 {
			break
		}
		if col == top {
			virtuals = append(virtuals, token.Virtual(token.VSEMI, tok.Pos))
			break
		}
		if col < top {
			l.layout = l.layout[:len(l.layout)-1]
			virtuals = append(virtuals, token.Virtual(token.VCLOSE, tok.Pos))
			continue
		}
		break
	}
	if len(virtuals) == 0 {
		return tok
	}
	l.queue = append(virtuals, tok)
	next := l.queue[0]
	l.queue = l.queue[1:]
	return next
}

// Peek returns the token n positions ahead without consuming it, buffering
// as needed. Peek(0) is equivalent to the next NextToken() call.
func (l *Lexer) Peek(n int) token.Token {
	for len(l.peekBuffer) <= n {
		l.peekBuffer = append(l.peekBuffer, l.nextLayoutToken())
	}
	return l.peekBuffer[n]
}

// SaveState snapshots the lexer for backtracking.
func (l *Lexer) SaveState() State {
	return State{
		position:     l.position,
		readPosition: l.readPosition,
		ch:           l.ch,
		pos:          l.pos,
		layout:       append([]int{}, l.layout...),
		queue:        append([]token.Token{}, l.queue...),
		peekBuffer:   append([]token.Token{}, l.peekBuffer...),
		atLineStart:  l.atLineStart,
		drained:      l.drained,
		inPragma:     l.inPragma,
		pragmaFirst:  l.pragmaFirst,
	}
}

// RestoreState restores a previously saved snapshot.
func (l *Lexer) RestoreState(s State) {
	l.position = s.position
	l.readPosition = s.readPosition
	l.ch = s.ch
	l.pos = s.pos
	l.layout = s.layout
	l.queue = s.queue
	l.peekBuffer = s.peekBuffer
	l.atLineStart = s.atLineStart
	l.drained = s.drained
	l.inPragma = s.inPragma
	l.pragmaFirst = s.pragmaFirst
}
