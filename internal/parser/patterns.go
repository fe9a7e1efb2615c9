package parser

import (
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/token"
)

// parsePattern parses a pattern at full precedence, including infix
// constructor/function application driven by the fixity table (spec §4.6).
func (p *Parser) parsePattern() ast.Pattern {
	return p.parsePatternPrec(0)
}

func (p *Parser) parsePatternPrec(minPrec int) ast.Pattern {
	left := p.parsePattern10()
	if p.failed() {
		return left
	}
	for {
		opTok, opName, isSym := p.peekOperatorTok()
		if !isSym {
			break
		}
		info := p.fix.Lookup(opName)
		if info.Precedence < minPrec {
			break
		}
		p.advanceOperatorTok(opTok)
		nextMin := info.Precedence + 1
		if info.Fixity == ast.FixityRight {
			nextMin = info.Precedence
		}
		right := p.parsePatternPrec(nextMin)
		if p.failed() {
			return left
		}
		if ident.IsConstructorLike(opName) {
			left = &ast.InfixPattern{Left: left, Op: qualifiedFromToken(opTok), Right: right}
		} else {
			left = &ast.InfixFuncPattern{Left: left, Op: qualifiedFromToken(opTok), Right: right}
		}
	}
	return left
}

// parsePattern10 parses a constructor or function applied to zero or more
// atomic argument patterns, or a plain atomic pattern, then wraps it in an
// as-pattern or lazy pattern if one follows.
func (p *Parser) parsePattern10() ast.Pattern {
	if p.peek().Cat == token.TILDE {
		pos := p.advance().Pos
		inner := p.parsePattern10()
		return &ast.LazyPattern{TildePos: pos, Inner: inner}
	}

	head := p.parseAPattern()
	if p.failed() {
		return head
	}

	switch h := head.(type) {
	case *ast.ConsPattern:
		for isAPatternStart(p.peek().Cat) {
			arg := p.parseAPattern()
			if p.failed() {
				return head
			}
			h.Args = append(h.Args, arg)
		}
		head = h
	case *ast.VarPattern:
		// A variable applied to further atomic patterns is a functional
		// pattern (spec §4.6): `f x y = ...` matched structurally. Only
		// recognized here when at least one argument follows; a bare
		// variable remains a VarPattern.
		if isAPatternStart(p.peek().Cat) {
			fp := &ast.FuncPattern{FuncPos: h.Pos(), Name: ident.NewUnqualified(h.Name)}
			for isAPatternStart(p.peek().Cat) {
				arg := p.parseAPattern()
				if p.failed() {
					return fp
				}
				fp.Args = append(fp.Args, arg)
			}
			head = fp
		}
	}

	if p.peek().Cat == token.AT {
		if vp, ok := head.(*ast.VarPattern); ok {
			p.advance()
			inner := p.parsePattern10()
			return &ast.AsPattern{Name: vp.Name, Inner: inner}
		}
	}
	return head
}

func isAPatternStart(cat token.Category) bool {
	switch cat {
	case token.IDENT, token.QUALIFIED_IDENT, token.UNDERSCORE,
		token.INT, token.FLOAT, token.CHAR, token.STRING,
		token.LPAREN, token.LBRACKET, token.TILDE:
		return true
	default:
		return false
	}
}

// parseAPattern parses an atomic pattern: a literal, negative literal,
// variable, as-pattern `x@p`, lazy pattern `~p`, bare constructor,
// wildcard, or a parenthesized/bracketed compound.
func (p *Parser) parseAPattern() ast.Pattern {
	tok := p.peek()
	switch tok.Cat {
	case token.TILDE:
		p.advance()
		inner := p.parseAPattern()
		return &ast.LazyPattern{TildePos: tok.Pos, Inner: inner}
	case token.UNDERSCORE:
		p.advance()
		return &ast.VarPattern{Name: p.ident(tok)}
	case token.INT, token.FLOAT, token.CHAR, token.STRING:
		p.advance()
		return &ast.LiteralPattern{Lit: p.literalFromToken(tok)}
	case token.SYMBOLIC_IDENT:
		if tok.Lit == "-" || tok.Lit == "-." {
			minusPos := tok.Pos
			p.advance()
			lit := p.peek()
			if lit.Cat != token.INT && lit.Cat != token.FLOAT {
				p.cur.Fail("numeric literal expected after unary minus in pattern")
				return nil
			}
			p.advance()
			return &ast.NegLiteralPattern{MinusPos: minusPos, Lit: p.literalFromToken(lit)}
		}
		p.cur.Fail("pattern expected")
		return nil
	case token.IDENT:
		p.advance()
		if ident.IsConstructorLike(tok.Lit) {
			if p.peek().Cat == token.LBRACE {
				return p.parseRecordPattern(tok)
			}
			return &ast.ConsPattern{ConsPos: tok.Pos, Name: qualifiedFromToken(tok)}
		}
		if p.peek().Cat == token.AT {
			p.advance()
			inner := p.parseAPattern()
			return &ast.AsPattern{Name: p.ident(tok), Inner: inner}
		}
		return &ast.VarPattern{Name: p.ident(tok)}
	case token.QUALIFIED_IDENT:
		p.advance()
		if p.peek().Cat == token.LBRACE {
			return p.parseRecordPattern(tok)
		}
		return &ast.ConsPattern{ConsPos: tok.Pos, Name: qualifiedFromToken(tok)}
	case token.LBRACKET:
		p.advance()
		if p.peek().Cat == token.RBRACKET {
			p.advance()
			return &ast.ConsPattern{ConsPos: tok.Pos, Name: builtinListCons(tok)}
		}
		elems := []ast.Pattern{p.parsePattern()}
		for p.peek().Cat == token.COMMA {
			p.advance()
			elems = append(elems, p.parsePattern())
		}
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.ListPattern{ListPos: tok.Pos, Elems: elems}
	case token.LPAREN:
		p.advance()
		if p.peek().Cat == token.RPAREN {
			p.advance()
			return &ast.ConsPattern{ConsPos: tok.Pos, Name: builtinUnitCons(tok)}
		}
		first := p.parsePattern()
		if p.failed() {
			return nil
		}
		if p.peek().Cat == token.COMMA {
			elems := []ast.Pattern{first}
			for p.peek().Cat == token.COMMA {
				p.advance()
				elems = append(elems, p.parsePattern())
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
			return &ast.TuplePattern{TuplePos: tok.Pos, Elems: elems}
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return first
	default:
		p.cur.Fail("pattern expected")
		return nil
	}
}

// parseRecordPattern parses the field list of a record pattern
// `Cons { f1 = p1, ... }`, consTok already consumed.
func (p *Parser) parseRecordPattern(consTok token.Token) ast.Pattern {
	p.advance() // {
	var fields []ast.FieldPattern
	if p.peek().Cat != token.RBRACE {
		for {
			nameTok := p.peek()
			if nameTok.Cat != token.IDENT {
				p.cur.Fail("field name expected")
				return nil
			}
			p.advance()
			if !p.expect(token.EQUALS) {
				return nil
			}
			val := p.parsePattern()
			if p.failed() {
				return nil
			}
			fields = append(fields, ast.FieldPattern{Name: qualifiedFromToken(nameTok), Pattern: val})
			if p.peek().Cat == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return &ast.RecordPattern{ConsPos: consTok.Pos, Name: qualifiedFromToken(consTok), Fields: fields}
}

func (p *Parser) literalFromToken(tok token.Token) ast.Literal {
	switch tok.Cat {
	case token.INT:
		return &ast.IntLiteral{LitPos: tok.Pos, Value: parseInt64(tok.Lit)}
	case token.FLOAT:
		return &ast.FloatLiteral{LitPos: tok.Pos, Value: parseFloat64(tok.Lit)}
	case token.CHAR:
		r := []rune(tok.Lit)
		var v rune
		if len(r) > 0 {
			v = r[0]
		}
		return &ast.CharLiteral{LitPos: tok.Pos, Value: v}
	case token.STRING:
		return &ast.StringLiteral{LitPos: tok.Pos, Value: tok.Lit}
	default:
		return &ast.StringLiteral{LitPos: tok.Pos, Value: tok.Lit}
	}
}
