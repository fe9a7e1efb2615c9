package parser

import (
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/token"
)

// parseType parses a type expression at the lowest precedence: a chain of
// btype (applied types) separated by `->`, right-associative.
func (p *Parser) parseType() ast.TypeExpr {
	left := p.parseBType()
	if p.failed() {
		return left
	}
	if p.peek().Cat == token.ARROW {
		p.advance()
		right := p.parseType()
		return &ast.TypeArrowExpr{Domain: left, Range: right}
	}
	return left
}

// parseBType parses a type constructor applied to zero or more atomic type
// arguments.
func (p *Parser) parseBType() ast.TypeExpr {
	head := p.parseAType()
	if p.failed() {
		return head
	}
	cons, ok := head.(*ast.TypeConsExpr)
	if !ok {
		return head
	}
	for isATypeStart(p.peek().Cat) {
		arg := p.parseAType()
		if p.failed() {
			return head
		}
		cons.Args = append(cons.Args, arg)
	}
	return cons
}

func isATypeStart(cat token.Category) bool {
	switch cat {
	case token.IDENT, token.QUALIFIED_IDENT, token.LPAREN, token.LBRACKET:
		return true
	default:
		return false
	}
}

// parseAType parses an atomic type: a variable, a bare constructor, a
// parenthesized type or tuple, or a bracketed list type.
func (p *Parser) parseAType() ast.TypeExpr {
	tok := p.peek()
	switch tok.Cat {
	case token.IDENT:
		p.advance()
		if ident.IsConstructorLike(tok.Lit) {
			return &ast.TypeConsExpr{ConsPos: tok.Pos, Name: qualifiedFromToken(tok)}
		}
		return &ast.TypeVarExpr{Name: p.ident(tok)}
	case token.QUALIFIED_IDENT:
		p.advance()
		return &ast.TypeConsExpr{ConsPos: tok.Pos, Name: qualifiedFromToken(tok)}
	case token.LBRACKET:
		p.advance()
		if p.peek().Cat == token.RBRACKET {
			p.advance()
			return &ast.TypeConsExpr{ConsPos: tok.Pos, Name: builtinListCons(tok)}
		}
		elem := p.parseType()
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.TypeListExpr{ListPos: tok.Pos, Elem: elem}
	case token.LPAREN:
		p.advance()
		if p.peek().Cat == token.RPAREN {
			p.advance()
			return &ast.TypeConsExpr{ConsPos: tok.Pos, Name: builtinUnitCons(tok)}
		}
		if p.peek().Cat == token.ARROW {
			// (->) as a bare type constructor
			p.advance()
			if !p.expect(token.RPAREN) {
				return nil
			}
			return &ast.TypeConsExpr{ConsPos: tok.Pos, Name: builtinArrowCons(tok)}
		}
		first := p.parseType()
		if p.failed() {
			return nil
		}
		if p.peek().Cat == token.COMMA {
			elems := []ast.TypeExpr{first}
			for p.peek().Cat == token.COMMA {
				p.advance()
				elems = append(elems, p.parseType())
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
			return &ast.TypeTupleExpr{TuplePos: tok.Pos, Elems: elems}
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &ast.TypeParenExpr{ParenPos: tok.Pos, Inner: first}
	default:
		p.cur.Fail("expected a type")
		return nil
	}
}
