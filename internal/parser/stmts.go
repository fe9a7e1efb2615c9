package parser

import (
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/token"
)

// parseStmt parses one do-block or list-comprehension statement: a
// pattern bind `p <- e`, a local declaration group (`let decls`, without a
// following `in`; spec §4.6), or a bare expression.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	if p.peek().Cat == token.KW_LET {
		letPos := p.advance().Pos
		decls, ok := p.parseDeclBlock()
		if !ok {
			return nil, false
		}
		if p.peek().Cat == token.KW_IN {
			p.advance()
			body := p.parseExpr()
			if p.failed() {
				return nil, false
			}
			letExpr := &ast.LetExpr{LetPos: letPos, Decls: decls, Body: body}
			tail := p.parseExprTail(letExpr)
			return &ast.ExprStmt{Expr: tail}, true
		}
		return &ast.DeclStmt{LetPos: letPos, Decls: decls}, true
	}

	saved := p.cur.Save()
	pat := p.parsePattern()
	if !p.failed() && p.peek().Cat == token.ARROW {
		p.advance()
		e := p.parseExpr()
		if p.failed() {
			return nil, false
		}
		return &ast.BindStmt{Pattern: pat, Expr: e}, true
	}
	p.cur.Restore(saved)

	e := p.parseExpr()
	if p.failed() {
		return nil, false
	}
	return &ast.ExprStmt{Expr: e}, true
}

// parseExprTail continues parsing any trailing infix operator chain after
// an already-parsed atomic-level expression such as a let-expression,
// matching how parseOpExpr would have consumed it had it parsed `left`
// itself.
func (p *Parser) parseExprTail(left ast.Expr) ast.Expr {
	for {
		opTok, opName, isOp := p.peekOperatorTok()
		if !isOp {
			return left
		}
		info := p.fix.Lookup(opName)
		p.advanceOperatorTok(opTok)
		nextMin := info.Precedence + 1
		if info.Fixity == ast.FixityRight {
			nextMin = info.Precedence
		}
		right := p.parseOpExpr(nextMin)
		left = &ast.InfixAppExpr{Left: left, Op: qualifiedFromToken(opTok), Right: right}
		if p.failed() {
			return left
		}
	}
}
