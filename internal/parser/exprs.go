package parser

import (
	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/token"
)

// parseExpr parses a full expression, including a trailing `:: type`
// annotation at the very lowest precedence.
func (p *Parser) parseExpr() ast.Expr {
	e := p.parseOpExpr(0)
	if p.failed() {
		return e
	}
	if p.peek().Cat == token.DCOLON {
		p.advance()
		t := p.parseType()
		return &ast.TypedExpr{Inner: e, Type: t}
	}
	return e
}

// parseOpExpr climbs operator precedence using the fixity table, exactly
// mirroring parsePatternPrec's shape (spec §4.6).
func (p *Parser) parseOpExpr(minPrec int) ast.Expr {
	left := p.parseUnaryOrApp()
	if p.failed() {
		return left
	}
	for {
		opTok, opName, isOp := p.peekOperatorTok()
		if !isOp {
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
		right := p.parseOpExpr(nextMin)
		left = &ast.InfixAppExpr{Left: left, Op: qualifiedFromToken(opTok), Right: right}
		if p.failed() {
			return left
		}
	}
	return left
}

// parseUnaryOrApp handles prefix `-` (spec §4.6: general unary minus,
// distinct from the dedicated negative-literal pattern rule) ahead of a
// plain application chain.
func (p *Parser) parseUnaryOrApp() ast.Expr {
	if tok := p.peek(); tok.Cat == token.SYMBOLIC_IDENT && (tok.Lit == "-" || tok.Lit == "-.") {
		p.advance()
		operand := p.parseOpExpr(p.fix.Lookup("+").Precedence)
		return &ast.UnaryMinusExpr{MinusPos: tok.Pos, Operand: operand}
	}
	return p.parseApp()
}

// parseApp parses a left-associative application chain of atomic
// expressions.
func (p *Parser) parseApp() ast.Expr {
	left := p.parseAExpr()
	if p.failed() {
		return left
	}
	for isAExprStart(p.peek().Cat) {
		arg := p.parseAExpr()
		if p.failed() {
			return left
		}
		left = &ast.AppExpr{Func: left, Arg: arg}
	}
	return left
}

func isAExprStart(cat token.Category) bool {
	switch cat {
	case token.IDENT, token.QUALIFIED_IDENT, token.INT, token.FLOAT, token.CHAR, token.STRING,
		token.LPAREN, token.LBRACKET, token.BACKSLASH, token.KW_LET, token.KW_DO,
		token.KW_IF, token.KW_CASE, token.KW_FCASE:
		return true
	default:
		return false
	}
}

// parseAExpr parses an atomic expression, including the postfix record
// construction/update syntax `expr{ f1 = e1, ... }` that can follow one.
func (p *Parser) parseAExpr() ast.Expr {
	e := p.parseAExprBase()
	if p.failed() {
		return e
	}
	for p.peek().Cat == token.LBRACE {
		e = p.parseRecordSuffix(e)
		if p.failed() {
			return e
		}
	}
	return e
}

func (p *Parser) parseRecordSuffix(base ast.Expr) ast.Expr {
	pos := p.advance().Pos // {
	var fields []ast.FieldExpr
	if p.peek().Cat != token.RBRACE {
		for {
			nameTok := p.peek()
			if nameTok.Cat != token.IDENT {
				p.cur.Fail("field name expected")
				return base
			}
			p.advance()
			if !p.expect(token.EQUALS) {
				return base
			}
			val := p.parseExpr()
			fields = append(fields, ast.FieldExpr{Name: qualifiedFromToken(nameTok), Expr: val})
			if p.peek().Cat == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expect(token.RBRACE) {
		return base
	}
	if cons, ok := base.(*ast.ConsExpr); ok {
		return &ast.RecordExpr{ConsPos: cons.Pos(), Name: cons.Name, Fields: fields}
	}
	return &ast.RecordUpdateExpr{Base: base, Fields: fields}
}

func (p *Parser) parseAExprBase() ast.Expr {
	tok := p.peek()
	switch tok.Cat {
	case token.INT, token.FLOAT, token.CHAR, token.STRING:
		p.advance()
		return &ast.LiteralExpr{Lit: p.literalFromToken(tok)}
	case token.IDENT:
		p.advance()
		if ident.IsConstructorLike(tok.Lit) {
			return &ast.ConsExpr{Name: qualifiedFromToken(tok)}
		}
		return &ast.VarExpr{Name: qualifiedFromToken(tok)}
	case token.QUALIFIED_IDENT:
		p.advance()
		if ident.IsConstructorLike(lastComponent(tok.Lit)) {
			return &ast.ConsExpr{Name: qualifiedFromToken(tok)}
		}
		return &ast.VarExpr{Name: qualifiedFromToken(tok)}
	case token.BACKSLASH:
		return p.parseLambda()
	case token.KW_LET:
		return p.parseLetExpr()
	case token.KW_DO:
		return p.parseDoExpr()
	case token.KW_IF:
		return p.parseIfExpr()
	case token.KW_CASE:
		return p.parseCaseExpr()
	case token.KW_FCASE:
		return p.parseFCaseExpr()
	case token.LBRACKET:
		return p.parseListLike()
	case token.LPAREN:
		return p.parseParenLike()
	default:
		p.cur.Fail("expression expected")
		return nil
	}
}

func lastComponent(qualified string) string {
	last := qualified
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			last = qualified[i+1:]
			break
		}
	}
	return last
}

func (p *Parser) parseLambda() ast.Expr {
	pos := p.advance().Pos // backslash
	var params []ast.Pattern
	for isAPatternStart(p.peek().Cat) {
		params = append(params, p.parseAPattern())
		if p.failed() {
			return nil
		}
	}
	if !p.expect(token.ARROW) {
		return nil
	}
	body := p.parseExpr()
	return &ast.LambdaExpr{BackslashPos: pos, Params: params, Body: body}
}

func (p *Parser) parseLetExpr() ast.Expr {
	pos := p.advance().Pos // let
	p.cur.PushFrame("let")
	defer p.cur.PopFrame()
	decls, ok := p.parseDeclBlock()
	if !ok {
		return nil
	}
	if !p.expectMsg(token.KW_IN, "in expected") {
		return nil
	}
	body := p.parseExpr()
	return &ast.LetExpr{LetPos: pos, Decls: decls, Body: body}
}

func (p *Parser) parseDoExpr() ast.Expr {
	pos := p.advance().Pos // do
	p.cur.PushFrame("do")
	defer p.cur.PopFrame()
	stmts, ok := parseSeparatedBlock(p, p.parseStmt)
	if !ok {
		return nil
	}
	return &ast.DoExpr{DoPos: pos, Stmts: stmts}
}

func (p *Parser) parseIfExpr() ast.Expr {
	pos := p.advance().Pos // if
	p.cur.PushFrame("if-then-else")
	defer p.cur.PopFrame()
	cond := p.parseExpr()
	if p.failed() {
		return nil
	}
	if !p.expectMsg(token.KW_THEN, "then expected") {
		return nil
	}
	then := p.parseExpr()
	if p.failed() {
		return nil
	}
	if !p.expectMsg(token.KW_ELSE, "else expected") {
		return nil
	}
	els := p.parseExpr()
	return &ast.IfExpr{IfPos: pos, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseCaseExpr() ast.Expr {
	pos := p.advance().Pos // case
	p.cur.PushFrame("case")
	defer p.cur.PopFrame()
	scrutinee := p.parseExpr()
	if p.failed() {
		return nil
	}
	if !p.expect(token.KW_OF) {
		return nil
	}
	alts, ok := parseSeparatedBlock(p, p.parseAlt)
	if !ok {
		return nil
	}
	return &ast.CaseExpr{CasePos: pos, Kind: ast.CaseRigid, Scrutinee: scrutinee, Alts: alts}
}

func (p *Parser) parseFCaseExpr() ast.Expr {
	pos := p.advance().Pos // fcase
	p.cur.PushFrame("fcase")
	defer p.cur.PopFrame()
	scrutinee := p.parseExpr()
	if p.failed() {
		return nil
	}
	if !p.expect(token.KW_OF) {
		return nil
	}
	alts, ok := parseSeparatedBlock(p, p.parseAlt)
	if !ok {
		return nil
	}
	return &ast.CaseExpr{CasePos: pos, Kind: ast.CaseFlex, Scrutinee: scrutinee, Alts: alts}
}

func (p *Parser) parseAlt() (ast.Alt, bool) {
	pat := p.parsePattern()
	if p.failed() {
		return ast.Alt{}, false
	}
	rhs := p.parseRHS(token.ARROW)
	if p.failed() {
		return ast.Alt{}, false
	}
	return ast.Alt{Pattern: pat, RHS: rhs}, true
}

// parseListLike parses the family of bracketed expressions that all start
// with `[`: the empty list, an explicit list, an arithmetic sequence, or a
// list comprehension.
func (p *Parser) parseListLike() ast.Expr {
	pos := p.advance().Pos // [
	if p.peek().Cat == token.RBRACKET {
		p.advance()
		return &ast.ListExpr{ListPos: pos, Elems: nil}
	}
	first := p.parseExpr()
	if p.failed() {
		return nil
	}
	switch p.peek().Cat {
	case token.DOTDOT:
		p.advance()
		if p.peek().Cat == token.RBRACKET {
			p.advance()
			return &ast.EnumExpr{ListPos: pos, Kind: ast.EnumFrom, From: first}
		}
		to := p.parseExpr()
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.EnumExpr{ListPos: pos, Kind: ast.EnumFromTo, From: first, To: to}
	case token.PIPE:
		p.advance()
		quals, ok := p.parseQualifiers()
		if !ok {
			return nil
		}
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.ListCompExpr{ListPos: pos, Result: first, Qualifiers: quals}
	case token.COMMA:
		p.advance()
		second := p.parseExpr()
		if p.failed() {
			return nil
		}
		if p.peek().Cat == token.DOTDOT {
			p.advance()
			if p.peek().Cat == token.RBRACKET {
				p.advance()
				return &ast.EnumExpr{ListPos: pos, Kind: ast.EnumFromThen, From: first, Then: second}
			}
			to := p.parseExpr()
			if !p.expect(token.RBRACKET) {
				return nil
			}
			return &ast.EnumExpr{ListPos: pos, Kind: ast.EnumFromThenTo, From: first, Then: second, To: to}
		}
		elems := []ast.Expr{first, second}
		for p.peek().Cat == token.COMMA {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.ListExpr{ListPos: pos, Elems: elems}
	default:
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.ListExpr{ListPos: pos, Elems: []ast.Expr{first}}
	}
}

// parseQualifiers parses the comma-separated statement list of a list
// comprehension, sharing the do-block statement grammar (spec §4.6).
func (p *Parser) parseQualifiers() ([]ast.Stmt, bool) {
	var quals []ast.Stmt
	for {
		s, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		quals = append(quals, s)
		if p.peek().Cat == token.COMMA {
			p.advance()
			continue
		}
		return quals, true
	}
}

// parseParenLike parses the family of parenthesized expressions: unit,
// an operator section or bare operator name, a parenthesized expression,
// or a tuple.
func (p *Parser) parseParenLike() ast.Expr {
	pos := p.advance().Pos // (
	if p.peek().Cat == token.RPAREN {
		p.advance()
		return &ast.ConsExpr{Name: builtinUnitCons(token.New(token.LPAREN, "(", pos))}
	}

	if opTok, opName, isOp := p.peekOperatorTok(); isOp {
		saved := p.cur.Save()
		p.advanceOperatorTok(opTok)
		if p.peek().Cat == token.RPAREN {
			p.advance()
			if ident.IsConstructorLike(opName) {
				return &ast.ConsExpr{Name: qualifiedFromToken(opTok)}
			}
			return &ast.VarExpr{Name: qualifiedFromToken(opTok)}
		}
		// Sections cannot be formed with prefix `-`/`-.`: "(- x)" parses as
		// a parenthesized negated expression, not a right section over
		// subtraction, matching Haskell/Curry's resolution of the same
		// ambiguity. Fall through to the general expression path below,
		// which routes through parseUnaryOrApp's dedicated unary-minus case.
		if opName != "-" && opName != "-." {
			// (op e): right section.
			right := p.parseOpExpr(p.fix.Lookup(opName).Precedence + 1)
			if !p.failed() && p.peek().Cat == token.RPAREN {
				p.advance()
				return &ast.RightSectionExpr{SectionPos: pos, Op: qualifiedFromToken(opTok), Right: right}
			}
		}
		p.cur.Restore(saved)
	}

	if p.peek().Cat == token.COMMA {
		// leading-comma tuple-constructor shorthand "(,)", "(,,)", ...
		n := 1
		for p.peek().Cat == token.COMMA {
			p.advance()
			n++
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &ast.ConsExpr{Name: builtinTupleCons(token.New(token.LPAREN, "(", pos), n)}
	}

	// Try a left section "(e op)" first: parse a single non-infix operand
	// and check whether an operator immediately followed by `)` comes
	// next. If not, back out and parse the whole parenthesized content as
	// one full expression (which will itself consume any infix chain).
	beforeOperand := p.cur.Save()
	operand := p.parseUnaryOrApp()
	if !p.failed() {
		if opTok, opName, isOp := p.peekOperatorTok(); isOp {
			_ = opName
			beforeOp := p.cur.Save()
			p.advanceOperatorTok(opTok)
			if p.peek().Cat == token.RPAREN {
				p.advance()
				return &ast.LeftSectionExpr{SectionPos: pos, Left: operand, Op: qualifiedFromToken(opTok)}
			}
			p.cur.Restore(beforeOp)
		}
	}
	p.cur.Restore(beforeOperand)

	first := p.parseExpr()
	if p.failed() {
		return nil
	}

	if p.peek().Cat == token.COMMA {
		elems := []ast.Expr{first}
		for p.peek().Cat == token.COMMA {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &ast.TupleExpr{TuplePos: pos, Elems: elems}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &ast.ParenExpr{ParenPos: pos, Inner: first}
}
