package parser

import (
	"strings"

	"github.com/curryfront/curryfront/pkg/ast"
	"github.com/curryfront/curryfront/pkg/ident"
	"github.com/curryfront/curryfront/pkg/token"
)

// knownExtensions classifies the LANGUAGE pragma names this front end
// recognizes (spec §4.6: a LanguagePragma splits its names into known and
// unknown); these mirror the handful of source-level extensions PAKCS and
// KiCS2 actually define.
var knownExtensions = map[string]bool{
	"FunctionalPatterns": true,
	"NoImplicitPrelude":  true,
	"DefaultRules":       true,
	"CPP":                true,
}

// parseModule parses a whole compilation unit: optional pragmas, an
// optional `module Name [(exports)] where` header (defaulting to the
// canonical main module, spec §4.6), imports, and the top-level
// declaration block.
func (p *Parser) parseModule() *ast.Module {
	pragmas := p.parsePragmas()

	name := ident.Main
	var exports []ast.ExportItem

	if p.peek().Cat == token.KW_MODULE {
		p.advance()
		nameTok := p.peek()
		if nameTok.Cat != token.IDENT && nameTok.Cat != token.QUALIFIED_IDENT {
			p.cur.Fail("module name expected")
			return nil
		}
		p.advance()
		name = moduleIdentFromToken(nameTok)
		if p.peek().Cat == token.LPAREN {
			var ok bool
			exports, ok = p.parseExportList()
			if !ok {
				return nil
			}
		}
		if !p.expectMsg(token.KW_WHERE, "where expected") {
			return nil
		}
	}

	imports, ok := p.parseImports()
	if !ok {
		return nil
	}
	decls, ok := p.parseDeclBlock()
	if !ok {
		return nil
	}
	return &ast.Module{Pragmas: pragmas, Name: name, Exports: exports, Imports: imports, Decls: decls}
}

func moduleIdentFromToken(tok token.Token) ident.ModuleIdent {
	parts := append(append([]string{}, tok.Qualifier...), tok.Lit)
	return ident.NewModuleIdent(tok.Pos, parts...)
}

// --- pragmas ---

func (p *Parser) parsePragmas() []ast.Pragma {
	var out []ast.Pragma
	for p.peek().Cat == token.PRAGMA_OPEN {
		pos := p.advance().Pos
		switch p.peek().Cat {
		case token.KW_LANGUAGE:
			p.advance()
			var known, unknown []string
			for p.peek().Cat == token.PRAGMA_IDENT {
				name := p.advance().Lit
				if knownExtensions[name] {
					known = append(known, name)
				} else {
					unknown = append(unknown, name)
				}
				if p.peek().Cat == token.COMMA {
					p.advance()
				}
			}
			out = append(out, &ast.LanguagePragma{PragmaPos: pos, Known: known, Unknown: unknown})
		case token.KW_OPTIONS:
			p.advance()
			var parts []string
			for p.peek().Cat == token.PRAGMA_IDENT {
				parts = append(parts, p.advance().Lit)
			}
			out = append(out, &ast.OptionsPragma{PragmaPos: pos, Args: strings.Join(parts, " ")})
		default:
			for p.peek().Cat != token.PRAGMA_CLOSE && p.peek().Cat != token.EOF {
				p.advance()
			}
		}
		if !p.expect(token.PRAGMA_CLOSE) {
			return out
		}
	}
	return out
}

// --- export list ---

func (p *Parser) parseExportList() ([]ast.ExportItem, bool) {
	if !p.expect(token.LPAREN) {
		return nil, false
	}
	items := []ast.ExportItem{}
	if p.peek().Cat != token.RPAREN {
		for {
			item, ok := p.parseExportItem()
			if !ok {
				return nil, false
			}
			items = append(items, item)
			if p.peek().Cat == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expect(token.RPAREN) {
		return nil, false
	}
	return items, true
}

func (p *Parser) parseExportItem() (ast.ExportItem, bool) {
	tok := p.peek()
	if tok.Cat == token.KW_MODULE {
		p.advance()
		nameTok := p.peek()
		if nameTok.Cat != token.IDENT && nameTok.Cat != token.QUALIFIED_IDENT {
			p.cur.Fail("module name expected")
			return nil, false
		}
		p.advance()
		return &ast.ExportModule{ModulePos: tok.Pos, Module: moduleIdentFromToken(nameTok)}, true
	}
	if tok.Cat == token.LPAREN {
		p.advance()
		opTok := p.peek()
		if opTok.Cat != token.SYMBOLIC_IDENT {
			p.cur.Fail("operator expected")
			return nil, false
		}
		p.advance()
		if !p.expect(token.RPAREN) {
			return nil, false
		}
		return &ast.ExportVar{Name: qualifiedFromToken(opTok)}, true
	}
	if tok.Cat != token.IDENT && tok.Cat != token.QUALIFIED_IDENT {
		p.cur.Fail("export item expected")
		return nil, false
	}
	p.advance()
	if ident.IsConstructorLike(lastComponent(tok.Lit)) {
		cons := []ident.QualifiedIdent{}
		if p.peek().Cat == token.LPAREN {
			p.advance()
			if p.peek().Cat == token.DOTDOT {
				p.advance()
				cons = nil
			} else {
				for {
					cTok := p.peek()
					if cTok.Cat != token.IDENT {
						p.cur.Fail("constructor name expected")
						return nil, false
					}
					p.advance()
					cons = append(cons, qualifiedFromToken(cTok))
					if p.peek().Cat == token.COMMA {
						p.advance()
						continue
					}
					break
				}
			}
			if !p.expect(token.RPAREN) {
				return nil, false
			}
		}
		return &ast.ExportType{Name: qualifiedFromToken(tok), Constructors: cons}, true
	}
	return &ast.ExportVar{Name: qualifiedFromToken(tok)}, true
}

// --- import declarations ---

func (p *Parser) parseImports() ([]ast.ImportDecl, bool) {
	var out []ast.ImportDecl
	for p.peek().Cat == token.KW_IMPORT {
		imp, ok := p.parseImportDecl()
		if !ok {
			return nil, false
		}
		out = append(out, imp)
	}
	return out, true
}

func (p *Parser) parseImportDecl() (ast.ImportDecl, bool) {
	pos := p.advance().Pos // import
	qualified := false
	if p.peek().Cat == token.KW_QUALIFIED {
		p.advance()
		qualified = true
	}
	nameTok := p.peek()
	if nameTok.Cat != token.IDENT && nameTok.Cat != token.QUALIFIED_IDENT {
		p.cur.Fail("module name expected")
		return ast.ImportDecl{}, false
	}
	p.advance()
	mod := moduleIdentFromToken(nameTok)

	var alias *ident.ModuleIdent
	if p.peek().Cat == token.KW_AS {
		p.advance()
		aTok := p.peek()
		if aTok.Cat != token.IDENT && aTok.Cat != token.QUALIFIED_IDENT {
			p.cur.Fail("module name expected")
			return ast.ImportDecl{}, false
		}
		p.advance()
		a := moduleIdentFromToken(aTok)
		alias = &a
	}

	hiding := false
	if p.peek().Cat == token.KW_HIDING {
		p.advance()
		hiding = true
	}

	var items []ast.ImportItem
	if p.peek().Cat == token.LPAREN {
		var ok bool
		items, ok = p.parseImportItems()
		if !ok {
			return ast.ImportDecl{}, false
		}
	}
	return ast.ImportDecl{ImportPos: pos, Module: mod, Qualified: qualified, Alias: alias, Hiding: hiding, Items: items}, true
}

func (p *Parser) parseImportItems() ([]ast.ImportItem, bool) {
	p.advance() // (
	items := []ast.ImportItem{}
	if p.peek().Cat != token.RPAREN {
		for {
			item, ok := p.parseImportItem()
			if !ok {
				return nil, false
			}
			items = append(items, item)
			if p.peek().Cat == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expect(token.RPAREN) {
		return nil, false
	}
	return items, true
}

func (p *Parser) parseImportItem() (ast.ImportItem, bool) {
	tok := p.peek()
	if tok.Cat == token.LPAREN {
		p.advance()
		opTok := p.peek()
		if opTok.Cat != token.SYMBOLIC_IDENT {
			p.cur.Fail("operator expected")
			return ast.ImportItem{}, false
		}
		p.advance()
		if !p.expect(token.RPAREN) {
			return ast.ImportItem{}, false
		}
		return ast.ImportItem{Name: p.ident(opTok)}, true
	}
	if tok.Cat != token.IDENT {
		p.cur.Fail("import item expected")
		return ast.ImportItem{}, false
	}
	p.advance()
	var cons []ident.Ident
	if ident.IsConstructorLike(tok.Lit) && p.peek().Cat == token.LPAREN {
		p.advance()
		if p.peek().Cat == token.DOTDOT {
			p.advance()
			cons = nil
		} else {
			cons = []ident.Ident{}
			for {
				cTok := p.peek()
				if cTok.Cat != token.IDENT {
					p.cur.Fail("constructor name expected")
					return ast.ImportItem{}, false
				}
				p.advance()
				cons = append(cons, p.ident(cTok))
				if p.peek().Cat == token.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		if !p.expect(token.RPAREN) {
			return ast.ImportItem{}, false
		}
	}
	return ast.ImportItem{Name: p.ident(tok), Constructors: cons}, true
}

// --- local/top-level declaration blocks ---

// parseDeclBlock parses a layout or brace-delimited block of declarations,
// merging consecutive equations of the same function into one FuncDecl
// (spec §4.6: a function is defined by one or more equations).
func (p *Parser) parseDeclBlock() ([]ast.Decl, bool) {
	p.cur.PushFrame("declaration")
	defer p.cur.PopFrame()
	decls, ok := parseSeparatedBlock(p, p.parseTopDecl)
	if !ok {
		return nil, false
	}
	return mergeEquations(decls), true
}

func mergeEquations(decls []ast.Decl) []ast.Decl {
	out := make([]ast.Decl, 0, len(decls))
	for _, d := range decls {
		if fd, ok := d.(*ast.FuncDecl); ok && len(out) > 0 {
			if prev, ok2 := out[len(out)-1].(*ast.FuncDecl); ok2 && prev.Name.Name() == fd.Name.Name() {
				prev.Equations = append(prev.Equations, fd.Equations...)
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

func (p *Parser) parseTopDecl() (ast.Decl, bool) {
	switch p.peek().Cat {
	case token.KW_DATA:
		return p.parseDataDecl()
	case token.KW_NEWTYPE:
		return p.parseNewtypeDecl()
	case token.KW_TYPE:
		return p.parseTypeSynonymDecl()
	case token.KW_INFIX, token.KW_INFIXL, token.KW_INFIXR:
		return p.parseFixityDecl()
	case token.KW_FOREIGN:
		return p.parseForeignDecl()
	default:
		return p.parseBindingDecl()
	}
}

// --- data / newtype / type ---

func (p *Parser) parseTypeParams() []ident.Ident {
	var params []ident.Ident
	for p.peek().Cat == token.IDENT && !ident.IsConstructorLike(p.peek().Lit) {
		params = append(params, p.ident(p.advance()))
	}
	return params
}

func (p *Parser) parseDataDecl() (ast.Decl, bool) {
	pos := p.advance().Pos // data
	nameTok := p.peek()
	if nameTok.Cat != token.IDENT || !ident.IsConstructorLike(nameTok.Lit) {
		p.cur.Fail("type constructor name expected")
		return nil, false
	}
	p.advance()
	params := p.parseTypeParams()

	var ctors []ast.ConstructorDecl
	if p.peek().Cat == token.EQUALS {
		p.advance()
		for {
			c, ok := p.parseConstructorDecl()
			if !ok {
				return nil, false
			}
			ctors = append(ctors, c)
			if p.peek().Cat == token.PIPE {
				p.advance()
				continue
			}
			break
		}
	}
	deriving := p.tryParseDeriving()
	return &ast.DataDecl{DeclPos: pos, Name: p.ident(nameTok), Visibility: ast.Public, TypeParams: params, Constructors: ctors, Deriving: deriving}, true
}

func (p *Parser) parseNewtypeDecl() (ast.Decl, bool) {
	pos := p.advance().Pos // newtype
	nameTok := p.peek()
	if nameTok.Cat != token.IDENT || !ident.IsConstructorLike(nameTok.Lit) {
		p.cur.Fail("type constructor name expected")
		return nil, false
	}
	p.advance()
	params := p.parseTypeParams()
	if !p.expect(token.EQUALS) {
		return nil, false
	}
	ctor, ok := p.parseConstructorDecl()
	if !ok {
		return nil, false
	}
	deriving := p.tryParseDeriving()
	return &ast.NewtypeDecl{DeclPos: pos, Name: p.ident(nameTok), Visibility: ast.Public, TypeParams: params, Constructor: ctor, Deriving: deriving}, true
}

func (p *Parser) parseTypeSynonymDecl() (ast.Decl, bool) {
	pos := p.advance().Pos // type
	nameTok := p.peek()
	if nameTok.Cat != token.IDENT || !ident.IsConstructorLike(nameTok.Lit) {
		p.cur.Fail("type constructor name expected")
		return nil, false
	}
	p.advance()
	params := p.parseTypeParams()
	if !p.expect(token.EQUALS) {
		return nil, false
	}
	rhs := p.parseType()
	if p.failed() {
		return nil, false
	}
	return &ast.TypeSynonymDecl{DeclPos: pos, Name: p.ident(nameTok), Visibility: ast.Public, TypeParams: params, RHS: rhs}, true
}

func (p *Parser) parseConstructorDecl() (ast.ConstructorDecl, bool) {
	nameTok := p.peek()
	if nameTok.Cat != token.IDENT || !ident.IsConstructorLike(nameTok.Lit) {
		p.cur.Fail("data constructor name expected")
		return ast.ConstructorDecl{}, false
	}
	p.advance()

	if p.peek().Cat == token.LBRACE {
		p.advance()
		var argTypes []ast.TypeExpr
		var fields []ident.Ident
		if p.peek().Cat != token.RBRACE {
			for {
				fTok := p.peek()
				if fTok.Cat != token.IDENT {
					p.cur.Fail("field name expected")
					return ast.ConstructorDecl{}, false
				}
				p.advance()
				if !p.expect(token.DCOLON) {
					return ast.ConstructorDecl{}, false
				}
				t := p.parseType()
				if p.failed() {
					return ast.ConstructorDecl{}, false
				}
				fields = append(fields, p.ident(fTok))
				argTypes = append(argTypes, t)
				if p.peek().Cat == token.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		if !p.expect(token.RBRACE) {
			return ast.ConstructorDecl{}, false
		}
		return ast.ConstructorDecl{Name: p.ident(nameTok), ArgTypes: argTypes, Fields: fields}, true
	}

	var argTypes []ast.TypeExpr
	for isATypeStart(p.peek().Cat) {
		t := p.parseAType()
		if p.failed() {
			return ast.ConstructorDecl{}, false
		}
		argTypes = append(argTypes, t)
	}
	return ast.ConstructorDecl{Name: p.ident(nameTok), ArgTypes: argTypes}, true
}

// tryParseDeriving parses an optional trailing `deriving C` or
// `deriving (C1, C2)` clause. "deriving" is not a reserved word lexically
// (no Category of its own); it is recognized by literal text on an IDENT
// token, the same way "deriving" is a context-sensitive word in Haskell.
func (p *Parser) tryParseDeriving() []ident.QualifiedIdent {
	if p.peek().Cat != token.IDENT || p.peek().Lit != "deriving" {
		return nil
	}
	p.advance()
	var out []ident.QualifiedIdent
	if p.peek().Cat == token.LPAREN {
		p.advance()
		if p.peek().Cat != token.RPAREN {
			for {
				tok := p.peek()
				if tok.Cat != token.IDENT && tok.Cat != token.QUALIFIED_IDENT {
					p.cur.Fail("class name expected")
					return out
				}
				p.advance()
				out = append(out, qualifiedFromToken(tok))
				if p.peek().Cat == token.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RPAREN)
		return out
	}
	tok := p.peek()
	if tok.Cat != token.IDENT && tok.Cat != token.QUALIFIED_IDENT {
		p.cur.Fail("class name expected")
		return out
	}
	p.advance()
	return append(out, qualifiedFromToken(tok))
}

// --- fixity declarations ---

func (p *Parser) parseFixityDecl() (ast.Decl, bool) {
	tok := p.advance()
	var fixity ast.Fixity
	switch tok.Cat {
	case token.KW_INFIXL:
		fixity = ast.FixityLeft
	case token.KW_INFIXR:
		fixity = ast.FixityRight
	default:
		fixity = ast.FixityNone
	}
	var prec *int
	if p.peek().Cat == token.INT {
		n := int(parseInt64(p.peek().Lit))
		p.advance()
		prec = &n
	}
	var ops []ident.Ident
	for {
		opTok, _, isOp := p.peekOperatorTok()
		if !isOp {
			p.cur.Fail("operator expected")
			return nil, false
		}
		p.advanceOperatorTok(opTok)
		ops = append(ops, p.ident(opTok))
		if p.peek().Cat == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	return &ast.FixityDecl{DeclPos: tok.Pos, Fixity: fixity, Precedence: prec, Operators: ops}, true
}

// --- foreign declarations ---

// parseForeignDecl parses `foreign import <calling> ["<symbol>"] name ::
// type`, the external symbol defaulting to the declared name when omitted.
func (p *Parser) parseForeignDecl() (ast.Decl, bool) {
	pos := p.advance().Pos // foreign
	if p.peek().Cat == token.KW_IMPORT {
		p.advance()
	}
	callingTok := p.peek()
	if callingTok.Cat != token.IDENT {
		p.cur.Fail("calling convention expected")
		return nil, false
	}
	p.advance()
	external := ""
	if p.peek().Cat == token.STRING {
		external = p.advance().Lit
	}
	nameTok := p.peek()
	if nameTok.Cat != token.IDENT {
		p.cur.Fail("function name expected")
		return nil, false
	}
	p.advance()
	if external == "" {
		external = nameTok.Lit
	}
	if !p.expect(token.DCOLON) {
		return nil, false
	}
	typ := p.parseType()
	if p.failed() {
		return nil, false
	}
	return &ast.ForeignDecl{DeclPos: pos, Calling: callingTok.Lit, Name: p.ident(nameTok), Type: typ, External: external}, true
}

// --- type signatures, free-variable declarations, equations, pattern
// bindings: all share an ambiguous IDENT-led prefix (spec §4.6) and are
// disambiguated here by speculative lookahead via the cursor's Save/Restore.

func (p *Parser) parseBindingDecl() (ast.Decl, bool) {
	if decl, ok := p.tryNameListDecl(); ok {
		return decl, true
	}
	if decl, ok := p.tryParenOperatorFuncDecl(); ok {
		return decl, true
	}
	if decl, ok := p.tryParenAppliedLHSDecl(); ok {
		return decl, true
	}

	pat := p.parsePattern()
	if p.failed() {
		return nil, false
	}

	if lhs, ok := p.lhsFromPattern(pat); ok {
		return p.finishEquationOrEqualsDecl(lhs)
	}
	// Any other pattern shape — constructor application, tuple, list,
	// as-pattern, literal, ... — reinterpreted as a pattern binding
	// rather than a function declaration (spec §4.6).
	rhs := p.parseRHS(token.EQUALS)
	if p.failed() {
		return nil, false
	}
	return &ast.PatternDecl{DeclPos: pat.Pos(), LHS: pat, RHS: rhs}, true
}

// lhsFromPattern recognizes the prefix and infix-operator LHS shapes out
// of an already-parsed pattern, shared by parseBindingDecl's top-level
// dispatch and parseInnerLHS's recursive base case (spec §4.6's three LHS
// shapes: prefix, infix operator, applied).
func (p *Parser) lhsFromPattern(pat ast.Pattern) (ast.LHS, bool) {
	switch h := pat.(type) {
	case *ast.VarPattern:
		return &ast.PrefixLHS{Name: h.Name}, true
	case *ast.FuncPattern:
		if h.Name.Qualified() {
			p.errorf(h.Pos(), "function name must be unqualified")
		}
		return &ast.PrefixLHS{Name: h.Name.Ident, Args: h.Args}, true
	case *ast.InfixFuncPattern:
		if h.Op.Qualified() {
			p.errorf(h.Pos(), "operator name must be unqualified")
		}
		return &ast.OperatorLHS{Left: h.Left, Op: h.Op.Ident, Right: h.Right}, true
	default:
		return nil, false
	}
}

// parseInnerLHS parses a bare LHS (prefix, infix operator, or a nested
// parenthesized-and-applied LHS), not yet followed by `=`/guards. It is
// the building block for the applied shape `(lhs) p1 ... pn`, which wraps
// an arbitrary inner LHS in parens and applies it to further patterns.
func (p *Parser) parseInnerLHS() (ast.LHS, bool) {
	if p.peek().Cat == token.LPAREN {
		saved := p.cur.Save()
		p.advance() // (
		base, ok := p.parseInnerLHS()
		if ok && !p.failed() && p.peek().Cat == token.RPAREN {
			p.advance()
			if isAPatternStart(p.peek().Cat) {
				lhs := &ast.AppliedLHS{Base: base}
				for isAPatternStart(p.peek().Cat) {
					arg := p.parseAPattern()
					if p.failed() {
						return nil, false
					}
					lhs.Args = append(lhs.Args, arg)
				}
				return lhs, true
			}
		}
		p.cur.Restore(saved)
	}

	pat := p.parsePattern()
	if p.failed() {
		return nil, false
	}
	return p.lhsFromPattern(pat)
}

// tryParenAppliedLHSDecl recognizes the applied LHS shape `(lhs) p1 ...
// pn = ...` (spec §4.6), speculatively: only commits when the
// parenthesized base is immediately followed by at least one more
// argument pattern, so an ordinary parenthesized pattern binding like
// `(x, y) = pair` still falls through to the default pattern-binding path.
func (p *Parser) tryParenAppliedLHSDecl() (ast.Decl, bool) {
	if p.peek().Cat != token.LPAREN {
		return nil, false
	}
	saved := p.cur.Save()
	lhs, ok := p.parseInnerLHS()
	if !ok {
		p.cur.Restore(saved)
		return nil, false
	}
	if _, isApplied := lhs.(*ast.AppliedLHS); !isApplied {
		p.cur.Restore(saved)
		return nil, false
	}
	return p.finishEquationOrEqualsDecl(lhs)
}

// tryNameListDecl speculatively parses a comma-separated list of plain or
// parenthesized-operator names and, only if that list is immediately
// followed by `::` or `free`, commits to a TypeSigDecl or FreeDecl;
// otherwise it restores the cursor so the caller can try the equation or
// pattern-binding shape instead.
func (p *Parser) tryNameListDecl() (ast.Decl, bool) {
	saved := p.cur.Save()
	pos := p.peek().Pos
	names, ok := p.tryParseNameList()
	if !ok || len(names) == 0 {
		p.cur.Restore(saved)
		return nil, false
	}
	switch p.peek().Cat {
	case token.DCOLON:
		p.advance()
		typ := p.parseType()
		return &ast.TypeSigDecl{DeclPos: pos, Names: names, Type: typ}, true
	case token.KW_FREE:
		p.advance()
		return &ast.FreeDecl{DeclPos: pos, Vars: names}, true
	default:
		p.cur.Restore(saved)
		return nil, false
	}
}

func (p *Parser) tryParseNameList() ([]ident.Ident, bool) {
	var names []ident.Ident
	for {
		tok := p.peek()
		switch {
		case tok.Cat == token.IDENT && !ident.IsConstructorLike(tok.Lit):
			p.advance()
			names = append(names, p.ident(tok))
		case tok.Cat == token.LPAREN:
			save2 := p.cur.Save()
			p.advance()
			opTok := p.peek()
			if opTok.Cat != token.SYMBOLIC_IDENT {
				p.cur.Restore(save2)
				return names, false
			}
			p.advance()
			if p.peek().Cat != token.RPAREN {
				p.cur.Restore(save2)
				return names, false
			}
			p.advance()
			names = append(names, p.ident(opTok))
		default:
			return names, false
		}
		if p.peek().Cat == token.COMMA {
			p.advance()
			continue
		}
		return names, true
	}
}

// tryParenOperatorFuncDecl recognizes a function or external declaration
// whose name is a parenthesized operator symbol: `(+++) x y = ...`.
func (p *Parser) tryParenOperatorFuncDecl() (ast.Decl, bool) {
	if p.peek().Cat != token.LPAREN {
		return nil, false
	}
	saved := p.cur.Save()
	p.advance()
	opTok := p.peek()
	if opTok.Cat != token.SYMBOLIC_IDENT {
		p.cur.Restore(saved)
		return nil, false
	}
	p.advance()
	if p.peek().Cat != token.RPAREN {
		p.cur.Restore(saved)
		return nil, false
	}
	p.advance()

	lhs := &ast.PrefixLHS{Name: p.ident(opTok)}
	for isAPatternStart(p.peek().Cat) {
		arg := p.parseAPattern()
		if p.failed() {
			return nil, false
		}
		lhs.Args = append(lhs.Args, arg)
	}
	return p.finishEquationOrEqualsDecl(lhs)
}

func (p *Parser) finishEquationOrEqualsDecl(lhs ast.LHS) (ast.Decl, bool) {
	if p.peek().Cat == token.KW_EXTERNAL {
		p.advance()
		if pl, ok := lhs.(*ast.PrefixLHS); !ok || len(pl.Args) > 0 {
			p.errorf(lhs.Pos(), "external declaration requires a simple name")
		}
		return &ast.ExternalDecl{DeclPos: lhs.Pos(), Name: lhsName(lhs)}, true
	}
	rhs := p.parseRHS(token.EQUALS)
	if p.failed() {
		return nil, false
	}
	return &ast.FuncDecl{
		DeclPos:    lhs.Pos(),
		Name:       lhsName(lhs),
		Visibility: ast.Public,
		Equations:  []ast.Equation{{LHS: lhs, RHS: rhs}},
	}, true
}

func lhsName(l ast.LHS) ident.Ident {
	switch v := l.(type) {
	case *ast.PrefixLHS:
		return v.Name
	case *ast.OperatorLHS:
		return v.Op
	case *ast.AppliedLHS:
		return lhsName(v.Base)
	default:
		return ident.Ident{}
	}
}

// --- right-hand sides shared by equations, pattern bindings, and case
// alternatives (spec §4.6) ---

func (p *Parser) parseRHS(assign token.Category) ast.RHS {
	if p.peek().Cat == token.PIPE {
		var guards []ast.GuardedExpr
		for p.peek().Cat == token.PIPE {
			barPos := p.advance().Pos
			conds := []ast.Expr{p.parseExpr()}
			for p.peek().Cat == token.COMMA {
				p.advance()
				conds = append(conds, p.parseExpr())
			}
			if p.failed() {
				return nil
			}
			if !p.expect(assign) {
				return nil
			}
			result := p.parseExpr()
			if p.failed() {
				return nil
			}
			guards = append(guards, ast.GuardedExpr{BarPos: barPos, Conds: conds, Result: result})
		}
		where := p.parseWhereClause()
		return &ast.GuardedRHS{Guards: guards, Where: where}
	}
	pos := p.peek().Pos
	if !p.expect(assign) {
		return nil
	}
	expr := p.parseExpr()
	if p.failed() {
		return nil
	}
	where := p.parseWhereClause()
	return &ast.SimpleRHS{EqPos: pos, Expr: expr, Where: where}
}

func (p *Parser) parseWhereClause() []ast.Decl {
	if p.peek().Cat != token.KW_WHERE {
		return nil
	}
	p.advance()
	decls, ok := p.parseDeclBlock()
	if !ok {
		return nil
	}
	return decls
}
