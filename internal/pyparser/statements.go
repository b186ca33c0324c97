package pyparser

import (
	"strings"

	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/config"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/token"
	"github.com/emilte/ruff/internal/tokenset"
)

// parseModModule parses a full module body: statements until EndOfFile
// (spec.md §4.10's ModModule/ModIpython entry point).
func (p *Parser) parseModModule() ast.Mod {
	var body []ast.Stmt
	for p.cur.Kind != token.EndOfFile {
		if p.eat(token.Newline) {
			continue
		}
		p.parseStatements(&body)
	}
	return &ast.ModModule{Base: ast.Base{Range: token.NewRange(0, p.cur.Range.End)}, Body: body}
}

// parseModExpression parses Expression mode: a single testlist, used by
// eval()-style embeddings.
func (p *Parser) parseModExpression() ast.Mod {
	start := p.cur.Range.Start
	expr := p.parseTestListAsTuple()
	p.eat(token.Newline)
	return &ast.ModExpression{Base: ast.Base{Range: token.NewRange(start, expr.NodeRange().End)}, Body: expr}
}

// parseStatements appends one logical "line" of statements to body: a
// single compound statement, or a full simple_stmts line.
func (p *Parser) parseStatements(body *[]ast.Stmt) {
	from := len(*body)
	if isCompoundStart(p.cur.Kind) || p.looksLikeMatchStmt() {
		*body = append(*body, p.parseCompoundStmt())
	} else {
		p.parseSimpleStmtLine(body)
	}
	p.flushDeferredInvalid(body, from)
}

// flushDeferredInvalid drains any Invalid ranges deferred (via
// expectAndRecover) while parsing the statement(s) just appended to
// *body at index from and onward, appending each as its own trailing
// Expr(Invalid) statement anchored after the last one parsed (spec.md
// §4.10's deferred-invalid flush rule).
func (p *Parser) flushDeferredInvalid(body *[]ast.Stmt, from int) {
	if len(p.deferredInvalid) == 0 {
		return
	}
	anchor := token.At(p.cur.Range.Start)
	if len(*body) > from {
		anchor = (*body)[len(*body)-1].NodeRange()
	}
	*body = append(*body, p.drainDeferredInvalid(anchor)...)
}

func isCompoundStart(k token.Kind) bool {
	switch k {
	case token.KwIf, token.KwWhile, token.KwFor, token.KwTry, token.KwWith,
		token.KwDef, token.KwClass, token.At, token.KwAsync:
		return true
	default:
		return false
	}
}

// parseBlock parses a `suite`: either a NEWLINE/INDENT/.../DEDENT block,
// or a simple_stmts line sharing the header's own line.
func (p *Parser) parseBlock() []ast.Stmt {
	if p.eat(token.Newline) {
		if !p.expect(token.Indent) {
			return nil
		}
		var body []ast.Stmt
		for !p.at(token.Dedent) && p.cur.Kind != token.EndOfFile {
			p.parseStatements(&body)
		}
		p.eat(token.Dedent)
		return body
	}
	var body []ast.Stmt
	p.parseSimpleStmtLine(&body)
	p.flushDeferredInvalid(&body, 0)
	return body
}

func blockEnd(body []ast.Stmt, fallback int) int {
	if len(body) == 0 {
		return fallback
	}
	return body[len(body)-1].NodeRange().End
}

// parseSimpleStmtLine parses `simple_stmt (';' simple_stmt)* [';'] NEWLINE`.
func (p *Parser) parseSimpleStmtLine(body *[]ast.Stmt) {
	*body = append(*body, p.parseOneSimpleStmt())
	for p.eat(token.Semi) {
		if p.at(token.Newline) || p.cur.Kind == token.EndOfFile {
			break
		}
		*body = append(*body, p.parseOneSimpleStmt())
	}
	if !p.eat(token.Newline) && p.cur.Kind != token.EndOfFile {
		// A compound-statement keyword here means someone wrote e.g.
		// `x = 1 while True: pass` — the compound/simple mix is the
		// problem. Anything else means two simple statements collided
		// with no ';' between them, e.g. `x = 1 y = 2`.
		if isCompoundStart(p.cur.Kind) || p.looksLikeMatchStmt() {
			p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeSimpleAndCompoundInLine, p.cur.Range)
		} else {
			p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeSimpleStmtsInSameLine, p.cur.Range)
		}
		*body = append(*body, p.recoverToStmtBoundary(p.cur.Range.Start))
	}
}

func (p *Parser) parseOneSimpleStmt() ast.Stmt {
	switch {
	case p.at(token.KwPass):
		rng := p.cur.Range
		p.advance()
		return &ast.Pass{Base: ast.Base{Range: rng}}
	case p.at(token.KwBreak):
		rng := p.cur.Range
		p.advance()
		return &ast.Break{Base: ast.Base{Range: rng}}
	case p.at(token.KwContinue):
		rng := p.cur.Range
		p.advance()
		return &ast.Continue{Base: ast.Base{Range: rng}}
	case p.at(token.KwReturn):
		return p.parseReturnStmt()
	case p.at(token.KwRaise):
		return p.parseRaiseStmt()
	case p.at(token.KwDel):
		return p.parseDeleteStmt()
	case p.at(token.KwGlobal):
		return p.parseGlobalStmt()
	case p.at(token.KwNonlocal):
		return p.parseNonlocalStmt()
	case p.at(token.KwAssert):
		return p.parseAssertStmt()
	case p.at(token.KwImport):
		return p.parseImportStmt()
	case p.at(token.KwFrom):
		return p.parseImportFromStmt()
	case p.looksLikeTypeAliasStmt():
		return p.parseTypeAliasStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	var value ast.Expr
	if isExprStart(p.cur.Kind) {
		value = p.parseTestListAsTuple()
	}
	end := start + len("return")
	if value != nil {
		end = value.NodeRange().End
	}
	return &ast.Return{Base: ast.Base{Range: token.NewRange(start, end)}, Value: value}
}

func (p *Parser) parseRaiseStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	var exc, cause ast.Expr
	if isExprStart(p.cur.Kind) {
		exc = p.parseTest()
		if p.eat(token.KwFrom) {
			cause = p.parseTest()
		}
	}
	end := p.cur.Range.Start
	return &ast.Raise{Base: ast.Base{Range: token.NewRange(start, end)}, Exc: exc, Cause: cause}
}

func (p *Parser) parseDeleteStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	targets := []ast.Expr{p.parsePostfix(p.parseAtom())}
	for p.eat(token.Comma) {
		if !isExprStart(p.cur.Kind) {
			break
		}
		targets = append(targets, p.parsePostfix(p.parseAtom()))
	}
	for _, t := range targets {
		setExprCtx(t, ast.Del)
	}
	end := targets[len(targets)-1].NodeRange().End
	return &ast.Delete{Base: ast.Base{Range: token.NewRange(start, end)}, Targets: targets}
}

func (p *Parser) parseGlobalStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	var names []string
	if p.at(token.Name) {
		names = append(names, p.cur.Name)
		p.advance()
	}
	for p.eat(token.Comma) {
		if p.at(token.Name) {
			names = append(names, p.cur.Name)
			p.advance()
		}
	}
	return &ast.Global{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Names: names}
}

func (p *Parser) parseNonlocalStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	var names []string
	if p.at(token.Name) {
		names = append(names, p.cur.Name)
		p.advance()
	}
	for p.eat(token.Comma) {
		if p.at(token.Name) {
			names = append(names, p.cur.Name)
			p.advance()
		}
	}
	return &ast.Nonlocal{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Names: names}
}

func (p *Parser) parseAssertStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	test := p.parseTest()
	var msg ast.Expr
	if p.eat(token.Comma) {
		msg = p.parseTest()
	}
	end := test.NodeRange().End
	if msg != nil {
		end = msg.NodeRange().End
	}
	return &ast.Assert{Base: ast.Base{Range: token.NewRange(start, end)}, Test: test, Msg: msg}
}

func (p *Parser) parseDottedName() string {
	var sb strings.Builder
	if p.at(token.Name) {
		sb.WriteString(p.cur.Name)
		p.advance()
	}
	for p.at(token.Dot) && p.peekIs(token.Name) {
		p.advance()
		sb.WriteByte('.')
		sb.WriteString(p.cur.Name)
		p.advance()
	}
	return sb.String()
}

func (p *Parser) parseDottedAsName() *ast.Alias {
	start := p.cur.Range.Start
	name := p.parseDottedName()
	asname := ""
	if p.eat(token.KwAs) && p.at(token.Name) {
		asname = p.cur.Name
		p.advance()
	}
	return &ast.Alias{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Name: name, AsName: asname}
}

func (p *Parser) parseImportAsName() *ast.Alias {
	start := p.cur.Range.Start
	name := ""
	if p.at(token.Name) {
		name = p.cur.Name
		p.advance()
	} else {
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, "Name", p.cur.Kind.String())
	}
	asname := ""
	if p.eat(token.KwAs) && p.at(token.Name) {
		asname = p.cur.Name
		p.advance()
	}
	return &ast.Alias{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Name: name, AsName: asname}
}

func (p *Parser) parseImportStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	names := []*ast.Alias{p.parseDottedAsName()}
	for p.eat(token.Comma) {
		names = append(names, p.parseDottedAsName())
	}
	return &ast.Import{Base: ast.Base{Range: token.NewRange(start, names[len(names)-1].NodeRange().End)}, Names: names}
}

func (p *Parser) parseImportFromStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()

	level := 0
	for p.at(token.Dot) || p.at(token.Ellipsis) {
		if p.at(token.Ellipsis) {
			level += 3
		} else {
			level++
		}
		p.advance()
	}

	module := ""
	if p.at(token.Name) {
		module = p.parseDottedName()
	}
	p.expectAndRecover(token.KwImport, stmtRecoverySet)

	importStar := false
	var names []*ast.Alias
	switch {
	case p.at(token.Star):
		importStar = true
		p.advance()
	case p.at(token.Lpar):
		p.advance()
		for !p.at(token.Rpar) && p.cur.Kind != token.EndOfFile {
			names = append(names, p.parseImportAsName())
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expectAndRecover(token.Rpar, closeRecovery)
	default:
		names = append(names, p.parseImportAsName())
		for p.eat(token.Comma) {
			names = append(names, p.parseImportAsName())
		}
	}

	return &ast.ImportFrom{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Module: module, Names: names, Level: level, ImportStar: importStar}
}

// looksLikeTypeAliasStmt recognizes the PEP 695 `type Name = value` soft
// keyword, which must not shadow an ordinary use of `type` as a name.
func (p *Parser) looksLikeTypeAliasStmt() bool {
	return p.at(token.Name) && p.cur.Name == "type" &&
		p.peekIs(token.Name) &&
		(p.peekNth(2).Kind == token.Equal || p.peekNth(2).Kind == token.Lsqb)
}

func (p *Parser) parseTypeAliasStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance() // 'type'
	nameStart := p.cur.Range.Start
	name := ""
	if p.at(token.Name) {
		name = p.cur.Name
		p.advance()
	}
	nameNode := &ast.Name{Base: ast.Base{Range: token.NewRange(nameStart, p.cur.Range.Start)}, Id: name}

	var typeParams []*ast.TypeParam
	if p.at(token.Lsqb) {
		typeParams = p.parseTypeParams()
	}
	p.expectAndRecover(token.Equal, stmtRecoverySet)
	value := p.parseTest()
	return &ast.TypeAlias{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}, Name: nameNode, TypeParams: typeParams, Value: value}
}

// parseExprOrAssignStmt disambiguates ExprStmt/Assign/AugAssign/
// AnnAssign by what follows a freshly parsed testlist_star_expr
// (spec.md §4.8).
func (p *Parser) parseExprOrAssignStmt() ast.Stmt {
	start := p.cur.Range.Start
	first := p.parseTestListAsTuple()

	switch {
	case p.at(token.Colon):
		p.advance()
		ann := p.parseTest()
		_, simple := first.(*ast.Name)
		var value ast.Expr
		if p.eat(token.Equal) {
			value = p.parseYieldOrTestListStarExpr()
		}
		setExprCtx(first, ast.Store)
		end := ann.NodeRange().End
		if value != nil {
			end = value.NodeRange().End
		}
		return &ast.AnnAssign{Base: ast.Base{Range: token.NewRange(start, end)}, Target: first, Annotation: ann, Value: value, Simple: simple}

	case config.AugAssignOperators[p.cur.Kind]:
		op := augAssignOpKind(p.cur.Kind)
		p.advance()
		value := p.parseYieldOrTestListStarExpr()
		setExprCtx(first, ast.Store)
		return &ast.AugAssign{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}, Target: first, Op: op, Value: value}

	case p.at(token.Equal):
		targets := []ast.Expr{first}
		var value ast.Expr
		for p.eat(token.Equal) {
			rhs := p.parseYieldOrTestListStarExpr()
			if p.at(token.Equal) {
				targets = append(targets, rhs)
			} else {
				value = rhs
			}
		}
		for _, t := range targets {
			setExprCtx(t, ast.Store)
		}
		end := start
		if value != nil {
			end = value.NodeRange().End
		}
		return &ast.Assign{Base: ast.Base{Range: token.NewRange(start, end)}, Targets: targets, Value: value}

	default:
		return &ast.ExprStmt{Base: ast.Base{Range: first.NodeRange()}, Value: first}
	}
}

func (p *Parser) parseYieldOrTestListStarExpr() ast.Expr {
	if p.at(token.KwYield) {
		return p.parseYieldExpr()
	}
	return p.parseTestListAsTuple()
}

func augAssignOpKind(k token.Kind) ast.BinOpKind {
	switch k {
	case token.PlusEqual:
		return ast.OpAdd
	case token.MinusEqual:
		return ast.OpSub
	case token.StarEqual:
		return ast.OpMult
	case token.AtEqual:
		return ast.OpMatMult
	case token.SlashEqual:
		return ast.OpDiv
	case token.DoubleSlashEqual:
		return ast.OpFloorDiv
	case token.PercentEqual:
		return ast.OpMod
	case token.DoubleStarEqual:
		return ast.OpPow
	case token.LeftShiftEqual:
		return ast.OpLShift
	case token.RightShiftEqual:
		return ast.OpRShift
	case token.VbarEqual:
		return ast.OpBitOr
	case token.CircumflexEqual:
		return ast.OpBitXor
	case token.AmperEqual:
		return ast.OpBitAnd
	default:
		return ast.OpAdd
	}
}

// parseCompoundStmt dispatches a compound statement header.
func (p *Parser) parseCompoundStmt() ast.Stmt {
	switch {
	case p.at(token.At):
		return p.parseDecorated()
	case p.at(token.KwIf):
		return p.parseIfStmt()
	case p.at(token.KwWhile):
		return p.parseWhileStmt()
	case p.at(token.KwFor):
		return p.parseForStmt(false, p.cur.Range.Start)
	case p.at(token.KwTry):
		return p.parseTryStmt()
	case p.at(token.KwWith):
		return p.parseWithStmt(false, p.cur.Range.Start)
	case p.at(token.KwDef):
		return p.parseFunctionDef(false, nil, p.cur.Range.Start)
	case p.at(token.KwClass):
		return p.parseClassDef(nil, p.cur.Range.Start)
	case p.at(token.KwAsync):
		return p.parseAsyncStmt()
	case p.looksLikeMatchStmt():
		return p.parseMatchStmt()
	default:
		return p.recoverToStmtBoundary(p.cur.Range.Start)
	}
}

func (p *Parser) parseAsyncStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance() // 'async'
	switch {
	case p.at(token.KwDef):
		return p.parseFunctionDef(true, nil, start)
	case p.at(token.KwFor):
		return p.parseForStmt(true, start)
	case p.at(token.KwWith):
		return p.parseWithStmt(true, start)
	default:
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeStmtIsNotAsync, p.cur.Range, describeStmtKind(p.cur.Kind))
		if isCompoundStart(p.cur.Kind) {
			return p.parseCompoundStmt()
		}
		var body []ast.Stmt
		p.parseSimpleStmtLine(&body)
		if len(body) == 1 {
			return body[0]
		}
		return p.recoverToStmtBoundary(start)
	}
}

func describeStmtKind(k token.Kind) string {
	switch k {
	case token.KwDef:
		return "def"
	case token.KwFor:
		return "for"
	case token.KwWith:
		return "with"
	default:
		return k.String()
	}
}

func (p *Parser) parseDecorated() ast.Stmt {
	start := p.cur.Range.Start
	var decorators []ast.Expr
	for p.at(token.At) {
		p.advance()
		decorators = append(decorators, p.exprBp(config.BpLowest))
		p.expect(token.Newline)
	}
	switch {
	case p.at(token.KwDef):
		return p.parseFunctionDef(false, decorators, start)
	case p.at(token.KwClass):
		return p.parseClassDef(decorators, start)
	case p.at(token.KwAsync) && p.peekIs(token.KwDef):
		p.advance()
		return p.parseFunctionDef(true, decorators, start)
	default:
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeUnexpectedTokens, p.cur.Range)
		return p.recoverToStmtBoundary(start)
	}
}

func (p *Parser) parseTypeParams() []*ast.TypeParam {
	p.advance() // '['
	var params []*ast.TypeParam
	for !p.at(token.Rsqb) && p.cur.Kind != token.EndOfFile {
		kind := ast.TypeParamPlain
		if p.eat(token.Star) {
			kind = ast.TypeParamVarTuple
		} else if p.eat(token.DoubleStar) {
			kind = ast.TypeParamVarKeyword
		}
		start := p.cur.Range.Start
		name := ""
		if p.at(token.Name) {
			name = p.cur.Name
			p.advance()
		}
		var bound, def ast.Expr
		if p.eat(token.Colon) {
			bound = p.parseTest()
		}
		if p.eat(token.Equal) {
			def = p.parseTest()
		}
		params = append(params, &ast.TypeParam{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Name: name, Bound: bound, Kind: kind, Default: def})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expectAndRecover(token.Rsqb, tokenset.New(token.Rsqb, token.Lpar, token.Colon, token.Newline, token.EndOfFile))
	return params
}

func (p *Parser) parseFunctionDef(isAsync bool, decorators []ast.Expr, start int) ast.Stmt {
	p.advance() // 'def'
	name := ""
	if p.at(token.Name) {
		name = p.cur.Name
		p.advance()
	} else {
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, "Name", p.cur.Kind.String())
	}
	var typeParams []*ast.TypeParam
	if p.at(token.Lsqb) {
		typeParams = p.parseTypeParams()
	}
	p.expectAndRecover(token.Lpar, tokenset.New(token.Lpar, token.Colon, token.Newline, token.EndOfFile))
	args := p.parseParameters(true)
	p.expectAndRecover(token.Rpar, tokenset.New(token.Rpar, token.Colon, token.Newline, token.EndOfFile))
	var returns ast.Expr
	if p.eat(token.Arrow) {
		returns = p.parseTest()
	}
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	return &ast.FunctionDef{
		Base:       ast.Base{Range: token.NewRange(start, blockEnd(body, p.cur.Range.Start))},
		Name:       name,
		Args:       args,
		Body:       body,
		Decorators: decorators,
		Returns:    returns,
		TypeParams: typeParams,
		IsAsync:    isAsync,
	}
}

func (p *Parser) parseClassDef(decorators []ast.Expr, start int) ast.Stmt {
	p.advance() // 'class'
	name := ""
	if p.at(token.Name) {
		name = p.cur.Name
		p.advance()
	} else {
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, "Name", p.cur.Kind.String())
	}
	var typeParams []*ast.TypeParam
	if p.at(token.Lsqb) {
		typeParams = p.parseTypeParams()
	}
	var bases []ast.Expr
	var keywords []*ast.Keyword
	if p.eat(token.Lpar) {
		for !p.at(token.Rpar) && p.cur.Kind != token.EndOfFile {
			if p.at(token.Name) && p.peekIs(token.Equal) {
				kwStart := p.cur.Range.Start
				argName := p.cur.Name
				p.advance()
				p.advance()
				value := p.parseTest()
				keywords = append(keywords, &ast.Keyword{Base: ast.Base{Range: token.NewRange(kwStart, value.NodeRange().End)}, Arg: argName, Value: value})
			} else if p.eat(token.DoubleStar) {
				value := p.parseTest()
				keywords = append(keywords, &ast.Keyword{Base: ast.Base{Range: value.NodeRange()}, Value: value, DoubleStar: true})
			} else {
				bases = append(bases, p.parseTest())
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expectAndRecover(token.Rpar, closeRecovery)
	}
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	return &ast.ClassDef{
		Base:       ast.Base{Range: token.NewRange(start, blockEnd(body, p.cur.Range.Start))},
		Name:       name,
		Bases:      bases,
		Keywords:   keywords,
		Body:       body,
		Decorators: decorators,
		TypeParams: typeParams,
	}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance() // 'if'
	test := p.parseNamedExprTest()
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	var orelse []ast.Stmt
	if p.at(token.KwElif) {
		orelse = []ast.Stmt{p.parseElifChain()}
	} else if p.eat(token.KwElse) {
		p.expectAndRecover(token.Colon, stmtRecoverySet)
		orelse = p.parseBlock()
	}
	end := blockEnd(orelse, blockEnd(body, p.cur.Range.Start))
	return &ast.IfStmt{Base: ast.Base{Range: token.NewRange(start, end)}, Test: test, Body: body, Orelse: orelse}
}

func (p *Parser) parseElifChain() ast.Stmt {
	start := p.cur.Range.Start
	p.advance() // 'elif'
	test := p.parseNamedExprTest()
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	var orelse []ast.Stmt
	if p.at(token.KwElif) {
		orelse = []ast.Stmt{p.parseElifChain()}
	} else if p.eat(token.KwElse) {
		p.expectAndRecover(token.Colon, stmtRecoverySet)
		orelse = p.parseBlock()
	}
	end := blockEnd(orelse, blockEnd(body, p.cur.Range.Start))
	return &ast.IfStmt{Base: ast.Base{Range: token.NewRange(start, end)}, Test: test, Body: body, Orelse: orelse}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance()
	test := p.parseNamedExprTest()
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	var orelse []ast.Stmt
	if p.eat(token.KwElse) {
		p.expectAndRecover(token.Colon, stmtRecoverySet)
		orelse = p.parseBlock()
	}
	end := blockEnd(orelse, blockEnd(body, p.cur.Range.Start))
	return &ast.WhileStmt{Base: ast.Base{Range: token.NewRange(start, end)}, Test: test, Body: body, Orelse: orelse}
}

func (p *Parser) parseForStmt(isAsync bool, start int) ast.Stmt {
	p.advance() // 'for'
	var target ast.Expr
	p.withCtx(CtxForTarget, func() {
		target = p.parseTestListAsTuple()
	})
	setExprCtx(target, ast.Store)
	p.expectAndRecover(token.KwIn, stmtRecoverySet)
	iter := p.parseTestListAsTuple()
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	var orelse []ast.Stmt
	if p.eat(token.KwElse) {
		p.expectAndRecover(token.Colon, stmtRecoverySet)
		orelse = p.parseBlock()
	}
	end := blockEnd(orelse, blockEnd(body, p.cur.Range.Start))
	return &ast.ForStmt{Base: ast.Base{Range: token.NewRange(start, end)}, Target: target, Iter: iter, Body: body, Orelse: orelse, IsAsync: isAsync}
}

// withItemsBoundedLookahead scans forward from just inside a `with (`
// for an `as` at bracket depth 0 before the matching `)`, the heuristic
// that decides whether the parenthesized group is PEP 617's grouped
// with-items or an ordinary parenthesized single context expression
// (spec.md §4.8).
func (p *Parser) withItemsBoundedLookahead() bool {
	depth := 0
	for k := 1; k < 400; k++ {
		t := p.peekNth(k)
		switch t.Kind {
		case token.Lpar, token.Lsqb, token.Lbrace:
			depth++
		case token.Rpar:
			if depth == 0 {
				return false
			}
			depth--
		case token.Rsqb, token.Rbrace:
			depth--
		case token.KwAs:
			if depth == 0 {
				return true
			}
		case token.EndOfFile:
			return false
		}
	}
	return false
}

func (p *Parser) parseWithItem() *ast.WithItem {
	start := p.cur.Range.Start
	ctxExpr := p.parseTest()
	var optionalVars ast.Expr
	if p.eat(token.KwAs) {
		optionalVars = p.parseTest()
		setExprCtx(optionalVars, ast.Store)
	}
	end := ctxExpr.NodeRange().End
	if optionalVars != nil {
		end = optionalVars.NodeRange().End
	}
	return &ast.WithItem{Base: ast.Base{Range: token.NewRange(start, end)}, ContextExpr: ctxExpr, OptionalVars: optionalVars}
}

func (p *Parser) parseWithStmt(isAsync bool, start int) ast.Stmt {
	p.advance() // 'with'
	parenWrapped := p.at(token.Lpar) && p.withItemsBoundedLookahead()
	if parenWrapped {
		p.advance()
	}
	var items []*ast.WithItem
	for {
		items = append(items, p.parseWithItem())
		if !p.eat(token.Comma) {
			break
		}
		if parenWrapped && p.at(token.Rpar) {
			break
		}
	}
	if parenWrapped {
		p.expectAndRecover(token.Rpar, tokenset.New(token.Rpar, token.Colon, token.Newline, token.EndOfFile))
	}
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	return &ast.WithStmt{Base: ast.Base{Range: token.NewRange(start, blockEnd(body, p.cur.Range.Start))}, Items: items, Body: body, IsAsync: isAsync}
}

func (p *Parser) parseExceptHandler() *ast.ExceptHandler {
	start := p.cur.Range.Start
	p.advance() // 'except'
	isStar := p.eat(token.Star)
	var typ ast.Expr
	name := ""
	if !p.at(token.Colon) {
		typ = p.parseTest()
		if p.eat(token.KwAs) && p.at(token.Name) {
			name = p.cur.Name
			p.advance()
		}
	}
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	return &ast.ExceptHandler{Base: ast.Base{Range: token.NewRange(start, blockEnd(body, p.cur.Range.Start))}, Type: typ, Name: name, Body: body, IsStar: isStar}
}

func (p *Parser) parseTryStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance() // 'try'
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()

	var handlers []*ast.ExceptHandler
	for p.at(token.KwExcept) {
		handlers = append(handlers, p.parseExceptHandler())
	}
	var orelse, finally []ast.Stmt
	if p.eat(token.KwElse) {
		p.expectAndRecover(token.Colon, stmtRecoverySet)
		orelse = p.parseBlock()
	}
	if p.eat(token.KwFinally) {
		p.expectAndRecover(token.Colon, stmtRecoverySet)
		finally = p.parseBlock()
	}

	end := p.cur.Range.Start
	if len(finally) > 0 {
		end = blockEnd(finally, end)
	} else if len(orelse) > 0 {
		end = blockEnd(orelse, end)
	} else if len(handlers) > 0 {
		end = blockEnd(handlers[len(handlers)-1].Body, handlers[len(handlers)-1].Range.End)
	} else {
		end = blockEnd(body, end)
	}
	return &ast.TryStmt{Base: ast.Base{Range: token.NewRange(start, end)}, Body: body, Handlers: handlers, Orelse: orelse, Finally: finally}
}

// looksLikeMatchStmt recognizes the `match` soft keyword by scanning
// forward for a `:` at bracket depth 0 before the next NEWLINE
// (spec.md §4.9); the same bounded-lookahead family as the `with (...)`
// heuristic above.
func (p *Parser) looksLikeMatchStmt() bool {
	if !(p.at(token.Name) && p.cur.Name == "match") {
		return false
	}
	depth := 0
	for k := 1; k < 400; k++ {
		t := p.peekNth(k)
		switch t.Kind {
		case token.Lpar, token.Lsqb, token.Lbrace:
			depth++
		case token.Rpar, token.Rsqb, token.Rbrace:
			depth--
		case token.Colon:
			if depth == 0 {
				return true
			}
		case token.Newline, token.EndOfFile, token.Equal, token.Semi:
			return false
		default:
			if depth == 0 && config.AugAssignOperators[t.Kind] {
				return false
			}
		}
	}
	return false
}

func (p *Parser) parseMatchStmt() ast.Stmt {
	start := p.cur.Range.Start
	p.advance() // 'match'
	subject := p.parseTestListAsTuple()
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	p.expect(token.Newline)
	p.expect(token.Indent)
	var cases []*ast.MatchCase
	for p.at(token.Name) && p.cur.Name == "case" {
		cases = append(cases, p.parseMatchCase())
	}
	p.eat(token.Dedent)
	end := p.cur.Range.Start
	if len(cases) > 0 {
		end = blockEnd(cases[len(cases)-1].Body, cases[len(cases)-1].Range.End)
	}
	return &ast.MatchStmt{Base: ast.Base{Range: token.NewRange(start, end)}, Subject: subject, Cases: cases}
}

func (p *Parser) parseMatchCase() *ast.MatchCase {
	start := p.cur.Range.Start
	p.advance() // 'case'
	pattern := p.parsePatterns()
	var guard ast.Expr
	if p.eat(token.KwIf) {
		guard = p.parseNamedExprTest()
	}
	p.expectAndRecover(token.Colon, stmtRecoverySet)
	body := p.parseBlock()
	return &ast.MatchCase{Base: ast.Base{Range: token.NewRange(start, blockEnd(body, p.cur.Range.Start))}, Pattern: pattern, Guard: guard, Body: body}
}
