package pyparser

import (
	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/config"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/token"
)

// parseNamedExprTest parses `test [':=' test]`, the walrus-eligible
// entry point used wherever spec.md §4.3 allows an assignment
// expression (if/while tests, comprehension clauses, call arguments).
func (p *Parser) parseNamedExprTest() ast.Expr {
	expr := p.parseTest()
	if !p.at(token.ColonEqual) {
		return expr
	}
	start := expr.NodeRange().Start
	name, ok := expr.(*ast.Name)
	if !ok {
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeNamedAssignmentError, expr.NodeRange(), describeExprKind(expr))
		p.advance()
		value := p.parseNamedExprTest()
		return &ast.Invalid{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}}
	}
	p.advance()
	value := p.parseNamedExprTest()
	return &ast.NamedExpr{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}, Target: name, Value: value}
}

// parseTest parses `lambdef | or_test ['if' or_test 'else' test]`.
func (p *Parser) parseTest() ast.Expr {
	if p.at(token.KwLambda) {
		return p.parseLambda()
	}
	start := p.cur.Range.Start
	body := p.exprBp(config.BpLowest)
	if !p.at(token.KwIf) {
		return body
	}
	p.advance()
	test := p.exprBp(config.BpOr)
	if !p.expect(token.KwElse) {
		rng := token.NewRange(start, p.cur.Start)
		return &ast.IfExp{Base: ast.Base{Range: rng}, Body: body, Test: test, Orelse: p.invalidAt(token.At(p.cur.Start))}
	}
	orelse := p.parseTest()
	return &ast.IfExp{Base: ast.Base{Range: token.NewRange(start, orelse.NodeRange().End)}, Body: body, Test: test, Orelse: orelse}
}

// parseLambda parses `lambda [params]: body`.
func (p *Parser) parseLambda() ast.Expr {
	start := p.cur.Range.Start
	p.advance()
	args := p.parseLambdaArguments()
	p.expect(token.Colon)
	body := p.parseTest()
	return &ast.Lambda{Base: ast.Base{Range: token.NewRange(start, body.NodeRange().End)}, Args: args, Body: body}
}

// exprBp is the Pratt loop: it parses a unary/atom operand then
// repeatedly folds in binary operators whose binding power is at least
// minBp, consulting config.BinaryPrecedence as the single source of
// truth for power/associativity (spec.md §4.3).
func (p *Parser) exprBp(minBp int) ast.Expr {
	left := p.parseUnary()

	for {
		kind := p.cur.Kind
		isNotIn := p.at(token.KwNot) && p.peekIs(token.KwIn)
		isIsNot := p.at(token.KwIs) && p.peekIs(token.KwNot)

		if kind == token.KwIn && p.ctx.has(CtxForTarget) {
			return left
		}

		var power int
		switch {
		case isNotIn, isIsNot:
			power = config.BpComparison
		default:
			info, ok := config.BinaryPrecedence[kind]
			if !ok {
				return left
			}
			power = info.Power
		}
		if power < minBp {
			return left
		}

		switch {
		case kind == token.KwOr:
			left = p.foldBoolOp(left, token.KwOr, ast.BoolOr, power)
		case kind == token.KwAnd:
			left = p.foldBoolOp(left, token.KwAnd, ast.BoolAnd, power)
		case isNotIn, isIsNot, config.ComparisonOperators[kind]:
			left = p.foldCompare(left, power)
		default:
			left = p.parseBinaryOp(left, kind, power)
		}
	}
}

func (p *Parser) foldBoolOp(left ast.Expr, kw token.Kind, op ast.BoolOpKind, power int) ast.Expr {
	start := left.NodeRange().Start
	values := []ast.Expr{left}
	for p.at(kw) {
		p.advance()
		values = append(values, p.exprBp(power+1))
	}
	end := values[len(values)-1].NodeRange().End
	return &ast.BoolOp{Base: ast.Base{Range: token.NewRange(start, end)}, Op: op, Values: values}
}

// matchCompareOp consumes the comparison operator at cur (1 or 2
// tokens for `not in`/`is not`) and returns its CmpOp, or false if cur
// is not a comparison-class token.
func (p *Parser) matchCompareOp() (ast.CmpOp, bool) {
	switch {
	case p.at(token.KwNot) && p.peekIs(token.KwIn):
		p.advance()
		p.advance()
		return ast.CmpNotIn, true
	case p.at(token.KwIs) && p.peekIs(token.KwNot):
		p.advance()
		p.advance()
		return ast.CmpIsNot, true
	case p.at(token.KwIn):
		p.advance()
		return ast.CmpIn, true
	case p.at(token.KwIs):
		p.advance()
		return ast.CmpIs, true
	case p.at(token.Less):
		p.advance()
		return ast.CmpLt, true
	case p.at(token.LessEqual):
		p.advance()
		return ast.CmpLtE, true
	case p.at(token.Greater):
		p.advance()
		return ast.CmpGt, true
	case p.at(token.GreaterEqual):
		p.advance()
		return ast.CmpGtE, true
	case p.at(token.EqEqual):
		p.advance()
		return ast.CmpEq, true
	case p.at(token.NotEqual):
		p.advance()
		return ast.CmpNotEq, true
	default:
		return 0, false
	}
}

func (p *Parser) foldCompare(left ast.Expr, power int) ast.Expr {
	start := left.NodeRange().Start
	var ops []ast.CmpOp
	var comps []ast.Expr
	for {
		op, ok := p.matchCompareOp()
		if !ok {
			break
		}
		rhs := p.exprBp(power + 1)
		ops = append(ops, op)
		comps = append(comps, rhs)
		if !(p.at(token.KwNot) && p.peekIs(token.KwIn)) && !(p.at(token.KwIs) && p.peekIs(token.KwNot)) && !config.ComparisonOperators[p.cur.Kind] {
			break
		}
	}
	end := comps[len(comps)-1].NodeRange().End
	return &ast.Compare{Base: ast.Base{Range: token.NewRange(start, end)}, Left: left, Ops: ops, Comparators: comps}
}

func (p *Parser) parseBinaryOp(left ast.Expr, kind token.Kind, power int) ast.Expr {
	info := config.BinaryPrecedence[kind]
	start := left.NodeRange().Start
	p.advance()
	nextMin := power + 1
	if info.RightAssoc {
		nextMin = power
	}
	rhs := p.exprBp(nextMin)
	return &ast.BinOp{Base: ast.Base{Range: token.NewRange(start, rhs.NodeRange().End)}, Left: left, Op: binOpKindOf(kind), Right: rhs}
}

func binOpKindOf(k token.Kind) ast.BinOpKind {
	switch k {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMult
	case token.At:
		return ast.OpMatMult
	case token.Slash:
		return ast.OpDiv
	case token.DoubleSlash:
		return ast.OpFloorDiv
	case token.Percent:
		return ast.OpMod
	case token.DoubleStar:
		return ast.OpPow
	case token.LeftShift:
		return ast.OpLShift
	case token.RightShift:
		return ast.OpRShift
	case token.Vbar:
		return ast.OpBitOr
	case token.Circumflex:
		return ast.OpBitXor
	case token.Amper:
		return ast.OpBitAnd
	default:
		return ast.OpAdd
	}
}

// parseUnary handles the prefix operators that sit above the binary
// Pratt loop: `not`, unary +/-/~, and `await` (which binds its operand
// tighter than `**`, unlike the other three — spec.md §4.3).
func (p *Parser) parseUnary() ast.Expr {
	start := p.cur.Range.Start
	switch {
	case p.at(token.KwNot):
		p.advance()
		operand := p.exprBp(config.BpComparison)
		return &ast.UnaryOp{Base: ast.Base{Range: token.NewRange(start, operand.NodeRange().End)}, Op: ast.OpNot, Operand: operand}
	case p.at(token.Plus):
		p.advance()
		operand := p.exprBp(config.BpUnary)
		return &ast.UnaryOp{Base: ast.Base{Range: token.NewRange(start, operand.NodeRange().End)}, Op: ast.OpUAdd, Operand: operand}
	case p.at(token.Minus):
		p.advance()
		operand := p.exprBp(config.BpUnary)
		return &ast.UnaryOp{Base: ast.Base{Range: token.NewRange(start, operand.NodeRange().End)}, Op: ast.OpUSub, Operand: operand}
	case p.at(token.Tilde):
		p.advance()
		operand := p.exprBp(config.BpUnary)
		return &ast.UnaryOp{Base: ast.Base{Range: token.NewRange(start, operand.NodeRange().End)}, Op: ast.OpInvert, Operand: operand}
	case p.at(token.KwAwait):
		p.advance()
		operand := p.parsePostfix(p.parseAtom())
		return &ast.Await{Base: ast.Base{Range: token.NewRange(start, operand.NodeRange().End)}, Value: operand}
	default:
		return p.parsePostfix(p.parseAtom())
	}
}

// parsePostfix applies `.attr`, `(args)`, and `[slice]` trailers
// left-to-right onto atom.
func (p *Parser) parsePostfix(atom ast.Expr) ast.Expr {
	for {
		switch {
		case p.at(token.Dot):
			start := atom.NodeRange().Start
			p.advance()
			name := ""
			end := p.cur.Range.End
			if p.at(token.Name) {
				name = p.cur.Name
				end = p.cur.Range.End
				p.advance()
			} else {
				p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, "Name", p.cur.Kind.String())
			}
			atom = &ast.Attribute{Base: ast.Base{Range: token.NewRange(start, end)}, Value: atom, Attr: name}
		case p.at(token.Lpar):
			atom = p.parseCallTrailer(atom)
		case p.at(token.Lsqb):
			atom = p.parseSubscriptTrailer(atom)
		default:
			return atom
		}
	}
}

// parseAtom parses a primary expression with no trailers yet applied.
func (p *Parser) parseAtom() ast.Expr {
	start := p.cur.Range.Start
	switch p.cur.Kind {
	case token.Name:
		n := &ast.Name{Base: ast.Base{Range: p.cur.Range}, Id: p.cur.Name}
		p.advance()
		return n
	case token.Int:
		n := &ast.Number{Base: ast.Base{Range: p.cur.Range}, Kind: ast.NumberInt, Text: p.cur.NumberText}
		p.advance()
		return n
	case token.Float:
		n := &ast.Number{Base: ast.Base{Range: p.cur.Range}, Kind: ast.NumberFloat, Text: p.cur.NumberText}
		p.advance()
		return n
	case token.Complex:
		n := &ast.Number{Base: ast.Base{Range: p.cur.Range}, Kind: ast.NumberComplex, Text: p.cur.NumberText}
		p.advance()
		return n
	case token.KwTrue:
		n := &ast.BoolLiteral{Base: ast.Base{Range: p.cur.Range}, Value: true}
		p.advance()
		return n
	case token.KwFalse:
		n := &ast.BoolLiteral{Base: ast.Base{Range: p.cur.Range}, Value: false}
		p.advance()
		return n
	case token.KwNone:
		n := &ast.NoneLiteral{Base: ast.Base{Range: p.cur.Range}}
		p.advance()
		return n
	case token.Ellipsis:
		n := &ast.EllipsisLiteral{Base: ast.Base{Range: p.cur.Range}}
		p.advance()
		return n
	case token.String, token.FStringStart:
		return p.parseStringGroup()
	case token.Lpar:
		return p.parseParenGroup()
	case token.Lsqb:
		return p.parseListOrComp()
	case token.Lbrace:
		return p.parseBraceGroup()
	case token.KwYield:
		return p.parseYieldExpr()
	case token.KwLambda:
		return p.parseLambda()
	case token.Star:
		p.advance()
		value := p.exprBp(config.BpUnary)
		return &ast.Starred{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}, Value: value}
	default:
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeUnexpectedTokens, p.cur.Range)
		rng := p.cur.Range
		p.advance()
		return p.invalidAt(rng)
	}
}

// parseYieldExpr parses `yield`, `yield value`, or `yield from value`.
func (p *Parser) parseYieldExpr() ast.Expr {
	start := p.cur.Range.Start
	p.advance()
	if p.at(token.Name) && p.cur.Name == "from" {
		// "from" always lexes as the KwFrom keyword, so this branch is
		// never taken; yield-from is matched on KwFrom below.
	}
	if p.at(token.KwFrom) {
		p.advance()
		value := p.parseTest()
		return &ast.YieldFrom{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}, Value: value}
	}
	if isExprStart(p.cur.Kind) {
		value := p.parseTestListAsTuple()
		return &ast.Yield{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}, Value: value}
	}
	return &ast.Yield{Base: ast.Base{Range: token.At(start)}}
}

// parseTestListAsTuple parses a comma-separated test list, building a
// bare (unparenthesized) Tuple when more than one element or a trailing
// comma is present, matching spec.md §4.4's tuple-promotion rule.
func (p *Parser) parseTestListAsTuple() ast.Expr {
	start := p.cur.Range.Start
	first := p.parseNamedExprOrStar()
	if !p.at(token.Comma) {
		return first
	}
	elts := []ast.Expr{first}
	for p.eat(token.Comma) {
		if !isExprStart(p.cur.Kind) || (p.ctx.has(CtxForTarget) && p.at(token.KwIn)) {
			break
		}
		elts = append(elts, p.parseNamedExprOrStar())
	}
	end := elts[len(elts)-1].NodeRange().End
	return &ast.Tuple{Base: ast.Base{Range: token.NewRange(start, end)}, Elts: elts}
}

func (p *Parser) parseNamedExprOrStar() ast.Expr {
	if p.at(token.Star) {
		start := p.cur.Range.Start
		p.advance()
		value := p.exprBp(config.BpUnary)
		return &ast.Starred{Base: ast.Base{Range: token.NewRange(start, value.NodeRange().End)}, Value: value}
	}
	return p.parseNamedExprTest()
}

// isExprStart reports whether k can begin an expression, used to
// detect an empty trailing position (e.g. a bare `yield` or the end of
// a call's argument list) without committing to a parse attempt.
func isExprStart(k token.Kind) bool {
	switch k {
	case token.Newline, token.EndOfFile, token.Rpar, token.Rsqb, token.Rbrace,
		token.Colon, token.Equal, token.Semi, token.Dedent:
		return false
	default:
		return true
	}
}

func describeExprKind(e ast.Expr) string {
	switch e.(type) {
	case *ast.Tuple:
		return "tuple"
	case *ast.List:
		return "list"
	case *ast.Attribute:
		return "attribute"
	case *ast.Subscript:
		return "subscript"
	default:
		return "expression"
	}
}
