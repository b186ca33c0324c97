package pyparser

import (
	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/config"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/token"
	"github.com/emilte/ruff/internal/tokenset"
)

var closeRecovery = tokenset.New(token.Rpar, token.Rsqb, token.Rbrace, token.Newline, token.EndOfFile)

// parseParenGroup parses a parenthesized group: `()`, a single
// parenthesized expression, a tuple display, or a generator expression
// (spec.md §4.4).
func (p *Parser) parseParenGroup() ast.Expr {
	start := p.cur.Range.Start
	p.advance()

	if p.at(token.Rpar) {
		end := p.cur.Range.End
		p.advance()
		return &ast.Tuple{Base: ast.Base{Range: token.NewRange(start, end)}, IsParenthesized: true}
	}

	var first ast.Expr
	p.withCtx(CtxParenthesizedExpr, func() {
		first = p.parseNamedExprOrStar()
	})

	if p.at(token.KwFor) || (p.at(token.KwAsync) && p.peekIs(token.KwFor)) {
		gens := p.parseComprehensionClauses()
		end := p.cur.Range.End
		p.expectAndRecover(token.Rpar, closeRecovery)
		return &ast.GeneratorExp{Base: ast.Base{Range: token.NewRange(start, end)}, Elt: first, Generators: gens}
	}

	if !p.at(token.Comma) {
		p.expectAndRecover(token.Rpar, closeRecovery)
		return first
	}

	elts := []ast.Expr{first}
	for p.eat(token.Comma) {
		if p.at(token.Rpar) {
			break
		}
		elts = append(elts, p.parseNamedExprOrStar())
	}
	end := p.cur.Range.End
	p.expectAndRecover(token.Rpar, closeRecovery)
	return &ast.Tuple{Base: ast.Base{Range: token.NewRange(start, end)}, Elts: elts, IsParenthesized: true}
}

// parseListOrComp parses `[...]`: an empty list, a list display, or a
// list comprehension.
func (p *Parser) parseListOrComp() ast.Expr {
	start := p.cur.Range.Start
	p.advance()

	if p.at(token.Rsqb) {
		end := p.cur.Range.End
		p.advance()
		return &ast.List{Base: ast.Base{Range: token.NewRange(start, end)}}
	}

	var first ast.Expr
	p.withCtx(CtxParenthesizedExpr, func() {
		first = p.parseNamedExprOrStar()
	})

	if p.at(token.KwFor) || (p.at(token.KwAsync) && p.peekIs(token.KwFor)) {
		gens := p.parseComprehensionClauses()
		end := p.cur.Range.End
		p.expectAndRecover(token.Rsqb, closeRecovery)
		return &ast.ListComp{Base: ast.Base{Range: token.NewRange(start, end)}, Elt: first, Generators: gens}
	}

	elts := []ast.Expr{first}
	for p.eat(token.Comma) {
		if p.at(token.Rsqb) {
			break
		}
		elts = append(elts, p.parseNamedExprOrStar())
	}
	end := p.cur.Range.End
	p.expectAndRecover(token.Rsqb, closeRecovery)
	return &ast.List{Base: ast.Base{Range: token.NewRange(start, end)}, Elts: elts}
}

// parseBraceGroup parses `{...}`: an empty dict, a dict/set display, or
// a dict/set comprehension, disambiguated by whether the first entry is
// followed by `:` (spec.md §4.4).
func (p *Parser) parseBraceGroup() ast.Expr {
	start := p.cur.Range.Start
	p.advance()

	if p.at(token.Rbrace) {
		end := p.cur.Range.End
		p.advance()
		return &ast.Dict{Base: ast.Base{Range: token.NewRange(start, end)}}
	}

	if p.at(token.DoubleStar) {
		return p.parseDictTail(start, nil, nil)
	}

	var first ast.Expr
	p.withCtx(CtxParenthesizedExpr, func() {
		first = p.parseNamedExprOrStar()
	})

	if p.at(token.Colon) {
		p.advance()
		value := p.parseTest()
		if p.at(token.KwFor) || (p.at(token.KwAsync) && p.peekIs(token.KwFor)) {
			gens := p.parseComprehensionClauses()
			end := p.cur.Range.End
			p.expectAndRecover(token.Rbrace, closeRecovery)
			return &ast.DictComp{Base: ast.Base{Range: token.NewRange(start, end)}, Key: first, Value: value, Generators: gens}
		}
		return p.parseDictTail(start, []ast.Expr{first}, []ast.Expr{value})
	}

	if p.at(token.KwFor) || (p.at(token.KwAsync) && p.peekIs(token.KwFor)) {
		gens := p.parseComprehensionClauses()
		end := p.cur.Range.End
		p.expectAndRecover(token.Rbrace, closeRecovery)
		return &ast.SetComp{Base: ast.Base{Range: token.NewRange(start, end)}, Elt: first, Generators: gens}
	}

	elts := []ast.Expr{first}
	for p.eat(token.Comma) {
		if p.at(token.Rbrace) {
			break
		}
		elts = append(elts, p.parseNamedExprOrStar())
	}
	end := p.cur.Range.End
	p.expectAndRecover(token.Rbrace, closeRecovery)
	return &ast.Set{Base: ast.Base{Range: token.NewRange(start, end)}, Elts: elts}
}

// parseDictTail continues a dict display after the first key/value (or
// a leading `**unpack`) has been consumed.
func (p *Parser) parseDictTail(start int, keys, values []ast.Expr) ast.Expr {
	for {
		if p.at(token.DoubleStar) {
			p.advance()
			v := p.exprBp(config.BpBitOr)
			keys = append(keys, nil)
			values = append(values, v)
		} else if isExprStart(p.cur.Kind) {
			k := p.parseTest()
			p.expect(token.Colon)
			v := p.parseTest()
			keys = append(keys, k)
			values = append(values, v)
		} else {
			break
		}
		if !p.eat(token.Comma) {
			break
		}
		if p.at(token.Rbrace) {
			break
		}
	}
	end := p.cur.Range.End
	p.expectAndRecover(token.Rbrace, closeRecovery)
	return &ast.Dict{Base: ast.Base{Range: token.NewRange(start, end)}, Keys: keys, Values: values}
}

// parseComprehensionClauses parses the `for ... in ... (if ...)*`
// clauses shared by comprehensions and generator expressions.
func (p *Parser) parseComprehensionClauses() []*ast.Comprehension {
	var gens []*ast.Comprehension
	for p.at(token.KwFor) || (p.at(token.KwAsync) && p.peekIs(token.KwFor)) {
		isAsync := p.eat(token.KwAsync)
		start := p.cur.Range.Start
		p.advance() // 'for'

		var target ast.Expr
		p.withCtx(CtxForTarget, func() {
			target = p.parseTestListAsTuple()
		})
		setExprCtx(target, ast.Store)
		p.expect(token.KwIn)
		iter := p.exprBp(config.BpOr)

		comp := &ast.Comprehension{Base: ast.Base{Range: token.NewRange(start, iter.NodeRange().End)}, Target: target, Iter: iter, IsAsync: isAsync}
		for p.at(token.KwIf) {
			p.advance()
			cond := p.exprBp(config.BpOr)
			comp.Ifs = append(comp.Ifs, cond)
			comp.Range = token.NewRange(comp.Range.Start, cond.NodeRange().End)
		}
		gens = append(gens, comp)
	}
	return gens
}

// setExprCtx recursively rewrites the ExprContext of an assignment or
// del target (spec.md §4.8), leaving the Value of an Attribute/
// Subscript at Load since only the outermost reference is being bound.
func setExprCtx(e ast.Expr, ctx ast.ExprContext) {
	switch n := e.(type) {
	case *ast.Name:
		n.Ctx = ctx
	case *ast.Tuple:
		n.Ctx = ctx
		for _, el := range n.Elts {
			setExprCtx(el, ctx)
		}
	case *ast.List:
		n.Ctx = ctx
		for _, el := range n.Elts {
			setExprCtx(el, ctx)
		}
	case *ast.Starred:
		n.Ctx = ctx
		setExprCtx(n.Value, ctx)
	case *ast.Attribute:
		n.Ctx = ctx
	case *ast.Subscript:
		n.Ctx = ctx
	}
}

// parseSubscriptTrailer parses `value[slice]`, building a Tuple of
// Slice/plain-expr elements for an extended/multi-dimensional subscript.
func (p *Parser) parseSubscriptTrailer(value ast.Expr) ast.Expr {
	start := value.NodeRange().Start
	p.advance() // '['

	elts := []ast.Expr{p.parseSliceItem()}
	for p.eat(token.Comma) {
		if p.at(token.Rsqb) {
			break
		}
		elts = append(elts, p.parseSliceItem())
	}
	end := p.cur.Range.End
	p.expectAndRecover(token.Rsqb, closeRecovery)

	var slice ast.Expr
	if len(elts) == 1 {
		slice = elts[0]
	} else {
		slice = &ast.Tuple{Base: ast.Base{Range: token.NewRange(elts[0].NodeRange().Start, elts[len(elts)-1].NodeRange().End)}, Elts: elts}
	}
	return &ast.Subscript{Base: ast.Base{Range: token.NewRange(start, end)}, Value: value, Slice: slice}
}

// parseSliceItem parses one `[`-bracketed element: a plain expression,
// or a `lower:upper:step` slice with any component optional.
func (p *Parser) parseSliceItem() ast.Expr {
	start := p.cur.Range.Start
	var lower ast.Expr
	if !p.at(token.Colon) && !p.at(token.Rsqb) && !p.at(token.Comma) {
		lower = p.parseNamedExprOrStar()
	}
	if !p.at(token.Colon) {
		if lower == nil {
			p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeEmptySlice, token.At(start))
			return p.invalidAt(token.At(start))
		}
		return lower
	}
	p.advance()

	var upper, step ast.Expr
	if !p.at(token.Colon) && !p.at(token.Rsqb) && !p.at(token.Comma) {
		upper = p.parseTest()
	}
	if p.eat(token.Colon) {
		if !p.at(token.Rsqb) && !p.at(token.Comma) {
			step = p.parseTest()
		}
	}
	end := p.cur.Range.Start
	return &ast.Slice{Base: ast.Base{Range: token.NewRange(start, end)}, Lower: lower, Upper: upper, Step: step}
}
