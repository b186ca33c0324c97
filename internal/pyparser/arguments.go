package pyparser

import (
	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/token"
	"github.com/emilte/ruff/internal/tokenset"
)

// parseLambdaArguments parses a `lambda`'s parameter list: like a
// `def`'s, but without annotations (lambda's grammar has none).
func (p *Parser) parseLambdaArguments() *ast.Arguments {
	return p.parseParameters(false)
}

func isParamStart(k token.Kind) bool {
	switch k {
	case token.Name, token.Star, token.DoubleStar, token.Slash:
		return true
	default:
		return false
	}
}

// parseParameters parses a comma-separated parameter list shared by
// `def` (allowAnnotations true) and `lambda` (allowAnnotations false),
// validating the ordering invariants spec.md §4.6 lists: no required
// parameter after a defaulted one, and nothing after `**kwargs`. A
// second `*` or `*args` before any `**kwargs` is not diagnosed.
func (p *Parser) parseParameters(allowAnnotations bool) *ast.Arguments {
	start := p.cur.Range.Start
	args := &ast.Arguments{Base: ast.Base{Range: token.At(start)}}
	seenStar := false
	sawDefault := false

	for isParamStart(p.cur.Kind) {
		switch {
		case p.at(token.Slash):
			p.advance()
			args.PosOnlyArgs = args.Args
			args.Args = nil
			p.eat(token.Comma)

		case p.at(token.Star):
			p.advance()
			if args.Kwarg != nil {
				p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeParamFollowsVarKeyword, p.cur.Range)
			}
			if p.at(token.Comma) || p.at(token.Colon) || p.at(token.Rpar) {
				args.HasBareStar = true
			} else {
				args.Vararg = p.parseOneParameter(allowAnnotations, false)
			}
			seenStar = true
			sawDefault = false
			p.eat(token.Comma)

		case p.at(token.DoubleStar):
			p.advance()
			if args.Kwarg != nil {
				p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeParamFollowsVarKeyword, p.cur.Range)
			}
			args.Kwarg = p.parseOneParameter(allowAnnotations, false)
			p.eat(token.Comma)

		default:
			if args.Kwarg != nil {
				p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeParamFollowsVarKeyword, p.cur.Range)
			}
			param := p.parseOneParameter(allowAnnotations, true)
			if param.Default != nil {
				sawDefault = true
			} else if sawDefault && !seenStar {
				p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeDefaultArgumentError, param.Range)
			}
			if seenStar {
				args.KwOnlyArgs = append(args.KwOnlyArgs, param)
			} else {
				args.Args = append(args.Args, param)
			}
			p.eat(token.Comma)
		}
	}

	args.Range = token.NewRange(start, p.cur.Range.Start)
	return args
}

func (p *Parser) parseOneParameter(allowAnnotations, allowDefault bool) *ast.Parameter {
	start := p.cur.Range.Start
	name := ""
	end := p.cur.Range.End
	if p.at(token.Name) {
		name = p.cur.Name
		end = p.cur.Range.End
		p.advance()
	} else {
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, "Name", p.cur.Kind.String())
	}

	var annotation ast.Expr
	if allowAnnotations && p.eat(token.Colon) {
		annotation = p.parseTest()
		end = annotation.NodeRange().End
	}
	var def ast.Expr
	if allowDefault && p.eat(token.Equal) {
		def = p.parseTest()
		end = def.NodeRange().End
	}
	return &ast.Parameter{Base: ast.Base{Range: token.NewRange(start, end)}, Name: name, Annotation: annotation, Default: def}
}

// parseCallTrailer parses `func(args, kwargs)`, validating
// positional-after-keyword and unpack-ordering invariants.
func (p *Parser) parseCallTrailer(funcExpr ast.Expr) ast.Expr {
	start := funcExpr.NodeRange().Start
	p.advance() // '('

	var args []ast.Expr
	var kws []*ast.Keyword
	seenKeyword := false
	seenDoubleStarUnpack := false

	p.withCtx(CtxArguments, func() {
		for !p.at(token.Rpar) && p.cur.Kind != token.EndOfFile {
			switch {
			case p.at(token.DoubleStar):
				kwStart := p.cur.Range.Start
				p.advance()
				value := p.parseTest()
				kws = append(kws, &ast.Keyword{Base: ast.Base{Range: token.NewRange(kwStart, value.NodeRange().End)}, Value: value, DoubleStar: true})
				seenDoubleStarUnpack = true

			case p.at(token.Star):
				sStart := p.cur.Range.Start
				p.advance()
				value := p.parseTest()
				if seenDoubleStarUnpack {
					p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeUnpackedArgumentError, token.NewRange(sStart, value.NodeRange().End))
				}
				args = append(args, &ast.Starred{Base: ast.Base{Range: token.NewRange(sStart, value.NodeRange().End)}, Value: value})

			case p.at(token.Name) && p.peekIs(token.Equal):
				kwStart := p.cur.Range.Start
				name := p.cur.Name
				p.advance()
				p.advance()
				value := p.parseTest()
				if seenDoubleStarUnpack {
					p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeUnpackedArgumentError, token.NewRange(kwStart, value.NodeRange().End))
				}
				kws = append(kws, &ast.Keyword{Base: ast.Base{Range: token.NewRange(kwStart, value.NodeRange().End)}, Arg: name, Value: value})
				seenKeyword = true

			default:
				value := p.parseNamedExprTest()
				if p.at(token.KwFor) || (p.at(token.KwAsync) && p.peekIs(token.KwFor)) {
					gens := p.parseComprehensionClauses()
					value = &ast.GeneratorExp{Base: ast.Base{Range: token.NewRange(value.NodeRange().Start, p.cur.Range.Start)}, Elt: value, Generators: gens}
				}
				if seenKeyword {
					p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodePositionalArgumentError, value.NodeRange())
				}
				if seenDoubleStarUnpack {
					p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeUnpackedArgumentError, value.NodeRange())
				}
				args = append(args, value)
			}

			if !p.eat(token.Comma) {
				break
			}
		}
	})

	end := p.cur.Range.End
	p.expectAndRecover(token.Rpar, tokenset.New(token.Rpar, token.Newline, token.EndOfFile))
	return &ast.Call{Base: ast.Base{Range: token.NewRange(start, end)}, Func: funcExpr, Args: args, Keywords: kws}
}
