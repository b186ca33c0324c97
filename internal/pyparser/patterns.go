package pyparser

import (
	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/token"
)

// parsePatterns parses the full pattern following `case`: either a single
// pattern, or an unparenthesized sequence of maybe-star patterns
// (spec.md §4.9's `open_sequence_pattern`).
func (p *Parser) parsePatterns() ast.Pattern {
	start := p.cur.Range.Start
	first := p.parseMaybeStarPattern()
	if !p.at(token.Comma) {
		return first
	}
	pats := []ast.Pattern{first}
	for p.eat(token.Comma) {
		if p.at(token.Colon) || p.at(token.KwIf) {
			break
		}
		pats = append(pats, p.parseMaybeStarPattern())
	}
	end := pats[len(pats)-1].NodeRange().End
	return &ast.MatchSequence{Base: ast.Base{Range: token.NewRange(start, end)}, Patterns: pats}
}

func (p *Parser) parseMaybeStarPattern() ast.Pattern {
	if p.at(token.Star) {
		start := p.cur.Range.Start
		p.advance()
		name := ""
		end := p.cur.Range.End
		if p.at(token.Name) {
			if p.cur.Name != "_" {
				name = p.cur.Name
			}
			end = p.cur.Range.End
			p.advance()
		}
		return &ast.MatchStar{Base: ast.Base{Range: token.NewRange(start, end)}, Name: name}
	}
	return p.parsePattern()
}

// parsePattern parses an as_pattern/or_pattern.
func (p *Parser) parsePattern() ast.Pattern {
	first := p.parseOrPattern()
	if p.eat(token.KwAs) {
		name := ""
		if p.at(token.Name) {
			name = p.cur.Name
			p.advance()
		} else {
			p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, "Name", p.cur.Kind.String())
		}
		return &ast.MatchAs{Base: ast.Base{Range: token.NewRange(first.NodeRange().Start, p.cur.Range.Start)}, Pattern: first, Name: name}
	}
	return first
}

func (p *Parser) parseOrPattern() ast.Pattern {
	start := p.cur.Range.Start
	first := p.parseClosedPattern()
	if !p.at(token.Vbar) {
		return first
	}
	pats := []ast.Pattern{first}
	for p.eat(token.Vbar) {
		pats = append(pats, p.parseClosedPattern())
	}
	end := pats[len(pats)-1].NodeRange().End
	return &ast.MatchOr{Base: ast.Base{Range: token.NewRange(start, end)}, Patterns: pats}
}

func (p *Parser) parseClosedPattern() ast.Pattern {
	start := p.cur.Range.Start
	switch {
	case p.at(token.Lpar):
		return p.parseGroupOrSequencePattern(token.Lpar, token.Rpar)
	case p.at(token.Lsqb):
		return p.parseGroupOrSequencePattern(token.Lsqb, token.Rsqb)
	case p.at(token.Lbrace):
		return p.parseMappingPattern()
	case p.at(token.KwNone):
		p.advance()
		return &ast.MatchSingleton{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Kind: ast.SingletonNone}
	case p.at(token.KwTrue):
		p.advance()
		return &ast.MatchSingleton{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Kind: ast.SingletonTrue}
	case p.at(token.KwFalse):
		p.advance()
		return &ast.MatchSingleton{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Kind: ast.SingletonFalse}
	case p.at(token.String), p.at(token.FStringStart):
		val := p.parseStringGroup()
		return &ast.MatchValue{Base: ast.Base{Range: val.NodeRange()}, Value: val}
	case p.at(token.Int), p.at(token.Float), p.at(token.Complex):
		return p.parseNumberPattern(nil, start)
	case p.at(token.Minus):
		p.advance()
		return p.parseNumberPattern(&start, start)
	case p.at(token.Name) && p.cur.Name == "_":
		p.advance()
		return &ast.MatchAs{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}}
	case p.at(token.Name):
		return p.parseCaptureOrValueOrClassPattern()
	default:
		rng := p.cur.Range
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeInvalidMatchPatternLiteral, rng, p.cur.Kind.String())
		p.advance()
		return p.invalidPatternAt(rng)
	}
}

func (p *Parser) invalidPatternAt(rng token.Range) ast.Pattern {
	return &ast.MatchValue{Base: ast.Base{Range: rng}, Value: p.invalidAt(rng)}
}

// parseNumberPattern parses a (possibly negated) numeric literal pattern,
// and its optional `+`/`-` imaginary-part tail for complex-number
// patterns like `1+2j` (spec.md §4.9).
func (p *Parser) parseNumberPattern(negStart *int, start int) ast.Pattern {
	num := p.parseAtom()
	var val ast.Expr = num
	if negStart != nil {
		val = &ast.UnaryOp{Base: ast.Base{Range: token.NewRange(*negStart, num.NodeRange().End)}, Op: ast.OpUSub, Operand: num}
	}
	if p.at(token.Plus) || p.at(token.Minus) {
		op := ast.OpAdd
		if p.at(token.Minus) {
			op = ast.OpSub
		}
		p.advance()
		rhs := p.parseAtom()
		val = &ast.BinOp{Base: ast.Base{Range: token.NewRange(start, rhs.NodeRange().End)}, Left: val, Op: op, Right: rhs}
	}
	return &ast.MatchValue{Base: ast.Base{Range: val.NodeRange()}, Value: val}
}

// parseCaptureOrValueOrClassPattern parses a bare Name, a dotted value
// pattern (`mod.CONST`), or a class pattern (`Cls(...)`).
func (p *Parser) parseCaptureOrValueOrClassPattern() ast.Pattern {
	start := p.cur.Range.Start
	name := p.cur.Name
	p.advance()
	var valueExpr ast.Expr = &ast.Name{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Id: name}
	hadDot := false
	for p.at(token.Dot) {
		hadDot = true
		p.advance()
		attrName := ""
		end := p.cur.Range.End
		if p.at(token.Name) {
			attrName = p.cur.Name
			end = p.cur.Range.End
			p.advance()
		} else {
			p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, "Name", p.cur.Kind.String())
		}
		valueExpr = &ast.Attribute{Base: ast.Base{Range: token.NewRange(valueExpr.NodeRange().Start, end)}, Value: valueExpr, Attr: attrName}
	}
	if p.at(token.Lpar) {
		return p.parseClassPatternArgs(valueExpr)
	}
	if hadDot {
		return &ast.MatchValue{Base: ast.Base{Range: valueExpr.NodeRange()}, Value: valueExpr}
	}
	return &ast.MatchAs{Base: ast.Base{Range: valueExpr.NodeRange()}, Name: name}
}

func (p *Parser) parseClassPatternArgs(cls ast.Expr) ast.Pattern {
	start := cls.NodeRange().Start
	p.advance() // '('
	var positional []ast.Pattern
	var kwdAttrs []string
	var kwdPatterns []ast.Pattern

	for !p.at(token.Rpar) && p.cur.Kind != token.EndOfFile {
		if p.at(token.Name) && p.peekIs(token.Equal) {
			attr := p.cur.Name
			p.advance()
			p.advance()
			pat := p.parsePattern()
			kwdAttrs = append(kwdAttrs, attr)
			kwdPatterns = append(kwdPatterns, pat)
		} else {
			pat := p.parsePattern()
			if len(kwdAttrs) > 0 {
				p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodePositionalArgumentError, pat.NodeRange())
			}
			positional = append(positional, pat)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.cur.Range.End
	p.expectAndRecover(token.Rpar, closeRecovery)
	return &ast.MatchClass{Base: ast.Base{Range: token.NewRange(start, end)}, Cls: cls, Patterns: positional, KwdAttrs: kwdAttrs, KwdPatterns: kwdPatterns}
}

// parseGroupOrSequencePattern parses `(...)`/`[...]`: an empty sequence,
// a single parenthesized pattern (group pattern, `(` only), or a
// sequence pattern.
func (p *Parser) parseGroupOrSequencePattern(openKind, closeKind token.Kind) ast.Pattern {
	start := p.cur.Range.Start
	p.advance() // open bracket
	if p.at(closeKind) {
		end := p.cur.Range.End
		p.advance()
		return &ast.MatchSequence{Base: ast.Base{Range: token.NewRange(start, end)}}
	}

	first := p.parseMaybeStarPattern()
	if openKind == token.Lpar && !p.at(token.Comma) {
		if _, isStar := first.(*ast.MatchStar); !isStar {
			p.expectAndRecover(closeKind, closeRecovery)
			return first
		}
	}

	pats := []ast.Pattern{first}
	for p.eat(token.Comma) {
		if p.at(closeKind) {
			break
		}
		pats = append(pats, p.parseMaybeStarPattern())
	}
	end := p.cur.Range.End
	p.expectAndRecover(closeKind, closeRecovery)
	return &ast.MatchSequence{Base: ast.Base{Range: token.NewRange(start, end)}, Patterns: pats}
}

// parseMappingPattern parses `{key: pattern, ..., **rest}`.
func (p *Parser) parseMappingPattern() ast.Pattern {
	start := p.cur.Range.Start
	p.advance() // '{'
	var keys []ast.Expr
	var pats []ast.Pattern
	rest := ""
	hasRest := false

	for !p.at(token.Rbrace) && p.cur.Kind != token.EndOfFile {
		if p.at(token.DoubleStar) {
			p.advance()
			if p.at(token.Name) {
				rest = p.cur.Name
				hasRest = true
				p.advance()
			}
		} else {
			key := p.parseTest()
			p.expect(token.Colon)
			val := p.parsePattern()
			keys = append(keys, key)
			pats = append(pats, val)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.cur.Range.End
	p.expectAndRecover(token.Rbrace, closeRecovery)
	return &ast.MatchMapping{Base: ast.Base{Range: token.NewRange(start, end)}, Keys: keys, Patterns: pats, Rest: rest, HasRest: hasRest}
}
