package pyparser

import (
	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/token"
)

// parseStringGroup parses one or more adjacent String/FString tokens,
// folding them into a ConcatenatedString when more than one part is
// present (spec.md §4.7's implicit string concatenation).
func (p *Parser) parseStringGroup() ast.Expr {
	start := p.cur.Range.Start
	var parts []ast.Expr
	for p.at(token.String) || p.at(token.FStringStart) {
		if p.at(token.String) {
			parts = append(parts, p.parseStringLiteral())
		} else {
			parts = append(parts, p.parseFString())
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	end := parts[len(parts)-1].NodeRange().End
	return &ast.ConcatenatedString{Base: ast.Base{Range: token.NewRange(start, end)}, Parts: parts}
}

func (p *Parser) parseStringLiteral() ast.Expr {
	t := p.cur
	lit := &ast.StringLiteral{Base: ast.Base{Range: t.Range}, Value: t.StringValue, Kind: t.StringKind, TripleQuoted: t.TripleQuoted}
	p.advance()
	return lit
}

// parseFString parses one FStringStart..FStringEnd run into an
// *ast.FString, dispatching its interior literal runs and `{...}`
// replacement fields (spec.md §4.7).
func (p *Parser) parseFString() ast.Expr {
	start := p.cur.Range.Start
	isRaw := p.cur.IsRawFString
	p.advance() // FStringStart

	var elements []ast.FStringElement
	for {
		switch {
		case p.at(token.FStringMiddle):
			elements = append(elements, &ast.FStringLiteralElement{Base: ast.Base{Range: p.cur.Range}, Value: p.cur.StringValue, IsRaw: isRaw})
			p.advance()
		case p.at(token.Lbrace):
			elements = append(elements, p.parseFStringExpressionElement())
		case p.at(token.FStringEnd):
			end := p.cur.Range.End
			p.advance()
			return &ast.FString{Base: ast.Base{Range: token.NewRange(start, end)}, Elements: elements}
		default:
			p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeFStringError, p.cur.Range, "unterminated f-string")
			return &ast.FString{Base: ast.Base{Range: token.NewRange(start, p.cur.Range.Start)}, Elements: elements}
		}
	}
}

// parseFStringExpressionElement parses one `{expr [=] [!conv] [:spec]}`
// replacement field.
func (p *Parser) parseFStringExpressionElement() ast.FStringElement {
	start := p.cur.Range.Start
	p.advance() // '{'

	exprStart := p.cur.Range.Start
	if p.at(token.KwLambda) {
		p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeFStringError, p.cur.Range, "lambda expression without parentheses is not allowed in an f-string expression")
	}

	var value ast.Expr
	p.withCtx(CtxParenthesizedExpr, func() {
		value = p.parseTestListAsTuple()
	})
	exprEnd := value.NodeRange().End

	var debug *ast.DebugText
	if p.at(token.Equal) {
		p.advance()
		debug = &ast.DebugText{
			Leading:  p.source[start+1 : exprStart],
			Trailing: p.source[exprEnd:p.cur.Range.Start],
		}
	}

	conv := ast.ConversionNone
	if p.at(token.Bang) {
		p.advance()
		if p.at(token.Name) {
			switch p.cur.Name {
			case "s":
				conv = ast.ConversionStr
			case "r":
				conv = ast.ConversionRepr
			case "a":
				conv = ast.ConversionAscii
			default:
				p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeFStringError, p.cur.Range, "invalid conversion character")
			}
			p.advance()
		} else {
			p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeFStringError, p.cur.Range, "expected conversion character")
		}
	}

	var formatSpec []ast.FStringElement
	if p.at(token.Colon) {
		p.advance()
		formatSpec = p.parseFormatSpec()
	}

	end := p.cur.Range.End
	p.expectAndRecover(token.Rbrace, closeRecovery)
	return &ast.FStringExpressionElement{
		Base:       ast.Base{Range: token.NewRange(start, end)},
		Expression: value,
		Debug:      debug,
		Conversion: conv,
		FormatSpec: formatSpec,
	}
}

// parseFormatSpec parses the format-spec text (and any nested dynamic
// `{width}`/`{precision}` replacement fields) between the `:` of a
// replacement field and its closing `}`.
func (p *Parser) parseFormatSpec() []ast.FStringElement {
	var elems []ast.FStringElement
	for {
		switch {
		case p.at(token.FStringMiddle):
			elems = append(elems, &ast.FStringLiteralElement{Base: ast.Base{Range: p.cur.Range}, Value: p.cur.StringValue})
			p.advance()
		case p.at(token.Lbrace):
			elems = append(elems, p.parseFStringExpressionElement())
		default:
			return elems
		}
	}
}
