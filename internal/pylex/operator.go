package pylex

import "github.com/emilte/ruff/internal/token"

// lexOperator scans a structural or operator token. Bracket tokens also
// maintain parenDepth, which suppresses NEWLINE emission and indentation
// tracking while inside an open (), [], or {}.
func (l *Lexer) lexOperator() token.Token {
	start := l.position
	ch := l.ch

	two := func(next byte, k2 token.Kind, k1 token.Kind) token.Token {
		if l.peekChar() == next {
			l.readChar()
			l.readChar()
			return tok(k2, start, l.position)
		}
		l.readChar()
		return tok(k1, start, l.position)
	}

	switch ch {
	case '(':
		l.parenDepth++
		l.readChar()
		return tok(token.Lpar, start, l.position)
	case ')':
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		l.readChar()
		return tok(token.Rpar, start, l.position)
	case '[':
		l.parenDepth++
		l.readChar()
		return tok(token.Lsqb, start, l.position)
	case ']':
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		l.readChar()
		return tok(token.Rsqb, start, l.position)
	case '{':
		l.parenDepth++
		l.readChar()
		return tok(token.Lbrace, start, l.position)
	case '}':
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		l.readChar()
		return tok(token.Rbrace, start, l.position)
	case ',':
		l.readChar()
		return tok(token.Comma, start, l.position)
	case ';':
		l.readChar()
		return tok(token.Semi, start, l.position)
	case '.':
		if l.peekChar() == '.' && l.peekCharAt(2) == '.' {
			l.readChar()
			l.readChar()
			l.readChar()
			return tok(token.Ellipsis, start, l.position)
		}
		l.readChar()
		return tok(token.Dot, start, l.position)
	case '~':
		l.readChar()
		return tok(token.Tilde, start, l.position)
	case '@':
		return two('=', token.AtEqual, token.At)
	case '=':
		return two('=', token.EqEqual, token.Equal)
	case '!':
		return two('=', token.NotEqual, token.Bang)
	case '%':
		return two('=', token.PercentEqual, token.Percent)
	case '^':
		return two('=', token.CircumflexEqual, token.Circumflex)
	case '&':
		return two('=', token.AmperEqual, token.Amper)
	case '|':
		return two('=', token.VbarEqual, token.Vbar)
	case ':':
		return two('=', token.ColonEqual, token.Colon)
	case '+':
		return two('=', token.PlusEqual, token.Plus)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return tok(token.Arrow, start, l.position)
		}
		return two('=', token.MinusEqual, token.Minus)
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.DoubleStarEqual, start, l.position)
			}
			return tok(token.DoubleStar, start, l.position)
		}
		return two('=', token.StarEqual, token.Star)
	case '/':
		if l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.DoubleSlashEqual, start, l.position)
			}
			return tok(token.DoubleSlash, start, l.position)
		}
		return two('=', token.SlashEqual, token.Slash)
	case '<':
		if l.peekChar() == '<' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.LeftShiftEqual, start, l.position)
			}
			return tok(token.LeftShift, start, l.position)
		}
		return two('=', token.LessEqual, token.Less)
	case '>':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return tok(token.RightShiftEqual, start, l.position)
			}
			return tok(token.RightShift, start, l.position)
		}
		return two('=', token.GreaterEqual, token.Greater)
	default:
		l.readChar()
		return tok(token.Invalid, start, l.position)
	}
}
