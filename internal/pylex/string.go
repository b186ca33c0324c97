package pylex

import "github.com/emilte/ruff/internal/token"

// lexStringStart scans the opening quote(s) of a string or f-string
// literal (prefix already consumed by the caller) and dispatches to
// either a complete String token or an FStringStart token that begins
// f-string element scanning (spec.md §4.7).
func (l *Lexer) lexStringStart(prefix string) token.Token {
	start := l.position - len(prefix)
	quote := l.ch
	triple := l.peekChar() == quote && l.peekCharAt(2) == quote

	kind, raw, isF := classifyPrefix(prefix)

	l.readChar()
	if triple {
		l.readChar()
		l.readChar()
	}

	if isF {
		l.fstrings = append(l.fstrings, &fstringFrame{quote: quote, triple: triple, raw: raw})
		return token.Token{
			Kind:         token.FStringStart,
			Range:        token.NewRange(start, l.position),
			StringKind:   kind,
			TripleQuoted: triple,
			IsRawFString: raw,
		}
	}

	contentStart := l.position
	for {
		if l.ch == 0 {
			break
		}
		if l.ch == quote {
			if triple {
				if l.peekChar() == quote && l.peekCharAt(2) == quote {
					break
				}
			} else {
				break
			}
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if !triple && l.ch == '\n' {
			break // unterminated; let the parser diagnose via a missing close
		}
		l.readChar()
	}
	contentEnd := l.position
	value := l.input[contentStart:contentEnd]

	if l.ch == quote {
		l.readChar()
		if triple {
			l.readChar()
			l.readChar()
		}
	}

	return token.Token{
		Kind:         token.String,
		Range:        token.NewRange(start, l.position),
		StringValue:  value,
		StringKind:   kind,
		TripleQuoted: triple,
	}
}

// lexFStringLiteral scans literal text for frame: either the f-string's
// own top-level text (when frame has no open `{...}` element) or the
// format-spec text of its innermost open element. Doubled `{{`/`}}`
// decode to a single literal brace; a bare `{` starts a new element and
// a bare `}` ends the innermost open one.
func (l *Lexer) lexFStringLiteral(frame *fstringFrame) token.Token {
	start := l.position
	inSpec := len(frame.elements) > 0

	var value []byte
	for {
		if l.ch == 0 {
			break
		}
		if !inSpec && l.ch == frame.quote {
			if frame.triple {
				if l.peekChar() == frame.quote && l.peekCharAt(2) == frame.quote {
					break
				}
			} else {
				break
			}
		}
		if inSpec && l.ch == '}' {
			break
		}
		if l.ch == '{' {
			if l.peekChar() == '{' {
				value = append(value, '{')
				l.readChar()
				l.readChar()
				continue
			}
			break
		}
		if !inSpec && l.ch == '}' {
			if l.peekChar() == '}' {
				value = append(value, '}')
				l.readChar()
				l.readChar()
				continue
			}
			// Unmatched closing brace in literal text; treated as
			// literal content here, flagged by the parser instead.
		}
		if l.ch == '\\' && !frame.raw {
			value = append(value, l.ch)
			l.readChar()
			if l.ch != 0 {
				value = append(value, l.ch)
				l.readChar()
			}
			continue
		}
		value = append(value, l.ch)
		l.readChar()
	}

	end := l.position
	middle := token.Token{
		Kind:        token.FStringMiddle,
		Range:       token.NewRange(start, end),
		StringValue: string(value),
	}

	switch {
	case l.ch == '{':
		frame.elements = append(frame.elements, &fstringElem{})
		l.pendingTokens = append(l.pendingTokens, l.lexOperator())
	case inSpec && l.ch == '}':
		frame.elements = frame.elements[:len(frame.elements)-1]
		l.pendingTokens = append(l.pendingTokens, l.lexOperator())
	default:
		// Closing quote of the f-string itself (or EOF: unterminated).
		closeStart := l.position
		l.readChar()
		if frame.triple {
			l.readChar()
			l.readChar()
		}
		l.fstrings = l.fstrings[:len(l.fstrings)-1]
		end := tok(token.FStringEnd, closeStart, l.position)
		l.pendingTokens = append(l.pendingTokens, end)
	}

	// An empty literal run produces no FStringMiddle; the delimiter that
	// ended it is returned directly.
	if start == end {
		next := l.pendingTokens[0]
		l.pendingTokens = l.pendingTokens[1:]
		return next
	}
	return middle
}
