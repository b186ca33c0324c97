package pylex

import "github.com/emilte/ruff/internal/token"

// lexNumber scans an integer, float, or complex literal and leaves the
// raw literal text in NumberText for internal/numlit to interpret.
// Kind classification here only needs to distinguish the three numeric
// AST shapes, not validate digit legality (that is numlit's job too).
func (l *Lexer) lexNumber() token.Token {
	start := l.position

	if l.ch == '0' && (lower(l.peekChar()) == 'x' || lower(l.peekChar()) == 'o' || lower(l.peekChar()) == 'b') {
		l.readChar()
		l.readChar()
		for isHexDigitOrSep(l.ch) {
			l.readChar()
		}
		return token.Token{Kind: token.Int, Range: token.NewRange(start, l.position), NumberText: l.input[start:l.position]}
	}

	kind := token.Int
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) || (l.ch == '.' && !isIdentStart(l.peekChar()) && l.peekChar() != '.') {
		kind = token.Float
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}
	if lower(l.ch) == 'e' && (isDigit(l.peekChar()) || ((l.peekChar() == '+' || l.peekChar() == '-') && isDigit(l.peekCharAt(2)))) {
		kind = token.Float
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}
	if lower(l.ch) == 'j' {
		kind = token.Complex
		l.readChar()
	}
	return token.Token{Kind: kind, Range: token.NewRange(start, l.position), NumberText: l.input[start:l.position]}
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func isHexDigitOrSep(ch byte) bool {
	return isDigit(ch) || ch == '_' || (lower(ch) >= 'a' && lower(ch) <= 'f')
}
