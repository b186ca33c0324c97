// Package pylex is the lexer: the external collaborator spec.md §6
// describes but leaves out of the parser's scope. It produces the
// (Token, Range) stream internal/pyparser consumes, including NEWLINE/
// INDENT/DEDENT synthesis, implicit line joining inside brackets, and
// f-string element splitting. Its character-scanning shape (readChar/
// peekChar over a byte cursor tracking line/column) mirrors the
// teacher's internal/lexer.Lexer.
package pylex

import (
	"strings"

	"github.com/emilte/ruff/internal/token"
)

// fstringElem tracks one open `{...}` expression element within an
// f-string: the bracket nesting opened inside it (so a nested dict/call
// `}`/`)` isn't mistaken for the element's own closing brace) and
// whether we've crossed the `:` into its format-spec.
type fstringElem struct {
	depth  int
	inSpec bool
}

// fstringFrame tracks one nesting level of an f-string being lexed.
type fstringFrame struct {
	quote    byte
	triple   bool
	raw      bool
	elements []*fstringElem
}

// inLiteralMode reports whether the lexer should currently be scanning
// f-string literal text (either the string's own top-level text, or the
// format-spec text of its innermost open element) rather than ordinary
// tokens.
func (f *fstringFrame) inLiteralMode() bool {
	if len(f.elements) == 0 {
		return true
	}
	return f.elements[len(f.elements)-1].inSpec
}

// Lexer tokenizes Python source text.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int

	parenDepth  int
	atLineStart bool

	indents        []int // indentation-width stack, starts with [0]
	pendingDedents int

	fstrings []*fstringFrame

	pendingTokens []token.Token
}

// New returns a lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0, indents: []int{0}, atLineStart: true}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekCharAt(n int) byte {
	idx := l.readPosition + n - 1
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func tok(kind token.Kind, start, end int) token.Token {
	return token.Token{Kind: kind, Range: token.NewRange(start, end)}
}

// NextToken returns the next token in the stream, ending with an
// unbounded run of EndOfFile tokens once input is exhausted.
func (l *Lexer) NextToken() token.Token {
	if len(l.pendingTokens) > 0 {
		t := l.pendingTokens[0]
		l.pendingTokens = l.pendingTokens[1:]
		return t
	}

	if len(l.fstrings) > 0 {
		top := l.fstrings[len(l.fstrings)-1]
		if top.inLiteralMode() {
			return l.lexFStringLiteral(top)
		}
	}

	if l.atLineStart && l.parenDepth == 0 && len(l.fstrings) == 0 {
		if t, ok := l.lexIndentation(); ok {
			return t
		}
	}

	l.skipWhitespaceAndComments()

	var t token.Token
	switch {
	case l.ch == 0:
		t = l.lexEOF()
	case l.ch == '\n':
		start := l.position
		l.readChar()
		if l.parenDepth > 0 || len(l.fstrings) > 0 {
			return l.NextToken()
		}
		l.atLineStart = true
		t = tok(token.Newline, start, start+1)
	case l.ch == '\\' && l.peekChar() == '\n':
		l.readChar()
		l.readChar()
		return l.NextToken()
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		t = l.lexNumber()
	case isIdentStart(l.ch):
		t = l.lexNameOrStringPrefix()
	case l.ch == '"' || l.ch == '\'':
		t = l.lexStringStart("")
	default:
		t = l.lexOperator()
	}

	if len(l.fstrings) > 0 {
		l.trackFStringExprToken(&t)
	}
	return t
}

func (l *Lexer) lexEOF() token.Token {
	if l.pendingDedents == 0 && len(l.indents) > 1 {
		l.pendingDedents = len(l.indents) - 1
		l.indents = l.indents[:1]
	}
	if l.pendingDedents > 0 {
		l.pendingDedents--
		return tok(token.Dedent, l.position, l.position)
	}
	return tok(token.EndOfFile, l.position, l.position)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\f' {
			l.readChar()
		}
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

// lexIndentation measures leading whitespace at the start of a logical
// line and synthesizes Indent/Dedent tokens by comparing against the
// indent stack, matching CPython's tokenizer behavior.
func (l *Lexer) lexIndentation() (token.Token, bool) {
	if l.pendingDedents > 0 {
		l.pendingDedents--
		return tok(token.Dedent, l.position, l.position), true
	}

	start := l.position
	width := 0
	for {
		switch l.ch {
		case ' ':
			width++
			l.readChar()
			continue
		case '\t':
			width += 8 - (width % 8)
			l.readChar()
			continue
		case '\f':
			width = 0
			l.readChar()
			continue
		}
		break
	}

	// Blank line or comment-only line: no indentation change, try again
	// on the next logical line.
	if l.ch == '\n' || l.ch == '#' || l.ch == 0 {
		l.skipBlankOrCommentLine()
		if l.ch == 0 {
			l.atLineStart = false
			return token.Token{}, false
		}
		return l.lexIndentation()
	}

	l.atLineStart = false
	top := l.indents[len(l.indents)-1]
	switch {
	case width > top:
		l.indents = append(l.indents, width)
		return tok(token.Indent, start, l.position), true
	case width < top:
		count := 0
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			count++
		}
		if count > 1 {
			l.pendingDedents = count - 1
		}
		return tok(token.Dedent, start, l.position), true
	default:
		return token.Token{}, false
	}
}

func (l *Lexer) skipBlankOrCommentLine() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '\n' {
		l.readChar()
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}
func isIdentCont(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

func (l *Lexer) lexNameOrStringPrefix() token.Token {
	start := l.position
	for isIdentCont(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.position]

	if (l.ch == '"' || l.ch == '\'') && isStringPrefix(text) {
		return l.lexStringStart(text)
	}

	kind := token.LookupIdent(text)
	rng := token.NewRange(start, l.position)
	return token.Token{Kind: kind, Range: rng, Name: text}
}

func isStringPrefix(s string) bool {
	switch strings.ToLower(s) {
	case "r", "b", "u", "f", "rb", "br", "rf", "fr":
		return true
	}
	return false
}

func classifyPrefix(prefix string) (kind token.StringKind, raw bool, isF bool) {
	lp := strings.ToLower(prefix)
	raw = strings.Contains(lp, "r")
	isF = strings.Contains(lp, "f")
	switch {
	case strings.Contains(lp, "b"):
		if raw {
			kind = token.StringRawBytes
		} else {
			kind = token.StringBytes
		}
	case strings.Contains(lp, "u"):
		kind = token.StringUnicode
	case raw:
		kind = token.StringRaw
	default:
		kind = token.StringPlain
	}
	return
}

// trackFStringExprToken updates the innermost open f-string element's
// bracket-depth/format-spec state in response to an ordinary token
// lexed while inside an f-string expression (spec.md §4.7). It is a
// no-op unless the expression is currently in ordinary-token mode.
func (l *Lexer) trackFStringExprToken(t *token.Token) {
	frame := l.fstrings[len(l.fstrings)-1]
	if len(frame.elements) == 0 {
		return
	}
	top := frame.elements[len(frame.elements)-1]
	if top.inSpec {
		return
	}
	switch t.Kind {
	case token.Lpar, token.Lsqb, token.Lbrace:
		top.depth++
	case token.Rpar, token.Rsqb:
		if top.depth > 0 {
			top.depth--
		}
	case token.Colon:
		if top.depth == 0 {
			top.inSpec = true
		}
	case token.Rbrace:
		if top.depth == 0 {
			frame.elements = frame.elements[:len(frame.elements)-1]
		} else {
			top.depth--
		}
	}
}
