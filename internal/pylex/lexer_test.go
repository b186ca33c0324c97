package pylex

import (
	"testing"

	"github.com/emilte/ruff/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EndOfFile {
			return toks
		}
		if len(toks) > 10000 {
			t.Fatalf("lexer did not terminate for %q", src)
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func assertKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", src, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d = %s, want %s (full: %v)", src, i, got[i], want[i], got)
		}
	}
}

func TestIndentDedentNesting(t *testing.T) {
	src := "if a:\n    if b:\n        pass\n    pass\n"
	toks := lexAll(t, src)
	var indents, dedents int
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	if indents != 2 {
		t.Fatalf("got %d Indent tokens, want 2", indents)
	}
	if dedents != 2 {
		t.Fatalf("got %d Dedent tokens, want 2", dedents)
	}
}

func TestImplicitLineJoiningInsideBrackets(t *testing.T) {
	src := "x = (1 +\n     2)\n"
	toks := lexAll(t, src)
	closed := false
	for _, tok := range toks {
		if tok.Kind == token.Rpar {
			closed = true
		}
		if tok.Kind == token.Newline && !closed {
			t.Fatalf("unexpected Newline token inside parenthesized expression: %v", toks)
		}
	}
}

func TestNumberTokenKinds(t *testing.T) {
	assertKinds(t, "0x1A\n", token.Int, token.Newline, token.EndOfFile)
	assertKinds(t, "1_000_000\n", token.Int, token.Newline, token.EndOfFile)
	assertKinds(t, "1.5j\n", token.Complex, token.Newline, token.EndOfFile)
}

func TestStringPrefixKinds(t *testing.T) {
	toks := lexAll(t, "b'raw'\n")
	if toks[0].Kind != token.String {
		t.Fatalf("got %s, want String", toks[0].Kind)
	}
	if toks[0].StringKind != token.StringBytes {
		t.Fatalf("got StringKind %v, want StringBytes", toks[0].StringKind)
	}
}

func TestFStringSplitsIntoStartMiddleEnd(t *testing.T) {
	toks := lexAll(t, `f"a{b}c"`+"\n")
	var sawStart, sawName, sawEnd bool
	for _, tok := range toks {
		switch tok.Kind {
		case token.FStringStart:
			sawStart = true
		case token.FStringEnd:
			sawEnd = true
		case token.Name:
			if tok.Name == "b" {
				sawName = true
			}
		}
	}
	if !sawStart || !sawName || !sawEnd {
		t.Fatalf("f-string did not split into Start/Name/End tokens: %v", kinds(toks))
	}
}

func TestOperatorLongestMatch(t *testing.T) {
	assertKinds(t, "a **= 2\n", token.Name, token.DoubleStarEqual, token.Int, token.Newline, token.EndOfFile)
	assertKinds(t, "a // b\n", token.Name, token.DoubleSlash, token.Name, token.Newline, token.EndOfFile)
}

func TestBlankLinesAndCommentsProduceNoTokens(t *testing.T) {
	toks := lexAll(t, "# comment\n\nx = 1\n")
	var names int
	for _, tok := range toks {
		if tok.Kind == token.Name {
			names++
		}
	}
	if names != 1 {
		t.Fatalf("got %d Name tokens, want 1 (comment/blank lines should not lex): %v", names, kinds(toks))
	}
}
