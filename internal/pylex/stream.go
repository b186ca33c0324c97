package pylex

import (
	"github.com/emilte/ruff/internal/pipeline"
	"github.com/emilte/ruff/internal/token"
)

// lookaheadBufferSize bounds how much of the buffered stream's consumed
// prefix is trimmed away, the same bookkeeping the teacher's
// bufferedLexer (internal/lexer/processor.go) performs.
const lookaheadBufferSize = 10

// bufferedLexer adapts a *Lexer into pipeline.TokenStream, buffering
// just enough lookahead for Peek(n) without re-lexing.
type bufferedLexer struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

// NewTokenStream wraps l as a pipeline.TokenStream.
func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &bufferedLexer{l: l}
}

func (bl *bufferedLexer) Next() token.Token {
	if bl.pos < len(bl.buffer) {
		t := bl.buffer[bl.pos]
		bl.pos++
		return t
	}
	return bl.l.NextToken()
}

func (bl *bufferedLexer) Peek(n int) []token.Token {
	if len(bl.buffer)-bl.pos == 0 {
		bl.buffer = append(bl.buffer, bl.l.NextToken())
	}
	for len(bl.buffer)-bl.pos < n && bl.buffer[len(bl.buffer)-1].Kind != token.EndOfFile {
		bl.buffer = append(bl.buffer, bl.l.NextToken())
	}

	if bl.pos > lookaheadBufferSize {
		bl.buffer = bl.buffer[bl.pos:]
		bl.pos = 0
	}

	end := bl.pos + n
	if end > len(bl.buffer) {
		end = len(bl.buffer)
	}
	return bl.buffer[bl.pos:end]
}

var _ pipeline.TokenStream = (*bufferedLexer)(nil)

// Processor lexes ctx.SourceCode and installs the resulting TokenStream,
// mirroring the teacher's lexer.LexerProcessor pipeline stage.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = NewTokenStream(New(ctx.SourceCode))
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
