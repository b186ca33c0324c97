// Package pipeline wires the lexer and parser stages together the same
// way the teacher's internal/pipeline does: a small sequence of
// Processor stages threading a shared PipelineContext.
package pipeline

import (
	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/token"
)

// Processor is any component that can process a PipelineContext and
// return a (possibly the same, mutated) context.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the contract for a buffered view over a lexer,
// matching spec.md §4.1's TokenSource contract: non-consuming peek and
// a consuming Next.
type TokenStream interface {
	// Next consumes and returns the next token.
	Next() token.Token
	// Peek returns up to n tokens ahead without consuming them. If the
	// stream has fewer than n tokens left, it returns all remaining
	// tokens (padded with EndOfFile by the caller, per TokenSource).
	Peek(n int) []token.Token
}

// PipelineContext holds the data threaded between pipeline stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream TokenStream
	Root        ast.Mod
	Errors      []diagnostics.Diagnostic
}

// NewPipelineContext creates an initialized PipelineContext for source.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// Pipeline is a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from an ordered list of stages.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, threading ctx through each.
func (p *Pipeline) Run(initial *PipelineContext) *PipelineContext {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
