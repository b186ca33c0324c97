// Package pyparser is the hand-written recursive-descent + Pratt parser
// for Python: it consumes the token stream internal/pylex produces and
// builds the internal/ast tree, never aborting on a syntax error.
// Structurally it follows the teacher's internal/parser.Parser (a
// cur/peek token pair advanced by nextToken, prefix/infix parse-fn
// tables for the Pratt engine) generalized with the deeper lookahead
// and ParserCtx disambiguation Python's grammar needs.
package pyparser

import (
	"errors"

	"github.com/google/uuid"

	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/diagnostics"
	"github.com/emilte/ruff/internal/pipeline"
	"github.com/emilte/ruff/internal/pylex"
	"github.com/emilte/ruff/internal/token"
	"github.com/emilte/ruff/internal/tokenset"
)

// Mode selects which of the three top-level grammars ParseTokens uses,
// spec.md §4.10's Mod variants.
type Mode uint8

const (
	ModeModule Mode = iota
	ModeExpression
	ModeIpython
)

// Program is the result of a parse: the best-effort AST plus every
// diagnostic accumulated along the way (spec.md §2). RunID identifies
// this parse for correlation with downstream tooling/log lines.
type Program struct {
	AST    ast.Mod
	Errors []diagnostics.Diagnostic
	RunID  uuid.UUID
}

// Parser holds all mutable state of one parse.
type Parser struct {
	source string
	stream pipeline.TokenStream
	mode   Mode

	cur  token.Token
	peek token.Token

	diagnostics diagnostics.Sink
	ctx         ParserCtx

	// deferredInvalid collects the source ranges expectAndRecover skipped
	// mid-statement; once the enclosing statement boundary is reached,
	// each becomes a trailing Expr(Invalid) statement whose start is
	// clamped to the end of that statement (SPEC_FULL §2).
	deferredInvalid []token.Range
}

// ParseString lexes and parses src from scratch.
func ParseString(src string, mode Mode) *Program {
	stream := pylex.NewTokenStream(pylex.New(src))
	return ParseTokens(src, stream, mode)
}

// ParseTokens parses an already-tokenized stream. Splitting lexing and
// parsing this way lets tests feed a hand-built TokenStream directly.
func ParseTokens(source string, stream pipeline.TokenStream, mode Mode) *Program {
	p := &Parser{source: source, stream: stream, mode: mode}
	p.advance()
	p.advance()

	var root ast.Mod
	switch mode {
	case ModeExpression:
		root = p.parseModExpression()
	default:
		root = p.parseModModule()
	}

	return &Program{AST: root, Errors: p.diagnostics.All(), RunID: uuid.New()}
}

// ParserProcessor runs ModeModule parsing over ctx.TokenStream and
// installs the resulting AST/diagnostics, mirroring the teacher's
// parser.ParserProcessor pipeline stage (chained after pylex.Processor).
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog := ParseTokens(ctx.SourceCode, ctx.TokenStream, ModeModule)
	ctx.Root = prog.AST
	ctx.Errors = append(ctx.Errors, prog.Errors...)
	return ctx
}

var _ pipeline.Processor = (*ParserProcessor)(nil)

// ParseTokensStrict behaves like ParseTokens but additionally returns
// the first accumulated diagnostic as a plain Go error whenever
// prog.Errors is non-empty (spec.md §6: parse_tokens_strict "return[s]
// the first error as a failure if the list is non-empty"). The
// returned Program is always the same best-effort result ParseTokens
// would have produced — the error is a convenience for callers (e.g.
// cmd/pyparse's -strict flag) that want a single pass/fail signal
// instead of walking Errors themselves.
func ParseTokensStrict(source string, stream pipeline.TokenStream, mode Mode) (*Program, error) {
	prog := ParseTokens(source, stream, mode)
	if len(prog.Errors) > 0 {
		return prog, errors.New(prog.Errors[0].Error())
	}
	return prog, nil
}

// ParseStringStrict is ParseTokensStrict's ParseString-style
// convenience wrapper: lex and parse src from scratch, then apply the
// same first-error-as-failure contract.
func ParseStringStrict(src string, mode Mode) (*Program, error) {
	stream := pylex.NewTokenStream(pylex.New(src))
	return ParseTokensStrict(src, stream, mode)
}

func (p *Parser) advance() {
	p.cur = p.peek
	peeked := p.stream.Peek(1)
	if len(peeked) > 0 {
		p.peek = peeked[0]
	} else {
		p.peek = token.Token{Kind: token.EndOfFile, Range: p.cur.Range}
	}
	p.stream.Next()

	// Any Invalid token surfaced by the lexer becomes a lexical
	// diagnostic as it is consumed, per spec.md §6's contract that the
	// parser is the one place lexer errors enter the shared sink.
	if p.cur.Kind == token.Invalid {
		p.diagnostics.Errorf(diagnostics.PhaseLexer, diagnostics.CodeLexical, p.cur.Range, "invalid token")
	}
}

// peekNth returns the token k positions ahead of cur (peekNth(1) ==
// p.peek), padding with EndOfFile past the end of input.
func (p *Parser) peekNth(k int) token.Token {
	if k <= 0 {
		return p.cur
	}
	if k == 1 {
		return p.peek
	}
	// p.peek has already been taken from the stream, so the stream's
	// first buffered token is the one two positions ahead of cur.
	toks := p.stream.Peek(k - 1)
	if len(toks) < k-1 {
		if len(toks) == 0 {
			return token.Token{Kind: token.EndOfFile, Range: p.cur.Range}
		}
		return toks[len(toks)-1]
	}
	return toks[k-2]
}

func (p *Parser) at(k token.Kind) bool     { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// eat consumes cur if it matches k and reports whether it did.
func (p *Parser) eat(k token.Kind) bool {
	if p.cur.Kind != k {
		return false
	}
	p.advance()
	return true
}

// expect consumes cur if it matches k; otherwise it records E001 and
// leaves cur in place so the caller's recovery logic decides what to
// skip. It never aborts the parse (spec.md §2/§7).
func (p *Parser) expect(k token.Kind) bool {
	if p.eat(k) {
		return true
	}
	p.diagnostics.Errorf(diagnostics.PhaseParser, diagnostics.CodeExpectedToken, p.cur.Range, k.String(), p.cur.Kind.String())
	return false
}

// expectAndRecover expects k; on failure it skips tokens until one in
// recovery (or EndOfFile) is reached, matching spec.md §7's
// expect_and_recover/skip_until pairing. Any span it has to skip is
// deferred (spec.md §3/§4's DeferredInvalidRange) rather than dropped,
// so it still surfaces once the enclosing statement is done parsing.
// If the skip stops at k itself, k is consumed.
func (p *Parser) expectAndRecover(k token.Kind, recovery tokenset.Set) {
	if p.expect(k) {
		return
	}
	start := p.cur.Range.Start
	p.skipUntil(recovery)
	if p.cur.Range.Start > start {
		p.deferInvalid(token.NewRange(start, p.cur.Range.Start))
	}
	p.eat(k)
}

// skipUntil advances until cur is a member of set or EndOfFile.
func (p *Parser) skipUntil(set tokenset.Set) {
	for !set.Contains(p.cur.Kind) && p.cur.Kind != token.EndOfFile {
		p.advance()
	}
}

// invalidAt builds an Invalid node covering rng, carrying the source text
// of that span. It records no diagnostic; callers report their own.
func (p *Parser) invalidAt(rng token.Range) *ast.Invalid {
	text := ""
	if rng.Start >= 0 && rng.End <= len(p.source) && rng.Start <= rng.End {
		text = p.source[rng.Start:rng.End]
	}
	return &ast.Invalid{Base: ast.Base{Range: rng}, Text: text}
}

// recoverToStmtBoundary is used when a statement-level production fails
// outright: it consumes tokens up to the next NEWLINE/Dedent/EndOfFile
// and returns a single Invalid node for the whole span. The span itself
// becomes the statement, so nothing about it is deferred; any ranges
// skipped earlier while parsing this same statement (via
// expectAndRecover) are still pending in p.deferredInvalid and are
// flushed separately, by flushDeferredInvalid, once the enclosing
// statement line finishes.
func (p *Parser) recoverToStmtBoundary(start int) ast.Stmt {
	for !stmtRecoverySet.Contains(p.cur.Kind) && p.cur.Kind != token.EndOfFile {
		p.advance()
	}
	rng := token.NewRange(start, p.cur.Start)
	return p.invalidAt(rng)
}

// deferInvalid records rng to be flushed as its own trailing
// Expr(Invalid) statement once the enclosing statement finishes,
// instead of being silently discarded (spec.md §3/§4's
// DeferredInvalidRange recovery entity).
func (p *Parser) deferInvalid(rng token.Range) {
	p.deferredInvalid = append(p.deferredInvalid, rng)
}

// drainDeferredInvalid turns every pending deferred range into its own
// Expr(Invalid) statement and clears the queue. Each range is clamped
// to start no earlier than stmtRange's end, so a flushed range always
// reads as following the statement that triggered it (spec.md §4.10:
// "any deferred-invalid range is flushed as an Expr(Invalid) statement
// after the statement that triggered it"). Returns nil when nothing was
// deferred.
func (p *Parser) drainDeferredInvalid(stmtRange token.Range) []ast.Stmt {
	if len(p.deferredInvalid) == 0 {
		return nil
	}
	stmts := make([]ast.Stmt, 0, len(p.deferredInvalid))
	for _, rng := range p.deferredInvalid {
		if rng.Start < stmtRange.End {
			rng = token.NewRange(stmtRange.End, rng.End)
		}
		stmts = append(stmts, &ast.ExprStmt{Base: ast.Base{Range: rng}, Value: p.invalidAt(rng)})
	}
	p.deferredInvalid = p.deferredInvalid[:0]
	return stmts
}

var stmtRecoverySet = tokenset.New(token.Newline, token.Indent, token.Dedent, token.Semi, token.EndOfFile)
