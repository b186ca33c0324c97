// Package diagnostics implements the append-only error sink described in
// spec.md §2 and the error taxonomy of §7. It mirrors the shape of the
// teacher's diagnostics package (Phase + stable ErrorCode + template
// table rendering a DiagnosticError), retargeted to the Python grammar.
package diagnostics

import (
	"fmt"

	"github.com/emilte/ruff/internal/token"
)

// Phase records which stage of the pipeline raised a diagnostic.
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"
)

// Code is a stable identifier for a kind of syntax error, independent of
// the (possibly parameterized) rendered message.
type Code string

const (
	CodeLexical                  Code = "E000" // surfaced verbatim from the lexer
	CodeExpectedToken             Code = "E001"
	CodeUnexpectedTokens          Code = "E002"
	CodeSimpleStmtsInSameLine     Code = "E003"
	CodeSimpleAndCompoundInLine   Code = "E004"
	CodeAssignmentError           Code = "E005"
	CodeAugAssignmentError        Code = "E006"
	CodeNamedAssignmentError      Code = "E007"
	CodePositionalArgumentError   Code = "E008"
	CodeUnpackedArgumentError     Code = "E009"
	CodeDefaultArgumentError      Code = "E010"
	CodeParamFollowsVarKeyword    Code = "E011"
	CodeStmtIsNotAsync            Code = "E012"
	CodeInvalidMatchPatternLiteral Code = "E013"
	CodeFStringError               Code = "E014"
	CodeEmptySlice                  Code = "E015"
	CodeOther                       Code = "E999"
)

var templates = map[Code]string{
	CodeLexical:                  "%s",
	CodeExpectedToken:             "expected %s, found %s",
	CodeUnexpectedTokens:          "unexpected tokens",
	CodeSimpleStmtsInSameLine:     "simple statements on the same line must be separated by ';'",
	CodeSimpleAndCompoundInLine:   "compound statement may not appear on the same line as a simple statement",
	CodeAssignmentError:           "cannot assign to %s",
	CodeAugAssignmentError:        "invalid augmented-assignment target",
	CodeNamedAssignmentError:      "cannot use named assignment with %s",
	CodePositionalArgumentError:   "positional argument follows keyword argument",
	CodeUnpackedArgumentError:     "iterable argument unpacking follows keyword argument unpacking",
	CodeDefaultArgumentError:      "parameter without a default follows a parameter with a default",
	CodeParamFollowsVarKeyword:    "parameter follows var-keyword parameter",
	CodeStmtIsNotAsync:            "%s statement cannot be used outside of an async context",
	CodeInvalidMatchPatternLiteral: "invalid pattern literal: %s",
	CodeFStringError:               "%s",
	CodeEmptySlice:                  "empty slice",
	CodeOther:                       "%s",
}

// Diagnostic is a single (ErrorKind, Range) entry in the append-only
// error list. It never aborts parsing; it is collected and returned to
// the caller alongside the best-effort AST.
type Diagnostic struct {
	Code  Code
	Phase Phase
	Range token.Range
	args  []interface{}
}

// New builds a Diagnostic. args are applied to the Code's message
// template with fmt.Sprintf at render time, matching the teacher's
// lazy-template approach (errors are cheap to construct, formatted only
// when displayed).
func New(phase Phase, code Code, rng token.Range, args ...interface{}) Diagnostic {
	return Diagnostic{Code: code, Phase: phase, Range: rng, args: args}
}

// Message renders the diagnostic's human-readable text.
func (d Diagnostic) Message() string {
	tmpl, ok := templates[d.Code]
	if !ok {
		return string(d.Code)
	}
	if len(d.args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, d.args...)
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%s] %d:%d: %s", d.Code, d.Range.Start, d.Range.End, d.Message())
}

// Sink is the append-only diagnostics list threaded through a parse.
// Ordering guarantee (spec.md §5/§8): entries are appended in the order
// productions encounter them, which for successful left-to-right descent
// is non-decreasing in Range.Start; validator passes that run after an
// argument/parameter list closes are the one documented exception (they
// append after the triggering span, in their own submission order).
type Sink struct {
	entries []Diagnostic
}

// Add appends a diagnostic and returns it for convenience at call sites
// that also want to attach it to a synthesized Invalid node.
func (s *Sink) Add(d Diagnostic) Diagnostic {
	s.entries = append(s.entries, d)
	return d
}

// Errorf is a convenience wrapper around New+Add.
func (s *Sink) Errorf(phase Phase, code Code, rng token.Range, args ...interface{}) Diagnostic {
	return s.Add(New(phase, code, rng, args...))
}

// All returns the accumulated diagnostics in submission order.
func (s *Sink) All() []Diagnostic { return s.entries }

// Len reports how many diagnostics have been recorded.
func (s *Sink) Len() int { return len(s.entries) }
