// Package config is the single source of truth for the expression
// precedence table and other parser-wide constants, mirroring the
// teacher's internal/config package (AllOperators/Precxxx constants).
package config

import "github.com/emilte/ruff/internal/token"

// Binding power levels for the Pratt expression engine (spec.md §4.3).
// Higher binds tighter. Gaps between levels are intentional spares for
// future operators, matching the teacher's config.Precxxx spacing style.
const (
	BpLowest     = 0
	BpOr         = 4
	BpAnd        = 5
	BpNot        = 6
	BpComparison = 7
	BpBitOr      = 8
	BpBitXor     = 9
	BpBitAnd     = 10
	BpShift      = 11
	BpSum        = 12
	BpProduct    = 14
	BpUnary      = 17
	BpPower      = 18
	BpAwait      = 19
)

// BinOpInfo describes one binary/comparison operator's binding power and
// associativity, the Python analogue of the teacher's OperatorInfo table.
type BinOpInfo struct {
	Kind       token.Kind
	Power      int
	RightAssoc bool
}

// BinaryPrecedence is the single source of truth for binary-operator
// binding power; expr_bp consults it on every step.
var BinaryPrecedence = map[token.Kind]BinOpInfo{
	token.KwOr:          {token.KwOr, BpOr, false},
	token.KwAnd:         {token.KwAnd, BpAnd, false},
	token.KwIn:          {token.KwIn, BpComparison, false},
	token.KwIs:          {token.KwIs, BpComparison, false},
	token.EqEqual:       {token.EqEqual, BpComparison, false},
	token.NotEqual:      {token.NotEqual, BpComparison, false},
	token.Less:          {token.Less, BpComparison, false},
	token.LessEqual:     {token.LessEqual, BpComparison, false},
	token.Greater:       {token.Greater, BpComparison, false},
	token.GreaterEqual:  {token.GreaterEqual, BpComparison, false},
	token.Vbar:          {token.Vbar, BpBitOr, false},
	token.Circumflex:    {token.Circumflex, BpBitXor, false},
	token.Amper:         {token.Amper, BpBitAnd, false},
	token.LeftShift:     {token.LeftShift, BpShift, false},
	token.RightShift:    {token.RightShift, BpShift, false},
	token.Plus:          {token.Plus, BpSum, false},
	token.Minus:         {token.Minus, BpSum, false},
	token.Star:          {token.Star, BpProduct, false},
	token.Slash:         {token.Slash, BpProduct, false},
	token.DoubleSlash:   {token.DoubleSlash, BpProduct, false},
	token.Percent:       {token.Percent, BpProduct, false},
	token.At:            {token.At, BpProduct, false},
	token.DoubleStar:    {token.DoubleStar, BpPower, true},
}

// ComparisonOperators is the set of token kinds that participate in
// chained-comparison folding (spec.md §4.3).
var ComparisonOperators = map[token.Kind]bool{
	token.Less:         true,
	token.LessEqual:    true,
	token.Greater:      true,
	token.GreaterEqual: true,
	token.EqEqual:      true,
	token.NotEqual:     true,
	token.KwIn:         true,
	token.KwIs:         true,
	// `not in` and `is not` are recognized by 2-token lookahead, see
	// pyparser/expressions.go:matchCompareOp.
}

// AugAssignOperators maps an augmented-assignment token to true; used by
// the statement engine to recognize AugAssign without a second table.
var AugAssignOperators = map[token.Kind]bool{
	token.PlusEqual:        true,
	token.MinusEqual:       true,
	token.StarEqual:        true,
	token.DoubleStarEqual:  true,
	token.SlashEqual:       true,
	token.DoubleSlashEqual: true,
	token.PercentEqual:     true,
	token.AtEqual:          true,
	token.AmperEqual:       true,
	token.VbarEqual:        true,
	token.CircumflexEqual:  true,
	token.LeftShiftEqual:   true,
	token.RightShiftEqual:  true,
}

// SourceFileExtensions are the extensions cmd/pyparse treats as Python
// source, mirroring the teacher's config.SourceFileExtensions.
var SourceFileExtensions = []string{".py", ".pyi"}
