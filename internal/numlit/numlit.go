// Package numlit interprets the raw literal text the lexer leaves in a
// Number token into a concrete value. It is the external collaborator
// spec.md §6 describes: parsing is deferred here so the lexer and
// parser stay concerned only with recognizing a numeric literal's
// shape, never its magnitude. Arbitrary-precision integers use
// math/big the same way the teacher's lexer (internal/lexer/lexer.go)
// backs its BigIntLiteral/RationalLiteral tokens with *big.Int/*big.Rat.
package numlit

import (
	"math/big"
	"strconv"
	"strings"
)

// Kind mirrors ast.NumberKind without importing internal/ast, keeping
// numlit a leaf package.
type Kind uint8

const (
	Int Kind = iota
	Float
	Complex
)

// Value is the interpreted form of a numeric literal. Exactly one of
// Int/Float/Imag is meaningful, selected by Kind. Int is arbitrary
// precision, matching Python's unbounded int type; Float and the
// imaginary part of Complex are float64, matching CPython's float.
type Value struct {
	Kind  Kind
	Int   *big.Int
	Float float64
	Imag  float64
}

// Parse interprets text (as left in a Number token's Text field) into a
// Value. text is assumed to already be lexically well-formed (the
// lexer only calls lexNumber on a recognized numeric shape); Parse
// reports an error only for an internal inconsistency, never for
// attacker-controlled input shape.
func Parse(text string, kind Kind) (Value, error) {
	clean := strings.ReplaceAll(text, "_", "")

	switch kind {
	case Complex:
		mantissa := strings.TrimSuffix(strings.TrimSuffix(clean, "j"), "J")
		f, err := strconv.ParseFloat(mantissa, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: Complex, Imag: f}, nil

	case Float:
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: Float, Float: f}, nil

	default:
		base := 10
		digits := clean
		if len(clean) > 1 && clean[0] == '0' {
			switch clean[1] {
			case 'x', 'X':
				base, digits = 16, clean[2:]
			case 'o', 'O':
				base, digits = 8, clean[2:]
			case 'b', 'B':
				base, digits = 2, clean[2:]
			}
		}
		v, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return Value{}, strconv.ErrSyntax
		}
		return Value{Kind: Int, Int: v}, nil
	}
}
