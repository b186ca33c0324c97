package config

import (
	"testing"

	"github.com/emilte/ruff/internal/token"
)

func TestPowerIsRightAssociative(t *testing.T) {
	info, ok := BinaryPrecedence[token.DoubleStar]
	if !ok {
		t.Fatalf("DoubleStar missing from BinaryPrecedence")
	}
	if !info.RightAssoc {
		t.Fatalf("** must be right-associative")
	}
}

func TestProductBindsTighterThanSum(t *testing.T) {
	if BinaryPrecedence[token.Star].Power <= BinaryPrecedence[token.Plus].Power {
		t.Fatalf("* must bind tighter than +")
	}
}

func TestPowerBindsTighterThanUnary(t *testing.T) {
	if BpPower <= BpUnary {
		t.Fatalf("** must bind tighter than unary -")
	}
}

func TestAugAssignOperatorsCoverAllCompoundTokens(t *testing.T) {
	want := []token.Kind{
		token.PlusEqual, token.MinusEqual, token.StarEqual, token.DoubleStarEqual,
		token.SlashEqual, token.DoubleSlashEqual, token.PercentEqual, token.AtEqual,
		token.AmperEqual, token.VbarEqual, token.CircumflexEqual,
		token.LeftShiftEqual, token.RightShiftEqual,
	}
	for _, k := range want {
		if !AugAssignOperators[k] {
			t.Fatalf("AugAssignOperators missing %s", k)
		}
	}
}

func TestSourceFileExtensions(t *testing.T) {
	found := map[string]bool{}
	for _, ext := range SourceFileExtensions {
		found[ext] = true
	}
	if !found[".py"] || !found[".pyi"] {
		t.Fatalf("SourceFileExtensions missing .py/.pyi: %v", SourceFileExtensions)
	}
}
