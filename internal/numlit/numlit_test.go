package numlit

import (
	"testing"
)

func TestParseIntBases(t *testing.T) {
	cases := map[string]int64{
		"0x1A":       26,
		"0o17":       15,
		"0b101":      5,
		"1_000_000":  1000000,
		"42":         42,
	}
	for text, want := range cases {
		v, err := Parse(text, Int)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if v.Kind != Int {
			t.Fatalf("Parse(%q).Kind = %v, want Int", text, v.Kind)
		}
		if v.Int.Int64() != want {
			t.Fatalf("Parse(%q).Int = %s, want %d", text, v.Int.String(), want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	v, err := Parse("3.14", Float)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind != Float || v.Float != 3.14 {
		t.Fatalf("got %+v, want Float 3.14", v)
	}
}

func TestParseComplex(t *testing.T) {
	v, err := Parse("2.5j", Complex)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind != Complex || v.Imag != 2.5 {
		t.Fatalf("got %+v, want Complex imag 2.5", v)
	}
}

func TestParseUnderscoreSeparatorsStripped(t *testing.T) {
	v, err := Parse("1_2_3", Int)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Int.Int64() != 123 {
		t.Fatalf("got %s, want 123", v.Int.String())
	}
}

func TestParseBigIntBeyondInt64(t *testing.T) {
	// 2**100, well beyond int64 range, must round-trip through big.Int.
	v, err := Parse("1267650600228229401496703205376", Int)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Int.String() != "1267650600228229401496703205376" {
		t.Fatalf("got %s", v.Int.String())
	}
}
