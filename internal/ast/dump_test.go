package ast

import (
	"testing"

	"github.com/emilte/ruff/internal/token"
)

func TestDumpInvalidNode(t *testing.T) {
	n := &Invalid{Base: Base{Range: token.NewRange(0, 3)}, Text: "bad"}
	out := Dump(n)
	if out == "" {
		t.Fatalf("Dump returned empty string")
	}
}

func TestDumpModuleWithStatements(t *testing.T) {
	mod := &ModModule{
		Base: Base{Range: token.NewRange(0, 10)},
		Body: []Stmt{
			&Pass{Base: Base{Range: token.NewRange(0, 4)}},
			&ExprStmt{Base: Base{Range: token.NewRange(5, 10)}, Value: &Name{Base: Base{Range: token.NewRange(5, 6)}, Id: "x", Ctx: Load}},
		},
	}
	out := Dump(mod)
	if out == "" {
		t.Fatalf("Dump returned empty string for module with statements")
	}
}
