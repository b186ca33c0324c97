package pyparser

import (
	"testing"

	"github.com/emilte/ruff/internal/ast"
	"github.com/emilte/ruff/internal/diagnostics"
)

func parseModule(t *testing.T, src string) *ast.ModModule {
	t.Helper()
	prog := ParseString(src, ModeModule)
	if len(prog.Errors) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", src, prog.Errors)
	}
	mod, ok := prog.AST.(*ast.ModModule)
	if !ok {
		t.Fatalf("expected *ast.ModModule, got %T", prog.AST)
	}
	return mod
}

func TestArithmeticPrecedence(t *testing.T) {
	mod := parseModule(t, "x = 1 + 2 * 3\n")
	if len(mod.Body) != 1 {
		t.Fatalf("expected 1 statement, got=%d", len(mod.Body))
	}
	assign, ok := mod.Body[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", mod.Body[0])
	}
	add, ok := assign.Value.(*ast.BinOp)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("expected top-level Add BinOp, got %#v", assign.Value)
	}
	mul, ok := add.Right.(*ast.BinOp)
	if !ok || mul.Op != ast.OpMult {
		t.Fatalf("expected right operand to be a Mult BinOp (precedence), got %#v", add.Right)
	}
}

func TestUnaryBindsLooserThanPower(t *testing.T) {
	mod := parseModule(t, "x = -2 ** 2\n")
	assign := mod.Body[0].(*ast.Assign)
	neg, ok := assign.Value.(*ast.UnaryOp)
	if !ok || neg.Op != ast.OpUSub {
		t.Fatalf("expected outer UnaryOp(-), got %#v", assign.Value)
	}
	if _, ok := neg.Operand.(*ast.BinOp); !ok {
		t.Fatalf("expected -2**2 to parse as -(2**2), got operand %#v", neg.Operand)
	}
}

func TestCompareChainFolds(t *testing.T) {
	mod := parseModule(t, "x = a < b < c\n")
	assign := mod.Body[0].(*ast.Assign)
	cmp, ok := assign.Value.(*ast.Compare)
	if !ok {
		t.Fatalf("expected *ast.Compare, got %#v", assign.Value)
	}
	if len(cmp.Ops) != 2 || len(cmp.Comparators) != 2 {
		t.Fatalf("expected a single n-ary Compare with 2 ops, got ops=%d comparators=%d", len(cmp.Ops), len(cmp.Comparators))
	}
}

func TestBoolOpRunFolds(t *testing.T) {
	mod := parseModule(t, "x = a and b and c\n")
	assign := mod.Body[0].(*ast.Assign)
	b, ok := assign.Value.(*ast.BoolOp)
	if !ok || b.Op != ast.BoolAnd {
		t.Fatalf("expected a single n-ary BoolOp(and), got %#v", assign.Value)
	}
	if len(b.Values) != 3 {
		t.Fatalf("expected 3 folded operands, got=%d", len(b.Values))
	}
}

func TestConditionalExpressionRightAssociative(t *testing.T) {
	mod := parseModule(t, "x = a if c1 else b if c2 else d\n")
	assign := mod.Body[0].(*ast.Assign)
	outer, ok := assign.Value.(*ast.IfExp)
	if !ok {
		t.Fatalf("expected *ast.IfExp, got %#v", assign.Value)
	}
	if _, ok := outer.Orelse.(*ast.IfExp); !ok {
		t.Fatalf("expected the else-branch to hold the nested conditional, got %#v", outer.Orelse)
	}
}

func TestForTargetDoesNotSwallowIn(t *testing.T) {
	mod := parseModule(t, "for a, b in x:\n    pass\n")
	forStmt, ok := mod.Body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected *ast.ForStmt, got %T", mod.Body[0])
	}
	tup, ok := forStmt.Target.(*ast.Tuple)
	if !ok || len(tup.Elts) != 2 {
		t.Fatalf("expected target (a, b), got %#v", forStmt.Target)
	}
	if name, ok := forStmt.Iter.(*ast.Name); !ok || name.Id != "x" {
		t.Fatalf("expected iter to be bare name x, got %#v", forStmt.Iter)
	}
}

func TestWithParenthesizedGroupedItems(t *testing.T) {
	mod := parseModule(t, "with (a as x, b as y):\n    pass\n")
	withStmt, ok := mod.Body[0].(*ast.WithStmt)
	if !ok {
		t.Fatalf("expected *ast.WithStmt, got %T", mod.Body[0])
	}
	if len(withStmt.Items) != 2 {
		t.Fatalf("expected the parens to group 2 with-items (as present), got=%d", len(withStmt.Items))
	}
	if withStmt.Items[0].OptionalVars == nil || withStmt.Items[1].OptionalVars == nil {
		t.Fatalf("expected both items to bind an `as` target")
	}
}

func TestWithParenthesizedSingleTuple(t *testing.T) {
	mod := parseModule(t, "with (a, b):\n    pass\n")
	withStmt := mod.Body[0].(*ast.WithStmt)
	if len(withStmt.Items) != 1 {
		t.Fatalf("expected no `as` in parens to mean a single tuple context manager, got=%d items", len(withStmt.Items))
	}
	if _, ok := withStmt.Items[0].ContextExpr.(*ast.Tuple); !ok {
		t.Fatalf("expected the sole item's context expr to be a Tuple, got %#v", withStmt.Items[0].ContextExpr)
	}
}

func TestMatchStatementThreeCases(t *testing.T) {
	src := "match command:\n" +
		"    case \"go\":\n" +
		"        pass\n" +
		"    case Point(x=0, y=0):\n" +
		"        pass\n" +
		"    case [x, *rest]:\n" +
		"        pass\n"
	mod := parseModule(t, src)
	matchStmt, ok := mod.Body[0].(*ast.MatchStmt)
	if !ok {
		t.Fatalf("expected *ast.MatchStmt, got %T", mod.Body[0])
	}
	if len(matchStmt.Cases) != 3 {
		t.Fatalf("expected 3 case clauses, got=%d", len(matchStmt.Cases))
	}
	if _, ok := matchStmt.Cases[0].Pattern.(*ast.MatchValue); !ok {
		t.Fatalf("expected case 1 pattern to be MatchValue, got %#v", matchStmt.Cases[0].Pattern)
	}
	class, ok := matchStmt.Cases[1].Pattern.(*ast.MatchClass)
	if !ok || len(class.KwdAttrs) != 2 {
		t.Fatalf("expected case 2 pattern to be MatchClass with 2 keyword attrs, got %#v", matchStmt.Cases[1].Pattern)
	}
	seq, ok := matchStmt.Cases[2].Pattern.(*ast.MatchSequence)
	if !ok || len(seq.Patterns) != 2 {
		t.Fatalf("expected case 3 pattern to be a 2-element MatchSequence, got %#v", matchStmt.Cases[2].Pattern)
	}
	if _, ok := seq.Patterns[1].(*ast.MatchStar); !ok {
		t.Fatalf("expected the second sequence element to be MatchStar, got %#v", seq.Patterns[1])
	}
}

func TestMatchSoftKeywordAsOrdinaryName(t *testing.T) {
	mod := parseModule(t, "match = 5\n")
	assign, ok := mod.Body[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected `match = 5` to parse as an Assign, not a match-statement, got %T", mod.Body[0])
	}
	if name, ok := assign.Targets[0].(*ast.Name); !ok || name.Id != "match" {
		t.Fatalf("expected assignment target to be Name(match), got %#v", assign.Targets[0])
	}
}

func TestFStringConversionAndNestedFormatSpec(t *testing.T) {
	mod := parseModule(t, "x = f\"{value!r:>{width}}\"\n")
	assign := mod.Body[0].(*ast.Assign)
	fstr, ok := assign.Value.(*ast.FString)
	if !ok {
		t.Fatalf("expected *ast.FString, got %#v", assign.Value)
	}
	if len(fstr.Elements) != 1 {
		t.Fatalf("expected a single replacement field element, got=%d", len(fstr.Elements))
	}
	field, ok := fstr.Elements[0].(*ast.FStringExpressionElement)
	if !ok {
		t.Fatalf("expected *ast.FStringExpressionElement, got %#v", fstr.Elements[0])
	}
	if field.Conversion != ast.ConversionRepr {
		t.Fatalf("expected !r conversion, got %v", field.Conversion)
	}
	if len(field.FormatSpec) == 0 {
		t.Fatalf("expected a non-empty format spec")
	}
	if _, ok := field.FormatSpec[len(field.FormatSpec)-1].(*ast.FStringExpressionElement); !ok {
		t.Fatalf("expected the nested {width} field inside the format spec, got %#v", field.FormatSpec[len(field.FormatSpec)-1])
	}
}

func TestFullFeaturedFunctionSignature(t *testing.T) {
	mod := parseModule(t, "def f(a, b=1, *args, c, d=2, **kw) -> int:\n    pass\n")
	fn, ok := mod.Body[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("expected *ast.FunctionDef, got %T", mod.Body[0])
	}
	if fn.Name != "f" {
		t.Fatalf("expected function name f, got %q", fn.Name)
	}
	if len(fn.Args.Args) != 2 {
		t.Fatalf("expected 2 positional-or-keyword params, got=%d", len(fn.Args.Args))
	}
	if fn.Args.Args[1].Default == nil {
		t.Fatalf("expected b to carry a default")
	}
	if fn.Args.Vararg == nil || fn.Args.Vararg.Name != "args" {
		t.Fatalf("expected *args vararg, got %#v", fn.Args.Vararg)
	}
	if len(fn.Args.KwOnlyArgs) != 2 {
		t.Fatalf("expected 2 keyword-only params (c, d), got=%d", len(fn.Args.KwOnlyArgs))
	}
	if fn.Args.Kwarg == nil || fn.Args.Kwarg.Name != "kw" {
		t.Fatalf("expected **kw kwarg, got %#v", fn.Args.Kwarg)
	}
	if fn.Returns == nil {
		t.Fatalf("expected a return annotation")
	}
}

func TestAwaitBindsTighterThanPowerOnTheLeft(t *testing.T) {
	mod := parseModule(t, "async def f():\n    x = await a ** b\n")
	fn := mod.Body[0].(*ast.FunctionDef)
	assign := fn.Body[0].(*ast.Assign)
	pow, ok := assign.Value.(*ast.BinOp)
	if !ok || pow.Op != ast.OpPow {
		t.Fatalf("expected (await a) ** b, got %#v", assign.Value)
	}
	if _, ok := pow.Left.(*ast.Await); !ok {
		t.Fatalf("expected left operand to be Await, got %#v", pow.Left)
	}
}

func TestDelTargetContext(t *testing.T) {
	mod := parseModule(t, "del a, b.c\n")
	del, ok := mod.Body[0].(*ast.Delete)
	if !ok || len(del.Targets) != 2 {
		t.Fatalf("expected Delete with 2 targets, got %#v", mod.Body[0])
	}
	if name, ok := del.Targets[0].(*ast.Name); !ok || name.Ctx != ast.Del {
		t.Fatalf("expected first del target Ctx=Del, got %#v", del.Targets[0])
	}
}

func TestChainedAssignment(t *testing.T) {
	mod := parseModule(t, "a = b = c = 1\n")
	assign, ok := mod.Body[0].(*ast.Assign)
	if !ok || len(assign.Targets) != 3 {
		t.Fatalf("expected 3 chained targets, got %#v", mod.Body[0])
	}
	if num, ok := assign.Value.(*ast.Number); !ok || num.Text != "1" {
		t.Fatalf("expected value literal 1, got %#v", assign.Value)
	}
}

func TestSyntaxErrorsAccumulateWithoutHalting(t *testing.T) {
	prog := ParseString("def f(:\n    pass\nx = 1\n", ModeModule)
	if len(prog.Errors) == 0 {
		t.Fatalf("expected at least one diagnostic for the malformed parameter list")
	}
	mod, ok := prog.AST.(*ast.ModModule)
	if !ok {
		t.Fatalf("expected a best-effort ModModule despite errors, got %T", prog.AST)
	}
	if len(mod.Body) == 0 {
		t.Fatalf("expected the parser to keep going and produce statements after the error")
	}
}

func TestTwoSimpleStatementsWithoutSeparatorReportsE003(t *testing.T) {
	prog := ParseString("x = 1 y = 2\n", ModeModule)
	if len(prog.Errors) == 0 {
		t.Fatalf("expected a diagnostic for the missing ';'")
	}
	if prog.Errors[0].Code != diagnostics.CodeSimpleStmtsInSameLine {
		t.Fatalf("got code %s, want E003", prog.Errors[0].Code)
	}
}

func TestCompoundAfterSimpleOnSameLineReportsE004(t *testing.T) {
	prog := ParseString("x = 1 while True: pass\n", ModeModule)
	if len(prog.Errors) == 0 {
		t.Fatalf("expected a diagnostic for the compound/simple mix")
	}
	if prog.Errors[0].Code != diagnostics.CodeSimpleAndCompoundInLine {
		t.Fatalf("got code %s, want E004", prog.Errors[0].Code)
	}
}

func TestExpectAndRecoverDefersSkippedSpanAsTrailingInvalidStmt(t *testing.T) {
	prog := ParseString("f(a b)\n", ModeModule)
	if len(prog.Errors) == 0 {
		t.Fatalf("expected a diagnostic for the malformed call")
	}
	mod, ok := prog.AST.(*ast.ModModule)
	if !ok {
		t.Fatalf("expected *ast.ModModule, got %T", prog.AST)
	}
	if len(mod.Body) != 2 {
		t.Fatalf("expected the call statement plus a deferred Invalid statement, got %d: %#v", len(mod.Body), mod.Body)
	}
	exprStmt, ok := mod.Body[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected the second statement to be an ExprStmt, got %T", mod.Body[1])
	}
	if _, ok := exprStmt.Value.(*ast.Invalid); !ok {
		t.Fatalf("expected the deferred span to materialize as Expr(Invalid), got %T", exprStmt.Value)
	}
}

func TestParseStringStrictFailsOnFirstError(t *testing.T) {
	prog, err := ParseStringStrict("x = 1 y = 2\n", ModeModule)
	if err == nil {
		t.Fatalf("expected a strict error for the malformed input")
	}
	if err.Error() != prog.Errors[0].Error() {
		t.Fatalf("expected the strict error to match the first diagnostic, got %q vs %q", err, prog.Errors[0].Error())
	}
}

func TestParseStringStrictSucceedsOnCleanInput(t *testing.T) {
	prog, err := ParseStringStrict("x = 1\n", ModeModule)
	if err != nil {
		t.Fatalf("expected no error for clean input, got %v", err)
	}
	if len(prog.Errors) != 0 {
		t.Fatalf("expected no diagnostics, got %v", prog.Errors)
	}
}

func TestFStringBareLambdaReportsError(t *testing.T) {
	prog := ParseString("x = f\"{lambda: 1}\"\n", ModeModule)
	if len(prog.Errors) == 0 {
		t.Fatalf("expected a diagnostic for the non-parenthesized lambda")
	}
	if prog.Errors[0].Code != diagnostics.CodeFStringError {
		t.Fatalf("got code %s, want E014", prog.Errors[0].Code)
	}
}

func TestFStringParenthesizedLambdaReportsNoError(t *testing.T) {
	prog := ParseString("x = f\"{(lambda: 1)}\"\n", ModeModule)
	if len(prog.Errors) != 0 {
		t.Fatalf("expected no diagnostic for a parenthesized lambda, got %v", prog.Errors)
	}
}

func TestFStringDebugTextCapturesLeadingAndTrailing(t *testing.T) {
	mod := parseModule(t, "x = f\"{ value = }\"\n")
	assign := mod.Body[0].(*ast.Assign)
	fstr := assign.Value.(*ast.FString)
	field, ok := fstr.Elements[0].(*ast.FStringExpressionElement)
	if !ok {
		t.Fatalf("expected *ast.FStringExpressionElement, got %#v", fstr.Elements[0])
	}
	if field.Debug == nil {
		t.Fatalf("expected debug text to be captured for the '=' form")
	}
	if field.Debug.Leading != " " {
		t.Fatalf("expected leading text %q, got %q", " ", field.Debug.Leading)
	}
	if field.Debug.Trailing != " = " {
		t.Fatalf("expected trailing text %q, got %q", " = ", field.Debug.Trailing)
	}
}
