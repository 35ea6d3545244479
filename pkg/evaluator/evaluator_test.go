package evaluator

import (
	"testing"

	"github.com/schemecore/r7scheme/pkg/parser"
	"github.com/schemecore/r7scheme/pkg/types"
)

// run evaluates one expression against a fresh default environment.
func run(t *testing.T, text string) types.Value {
	t.Helper()
	expr, err := parser.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	v, _, err := Eval(expr, DefaultEnvironment())
	if err != nil {
		t.Fatalf("Eval(%q): %v", text, err)
	}
	return v
}

// runProgram evaluates a sequence of top-level forms against one threaded
// environment, returning the last form's result — spec.md §8's multi-line
// scenarios.
func runProgram(t *testing.T, forms ...string) types.Value {
	t.Helper()
	env := DefaultEnvironment()
	var result types.Value
	for _, form := range forms {
		expr, err := parser.Parse(form)
		if err != nil {
			t.Fatalf("Parse(%q): %v", form, err)
		}
		v, next, err := Eval(expr, env)
		if err != nil {
			t.Fatalf("Eval(%q): %v", form, err)
		}
		result, env = v, next
	}
	return result
}

func TestBasicArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"(+ 1 1)", "2"},
		{"(/ (+ 4 2) 2)", "3"},
		{"(- 3 -1)", "4"},
	}
	for _, tt := range tests {
		got := run(t, tt.expr).String()
		if got != tt.want {
			t.Errorf("%s = %s, want %s", tt.expr, got, tt.want)
		}
	}
}

func TestSixBinding(t *testing.T) {
	got := run(t, "(* six six)").String()
	if got != "36" {
		t.Errorf("(* six six) = %s, want 36", got)
	}
}

func TestDefineAndReference(t *testing.T) {
	got := runProgram(t, "(define foo 3)", "(define bar foo)", "bar")
	if got.String() != "3" {
		t.Errorf("bar = %s, want 3", got.String())
	}
}

func TestSetBang(t *testing.T) {
	got := runProgram(t, `(define mew "cat")`, `(set! mew "kitten")`, "mew")
	if got.String() != `"kitten"` {
		t.Errorf("mew = %s, want \"kitten\"", got.String())
	}
}

func TestSetBangUndefined(t *testing.T) {
	_, err := evalString(t, "(set! nope 1)")
	if err == nil {
		t.Fatal("expected set! of an undefined name to error")
	}
}

func evalString(t *testing.T, text string) (types.Value, error) {
	t.Helper()
	expr, err := parser.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	v, _, err := Eval(expr, DefaultEnvironment())
	return v, err
}

func TestIf(t *testing.T) {
	got := run(t, `(if (= 2 3) "yay" 'boo)`)
	if !got.Equal(types.Atom("boo")) {
		t.Errorf("got %v, want atom boo", got)
	}

	got = run(t, `(if (= 2 2 2 2) "yay" 'boo)`)
	if !got.Equal(types.String("yay")) {
		t.Errorf("got %v, want \"yay\"", got)
	}
}

func TestVariadicDefine(t *testing.T) {
	got := runProgram(t, "(define (list . xs) xs)", "(list 1 2)")
	want := types.List{types.NewNumber(types.NewRationalInt(1)), types.NewNumber(types.NewRationalInt(2))}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIfProducedProcedureHead(t *testing.T) {
	got := run(t, "((if 2 - +) 2 1)")
	if got.String() != "1" {
		t.Errorf("got %s, want 1", got.String())
	}
}

func TestCounterClosure(t *testing.T) {
	env := DefaultEnvironment()
	forms := []string{
		"(define (counter inc) (lambda (x) (define inc (+ x inc)) inc))",
		"(define my-count (counter 5))",
		"(my-count 4)",
		"(my-count 4)",
	}
	var result types.Value
	for _, form := range forms {
		expr, err := parser.Parse(form)
		if err != nil {
			t.Fatalf("Parse(%q): %v", form, err)
		}
		v, next, err := Eval(expr, env)
		if err != nil {
			t.Fatalf("Eval(%q): %v", form, err)
		}
		result, env = v, next
	}
	if result.String() != "13" {
		t.Errorf("second (my-count 4) = %s, want 13", result.String())
	}
}

func TestFactorial(t *testing.T) {
	got := runProgram(t,
		"(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))",
		"(fact 6)",
	)
	if got.String() != "720" {
		t.Errorf("(fact 6) = %s, want 720", got.String())
	}
}

func TestNonNumericOperand(t *testing.T) {
	_, err := evalString(t, `(+ 1 "two")`)
	if err == nil {
		t.Fatal("expected a non-numeric operand to error")
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := evalString(t, "(/ 1 0)")
	if err == nil {
		t.Fatal("expected division by zero to error")
	}
}

func TestComparisonNeedsTwoArgs(t *testing.T) {
	_, err := evalString(t, "(< 1)")
	if err == nil {
		t.Fatal("expected a single-argument comparison to error")
	}
}

func TestUnboundIdentifier(t *testing.T) {
	_, err := evalString(t, "nope")
	if err == nil {
		t.Fatal("expected lookup of an unbound identifier to error")
	}
}

func TestNoSuchFunction(t *testing.T) {
	_, err := evalString(t, "(nope 1 2)")
	if err == nil {
		t.Fatal("expected an unbound callee to error")
	}
}

func TestNotAFunction(t *testing.T) {
	_, err := evalString(t, "(1 2 3)")
	if err == nil {
		t.Fatal("expected calling a non-procedure to error")
	}
}

func TestConsVariants(t *testing.T) {
	got := run(t, "(cons 1 (quote (2 3)))")
	want := types.List{
		types.NewNumber(types.NewRationalInt(1)),
		types.NewNumber(types.NewRationalInt(2)),
		types.NewNumber(types.NewRationalInt(3)),
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = run(t, "(cons 1 2)")
	wantDotted := types.DottedList{
		Items: types.List{types.NewNumber(types.NewRationalInt(1))},
		Tail:  types.NewNumber(types.NewRationalInt(2)),
	}
	if !got.Equal(wantDotted) {
		t.Errorf("got %v, want %v", got, wantDotted)
	}
}

func TestCarCdrPairNull(t *testing.T) {
	if got := run(t, "(car (quote (1 2 3)))").String(); got != "1" {
		t.Errorf("car = %s, want 1", got)
	}
	if got := run(t, "(cdr (quote (1 2 3)))").String(); got != "(2 3)" {
		t.Errorf("cdr = %s, want (2 3)", got)
	}
	if got := run(t, "(pair? (quote (1 2)))"); !got.Equal(types.Boolean(true)) {
		t.Errorf("pair? = %v, want #t", got)
	}
	if got := run(t, "(null? (quote ()))"); !got.Equal(types.Boolean(true)) {
		t.Errorf("null? = %v, want #t", got)
	}
}
