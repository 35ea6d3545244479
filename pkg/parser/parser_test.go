package parser

import (
	"strings"
	"testing"

	"github.com/schemecore/r7scheme/pkg/types"
)

func mustParse(t *testing.T, text string) types.Value {
	t.Helper()
	v, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return v
}

func TestParseAtom(t *testing.T) {
	v := mustParse(t, "foo")
	if !v.Equal(types.Atom("foo")) {
		t.Errorf("got %v, want atom foo", v)
	}
}

func TestParseList(t *testing.T) {
	v := mustParse(t, "(foo bar baz)")
	want := types.List{types.Atom("foo"), types.Atom("bar"), types.Atom("baz")}
	if !v.Equal(want) {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestParseDottedList(t *testing.T) {
	v := mustParse(t, "(foo bar . baz)")
	want := types.DottedList{Items: types.List{types.Atom("foo"), types.Atom("bar")}, Tail: types.Atom("baz")}
	if !v.Equal(want) {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestParseDottedListWithListTailNormalizes(t *testing.T) {
	v := mustParse(t, "(foo . (bar baz))")
	want := types.List{types.Atom("foo"), types.Atom("bar"), types.Atom("baz")}
	if !v.Equal(want) {
		t.Errorf("got %v, want proper list %v", v, want)
	}
}

func TestParseQuote(t *testing.T) {
	v := mustParse(t, "'foo")
	want := types.List{types.Atom("quote"), types.Atom("foo")}
	if !v.Equal(want) {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestParseNumbers(t *testing.T) {
	tests := map[string]string{
		"13":      "13",
		"-6":      "-6",
		"4.0":     "4",
		"-.0":     "0",
		"-9/3":    "-3",
		"+320/4":  "80",
	}
	for text, want := range tests {
		v := mustParse(t, text)
		n, ok := v.(types.Number)
		if !ok {
			t.Fatalf("Parse(%q) = %v, want a Number", text, v)
		}
		if got := n.String(); got != want {
			t.Errorf("Parse(%q) = %s, want %s", text, got, want)
		}
	}
}

func TestParseStrings(t *testing.T) {
	v := mustParse(t, `"hello world"`)
	if !v.Equal(types.String("hello world")) {
		t.Errorf("got %v, want the string hello world", v)
	}

	v = mustParse(t, "\"foo\nbar\"")
	if !v.Equal(types.String("foo\nbar")) {
		t.Errorf("got %v, want a literal newline inside the string", v)
	}
}

func TestParseBooleans(t *testing.T) {
	tests := map[string]bool{"#t": true, "#true": true, "#f": false, "#false": false}
	for text, want := range tests {
		v := mustParse(t, text)
		if !v.Equal(types.Boolean(want)) {
			t.Errorf("Parse(%q) = %v, want %v", text, v, want)
		}
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"(+ 1", false},
		{"(+ 1 2)", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := Complete(tt.text); got != tt.want {
			t.Errorf("Complete(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := Parse("(+ 1 2")
	if err == nil {
		t.Fatal("expected an error for unterminated input")
	}
	if !strings.Contains(err.Error(), "line 1, column") {
		t.Errorf("parse error %q does not report a line/column position", err)
	}
}

func TestParseProgram(t *testing.T) {
	exprs, err := ParseProgram("(define six 6) (* six six)")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(exprs) != 2 {
		t.Fatalf("ParseProgram returned %d expressions, want 2", len(exprs))
	}
}
