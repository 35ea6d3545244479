// Package types defines the core value model for the Scheme core: the
// tagged sum of runtime values, its printer, the numeric tower, procedures,
// and the environment they are evaluated against.
package types

import "strings"

// Value is the interface every Scheme runtime value implements.
type Value interface {
	// String returns the value's canonical external representation.
	String() string
	// Type returns the type name used in error messages.
	Type() string
	// Equal reports structural equality with another value. Primitive
	// procedures compare by name, and a user procedure is equal only to
	// itself (see Equal on PrimitiveProcedure and UserProcedure).
	Equal(other Value) bool
}

// Atom is a symbol: an identifier treated as a value.
type Atom string

func (a Atom) String() string { return string(a) }
func (a Atom) Type() string   { return "symbol" }

func (a Atom) Equal(other Value) bool {
	o, ok := other.(Atom)
	return ok && a == o
}

// List is a proper list of values.
type List []Value

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (l List) Type() string { return "list" }

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i, v := range l {
		if !v.Equal(o[i]) {
			return false
		}
	}
	return true
}

// DottedList is an improper list: Items is non-empty, and the parser never
// produces one whose Tail is a List (it appends such a tail's items to
// Items instead). A DottedList tail is kept as-is, so `(a . (b . c))`
// parses to a DottedList whose Tail is itself a DottedList.
type DottedList struct {
	Items List
	Tail  Value
}

func (d DottedList) String() string {
	parts := make([]string, len(d.Items))
	for i, v := range d.Items {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, " ") + " . " + d.Tail.String() + ")"
}

func (d DottedList) Type() string { return "dotted-list" }

func (d DottedList) Equal(other Value) bool {
	o, ok := other.(DottedList)
	if !ok {
		return false
	}
	return List(d.Items).Equal(List(o.Items)) && d.Tail.Equal(o.Tail)
}

// String represents a string value.
type String string

func (s String) String() string { return `"` + string(s) + `"` }
func (s String) Type() string   { return "string" }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

// Boolean represents #t / #f.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (b Boolean) Type() string { return "boolean" }

func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}

// EmptyList is the canonical value of `()`.
var EmptyList = List{}
