// Package parser turns Scheme source text into a types.Value expression
// tree, using github.com/alecthomas/participle/v2 the same way
// oisee-psil/pkg/parser does: a lexer.MustSimple token set plus a tree of
// tagged Go structs handed to participle.MustBuild. See spec.md §4.3 for
// the grammar this implements and SPEC_FULL.md §A.1 for the one place it
// had to resolve a genuine ambiguity the PEG glosses over.
package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/schemecore/r7scheme/pkg/types"
)

// identStart is any letter or one of ! $ % & * + - . / : < = > ? @ ^ _ ~
// (spec.md §4.3). identCont is identStart or a digit.
//
// identPattern matches a full atom (identStart identCont*) EXCEPT a bare
// single ".": that token is lexically reserved for dotted-pair syntax
// (SPEC_FULL.md §A.1). A leading dot followed by at least one more
// identCont character (e.g. "...", ".foo") is still an ordinary atom.
const identPattern = `[A-Za-z!$%&*+\-/:<=>?@^_~][A-Za-z0-9!$%&*+\-./:<=>?@^_~]*` +
	`|\.[A-Za-z0-9!$%&*+\-./:<=>?@^_~]+`

// Expression is one parsed Scheme expression, matching the ordered choice
// `quoted / list / dottedList / atom / number / string / boolean` from
// spec.md §4.3. list and dottedList are unified into ListForm (see its
// doc comment) since disambiguating them needs more than ordered choice.
type Expression struct {
	Quoted *Quoted    `  @@`
	List   *ListForm  `| @@`
	Number *string    `| @Number`
	String *string    `| @String`
	Bool   *string    `| @Boolean`
	Atom   *string    `| @Ident`
}

// Quoted is `'expression`, rewritten to `(quote expression)` by ToValue.
type Quoted struct {
	Expr *Expression `"'" @@`
}

// ListForm is `(` expression* [`.` expression] `)`. A non-nil Tail makes it
// a DottedList; a nil Tail makes it a proper List. The dot, when present,
// is matched as a literal "." against the dedicated Dot token (see
// lexer.go), never as a captured Expression, so it can't be mistaken for an
// ordinary trailing atom. The grammar accepts a dot with no items before
// it, but ToValue rejects that form: a DottedList needs at least one item.
type ListForm struct {
	Items []*Expression `"(" @@*`
	Tail  *Expression   `("." @@)? ")"`
}

// entry is the top-level grammar: exactly one expression.
type entry struct {
	Expr *Expression `@@`
}

// program is zero or more top-level expressions, for parsing a whole file
// as a sequence (spec.md §4.7's "sequence" evaluation applied to a program).
type program struct {
	Exprs []*Expression `@@*`
}

var schemeParser = participle.MustBuild[entry](
	participle.Lexer(schemeLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

var schemeProgramParser = participle.MustBuild[program](
	participle.Lexer(schemeLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ToValue converts a parsed Expression into a runtime types.Value.
func (e *Expression) ToValue() (types.Value, error) {
	switch {
	case e.Quoted != nil:
		inner, err := e.Quoted.Expr.ToValue()
		if err != nil {
			return nil, err
		}
		return types.List{types.Atom("quote"), inner}, nil
	case e.List != nil:
		return e.List.ToValue()
	case e.Number != nil:
		r, err := types.ParseRational(*e.Number)
		if err != nil {
			return nil, err
		}
		return types.NewNumber(r), nil
	case e.String != nil:
		s := *e.String
		if len(s) >= 2 {
			s = s[1 : len(s)-1]
		}
		return types.String(s), nil
	case e.Bool != nil:
		return types.Boolean(*e.Bool == "#t" || *e.Bool == "#true"), nil
	case e.Atom != nil:
		return types.Atom(*e.Atom), nil
	}
	return nil, nil
}

// ToValue converts a ListForm, normalizing a DottedList whose tail is
// itself a proper List into that List with Tail's items appended
// (spec.md §4.3: "if the tail of a parsed DottedList is itself a List, the
// result is the proper List formed by appending tail's items").
func (l *ListForm) ToValue() (types.Value, error) {
	items := make(types.List, 0, len(l.Items))
	for _, item := range l.Items {
		v, err := item.ToValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}

	if l.Tail == nil {
		return items, nil
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("dotted list needs at least one item before the dot")
	}

	tail, err := l.Tail.ToValue()
	if err != nil {
		return nil, err
	}

	if inner, ok := tail.(types.List); ok {
		return append(items, inner...), nil
	}
	return types.DottedList{Items: items, Tail: tail}, nil
}
