package types

import (
	"fmt"
	"strings"
)

// PrimitiveProcedureFunc is the native implementation behind a
// PrimitiveProcedure. Primitives never receive or mutate the environment
// (spec.md §4.5): they are pure functions over their already-evaluated
// argument list.
type PrimitiveProcedureFunc func(args []Value) (Value, error)

// PrimitiveProcedure is a native function with arity metadata.
type PrimitiveProcedure struct {
	Name     string
	Required int
	Varargs  bool
	Fn       PrimitiveProcedureFunc
}

func (p *PrimitiveProcedure) String() string {
	return fmt.Sprintf("<primitive function:(%s)>", paramList(p.Required, p.Varargs, "args"))
}

func (p *PrimitiveProcedure) Type() string { return "primitive-procedure" }

func (p *PrimitiveProcedure) Equal(other Value) bool {
	o, ok := other.(*PrimitiveProcedure)
	return ok && p.Name == o.Name
}

// CheckArity rejects calls with too few or (for non-variadic procedures)
// too many arguments, with the exact messages spec.md §4.5/§7 specify.
func (p *PrimitiveProcedure) CheckArity(given int) error {
	return checkArity(given, p.Required, p.Varargs)
}

// UserProcedure is a closure: formal parameters, an optional variadic tail,
// a body, and the environment captured at its definition site.
//
// Closure is a pointer so that, per spec.md §4.6/§9, every value-level copy
// of the same procedure observes the same post-call mutation: the
// evaluator's callUserProcedure replaces the closure's bindings (via
// ReplaceWith) with the environment produced by evaluating the body, and
// any other UserProcedure sharing that pointer sees the update on its next
// call.
type UserProcedure struct {
	Params     []string
	Varargs    string
	HasVarargs bool
	Body       []Value
	Closure    *Environment
}

func (u *UserProcedure) String() string {
	names := append([]string(nil), u.Params...)
	if u.HasVarargs {
		names = append(names, u.Varargs+"...")
	}
	return fmt.Sprintf("<function:(%s)>", strings.Join(names, ", "))
}

func (u *UserProcedure) Type() string { return "user-procedure" }

// Equal follows spec.md §3: two distinct user procedures are never equal,
// even with identical parameters and bodies.
func (u *UserProcedure) Equal(other Value) bool {
	o, ok := other.(*UserProcedure)
	return ok && u == o
}

// CheckArity rejects calls with too few or (without varargs) too many
// arguments.
func (u *UserProcedure) CheckArity(given int) error {
	return checkArity(given, len(u.Params), u.HasVarargs)
}

func checkArity(given, required int, varargs bool) error {
	if given < required {
		if varargs {
			return fmt.Errorf("Not enough args (%d for at least %d)", given, required)
		}
		return fmt.Errorf("Not enough args (%d for %d)", given, required)
	}
	if given > required && !varargs {
		return fmt.Errorf("Too many args (%d for %d)", given, required)
	}
	return nil
}

func paramList(required int, hasVarargs bool, varargsName string) string {
	names := make([]string, required)
	for i := range names {
		names[i] = fmt.Sprintf("a%d", i+1)
	}
	if hasVarargs {
		if varargsName == "" {
			varargsName = "rest"
		}
		names = append(names, varargsName+"...")
	}
	return strings.Join(names, ", ")
}
