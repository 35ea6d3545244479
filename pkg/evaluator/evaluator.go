// Package evaluator implements the tree-walking evaluator described in
// spec.md §4.7: special-form dispatch, application, and the
// value-passing (Result, Env) discipline threaded through every step.
package evaluator

import (
	"fmt"

	"github.com/schemecore/r7scheme/pkg/types"
)

// Eval reduces expr against env, returning the result value and the
// environment to thread forward into the next evaluation (spec.md §4.7,
// §6's `eval(expression, env) → (Result, env')`).
func Eval(expr types.Value, env *types.Environment) (types.Value, *types.Environment, error) {
	switch e := expr.(type) {
	case types.Atom:
		v, err := env.Lookup(string(e))
		if err != nil {
			return nil, env, err
		}
		return v, env, nil

	case types.Number, types.String, types.Boolean,
		*types.PrimitiveProcedure, *types.UserProcedure:
		return expr, env, nil

	case types.List:
		if len(e) == 0 {
			return types.EmptyList, env, nil
		}
		return evalList(e, env)

	case types.DottedList:
		// "DottedList is applied by dispatching on its head items (tail is
		// ignored for call purposes but preserved by the parser)." — §4.7
		return evalApplication(e.Items, env)

	default:
		return nil, env, fmt.Errorf("cannot evaluate %s", expr.Type())
	}
}

// evalSequence evaluates exprs in order, threading env forward, and
// returns the final expression's result — spec.md §4.7's "sequence"
// evaluation, used for procedure bodies and multi-form programs. An empty
// sequence evaluates to the empty list. A mid-sequence error returns
// immediately with the partially-threaded environment (spec.md §7), so a
// host can keep whatever side effects already happened.
func evalSequence(exprs []types.Value, env *types.Environment) (types.Value, *types.Environment, error) {
	result := types.Value(types.EmptyList)
	current := env
	for _, expr := range exprs {
		v, next, err := Eval(expr, current)
		if err != nil {
			return nil, next, err
		}
		result, current = v, next
	}
	return result, current, nil
}

// EvalSequence is the exported form of evalSequence, for hosts that need
// to evaluate a whole program (a sequence of top-level forms) against one
// environment, threading it across forms the way a REPL does.
func EvalSequence(exprs []types.Value, env *types.Environment) (types.Value, *types.Environment, error) {
	return evalSequence(exprs, env)
}
