package evaluator

import (
	"fmt"

	"github.com/schemecore/r7scheme/pkg/types"
)

// evalApplication implements general application (spec.md §4.7, the
// "GENERAL APPLICATION" steps): resolve the head, arity-check the raw
// operands, evaluate them, then invoke.
func evalApplication(items types.List, env *types.Environment) (types.Value, *types.Environment, error) {
	proc, callEnv, err := resolveHead(items[0], env)
	if err != nil {
		return nil, callEnv, err
	}

	operands := items[1:]
	if err := checkProcArity(proc, len(operands)); err != nil {
		return nil, callEnv, err
	}

	// Operands are evaluated left to right against callEnv; per spec.md §9
	// ("argument-env threading") each sub-evaluation's own returned
	// environment is discarded at the join — only callEnv feeds the next
	// operand, so a side effect inside one argument is invisible to a
	// later argument in the same call.
	args := make([]types.Value, len(operands))
	for i, operand := range operands {
		v, _, err := Eval(operand, callEnv)
		if err != nil {
			return nil, env, err
		}
		args[i] = v
	}

	result, err := invoke(proc, callEnv, args)
	if err != nil {
		return nil, callEnv, err
	}
	return result, callEnv, nil
}

// resolveHead resolves the callee of an application. An Atom head is
// looked up directly (an unbound one is "No such function", distinct from
// the "Undefined variable" message an atom gets in operand position). Any
// other head shape is evaluated recursively; the result must be a
// procedure or it's "V is not a function".
func resolveHead(head types.Value, env *types.Environment) (types.Value, *types.Environment, error) {
	if atom, ok := head.(types.Atom); ok {
		v, err := env.Lookup(string(atom))
		if err != nil {
			return nil, env, fmt.Errorf("No such function: %s", atom)
		}
		return v, env, nil
	}

	v, env1, err := Eval(head, env)
	if err != nil {
		return nil, env1, err
	}
	switch v.(type) {
	case *types.PrimitiveProcedure, *types.UserProcedure:
		return v, env1, nil
	default:
		return nil, env1, fmt.Errorf("%s is not a function", v.String())
	}
}

func checkProcArity(proc types.Value, given int) error {
	switch p := proc.(type) {
	case *types.PrimitiveProcedure:
		return p.CheckArity(given)
	case *types.UserProcedure:
		return p.CheckArity(given)
	default:
		return fmt.Errorf("%s is not a function", proc.String())
	}
}

// invoke calls a resolved procedure with already-evaluated arguments.
func invoke(proc types.Value, callerEnv *types.Environment, args []types.Value) (types.Value, error) {
	switch p := proc.(type) {
	case *types.PrimitiveProcedure:
		return p.Fn(args)
	case *types.UserProcedure:
		return callUserProcedure(p, callerEnv, args)
	default:
		return nil, fmt.Errorf("%s is not a function", proc.String())
	}
}

// callUserProcedure follows the call protocol in spec.md §4.6: merge the
// caller's environment into the closure (the closure's bindings win —
// this is the documented shadowing quirk in spec.md §9), bind formals and
// any varargs tail, evaluate the body as a sequence, then write the
// resulting environment back into the closure so later calls to any copy
// of this same procedure see the mutation (the "counter" example).
func callUserProcedure(p *types.UserProcedure, callerEnv *types.Environment, args []types.Value) (types.Value, error) {
	callEnv := callerEnv.Merge(p.Closure)

	for i, name := range p.Params {
		callEnv.Bind(name, args[i])
	}
	if p.HasVarargs {
		rest := append(types.List{}, args[len(p.Params):]...)
		callEnv.Bind(p.Varargs, rest)
	}

	result, finalEnv, err := evalSequence(p.Body, callEnv)
	p.Closure.ReplaceWith(finalEnv)
	if err != nil {
		return nil, err
	}
	return result, nil
}
