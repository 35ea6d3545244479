package evaluator

import (
	"fmt"

	"github.com/schemecore/r7scheme/pkg/types"
)

// specialForms are the head atoms recognized as syntax rather than looked
// up and applied (spec.md §4.7).
var specialForms = map[string]bool{
	"quote": true, "if": true, "define": true, "set!": true, "lambda": true,
}

// evalList dispatches a non-empty List application: a special form when
// the head is one of the recognized atoms, general application otherwise.
func evalList(items types.List, env *types.Environment) (types.Value, *types.Environment, error) {
	if head, ok := items[0].(types.Atom); ok && specialForms[string(head)] {
		switch string(head) {
		case "quote":
			return evalQuote(items, env)
		case "if":
			return evalIf(items, env)
		case "define":
			return evalDefine(items, env)
		case "set!":
			return evalSetBang(items, env)
		case "lambda":
			return evalLambda(items, env)
		}
	}
	return evalApplication(items, env)
}

// evalQuote implements `(quote X)` → Ok(X), X returned unevaluated.
func evalQuote(items types.List, env *types.Environment) (types.Value, *types.Environment, error) {
	if len(items) != 2 {
		return nil, env, fmt.Errorf("Bad 'quote'")
	}
	return items[1], env, nil
}

// evalIf implements `(if pred conseq alt)`. Any predicate value other than
// the literal Boolean(false) takes the conseq branch.
func evalIf(items types.List, env *types.Environment) (types.Value, *types.Environment, error) {
	if len(items) != 4 {
		return nil, env, fmt.Errorf("Bad 'if'")
	}
	pred, env1, err := Eval(items[1], env)
	if err != nil {
		return nil, env1, err
	}
	if b, ok := pred.(types.Boolean); ok && !bool(b) {
		return Eval(items[3], env1)
	}
	return Eval(items[2], env1)
}

// evalDefine implements both `(define NAME VALUE-EXPR)` and
// `(define (NAME PARAMS... [. VARARGS]) BODY...)`.
func evalDefine(items types.List, env *types.Environment) (types.Value, *types.Environment, error) {
	if len(items) < 3 {
		return nil, env, fmt.Errorf("Invalid definition")
	}

	switch target := items[1].(type) {
	case types.Atom:
		if len(items) != 3 {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		val, env1, err := Eval(items[2], env)
		if err != nil {
			return nil, env1, err
		}
		newEnv := env1.Clone()
		newEnv.Bind(string(target), val)
		return val, newEnv, nil

	case types.List:
		if len(target) == 0 {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		name, ok := target[0].(types.Atom)
		if !ok {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		params, err := atomNames(target[1:])
		if err != nil {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		proc := &types.UserProcedure{Params: params, Body: items[2:], Closure: env.Clone()}
		newEnv := env.Clone()
		newEnv.Bind(string(name), proc)
		return proc, newEnv, nil

	case types.DottedList:
		if len(target.Items) == 0 {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		name, ok := target.Items[0].(types.Atom)
		if !ok {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		params, err := atomNames(target.Items[1:])
		if err != nil {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		varargs, ok := target.Tail.(types.Atom)
		if !ok {
			return nil, env, fmt.Errorf("Invalid definition")
		}
		proc := &types.UserProcedure{
			Params: params, HasVarargs: true, Varargs: string(varargs),
			Body: items[2:], Closure: env.Clone(),
		}
		newEnv := env.Clone()
		newEnv.Bind(string(name), proc)
		return proc, newEnv, nil

	default:
		return nil, env, fmt.Errorf("Invalid definition")
	}
}

// evalSetBang implements `(set! NAME VALUE-EXPR)`.
func evalSetBang(items types.List, env *types.Environment) (types.Value, *types.Environment, error) {
	if len(items) != 3 {
		return nil, env, fmt.Errorf("Invalid set!")
	}
	name, ok := items[1].(types.Atom)
	if !ok {
		return nil, env, fmt.Errorf("Invalid set!")
	}
	if !env.Defined(string(name)) {
		return nil, env, fmt.Errorf("Undefined variable: '%s'", name)
	}
	val, env1, err := Eval(items[2], env)
	if err != nil {
		return nil, env1, err
	}
	newEnv := env1.Clone()
	newEnv.Bind(string(name), val)
	return val, newEnv, nil
}

// evalLambda implements all three lambda forms in spec.md §4.7:
// fixed-arity, fixed-plus-varargs (dotted param list), and all-varargs
// (a bare identifier in place of a parameter list).
func evalLambda(items types.List, env *types.Environment) (types.Value, *types.Environment, error) {
	if len(items) < 3 {
		return nil, env, fmt.Errorf("Invalid lambda")
	}
	body := items[2:]

	switch params := items[1].(type) {
	case types.List:
		names, err := atomNames(params)
		if err != nil {
			return nil, env, fmt.Errorf("Invalid lambda")
		}
		return &types.UserProcedure{Params: names, Body: body, Closure: env.Clone()}, env, nil

	case types.DottedList:
		names, err := atomNames(params.Items)
		if err != nil {
			return nil, env, fmt.Errorf("Invalid lambda")
		}
		varargs, ok := params.Tail.(types.Atom)
		if !ok {
			return nil, env, fmt.Errorf("Invalid lambda")
		}
		return &types.UserProcedure{
			Params: names, HasVarargs: true, Varargs: string(varargs),
			Body: body, Closure: env.Clone(),
		}, env, nil

	case types.Atom:
		return &types.UserProcedure{
			HasVarargs: true, Varargs: string(params), Body: body, Closure: env.Clone(),
		}, env, nil

	default:
		return nil, env, fmt.Errorf("Invalid lambda")
	}
}

func atomNames(values []types.Value) ([]string, error) {
	names := make([]string, len(values))
	for i, v := range values {
		a, ok := v.(types.Atom)
		if !ok {
			return nil, fmt.Errorf("expected a parameter name, got %s", v.String())
		}
		names[i] = string(a)
	}
	return names, nil
}
