package evaluator

import (
	"fmt"

	"github.com/schemecore/r7scheme/pkg/types"
)

// DefaultEnvironment returns a fresh Environment preloaded with every
// primitive procedure spec.md §6 lists, plus the supplemented primitives
// and the `six` binding SPEC_FULL.md §C grounds in original_source's
// `Default for LispEnvironment` (whose own test suite evaluates
// `(* six six)` against a plain default environment).
func DefaultEnvironment() *types.Environment {
	env := types.NewEnvironment()

	env.Bind("six", types.NewNumber(types.NewRationalInt(6)))

	register(env, "+", 0, true, primAdd)
	register(env, "-", 0, true, primSub)
	register(env, "*", 0, true, primMul)
	register(env, "/", 1, true, primDiv)
	register(env, "=", 0, true, comparison("=", func(c int) bool { return c == 0 }))
	register(env, "<", 0, true, comparison("<", func(c int) bool { return c < 0 }))
	register(env, ">", 0, true, comparison(">", func(c int) bool { return c > 0 }))
	register(env, "<=", 0, true, comparison("<=", func(c int) bool { return c <= 0 }))
	register(env, ">=", 0, true, comparison(">=", func(c int) bool { return c >= 0 }))
	register(env, "cons", 2, false, primCons)

	// Supplemented primitives (SPEC_FULL.md §C.2): the minimal complement
	// that lets a program take List/DottedList values apart, not just
	// build them.
	register(env, "car", 1, false, primCar)
	register(env, "cdr", 1, false, primCdr)
	register(env, "pair?", 1, false, primPairP)
	register(env, "null?", 1, false, primNullP)
	register(env, "not", 1, false, primNot)
	register(env, "eq?", 2, false, primEqP)

	return env
}

func register(env *types.Environment, name string, required int, varargs bool, fn types.PrimitiveProcedureFunc) {
	env.Bind(name, &types.PrimitiveProcedure{Name: name, Required: required, Varargs: varargs, Fn: fn})
}

func asNumbers(args []types.Value) ([]types.Rational, error) {
	nums := make([]types.Rational, len(args))
	for i, a := range args {
		n, ok := a.(types.Number)
		if !ok {
			return nil, fmt.Errorf("Non-numeric operand: %s", a.String())
		}
		nums[i] = n.Value
	}
	return nums, nil
}

// primAdd implements `+`: sum of xs, empty → 0.
func primAdd(args []types.Value) (types.Value, error) {
	nums, err := asNumbers(args)
	if err != nil {
		return nil, err
	}
	acc := types.ZeroRational()
	for _, n := range nums {
		acc = acc.Add(n)
	}
	return types.NewNumber(acc), nil
}

// primSub implements `-`: empty → 0, a single argument `(- n)` yields
// `0 - n`, and two or more arguments subtract each later argument from the
// first.
func primSub(args []types.Value) (types.Value, error) {
	nums, err := asNumbers(args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return types.NewNumber(types.ZeroRational()), nil
	}
	if len(nums) == 1 {
		return types.NewNumber(types.ZeroRational().Sub(nums[0])), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = acc.Sub(n)
	}
	return types.NewNumber(acc), nil
}

// primMul implements `*`: product of xs, empty → 1.
func primMul(args []types.Value) (types.Value, error) {
	nums, err := asNumbers(args)
	if err != nil {
		return nil, err
	}
	acc := types.OneRational()
	for _, n := range nums {
		acc = acc.Mul(n)
	}
	return types.NewNumber(acc), nil
}

// primDiv implements `/`: one argument n → 1/n; a leading zero with more
// arguments → 0; otherwise a fold of `/` across xs. Any zero divisor after
// the first is an error.
func primDiv(args []types.Value) (types.Value, error) {
	nums, err := asNumbers(args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		r, err := types.OneRational().Quo(nums[0])
		if err != nil {
			return nil, err
		}
		return types.NewNumber(r), nil
	}
	if nums[0].IsZero() {
		return types.NewNumber(types.ZeroRational()), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc, err = acc.Quo(n)
		if err != nil {
			return nil, err
		}
	}
	return types.NewNumber(acc), nil
}

// comparison builds `=`, `<`, `>`, `<=`, `>=`: pairwise adjacent
// comparison across all operands, requiring at least two.
func comparison(name string, ok func(cmp int) bool) types.PrimitiveProcedureFunc {
	return func(args []types.Value) (types.Value, error) {
		nums, err := asNumbers(args)
		if err != nil {
			return nil, err
		}
		if len(nums) < 2 {
			if name == "=" {
				return nil, fmt.Errorf("Need at least two args to compare equality")
			}
			return nil, fmt.Errorf("Need at least two args to compare")
		}
		for i := 1; i < len(nums); i++ {
			if !ok(nums[i-1].Cmp(nums[i])) {
				return types.Boolean(false), nil
			}
		}
		return types.Boolean(true), nil
	}
}

// primCons implements `cons`: prepending onto a List keeps it a List,
// prepending onto a DottedList keeps the same tail, and anything else
// forms a fresh DottedList `(x . y)`.
func primCons(args []types.Value) (types.Value, error) {
	head, rest := args[0], args[1]
	switch r := rest.(type) {
	case types.List:
		return append(types.List{head}, r...), nil
	case types.DottedList:
		return types.DottedList{Items: append(types.List{head}, r.Items...), Tail: r.Tail}, nil
	default:
		return types.DottedList{Items: types.List{head}, Tail: rest}, nil
	}
}

func primCar(args []types.Value) (types.Value, error) {
	switch l := args[0].(type) {
	case types.List:
		if len(l) == 0 {
			return nil, fmt.Errorf("car: empty list")
		}
		return l[0], nil
	case types.DottedList:
		return l.Items[0], nil
	default:
		return nil, fmt.Errorf("Non-pair operand: %s", args[0].String())
	}
}

func primCdr(args []types.Value) (types.Value, error) {
	switch l := args[0].(type) {
	case types.List:
		if len(l) == 0 {
			return nil, fmt.Errorf("cdr: empty list")
		}
		return append(types.List{}, l[1:]...), nil
	case types.DottedList:
		if len(l.Items) == 1 {
			return l.Tail, nil
		}
		return types.DottedList{Items: append(types.List{}, l.Items[1:]...), Tail: l.Tail}, nil
	default:
		return nil, fmt.Errorf("Non-pair operand: %s", args[0].String())
	}
}

func primPairP(args []types.Value) (types.Value, error) {
	switch l := args[0].(type) {
	case types.List:
		return types.Boolean(len(l) > 0), nil
	case types.DottedList:
		return types.Boolean(true), nil
	default:
		return types.Boolean(false), nil
	}
}

func primNullP(args []types.Value) (types.Value, error) {
	l, ok := args[0].(types.List)
	return types.Boolean(ok && len(l) == 0), nil
}

func primNot(args []types.Value) (types.Value, error) {
	b, ok := args[0].(types.Boolean)
	return types.Boolean(ok && !bool(b)), nil
}

func primEqP(args []types.Value) (types.Value, error) {
	return types.Boolean(args[0].Equal(args[1])), nil
}
