package types

// Number is an exact rational value (see Rational for the arithmetic).
type Number struct {
	Value Rational
}

// NewNumber wraps a Rational as a Value.
func NewNumber(r Rational) Number { return Number{Value: r} }

func (n Number) String() string { return n.Value.String() }
func (n Number) Type() string   { return "number" }

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && n.Value.Cmp(o.Value) == 0
}
