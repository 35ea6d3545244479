package types

import (
	"fmt"
	"math/big"
)

// Rational is an exact ratio of arbitrary-precision signed integers, always
// kept in lowest terms with a positive denominator. See SPEC_FULL.md §A.5
// for why this is built on math/big rather than a third-party library.
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRationalInt builds the rational n/1.
func NewRationalInt(n int64) Rational {
	return normalize(big.NewInt(n), big.NewInt(1))
}

// NewRationalFrac builds the rational num/den, reduced to lowest terms.
// It errors if den is zero.
func NewRationalFrac(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("rational with zero denominator")
	}
	return normalize(big.NewInt(num), big.NewInt(den)), nil
}

// newRationalBig builds a rational from big.Int numerator/denominator.
func newRationalBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("rational with zero denominator")
	}
	return normalize(num, den), nil
}

func normalize(num, den *big.Int) Rational {
	num = new(big.Int).Set(num)
	den = new(big.Int).Set(den)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{num: big.NewInt(0), den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(big.NewInt(1)) != 0 {
		num = new(big.Int).Quo(num, g)
		den = new(big.Int).Quo(den, g)
	}
	return Rational{num: num, den: den}
}

// ZeroRational is the exact rational 0/1.
func ZeroRational() Rational { return NewRationalInt(0) }

// OneRational is the exact rational 1/1.
func OneRational() Rational { return NewRationalInt(1) }

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.num.Sign() == 0 }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.den.Cmp(big.NewInt(1)) == 0 }

func (r Rational) Add(o Rational) Rational {
	num := new(big.Int).Add(
		new(big.Int).Mul(r.num, o.den),
		new(big.Int).Mul(o.num, r.den),
	)
	den := new(big.Int).Mul(r.den, o.den)
	return normalize(num, den)
}

func (r Rational) Sub(o Rational) Rational {
	num := new(big.Int).Sub(
		new(big.Int).Mul(r.num, o.den),
		new(big.Int).Mul(o.num, r.den),
	)
	den := new(big.Int).Mul(r.den, o.den)
	return normalize(num, den)
}

func (r Rational) Mul(o Rational) Rational {
	num := new(big.Int).Mul(r.num, o.num)
	den := new(big.Int).Mul(r.den, o.den)
	return normalize(num, den)
}

// Quo divides r by o exactly, never truncating. It errors if o is zero.
func (r Rational) Quo(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("Cannot divide by zero")
	}
	num := new(big.Int).Mul(r.num, o.den)
	den := new(big.Int).Mul(r.den, o.num)
	return newRationalBig(num, den)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than o.
func (r Rational) Cmp(o Rational) int {
	left := new(big.Int).Mul(r.num, o.den)
	right := new(big.Int).Mul(o.num, r.den)
	return left.Cmp(right)
}

func (r Rational) String() string {
	if r.IsInteger() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// ParseRational parses a signed Scheme numeric literal: an integer
// ("-6"), a rational ("+320/4", reduced), or a decimal ("4.0", "-.0").
// See the `number` production in spec.md §4.3.
func ParseRational(text string) (Rational, error) {
	neg := false
	switch {
	case len(text) > 0 && text[0] == '+':
		text = text[1:]
	case len(text) > 0 && text[0] == '-':
		neg = true
		text = text[1:]
	}

	var r Rational
	switch {
	case indexByte(text, '/') >= 0:
		i := indexByte(text, '/')
		num, ok1 := new(big.Int).SetString(text[:i], 10)
		den, ok2 := new(big.Int).SetString(text[i+1:], 10)
		if !ok1 || !ok2 {
			return Rational{}, fmt.Errorf("invalid rational literal %q", text)
		}
		var err error
		r, err = newRationalBig(num, den)
		if err != nil {
			return Rational{}, err
		}
	case indexByte(text, '.') >= 0:
		i := indexByte(text, '.')
		intPart, fracPart := text[:i], text[i+1:]
		if fracPart == "" {
			return Rational{}, fmt.Errorf("invalid decimal literal %q", text)
		}
		if intPart == "" {
			intPart = "0"
		}
		digits := intPart + fracPart
		num, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			return Rational{}, fmt.Errorf("invalid decimal literal %q", text)
		}
		den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
		r = normalize(num, den)
	default:
		num, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Rational{}, fmt.Errorf("invalid integer literal %q", text)
		}
		r = normalize(num, big.NewInt(1))
	}

	if neg {
		r = r.Neg()
	}
	return r, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
