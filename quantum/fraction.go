// File: fraction.go
// Role: exact rational arithmetic for spins, isospins and additive numbers.
// Determinism:
//   - Every constructor normalizes (gcd-reduced, positive denominator), so two equal
//     values are always == and hash identically as map keys.
// Concurrency:
//   - Fraction is an immutable value type.

package quantum

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Fraction is an exact rational number num/den.
//
// The zero value is 0. For num == 0 the stored denominator is kept at 0 so that
// Fraction{} and Int(0) compare equal; Den() still reports 1.
// Overflow of int64 intermediates is not checked: physical values stay tiny.
type Fraction struct {
	num int64
	den int64
}

// NewFraction returns num/den in normalized form.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}

	return normalize(num, den), nil
}

// MustFraction is like NewFraction but panics on a zero denominator.
// Intended for constants and tests.
func MustFraction(num, den int64) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("quantum: MustFraction(%d, %d): %v", num, den, err))
	}

	return f
}

// Int returns the integer n as a Fraction.
func Int(n int64) Fraction { return normalize(n, 1) }

// Half returns n/2, the natural unit of spin domains.
func Half(n int64) Fraction { return normalize(n, 2) }

// FromFloat converts f to its exact rational value.
// 0.5 becomes 1/2; 0.1 becomes its exact binary expansion, which is
// not a multiple of 1/2 (and may not fit int64, yielding ErrNotRepresentable).
func FromFloat(f float64) (Fraction, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fraction{}, fmt.Errorf("%w: %v", ErrNotRepresentable, f)
	}
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return Fraction{}, fmt.Errorf("%w: %v", ErrNotRepresentable, f)
	}

	return fromRat(r, strconv.FormatFloat(f, 'g', -1, 64))
}

// ParseFraction accepts "3/2", "1.5", "-1" and similar decimal or ratio forms.
func ParseFraction(s string) (Fraction, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidValue, s)
	}

	return fromRat(r, s)
}

func fromRat(r *big.Rat, repr string) (Fraction, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Fraction{}, fmt.Errorf("%w: %s", ErrNotRepresentable, repr)
	}

	return normalize(r.Num().Int64(), r.Denom().Int64()), nil
}

// normalize reduces num/den and moves the sign to the numerator.
func normalize(num, den int64) Fraction {
	if num == 0 {
		return Fraction{}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)

	return Fraction{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// Num returns the numerator of the normalized fraction.
func (f Fraction) Num() int64 { return f.num }

// Den returns the (positive) denominator of the normalized fraction.
func (f Fraction) Den() int64 {
	if f.den == 0 {
		return 1
	}

	return f.den
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	return normalize(f.num*g.Den()+g.num*f.Den(), f.Den()*g.Den())
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction { return f.Add(g.Neg()) }

// Neg returns -f.
func (f Fraction) Neg() Fraction { return Fraction{num: -f.num, den: f.den} }

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	return normalize(f.num*g.num, f.Den()*g.Den())
}

// MulInt returns f * n.
func (f Fraction) MulInt(n int64) Fraction { return normalize(f.num*n, f.Den()) }

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	if f.num < 0 {
		return f.Neg()
	}

	return f
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	l, r := f.num*g.Den(), g.num*f.Den()
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Less reports f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports f == 0.
func (f Fraction) IsZero() bool { return f.num == 0 }

// IsInteger reports whether the denominator is 1.
func (f Fraction) IsInteger() bool { return f.Den() == 1 }

// IsHalfInteger reports whether f is a multiple of 1/2 (denominator 1 or 2).
func (f Fraction) IsHalfInteger() bool { return f.Den() <= 2 }

// IsOddInteger reports whether f is an integer and odd.
func (f Fraction) IsOddInteger() bool { return f.IsInteger() && f.num%2 != 0 }

// Int64 returns the integer value of f; ok is false when f is not an integer.
func (f Fraction) Int64() (int64, bool) {
	if !f.IsInteger() {
		return 0, false
	}

	return f.num, true
}

// Float64 returns the nearest float64 value of f.
func (f Fraction) Float64() float64 { return float64(f.num) / float64(f.Den()) }

// SignPower returns (-1)^f; ok is false when f is not an integer exponent.
func (f Fraction) SignPower() (int, bool) {
	n, ok := f.Int64()
	if !ok {
		return 0, false
	}
	if n%2 == 0 {
		return 1, true
	}

	return -1, true
}

// String renders "3/2", "-1", "0".
func (f Fraction) String() string {
	if f.IsInteger() {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Den(), 10)
}

// SignedString renders positive values with an explicit plus sign ("+1/2").
func (f Fraction) SignedString() string {
	if f.num > 0 {
		return "+" + f.String()
	}

	return f.String()
}

// Sum adds up all values.
func Sum(values []Fraction) Fraction {
	var total Fraction
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}
