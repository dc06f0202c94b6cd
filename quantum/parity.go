package quantum

import "fmt"

// Parity is an intrinsic multiplicative quantum number (P, C or G).
// The zero value Undefined marks a number that does not apply to a state,
// e.g. the C-parity of a charged meson.
type Parity int8

const (
	// Undefined marks an inapplicable parity.
	Undefined Parity = 0
	// Minus is parity -1.
	Minus Parity = -1
	// Plus is parity +1.
	Plus Parity = 1
)

// ParseParity converts ±1 to a Parity and rejects anything else.
func ParseParity(v int64) (Parity, error) {
	switch v {
	case -1:
		return Minus, nil
	case 1:
		return Plus, nil
	default:
		return Undefined, fmt.Errorf("%w: parity can only be +1 or -1, not %d", ErrInvalidValue, v)
	}
}

// Defined reports whether p is ±1.
func (p Parity) Defined() bool { return p == Minus || p == Plus }

// Int returns -1, +1 or 0 for Undefined.
func (p Parity) Int() int { return int(p) }

// Neg flips the sign; Undefined stays Undefined.
func (p Parity) Neg() Parity { return -p }

// Fraction returns the parity as ±1 (or 0).
func (p Parity) Fraction() Fraction { return Int(int64(p)) }

// String renders "+1", "-1" or "None".
func (p Parity) String() string {
	switch p {
	case Plus:
		return "+1"
	case Minus:
		return "-1"
	default:
		return "None"
	}
}

// ParityProduct multiplies all defined parities, skipping undefined ones.
func ParityProduct(values ...Parity) int {
	product := 1
	for _, p := range values {
		if p.Defined() {
			product *= p.Int()
		}
	}

	return product
}
