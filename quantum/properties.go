package quantum

import (
	"fmt"
	"math"
)

// EdgeProperties is the raw quantum-number assignment of one edge.
// Values are int, int64, float64, Fraction, Parity or nil (explicitly undefined).
// An absent key means the number has not been assigned yet.
type EdgeProperties map[EdgeQN]any

// NodeProperties is the raw quantum-number assignment of one interaction node.
type NodeProperties map[NodeQN]any

// Clone returns a shallow copy; values are immutable so this is a deep copy in effect.
func (p EdgeProperties) Clone() EdgeProperties {
	if p == nil {
		return nil
	}
	out := make(EdgeProperties, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Has reports whether q is assigned (possibly to nil).
func (p EdgeProperties) Has(q EdgeQN) bool {
	_, ok := p[q]

	return ok
}

// Clone returns a copy of the node assignment.
func (p NodeProperties) Clone() NodeProperties {
	if p == nil {
		return nil
	}
	out := make(NodeProperties, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Has reports whether q is assigned (possibly to nil).
func (p NodeProperties) Has(q NodeQN) bool {
	_, ok := p[q]

	return ok
}

// ToFraction coerces a raw value to a Fraction.
// nil is rejected; callers decide whether a number is optional.
func ToFraction(v any) (Fraction, error) {
	switch x := v.(type) {
	case Fraction:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case int32:
		return Int(int64(x)), nil
	case Parity:
		if !x.Defined() {
			return Fraction{}, fmt.Errorf("%w: undefined parity used as number", ErrInvalidValue)
		}
		return x.Fraction(), nil
	case float64:
		return FromFloat(x)
	case float32:
		return FromFloat(float64(x))
	default:
		return Fraction{}, fmt.Errorf("%w: %T is not numeric", ErrInvalidValue, v)
	}
}

// ToInt coerces a raw value to an integer; fractional values are rejected.
func ToInt(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case Parity:
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, x)
		}
		return int64(x), nil
	case Fraction:
		n, ok := x.Int64()
		if !ok {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidValue, x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %T is not an integer", ErrInvalidValue, v)
	}
}

// ToFloat coerces a raw value to float64 (masses and widths).
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case Fraction:
		return x.Float64(), nil
	default:
		return 0, fmt.Errorf("%w: %T is not a real number", ErrInvalidValue, v)
	}
}

// ToParity coerces a raw value to a Parity. nil and a typed Undefined map
// to Undefined; a typed Parity other than ±1 is rejected.
func ToParity(v any) (Parity, error) {
	if v == nil {
		return Undefined, nil
	}
	if p, ok := v.(Parity); ok {
		if p != Undefined && !p.Defined() {
			return Undefined, fmt.Errorf("%w: parity can only be +1 or -1, not %d", ErrInvalidValue, int8(p))
		}
		return p, nil
	}
	n, err := ToInt(v)
	if err != nil {
		return Undefined, err
	}

	return ParseParity(n)
}
