package quantum

import "errors"

var (
	// ErrZeroDenominator is returned when a Fraction is built with denominator 0.
	ErrZeroDenominator = errors.New("quantum: zero denominator")

	// ErrNotRepresentable indicates that a float64 or decimal string has no exact
	// rational form with int64 numerator and denominator.
	ErrNotRepresentable = errors.New("quantum: value not representable as fraction")

	// ErrInvalidValue indicates that a raw property value has an unsupported kind
	// (e.g. a string spin) or is out of range (e.g. parity 2).
	ErrInvalidValue = errors.New("quantum: invalid value")

	// ErrUnknownQN indicates that a quantum-number name could not be resolved.
	ErrUnknownQN = errors.New("quantum: unknown quantum number")
)
