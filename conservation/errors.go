package conservation

import "errors"

// Sentinel errors returned while building rule inputs from raw assignments.
var (
	// ErrMissingQuantumNumber indicates that a number the rule requires is not
	// assigned yet. The rule cannot be executed, which is not a violation.
	ErrMissingQuantumNumber = errors.New("conservation: missing quantum number")

	// ErrInvalidQuantumNumber indicates that an assigned value cannot be
	// coerced to the type the rule declares (e.g. a string spin or parity 2).
	ErrInvalidQuantumNumber = errors.New("conservation: invalid quantum number")
)
