// Package quantum defines the quantum-number domain model shared by every other
// qrules package: exact rational numbers, intrinsic parities, the identifiers of
// edge- and node-scoped quantum numbers, and the raw per-edge / per-node property
// maps that a decay topology carries while it is being solved.
//
// What:
//
//   - Fraction: exact rational num/den, normalized, comparable with ==, usable as a
//     map key. Spin and isospin values are multiples of 1/2, so denominators are 1
//     or 2 for every physical value; arithmetic never goes through float64.
//   - Parity: -1, +1 or Undefined (the zero value), e.g. C-parity of a pi+.
//   - EdgeQN / NodeQN: enumerations that key the raw maps and describe which
//     numbers a conservation rule reads.
//   - EdgeProperties / NodeProperties: raw maps from identifier to dynamic value
//     (int, int64, float64, Fraction, Parity or nil for "undefined").
//   - InteractionProperties: typed, user-facing view of the node numbers.
//
// Conversions:
//
//   - ToFraction, ToInt, ToFloat, ToParity coerce a raw value to the type a rule
//     asks for and return ErrInvalidValue when the value is structurally wrong.
//
// Errors:
//
//   - ErrZeroDenominator   fraction with denominator 0
//   - ErrNotRepresentable  float64 that has no exact int64 rational form
//   - ErrInvalidValue      raw value of an unsupported kind or range
//   - ErrUnknownQN         identifier name that is not an EdgeQN / NodeQN
package quantum
