// File: spin.go
// Role: angular-momentum helpers shared by the spin and isospin rules.
// Determinism:
//   - Coupling results are returned sorted by (Magnitude, Projection).
// Complexity:
//   - SpinCouplings: O(j1+j2). CoupleSpins over n spins: O(n·k²) with k the
//     size of the intermediate set.

package conservation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qrules/quantum"
)

// Spin is an angular-momentum state |j, m⟩.
type Spin struct {
	Magnitude  quantum.Fraction
	Projection quantum.Fraction
}

// String renders "(3/2, -1/2)".
func (s Spin) String() string {
	return fmt.Sprintf("(%s, %s)", s.Magnitude, s.Projection.SignedString())
}

func compareSpins(a, b Spin) int {
	if c := a.Magnitude.Cmp(b.Magnitude); c != 0 {
		return c
	}

	return a.Projection.Cmp(b.Projection)
}

func sortedSpins(set map[Spin]struct{}) []Spin {
	out := make([]Spin, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.SortFunc(out, compareSpins)

	return out
}

// IsSpinValid reports whether (magnitude, projection) is a well-formed state:
// magnitude is a multiple of 1/2, |projection| ≤ magnitude and
// projection − magnitude is an integer. A negative magnitude fails the
// second condition.
func IsSpinValid(magnitude, projection quantum.Fraction) bool {
	if !magnitude.IsHalfInteger() {
		return false
	}
	if magnitude.Less(projection.Abs()) {
		return false
	}

	return projection.Sub(magnitude).IsInteger()
}

// IsClebschGordanZero reports whether ⟨j1 m1; j2 m2 | J M⟩ vanishes
// analytically by one of the symmetry selection rules:
//
//	(j1 == j2 && m1 == m2) || (m1 == 0 && m2 == 0), with |J − j1 − j2| odd
//	j1 == J && m1 == −M, with |j2 − j1 − J| odd
//	j2 == J && m2 == −M, with |j1 − j2 − J| odd
func IsClebschGordanZero(s1, s2, coupled Spin) bool {
	j1, m1 := s1.Magnitude, s1.Projection
	j2, m2 := s2.Magnitude, s2.Projection
	j, m := coupled.Magnitude, coupled.Projection

	if ((j1 == j2 && m1 == m2) || (m1.IsZero() && m2.IsZero())) &&
		j.Sub(j1).Sub(j2).Abs().IsOddInteger() {
		return true
	}
	if j1 == j && m1 == m.Neg() && j2.Sub(j1).Sub(j).Abs().IsOddInteger() {
		return true
	}

	return j2 == j && m2 == m.Neg() && j1.Sub(j2).Sub(j).Abs().IsOddInteger()
}

// SpinCouplings returns the states |J, m1+m2⟩ reachable by coupling s1 and s2:
// J runs over |j1−j2| … j1+j2 in integer steps, J ≥ |m1+m2|, and states with
// an analytically vanishing Clebsch–Gordan coefficient are excluded.
func SpinCouplings(s1, s2 Spin) []Spin {
	set := make(map[Spin]struct{})
	addSpinCouplings(set, s1, s2)

	return sortedSpins(set)
}

func addSpinCouplings(dst map[Spin]struct{}, s1, s2 Spin) {
	m := s1.Projection.Add(s2.Projection)
	lo := s1.Magnitude.Sub(s2.Magnitude).Abs()
	hi := s1.Magnitude.Add(s2.Magnitude)
	for j := lo; !hi.Less(j); j = j.Add(quantum.Int(1)) {
		if j.Less(m.Abs()) {
			continue
		}
		c := Spin{Magnitude: j, Projection: m}
		if IsClebschGordanZero(s1, s2, c) {
			continue
		}
		dst[c] = struct{}{}
	}
}

// CoupleSpins folds SpinCouplings over the list left to right and returns every
// total state reachable from all spins. A single spin is returned as is.
func CoupleSpins(spins []Spin) []Spin {
	return sortedSpins(coupleSpinSet(spins))
}

func coupleSpinSet(spins []Spin) map[Spin]struct{} {
	set := make(map[Spin]struct{})
	if len(spins) == 0 {
		return set
	}
	set[spins[0]] = struct{}{}
	for _, next := range spins[1:] {
		acc := make(map[Spin]struct{})
		for s := range set {
			addSpinCouplings(acc, s, next)
		}
		set = acc
	}

	return set
}

// CoupleMagnitudes returns |j1−j2| … j1+j2 in integer steps.
func CoupleMagnitudes(j1, j2 quantum.Fraction) []quantum.Fraction {
	lo := j1.Sub(j2).Abs()
	hi := j1.Add(j2)
	var out []quantum.Fraction
	for j := lo; !hi.Less(j); j = j.Add(quantum.Int(1)) {
		out = append(out, j)
	}

	return out
}

func coupleMagnitudeSet(mags []quantum.Fraction) map[quantum.Fraction]struct{} {
	set := make(map[quantum.Fraction]struct{})
	if len(mags) == 0 {
		return set
	}
	set[mags[0]] = struct{}{}
	for _, next := range mags[1:] {
		acc := make(map[quantum.Fraction]struct{})
		for ref := range set {
			for _, j := range CoupleMagnitudes(next, ref) {
				acc[j] = struct{}{}
			}
		}
		set = acc
	}

	return set
}

func intersects[K comparable](a, b map[K]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}

	return false
}

// CoupleAllMagnitudes folds CoupleMagnitudes over the list and returns the
// reachable total magnitudes in ascending order.
func CoupleAllMagnitudes(mags []quantum.Fraction) []quantum.Fraction {
	set := coupleMagnitudeSet(mags)
	out := make([]quantum.Fraction, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	slices.SortFunc(out, quantum.Fraction.Cmp)

	return out
}
