// File: spin_rules.go
// Role: isospin, spin and spin-magnitude conservation plus validity checks.
// Spin-coupling semantics:
//   - A single state on a side stands for itself.
//   - A two-state side couples to its total spin; with node input the total
//     must contain S, and the side is replaced by the couplings of S with L.
//   - Conservation holds when both sides share at least one state.

package conservation

import "github.com/katalvlaran/qrules/quantum"

func isIsobar(nIn, nOut int) bool {
	return (nIn == 1 && nOut == 2) || (nIn == 2 && nOut == 1)
}

// totalSpins couples one side. node may be nil for pure coupling.
func totalSpins(spins []Spin, node *SpinNodeInput) map[Spin]struct{} {
	if len(spins) == 1 {
		return map[Spin]struct{}{spins[0]: {}}
	}
	set := coupleSpinSet(spins)
	if node == nil {
		return set
	}
	s := Spin{Magnitude: node.SMagnitude, Projection: node.SProjection}
	if _, ok := set[s]; !ok {
		return map[Spin]struct{}{}
	}
	out := make(map[Spin]struct{})
	addSpinCouplings(out, s, Spin{Magnitude: node.LMagnitude, Projection: node.LProjection})

	return out
}

func checkSpinCouplings(in, out []Spin, node *SpinNodeInput) bool {
	return intersects(totalSpins(in, node), totalSpins(out, node))
}

// totalMagnitudes is the magnitude-only analogue of totalSpins.
func totalMagnitudes(mags []quantum.Fraction, node *SpinMagnitudeNodeInput) map[quantum.Fraction]struct{} {
	if len(mags) == 1 {
		return map[quantum.Fraction]struct{}{mags[0]: {}}
	}
	set := coupleMagnitudeSet(mags)
	if node == nil {
		return set
	}
	if _, ok := set[node.SMagnitude]; !ok {
		return map[quantum.Fraction]struct{}{}
	}
	out := make(map[quantum.Fraction]struct{})
	for _, j := range CoupleMagnitudes(node.SMagnitude, node.LMagnitude) {
		out[j] = struct{}{}
	}

	return out
}

// sameIntegerness reports whether the magnitude sums of both sides are both
// integer or both half-integer.
func sameIntegerness(in, out []quantum.Fraction) bool {
	return quantum.Sum(in).IsInteger() == quantum.Sum(out).IsInteger()
}

// CheckIsospinValidity reports whether the isospin state is well formed.
func CheckIsospinValidity(in IsoSpinEdgeInput) bool {
	return IsSpinValid(in.Magnitude, in.Projection)
}

// CheckSpinValidity reports whether the spin state is well formed.
func CheckSpinValidity(in SpinEdgeInput) bool {
	return IsSpinValid(in.Magnitude, in.Projection)
}

// CheckLSSpinValidity reports whether both L and S of a node are well formed.
func CheckLSSpinValidity(node SpinNodeInput) bool {
	return IsSpinValid(node.LMagnitude, node.LProjection) &&
		IsSpinValid(node.SMagnitude, node.SProjection)
}

// CheckIsospin requires equal projection sums, valid states on both sides and
// at least one total isospin reachable from both sides.
func CheckIsospin(in, out []IsoSpinEdgeInput) bool {
	var projIn, projOut quantum.Fraction
	for _, s := range in {
		projIn = projIn.Add(s.Projection)
	}
	for _, s := range out {
		projOut = projOut.Add(s.Projection)
	}
	if projIn != projOut {
		return false
	}
	toSpins := func(states []IsoSpinEdgeInput) ([]Spin, bool) {
		spins := make([]Spin, 0, len(states))
		for _, s := range states {
			if !CheckIsospinValidity(s) {
				return nil, false
			}
			spins = append(spins, Spin(s))
		}
		return spins, true
	}
	spinsIn, ok := toSpins(in)
	if !ok {
		return false
	}
	spinsOut, ok := toSpins(out)
	if !ok {
		return false
	}

	return checkSpinCouplings(spinsIn, spinsOut, nil)
}

// CheckSpin implements |S1−S2| ≤ S ≤ S1+S2 and |L−S| ≤ J ≤ L+S with
// projections for a 1→2 or 2→1 split. Other arities only require the spin
// magnitude sums of both sides to agree in integer-ness.
func CheckSpin(in, out []SpinEdgeInput, node SpinNodeInput) bool {
	if !isIsobar(len(in), len(out)) {
		return sameIntegerness(spinMagnitudes(in), spinMagnitudes(out))
	}
	toSpins := func(states []SpinEdgeInput) []Spin {
		spins := make([]Spin, len(states))
		for i, s := range states {
			spins[i] = Spin(s)
		}
		return spins
	}

	return checkSpinCouplings(toSpins(in), toSpins(out), &node)
}

// CheckSpinMagnitude is CheckSpin restricted to magnitudes.
func CheckSpinMagnitude(in, out []quantum.Fraction, node SpinMagnitudeNodeInput) bool {
	if !isIsobar(len(in), len(out)) {
		return sameIntegerness(in, out)
	}

	return intersects(totalMagnitudes(in, &node), totalMagnitudes(out, &node))
}

func spinMagnitudes(states []SpinEdgeInput) []quantum.Fraction {
	out := make([]quantum.Fraction, len(states))
	for i, s := range states {
		out[i] = s.Magnitude
	}

	return out
}

// Spin and isospin rules.
var (
	IsospinValidity     = NewEdgeElementRule("IsospinValidity", IsoSpinEdge, CheckIsospinValidity)
	SpinValidity        = NewEdgeElementRule("SpinValidity", SpinEdge, CheckSpinValidity)
	LSSpinValidity      = NewNodeElementRule("LSSpinValidity", SpinNode, CheckLSSpinValidity)
	IsospinConservation = NewEdgeRule("IsospinConservation", IsoSpinEdge, IsoSpinEdge, CheckIsospin)
	SpinConservation    = NewFullRule("SpinConservation", SpinEdge, SpinEdge, SpinNode, CheckSpin)
)

// SpinMagnitudeConservation works on magnitudes only, for the helicity formalism.
var SpinMagnitudeConservation = NewFullRule("SpinMagnitudeConservation",
	FractionEdge(quantum.EdgeSpinMagnitude), FractionEdge(quantum.EdgeSpinMagnitude),
	SpinMagnitudeNode, CheckSpinMagnitude)
