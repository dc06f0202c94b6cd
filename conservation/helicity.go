package conservation

import "github.com/katalvlaran/qrules/quantum"

// CheckHelicity implements |λ1 − λ2| ≤ S for a 1→2 split, where S is the
// mother spin and λ the daughter helicities. The bound is necessary but not
// sufficient. Other arities pass.
func CheckHelicity(inMagnitudes, outHelicities []quantum.Fraction) bool {
	if len(inMagnitudes) != 1 || len(outHelicities) != 2 {
		return true
	}
	diff := outHelicities[0].Sub(outHelicities[1]).Abs()

	return !inMagnitudes[0].Less(diff)
}

// CheckClebschGordanHelicityToCanonical checks that a helicity amplitude of a
// 1→2 split can be expressed in the canonical (L, S) basis:
//
//   - λ1 − λ2 must equal the node's S projection;
//   - |S, λ1−λ2⟩ and |J, λ1−λ2⟩ must be valid states;
//   - ⟨s1 λ1; s2 −λ2 | S λ1−λ2⟩ and ⟨L Lz; S λ1−λ2 | J λ1−λ2⟩ must not vanish.
//
// Coupling of the magnitudes is left to CheckSpinMagnitude. Other arities pass.
func CheckClebschGordanHelicityToCanonical(in, out []SpinEdgeInput, node SpinNodeInput) bool {
	if len(in) != 1 || len(out) != 2 {
		return true
	}
	daughter1 := Spin{Magnitude: out[0].Magnitude, Projection: out[0].Projection}
	daughter2 := Spin{Magnitude: out[1].Magnitude, Projection: out[1].Projection.Neg()}

	diff := daughter1.Projection.Add(daughter2.Projection)
	if diff != node.SProjection {
		return false
	}
	coupled := Spin{Magnitude: node.SMagnitude, Projection: diff}
	if !IsSpinValid(coupled.Magnitude, coupled.Projection) {
		return false
	}
	parent := Spin{Magnitude: in[0].Magnitude, Projection: diff}
	if !IsSpinValid(parent.Magnitude, parent.Projection) {
		return false
	}
	if IsClebschGordanZero(daughter1, daughter2, coupled) {
		return false
	}
	orbital := Spin{Magnitude: node.LMagnitude, Projection: node.LProjection}

	return !IsClebschGordanZero(orbital, coupled, parent)
}

// HelicityConservation reads the mother spin magnitude and daughter helicities.
var HelicityConservation = NewEdgeRule("HelicityConservation",
	FractionEdge(quantum.EdgeSpinMagnitude), FractionEdge(quantum.EdgeSpinProjection),
	CheckHelicity)

// ClebschGordanHelicityToCanonical bridges helicity and canonical amplitudes.
var ClebschGordanHelicityToCanonical = NewFullRule("ClebschGordanHelicityToCanonical",
	SpinEdge, SpinEdge, SpinNode, CheckClebschGordanHelicityToCanonical)
