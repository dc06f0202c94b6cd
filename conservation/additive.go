package conservation

import "github.com/katalvlaran/qrules/quantum"

// CheckAdditive reports sum(in) == sum(out).
func CheckAdditive(in, out []quantum.Fraction) bool {
	return quantum.Sum(in) == quantum.Sum(out)
}

// NewAdditiveRule returns an edge rule conserving the additive number q.
func NewAdditiveRule(name string, q quantum.EdgeQN) EdgeRule {
	input := FractionEdge(q)

	return NewEdgeRule(name, input, input, CheckAdditive)
}

// Additive conservation laws.
var (
	ChargeConservation       = NewAdditiveRule("ChargeConservation", quantum.EdgeCharge)
	BaryonNumberConservation = NewAdditiveRule("BaryonNumberConservation", quantum.EdgeBaryonNumber)
	ElectronLNConservation   = NewAdditiveRule("ElectronLNConservation", quantum.EdgeElectronLeptonNumber)
	MuonLNConservation       = NewAdditiveRule("MuonLNConservation", quantum.EdgeMuonLeptonNumber)
	TauLNConservation        = NewAdditiveRule("TauLNConservation", quantum.EdgeTauLeptonNumber)
	StrangenessConservation  = NewAdditiveRule("StrangenessConservation", quantum.EdgeStrangeness)
	CharmConservation        = NewAdditiveRule("CharmConservation", quantum.EdgeCharmness)
	BottomnessConservation   = NewAdditiveRule("BottomnessConservation", quantum.EdgeBottomness)
)
