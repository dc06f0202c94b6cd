package conservation

import (
	"slices"
	"strings"
)

// All returns every parameter-free rule, sorted by name.
// MassConservation is parameterized and built with NewMassConservation.
func All() []Rule {
	rules := []Rule{
		ChargeConservation,
		BaryonNumberConservation,
		ElectronLNConservation,
		MuonLNConservation,
		TauLNConservation,
		StrangenessConservation,
		CharmConservation,
		BottomnessConservation,
		IsospinConservation,
		IdenticalParticleSymmetrization,
		HelicityConservation,
		ParityConservation,
		ParityConservationHelicity,
		CParityConservation,
		GParityConservation,
		SpinConservation,
		SpinMagnitudeConservation,
		ClebschGordanHelicityToCanonical,
		GellMannNishijima,
		IsospinValidity,
		SpinValidity,
		LSSpinValidity,
	}
	slices.SortFunc(rules, func(a, b Rule) int { return strings.Compare(a.Name(), b.Name()) })

	return rules
}

// Lookup finds a parameter-free rule by name.
func Lookup(name string) (Rule, bool) {
	for _, r := range All() {
		if r.Name() == name {
			return r, true
		}
	}

	return nil, false
}
