// File: interaction.go
// Role: selection of the interaction types a node may proceed through.

package solving

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/katalvlaran/qrules/particle"
	"github.com/katalvlaran/qrules/settings"
)

// Determinator narrows the interaction types of a node from its particles.
type Determinator func(in, out []particle.Particle) []settings.InteractionType

// LeptonCheck allows only WEAK when a neutrino takes part and EM or WEAK
// when another lepton does.
func LeptonCheck(in, out []particle.Particle) []settings.InteractionType {
	types := settings.AllInteractionTypes()
	for _, p := range slices.Concat(in, out) {
		if !p.IsLepton() {
			continue
		}
		if p.IsNeutrino() {
			return []settings.InteractionType{settings.Weak}
		}
		types = []settings.InteractionType{settings.EM, settings.Weak}
	}

	return types
}

// GammaCheck allows only EM when a photon takes part.
func GammaCheck(in, out []particle.Particle) []settings.InteractionType {
	for _, p := range slices.Concat(in, out) {
		if strings.Contains(p.Name, "gamma") {
			return []settings.InteractionType{settings.EM}
		}
	}

	return settings.AllInteractionTypes()
}

// DetermineInteractionTypes intersects the results of LeptonCheck and
// GammaCheck, in that order. A check that follows an empty intersection
// starts over from its own list. The result is sorted strong, em, weak.
func DetermineInteractionTypes(in, out []particle.Particle) []settings.InteractionType {
	return Determine(in, out, LeptonCheck, GammaCheck)
}

// Determine applies checks in order; see DetermineInteractionTypes.
func Determine(in, out []particle.Particle, checks ...Determinator) []settings.InteractionType {
	var types []settings.InteractionType
	for _, check := range checks {
		found := check(in, out)
		if len(types) == 0 {
			types = slices.Clone(found)
		} else {
			types = intersect(types, found)
		}
	}
	if len(checks) == 0 {
		types = settings.AllInteractionTypes()
	}
	slices.Sort(types)

	return slices.Compact(types)
}

// FilterInteractionTypes restricts valid to allowed. When the two do not
// intersect a warning is logged and valid is returned unchanged.
// A nil logger selects slog.Default.
func FilterInteractionTypes(valid, allowed []settings.InteractionType, logger *slog.Logger) []settings.InteractionType {
	if logger == nil {
		logger = slog.Default()
	}
	common := intersect(valid, allowed)
	if len(common) > 0 {
		slices.Sort(common)
		return slices.Compact(common)
	}
	logger.Warn("allowed interaction types do not intersect the valid ones, using valid list",
		"allowed", allowed,
		"valid", valid,
	)

	return slices.Clone(valid)
}

func intersect(a, b []settings.InteractionType) []settings.InteractionType {
	var out []settings.InteractionType
	for _, t := range a {
		if slices.Contains(b, t) {
			out = append(out, t)
		}
	}

	return out
}
