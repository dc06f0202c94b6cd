// File: rules.go
// Role: rule sets and the static evaluation priorities.
// Determinism:
//   - Names/Rules are sorted by name; Ordered sorts by descending priority,
//     then name, with unprioritized rules last.

package settings

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/qrules/conservation"
)

// conservationLawPriorities orders node rules; higher runs first.
var conservationLawPriorities = map[string]int{
	"MassConservation":                10,
	"ElectronLNConservation":          45,
	"MuonLNConservation":              44,
	"TauLNConservation":               43,
	"BaryonNumberConservation":        90,
	"StrangenessConservation":         69,
	"CharmConservation":               70,
	"BottomnessConservation":          68,
	"ChargeConservation":              100,
	"SpinConservation":                8,
	"SpinMagnitudeConservation":       8,
	"ParityConservation":              6,
	"CParityConservation":             5,
	"GParityConservation":             3,
	"IsospinConservation":             60,
	"LSSpinValidity":                  89,
	"HelicityConservation":            7,
	"ParityConservationHelicity":      4,
	"IdenticalParticleSymmetrization": 2,
}

// edgeRulePriorities orders the single-edge validity rules.
var edgeRulePriorities = map[string]int{
	"GellMannNishijima": 50,
	"IsospinValidity":   61,
	"SpinValidity":      62,
}

// ConservationLawPriorities returns a copy of the node rule priorities.
func ConservationLawPriorities() map[string]int { return maps.Clone(conservationLawPriorities) }

// EdgeRulePriorities returns a copy of the edge rule priorities.
func EdgeRulePriorities() map[string]int { return maps.Clone(edgeRulePriorities) }

// RuleSet is an immutable set of rules keyed by name.
// The zero value is an empty set.
type RuleSet struct {
	rules map[string]conservation.Rule
}

// NewRuleSet builds a set; a later rule replaces an earlier one of the same name.
func NewRuleSet(rules ...conservation.Rule) RuleSet {
	return RuleSet{}.With(rules...)
}

// With returns a new set holding s plus rules. s is left unchanged.
func (s RuleSet) With(rules ...conservation.Rule) RuleSet {
	out := RuleSet{rules: make(map[string]conservation.Rule, len(s.rules)+len(rules))}
	maps.Copy(out.rules, s.rules)
	for _, r := range rules {
		out.rules[r.Name()] = r
	}

	return out
}

// Has reports whether a rule of that name is in the set.
func (s RuleSet) Has(name string) bool {
	_, ok := s.rules[name]

	return ok
}

// Get returns the rule of that name.
func (s RuleSet) Get(name string) (conservation.Rule, bool) {
	r, ok := s.rules[name]

	return r, ok
}

// Len returns the number of rules.
func (s RuleSet) Len() int { return len(s.rules) }

// Names returns the rule names in ascending order.
func (s RuleSet) Names() []string {
	return slices.Sorted(maps.Keys(s.rules))
}

// Rules returns the rules sorted by name.
func (s RuleSet) Rules() []conservation.Rule {
	out := make([]conservation.Rule, 0, len(s.rules))
	for _, name := range s.Names() {
		out = append(out, s.rules[name])
	}

	return out
}

// IsSubsetOf reports whether every rule of s is in other.
func (s RuleSet) IsSubsetOf(other RuleSet) bool {
	for name := range s.rules {
		if !other.Has(name) {
			return false
		}
	}

	return true
}

// IsStrictSubsetOf reports s ⊂ other.
func (s RuleSet) IsStrictSubsetOf(other RuleSet) bool {
	return s.IsSubsetOf(other) && s.Len() < other.Len()
}

// Ordered returns the rules by descending priority, ties broken by name.
// Rules without a priority come last.
func (s RuleSet) Ordered(priorities map[string]int) []conservation.Rule {
	out := s.Rules()
	slices.SortStableFunc(out, func(a, b conservation.Rule) int {
		pa, okA := priorities[a.Name()]
		pb, okB := priorities[b.Name()]
		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		case okA && pa != pb:
			return cmp.Compare(pb, pa)
		default:
			return strings.Compare(a.Name(), b.Name())
		}
	})

	return out
}
