// File: settings.go
// Role: edge and node settings, layering via Derive, and their rendering.
// Determinism:
//   - Format lists rules by descending priority then name ("NA" last) and
//     domains alphabetically by quantum-number name.
// Concurrency:
//   - Clone and Derive never share maps with the receiver.

package settings

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/qrules/conservation"
	"github.com/katalvlaran/qrules/quantum"
)

// EdgeSettings are the rules and domains applied to every edge.
//
// Fields are exported for inspection and for hand-built problems; settings
// returned by CreateInteractionSettings must be treated as read-only.
// Use Clone or Derive to specialize them.
type EdgeSettings struct {
	Rules      RuleSet
	Priorities map[string]int
	Domains    map[quantum.EdgeQN]Domain
}

// NodeSettings are the rules and domains applied to an interaction node.
type NodeSettings struct {
	Rules      RuleSet
	Priorities map[string]int
	Domains    map[quantum.NodeQN]Domain

	// InteractionStrength ranks solutions: 60 strong, 1 EM, 1e-4 weak.
	InteractionStrength float64
}

// InteractionSettings pairs the edge and node settings of one interaction type.
type InteractionSettings struct {
	Edge EdgeSettings
	Node NodeSettings
}

// Clone returns a deep copy.
func (s EdgeSettings) Clone() EdgeSettings {
	return EdgeSettings{
		Rules:      s.Rules.With(),
		Priorities: maps.Clone(s.Priorities),
		Domains:    maps.Clone(s.Domains),
	}
}

// Derive returns a copy of s extended by rules and overriding domains.
func (s EdgeSettings) Derive(rules RuleSet, domains map[quantum.EdgeQN]Domain) EdgeSettings {
	out := s.Clone()
	out.Rules = out.Rules.With(rules.Rules()...)
	if out.Domains == nil {
		out.Domains = make(map[quantum.EdgeQN]Domain, len(domains))
	}
	maps.Copy(out.Domains, domains)

	return out
}

// OrderedRules returns the rules in evaluation order.
func (s EdgeSettings) OrderedRules() []conservation.Rule { return s.Rules.Ordered(s.Priorities) }

// String renders the RULES and DOMAINS blocks.
func (s EdgeSettings) String() string { return Format(s.Rules, s.Priorities, s.Domains) }

// Clone returns a deep copy.
func (s NodeSettings) Clone() NodeSettings {
	return NodeSettings{
		Rules:               s.Rules.With(),
		Priorities:          maps.Clone(s.Priorities),
		Domains:             maps.Clone(s.Domains),
		InteractionStrength: s.InteractionStrength,
	}
}

// Derive returns a copy of s extended by rules and overriding domains,
// with the given interaction strength.
func (s NodeSettings) Derive(rules RuleSet, domains map[quantum.NodeQN]Domain, strength float64) NodeSettings {
	out := s.Clone()
	out.Rules = out.Rules.With(rules.Rules()...)
	if out.Domains == nil {
		out.Domains = make(map[quantum.NodeQN]Domain, len(domains))
	}
	maps.Copy(out.Domains, domains)
	out.InteractionStrength = strength

	return out
}

// OrderedRules returns the rules in evaluation order.
func (s NodeSettings) OrderedRules() []conservation.Rule { return s.Rules.Ordered(s.Priorities) }

// String renders the RULES and DOMAINS blocks.
func (s NodeSettings) String() string { return Format(s.Rules, s.Priorities, s.Domains) }

// Clone returns a deep copy.
func (s InteractionSettings) Clone() InteractionSettings {
	return InteractionSettings{Edge: s.Edge.Clone(), Node: s.Node.Clone()}
}

// QN is an edge or node quantum-number identifier.
type QN interface {
	quantum.EdgeQN | quantum.NodeQN
	String() string
}

// Format renders
//
//	RULES
//	ChargeConservation - 100
//	ClebschGordanHelicityToCanonical - NA
//	DOMAINS
//	charge ∊ [-1, 0, +1]
func Format[Q QN](rules RuleSet, priorities map[string]int, domains map[Q]Domain) string {
	var b strings.Builder
	b.WriteString("RULES\n")
	for _, r := range rules.Ordered(priorities) {
		if p, ok := priorities[r.Name()]; ok {
			fmt.Fprintf(&b, "%s - %d\n", r.Name(), p)
		} else {
			fmt.Fprintf(&b, "%s - NA\n", r.Name())
		}
	}
	b.WriteString("DOMAINS\n")
	keys := slices.SortedFunc(maps.Keys(domains), func(x, y Q) int { return cmp.Compare(x.String(), y.String()) })
	for _, q := range keys {
		fmt.Fprintf(&b, "%s ∊ %s\n", q, domains[q])
	}

	return b.String()
}
