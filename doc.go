// Package qrules is a conservation-rule engine for particle reactions: it
// assigns quantum numbers to the edges and nodes of decay topologies and
// reports every assignment allowed by a prioritized set of conservation laws.
//
// What is in the module?
//
//	quantum/       exact fractions, parities, edge and node quantum numbers
//	conservation/  the rules: additive laws, parities, spin couplings, mass
//	domain/        value ranges of quantum numbers
//	particle/      particle records, YAML ParticleList loading, embedded list
//	settings/      per-interaction-type rule sets, priorities and domains
//	topology/      decay graphs with open initial and final states
//	solving/       rule dispatch, node enumeration, interaction-type checks
//	cmd/qrules/    command line front end
//
// Interaction settings are layered: WEAK holds the rules every interaction
// obeys, EM adds the ones the weak force breaks, STRONG adds isospin and
// G-parity on top.
//
//	-1          0
//	───►(0)──►
//	      └──►
//	           1
//
// represents the two-body decay the solver works on most often.
//
//	go install github.com/katalvlaran/qrules/cmd/qrules@latest
package qrules
