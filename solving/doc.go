// Package solving validates quantum-number assignments on a topology and
// enumerates the node assignments allowed by the conservation rules.
//
// What:
//
//   - Problem binds a topology.Topology to per-edge and per-node properties
//     and the settings (rules, priorities, domains) of each element.
//   - Validate runs every rule once, in priority order, and reports which
//     rules were violated or could not be executed (ExecutionInfo).
//   - FindNodeSolutions enumerates the Cartesian product of the node domains
//     for every number a node does not already carry and keeps the
//     candidates that violate no rule. Work is fanned out over an errgroup.
//   - DetermineInteractionTypes narrows the interaction types a node may
//     proceed through from the particles attached to it; FilterInteractionTypes
//     intersects them with a user selection.
//   - RemoveDuplicateSolutions drops solutions that are equal once ignored
//     node numbers are disregarded.
//
// Rule dispatch:
//
//	KindEdgeElement  edge settings, one edge
//	KindNodeElement  node settings, the node properties
//	KindEdge         node settings, ingoing and outgoing edges
//	KindFull         node settings, both edge sides and the node
//
// A rule whose input is incomplete (conservation.ErrMissingQuantumNumber) is
// recorded as not executed and does not fail the element. Any other input
// error marks the rule violated and is returned to the caller.
//
// Errors:
//
//   - ErrNilTopology
//   - ErrInvalidTopology (wraps the topology.Verify result)
//   - ErrRuleKindMismatch
//   - ErrCandidateLimit
package solving
