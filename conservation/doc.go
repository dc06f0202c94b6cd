// Package conservation implements the quantum-number conservation rules that
// decide whether a particle reaction at one interaction node is allowed.
//
// What:
//
//   - Typed predicates (CheckParity, CheckSpin, CheckGParity, ...) over small
//     input records such as SpinEdgeInput or GParityEdgeInput.
//   - Rule values that bind a predicate to the quantum numbers it reads and
//     to its declared arity. The arity is one of four Kinds:
//     KindEdgeElement (one edge), KindNodeElement (one node), KindEdge
//     (ingoing and outgoing edges) and KindFull (edges plus the node).
//   - Clebsch–Gordan helpers: the analytic zero-coefficient rule and the
//     spin-coupling enumerator used by the spin and isospin rules.
//
// Rule dispatch:
//
// A solver switches on Rule.Kind() (or a type switch on EdgeElementRule,
// NodeElementRule, EdgeRule and FullRule) and calls the matching Check method
// with raw quantum.EdgeProperties / quantum.NodeProperties. The rule builds its
// input records first:
//
//   - a required number that is absent yields ErrMissingQuantumNumber, meaning
//     the rule is not executable yet;
//   - a value of the wrong type yields ErrInvalidQuantumNumber.
//
// Arity policy:
//
// Rules whose physics is only modeled for a 1→2 (or 2→1) split return true
// for any other arity; they restrict, they never prove by absence.
//
// Concurrency:
//
// All rules are immutable after construction and safe for concurrent use.
//
// Errors:
//
//   - ErrMissingQuantumNumber  required number not assigned
//   - ErrInvalidQuantumNumber  assigned value has the wrong type
package conservation
