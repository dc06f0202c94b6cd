// File: rule.go
// Role: the Rule tagged union and the generic constructors that build it.
// Determinism:
//   - Kind is fixed by the constructor used; it is never inferred at call time.
// Concurrency:
//   - Rule values are immutable; Check methods allocate only local state.

package conservation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qrules/quantum"
)

// Kind is the declared arity of a rule.
type Kind uint8

const (
	// KindEdgeElement rules inspect one edge in isolation.
	KindEdgeElement Kind = iota + 1
	// KindNodeElement rules inspect one interaction node in isolation.
	KindNodeElement
	// KindEdge rules compare the ingoing and outgoing edges of a node.
	KindEdge
	// KindFull rules compare ingoing and outgoing edges and read the node.
	KindFull
)

// String returns "edge-element", "node-element", "edge" or "full".
func (k Kind) String() string {
	switch k {
	case KindEdgeElement:
		return "edge-element"
	case KindNodeElement:
		return "node-element"
	case KindEdge:
		return "edge"
	case KindFull:
		return "full"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rule is the common part of every conservation rule.
// Concrete values also implement exactly one of EdgeElementRule,
// NodeElementRule, EdgeRule or FullRule, selected by Kind.
type Rule interface {
	// Name identifies the rule in priorities and diagnostics.
	Name() string
	// Kind is the declared arity.
	Kind() Kind
	// EdgeQNs lists the edge numbers the rule reads.
	EdgeQNs() []quantum.EdgeQN
	// NodeQNs lists the node numbers the rule reads.
	NodeQNs() []quantum.NodeQN

	sealed()
}

// EdgeElementRule checks a single edge.
type EdgeElementRule interface {
	Rule
	CheckEdge(edge quantum.EdgeProperties) (bool, error)
}

// NodeElementRule checks a single interaction node.
type NodeElementRule interface {
	Rule
	CheckNode(node quantum.NodeProperties) (bool, error)
}

// EdgeRule checks the ingoing against the outgoing edges of a node.
type EdgeRule interface {
	Rule
	CheckEdges(in, out []quantum.EdgeProperties) (bool, error)
}

// FullRule checks ingoing and outgoing edges together with the node.
type FullRule interface {
	Rule
	CheckInteraction(in, out []quantum.EdgeProperties, node quantum.NodeProperties) (bool, error)
}

// EdgeInput selects and converts the numbers a rule needs from one edge.
type EdgeInput[T any] struct {
	QNs   []quantum.EdgeQN
	Build func(quantum.EdgeProperties) (T, error)
}

// NodeInput selects and converts the numbers a rule needs from one node.
type NodeInput[T any] struct {
	QNs   []quantum.NodeQN
	Build func(quantum.NodeProperties) (T, error)
}

type meta struct {
	name    string
	kind    Kind
	edgeQNs []quantum.EdgeQN
	nodeQNs []quantum.NodeQN
}

func (m meta) Name() string              { return m.name }
func (m meta) Kind() Kind                { return m.kind }
func (m meta) EdgeQNs() []quantum.EdgeQN { return slices.Clone(m.edgeQNs) }
func (m meta) NodeQNs() []quantum.NodeQN { return slices.Clone(m.nodeQNs) }
func (m meta) sealed()                   {}

// mergeEdgeQNs concatenates the lists, keeping first occurrences only.
func mergeEdgeQNs(lists ...[]quantum.EdgeQN) []quantum.EdgeQN {
	var out []quantum.EdgeQN
	for _, l := range lists {
		for _, q := range l {
			if !slices.Contains(out, q) {
				out = append(out, q)
			}
		}
	}

	return out
}

type edgeElementRule[T any] struct {
	meta
	in    EdgeInput[T]
	check func(T) bool
}

// NewEdgeElementRule binds check to a single-edge input.
func NewEdgeElementRule[T any](name string, in EdgeInput[T], check func(T) bool) EdgeElementRule {
	return &edgeElementRule[T]{
		meta:  meta{name: name, kind: KindEdgeElement, edgeQNs: slices.Clone(in.QNs)},
		in:    in,
		check: check,
	}
}

func (r *edgeElementRule[T]) CheckEdge(edge quantum.EdgeProperties) (bool, error) {
	v, err := r.in.Build(edge)
	if err != nil {
		return false, err
	}

	return r.check(v), nil
}

type nodeElementRule[T any] struct {
	meta
	in    NodeInput[T]
	check func(T) bool
}

// NewNodeElementRule binds check to a single-node input.
func NewNodeElementRule[T any](name string, in NodeInput[T], check func(T) bool) NodeElementRule {
	return &nodeElementRule[T]{
		meta:  meta{name: name, kind: KindNodeElement, nodeQNs: slices.Clone(in.QNs)},
		in:    in,
		check: check,
	}
}

func (r *nodeElementRule[T]) CheckNode(node quantum.NodeProperties) (bool, error) {
	v, err := r.in.Build(node)
	if err != nil {
		return false, err
	}

	return r.check(v), nil
}

type edgeRule[I, O any] struct {
	meta
	in    EdgeInput[I]
	out   EdgeInput[O]
	check func(in []I, out []O) bool
}

// NewEdgeRule binds check to ingoing and outgoing edge inputs.
// The two sides may use different records.
func NewEdgeRule[I, O any](name string, in EdgeInput[I], out EdgeInput[O], check func(in []I, out []O) bool) EdgeRule {
	return &edgeRule[I, O]{
		meta:  meta{name: name, kind: KindEdge, edgeQNs: mergeEdgeQNs(in.QNs, out.QNs)},
		in:    in,
		out:   out,
		check: check,
	}
}

func (r *edgeRule[I, O]) CheckEdges(in, out []quantum.EdgeProperties) (bool, error) {
	ins, err := buildEach(r.in, in)
	if err != nil {
		return false, err
	}
	outs, err := buildEach(r.out, out)
	if err != nil {
		return false, err
	}

	return r.check(ins, outs), nil
}

type fullRule[I, O, N any] struct {
	meta
	in    EdgeInput[I]
	out   EdgeInput[O]
	node  NodeInput[N]
	check func(in []I, out []O, node N) bool
}

// NewFullRule binds check to edge inputs on both sides and a node input.
func NewFullRule[I, O, N any](
	name string,
	in EdgeInput[I],
	out EdgeInput[O],
	node NodeInput[N],
	check func(in []I, out []O, node N) bool,
) FullRule {
	return &fullRule[I, O, N]{
		meta: meta{
			name:    name,
			kind:    KindFull,
			edgeQNs: mergeEdgeQNs(in.QNs, out.QNs),
			nodeQNs: slices.Clone(node.QNs),
		},
		in:    in,
		out:   out,
		node:  node,
		check: check,
	}
}

func (r *fullRule[I, O, N]) CheckInteraction(in, out []quantum.EdgeProperties, node quantum.NodeProperties) (bool, error) {
	ins, err := buildEach(r.in, in)
	if err != nil {
		return false, err
	}
	outs, err := buildEach(r.out, out)
	if err != nil {
		return false, err
	}
	n, err := r.node.Build(node)
	if err != nil {
		return false, err
	}

	return r.check(ins, outs, n), nil
}

func buildEach[T any](in EdgeInput[T], edges []quantum.EdgeProperties) ([]T, error) {
	out := make([]T, 0, len(edges))
	for _, e := range edges {
		v, err := in.Build(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
