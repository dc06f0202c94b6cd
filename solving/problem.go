// File: problem.go
// Role: the input of Validate and FindNodeSolutions.

package solving

import (
	"fmt"

	"github.com/katalvlaran/qrules/quantum"
	"github.com/katalvlaran/qrules/settings"
	"github.com/katalvlaran/qrules/topology"
)

// Problem is a topology with properties and settings attached to its
// elements. Elements without settings are not checked; elements without
// properties are checked against an empty assignment.
type Problem struct {
	Topology     *topology.Topology
	EdgeProps    map[int]quantum.EdgeProperties
	NodeProps    map[int]quantum.NodeProperties
	EdgeSettings map[int]settings.EdgeSettings
	NodeSettings map[int]settings.NodeSettings
}

// NewProblem attaches the same interaction settings to every edge and node
// of top. edges and nodes may be nil.
func NewProblem(
	top *topology.Topology,
	edges map[int]quantum.EdgeProperties,
	nodes map[int]quantum.NodeProperties,
	s settings.InteractionSettings,
) Problem {
	p := Problem{
		Topology:     top,
		EdgeProps:    edges,
		NodeProps:    nodes,
		EdgeSettings: make(map[int]settings.EdgeSettings),
		NodeSettings: make(map[int]settings.NodeSettings),
	}
	if top == nil {
		return p
	}
	for _, id := range top.EdgeIDs() {
		p.EdgeSettings[id] = s.Edge
	}
	for _, id := range top.Nodes() {
		p.NodeSettings[id] = s.Node
	}

	return p
}

// WithNodeProps returns a shallow copy of p whose node properties are
// replaced by nodes.
func (p Problem) WithNodeProps(nodes map[int]quantum.NodeProperties) Problem {
	p.NodeProps = nodes

	return p
}

func (p Problem) verify() error {
	if p.Topology == nil {
		return ErrNilTopology
	}
	if err := p.Topology.Verify(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTopology, err)
	}

	return nil
}

// sides returns the properties of the edges entering and leaving node,
// each in ascending edge ID order.
func (p Problem) sides(node int) (in, out []quantum.EdgeProperties, err error) {
	inIDs, err := p.Topology.IngoingEdgeIDs(node)
	if err != nil {
		return nil, nil, err
	}
	outIDs, err := p.Topology.OutgoingEdgeIDs(node)
	if err != nil {
		return nil, nil, err
	}

	return p.edgeProps(inIDs), p.edgeProps(outIDs), nil
}

func (p Problem) edgeProps(ids []int) []quantum.EdgeProperties {
	out := make([]quantum.EdgeProperties, len(ids))
	for i, id := range ids {
		out[i] = p.EdgeProps[id]
		if out[i] == nil {
			out[i] = quantum.EdgeProperties{}
		}
	}

	return out
}
