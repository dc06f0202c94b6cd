// File: validate.go
// Role: rule dispatch over edges and nodes.
// Determinism:
//   - Edges, then nodes, are visited in ascending ID order; rules in
//     settings.OrderedRules order.
// Concurrency:
//   - Validate only reads the Problem; it may run on many goroutines at once.

package solving

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/qrules/conservation"
	"github.com/katalvlaran/qrules/quantum"
)

// Result is the outcome of Validate.
type Result struct {
	// Valid is true when no rule was violated.
	Valid     bool
	Execution ExecutionInfo
}

// Validate checks every edge and node of p against its settings.
//
// Per element, rules run in descending priority and stop at the first
// violation. Rules that cannot run for missing input are recorded as not
// executed and evaluation continues. Input errors of any other kind mark the
// rule violated and are joined into the returned error, which is returned
// alongside a complete Result.
func Validate(p Problem) (Result, error) {
	if err := p.verify(); err != nil {
		return Result{}, err
	}
	info := newExecutionInfo()
	var errs []error

	for _, id := range p.Topology.EdgeIDs() {
		s, ok := p.EdgeSettings[id]
		if !ok {
			continue
		}
		props := p.EdgeProps[id]
		if props == nil {
			props = quantum.EdgeProperties{}
		}
		if err := checkEdge(id, props, s.OrderedRules(), info); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range p.Topology.Nodes() {
		s, ok := p.NodeSettings[id]
		if !ok {
			continue
		}
		if err := checkNode(p, id, p.NodeProps[id], s.OrderedRules(), info); err != nil {
			errs = append(errs, err)
		}
	}

	return Result{Valid: !info.HasViolations(), Execution: info}, errors.Join(errs...)
}

func checkEdge(id int, props quantum.EdgeProperties, rules []conservation.Rule, info ExecutionInfo) error {
	var errs []error
	for _, r := range rules {
		er, ok := r.(conservation.EdgeElementRule)
		if !ok {
			return fmt.Errorf("%w: %s (%s) on edge %d", ErrRuleKindMismatch, r.Name(), r.Kind(), id)
		}
		passed, err := er.CheckEdge(props)
		if stop := outcome(passed, err, id, r.Name(), info.ViolatedEdgeRules, info.NotExecutedEdgeRules, &errs); stop {
			break
		}
	}

	return errors.Join(errs...)
}

func checkNode(p Problem, id int, props quantum.NodeProperties, rules []conservation.Rule, info ExecutionInfo) error {
	in, out, err := p.sides(id)
	if err != nil {
		return err
	}
	if props == nil {
		props = quantum.NodeProperties{}
	}
	var errs []error
	for _, r := range rules {
		passed, err := dispatch(r, in, out, props)
		if errors.Is(err, ErrRuleKindMismatch) {
			return fmt.Errorf("%w on node %d", err, id)
		}
		if stop := outcome(passed, err, id, r.Name(), info.ViolatedNodeRules, info.NotExecutedNodeRules, &errs); stop {
			break
		}
	}

	return errors.Join(errs...)
}

func dispatch(r conservation.Rule, in, out []quantum.EdgeProperties, node quantum.NodeProperties) (bool, error) {
	switch rule := r.(type) {
	case conservation.NodeElementRule:
		return rule.CheckNode(node)
	case conservation.EdgeRule:
		return rule.CheckEdges(in, out)
	case conservation.FullRule:
		return rule.CheckInteraction(in, out, node)
	default:
		return false, fmt.Errorf("%w: %s (%s)", ErrRuleKindMismatch, r.Name(), r.Kind())
	}
}

// outcome records a single rule result and reports whether evaluation of
// the element stops.
func outcome(passed bool, err error, id int, name string, violated, notExecuted map[int][]string, errs *[]error) bool {
	switch {
	case errors.Is(err, conservation.ErrMissingQuantumNumber):
		record(notExecuted, id, name)
		return false
	case err != nil:
		record(violated, id, name)
		*errs = append(*errs, fmt.Errorf("%s on element %d: %w", name, id, err))
		return true
	case !passed:
		record(violated, id, name)
		return true
	default:
		return false
	}
}

// passes reports whether a node assignment violates none of rules. Missing
// input counts as passing.
func passes(in, out []quantum.EdgeProperties, node quantum.NodeProperties, rules []conservation.Rule) (bool, error) {
	for _, r := range rules {
		ok, err := dispatch(r, in, out, node)
		switch {
		case errors.Is(err, conservation.ErrMissingQuantumNumber):
			continue
		case err != nil:
			return false, fmt.Errorf("%s: %w", r.Name(), err)
		case !ok:
			return false, nil
		}
	}

	return true, nil
}

// sortedNames returns the rule names in ascending order.
func sortedNames(rules []conservation.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Name()
	}
	slices.Sort(out)

	return out
}
