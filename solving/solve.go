// File: solve.go
// Role: enumeration of node assignments.
// Determinism:
//   - Free numbers are enumerated in NodeQN declaration order, each over its
//     domain order, with the last number varying fastest. Candidates keep
//     that order regardless of how work is scheduled.
// Concurrency:
//   - One errgroup per call, limited to the configured thread count; each
//     task owns a disjoint index range of the result slice.

package solving

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qrules/conservation"
	"github.com/katalvlaran/qrules/quantum"
	"github.com/katalvlaran/qrules/settings"
)

// NodeSolutions are the allowed assignments of one node.
type NodeSolutions struct {
	Node       int
	Candidates []quantum.NodeProperties
}

// Solution is a complete node assignment, keyed by node ID.
type Solution map[int]quantum.NodeProperties

// FindNodeSolutions enumerates, per node with settings, every assignment of
// the numbers in its domains that the node does not carry yet, and keeps
// those that violate none of the node rules. Numbers already present in
// p.NodeProps stay fixed. The result is sorted by node ID.
//
// A node whose rules reject every candidate yields an empty Candidates
// slice. Input errors other than missing numbers abort the search.
func FindNodeSolutions(ctx context.Context, p Problem, opts ...Option) ([]NodeSolutions, error) {
	if err := p.verify(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.threads)

	nodes := p.Topology.Nodes()
	type job struct {
		node    int
		space   space
		rules   []conservation.Rule
		in, out []quantum.EdgeProperties
		results []quantum.NodeProperties
	}
	jobs := make([]*job, 0, len(nodes))
	for _, id := range nodes {
		s, ok := p.NodeSettings[id]
		if !ok {
			continue
		}
		in, out, err := p.sides(id)
		if err != nil {
			return nil, err
		}
		sp := newSpace(p.NodeProps[id], s.Domains)
		if sp.size > o.candidateLimit {
			return nil, fmt.Errorf("%w: node %d has %d candidates, limit %d", ErrCandidateLimit, id, sp.size, o.candidateLimit)
		}
		rules := s.OrderedRules()
		o.logger.Debug("enumerating node",
			"node", id,
			"free", sp.names(),
			"candidates", sp.size,
			"rules", sortedNames(rules),
		)
		jobs = append(jobs, &job{
			node:    id,
			space:   sp,
			rules:   rules,
			in:      in,
			out:     out,
			results: make([]quantum.NodeProperties, sp.size),
		})
	}

	for _, j := range jobs {
		for lo := 0; lo < j.space.size; lo += o.chunkSize {
			hi := min(lo+o.chunkSize, j.space.size)
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					candidate := j.space.at(i)
					ok, err := passes(j.in, j.out, candidate, j.rules)
					if err != nil {
						return fmt.Errorf("solving: node %d: %w", j.node, err)
					}
					if ok {
						j.results[i] = candidate
					}
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]NodeSolutions, len(jobs))
	for k, j := range jobs {
		kept := slices.DeleteFunc(j.results, func(c quantum.NodeProperties) bool { return c == nil })
		out[k] = NodeSolutions{Node: j.node, Candidates: kept}
		o.logger.Debug("node solved", "node", j.node, "solutions", len(kept))
	}

	return out, nil
}

// Combine returns the Cartesian product of the per-node candidates.
// The first node varies slowest. An empty candidate list for any node
// yields no solutions.
func Combine(nodes []NodeSolutions) []Solution {
	if len(nodes) == 0 {
		return nil
	}
	out := []Solution{{}}
	for _, n := range nodes {
		next := make([]Solution, 0, len(out)*len(n.Candidates))
		for _, partial := range out {
			for _, c := range n.Candidates {
				s := maps.Clone(partial)
				s[n.Node] = c
				next = append(next, s)
			}
		}
		out = next
	}

	return out
}

// space is the mixed-radix index space over the free numbers of a node.
type space struct {
	fixed  quantum.NodeProperties
	qns    []quantum.NodeQN
	values [][]any
	size   int
}

func newSpace(fixed quantum.NodeProperties, domains map[quantum.NodeQN]settings.Domain) space {
	sp := space{fixed: fixed, size: 1}
	for _, q := range slices.Sorted(maps.Keys(domains)) {
		if fixed.Has(q) {
			continue
		}
		values := domains[q].Candidates()
		sp.qns = append(sp.qns, q)
		sp.values = append(sp.values, values)
		sp.size *= len(values)
	}

	return sp
}

// at decodes index i into a fresh assignment.
func (sp space) at(i int) quantum.NodeProperties {
	props := sp.fixed.Clone()
	if props == nil {
		props = make(quantum.NodeProperties, len(sp.qns))
	}
	for k := len(sp.qns) - 1; k >= 0; k-- {
		n := len(sp.values[k])
		props[sp.qns[k]] = sp.values[k][i%n]
		i /= n
	}

	return props
}

func (sp space) names() []string {
	out := make([]string, len(sp.qns))
	for i, q := range sp.qns {
		out[i] = q.String()
	}

	return out
}
