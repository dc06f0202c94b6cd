// File: execution.go
// Role: diagnostics of a rule run.
// Determinism:
//   - Every rule list is sorted by name and free of duplicates.

package solving

import (
	"maps"
	"slices"
)

// ExecutionInfo records, per edge ID and per node ID, which rules were
// violated and which could not be executed for lack of input.
type ExecutionInfo struct {
	ViolatedEdgeRules    map[int][]string
	NotExecutedEdgeRules map[int][]string
	ViolatedNodeRules    map[int][]string
	NotExecutedNodeRules map[int][]string
}

func newExecutionInfo() ExecutionInfo {
	return ExecutionInfo{
		ViolatedEdgeRules:    make(map[int][]string),
		NotExecutedEdgeRules: make(map[int][]string),
		ViolatedNodeRules:    make(map[int][]string),
		NotExecutedNodeRules: make(map[int][]string),
	}
}

// IsEmpty reports whether nothing was recorded.
func (x ExecutionInfo) IsEmpty() bool {
	return len(x.ViolatedEdgeRules) == 0 && len(x.NotExecutedEdgeRules) == 0 &&
		len(x.ViolatedNodeRules) == 0 && len(x.NotExecutedNodeRules) == 0
}

// HasViolations reports whether any rule was violated.
func (x ExecutionInfo) HasViolations() bool {
	return len(x.ViolatedEdgeRules) > 0 || len(x.ViolatedNodeRules) > 0
}

// ViolatedRules returns the names of all violated rules.
func (x ExecutionInfo) ViolatedRules() []string {
	return union(x.ViolatedEdgeRules, x.ViolatedNodeRules)
}

// NotExecutedRules returns the names of all rules that could not run.
func (x ExecutionInfo) NotExecutedRules() []string {
	return union(x.NotExecutedEdgeRules, x.NotExecutedNodeRules)
}

// Merge returns the combination of x and other. Not-executed rules are
// always united. Violations are united too unless intersectViolations is
// set, in which case an element present in both keeps only the rules
// violated in both and an element violated only in other is dropped.
// This tells which rules block every candidate tried.
func (x ExecutionInfo) Merge(other ExecutionInfo, intersectViolations bool) ExecutionInfo {
	out := ExecutionInfo{
		NotExecutedEdgeRules: mergeUnion(x.NotExecutedEdgeRules, other.NotExecutedEdgeRules),
		NotExecutedNodeRules: mergeUnion(x.NotExecutedNodeRules, other.NotExecutedNodeRules),
	}
	if intersectViolations {
		out.ViolatedEdgeRules = mergeIntersect(x.ViolatedEdgeRules, other.ViolatedEdgeRules)
		out.ViolatedNodeRules = mergeIntersect(x.ViolatedNodeRules, other.ViolatedNodeRules)
	} else {
		out.ViolatedEdgeRules = mergeUnion(x.ViolatedEdgeRules, other.ViolatedEdgeRules)
		out.ViolatedNodeRules = mergeUnion(x.ViolatedNodeRules, other.ViolatedNodeRules)
	}

	return out
}

func record(m map[int][]string, id int, rule string) {
	names := m[id]
	if i, found := slices.BinarySearch(names, rule); !found {
		m[id] = slices.Insert(names, i, rule)
	}
}

func mergeUnion(a, b map[int][]string) map[int][]string {
	out := make(map[int][]string, len(a)+len(b))
	for id, names := range a {
		out[id] = slices.Clone(names)
	}
	for id, names := range b {
		for _, n := range names {
			record(out, id, n)
		}
	}

	return out
}

func mergeIntersect(a, b map[int][]string) map[int][]string {
	out := make(map[int][]string, len(a)+len(b))
	for id, names := range a {
		out[id] = slices.Clone(names)
	}
	for id, names := range b {
		existing, ok := out[id]
		if !ok {
			continue
		}
		kept := existing[:0]
		for _, n := range existing {
			if _, found := slices.BinarySearch(names, n); found {
				kept = append(kept, n)
			}
		}
		if len(kept) == 0 {
			delete(out, id)
			continue
		}
		out[id] = kept
	}

	return out
}

func union(ms ...map[int][]string) []string {
	set := make(map[string]struct{})
	for _, m := range ms {
		for _, names := range m {
			for _, n := range names {
				set[n] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(set))
}
