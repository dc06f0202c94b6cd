// File: duplicates.go
// Role: de-duplication of complete solutions.

package solving

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/qrules/quantum"
)

// Without returns a copy of s with the given node numbers removed from
// every node.
func (s Solution) Without(qns ...quantum.NodeQN) Solution {
	out := make(Solution, len(s))
	for id, props := range s {
		c := props.Clone()
		for _, q := range qns {
			delete(c, q)
		}
		out[id] = c
	}

	return out
}

// RemoveDuplicateSolutions keeps the first of every group of solutions that
// are equal once the ignored node numbers are disregarded. Kept solutions
// retain their ignored numbers; use Solution.Without to strip them.
// Order is preserved.
func RemoveDuplicateSolutions(solutions []Solution, ignore ...quantum.NodeQN) []Solution {
	seen := make(map[string]struct{}, len(solutions))
	out := make([]Solution, 0, len(solutions))
	for _, s := range solutions {
		k := s.key(ignore)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}

	return out
}

// key renders s canonically: nodes by ID, numbers by declaration order.
func (s Solution) key(ignore []quantum.NodeQN) string {
	var b strings.Builder
	for _, id := range slices.Sorted(maps.Keys(s)) {
		fmt.Fprintf(&b, "%d{", id)
		props := s[id]
		for _, q := range slices.Sorted(maps.Keys(props)) {
			if slices.Contains(ignore, q) {
				continue
			}
			fmt.Fprintf(&b, "%s=%s;", q, canonical(props[q]))
		}
		b.WriteString("}")
	}

	return b.String()
}

// canonical renders numerically equal values alike (1, int64(1) and
// Int(1) are the same number).
func canonical(v any) string {
	if v == nil {
		return "None"
	}
	if f, err := quantum.ToFraction(v); err == nil {
		return f.String()
	}

	return fmt.Sprint(v)
}
