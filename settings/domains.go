// File: domains.go
// Role: finite value sets searched per quantum number.
// Determinism:
//   - Values are sorted ascending; the undefined value (None) always comes last.
// Concurrency:
//   - Domain has no mutating methods; copies may be shared freely.

package settings

import (
	"slices"
	"strings"

	"github.com/katalvlaran/qrules/domain"
	"github.com/katalvlaran/qrules/quantum"
)

// Domain is an ordered, deduplicated set of admissible values for one
// quantum number. A domain may additionally admit "undefined" (None),
// e.g. the C-parity of a charged state.
type Domain struct {
	values    []quantum.Fraction
	undefined bool
}

// NewDomain sorts and deduplicates values.
func NewDomain(values ...quantum.Fraction) Domain {
	return Domain{values: domain.SortUnique(values)}
}

// NewDomainWithUndefined is NewDomain plus the undefined value.
func NewDomainWithUndefined(values ...quantum.Fraction) Domain {
	d := NewDomain(values...)
	d.undefined = true

	return d
}

// Values returns a copy of the defined values.
func (d Domain) Values() []quantum.Fraction { return slices.Clone(d.values) }

// Undefined reports whether None is admissible.
func (d Domain) Undefined() bool { return d.undefined }

// Len counts the admissible values, None included.
func (d Domain) Len() int {
	if d.undefined {
		return len(d.values) + 1
	}

	return len(d.values)
}

// Contains reports whether v is a member of the domain.
func (d Domain) Contains(v quantum.Fraction) bool {
	_, ok := slices.BinarySearchFunc(d.values, v, quantum.Fraction.Cmp)

	return ok
}

// Candidates lists the admissible raw property values in domain order:
// every Fraction, then nil when None is admissible.
func (d Domain) Candidates() []any {
	out := make([]any, 0, d.Len())
	for _, v := range d.values {
		out = append(out, v)
	}
	if d.undefined {
		out = append(out, nil)
	}

	return out
}

// Equal reports whether both domains admit the same values.
func (d Domain) Equal(other Domain) bool {
	return d.undefined == other.undefined && slices.Equal(d.values, other.values)
}

// String renders "[-1, +1, None]". Signs are shown only when the domain
// holds negative values.
func (d Domain) String() string {
	signed := len(d.values) > 0 && d.values[0].Sign() < 0
	parts := make([]string, 0, d.Len())
	for _, v := range d.values {
		if signed {
			parts = append(parts, v.SignedString())
		} else {
			parts = append(parts, v.String())
		}
	}
	if d.undefined {
		parts = append(parts, "None")
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
