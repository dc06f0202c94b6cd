package settings

import (
	"fmt"
	"strings"
)

// InteractionType is the force mediating an interaction node.
type InteractionType uint8

// Interaction types, strongest first.
const (
	Strong InteractionType = iota
	EM
	Weak
)

// AllInteractionTypes lists Strong, EM and Weak in that order.
func AllInteractionTypes() []InteractionType { return []InteractionType{Strong, EM, Weak} }

// String returns "strong", "em" or "weak".
func (t InteractionType) String() string {
	switch t {
	case Strong:
		return "strong"
	case EM:
		return "em"
	case Weak:
		return "weak"
	default:
		return fmt.Sprintf("InteractionType(%d)", uint8(t))
	}
}

// ParseInteractionType recognizes a description by its first letter, so
// "strong", "S", "electromagnetic", "EM" and "weak" are all accepted.
func ParseInteractionType(description string) (InteractionType, error) {
	switch d := strings.ToLower(strings.TrimSpace(description)); {
	case strings.HasPrefix(d, "e"):
		return EM, nil
	case strings.HasPrefix(d, "s"):
		return Strong, nil
	case strings.HasPrefix(d, "w"):
		return Weak, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInteractionType, description)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t InteractionType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InteractionType) UnmarshalText(b []byte) error {
	parsed, err := ParseInteractionType(string(b))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// Formalism is the spin formalism amplitudes are expressed in.
type Formalism string

// Supported formalisms.
const (
	Helicity          Formalism = "helicity"
	Canonical         Formalism = "canonical"
	CanonicalHelicity Formalism = "canonical-helicity"
)

// ParseFormalism validates a formalism name.
func ParseFormalism(name string) (Formalism, error) {
	f := Formalism(strings.ToLower(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormalism, name)
	}

	return f, nil
}

// Valid reports whether f is one of the supported formalisms.
func (f Formalism) Valid() bool {
	return f == Helicity || f == Canonical || f == CanonicalHelicity
}

// UsesHelicity reports whether node projections are carried by edge helicities.
func (f Formalism) UsesHelicity() bool { return f == Helicity || f == CanonicalHelicity }
