package quantum

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts scalars such as 1, 0.5, "3/2".
func (f *Fraction) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: fraction must be a scalar, line %d", ErrInvalidValue, node.Line)
	}
	v, err := ParseFraction(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = v

	return nil
}

// MarshalYAML renders integers as ints and everything else as "num/den".
func (f Fraction) MarshalYAML() (interface{}, error) {
	if n, ok := f.Int64(); ok {
		return n, nil
	}

	return f.String(), nil
}
