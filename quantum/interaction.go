package quantum

import "fmt"

// InteractionProperties is the typed view of the numbers carried by a node:
// orbital angular momentum L, coupled spin S and the helicity parity prefactor.
// Nil pointers (and an Undefined prefactor) mean "not assigned".
type InteractionProperties struct {
	LMagnitude      *Fraction
	LProjection     *Fraction
	SMagnitude      *Fraction
	SProjection     *Fraction
	ParityPrefactor Parity
}

// NodeProperties converts to the raw map, omitting unset numbers.
func (ip InteractionProperties) NodeProperties() NodeProperties {
	props := make(NodeProperties, 5)
	set := func(q NodeQN, f *Fraction) {
		if f != nil {
			props[q] = *f
		}
	}
	set(NodeLMagnitude, ip.LMagnitude)
	set(NodeLProjection, ip.LProjection)
	set(NodeSMagnitude, ip.SMagnitude)
	set(NodeSProjection, ip.SProjection)
	if ip.ParityPrefactor.Defined() {
		props[NodeParityPrefactor] = ip.ParityPrefactor
	}

	return props
}

// InteractionPropertiesFrom builds the typed view from a raw node assignment.
func InteractionPropertiesFrom(props NodeProperties) (InteractionProperties, error) {
	var ip InteractionProperties
	get := func(q NodeQN) (*Fraction, error) {
		v, ok := props[q]
		if !ok || v == nil {
			return nil, nil
		}
		f, err := ToFraction(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q, err)
		}

		return &f, nil
	}
	var err error
	if ip.LMagnitude, err = get(NodeLMagnitude); err != nil {
		return ip, err
	}
	if ip.LProjection, err = get(NodeLProjection); err != nil {
		return ip, err
	}
	if ip.SMagnitude, err = get(NodeSMagnitude); err != nil {
		return ip, err
	}
	if ip.SProjection, err = get(NodeSProjection); err != nil {
		return ip, err
	}
	if v, ok := props[NodeParityPrefactor]; ok {
		if ip.ParityPrefactor, err = ToParity(v); err != nil {
			return ip, fmt.Errorf("%s: %w", NodeParityPrefactor, err)
		}
	}

	return ip, nil
}

// String renders assigned numbers in declaration order, one per line
// ("l_magnitude = 1", "s_projection = -1/2"). Projections carry a sign.
func (ip InteractionProperties) String() string {
	var out string
	add := func(q NodeQN, f *Fraction, signed bool) {
		if f == nil {
			return
		}
		v := f.String()
		if signed {
			v = f.SignedString()
		}
		out += fmt.Sprintf("%s = %s\n", q, v)
	}
	add(NodeLMagnitude, ip.LMagnitude, false)
	add(NodeLProjection, ip.LProjection, true)
	add(NodeSMagnitude, ip.SMagnitude, false)
	add(NodeSProjection, ip.SProjection, true)
	if ip.ParityPrefactor.Defined() {
		out += fmt.Sprintf("%s = %s\n", NodeParityPrefactor, ip.ParityPrefactor)
	}

	return out
}
