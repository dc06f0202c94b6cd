package conservation

// DefaultMassWidthFactor is the number of widths a resonance may reach below
// its nominal mass threshold.
const DefaultMassWidthFactor = 3.0

// CheckMass implements M_out − N·W_out < M_in + N·W_in with N = widthFactor.
// The inequality is strict: equal masses with zero widths fail.
func CheckMass(in, out []MassEdgeInput, widthFactor float64) bool {
	var massIn, widthIn, massOut, widthOut float64
	for _, e := range in {
		massIn += e.Mass
		widthIn += e.Width
	}
	for _, e := range out {
		massOut += e.Mass
		widthOut += e.Width
	}

	return massOut-widthFactor*widthOut < massIn+widthFactor*widthIn
}

// NewMassConservation returns the mass rule for the given width factor.
// The factor is the only state the rule carries.
func NewMassConservation(widthFactor float64) EdgeRule {
	return NewEdgeRule("MassConservation", MassEdge, MassEdge,
		func(in, out []MassEdgeInput) bool { return CheckMass(in, out, widthFactor) })
}
