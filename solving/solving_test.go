package solving_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qrules/conservation"
	"github.com/katalvlaran/qrules/particle"
	"github.com/katalvlaran/qrules/quantum"
	"github.com/katalvlaran/qrules/settings"
	"github.com/katalvlaran/qrules/solving"
	"github.com/katalvlaran/qrules/topology"
)

func lookup(t *testing.T, names ...string) []particle.Particle {
	t.Helper()
	db, err := particle.Default()
	require.NoError(t, err)
	out := make([]particle.Particle, len(names))
	for i, n := range names {
		out[i], err = db.FindByName(n)
		require.NoError(t, err)
	}

	return out
}

// decay attaches parent to edge -1 and the daughters to edges 0, 1, ...
func decay(t *testing.T, names ...string) map[int]quantum.EdgeProperties {
	t.Helper()
	ps := lookup(t, names...)
	edges := map[int]quantum.EdgeProperties{-1: particle.EdgeProperties(ps[0])}
	for i, p := range ps[1:] {
		edges[i] = particle.EdgeProperties(p)
	}

	return edges
}

func chargeOnly(charges ...int64) map[int]quantum.EdgeProperties {
	edges := map[int]quantum.EdgeProperties{-1: {quantum.EdgeCharge: charges[0]}}
	for i, c := range charges[1:] {
		edges[i] = quantum.EdgeProperties{quantum.EdgeCharge: c}
	}

	return edges
}

func nodeSettings(rules ...conservation.Rule) settings.InteractionSettings {
	return settings.InteractionSettings{
		Node: settings.NodeSettings{
			Rules:      settings.NewRuleSet(rules...),
			Priorities: settings.ConservationLawPriorities(),
			Domains: map[quantum.NodeQN]settings.Domain{
				quantum.NodeLMagnitude: settings.NewDomain(quantum.Int(0), quantum.Int(1), quantum.Int(2)),
				quantum.NodeSMagnitude: settings.NewDomain(quantum.Int(0), quantum.Half(1), quantum.Int(1), quantum.Half(3), quantum.Int(2)),
			},
		},
	}
}

func TestValidate(t *testing.T) {
	s := nodeSettings(conservation.ChargeConservation)

	res, err := solving.Validate(solving.NewProblem(topology.TwoBodyDecay(), chargeOnly(0, 1, -1), nil, s))
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.True(t, res.Execution.IsEmpty())

	res, err = solving.Validate(solving.NewProblem(topology.TwoBodyDecay(), chargeOnly(0, 1, 1), nil, s))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, map[int][]string{0: {"ChargeConservation"}}, res.Execution.ViolatedNodeRules)
	assert.Equal(t, []string{"ChargeConservation"}, res.Execution.ViolatedRules())
}

func TestValidate_NotExecuted(t *testing.T) {
	s := nodeSettings(conservation.ChargeConservation, conservation.BaryonNumberConservation)
	res, err := solving.Validate(solving.NewProblem(topology.TwoBodyDecay(), chargeOnly(0, 1, -1), nil, s))
	require.NoError(t, err)
	assert.True(t, res.Valid, "missing input is not a violation")
	assert.Equal(t, []string{"BaryonNumberConservation"}, res.Execution.NotExecutedNodeRules[0])
	assert.Empty(t, res.Execution.ViolatedNodeRules)
}

func TestValidate_EarlyExit(t *testing.T) {
	// charge (100) runs before baryon number (90) and stops the node
	s := nodeSettings(conservation.ChargeConservation, conservation.BaryonNumberConservation)
	edges := chargeOnly(0, 1, 1)
	for id := range edges {
		edges[id][quantum.EdgeBaryonNumber] = int64(id + 2)
	}
	res, err := solving.Validate(solving.NewProblem(topology.TwoBodyDecay(), edges, nil, s))
	require.NoError(t, err)
	assert.Equal(t, []string{"ChargeConservation"}, res.Execution.ViolatedNodeRules[0])
}

func TestValidate_InvalidValue(t *testing.T) {
	edges := chargeOnly(0, 1, -1)
	edges[0][quantum.EdgeCharge] = "plus one"
	res, err := solving.Validate(solving.NewProblem(topology.TwoBodyDecay(), edges, nil, nodeSettings(conservation.ChargeConservation)))
	require.ErrorIs(t, err, conservation.ErrInvalidQuantumNumber)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"ChargeConservation"}, res.Execution.ViolatedNodeRules[0])
}

func TestValidate_EdgeRules(t *testing.T) {
	db, err := particle.Default()
	require.NoError(t, err)
	all, err := settings.CreateInteractionSettings(settings.Canonical, db)
	require.NoError(t, err)

	edges := decay(t, "rho(770)0", "pi+", "pi-")
	p := solving.NewProblem(topology.TwoBodyDecay(), edges, nil, all[settings.Strong])
	p.NodeSettings = nil
	res, err := solving.Validate(p)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	// spin validity needs a projection
	for _, id := range []int{-1, 0, 1} {
		assert.Contains(t, res.Execution.NotExecutedEdgeRules[id], "SpinValidity")
	}

	edges[0][quantum.EdgeCharge] = int64(2)
	res, err = solving.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"GellMannNishijima"}, res.Execution.ViolatedEdgeRules[0])
}

func TestValidate_Errors(t *testing.T) {
	_, err := solving.Validate(solving.Problem{})
	assert.ErrorIs(t, err, solving.ErrNilTopology)

	broken := topology.TwoBodyDecay()
	require.NoError(t, broken.AddEdge(9))
	_, err = solving.Validate(solving.Problem{Topology: broken})
	assert.ErrorIs(t, err, solving.ErrInvalidTopology)
	assert.ErrorIs(t, err, topology.ErrDanglingEdge)

	misplaced := settings.InteractionSettings{Edge: settings.EdgeSettings{Rules: settings.NewRuleSet(conservation.ChargeConservation)}}
	_, err = solving.Validate(solving.NewProblem(topology.TwoBodyDecay(), chargeOnly(0, 1, -1), nil, misplaced))
	assert.ErrorIs(t, err, solving.ErrRuleKindMismatch)

	onNode := nodeSettings(conservation.SpinValidity)
	_, err = solving.Validate(solving.NewProblem(topology.TwoBodyDecay(), nil, nil, onNode))
	assert.ErrorIs(t, err, solving.ErrRuleKindMismatch)
}

func TestExecutionInfo_Merge(t *testing.T) {
	a := solving.ExecutionInfo{
		ViolatedNodeRules:    map[int][]string{0: {"A", "B"}, 1: {"C"}},
		NotExecutedNodeRules: map[int][]string{0: {"X"}},
	}
	b := solving.ExecutionInfo{
		ViolatedNodeRules:    map[int][]string{0: {"B", "D"}, 2: {"E"}},
		NotExecutedNodeRules: map[int][]string{0: {"W", "X"}},
	}

	u := a.Merge(b, false)
	assert.Equal(t, map[int][]string{0: {"A", "B", "D"}, 1: {"C"}, 2: {"E"}}, u.ViolatedNodeRules)
	assert.Equal(t, map[int][]string{0: {"W", "X"}}, u.NotExecutedNodeRules)

	i := a.Merge(b, true)
	assert.Equal(t, map[int][]string{0: {"B"}, 1: {"C"}}, i.ViolatedNodeRules, "node 2 only violated in b")
	assert.Equal(t, []string{"B", "C"}, i.ViolatedRules())
	assert.Equal(t, []string{"W", "X"}, i.NotExecutedRules())

	assert.Equal(t, []string{"A", "B"}, a.ViolatedNodeRules[0], "receiver untouched")
}

func TestFindNodeSolutions(t *testing.T) {
	s := nodeSettings(conservation.SpinMagnitudeConservation, conservation.ParityConservation)
	p := solving.NewProblem(topology.TwoBodyDecay(), decay(t, "rho(770)0", "pi+", "pi-"), nil, s)

	got, err := solving.FindNodeSolutions(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Node)
	assert.Equal(t, []quantum.NodeProperties{
		{quantum.NodeLMagnitude: quantum.Int(1), quantum.NodeSMagnitude: quantum.Int(0)},
	}, got[0].Candidates)

	fixed := p.WithNodeProps(map[int]quantum.NodeProperties{0: {quantum.NodeLMagnitude: quantum.Int(2)}})
	got, err = solving.FindNodeSolutions(context.Background(), fixed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Candidates, "fixed L=2 violates parity")
	assert.Empty(t, solving.Combine(got))
}

func TestFindNodeSolutions_Deterministic(t *testing.T) {
	db, err := particle.Default()
	require.NoError(t, err)
	all, err := settings.CreateInteractionSettings(settings.Canonical, db)
	require.NoError(t, err)
	p := solving.NewProblem(topology.TwoBodyDecay(), decay(t, "rho(770)0", "pi+", "pi-"), nil, all[settings.Strong])

	serial, err := solving.FindNodeSolutions(context.Background(), p, solving.WithThreads(1))
	require.NoError(t, err)
	parallel, err := solving.FindNodeSolutions(context.Background(), p, solving.WithThreads(8), solving.WithChunkSize(1))
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)

	require.Len(t, serial, 1)
	require.NotEmpty(t, serial[0].Candidates)
	for _, c := range serial[0].Candidates {
		assert.Equal(t, quantum.Int(1), c[quantum.NodeLMagnitude])
		assert.Equal(t, quantum.Int(0), c[quantum.NodeSMagnitude])
	}
}

func TestFindNodeSolutions_Limits(t *testing.T) {
	s := nodeSettings(conservation.SpinMagnitudeConservation)
	p := solving.NewProblem(topology.TwoBodyDecay(), decay(t, "rho(770)0", "pi+", "pi-"), nil, s)

	_, err := solving.FindNodeSolutions(context.Background(), p, solving.WithCandidateLimit(14))
	assert.ErrorIs(t, err, solving.ErrCandidateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = solving.FindNodeSolutions(ctx, p)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = solving.FindNodeSolutions(context.Background(), solving.Problem{})
	assert.ErrorIs(t, err, solving.ErrNilTopology)
}

func TestFindNodeSolutions_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := solving.NewProblem(topology.TwoBodyDecay(), decay(t, "rho(770)0", "pi+", "pi-"), nil,
		nodeSettings(conservation.SpinMagnitudeConservation))

	_, err := solving.FindNodeSolutions(context.Background(), p, solving.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "enumerating node")
	assert.Contains(t, buf.String(), "candidates=15")
	assert.Contains(t, buf.String(), "solutions=1")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { solving.WithThreads(-1) })
	assert.Panics(t, func() { solving.WithChunkSize(0) })
	assert.Panics(t, func() { solving.WithCandidateLimit(0) })
	assert.Panics(t, func() { solving.WithLogger(nil) })
}

func TestCombine(t *testing.T) {
	l := func(v int64) quantum.NodeProperties { return quantum.NodeProperties{quantum.NodeLMagnitude: quantum.Int(v)} }
	got := solving.Combine([]solving.NodeSolutions{
		{Node: 0, Candidates: []quantum.NodeProperties{l(0), l(1)}},
		{Node: 1, Candidates: []quantum.NodeProperties{l(2), l(3)}},
	})
	assert.Equal(t, []solving.Solution{
		{0: l(0), 1: l(2)},
		{0: l(0), 1: l(3)},
		{0: l(1), 1: l(2)},
		{0: l(1), 1: l(3)},
	}, got)
	assert.Nil(t, solving.Combine(nil))
}

func TestRemoveDuplicateSolutions(t *testing.T) {
	sol := func(l int64, prefactor any) solving.Solution {
		return solving.Solution{0: {quantum.NodeLMagnitude: quantum.Int(l), quantum.NodeParityPrefactor: prefactor}}
	}
	in := []solving.Solution{
		sol(1, quantum.Int(-1)),
		sol(1, quantum.Int(1)),
		sol(2, quantum.Int(1)),
		sol(1, quantum.Int(-1)),
		{0: {quantum.NodeLMagnitude: int64(2), quantum.NodeParityPrefactor: 1}},
	}

	assert.Len(t, solving.RemoveDuplicateSolutions(in), 3, "integer kinds compare by value")

	got := solving.RemoveDuplicateSolutions(in, quantum.NodeParityPrefactor)
	require.Len(t, got, 2)
	assert.Equal(t, in[0], got[0])
	assert.Equal(t, in[2], got[1])

	stripped := got[0].Without(quantum.NodeParityPrefactor)
	assert.False(t, stripped[0].Has(quantum.NodeParityPrefactor))
	assert.True(t, got[0][0].Has(quantum.NodeParityPrefactor), "Without copies")
}

func TestDetermineInteractionTypes(t *testing.T) {
	tests := []struct {
		name    string
		in, out []string
		want    []settings.InteractionType
	}{
		{"hadrons", []string{"rho(770)0"}, []string{"pi+", "pi-"}, []settings.InteractionType{settings.Strong, settings.EM, settings.Weak}},
		{"photon", []string{"J/psi(1S)"}, []string{"pi0", "gamma"}, []settings.InteractionType{settings.EM}},
		{"charged lepton", []string{"J/psi(1S)"}, []string{"e+", "e-"}, []settings.InteractionType{settings.EM, settings.Weak}},
		{"neutrino", []string{"pi+"}, []string{"mu+", "nu(mu)"}, []settings.InteractionType{settings.Weak}},
		{"neutrino and photon", []string{"pi+"}, []string{"nu(mu)", "gamma"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solving.DetermineInteractionTypes(lookup(t, tt.in...), lookup(t, tt.out...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterInteractionTypes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	valid := []settings.InteractionType{settings.EM, settings.Weak}

	got := solving.FilterInteractionTypes(valid, []settings.InteractionType{settings.Weak, settings.Strong}, logger)
	assert.Equal(t, []settings.InteractionType{settings.Weak}, got)
	assert.Empty(t, buf.String())

	got = solving.FilterInteractionTypes(valid, []settings.InteractionType{settings.Strong}, logger)
	assert.Equal(t, valid, got)
	assert.Contains(t, buf.String(), "level=WARN")
}
