package topology_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qrules/topology"
)

func TestTwoBodyDecay(t *testing.T) {
	top := topology.TwoBodyDecay()
	require.NoError(t, top.Verify())

	assert.Equal(t, []int{0}, top.Nodes())
	assert.Equal(t, []int{-1}, top.InitialStateEdgeIDs())
	assert.Equal(t, []int{0, 1}, top.FinalStateEdgeIDs())
	assert.Empty(t, top.IntermediateEdgeIDs())

	in, err := top.IngoingEdgeIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1}, in)
	out, err := top.OutgoingEdgeIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, out)
}

func TestNBody(t *testing.T) {
	top, err := topology.NBody(2, 3)
	require.NoError(t, err)
	require.NoError(t, top.Verify())
	assert.Equal(t, []int{-2, -1}, top.InitialStateEdgeIDs())
	assert.Equal(t, []int{0, 1, 2}, top.FinalStateEdgeIDs())

	for _, tc := range [][2]int{{0, 2}, {1, 0}, {-1, 3}} {
		_, err := topology.NBody(tc[0], tc[1])
		assert.ErrorIs(t, err, topology.ErrTooFewStates, tc)
	}
}

func TestIsobarChain(t *testing.T) {
	top, err := topology.IsobarChain(4)
	require.NoError(t, err)
	require.NoError(t, top.Verify())

	assert.Equal(t, []int{0, 1, 2}, top.Nodes())
	assert.Equal(t, []int{-1}, top.InitialStateEdgeIDs())
	assert.Equal(t, []int{0, 1, 2, 3}, top.FinalStateEdgeIDs())
	assert.Equal(t, []int{4, 5}, top.IntermediateEdgeIDs())

	down, err := top.OriginatingFinalStateEdgeIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, down)
	down, err = top.OriginatingFinalStateEdgeIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, down)

	two, err := topology.IsobarChain(2)
	require.NoError(t, err)
	assert.Equal(t, topology.TwoBodyDecay().Edges(), two.Edges())

	_, err = topology.IsobarChain(1)
	assert.ErrorIs(t, err, topology.ErrTooFewStates)
}

func TestBuildByHand(t *testing.T) {
	top := topology.New()
	require.NoError(t, top.AddNode(0))
	require.NoError(t, top.AddNode(1))
	for _, id := range []int{-1, 0, 1, 2, 3} {
		require.NoError(t, top.AddEdge(id))
	}
	require.NoError(t, top.AttachIngoing(0, -1))
	require.NoError(t, top.AttachOutgoing(0, 0, 2))
	require.NoError(t, top.AttachIngoing(1, 2))
	require.NoError(t, top.AttachOutgoing(1, 1, 3))
	require.NoError(t, top.Verify())

	e, err := top.Edge(2)
	require.NoError(t, err)
	assert.Equal(t, topology.Edge{ID: 2, Origin: 0, End: 1}, e)
	assert.True(t, e.IsIntermediate())
	assert.Equal(t, []int{2}, top.IntermediateEdgeIDs())

	assert.ErrorIs(t, top.AddNode(0), topology.ErrNodeExists)
	assert.ErrorIs(t, top.AddEdge(3), topology.ErrEdgeExists)
	assert.ErrorIs(t, top.AttachIngoing(7, 0), topology.ErrNodeNotFound)
	assert.ErrorIs(t, top.AttachIngoing(1, 42), topology.ErrEdgeNotFound)
	assert.ErrorIs(t, top.AttachOutgoing(1, 0), topology.ErrEdgeAlreadyAttached)
	_, err = top.Edge(42)
	assert.ErrorIs(t, err, topology.ErrEdgeNotFound)
	_, err = top.IngoingEdgeIDs(9)
	assert.ErrorIs(t, err, topology.ErrNodeNotFound)
}

func TestAttach_Atomic(t *testing.T) {
	top := topology.New()
	require.NoError(t, top.AddNode(0))
	require.NoError(t, top.AddEdge(0))

	assert.ErrorIs(t, top.AttachOutgoing(0, 0, 1), topology.ErrEdgeNotFound)
	e, err := top.Edge(0)
	require.NoError(t, err)
	assert.Equal(t, topology.NoNode, e.Origin, "failed attach leaves edges untouched")
}

func TestVerify(t *testing.T) {
	t.Run("dangling", func(t *testing.T) {
		top := topology.TwoBodyDecay()
		require.NoError(t, top.AddEdge(5))
		assert.ErrorIs(t, top.Verify(), topology.ErrDanglingEdge)
	})
	t.Run("isolated", func(t *testing.T) {
		top := topology.TwoBodyDecay()
		require.NoError(t, top.AddNode(1))
		require.NoError(t, top.AddEdge(7))
		require.NoError(t, top.AttachIngoing(1, 7))
		err := top.Verify()
		assert.ErrorIs(t, err, topology.ErrIsolatedNode)
		assert.NotErrorIs(t, err, topology.ErrDanglingEdge)
	})
	t.Run("single node needs no link", func(t *testing.T) {
		top := topology.New()
		require.NoError(t, top.AddNode(0))
		assert.NoError(t, top.Verify())
	})
}

func TestClone(t *testing.T) {
	top := topology.TwoBodyDecay()
	c := top.Clone()
	require.NoError(t, c.AddNode(1))
	require.NoError(t, c.AddEdge(2))
	require.NoError(t, c.AttachIngoing(1, 2))

	assert.Equal(t, []int{0}, top.Nodes())
	assert.Len(t, top.Edges(), 3)
	assert.Len(t, c.Edges(), 4)
	assert.False(t, top.HasNode(1))
}

func TestConcurrentReads(t *testing.T) {
	top, err := topology.IsobarChain(5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = top.FinalStateEdgeIDs()
			_, _ = top.OriginatingFinalStateEdgeIDs(0)
			_ = top.Clone()
		}()
	}
	wg.Wait()
	assert.Len(t, top.FinalStateEdgeIDs(), 5)
}

func TestFindCycle(t *testing.T) {
	chain, err := topology.IsobarChain(4)
	require.NoError(t, err)
	assert.Nil(t, chain.FindCycle())

	top := topology.New()
	for _, n := range []int{0, 1, 2} {
		require.NoError(t, top.AddNode(n))
	}
	for _, id := range []int{-1, 0, 3, 4, 5} {
		require.NoError(t, top.AddEdge(id))
	}
	require.NoError(t, top.AttachIngoing(0, -1))
	require.NoError(t, top.AttachOutgoing(0, 0, 3))
	require.NoError(t, top.AttachIngoing(1, 3))
	require.NoError(t, top.AttachOutgoing(1, 4))
	require.NoError(t, top.AttachIngoing(2, 4))
	require.NoError(t, top.AttachOutgoing(2, 5))
	require.NoError(t, top.AttachIngoing(1, 5))

	assert.Equal(t, []int{1, 2, 1}, top.FindCycle())
	assert.ErrorIs(t, top.Verify(), topology.ErrCycle)

	loop := topology.New()
	require.NoError(t, loop.AddNode(7))
	require.NoError(t, loop.AddEdge(0))
	require.NoError(t, loop.AttachOutgoing(7, 0))
	require.NoError(t, loop.AttachIngoing(7, 0))
	assert.Equal(t, []int{7, 7}, loop.FindCycle())
}
