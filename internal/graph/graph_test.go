package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEdgeRouter(t *testing.T) {
	g := New()

	n, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID())
	assert.Equal(t, 0, n.AS().ID())
	assert.Equal(t, KindEdgeRouter, n.Kind())
	assert.Nil(t, n.Emulation())

	_, err = g.CreateEdgeRouter(1, 3)
	require.ErrorIs(t, err, ErrDuplicateID)

	// duplicate check is graph-global, not per AS
	_, err = g.CreateEdgeDevice(1, 0, &EmulationBinding{})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestCreateEdge(t *testing.T) {
	g := New()
	_, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)
	_, err = g.CreateEdgeRouter(2, 1)
	require.NoError(t, err)

	e, err := g.CreateEdge(7, 1, 2, 5.0, 100.0)
	require.NoError(t, err)
	assert.Equal(t, 1, e.From().ID())
	assert.Equal(t, 2, e.To().ID())
	assert.InDelta(t, 5.0, e.Latency(), 1e-6)
	assert.True(t, e.IsCrossAS())
	assert.Equal(t, e.To(), e.Other(e.From()))
	assert.Equal(t, e.From(), e.Other(e.To()))

	_, err = g.CreateEdge(7, 1, 2, 1.0, 1.0)
	assert.ErrorIs(t, err, ErrDuplicateID)
	_, err = g.CreateEdge(8, 1, 99, 1.0, 1.0)
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

func TestEdgeOrderIsInsertionOrder(t *testing.T) {
	g := New()
	for id := 1; id <= 4; id++ {
		_, err := g.CreateEdgeRouter(id, 0)
		require.NoError(t, err)
	}
	// incident edges keep insertion order even when edge ids are unsorted
	_, err := g.CreateEdge(30, 1, 2, 1, 1)
	require.NoError(t, err)
	_, err = g.CreateEdge(10, 1, 3, 1, 1)
	require.NoError(t, err)
	_, err = g.CreateEdge(20, 1, 4, 1, 1)
	require.NoError(t, err)

	var ids []int
	for _, e := range g.Node(1).Edges() {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []int{30, 10, 20}, ids)
}

func TestReplaceRoundTrip(t *testing.T) {
	g := New()
	as := g.System(0)
	r, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)
	_, err = g.CreateEdgeRouter(2, 0)
	require.NoError(t, err)
	_, err = g.CreateEdgeRouter(3, 0)
	require.NoError(t, err)
	_, err = g.CreateEdge(1, 1, 2, 1, 1)
	require.NoError(t, err)
	_, err = g.CreateEdge(2, 1, 3, 2, 1)
	require.NoError(t, err)

	before := edgeIDs(r)

	b, err := as.ReplaceByBackbone(r)
	require.NoError(t, err)
	assert.Equal(t, KindBackboneRouter, b.Kind())
	assert.Equal(t, 1, b.ID())
	assert.Equal(t, before, edgeIDs(b))
	assert.Len(t, as.BackboneRouters(), 1)

	// incident edges resolve to the converted variant
	assert.Equal(t, b, g.Edge(1).From())

	back, err := as.ReplaceByEdge(b)
	require.NoError(t, err)
	assert.Equal(t, KindEdgeRouter, back.Kind())
	assert.Equal(t, before, edgeIDs(back))
	assert.Len(t, as.EdgeRouters(), 3)
	assert.Empty(t, as.BackboneRouters())
}

func TestReplaceByEdgeDevice(t *testing.T) {
	g := New()
	as := g.System(0)
	r, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)

	binding := &EmulationBinding{IP: "10.0.0.1", Scaling: 1}
	d, err := as.ReplaceByEdgeDevice(r, binding)
	require.NoError(t, err)
	assert.Equal(t, KindEdgeDevice, d.Kind())
	assert.Equal(t, binding, d.Emulation())
	assert.Empty(t, as.EdgeRouters())
	assert.Len(t, as.EdgeDevices(), 1)
}

func TestReplaceAcrossASFails(t *testing.T) {
	g := New()
	r, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)
	other := g.System(1)

	_, err = other.ReplaceByBackbone(r)
	assert.ErrorIs(t, err, ErrWrongAS)
}

func TestReplaceBackboneIsIdempotent(t *testing.T) {
	g := New()
	as := g.System(0)
	r, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)

	b1, err := as.ReplaceByBackbone(r)
	require.NoError(t, err)
	b2, err := as.ReplaceByBackbone(b1)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
	assert.Len(t, as.BackboneRouters(), 1)
}

func TestDeviceCount(t *testing.T) {
	g := New()
	r, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)
	assert.False(t, r.HasDevices())
	assert.Zero(t, r.DeviceCount())

	_, err = g.CreateEdgeDevice(2, 0, &EmulationBinding{IP: "10.0.0.1", Scaling: 1})
	require.NoError(t, err)
	_, err = g.CreateEdgeDevice(3, 0, &EmulationBinding{IP: "10.0.0.2", Scaling: 4})
	require.NoError(t, err)
	_, err = g.CreateEdge(1, 1, 2, 0, 1000)
	require.NoError(t, err)
	_, err = g.CreateEdge(2, 1, 3, 0, 1000)
	require.NoError(t, err)

	assert.True(t, r.HasDevices())
	assert.Equal(t, 5, r.DeviceCount())
}

func TestNextIDs(t *testing.T) {
	g := New()
	_, err := g.CreateEdgeRouter(41, 0)
	require.NoError(t, err)
	_, err = g.CreateEdgeRouter(7, 0)
	require.NoError(t, err)
	_, err = g.CreateEdge(12, 41, 7, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 42, g.NextNodeID())
	assert.Equal(t, 13, g.NextEdgeID())
}

func TestSystemsSorted(t *testing.T) {
	g := New()
	g.System(5)
	g.System(1)
	g.System(3)

	var ids []int
	for _, as := range g.Systems() {
		ids = append(ids, as.ID())
	}
	assert.Equal(t, []int{1, 3, 5}, ids)
}

func edgeIDs(n *Node) []int {
	var ids []int
	for _, e := range n.Edges() {
		ids = append(ids, e.ID())
	}
	return ids
}
