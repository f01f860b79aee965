package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unly/emufog/internal/graph"
)

func deviceType(avg float32, scaling int) graph.DeviceContainer {
	return graph.DeviceContainer{
		Container:     graph.Container{Image: "emufog/device", Tag: "latest"},
		ScalingFactor: scaling,
		AverageCount:  avg,
	}
}

func newPool(t *testing.T) *graph.IPPool {
	t.Helper()
	pool, err := graph.NewIPPool("10.0.0.1")
	require.NoError(t, err)
	return pool
}

func buildTopology(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	_, err := g.CreateEdgeRouter(1, 0)
	require.NoError(t, err)
	_, err = g.CreateEdgeRouter(2, 0)
	require.NoError(t, err)
	_, err = g.CreateEdgeRouter(3, 1)
	require.NoError(t, err)
	_, err = g.CreateEdge(1, 1, 2, 5, 100)
	require.NoError(t, err)
	_, err = g.CreateEdge(2, 2, 3, 5, 100)
	require.NoError(t, err)
	// a backbone router never receives devices
	as := g.System(1)
	_, err = as.ReplaceByBackbone(g.Node(3))
	require.NoError(t, err)
	return g
}

func TestDeterministicPlacement(t *testing.T) {
	g := buildTopology(t)
	p := &Placer{Types: []graph.DeviceContainer{deviceType(2.4, 1)}, Pool: newPool(t)}
	require.NoError(t, p.Place(g))

	// round(2.4) = 2 devices per edge router
	assert.Equal(t, 2, g.Node(1).DeviceCount())
	assert.Equal(t, 2, g.Node(2).DeviceCount())
	assert.Len(t, g.EdgeDevices(), 4)
}

func TestEveryDeviceHasOneRouterLink(t *testing.T) {
	g := buildTopology(t)
	p := &Placer{Types: []graph.DeviceContainer{deviceType(3.0, 1)}, Pool: newPool(t)}
	require.NoError(t, p.Place(g))

	for _, dev := range g.EdgeDevices() {
		edges := dev.Edges()
		require.Len(t, edges, 1)
		router := edges[0].Other(dev)
		assert.Equal(t, graph.KindEdgeRouter, router.Kind())
		assert.Equal(t, dev.AS(), router.AS())
		assert.Zero(t, edges[0].Latency())
	}
}

func TestDeviceBindings(t *testing.T) {
	g := buildTopology(t)
	p := &Placer{Types: []graph.DeviceContainer{deviceType(1.0, 2)}, Pool: newPool(t)}
	require.NoError(t, p.Place(g))

	seen := make(map[string]bool)
	for _, dev := range g.EdgeDevices() {
		binding := dev.Emulation()
		require.NotNil(t, binding)
		assert.Equal(t, "emufog/device:latest", binding.Container.Ref())
		assert.Equal(t, 2, binding.Scaling)
		assert.False(t, seen[binding.IP], "duplicate ip %s", binding.IP)
		seen[binding.IP] = true
	}
}

func TestScalingMultipliesNodeCount(t *testing.T) {
	g := buildTopology(t)
	p := &Placer{Types: []graph.DeviceContainer{deviceType(1.0, 3)}, Pool: newPool(t)}
	require.NoError(t, p.Place(g))

	// one draw of 1 per router, times scaling factor 3
	assert.Len(t, g.System(0).EdgeDevices(), 6)
}

func TestPoissonPlacementIsSeeded(t *testing.T) {
	counts := func(seed uint64) []int {
		g := buildTopology(t)
		p := &Placer{
			Types:   []graph.DeviceContainer{deviceType(2.5, 1)},
			Poisson: true,
			Seed:    seed,
			Pool:    newPool(t),
		}
		require.NoError(t, p.Place(g))
		return []int{g.Node(1).DeviceCount(), g.Node(2).DeviceCount()}
	}

	assert.Equal(t, counts(7), counts(7), "same seed must reproduce")
}

func TestBackboneRoutersGetNoDevices(t *testing.T) {
	g := buildTopology(t)
	p := &Placer{Types: []graph.DeviceContainer{deviceType(2.0, 1)}, Pool: newPool(t)}
	require.NoError(t, p.Place(g))

	assert.Zero(t, g.Node(3).DeviceCount())
}
