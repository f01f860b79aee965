// Package device distributes synthetic end-user devices over the edge
// routers of a classified topology.
package device

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/unly/emufog/internal/graph"
)

// Device links get an effectively unconstrained bandwidth.
const deviceBandwidth = 1000.0

// Placer attaches device nodes to edge routers according to the configured
// device type distribution.
type Placer struct {
	Types []graph.DeviceContainer
	// Poisson switches from deterministic rounding to Poisson sampling of
	// the per-router device count.
	Poisson bool
	Seed    uint64
	Pool    *graph.IPPool
}

// Place walks all edge routers in id order and attaches devices. Every
// device gets a fresh graph-unique id, the AS of its router, and a
// zero-latency link to it.
func (p *Placer) Place(g *graph.Graph) error {
	samplers := p.samplers()

	for _, router := range g.EdgeRouters() {
		for i, t := range p.Types {
			count := samplers[i]()
			for range count * t.ScalingFactor {
				if err := p.attach(g, router, t); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *Placer) attach(g *graph.Graph, router *graph.Node, t graph.DeviceContainer) error {
	binding := &graph.EmulationBinding{
		IP:        p.Pool.Next(),
		Container: t.Container,
		Scaling:   t.ScalingFactor,
	}
	dev, err := g.CreateEdgeDevice(g.NextNodeID(), router.AS().ID(), binding)
	if err != nil {
		return fmt.Errorf("creating device: %w", err)
	}
	if _, err := g.CreateEdge(g.NextEdgeID(), router.ID(), dev.ID(), 0, deviceBandwidth); err != nil {
		return fmt.Errorf("linking device: %w", err)
	}
	return nil
}

// samplers returns one count sampler per device type. In deterministic
// mode the count is the rounded average; in Poisson mode it is drawn from
// a seeded Poisson distribution with the average as expectation.
func (p *Placer) samplers() []func() int {
	samplers := make([]func() int, len(p.Types))
	for i, t := range p.Types {
		if p.Poisson {
			dist := distuv.Poisson{
				Lambda: float64(t.AverageCount),
				Src:    rand.NewPCG(p.Seed, uint64(i)),
			}
			samplers[i] = func() int { return int(dist.Rand()) }
		} else {
			count := int(math.Round(float64(t.AverageCount)))
			samplers[i] = func() int { return count }
		}
	}
	return samplers
}
