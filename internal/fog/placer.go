// Package fog selects fog node locations per autonomous system. Each AS is
// covered independently by a greedy set-cover pass over the routers that
// can reach its device-bearing edge routers within a latency budget.
package fog

import (
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/unly/emufog/internal/graph"
)

// Placer holds the placement configuration and the process-wide fog node
// budget shared by all AS workers.
type Placer struct {
	Types         []graph.FogContainer
	CostThreshold float32
	MaxFogNodes   int
	TimeMeasuring bool

	remaining atomic.Int32
}

// Place runs the placement concurrently over all autonomous systems and
// merges the per-AS results. The aggregate is successful only if every AS
// succeeded; placements are sorted by (AS id, node id).
func (p *Placer) Place(g *graph.Graph) Result {
	p.remaining.Store(int32(p.MaxFogNodes))

	var mu sync.Mutex
	results := make([]asResult, 0, len(g.Systems()))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for _, as := range g.Systems() {
		w := &asWorker{as: as, placer: p}
		eg.Go(func() error {
			r := w.run()
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	merged := Result{Success: true}
	for _, r := range results {
		merged.Success = merged.Success && r.success
		merged.Placements = append(merged.Placements, r.placements...)
	}

	slices.SortFunc(merged.Placements, func(a, b Placement) int {
		if c := a.Node.AS().ID() - b.Node.AS().ID(); c != 0 {
			return c
		}
		return a.Node.ID() - b.Node.ID()
	})

	return merged
}

// nodesLeft reports whether the shared budget still allows a placement.
// A slightly stale read is acceptable; the overshoot is bounded by the
// number of workers.
func (p *Placer) nodesLeft() bool {
	return p.remaining.Load() > 0
}

// takeNode consumes one slot of the shared budget.
func (p *Placer) takeNode() {
	p.remaining.Add(-1)
}
