// Package backbone promotes routers into the inter-AS transit fabric. The
// classification runs in three steps: cross-AS endpoints first, then per AS
// a degree heuristic and a BFS pass that leaves every AS with a single
// connected backbone subgraph.
package backbone

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/unly/emufog/internal/graph"
	"github.com/unly/emufog/internal/ui"
	"github.com/unly/emufog/internal/util"
)

// DefaultDegreeFactor is the multiplier applied to the average router
// degree when promoting high-degree routers.
const DefaultDegreeFactor = 0.6

// Options tune the classification.
type Options struct {
	// DegreeFactor overrides DefaultDegreeFactor when > 0.
	DegreeFactor float64
	// TimeMeasuring prints per-step durations.
	TimeMeasuring bool
}

// Classify runs the backbone classification on the whole graph. Step 1 is
// sequential; steps 2 and 3 run concurrently with one worker per AS.
func Classify(g *graph.Graph, opts Options) error {
	factor := opts.DegreeFactor
	if factor <= 0 {
		factor = DefaultDegreeFactor
	}

	start := time.Now()
	if err := promoteCrossASNodes(g); err != nil {
		return err
	}
	if opts.TimeMeasuring {
		fmt.Println(ui.Detail("backbone step 1: " + util.FormatDuration(time.Since(start))))
	}

	start = time.Now()
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for _, as := range g.Systems() {
		w := &asWorker{as: as, degreeFactor: factor}
		eg.Go(w.run)
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if opts.TimeMeasuring {
		fmt.Println(ui.Detail("backbone steps 2+3: " + util.FormatDuration(time.Since(start))))
	}

	return nil
}

// promoteCrossASNodes promotes both endpoints of every cross-AS edge.
func promoteCrossASNodes(g *graph.Graph) error {
	for _, e := range g.Edges() {
		if !e.IsCrossAS() {
			continue
		}
		for _, n := range []*graph.Node{e.From(), e.To()} {
			if n.Kind() == graph.KindEdgeDevice {
				continue
			}
			if _, err := n.AS().ReplaceByBackbone(n); err != nil {
				return fmt.Errorf("promoting cross-AS endpoint: %w", err)
			}
		}
	}
	return nil
}
