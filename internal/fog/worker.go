package fog

import (
	"fmt"
	"time"

	"github.com/unly/emufog/internal/graph"
	"github.com/unly/emufog/internal/ui"
	"github.com/unly/emufog/internal/util"
)

// asWorker runs the greedy covering selection for a single AS. All scratch
// state is owned by the worker; only the shared budget counter is touched
// concurrently.
type asWorker struct {
	as     *graph.AS
	placer *Placer
}

func (w *asWorker) run() asResult {
	start := time.Now()

	starting := w.startingNodes()
	if len(starting) == 0 {
		return asResult{success: true}
	}

	candidates := w.candidates()
	computeReachability(w.as, starting, candidates, w.placer.CostThreshold)

	// drop sites no starting node can reach
	for id, c := range candidates {
		if len(c.costs) == 0 {
			delete(candidates, id)
		}
	}

	result := w.cover(starting, candidates)

	if w.placer.TimeMeasuring {
		fmt.Println(ui.Detail(fmt.Sprintf("fog AS %d: %d placements in %s",
			w.as.ID(), len(result.placements), util.FormatDuration(time.Since(start)))))
	}
	return result
}

// startingNodes collects the device-bearing edge routers of the AS.
func (w *asWorker) startingNodes() []*startingNode {
	var starting []*startingNode
	for _, r := range w.as.EdgeRouters() {
		if r.HasDevices() {
			starting = append(starting, newStartingNode(r))
		}
	}
	return starting
}

// candidates maps every router of the AS to fresh placer scratch state.
func (w *asWorker) candidates() map[int]*candidate {
	candidates := make(map[int]*candidate)
	for _, n := range w.as.Routers() {
		candidates[n.ID()] = newCandidate(n)
	}
	return candidates
}

// cover greedily selects candidates until every starting node is fully
// covered or the global budget is exhausted.
func (w *asWorker) cover(starting []*startingNode, candidates map[int]*candidate) asResult {
	active := make(map[*startingNode]struct{}, len(starting))
	for _, s := range starting {
		active[s] = struct{}{}
	}

	var placements []Placement
	for {
		if len(active) == 0 {
			return asResult{success: true, placements: placements}
		}
		if !w.placer.nodesLeft() {
			return asResult{success: false, placements: placements}
		}

		for _, c := range candidates {
			c.findFogType(w.placer.Types)
		}

		winner := pickWinner(candidates)
		if winner == nil {
			// no remaining candidate can reach an uncovered starting node
			return asResult{success: false, placements: placements}
		}

		w.placer.takeNode()
		placements = append(placements, Placement{Node: winner.node, Type: *winner.fogType})

		w.applyCoverage(winner, candidates, active)
	}
}

// pickWinner returns the minimal candidate under the selection order.
func pickWinner(candidates map[int]*candidate) *candidate {
	var winner *candidate
	for _, c := range candidates {
		if c.fogType == nil {
			continue
		}
		if winner == nil || compareCandidates(c, winner) < 0 {
			winner = c
		}
	}
	return winner
}

// applyCoverage allocates the winner's capacity to its starting nodes in
// ascending cost order and prunes the bookkeeping.
func (w *asWorker) applyCoverage(winner *candidate, candidates map[int]*candidate, active map[*startingNode]struct{}) {
	for _, alloc := range winner.coveredStartingNodes() {
		s := alloc.starting
		s.remaining -= alloc.count
		if s.remaining > 0 {
			continue
		}
		// fully covered: unregister from every remaining possible site
		s.notifyPossible()
		delete(active, s)
	}

	// the winner cannot be selected twice
	for s := range winner.costs {
		s.removePossible(winner)
	}
	winner.clear()
	delete(candidates, winner.node.ID())

	for id, c := range candidates {
		if len(c.costs) == 0 {
			delete(candidates, id)
		}
	}
}
