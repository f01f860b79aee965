package fog

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/unly/emufog/internal/graph"
)

// routerGraph is the AS's router topology in gonum form: devices and
// cross-AS links are excluded, parallel links collapse to the cheapest.
func routerGraph(as *graph.AS) *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	for _, n := range as.Routers() {
		wg.AddNode(simple.Node(n.ID()))
	}

	for _, n := range as.Routers() {
		for _, e := range n.Edges() {
			if e.IsCrossAS() {
				continue
			}
			other := e.Other(n)
			if other.Kind() == graph.KindEdgeDevice || other.ID() == n.ID() {
				continue
			}
			weight := float64(e.Latency())
			if existing := wg.WeightedEdge(int64(n.ID()), int64(other.ID())); existing != nil && existing.Weight() <= weight {
				continue
			}
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(n.ID()),
				T: simple.Node(other.ID()),
				W: weight,
			})
		}
	}

	return wg
}

// computeReachability runs one Dijkstra per starting node over the router
// graph and records every candidate reachable within the threshold,
// together with the cheapest cost and the predecessor on that path.
func computeReachability(as *graph.AS, starting []*startingNode, candidates map[int]*candidate, threshold float32) {
	wg := routerGraph(as)

	for _, s := range starting {
		shortest := path.DijkstraFrom(wg.Node(int64(s.node.ID())), wg)

		for id, c := range candidates {
			weight := shortest.WeightTo(int64(id))
			if math.IsInf(weight, 1) || weight > float64(threshold) {
				continue
			}
			predecessor := -1
			if nodes, _ := shortest.To(int64(id)); len(nodes) >= 2 {
				predecessor = int(nodes[len(nodes)-2].ID())
			}
			c.setCost(s, predecessor, float32(weight))
		}
	}
}
