package backbone

import (
	"fmt"

	"github.com/unly/emufog/internal/graph"
)

// asWorker runs steps 2 and 3 of the classification on a single AS. The
// AS partitioning is the concurrency boundary: a worker only ever touches
// nodes owned by its AS.
type asWorker struct {
	as           *graph.AS
	degreeFactor float64
}

func (w *asWorker) run() error {
	if err := w.promoteHighDegrees(); err != nil {
		return err
	}
	return w.connectBackbone()
}

// promoteHighDegrees promotes every edge router whose degree reaches the
// configured share of the AS's average router degree.
func (w *asWorker) promoteHighDegrees() error {
	threshold := w.averageDegree() * w.degreeFactor

	for _, r := range w.as.EdgeRouters() {
		if float64(r.Degree()) < threshold {
			continue
		}
		if _, err := w.as.ReplaceByBackbone(r); err != nil {
			return fmt.Errorf("promoting high-degree router: %w", err)
		}
	}
	return nil
}

// averageDegree computes the average degree over the routers of the AS.
// Devices are excluded; they are not present at this stage anyway.
func (w *asWorker) averageDegree() float64 {
	routers := w.as.Routers()
	if len(routers) == 0 {
		return 0
	}
	sum := 0
	for _, n := range routers {
		sum += n.Degree()
	}
	return float64(sum) / float64(len(routers))
}

// connectBackbone enforces a single connected backbone subgraph within the
// AS by a breadth-first search from the smallest-id backbone node. Whenever
// the search reaches a backbone node through a chain of edge routers, the
// chain is promoted.
func (w *asWorker) connectBackbone() error {
	backbones := w.as.BackboneRouters()
	if len(backbones) == 0 {
		return nil
	}

	visited := make(map[int]bool)
	seen := make(map[int]bool)
	predecessors := make(map[int]*graph.Node)

	start := backbones[0]
	predecessors[start.ID()] = nil
	seen[start.ID()] = true
	queue := []*graph.Node{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node.ID()] {
			continue
		}
		visited[node.ID()] = true

		// promote the predecessor chain that led to this backbone node
		if node.Kind() == graph.KindBackboneRouter {
			if err := w.promoteTrace(predecessors, node); err != nil {
				return err
			}
		}

		for _, e := range node.Edges() {
			if e.IsCrossAS() {
				continue
			}
			neighbor := e.Other(node)
			if neighbor.Kind() == graph.KindEdgeDevice || visited[neighbor.ID()] {
				continue
			}

			if seen[neighbor.ID()] {
				// prefer predecessors that route via the backbone
				if node.Kind() == graph.KindBackboneRouter && isEdgeRouter(predecessors[neighbor.ID()]) {
					predecessors[neighbor.ID()] = node
				}
			} else {
				predecessors[neighbor.ID()] = node
				seen[neighbor.ID()] = true
				queue = append(queue, neighbor)
			}
		}
	}

	return nil
}

// promoteTrace walks the predecessor chain of a backbone node and promotes
// every edge router on it until it hits another backbone node or the start.
func (w *asWorker) promoteTrace(predecessors map[int]*graph.Node, node *graph.Node) error {
	predecessor := predecessors[node.ID()]
	for isEdgeRouter(predecessor) {
		if _, err := w.as.ReplaceByBackbone(predecessor); err != nil {
			return fmt.Errorf("promoting backbone trace: %w", err)
		}
		predecessor = predecessors[predecessor.ID()]
	}
	return nil
}

func isEdgeRouter(n *graph.Node) bool {
	return n != nil && n.Kind() == graph.KindEdgeRouter
}
