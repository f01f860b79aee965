package fog

import "github.com/unly/emufog/internal/graph"

// startingNode wraps a device-bearing edge router the placer must cover.
type startingNode struct {
	node *graph.Node

	// device slots not yet allocated to a placement
	remaining int

	// candidate sites that can reach this node within the cost threshold
	possible map[*candidate]struct{}
}

func newStartingNode(n *graph.Node) *startingNode {
	return &startingNode{
		node:      n,
		remaining: n.DeviceCount(),
		possible:  make(map[*candidate]struct{}),
	}
}

// addPossible registers a candidate that can reach this node.
func (s *startingNode) addPossible(c *candidate) {
	s.possible[c] = struct{}{}
}

// removePossible drops a candidate, typically after it has been selected.
func (s *startingNode) removePossible(c *candidate) {
	delete(s.possible, c)
}

// notifyPossible marks every remaining candidate as stale so its fog type
// assignment is recomputed before the next selection.
func (s *startingNode) notifyPossible() {
	for c := range s.possible {
		c.removeStartingNode(s)
	}
}
