package fog

import (
	"cmp"
	"math"
	"slices"

	"github.com/unly/emufog/internal/graph"
)

// costEntry records the cheapest known path from one starting node.
type costEntry struct {
	predecessor int // node id of the hop before this candidate, -1 at the source
	cost        float32
}

// candidate is the placer's scratch state for one router eligible to host
// a fog container. It lives outside the graph; the graph stays immutable
// during placement.
type candidate struct {
	node *graph.Node

	costs map[*startingNode]costEntry

	// modified marks the fog type assignment as stale
	modified bool

	fogType      *graph.FogContainer
	coveredCount int
	avgConnCost  float32
}

func newCandidate(n *graph.Node) *candidate {
	return &candidate{
		node:     n,
		costs:    make(map[*startingNode]costEntry),
		modified: true,
	}
}

// setCost records the cheapest path from s and registers this candidate as
// a possible site for s.
func (c *candidate) setCost(s *startingNode, predecessor int, cost float32) {
	c.costs[s] = costEntry{predecessor: predecessor, cost: cost}
	s.addPossible(c)
}

// removeStartingNode unregisters s and flags the assignment stale.
func (c *candidate) removeStartingNode(s *startingNode) {
	if _, ok := c.costs[s]; !ok {
		return
	}
	delete(c.costs, s)
	c.modified = true
}

// findFogType picks the container type with the lowest cost per served
// connection for the starting nodes currently reaching this candidate.
// Ties break toward the cheaper container.
func (c *candidate) findFogType(types []graph.FogContainer) {
	if !c.modified {
		return
	}

	c.fogType = nil
	c.coveredCount = 0

	deviceCount := 0
	for s := range c.costs {
		deviceCount += s.remaining
	}

	bestPerConnection := float32(math.MaxFloat32)
	for i := range types {
		t := &types[i]
		served := min(deviceCount, t.MaxClients)
		if served <= 0 {
			continue
		}
		perConnection := t.Cost / float32(served)
		better := perConnection < bestPerConnection ||
			(perConnection == bestPerConnection && c.fogType != nil && t.Cost < c.fogType.Cost)
		if better {
			c.fogType = t
			c.coveredCount = served
			bestPerConnection = perConnection
		}
	}

	c.calculateAverageConnectionCost()
	c.modified = false
}

func (c *candidate) calculateAverageConnectionCost() {
	if len(c.costs) == 0 {
		c.avgConnCost = 0
		return
	}
	sum := float32(0)
	for _, entry := range c.costs {
		sum += entry.cost
	}
	c.avgConnCost = sum / float32(len(c.costs))
}

// averageDeploymentCost is the container cost spread over the connections
// it would serve.
func (c *candidate) averageDeploymentCost() float32 {
	if c.fogType == nil || c.coveredCount == 0 {
		return float32(math.MaxFloat32)
	}
	return c.fogType.Cost / float32(c.coveredCount)
}

// allocation is one starting node's share of a selected candidate's
// capacity.
type allocation struct {
	starting *startingNode
	count    int
}

// coveredStartingNodes distributes the candidate's capacity over its
// starting nodes in ascending order of path cost.
func (c *candidate) coveredStartingNodes() []allocation {
	ordered := c.sortedStartingNodes()

	var allocations []allocation
	remaining := c.coveredCount
	for _, s := range ordered {
		if remaining <= 0 {
			break
		}
		take := min(remaining, s.remaining)
		allocations = append(allocations, allocation{starting: s, count: take})
		remaining -= take
	}
	return allocations
}

// sortedStartingNodes orders the registered starting nodes by path cost,
// breaking ties by node id for determinism.
func (c *candidate) sortedStartingNodes() []*startingNode {
	ordered := make([]*startingNode, 0, len(c.costs))
	for s := range c.costs {
		ordered = append(ordered, s)
	}
	slices.SortFunc(ordered, func(a, b *startingNode) int {
		if d := cmp.Compare(c.costs[a].cost, c.costs[b].cost); d != 0 {
			return d
		}
		return a.node.ID() - b.node.ID()
	})
	return ordered
}

// clear drops every starting node registration, typically after the
// candidate has been selected.
func (c *candidate) clear() {
	c.costs = make(map[*startingNode]costEntry)
	c.modified = true
}
