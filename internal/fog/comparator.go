package fog

import "cmp"

// compareCandidates orders candidates for greedy selection:
// cheaper average deployment cost first, then cheaper average connection
// cost, then more covered connections, then smaller node id. The final key
// makes the selection deterministic.
func compareCandidates(a, b *candidate) int {
	if c := cmp.Compare(a.averageDeploymentCost(), b.averageDeploymentCost()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.avgConnCost, b.avgConnCost); c != 0 {
		return c
	}
	if c := cmp.Compare(b.coveredCount, a.coveredCount); c != 0 {
		return c
	}
	return a.node.ID() - b.node.ID()
}
