package fog

import (
	"errors"

	"github.com/unly/emufog/internal/graph"
)

// ErrPlacementFailed reports that placement stopped before every
// device-bearing router was covered: either the fog node budget ran out or
// no remaining candidate could reach an uncovered router. The placements
// made so far are still usable; the run as a whole is flagged as failed.
var ErrPlacementFailed = errors.New("fog node budget exhausted before all devices were covered")

// Placement assigns a fog container type to a router of the topology.
type Placement struct {
	Node *graph.Node
	Type graph.FogContainer
}

// Result aggregates the per-AS placement outcomes. Success is true only if
// every AS covered all of its device-bearing routers within the budget.
type Result struct {
	Success    bool
	Placements []Placement
}

type asResult struct {
	success    bool
	placements []Placement
}
