// Package export renders the transformed topology into a deployment
// script the emulator consumes.
package export

import (
	"github.com/unly/emufog/internal/fog"
	"github.com/unly/emufog/internal/graph"
)

// Exporter defines the interface for deployment script generators.
type Exporter interface {
	Export(g *graph.Graph, result fog.Result, pool *graph.IPPool) string
}

// MaxiNetScript generates a MaxiNet experiment script for the given
// topology and fog placements. The pool assigns addresses to the fog
// containers.
func MaxiNetScript(g *graph.Graph, result fog.Result, pool *graph.IPPool) string {
	e := &MaxiNetExporter{}
	return e.Export(g, result, pool)
}
