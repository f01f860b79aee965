package reader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unly/emufog/internal/graph"
)

// ReadResult bundles the parsed graph with the per-kind counts of records
// that were skipped. Skipped records are not fatal; the counts surface in
// the stage report.
type ReadResult struct {
	Graph   *graph.Graph
	Skipped map[string]int
}

func newReadResult() *ReadResult {
	return &ReadResult{
		Graph:   graph.New(),
		Skipped: make(map[string]int),
	}
}

// skip counts one skipped record of the given kind.
func (r *ReadResult) skip(kind string) {
	r.Skipped[kind]++
}

// SkippedTotal returns the total number of skipped records.
func (r *ReadResult) SkippedTotal() int {
	total := 0
	for _, count := range r.Skipped {
		total += count
	}
	return total
}

// SkippedSummary renders the skip counts as "kind: n" pairs, sorted by
// kind, empty string when nothing was skipped.
func (r *ReadResult) SkippedSummary() string {
	if len(r.Skipped) == 0 {
		return ""
	}
	kinds := make([]string, 0, len(r.Skipped))
	for kind := range r.Skipped {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	parts := make([]string, len(kinds))
	for i, kind := range kinds {
		parts[i] = fmt.Sprintf("%s: %d", kind, r.Skipped[kind])
	}
	return strings.Join(parts, ", ")
}
