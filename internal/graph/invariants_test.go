package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildRing creates a single-AS ring topology of n routers.
func buildRing(n int) *Graph {
	g := New()
	for id := 0; id < n; id++ {
		_, _ = g.CreateEdgeRouter(id, 0)
	}
	for id := 0; id < n; id++ {
		_, _ = g.CreateEdge(id, id, (id+1)%n, 1, 100)
	}
	return g
}

// TestVariantInvariants verifies the structural graph invariants under
// arbitrary conversion sequences.
func TestVariantInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// No node id ever appears in more than one variant bucket of its AS.
	properties.Property("variant buckets stay disjoint", prop.ForAll(
		func(conversions []int) bool {
			const size = 8
			g := buildRing(size)
			as := g.System(0)
			for _, c := range conversions {
				n := g.Node(abs(c) % size)
				var err error
				if c%2 == 0 {
					_, err = as.ReplaceByBackbone(n)
				} else {
					_, err = as.ReplaceByEdge(n)
				}
				if err != nil {
					return false
				}
			}

			seen := make(map[int]int)
			for _, n := range as.EdgeRouters() {
				seen[n.ID()]++
			}
			for _, n := range as.BackboneRouters() {
				seen[n.ID()]++
			}
			for _, n := range as.EdgeDevices() {
				seen[n.ID()]++
			}
			if len(seen) != size {
				return false
			}
			for _, count := range seen {
				if count != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	// Conversion preserves the incident edge multiset.
	properties.Property("conversion preserves incident edges", prop.ForAll(
		func(target int, toBackbone bool) bool {
			const size = 8
			g := buildRing(size)
			as := g.System(0)
			n := g.Node(abs(target) % size)

			before := make([]int, 0, n.Degree())
			for _, e := range n.Edges() {
				before = append(before, e.ID())
			}

			var converted *Node
			var err error
			if toBackbone {
				converted, err = as.ReplaceByBackbone(n)
			} else {
				converted, err = as.ReplaceByEdge(n)
			}
			if err != nil {
				return false
			}

			after := make([]int, 0, converted.Degree())
			for _, e := range converted.Edges() {
				after = append(after, e.ID())
			}
			if len(before) != len(after) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			// edges resolve back to the converted node
			for _, e := range converted.Edges() {
				if e.Other(converted) == nil {
					return false
				}
			}
			return true
		},
		gen.IntRange(-100, 100),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
