package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var caidaFiles = []string{
	"testdata/trace.nodes.geo",
	"testdata/trace.nodes.as",
	"testdata/trace.links",
}

func TestCaidaReader(t *testing.T) {
	r, err := ForType("caida")
	require.NoError(t, err)

	result, err := r.Read(caidaFiles)
	require.NoError(t, err)
	g := result.Graph

	// only nodes with both coordinates and an AS become routers
	assert.Len(t, g.EdgeRouters(), 3)
	assert.Len(t, g.System(10).EdgeRouters(), 2)
	assert.Len(t, g.System(20).EdgeRouters(), 1)

	require.Len(t, g.Edges(), 2)
	for _, e := range g.Edges() {
		assert.InDelta(t, 1.0, e.Latency(), 1e-6, "default latency calculator")
		assert.InDelta(t, caidaBandwidth, e.Bandwidth(), 1e-6)
	}
}

func TestCaidaReaderCountsSkippedRecords(t *testing.T) {
	r, err := ForType("caida")
	require.NoError(t, err)

	result, err := r.Read(caidaFiles)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped["geo id not numeric"])
	assert.Equal(t, 1, result.Skipped["AS for unknown node"])
	assert.Equal(t, 1, result.Skipped["AS line too short"])
	assert.Equal(t, 1, result.Skipped["link endpoint unknown"])
	assert.Equal(t, 1, result.Skipped["node without AS"])
}

func TestCaidaReaderCustomLatency(t *testing.T) {
	cr := &CaidaReader{Calculator: ConstantLatency{Value: 4.5}}

	result, err := cr.Read(caidaFiles)
	require.NoError(t, err)

	for _, e := range result.Graph.Edges() {
		assert.InDelta(t, 4.5, e.Latency(), 1e-6)
	}
}

func TestCaidaReaderRequiresAllThreeFiles(t *testing.T) {
	r, err := ForType("caida")
	require.NoError(t, err)

	_, err = r.Read([]string{"testdata/trace.nodes.geo", "testdata/trace.links"})
	assert.ErrorContains(t, err, ".nodes.as")
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		input string
		id    int
		ok    bool
	}{
		{"N12", 12, true},
		{"N7:10.0.0.1", 7, true},
		{"Nx", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ok := parseEndpoint(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.id, id)
			}
		})
	}
}
