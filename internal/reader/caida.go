package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/unly/emufog/internal/graph"
)

func init() {
	Register(func() Reader { return &CaidaReader{} })
}

// CAIDA traces carry no bandwidth; links get a fixed default.
const caidaBandwidth = 1000.0

// CaidaReader parses the CAIDA macroscopic topology: three ISO-8859-1
// files identified by suffix (.nodes.geo, .nodes.as, .links). Latency is
// synthesized from node coordinates by a pluggable calculator.
type CaidaReader struct {
	// Calculator overrides the default constant 1.0 ms latency.
	Calculator LatencyCalculator

	coordinates map[int][2]float32
	assigned    int // geo nodes that received an AS
}

func (cr *CaidaReader) Metadata() Metadata {
	return Metadata{
		Name:        "caida",
		DisplayName: "CAIDA topology",
		Description: "Parses CAIDA .nodes.geo, .nodes.as and .links files",
		FileHint:    "*.nodes.geo",
	}
}

func (cr *CaidaReader) Read(files []string) (*ReadResult, error) {
	geoFile, err := fileWithSuffix(files, ".nodes.geo")
	if err != nil {
		return nil, err
	}
	asFile, err := fileWithSuffix(files, ".nodes.as")
	if err != nil {
		return nil, err
	}
	linkFile, err := fileWithSuffix(files, ".links")
	if err != nil {
		return nil, err
	}

	if cr.Calculator == nil {
		cr.Calculator = defaultLatency
	}
	cr.coordinates = make(map[int][2]float32)
	result := newReadResult()

	if err := cr.eachLine(geoFile, func(line string) error {
		cr.parseGeoLine(result, line)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := cr.eachLine(asFile, func(line string) error {
		return cr.parseASLine(result, line)
	}); err != nil {
		return nil, err
	}
	if err := cr.eachLine(linkFile, func(line string) error {
		return cr.parseLinkLine(result, line)
	}); err != nil {
		return nil, err
	}

	if unassigned := len(cr.coordinates) - cr.assigned; unassigned > 0 {
		result.Skipped["node without AS"] = unassigned
	}

	return result, nil
}

// eachLine streams a file decoded from ISO-8859-1.
func (cr *CaidaReader) eachLine(path string, fn func(string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening caida file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(f))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// parseGeoLine records the coordinates of a node:
// "node.geo N<id>:\t...\t<x>\t<y>\t..."
func (cr *CaidaReader) parseGeoLine(result *ReadResult, line string) {
	if !strings.HasPrefix(line, "node.geo ") {
		return
	}

	values := strings.Split(line, "\t")
	if len(values) < 7 {
		result.skip("geo line too short")
		return
	}

	idStr := strings.TrimSuffix(strings.TrimPrefix(values[0], "node.geo N"), ":")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		result.skip("geo id not numeric")
		return
	}

	x, err1 := strconv.ParseFloat(values[5], 32)
	y, err2 := strconv.ParseFloat(values[6], 32)
	if err1 != nil || err2 != nil {
		result.skip("geo coordinates not numeric")
		return
	}

	cr.coordinates[id] = [2]float32{float32(x), float32(y)}
}

// parseASLine assigns a node to its AS and creates the router:
// "node.AS N<id> <as>"
func (cr *CaidaReader) parseASLine(result *ReadResult, line string) error {
	if !strings.HasPrefix(line, "node.AS ") {
		return nil
	}

	values := strings.Split(line, " ")
	if len(values) < 3 {
		result.skip("AS line too short")
		return nil
	}

	id, err := strconv.Atoi(strings.TrimPrefix(values[1], "N"))
	if err != nil {
		result.skip("AS node id not numeric")
		return nil
	}
	as, err := strconv.Atoi(values[2])
	if err != nil {
		result.skip("AS id not numeric")
		return nil
	}

	if _, ok := cr.coordinates[id]; !ok {
		result.skip("AS for unknown node")
		return nil
	}

	if _, err := result.Graph.CreateEdgeRouter(id, as); err != nil {
		return fmt.Errorf("caida AS line: %w", err)
	}
	cr.assigned++
	return nil
}

// parseLinkLine creates the edges of one link record:
// "link L<id>: <...> N<a>:<ip> N<b> N<c> ..." chains consecutive pairs.
func (cr *CaidaReader) parseLinkLine(result *ReadResult, line string) error {
	if !strings.HasPrefix(line, "link ") {
		return nil
	}

	values := strings.Split(line, " ")
	if len(values) < 4 {
		result.skip("link line too short")
		return nil
	}

	id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(values[1], "L"), ":"))
	if err != nil {
		result.skip("link id not numeric")
		return nil
	}

	for i := 3; i < len(values)-1; i++ {
		from, ok1 := parseEndpoint(values[i])
		to, ok2 := parseEndpoint(values[i+1])
		if !ok1 || !ok2 {
			result.skip("link endpoint not numeric")
			return nil
		}

		fromNode := result.Graph.Node(from)
		toNode := result.Graph.Node(to)
		if fromNode == nil || toNode == nil {
			result.skip("link endpoint unknown")
			continue
		}

		latency := cr.latencyBetween(fromNode, toNode)
		if _, err := result.Graph.CreateEdge(result.Graph.NextEdgeID(), from, to, latency, caidaBandwidth); err != nil {
			return fmt.Errorf("caida link %d: %w", id, err)
		}
	}
	return nil
}

func (cr *CaidaReader) latencyBetween(from, to *graph.Node) float32 {
	a := cr.coordinates[from.ID()]
	b := cr.coordinates[to.ID()]
	return cr.Calculator.Latency(a[0], a[1], b[0], b[1])
}

// parseEndpoint extracts the node id from "N<id>" or "N<id>:<ip>".
func parseEndpoint(s string) (int, bool) {
	s = strings.TrimPrefix(s, "N")
	if idx := strings.IndexByte(s, ':'); idx != -1 {
		s = s[:idx]
	}
	id, err := strconv.Atoi(s)
	return id, err == nil
}

func fileWithSuffix(files []string, suffix string) (string, error) {
	for _, f := range files {
		if strings.HasSuffix(f, suffix) {
			return f, nil
		}
	}
	return "", fmt.Errorf("the given files do not contain a %s file", suffix)
}
