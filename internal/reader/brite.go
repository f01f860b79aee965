package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func init() {
	Register(func() Reader { return &BriteReader{} })
}

// BriteReader parses the BRITE topology format: a single text file with
// "Nodes:" and "Edges:" sections of tab-separated records.
// See https://www.cs.bu.edu/brite/user_manual/node29.html.
type BriteReader struct{}

func (br *BriteReader) Metadata() Metadata {
	return Metadata{
		Name:        "brite",
		DisplayName: "BRITE topology",
		Description: "Parses a single BRITE file with Nodes: and Edges: sections",
		FileHint:    "*.brite",
	}
}

func (br *BriteReader) Read(files []string) (*ReadResult, error) {
	if len(files) != 1 {
		return nil, fmt.Errorf("the brite reader expects exactly one input file, got %d", len(files))
	}

	f, err := os.Open(files[0])
	if err != nil {
		return nil, fmt.Errorf("opening brite file: %w", err)
	}
	defer f.Close()

	result := newReadResult()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Nodes:"):
			section = "nodes"
		case strings.HasPrefix(line, "Edges:"):
			section = "edges"
		case strings.TrimSpace(line) == "":
			section = ""
		case section == "nodes":
			if err := br.parseNode(result, line); err != nil {
				return nil, err
			}
		case section == "edges":
			if err := br.parseEdge(result, line); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading brite file: %w", err)
	}

	return result, nil
}

// parseNode reads a node line: tab-separated, id in column 1, AS in
// column 6.
func (br *BriteReader) parseNode(result *ReadResult, line string) error {
	values := strings.Split(line, "\t")
	if len(values) < 7 {
		result.skip("node line too short")
		return nil
	}

	id, err := strconv.Atoi(values[0])
	if err != nil {
		result.skip("node id not numeric")
		return nil
	}
	as, err := strconv.Atoi(values[5])
	if err != nil {
		result.skip("node AS not numeric")
		return nil
	}

	if _, err := result.Graph.CreateEdgeRouter(id, as); err != nil {
		return fmt.Errorf("brite node line: %w", err)
	}
	return nil
}

// parseEdge reads an edge line: tab-separated with id, from, to in
// columns 1-3, delay in column 5, bandwidth in column 6.
func (br *BriteReader) parseEdge(result *ReadResult, line string) error {
	values := strings.Split(line, "\t")
	if len(values) < 9 {
		result.skip("edge line too short")
		return nil
	}

	id, err1 := strconv.Atoi(values[0])
	from, err2 := strconv.Atoi(values[1])
	to, err3 := strconv.Atoi(values[2])
	if err1 != nil || err2 != nil || err3 != nil {
		result.skip("edge id not numeric")
		return nil
	}
	delay, err1 := strconv.ParseFloat(values[4], 32)
	bandwidth, err2 := strconv.ParseFloat(values[5], 32)
	if err1 != nil || err2 != nil {
		result.skip("edge metric not numeric")
		return nil
	}

	if result.Graph.Node(from) == nil || result.Graph.Node(to) == nil {
		result.skip("edge endpoint unknown")
		return nil
	}

	if _, err := result.Graph.CreateEdge(id, from, to, float32(delay), float32(bandwidth)); err != nil {
		return fmt.Errorf("brite edge line: %w", err)
	}
	return nil
}
