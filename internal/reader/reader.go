// Package reader builds a topology graph from Internet-topology corpora.
// Readers self-register by format key; the CLI selects one via --type.
package reader

import (
	"fmt"
	"sort"
	"strings"
)

// Metadata describes a reader for discovery and documentation.
type Metadata struct {
	Name        string // format key, e.g. "brite"
	DisplayName string // human-readable, e.g. "BRITE topology"
	Description string // one-line description
	FileHint    string // filename hint, e.g. "*.brite"
}

// Reader parses one input format into a topology graph.
type Reader interface {
	Metadata() Metadata
	Read(files []string) (*ReadResult, error)
}

var registry = map[string]func() Reader{}

// Register adds a reader factory under its format key.
// Each reader calls this in its init().
func Register(factory func() Reader) {
	registry[factory().Metadata().Name] = factory
}

// ForType returns a fresh reader for the given format key.
func ForType(name string) (Reader, error) {
	factory, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown input type %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// Names returns the registered format keys sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
