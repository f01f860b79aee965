// Package graph holds the in-memory network topology: autonomous systems,
// router and device nodes, and a central edge arena. Nodes reference edges
// by id and edges reference nodes by id, so variant conversions never chase
// stale pointers.
package graph

import (
	"slices"
)

// Graph is the topology container handed from the reader through the
// classification and placement stages to the exporter.
type Graph struct {
	systems map[int]*AS
	nodes   map[int]*Node
	edges   map[int]*Edge

	edgeOrder []int // edge ids in insertion order

	maxNodeID int
	maxEdgeID int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		systems: make(map[int]*AS),
		nodes:   make(map[int]*Node),
		edges:   make(map[int]*Edge),
	}
}

// System returns the AS with the given id, creating it if necessary.
func (g *Graph) System(asID int) *AS {
	as, ok := g.systems[asID]
	if !ok {
		as = &AS{
			id:              asID,
			graph:           g,
			edgeRouters:     make(map[int]*Node),
			backboneRouters: make(map[int]*Node),
			edgeDevices:     make(map[int]*Node),
		}
		g.systems[asID] = as
	}
	return as
}

// Systems returns all autonomous systems sorted by id.
func (g *Graph) Systems() []*AS {
	systems := make([]*AS, 0, len(g.systems))
	for _, as := range g.systems {
		systems = append(systems, as)
	}
	slices.SortFunc(systems, func(x, y *AS) int { return x.id - y.id })
	return systems
}

// Node returns the node with the given id, nil if absent.
func (g *Graph) Node(id int) *Node { return g.nodes[id] }

// Edge returns the edge with the given id, nil if absent.
func (g *Graph) Edge(id int) *Edge { return g.edges[id] }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, len(g.edgeOrder))
	for i, id := range g.edgeOrder {
		edges[i] = g.edges[id]
	}
	return edges
}

// Nodes returns every node of the graph sorted by id.
func (g *Graph) Nodes() []*Node { return sortedNodes(g.nodes) }

// EdgeRouters returns every edge router of the graph sorted by id.
func (g *Graph) EdgeRouters() []*Node { return g.nodesOfKind(KindEdgeRouter) }

// BackboneRouters returns every backbone router of the graph sorted by id.
func (g *Graph) BackboneRouters() []*Node { return g.nodesOfKind(KindBackboneRouter) }

// EdgeDevices returns every edge device of the graph sorted by id.
func (g *Graph) EdgeDevices() []*Node { return g.nodesOfKind(KindEdgeDevice) }

func (g *Graph) nodesOfKind(k Kind) []*Node {
	var nodes []*Node
	for _, n := range g.nodes {
		if n.kind == k {
			nodes = append(nodes, n)
		}
	}
	slices.SortFunc(nodes, func(x, y *Node) int { return x.id - y.id })
	return nodes
}

// CreateEdgeRouter adds a new edge router to the AS with the given id.
func (g *Graph) CreateEdgeRouter(id, asID int) (*Node, error) {
	return g.createNode(id, asID, KindEdgeRouter, nil, "CreateEdgeRouter")
}

// CreateEdgeDevice adds a new edge device carrying the given emulation
// binding to the AS with the given id.
func (g *Graph) CreateEdgeDevice(id, asID int, emulation *EmulationBinding) (*Node, error) {
	return g.createNode(id, asID, KindEdgeDevice, emulation, "CreateEdgeDevice")
}

func (g *Graph) createNode(id, asID int, kind Kind, emulation *EmulationBinding, op string) (*Node, error) {
	if _, ok := g.nodes[id]; ok {
		return nil, integrityErr(op, id, ErrDuplicateID)
	}
	as := g.System(asID)
	n := &Node{
		id:        id,
		as:        as,
		kind:      kind,
		emulation: emulation,
		graph:     g,
	}
	g.nodes[id] = n
	as.insert(n)
	if id > g.maxNodeID {
		g.maxNodeID = id
	}
	return n, nil
}

// CreateEdge adds an undirected link between two existing nodes.
func (g *Graph) CreateEdge(id, from, to int, latency, bandwidth float32) (*Edge, error) {
	if _, ok := g.edges[id]; ok {
		return nil, integrityErr("CreateEdge", id, ErrDuplicateID)
	}
	fromNode, ok := g.nodes[from]
	if !ok {
		return nil, integrityErr("CreateEdge", from, ErrMissingEndpoint)
	}
	toNode, ok := g.nodes[to]
	if !ok {
		return nil, integrityErr("CreateEdge", to, ErrMissingEndpoint)
	}
	e := &Edge{
		id:        id,
		from:      from,
		to:        to,
		latency:   latency,
		bandwidth: bandwidth,
		graph:     g,
	}
	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)
	fromNode.edgeIDs = append(fromNode.edgeIDs, id)
	toNode.edgeIDs = append(toNode.edgeIDs, id)
	if id > g.maxEdgeID {
		g.maxEdgeID = id
	}
	return e, nil
}

// NextNodeID returns an unused node id. Used by the device placer to mint
// fresh device nodes.
func (g *Graph) NextNodeID() int { return g.maxNodeID + 1 }

// NextEdgeID returns an unused edge id.
func (g *Graph) NextEdgeID() int { return g.maxEdgeID + 1 }
