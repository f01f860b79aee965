package graph

// Edge is an undirected link between two nodes. Endpoints are stored by
// node id and resolved through the graph, so variant conversion never
// invalidates an edge.
type Edge struct {
	id        int
	from, to  int
	latency   float32 // ms
	bandwidth float32 // Mbps
	graph     *Graph
}

func (e *Edge) ID() int { return e.id }

func (e *Edge) From() *Node { return e.graph.nodes[e.from] }

func (e *Edge) To() *Node { return e.graph.nodes[e.to] }

func (e *Edge) Latency() float32 { return e.latency }

func (e *Edge) Bandwidth() float32 { return e.bandwidth }

// Other returns the endpoint opposite to n. It returns nil if n is not an
// endpoint of this edge.
func (e *Edge) Other(n *Node) *Node {
	switch n.id {
	case e.from:
		return e.graph.nodes[e.to]
	case e.to:
		return e.graph.nodes[e.from]
	}
	return nil
}

// IsCrossAS reports whether the endpoints belong to different autonomous
// systems.
func (e *Edge) IsCrossAS() bool {
	return e.From().as.id != e.To().as.id
}
