package graph

// Kind distinguishes the three node variants of the topology.
type Kind int

const (
	// KindEdgeRouter is a router at the network periphery that may carry
	// attached devices.
	KindEdgeRouter Kind = iota
	// KindBackboneRouter is a router promoted into the transit fabric.
	KindBackboneRouter
	// KindEdgeDevice is a synthetic end-user device emulated by a container.
	KindEdgeDevice
)

func (k Kind) String() string {
	switch k {
	case KindEdgeRouter:
		return "edge-router"
	case KindBackboneRouter:
		return "backbone-router"
	case KindEdgeDevice:
		return "edge-device"
	}
	return "unknown"
}

// Node is a single node of the topology. The header (id, AS membership,
// incident edges) is shared across all variants; changing the variant
// through the owning AS preserves it.
type Node struct {
	id        int
	as        *AS
	kind      Kind
	edgeIDs   []int // insertion order
	emulation *EmulationBinding
	graph     *Graph
}

func (n *Node) ID() int { return n.id }

func (n *Node) AS() *AS { return n.as }

func (n *Node) Kind() Kind { return n.kind }

// Degree returns the number of incident edges.
func (n *Node) Degree() int { return len(n.edgeIDs) }

// Emulation returns the container binding of the node, nil if the node is
// not emulated.
func (n *Node) Emulation() *EmulationBinding { return n.emulation }

// Edges returns the incident edges in insertion order.
func (n *Node) Edges() []*Edge {
	edges := make([]*Edge, len(n.edgeIDs))
	for i, id := range n.edgeIDs {
		edges[i] = n.graph.edges[id]
	}
	return edges
}

// DeviceCount sums the device multiplicities of all devices attached to
// this node. A device container scaled by factor s counts as s devices.
func (n *Node) DeviceCount() int {
	count := 0
	for _, id := range n.edgeIDs {
		other := n.graph.edges[id].Other(n)
		if other.kind != KindEdgeDevice {
			continue
		}
		scaling := 1
		if other.emulation != nil && other.emulation.Scaling > 1 {
			scaling = other.emulation.Scaling
		}
		count += scaling
	}
	return count
}

// HasDevices reports whether at least one device is attached.
func (n *Node) HasDevices() bool {
	for _, id := range n.edgeIDs {
		if n.graph.edges[id].Other(n).kind == KindEdgeDevice {
			return true
		}
	}
	return false
}
