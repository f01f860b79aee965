package graph

import (
	"slices"
)

// AS is an autonomous system of the topology. It owns three disjoint sets
// of nodes: edge routers, backbone routers, and edge devices. A node id
// appears in at most one of the sets, and a node belongs to exactly one AS.
type AS struct {
	id              int
	graph           *Graph
	edgeRouters     map[int]*Node
	backboneRouters map[int]*Node
	edgeDevices     map[int]*Node
}

func (a *AS) ID() int { return a.id }

// EdgeRouters returns the edge routers of the AS sorted by id.
func (a *AS) EdgeRouters() []*Node { return sortedNodes(a.edgeRouters) }

// BackboneRouters returns the backbone routers of the AS sorted by id.
func (a *AS) BackboneRouters() []*Node { return sortedNodes(a.backboneRouters) }

// EdgeDevices returns the edge devices of the AS sorted by id.
func (a *AS) EdgeDevices() []*Node { return sortedNodes(a.edgeDevices) }

// Routers returns edge and backbone routers of the AS sorted by id.
func (a *AS) Routers() []*Node {
	nodes := make([]*Node, 0, len(a.edgeRouters)+len(a.backboneRouters))
	for _, n := range a.edgeRouters {
		nodes = append(nodes, n)
	}
	for _, n := range a.backboneRouters {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(x, y *Node) int { return x.id - y.id })
	return nodes
}

// ReplaceByBackbone converts the given node into a backbone router,
// preserving id, AS membership, and incident edges. Converting a backbone
// router is a no-op.
func (a *AS) ReplaceByBackbone(n *Node) (*Node, error) {
	if err := a.owns(n, "ReplaceByBackbone"); err != nil {
		return nil, err
	}
	if n.kind == KindBackboneRouter {
		return n, nil
	}
	a.detach(n)
	n.kind = KindBackboneRouter
	n.emulation = nil
	a.backboneRouters[n.id] = n
	return n, nil
}

// ReplaceByEdge converts the given node into an edge router, preserving
// id, AS membership, and incident edges.
func (a *AS) ReplaceByEdge(n *Node) (*Node, error) {
	if err := a.owns(n, "ReplaceByEdge"); err != nil {
		return nil, err
	}
	if n.kind == KindEdgeRouter {
		return n, nil
	}
	a.detach(n)
	n.kind = KindEdgeRouter
	n.emulation = nil
	a.edgeRouters[n.id] = n
	return n, nil
}

// ReplaceByEdgeDevice converts the given node into an edge device carrying
// the given emulation binding.
func (a *AS) ReplaceByEdgeDevice(n *Node, emulation *EmulationBinding) (*Node, error) {
	if err := a.owns(n, "ReplaceByEdgeDevice"); err != nil {
		return nil, err
	}
	a.detach(n)
	n.kind = KindEdgeDevice
	n.emulation = emulation
	a.edgeDevices[n.id] = n
	return n, nil
}

func (a *AS) owns(n *Node, op string) error {
	if n.as != a {
		return integrityErr(op, n.id, ErrWrongAS)
	}
	return nil
}

func (a *AS) detach(n *Node) {
	delete(a.edgeRouters, n.id)
	delete(a.backboneRouters, n.id)
	delete(a.edgeDevices, n.id)
}

func (a *AS) insert(n *Node) {
	switch n.kind {
	case KindEdgeRouter:
		a.edgeRouters[n.id] = n
	case KindBackboneRouter:
		a.backboneRouters[n.id] = n
	case KindEdgeDevice:
		a.edgeDevices[n.id] = n
	}
}

func sortedNodes(m map[int]*Node) []*Node {
	nodes := make([]*Node, 0, len(m))
	for _, n := range m {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(x, y *Node) int { return x.id - y.id })
	return nodes
}
