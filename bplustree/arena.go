package bplus

// nodeArena owns every node in the tree and hands out stable int64 handles.
// Handles start at 1 so that nilNode (0) is never a valid node. Nodes are
// only ever allocated; this core has no deletion.
type nodeArena struct {
	nodes  map[int64]*Node
	nextID int64
}

func newNodeArena() *nodeArena {
	return &nodeArena{
		nodes:  make(map[int64]*Node),
		nextID: 1,
	}
}

// allocate creates an empty node of the given type and registers it.
func (a *nodeArena) allocate(nodeType NodeType) *Node {
	n := &Node{
		id:       a.nextID,
		nodeType: nodeType,
		next:     nilNode,
	}
	a.nextID++
	a.nodes[n.id] = n
	return n
}

// get returns the node for a handle, or nil for nilNode and unknown ids.
func (a *nodeArena) get(id int64) *Node {
	if id == nilNode {
		return nil
	}
	return a.nodes[id]
}

func (a *nodeArena) size() int {
	return len(a.nodes)
}
