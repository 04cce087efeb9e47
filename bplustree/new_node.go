package bplus

// newNode allocates a node of the given type from the arena.
func (t *BPlusTree) newNode(nodeType NodeType) *Node {
	n := t.arena.allocate(nodeType)
	n.keys = make([]int64, 0, t.order)
	if nodeType == NodeInternal {
		n.children = make([]int64, 0, t.order+1)
	} else {
		n.values = make([]int64, 0, t.order)
	}
	return n
}
