package bplus

// findLeaf descends from the root to the unique leaf whose range could hold
// key. Returns nil for an empty tree. Separators are inclusive on the right
// subtree (a promoted key equals the first key of the right split product),
// so equality routes into the right child.
func (t *BPlusTree) findLeaf(key int64) *Node {
	current := t.arena.get(t.root)
	for current != nil && current.nodeType == NodeInternal {
		i := 0
		for i < len(current.keys) && key >= current.keys[i] {
			i++
		}
		current = t.arena.get(current.children[i])
	}
	return current
}
