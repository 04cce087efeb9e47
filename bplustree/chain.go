package bplus

// firstLeaf returns the leftmost leaf, or nil for an empty tree.
func (t *BPlusTree) firstLeaf() *Node {
	current := t.arena.get(t.root)
	for current != nil && current.nodeType == NodeInternal {
		current = t.arena.get(current.children[0])
	}
	return current
}

// walkLeaves visits every leaf left to right via the sibling chain.
// The walk stops early if fn returns false.
func (t *BPlusTree) walkLeaves(fn func(leaf *Node) bool) {
	for leaf := t.firstLeaf(); leaf != nil; leaf = t.arena.get(leaf.next) {
		if !fn(leaf) {
			return
		}
	}
}

// Len reports the number of key/value pairs stored in the tree.
func (t *BPlusTree) Len() int {
	total := 0
	t.walkLeaves(func(leaf *Node) bool {
		total += len(leaf.keys)
		return true
	})
	return total
}

// Height reports the number of node levels; an empty tree has height 0 and
// a lone root leaf has height 1.
func (t *BPlusTree) Height() int {
	h := 0
	current := t.arena.get(t.root)
	for current != nil {
		h++
		if current.nodeType == NodeLeaf {
			break
		}
		current = t.arena.get(current.children[0])
	}
	return h
}
