package bplus

// findParent walks the subtree rooted at fromID and returns the internal
// node that directly holds childID among its children, or nil when childID
// is the root or not reachable. Matching is by handle identity; separator
// values never enter into it. Cost is proportional to subtree size, paid
// once per split level — the price of keeping nodes free of parent
// back-references.
func (t *BPlusTree) findParent(fromID int64, childID int64) *Node {
	current := t.arena.get(fromID)
	if current == nil || current.nodeType == NodeLeaf {
		return nil
	}
	for _, c := range current.children {
		if c == childID {
			return current
		}
		if child := t.arena.get(c); child != nil && child.nodeType == NodeInternal {
			if found := t.findParent(c, childID); found != nil {
				return found
			}
		}
	}
	return nil
}
