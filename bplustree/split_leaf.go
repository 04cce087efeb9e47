package bplus

import "fmt"

// splitLeaf divides an overfull leaf, splices the new right sibling into the
// leaf chain, and promotes the right sibling's first key as a separator.
func (t *BPlusTree) splitLeaf(leaf *Node) error {
	mid := len(leaf.keys) / 2

	right := t.newNode(NodeLeaf)
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.values = append(right.values, leaf.values[mid:]...)

	leaf.keys = leaf.keys[:mid]
	leaf.values = leaf.values[:mid]

	// right inherits leaf's old next pointer
	right.next = leaf.next
	leaf.next = right.id

	sepKey := right.keys[0]

	if leaf.id == t.root {
		t.createNewRoot(leaf.id, sepKey, right.id)
		return nil
	}

	parent := t.findParent(t.root, leaf.id)
	if parent == nil {
		return fmt.Errorf("split leaf %d: %w", leaf.id, ErrOrphanNode)
	}
	return t.insertIntoParent(parent, leaf.id, sepKey, right.id)
}
