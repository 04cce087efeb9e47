package bplus

import "fmt"

// splitInternal splits a full internal node and promotes the middle key.
// Unlike a leaf split, the promoted key is removed from both halves: it
// becomes the separator one level up, not a resident of either sibling.
func (t *BPlusTree) splitInternal(node *Node) error {
	// mid is the index of the key to promote
	mid := len(node.keys) / 2
	promoteKey := node.keys[mid]

	// keys: left keeps [0:mid), promote keys[mid], right gets (mid:end]
	// children: left keeps [0:mid+1), right gets [mid+1:end]
	right := t.newNode(NodeInternal)
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)

	node.keys = node.keys[:mid]
	node.children = node.children[:mid+1]

	if node.id == t.root {
		t.createNewRoot(node.id, promoteKey, right.id)
		return nil
	}

	parent := t.findParent(t.root, node.id)
	if parent == nil {
		return fmt.Errorf("split internal %d: %w", node.id, ErrOrphanNode)
	}
	return t.insertIntoParent(parent, node.id, promoteKey, right.id)
}
