package bplus

import "fmt"

// insertIntoParent inserts sepKey and the new right child into parent,
// immediately after the left child. The slot is found by handle identity,
// not key comparison. If the parent overflows, it splits and propagates
// upward.
func (t *BPlusTree) insertIntoParent(parent *Node, leftID int64, sepKey int64, rightID int64) error {
	// find index of leftID in parent's children
	idx := 0
	for idx < len(parent.children) && parent.children[idx] != leftID {
		idx++
	}

	// insert sepKey at idx, rightID at idx+1
	parent.keys = append(parent.keys, 0)
	copy(parent.keys[idx+1:], parent.keys[idx:])
	parent.keys[idx] = sepKey

	parent.children = append(parent.children, nilNode)
	copy(parent.children[idx+2:], parent.children[idx+1:])
	parent.children[idx+1] = rightID

	if len(parent.keys) >= t.order {
		if err := t.splitInternal(parent); err != nil {
			return fmt.Errorf("promote into node %d: %w", parent.id, err)
		}
	}
	return nil
}
