package bplus

import "fmt"

// Insert stores value under key. Inserting an existing key overwrites its
// value in place without any structural change. A non-nil error means a
// structural invariant was violated during split propagation; it cannot
// occur under correct operation.
func (t *BPlusTree) Insert(key int64, value int64) error {
	// If tree is empty
	if t.root == nilNode {
		root := t.newNode(NodeLeaf)
		root.keys = append(root.keys, key)
		root.values = append(root.values, value)
		t.root = root.id
		return nil
	}

	leaf := t.findLeaf(key)

	// Duplicate key: update in place.
	for i, k := range leaf.keys {
		if k == key {
			leaf.values[i] = value
			return nil
		}
	}

	// Append, then bubble the pair into sorted position. The leaf was sorted
	// before the append, so one adjacent-swap pass from the end suffices.
	leaf.keys = append(leaf.keys, key)
	leaf.values = append(leaf.values, value)
	for i := len(leaf.keys) - 1; i > 0; i-- {
		if leaf.keys[i] >= leaf.keys[i-1] {
			break
		}
		leaf.keys[i], leaf.keys[i-1] = leaf.keys[i-1], leaf.keys[i]
		leaf.values[i], leaf.values[i-1] = leaf.values[i-1], leaf.values[i]
	}

	if len(leaf.keys) >= t.order {
		if err := t.splitLeaf(leaf); err != nil {
			return fmt.Errorf("insert %d: %w", key, err)
		}
	}
	return nil
}
