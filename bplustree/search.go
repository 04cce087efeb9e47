package bplus

// Search looks for a key in the tree and returns its value if present.
// The second return is false on an empty tree or a missing key.
func (t *BPlusTree) Search(key int64) (int64, bool) {
	leaf := t.findLeaf(key)
	if leaf == nil {
		return 0, false
	}
	for i, k := range leaf.keys {
		if k == key {
			return leaf.values[i], true
		}
	}
	return 0, false
}
