package bplus

// createNewRoot replaces the root with a new internal node holding one
// separator and the two halves of a root split. This is the only way the
// tree grows in height.
func (t *BPlusTree) createNewRoot(leftID int64, promoteKey int64, rightID int64) {
	root := t.newNode(NodeInternal)
	root.keys = append(root.keys, promoteKey)
	root.children = append(root.children, leftID, rightID)
	t.root = root.id
}
