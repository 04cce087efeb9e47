package bplus

import "fmt"

// NewBPlusTree creates an empty tree with the given fan-out bound.
// Order must be at least MinOrder.
func NewBPlusTree(order int) (*BPlusTree, error) {
	if order < MinOrder {
		return nil, fmt.Errorf("new tree: order %d: %w", order, ErrInvalidOrder)
	}
	return &BPlusTree{
		root:  nilNode,
		order: order,
		arena: newNodeArena(),
	}, nil
}
