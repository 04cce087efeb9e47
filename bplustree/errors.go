package bplus

import "errors"

var (
	// ErrInvalidOrder is returned when constructing a tree with order < MinOrder.
	ErrInvalidOrder = errors.New("order must be at least 3")

	// ErrOrphanNode reports a non-root node with no parent reachable from the
	// root. It can only surface if a split left the tree in an inconsistent
	// shape, so callers should treat it as a programmer error.
	ErrOrphanNode = errors.New("non-root node has no reachable parent")
)
