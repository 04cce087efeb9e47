// Structure of B+ Tree
/*
Tree
 ├── Internal Node (keys + child handles)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + values + next handle)


- keys: sorted ascending order
- internal nodes: children length == len(keys)+1
- leaf nodes: values length == len(keys)
- leaf nodes linked with `next` for left-to-right chaining
- all leaf nodes at same depth

Not safe for concurrent use: splits relink node handles non-atomically,
so concurrent callers must serialize Insert externally.
*/
package bplus

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

const (
	// DefaultOrder is the fan-out bound used by the demo driver: an internal
	// node holds at most order children, so at most order-1 keys in steady state.
	DefaultOrder = 4

	// MinOrder is the smallest order that permits a meaningful split.
	MinOrder = 3
)

// nilNode marks an absent node handle. Arena handles start at 1.
const nilNode int64 = 0

type Node struct {
	id       int64
	nodeType NodeType
	keys     []int64 // sorted keys (separators for internal nodes)
	values   []int64 // leaf only, values[i] belongs to keys[i]
	children []int64 // internal only, len == len(keys)+1
	next     int64   // leaf only, handle of the next leaf in key order
}

type BPlusTree struct {
	root  int64 // root node handle, nilNode when the tree is empty
	order int
	arena *nodeArena
}

// Order returns the tree's fan-out bound.
func (t *BPlusTree) Order() int {
	return t.order
}
