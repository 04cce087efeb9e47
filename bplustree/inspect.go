// Package bplus: tree inspection for debugging.
// Use DumpTo(w) to print a human-readable dump of the node levels and the
// leaf chain.

package bplus

import (
	"fmt"
	"io"
	"os"
)

// Dump prints the tree structure to stdout.
func (t *BPlusTree) Dump() {
	t.DumpTo(os.Stdout)
}

// DumpTo writes a human-readable dump of the tree to w: each level's nodes
// in BFS order, then the leaf chain from the leftmost leaf.
func (t *BPlusTree) DumpTo(w io.Writer) {
	p := func(format string, args ...interface{}) { fmt.Fprintf(w, format, args...) }

	p("B+ tree (order=%d, height=%d, entries=%d, nodes=%d)\n",
		t.order, t.Height(), t.Len(), t.arena.size())
	if t.root == nilNode {
		p("  (empty tree)\n")
		return
	}

	queue := []int64{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for i := 0; i < size; i++ {
			node := t.arena.get(queue[i])
			if node == nil {
				p("    [node %d] missing from arena\n", queue[i])
				continue
			}
			if node.nodeType == NodeInternal {
				p("    [node %d] INTERNAL keys=%v children=%v\n",
					node.id, node.keys, node.children)
				queue = append(queue, node.children...)
			} else {
				p("    [node %d] LEAF next=%d\n", node.id, node.next)
				for j, k := range node.keys {
					p("      %d -> %d\n", k, node.values[j])
				}
			}
		}
		queue = queue[size:]
		level++
	}

	p("  Leaf chain:")
	t.walkLeaves(func(leaf *Node) bool {
		p(" %v", leaf.keys)
		return true
	})
	p("\n")
}
