package bplus

import "testing"

// TestFindParentRootHasNone checks that the root, leaf or internal, never
// has a parent.
func TestFindParentRootHasNone(t *testing.T) {
	tree := mustTree(t, DefaultOrder)
	mustInsert(t, tree, 1)
	if p := tree.findParent(tree.root, tree.root); p != nil {
		t.Errorf("root leaf should have no parent, got node %d", p.id)
	}

	mustInsert(t, tree, 2, 3, 4) // force a split, root becomes internal
	if p := tree.findParent(tree.root, tree.root); p != nil {
		t.Errorf("internal root should have no parent, got node %d", p.id)
	}
}

// TestFindParentDirectChild checks lookup of a leaf hanging off the root.
func TestFindParentDirectChild(t *testing.T) {
	tree := mustTree(t, DefaultOrder)
	mustInsert(t, tree, 10, 20, 5, 6)

	root := tree.arena.get(tree.root)
	for _, c := range root.children {
		p := tree.findParent(tree.root, c)
		if p == nil || p.id != root.id {
			t.Errorf("parent of child %d should be root %d, got %v", c, root.id, p)
		}
	}
}

// TestFindParentDeepChild checks lookup two levels down a three-level tree,
// and that handle identity (not separator values) drives the match.
func TestFindParentDeepChild(t *testing.T) {
	tree := mustTree(t, DefaultOrder)
	mustInsert(t, tree, 10, 20, 5, 6, 15, 25, 2, 16, 18, 17, 19)
	if tree.Height() != 3 {
		t.Fatalf("height = %d, want 3", tree.Height())
	}

	root := tree.arena.get(tree.root)
	for _, mid := range root.children {
		midNode := tree.arena.get(mid)
		if midNode.nodeType != NodeInternal {
			t.Fatalf("node %d below root should be internal", mid)
		}
		for _, leafID := range midNode.children {
			p := tree.findParent(tree.root, leafID)
			if p == nil || p.id != mid {
				t.Errorf("parent of leaf %d should be %d, got %v", leafID, mid, p)
			}
		}
	}
}

// TestFindParentUnknownHandle checks that a handle outside the tree is
// reported as unreachable.
func TestFindParentUnknownHandle(t *testing.T) {
	tree := mustTree(t, DefaultOrder)
	mustInsert(t, tree, 10, 20, 5, 6)
	if p := tree.findParent(tree.root, 9999); p != nil {
		t.Errorf("unknown handle should have no parent, got node %d", p.id)
	}
}
