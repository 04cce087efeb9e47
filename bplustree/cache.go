package bplus

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// CachedTree fronts a BPlusTree with a read-through lookup cache. Search
// hits are served from the cache; misses fall back to the tree and populate
// it. Insert writes to the tree and invalidates the cached entry, so the
// next Search re-reads the authoritative value.
//
// The cache applies writes asynchronously; call Wait when a caller needs a
// just-inserted key to be observable through the cache layer.
type CachedTree struct {
	tree  *BPlusTree
	cache *ristretto.Cache[int64, int64]
}

// NewCachedTree creates a tree of the given order with a lookup cache sized
// for roughly maxEntries hot keys.
func NewCachedTree(order int, maxEntries int64) (*CachedTree, error) {
	tree, err := NewBPlusTree(order)
	if err != nil {
		return nil, err
	}
	cache, err := ristretto.NewCache(&ristretto.Config[int64, int64]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("new cached tree: %w", err)
	}
	return &CachedTree{tree: tree, cache: cache}, nil
}

// Insert stores value under key and drops any cached copy of the key.
func (c *CachedTree) Insert(key int64, value int64) error {
	if err := c.tree.Insert(key, value); err != nil {
		return err
	}
	c.cache.Del(key)
	return nil
}

// Search returns the value for key, consulting the cache first.
func (c *CachedTree) Search(key int64) (int64, bool) {
	if v, ok := c.cache.Get(key); ok {
		return v, true
	}
	v, ok := c.tree.Search(key)
	if ok {
		c.cache.Set(key, v, 1)
	}
	return v, ok
}

// Tree exposes the underlying BPlusTree.
func (c *CachedTree) Tree() *BPlusTree {
	return c.tree
}

// Wait blocks until pending cache writes have been applied.
func (c *CachedTree) Wait() {
	c.cache.Wait()
}

// Close releases the cache's background resources. The tree itself needs no
// teardown.
func (c *CachedTree) Close() {
	c.cache.Close()
}
