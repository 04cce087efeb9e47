// Demo program: builds a small order-4 tree, runs a fixed batch of lookups
// and prints the resulting structure.
// Run: go run ./cmd/bptdemo
package main

import (
	"log"
	"os"

	bplus "bptree/bplustree"

	"github.com/fatih/color"
)

func main() {
	tree, err := bplus.NewBPlusTree(bplus.DefaultOrder)
	if err != nil {
		log.Fatalf("new tree: %v", err)
	}

	pairs := [][2]int64{
		{10, 100}, {20, 200}, {5, 50}, {6, 60}, {15, 150},
		{25, 250}, {2, 20}, {16, 160}, {18, 180},
	}
	for _, p := range pairs {
		if err := tree.Insert(p[0], p[1]); err != nil {
			log.Fatalf("insert %d: %v", p[0], err)
		}
	}

	color.Cyan("=== Lookups ===")
	found := color.New(color.FgGreen)
	missing := color.New(color.FgRed)
	for _, key := range []int64{2, 5, 6, 10, 15, 16, 18, 20, 25, 30} {
		if v, ok := tree.Search(key); ok {
			found.Printf("Key %d => %d\n", key, v)
		} else {
			missing.Printf("Key %d not found\n", key)
		}
	}

	color.Cyan("\n=== Structure ===")
	tree.DumpTo(os.Stdout)
}
