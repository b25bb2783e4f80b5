/*
Package twothree implements the persistent 2-3 tree engine underneath
the container packages.

A 2-3 tree is an ordered tree in which every internal node has two or
three children and every path from the root to a leaf has the same
length. Nodes are immutable: insert and remove return a new root and
share every untouched subtree with the old one, so an update costs
O(log N) fresh nodes and old snapshots stay valid forever.

Iterators record the path from the root to the current element as a
stack of (node, slot) positions; the same recorded path drives Unwind,
which rebuilds a root after a node on the path has been replaced.
*/
package twothree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'heist.twothree'.
func tracer() tracing.Trace {
	return tracing.Select("heist.twothree")
}
