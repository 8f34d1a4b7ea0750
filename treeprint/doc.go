/*
Package treeprint renders the structure of an order-statistics tree to a
console.

The tree is printed sideways, with the root at the left margin and right
subtrees above their parents. Every node is annotated with its weight, the
size of its subtree and the weight sum of its subtree. Nodes are colored by
their AVL balance factor. Lines are truncated to the console width, with
display widths computed according to UAX#11 (East Asian Width).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package treeprint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indexed'
func tracer() tracing.Trace {
	return tracing.Select("indexed")
}
