/*
Package arenatree implements a family of binary search trees whose nodes live
in a single contiguous arena and reference each other by index.

Trees

Three balancing disciplines are offered, selected by Kind:

  - BST: plain, unbalanced binary search tree
  - RedBlack: red-black tree
  - AVL: height-balanced AVL tree

Each of them can be bounded (a fixed capacity chosen at construction, inserts
beyond it are rejected) or growable (the arena grows and shrinks in chunks).
Trees are ordered multisets: equal elements may be inserted repeatedly and
group to the left of each other.

Arena layout

A tree keeps its elements in a slice and the relations between nodes in
parallel index columns (parent, left, right, plus color or height). Index
nilIndex marks the absence of a node. Slots [0, Len()) are occupied, there
are never holes: removing a node moves the node in the last slot into the
vacated one and repairs every link pointing at it. This keeps iteration over
the arena cheap and lets a tree be copied with a handful of slice copies.

All memory requests go through an alloc.Allocator, so a tree can be put on a
budget and allocation failure surfaces as an error instead of a crash.

Current status

  - insert, remove, queries, traversals and set algebra for all kinds
  - invariant checker (Check) used throughout the tests
  - in-memory hibernation of idle trees with LZ4
  - Graphviz and console output for debugging

Trees are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arenatree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arenatree'.
func tracer() tracing.Trace {
	return tracing.Select("arenatree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
