/*
Package redblack offers an ordered container for keys of a totally ordered type,
organized as a red-black tree.

# Red-Black Trees

A red-black tree is a binary search tree which keeps itself approximately
balanced by coloring every node either red or black. After every insertion
the following properties hold:

 1. The root is black. Absent children count as black leaves.
 2. A red node never has a red child.
 3. Every path from a node down to an absent child passes through the same
    number of black nodes (the black-height of the node).
 4. Keys in a left subtree are less than or equal to the node's key, keys in a
    right subtree are greater than or equal to it.

Together these guarantee that a tree of n nodes has a height of at most
2·log2(n+1), keeping Insert and Contains at O(log n).

Equal keys are permitted. An insertion of a key equal to an existing one is
routed into the right subtree of the existing node; rotations may later move
copies to either side, which is why ordering is non-strict on both sides.

The tree currently supports insertion and lookup only. There is no removal,
no iteration and no synchronization: clients have to serialize calls to Insert
themselves if a tree is shared between goroutines.

# Diagnostics

Check verifies all of the properties above and reports the first violation
found as a *Violation. Print and Tree2Dot render a tree for debugging, and
Watch offers a stream of the rotations and recolorings performed during
insertion. Package console renders trees for a terminal.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package redblack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'redblack'
func tracer() tracing.Trace {
	return tracing.Select("redblack")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
