/*
Package darray implements a hybrid dynamic array.

# Hybrid of what?

Contiguous arrays give O(1) indexed access but pay O(n) for structural
edits and invalidate references on reallocation. Linked lists give O(1)
structural edits and stable element references but pay O(n) for indexed
access. A darray combines both: elements live in a doubly-linked backing
sequence (package seq), while an auxiliary position index (an owned,
explicitly-growable array of cursors) maps every logical index to the
node currently holding that element.

	Operation     |   darray        |  slice
	--------------+-----------------+--------
	Index         |   O(1)          |   O(1)
	Append        |   O(1) am.      |   O(1) am.
	Insert at i   |   O(n-i)        |   O(n-i)
	Remove at i   |   O(n-i)        |   O(n-i)
	Ref stability |   stable        |   none

The decisive difference is reference stability: a pointer to an element
(obtained via Ref or RangeRef) keeps aliasing that element across
insertions and removals at other positions, because the backing sequence
never relocates element storage. The position index is the only thing
that moves, and it holds cursors, not values.

Insertion and removal still shift index-table slots, so their cost is
linear in the distance to the tail. The container optimizes for mixed
random-access-plus-mutation workloads, not for memory compactness or
cache locality.

A darray is not safe for concurrent use. All operations are bounded
synchronous computations; clients serialize access externally.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

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
package darray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'darray'
func tracer() tracing.Trace {
	return tracing.Select("darray")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
