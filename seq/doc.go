/*
Package seq provides the doubly-linked backing sequence for darray
containers.

The package is intentionally not a general list library. It is specialized
for sequence storage where clients keep long-lived node handles: a node
stays attached to its element for the element's whole lifetime, across
insertions and removals elsewhere in the list and across sorting, which
relinks nodes instead of moving values.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package seq

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
