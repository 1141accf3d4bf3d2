/*
Package viz prints darray containers to consoles (for debugging and
demonstration purposes).

Output is read-only: the package never mutates a container.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package viz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'darray'
func tracer() tracing.Trace {
	return tracing.Select("darray")
}
