/*
Package listfile provides API helpers to load the lines of text files into
darray containers.

Loading happens on a background goroutine while `Load` returns immediately
after the file has been opened. Progress events are broadcast to
subscribers, and the loaded container is handed out only once loading has
completed, keeping the container itself single-threaded.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package listfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'darray'
func tracer() tracing.Trace {
	return tracing.Select("darray")
}
