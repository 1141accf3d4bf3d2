package darray

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("darray: index out of bounds")
	// ErrBuilderDone signals that a builder has already materialized its
	// container and further staging is illegal.
	ErrBuilderDone = errors.New("darray: builder has been completed")
	// ErrIllegalArguments signals invalid function parameters.
	ErrIllegalArguments = errors.New("darray: illegal arguments")
)
