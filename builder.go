package darray

// Builder incrementally stages values and finalizes them into a Darray.
//
// Builder collects values in staging slices and materializes the container
// only when Darray() is called. The container is allocated in one step
// with its index capacity sized exactly to the staged element count, which
// avoids the repeated growth a long series of Add calls would trigger.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended values in reverse logical order.
	front []T
	// back keeps appended values in logical order.
	back []T

	done  bool
	dirty bool
	arr   *Darray[T]
}

// NewBuilder creates a new and empty container builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Darray returns the container built from all staged values.
//
// It is illegal to continue staging values after Darray has been called,
// but Darray may be called multiple times.
func (b *Builder[T]) Darray() *Darray[T] {
	if b == nil {
		return New[T]()
	}
	if b.dirty || b.arr == nil {
		b.arr = b.build()
		b.dirty = false
	}
	b.done = true
	if b.arr.IsEmpty() {
		tracer().Debugf("darray builder: container is empty")
	}
	return b.arr
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.arr = nil
}

// Append appends values to the staged build, after everything staged so
// far.
func (b *Builder[T]) Append(vs ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderDone
	}
	b.back = append(b.back, vs...)
	if len(vs) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends values to the staged build, before everything staged so
// far. The values themselves keep their given order.
func (b *Builder[T]) Prepend(vs ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderDone
	}
	// front is stored in reverse logical order.
	for i := len(vs) - 1; i >= 0; i-- {
		b.front = append(b.front, vs[i])
	}
	if len(vs) > 0 {
		b.dirty = true
	}
	return nil
}

// Size returns the number of currently staged values.
func (b *Builder[T]) Size() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

func (b *Builder[T]) build() *Darray[T] {
	d := NewWithCapacity[T](b.Size())
	for i := len(b.front) - 1; i >= 0; i-- {
		d.Add(b.front[i])
	}
	d.AddAll(b.back...)
	return d
}
