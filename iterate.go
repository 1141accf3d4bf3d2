package darray

import "iter"

// Range returns an iterator over index/value pairs in logical order, from
// the first to the last element.
//
// The iteration is restartable; every call to the returned Seq starts at
// logical index 0. Structural mutation of the container during iteration
// (insert, remove, sort, clear, shrink) invalidates the traversal; this is
// not detected or guarded.
func (d *Darray[T]) Range() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		i := 0
		for n := range d.data.Range() {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}

// RangeRef returns an iterator over pointers to the elements in logical
// order, for mutable traversal. Writing through a yielded pointer mutates
// the container's stored value directly. The same invalidation rules as
// for Range apply.
func (d *Darray[T]) RangeRef() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if d == nil {
			return
		}
		for n := range d.data.Range() {
			if !yield(&n.Value) {
				return
			}
		}
	}
}

// ToSlice collects all elements into a new slice in logical order.
func (d *Darray[T]) ToSlice() []T {
	if d == nil {
		return nil
	}
	return d.data.ToSlice()
}
