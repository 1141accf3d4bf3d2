package darray

import "cmp"

// SortFunc reorders the container into ascending order as defined by less,
// which must describe a strict weak ordering. The sort is stable: elements
// comparing equal retain their relative order.
//
// The reordering is delegated to the backing sequence, which relinks nodes
// in place; afterwards every cursor's logical position has changed, so the
// position index is rebuilt with a full sequence walk. O(n log n) for the
// sort plus O(n) for the rebuild.
//
// The comparator is used only for the duration of the call and not
// retained.
func (d *Darray[T]) SortFunc(less func(a, b T) bool) {
	if d == nil || d.count < 2 {
		return
	}
	d.data.SortFunc(less)
	d.rebuildTable()
}

// Sort reorders a container of ordered elements into ascending natural
// order. See SortFunc for cost and stability.
func Sort[T cmp.Ordered](d *Darray[T]) {
	d.SortFunc(func(a, b T) bool { return a < b })
}
