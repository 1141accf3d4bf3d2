package darray

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/darray/seq"
)

// DefaultCapacity is the position-index capacity of a freshly created
// container, and the capacity an empty zero-value container grows to on
// its first append.
const DefaultCapacity = 25

// GrowthIncrement is the fixed capacity increment used when a positional
// insert hits a full position index. Appends double the capacity instead;
// see Add.
const GrowthIncrement = 25

// Darray is a hybrid dynamic array: a doubly-linked backing sequence of
// elements plus a position index mapping logical index to sequence node.
//
// A darray created by
//
//	Darray[int]{}
//
// is a valid object and behaves like an empty container with capacity 0.
//
// All mutating and reading operations keep the two internal structures in
// sync: after any public operation returns, slot i of the position index
// refers to the element which a left-to-right traversal of the backing
// sequence visits as its i-th element.
type Darray[T any] struct {
	count int
	table []*seq.Node[T]
	data  seq.List[T]
}

// New creates an empty container with the default index capacity.
func New[T any]() *Darray[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity creates an empty container with a given initial index
// capacity. A negative capacity is treated as 0.
func NewWithCapacity[T any](capacity int) *Darray[T] {
	if capacity < 0 {
		capacity = 0
	}
	d := &Darray[T]{}
	if capacity > 0 {
		d.table = make([]*seq.Node[T], capacity)
	}
	return d
}

// Of creates a container from a fixed list of initial values. The index
// capacity is sized to the number of values, which are appended in order.
func Of[T any](vs ...T) *Darray[T] {
	d := NewWithCapacity[T](len(vs))
	d.AddAll(vs...)
	return d
}

// Len returns the number of elements in the container.
func (d *Darray[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.count
}

// Cap returns the current capacity of the position index.
func (d *Darray[T]) Cap() int {
	if d == nil {
		return 0
	}
	return len(d.table)
}

// IsEmpty reports whether the container has no elements.
func (d *Darray[T]) IsEmpty() bool {
	return d.Len() == 0
}

// Add appends a value at the tail in O(1) amortized time.
//
// If the position index is full its capacity doubles, starting from
// DefaultCapacity for a capacity-0 container. Existing element references
// remain valid.
func (d *Darray[T]) Add(v T) {
	if d.count == len(d.table) {
		newCap := DefaultCapacity
		if len(d.table) > 0 {
			newCap = len(d.table) * 2
		}
		d.resizeTable(newCap)
	}
	d.table[d.count] = d.data.PushBack(v)
	d.count++
}

// AddAt inserts a value at logical index i, shifting elements at and after
// i one position up. Legal indices are 0 <= i <= Len(); i == Len() appends
// at the tail. An out-of-bounds index returns ErrIndexOutOfBounds and
// leaves the container unchanged.
//
// A full position index grows by GrowthIncrement, not by doubling: the
// positional-insert path favors bounded memory overhead over reallocation
// frequency. The cost is O(Len()-i), dominated by the index-table shift.
func (d *Darray[T]) AddAt(i int, v T) error {
	if i < 0 || i > d.count {
		return fmt.Errorf("%w: AddAt(%d) with size %d", ErrIndexOutOfBounds, i, d.count)
	}
	if d.count == len(d.table) {
		d.resizeTable(len(d.table) + GrowthIncrement)
	}
	var n *seq.Node[T]
	if i == d.count {
		n = d.data.PushBack(v)
	} else {
		// The slot to be displaced already knows the insertion point.
		n = d.data.InsertBefore(v, d.table[i])
	}
	copy(d.table[i+1:d.count+1], d.table[i:d.count])
	d.table[i] = n
	d.count++
	return nil
}

// AddAll appends all given values in order. The position index grows at
// most once, to hold exactly Len()+len(vs) cursors.
func (d *Darray[T]) AddAll(vs ...T) {
	if len(vs) == 0 {
		return
	}
	if d.count+len(vs) > len(d.table) {
		d.resizeTable(d.count + len(vs))
	}
	for _, v := range vs {
		d.table[d.count] = d.data.PushBack(v)
		d.count++
	}
}

// At returns the element at logical index i in O(1) time.
func (d *Darray[T]) At(i int) (T, error) {
	if i < 0 || i >= d.Len() {
		var zero T
		return zero, fmt.Errorf("%w: At(%d) with size %d", ErrIndexOutOfBounds, i, d.Len())
	}
	return d.table[i].Value, nil
}

// Ref returns a pointer to the element at logical index i in O(1) time.
//
// The pointer aliases the live element inside the backing sequence:
// writing through it mutates the container's stored value directly, and it
// stays valid across structural edits at other positions. It must not be
// used after the element itself has been removed.
func (d *Darray[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= d.Len() {
		return nil, fmt.Errorf("%w: Ref(%d) with size %d", ErrIndexOutOfBounds, i, d.Len())
	}
	return &d.table[i].Value, nil
}

// Set overwrites the element at logical index i in O(1) time.
func (d *Darray[T]) Set(i int, v T) error {
	if i < 0 || i >= d.Len() {
		return fmt.Errorf("%w: Set(%d) with size %d", ErrIndexOutOfBounds, i, d.Len())
	}
	d.table[i].Value = v
	return nil
}

// RemoveAt removes the element at logical index i, shifting subsequent
// elements one position down. Cost is O(Len()-i) for the index-table
// shift; the sequence edit itself is O(1).
func (d *Darray[T]) RemoveAt(i int) error {
	if i < 0 || i >= d.count {
		return fmt.Errorf("%w: RemoveAt(%d) with size %d", ErrIndexOutOfBounds, i, d.count)
	}
	d.data.Remove(d.table[i])
	copy(d.table[i:d.count-1], d.table[i+1:d.count])
	d.count--
	d.table[d.count] = nil
	return nil
}

// RemoveFunc removes elements matched by a predicate, scanning slots in
// logical order. With all == false the scan stops after the first match.
// With all == true the scan re-examines the slot a removal shifted the
// next element into, so adjacent matches are not skipped. Returns the
// number of elements removed; a container without matches is left
// unchanged.
func (d *Darray[T]) RemoveFunc(match func(T) bool, all bool) int {
	if d == nil || d.count == 0 || match == nil {
		return 0
	}
	var removed int
	for i := 0; i < d.count; i++ {
		if !match(d.table[i].Value) {
			continue
		}
		d.data.Remove(d.table[i])
		copy(d.table[i:d.count-1], d.table[i+1:d.count])
		d.count--
		d.table[d.count] = nil
		removed++
		if !all {
			return removed
		}
		i-- // the next element has shifted into slot i
	}
	return removed
}

// Remove removes the first element equal to v, or every equal element if
// all is set. A container without matches is left unchanged; Remove never
// errors. Returns the number of elements removed.
func Remove[T comparable](d *Darray[T], v T, all bool) int {
	return d.RemoveFunc(func(u T) bool { return u == v }, all)
}

// Clear removes all elements. The position index keeps its allocated
// capacity; element values referred to by the container are dropped, but
// whatever those values themselves refer to is never touched.
func (d *Darray[T]) Clear() {
	d.data.Init()
	for i := 0; i < d.count; i++ {
		d.table[i] = nil
	}
	d.count = 0
}

// ShrinkToSize truncates the container to at most size elements, removing
// elements from the tail, and reallocates the position index down to
// exactly that capacity. A size >= Len() is a no-op: this operation only
// shrinks, it never grows or pads.
func (d *Darray[T]) ShrinkToSize(size int) {
	if size < 0 {
		size = 0
	}
	if size >= d.count {
		return
	}
	tracer().Debugf("darray: shrinking from %d to %d elements", d.count, size)
	for d.count > size {
		d.count--
		d.data.Remove(d.table[d.count])
		d.table[d.count] = nil
	}
	d.resizeTable(size)
}

// Clone returns an independent deep copy: the backing sequence is copied
// element by element and a fresh position index is built for the copy. The
// receiver is unaffected, and no storage is shared.
func (d *Darray[T]) Clone() *Darray[T] {
	if d == nil {
		return nil
	}
	c := NewWithCapacity[T](len(d.table))
	for i := 0; i < d.count; i++ {
		c.table[i] = c.data.PushBack(d.table[i].Value)
	}
	c.count = d.count
	return c
}

// Move transfers the backing sequence and position index to a freshly
// created container and returns it. The receiver is left in the
// valid-empty state (size 0, capacity 0, no index storage) and remains
// usable.
func (d *Darray[T]) Move() *Darray[T] {
	m := &Darray[T]{
		count: d.count,
		table: d.table,
		data:  d.data,
	}
	d.count = 0
	d.table = nil
	d.data = seq.List[T]{}
	return m
}

// resizeTable swaps in a position index of the given capacity, keeping the
// first min(capacity, count) cursors. The new table is fully built before
// it replaces the old one, so a failed allocation never leaves the
// container half-resized. Sequence nodes are never touched.
func (d *Darray[T]) resizeTable(capacity int) {
	tracer().Debugf("darray: resizing index table %d -> %d", len(d.table), capacity)
	newTable := make([]*seq.Node[T], capacity)
	bound := min(capacity, d.count)
	copy(newTable, d.table[:bound])
	d.table = newTable
}

// rebuildTable recomputes every index slot by walking the sequence once in
// logical order. This is the only supported resynchronization after a bulk
// reordering of the sequence (sorting); it is O(count).
func (d *Darray[T]) rebuildTable() {
	assert(len(d.table) >= d.data.Len(), "darray: index table smaller than sequence")
	i := 0
	for n := range d.data.Range() {
		d.table[i] = n
		i++
	}
	assert(i == d.count, "darray: sequence length diverged from element count")
}
