package seq

import "iter"

// Node is one element slot of a list. Nodes are the stable handles which
// clients hold on to: a node keeps referring to the same element across
// edits elsewhere in the list.
//
// Value is exported deliberately. Clients which hold a node may read and
// overwrite the element in place; the list never copies or relocates it.
type Node[T any] struct {
	Value T

	prev, next *Node[T]
}

// Next returns the successor node in logical order, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Prev returns the predecessor node in logical order, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	if n == nil {
		return nil
	}
	return n.prev
}

// List is an ordered doubly-linked sequence of elements.
//
// The zero value is a valid empty list. Lists are not safe for concurrent
// use; clients serialize access externally.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Front returns the first node, or nil for an empty list.
func (l *List[T]) Front() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Back returns the last node, or nil for an empty list.
func (l *List[T]) Back() *Node[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Init drops all elements. Nodes previously handed out become detached and
// must not be used with this list any more.
func (l *List[T]) Init() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

// PushBack appends a value and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++
	return n
}

// PushFront prepends a value and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.length++
	return n
}

// InsertBefore inserts a value immediately before node at and returns the
// new node. at must be a node of this list.
func (l *List[T]) InsertBefore(v T, at *Node[T]) *Node[T] {
	assert(at != nil, "seq.InsertBefore: nil node")
	if at == l.head {
		return l.PushFront(v)
	}
	n := &Node[T]{Value: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.length++
	return n
}

// InsertAfter inserts a value immediately after node at and returns the
// new node. at must be a node of this list.
func (l *List[T]) InsertAfter(v T, at *Node[T]) *Node[T] {
	assert(at != nil, "seq.InsertAfter: nil node")
	if at == l.tail {
		return l.PushBack(v)
	}
	n := &Node[T]{Value: v, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.length++
	return n
}

// Remove unlinks node n from the list and returns its value. n must be a
// node of this list. Other nodes are unaffected.
func (l *List[T]) Remove(n *Node[T]) T {
	assert(n != nil, "seq.Remove: nil node")
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.length--
	return n.Value
}

// Range returns an iterator over all nodes in logical order.
//
// The iteration is restartable; every call to the returned Seq starts at
// the head. Structural mutation during iteration is undefined.
func (l *List[T]) Range() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// ToSlice collects all values in logical order.
func (l *List[T]) ToSlice() []T {
	if l == nil || l.length == 0 {
		return nil
	}
	vs := make([]T, 0, l.length)
	for n := range l.Range() {
		vs = append(vs, n.Value)
	}
	return vs
}
