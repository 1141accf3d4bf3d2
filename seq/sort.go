package seq

// SortFunc reorders the list into ascending order as defined by less,
// using a stable merge sort on the node links. Elements compare equal when
// neither less(a,b) nor less(b,a) holds; equal elements retain their
// relative order.
//
// Nodes are relinked, never reallocated: a node handle held by a client
// still refers to the same element after sorting, at its new position.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l == nil || l.length < 2 {
		return
	}
	l.head = mergeSort(l.head, less)
	// The merge works on next-links only; rebuild prev-links and tail.
	var prev *Node[T]
	for n := l.head; n != nil; n = n.next {
		n.prev = prev
		prev = n
	}
	l.tail = prev
}

// mergeSort sorts a nil-terminated chain of next-links and returns the new
// head. prev-links are left stale and must be repaired by the caller.
func mergeSort[T any](head *Node[T], less func(a, b T) bool) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	mid := splitHalf(head)
	left := mergeSort(head, less)
	right := mergeSort(mid, less)
	return merge(left, right, less)
}

// splitHalf cuts the chain after its middle node and returns the head of
// the second half.
func splitHalf[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil
	return mid
}

// merge interleaves two sorted chains. Stability: on ties the left chain
// wins, so equal elements keep their original order.
func merge[T any](left, right *Node[T], less func(a, b T) bool) *Node[T] {
	var head, tail *Node[T]
	appendNode := func(n *Node[T]) {
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	for left != nil && right != nil {
		if less(right.Value, left.Value) {
			n := right
			right = right.next
			appendNode(n)
		} else {
			n := left
			left = left.next
			appendNode(n)
		}
	}
	rest := left
	if rest == nil {
		rest = right
	}
	if tail == nil {
		return rest
	}
	tail.next = rest
	return head
}
