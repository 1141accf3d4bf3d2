package seq

import "fmt"

// Check validates the structural invariants of the list.
//
// This checker is intentionally strict and should be used in tests while
// the implementation is evolving.
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("seq: nil list")
	}
	if l.head == nil || l.tail == nil {
		if l.head != nil || l.tail != nil {
			return fmt.Errorf("seq: head/tail nil-ness disagrees")
		}
		if l.length != 0 {
			return fmt.Errorf("seq: empty list must have length=0, has %d", l.length)
		}
		return nil
	}
	if l.head.prev != nil {
		return fmt.Errorf("seq: head has a predecessor")
	}
	if l.tail.next != nil {
		return fmt.Errorf("seq: tail has a successor")
	}
	var count int
	var prev *Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.prev != prev {
			return fmt.Errorf("seq: broken prev-link at node %d", count)
		}
		prev = n
		count++
		if count > l.length {
			return fmt.Errorf("seq: more nodes than length=%d, possible cycle", l.length)
		}
	}
	if prev != l.tail {
		return fmt.Errorf("seq: traversal does not end at tail")
	}
	if count != l.length {
		return fmt.Errorf("seq: length mismatch (%d != %d)", count, l.length)
	}
	return nil
}
