package darray

import (
	"fmt"

	"github.com/npillmayer/darray/seq"
)

// Check validates the mutual consistency of the backing sequence and the
// position index.
//
// This checker is intentionally strict and should be used in tests while
// the implementation is evolving.
func (d *Darray[T]) Check() error {
	if d == nil {
		return fmt.Errorf("darray: nil container")
	}
	if d.count < 0 {
		return fmt.Errorf("darray: negative count %d", d.count)
	}
	if d.count > len(d.table) {
		return fmt.Errorf("darray: count %d exceeds capacity %d", d.count, len(d.table))
	}
	if err := d.data.Check(); err != nil {
		return err
	}
	if d.data.Len() != d.count {
		return fmt.Errorf("darray: sequence holds %d elements, count is %d", d.data.Len(), d.count)
	}
	seen := make(map[*seq.Node[T]]int, d.count)
	for i := 0; i < d.count; i++ {
		if d.table[i] == nil {
			return fmt.Errorf("darray: nil cursor at slot %d", i)
		}
		if j, dup := seen[d.table[i]]; dup {
			return fmt.Errorf("darray: slots %d and %d alias the same cursor", j, i)
		}
		seen[d.table[i]] = i
	}
	// Slot i must hold the node which the traversal visits as its i-th.
	i := 0
	for n := range d.data.Range() {
		if d.table[i] != n {
			return fmt.Errorf("darray: slot %d disagrees with sequence order", i)
		}
		i++
	}
	return nil
}
