package darray

import (
	"fmt"
	"io"
)

// Darray2Dot outputs the internal structure of a Darray in Graphviz DOT
// format (for debugging purposes).
//
// Index-table slots are drawn as a record row, sequence nodes as a chain;
// an edge from slot i to a node visualizes the cursor stored at i.
func Darray2Dot[T any](d *Darray[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	if d == nil {
		io.WriteString(w, "}\n")
		return
	}
	// The index table as one record node with a port per slot.
	io.WriteString(w, "\ttable [shape=record,label=\"")
	for i := 0; i < len(d.table); i++ {
		if i > 0 {
			io.WriteString(w, "|")
		}
		if i < d.count {
			fmt.Fprintf(w, "<s%d> %d", i, i)
		} else {
			fmt.Fprintf(w, "<s%d> ·", i)
		}
	}
	io.WriteString(w, "\"];\n")
	// Sequence nodes, chained in logical order.
	nodelist, edgelist := "", ""
	id := 0
	for i, v := range d.Range() {
		id++
		nodelist += fmt.Sprintf("\t\"n%d\" [shape=box,label=\"%v\"];\n", id, v)
		if id > 1 {
			edgelist += fmt.Sprintf("\t\"n%d\" -> \"n%d\" [dir=both];\n", id-1, id)
		}
		edgelist += fmt.Sprintf("\t\"table\":s%d -> \"n%d\" [style=dashed];\n", i, id)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
