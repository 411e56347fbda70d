package redblack

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Print writes an indented dump of the tree to w, for debugging purposes.
// Every node is printed as its color and key, followed by a "left" and a
// "right" section holding the children, indented by two more spaces.
// Absent children are printed as "null":
//
//	black 2
//	left
//	  red -1
//	  left
//	    null
//	  right
//	    null
//	right
//	  red 3
//	  …
func (t *Tree[K]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	printNode(bw, t.Root(), 0)
	return bw.Flush()
}

// String returns the dump written by Print.
func (t *Tree[K]) String() string {
	var sb strings.Builder
	_ = t.Print(&sb)
	return sb.String()
}

func printNode[K any](w *bufio.Writer, n *Node[K], indent int) {
	pad := strings.Repeat(" ", indent)
	if n == nil {
		fmt.Fprintf(w, "%snull\n", pad)
		return
	}
	fmt.Fprintf(w, "%s%s %v\n", pad, n.color, n.key)
	fmt.Fprintf(w, "%sleft\n", pad)
	printNode(w, n.left, indent+2)
	fmt.Fprintf(w, "%sright\n", pad)
	printNode(w, n.right, indent+2)
}
