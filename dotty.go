package redblack

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[K any](tree *Tree[K], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K]()
	leaves := 0
	var walk func(n *Node[K]) int
	walk = func(n *Node[K]) int {
		if n == nil {
			leaves++
			nilid := -leaves
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
			return nilid
		}
		ID := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\" %s];\n", ID, n.key, nodeDotStyles(n))
		l := walk(n.left)
		r := walk(n.right)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, l)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, r)
		return ID
	}
	name := DefaultName
	if tree != nil {
		name = tree.cfg.Name
		walk(tree.root)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write(fmt.Sprintf("strict digraph %q {\n", name))
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

func nodeDotStyles[K any](node *Node[K]) string {
	s := ",style=filled,shape=circle"
	if node.IsRed() {
		s += ",color=\"#cc0000\",fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#444444\",fontcolor=white"
	}
	return s
}
