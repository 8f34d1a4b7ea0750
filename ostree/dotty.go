package ostree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with key, weight, subtree count and subtree sum. Empty
// child positions are drawn as small circles, so that left and right
// children can be told apart. A nil tree is written as an empty graph.
func (t *Tree[K]) ToDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	ids := 0
	var visit func(n *node[K]) int
	visit = func(n *node[K]) int {
		ids++
		id := ids
		if n == nil {
			fmt.Fprintf(&nodelist, "\t\"%d\" %s;\n", id, emptyNode())
			return id
		}
		label := fmt.Sprintf("%v\\nw=%d n=%d Σ=%d", n.key, n.weight, n.count, n.sum)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\" %s];\n", id, escapeLabel(label), nodeDotStyles(n))
		if n.left == nil && n.right == nil {
			return id
		}
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, visit(n.left))
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, visit(n.right))
		return id
	}
	if !t.IsEmpty() {
		visit(t.root)
	}
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K any](n *node[K]) string {
	s := ",style=filled,shape=box"
	if n.balance() != 0 {
		return s + ",fillcolor=\"#FFCCAA\""
	}
	return s + ",fillcolor=\"#a3d7e4\""
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
