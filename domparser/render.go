package domparser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Render writes nodes back out as markup. Tags and attributes are written
// with their source names in source order and text is written verbatim, so
// parsing the output yields an equal tree.
func Render(w io.Writer, nodes []*Node) error {
	bw := bufio.NewWriter(w)

	type item struct {
		node  *Node
		close bool
	}
	stack := make([]item, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, item{node: nodes[i]})
	}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := it.node

		if n.Kind == TextNode {
			bw.WriteString(n.Text)
			continue
		}
		if it.close {
			bw.WriteString("</")
			bw.WriteString(n.Tag.Name)
			bw.WriteByte('>')
			continue
		}

		bw.WriteByte('<')
		bw.WriteString(n.Tag.Name)
		for _, a := range n.Attrs {
			fmt.Fprintf(bw, ` %s="%s"`, a.Name, a.Value)
		}
		bw.WriteByte('>')

		stack = append(stack, item{node: n, close: true})
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: n.Children[i]})
		}
	}

	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString(nodes []*Node) string {
	var b strings.Builder
	_ = Render(&b, nodes) // strings.Builder never fails
	return b.String()
}

// Dump writes an indented outline of the tree, one node per line, for
// debugging.
func Dump(w io.Writer, nodes []*Node) error {
	bw := bufio.NewWriter(w)
	Walk(nodes, func(n *Node, depth int) bool {
		bw.WriteString(strings.Repeat("  ", depth-1))
		if n.Kind == TextNode {
			fmt.Fprintf(bw, "%q\n", n.Text)
			return true
		}
		bw.WriteString(n.Tag.String())
		if len(n.Attrs) > 0 {
			attrs := make([]string, len(n.Attrs))
			for i, a := range n.Attrs {
				attrs[i] = a.String()
			}
			fmt.Fprintf(bw, " [%s]", strings.Join(attrs, ", "))
		}
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}
