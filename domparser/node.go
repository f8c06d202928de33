package domparser

import "strings"

// NodeKind discriminates the Node tagged union.
type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
)

func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// Node is an element or a text leaf. Kind determines which fields are
// populated: Tag, Attrs and Children for elements, Text for text nodes.
type Node struct {
	Kind     NodeKind
	Tag      Tag
	Attrs    []Attribute // source order
	Children []*Node     // source order
	Text     string
	Pos      Position // start tag or first byte of the text run
}

// NewElement returns an element node. It is mostly useful for building
// expected trees in tests and for constructing documents to Render.
func NewElement(tag Tag, attrs []Attribute, children ...*Node) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Attrs: attrs, Children: children}
}

// NewText returns a text node.
func NewText(text string) *Node {
	return &Node{Kind: TextNode, Text: text}
}

// IsElement reports whether n is an element with the given tag kind.
func (n *Node) IsElement(kind TagKind) bool {
	return n.Kind == ElementNode && n.Tag.Kind == kind
}

// Attr returns the first attribute of the given kind.
func (n *Node) Attr(kind AttrKind) (Attribute, bool) {
	for _, a := range n.Attrs {
		if a.Kind == kind {
			return a, true
		}
	}
	return Attribute{}, false
}

// AttrByName looks an attribute up by its source name, which also finds
// attributes outside the vocabulary.
func (n *Node) AttrByName(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the value of the id attribute, or "" if there is none.
func (n *Node) ID() string {
	a, _ := n.Attr(AttrID)
	return a.Value
}

// Classes splits the class attribute on whitespace.
func (n *Node) Classes() []string {
	a, ok := n.Attr(AttrClass)
	if !ok {
		return nil
	}
	return strings.Fields(a.Value)
}

// HasClass reports whether class is one of the node's classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent concatenates all text below n in document order.
func (n *Node) TextContent() string {
	var b strings.Builder
	Walk([]*Node{n}, func(c *Node, _ int) bool {
		if c.Kind == TextNode {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// Walk visits nodes in document order (pre-order), passing each node's depth
// with roots at depth 1. Returning false from fn skips that node's children.
// Traversal uses an explicit stack, so deep documents do not grow the call
// stack.
func Walk(nodes []*Node, fn func(n *Node, depth int) bool) {
	type item struct {
		node  *Node
		depth int
	}
	stack := make([]item, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, item{nodes[i], 1})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.node, it.depth) {
			continue
		}
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.node.Children[i], it.depth + 1})
		}
	}
}

// Depth returns the element nesting depth of the tree: 0 for no elements, 1
// for a childless element, and so on. Text nodes do not add depth.
func Depth(nodes []*Node) int {
	deepest := 0
	Walk(nodes, func(n *Node, depth int) bool {
		if n.Kind == ElementNode && depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

// FindAll returns all elements with the given tag kind in document order.
func FindAll(nodes []*Node, kind TagKind) []*Node {
	var result []*Node
	Walk(nodes, func(n *Node, _ int) bool {
		if n.IsElement(kind) {
			result = append(result, n)
		}
		return true
	})
	return result
}

// FindByID returns the first element whose id attribute equals id, or nil.
func FindByID(nodes []*Node, id string) *Node {
	var found *Node
	Walk(nodes, func(n *Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.Kind == ElementNode && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}
