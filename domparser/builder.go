package domparser

import (
	"errors"
	"fmt"
)

// frame is an element whose end tag has not been seen yet.
type frame struct {
	tag      Tag
	attrs    []Attribute
	children []*Node
	pos      Position
}

// Builder assembles a token stream into a node tree. Open elements live on
// an explicit stack; an element is sealed into a Node when its end tag
// arrives.
type Builder struct {
	stack    []frame
	roots    []*Node
	maxDepth int
	finished bool
}

var errBuilderFinished = errors.New("domparser: builder already finished")

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Depth returns the number of currently open elements.
func (b *Builder) Depth() int { return len(b.stack) }

// MaxDepth returns the largest number of simultaneously open elements seen so
// far.
func (b *Builder) MaxDepth() int { return b.maxDepth }

// Feed applies one token to the tree under construction. TokenEOF is ignored;
// call Finish once the stream is exhausted.
func (b *Builder) Feed(tok Token) error {
	if b.finished {
		return errBuilderFinished
	}

	switch tok.Kind {
	case TokenStartTag:
		b.stack = append(b.stack, frame{tag: tok.Tag, attrs: tok.Attrs, pos: tok.Pos})
		if len(b.stack) > b.maxDepth {
			b.maxDepth = len(b.stack)
		}
		return nil

	case TokenText:
		b.appendNode(&Node{Kind: TextNode, Text: tok.Text, Pos: tok.Pos})
		return nil

	case TokenEndTag:
		return b.closeElement(tok)

	case TokenEOF:
		return nil

	default:
		return fmt.Errorf("domparser: unexpected token kind %d", tok.Kind)
	}
}

func (b *Builder) closeElement(tok Token) error {
	if len(b.stack) == 0 {
		return &StrayEndTagError{
			ParseError: ParseError{
				Message: fmt.Sprintf("end tag </%s> with no open element", tok.Tag.Name),
				Pos:     tok.Pos,
			},
			Found: tok.Tag,
		}
	}

	top := b.stack[len(b.stack)-1]
	if top.tag != tok.Tag {
		return newMismatchedEndTagError(top.tag, tok.Tag, tok.Pos)
	}
	b.stack = b.stack[:len(b.stack)-1]

	b.appendNode(&Node{
		Kind:     ElementNode,
		Tag:      top.tag,
		Attrs:    top.attrs,
		Children: top.children,
		Pos:      top.pos,
	})
	return nil
}

// appendNode adds n to the innermost open element, or to the root sequence
// when nothing is open.
func (b *Builder) appendNode(n *Node) {
	if len(b.stack) == 0 {
		b.roots = append(b.roots, n)
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, n)
}

// Finish returns the root-level nodes. It fails with an UnclosedElementError
// naming the innermost open element if any element is still open. The
// builder keeps no references to the tree afterwards and cannot be reused.
func (b *Builder) Finish() ([]*Node, error) {
	if b.finished {
		return nil, errBuilderFinished
	}
	b.finished = true

	stack, roots := b.stack, b.roots
	b.stack, b.roots = nil, nil

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, &UnclosedElementError{
			ParseError: ParseError{
				Message: fmt.Sprintf("unclosed element <%s>", top.tag.Name),
				Pos:     top.pos,
			},
			Tag: top.tag,
		}
	}

	if roots == nil {
		roots = []*Node{}
	}
	return roots, nil
}
