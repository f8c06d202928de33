package domparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []*Node {
	t.Helper()
	nodes, err := ParseString(src)
	require.NoError(t, err)
	return nodes
}

func TestNodeAttributeLookup(t *testing.T) {
	nodes := mustParse(t, `<p data-x="1" class="a  b" id="first" id="second"></p>`)
	p := nodes[0]

	class, ok := p.Attr(AttrClass)
	require.True(t, ok)
	assert.Equal(t, "a  b", class.Value)
	assert.Equal(t, []string{"a", "b"}, p.Classes())
	assert.True(t, p.HasClass("b"))
	assert.False(t, p.HasClass("c"))

	assert.Equal(t, "first", p.ID(), "first occurrence wins")

	v, ok := p.AttrByName("data-x")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = p.AttrByName("missing")
	assert.False(t, ok)
}

func TestNodeWithoutAttributes(t *testing.T) {
	p := mustParse(t, `<p></p>`)[0]
	_, ok := p.Attr(AttrID)
	assert.False(t, ok)
	assert.Equal(t, "", p.ID())
	assert.Nil(t, p.Classes())
}

func TestTextContent(t *testing.T) {
	nodes := mustParse(t, `<body><h1>Hello, </h1>big <p>world</p>!</body>`)
	assert.Equal(t, "Hello, big world!", nodes[0].TextContent())
	assert.Equal(t, "world", nodes[0].Children[2].TextContent())
}

func TestWalkOrderAndDepth(t *testing.T) {
	nodes := mustParse(t, `<html><head><title>T</title></head><body><p>x</p></body></html>tail`)

	var visited []string
	var depths []int
	Walk(nodes, func(n *Node, depth int) bool {
		if n.Kind == TextNode {
			visited = append(visited, "#"+n.Text)
		} else {
			visited = append(visited, n.Tag.Name)
		}
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"html", "head", "title", "#T", "body", "p", "#x", "#tail"}, visited)
	assert.Equal(t, []int{1, 2, 3, 4, 2, 3, 4, 1}, depths)
}

func TestWalkSkipsChildren(t *testing.T) {
	nodes := mustParse(t, `<html><head><title>T</title></head><body><p>x</p></body></html>`)

	var visited []string
	Walk(nodes, func(n *Node, _ int) bool {
		if n.Kind == ElementNode {
			visited = append(visited, n.Tag.Name)
		}
		return !n.IsElement(TagHead)
	})
	assert.Equal(t, []string{"html", "head", "body", "p"}, visited)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth(nil))
	assert.Equal(t, 0, Depth(mustParse(t, "text only")))
	assert.Equal(t, 1, Depth(mustParse(t, "<p>text</p>")))
	assert.Equal(t, 3, Depth(mustParse(t, "<html><body><p></p></body><head></head></html>")))
}

func TestFindAllAndFindByID(t *testing.T) {
	nodes := mustParse(t, `<body><p id="one">a</p><div><p class="x">b</p><h1 id="two"></h1></div></body>`)

	ps := FindAll(nodes, TagP)
	require.Len(t, ps, 2)
	assert.Equal(t, "a", ps[0].TextContent())
	assert.Equal(t, "b", ps[1].TextContent())

	assert.Empty(t, FindAll(nodes, TagTitle))

	two := FindByID(nodes, "two")
	require.NotNil(t, two)
	assert.True(t, two.IsElement(TagH1))
	assert.Nil(t, FindByID(nodes, "three"))
}
