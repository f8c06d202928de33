package domparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTag(name string, attrs ...Attribute) Token {
	return Token{Kind: TokenStartTag, Tag: ResolveTag(name), Attrs: attrs}
}

func endTag(name string) Token {
	return Token{Kind: TokenEndTag, Tag: ResolveTag(name)}
}

func textToken(s string) Token {
	return Token{Kind: TokenText, Text: s}
}

func feedAll(t *testing.T, b *Builder, tokens ...Token) {
	t.Helper()
	for _, tok := range tokens {
		require.NoError(t, b.Feed(tok))
	}
}

func TestBuilderNesting(t *testing.T) {
	b := NewBuilder()
	feedAll(t, b,
		startTag("body"),
		startTag("h1", ResolveAttribute("class", "x")),
		textToken("a"),
		endTag("h1"),
		startTag("p"),
		textToken("b"),
		endTag("p"),
		endTag("body"),
	)
	nodes, err := b.Finish()
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	body := nodes[0]
	assert.True(t, body.IsElement(TagBody))
	require.Len(t, body.Children, 2)
	assert.True(t, body.Children[0].IsElement(TagH1))
	assert.Equal(t, "x", body.Children[0].Classes()[0])
	assert.Equal(t, "a", body.Children[0].TextContent())
	assert.True(t, body.Children[1].IsElement(TagP))
	assert.Equal(t, "b", body.Children[1].TextContent())
}

func TestBuilderDepthTracking(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, 0, b.Depth())

	feedAll(t, b, startTag("html"), startTag("body"), startTag("p"))
	assert.Equal(t, 3, b.Depth())
	assert.Equal(t, 3, b.MaxDepth())

	feedAll(t, b, endTag("p"), endTag("body"))
	assert.Equal(t, 1, b.Depth())
	assert.Equal(t, 3, b.MaxDepth())

	feedAll(t, b, endTag("html"))
	assert.Equal(t, 0, b.Depth())
}

func TestBuilderTopLevelText(t *testing.T) {
	b := NewBuilder()
	feedAll(t, b, textToken("before"), startTag("p"), endTag("p"), textToken("after"))
	nodes, err := b.Finish()
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, TextNode, nodes[0].Kind)
	assert.Equal(t, "before", nodes[0].Text)
	assert.Equal(t, ElementNode, nodes[1].Kind)
	assert.Equal(t, "after", nodes[2].Text)
}

func TestBuilderIgnoresEOF(t *testing.T) {
	b := NewBuilder()
	feedAll(t, b, Token{Kind: TokenEOF})
	nodes, err := b.Finish()
	require.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestBuilderRejectsUnknownTokenKind(t *testing.T) {
	err := NewBuilder().Feed(Token{Kind: TokenKind(99)})
	assert.Error(t, err)
}

func TestBuilderMismatchedEndTag(t *testing.T) {
	b := NewBuilder()
	feedAll(t, b, startTag("p"))
	err := b.Feed(endTag("h1"))
	require.Error(t, err)

	var mismatch *MismatchedEndTagError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, TagP, mismatch.Expected.Kind)
	assert.Equal(t, TagH1, mismatch.Found.Kind)
}

func TestBuilderMismatchDoesNotSkipFrames(t *testing.T) {
	// </html> matches an outer frame, but the innermost open element is <p>.
	b := NewBuilder()
	feedAll(t, b, startTag("html"), startTag("p"))
	err := b.Feed(endTag("html"))

	var mismatch *MismatchedEndTagError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, TagP, mismatch.Expected.Kind)
	assert.Equal(t, TagHTML, mismatch.Found.Kind)
}

func TestBuilderUnknownTagsCompareByName(t *testing.T) {
	b := NewBuilder()
	feedAll(t, b, startTag("div"))
	err := b.Feed(endTag("span"))

	var mismatch *MismatchedEndTagError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "div", mismatch.Expected.Name)
	assert.Equal(t, "span", mismatch.Found.Name)

	b = NewBuilder()
	feedAll(t, b, startTag("div"), endTag("div"))
	nodes, err := b.Finish()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "div", nodes[0].Tag.Name)
}

func TestBuilderStrayEndTag(t *testing.T) {
	err := NewBuilder().Feed(endTag("p"))
	require.Error(t, err)

	var stray *StrayEndTagError
	require.ErrorAs(t, err, &stray)
	assert.Equal(t, TagP, stray.Found.Kind)
}

func TestBuilderUnclosedElementReportsInnermost(t *testing.T) {
	b := NewBuilder()
	feedAll(t, b, startTag("html"), startTag("body"))
	_, err := b.Finish()
	require.Error(t, err)

	var unclosed *UnclosedElementError
	require.ErrorAs(t, err, &unclosed)
	assert.Equal(t, TagBody, unclosed.Tag.Kind)
}

func TestBuilderFinishOnce(t *testing.T) {
	b := NewBuilder()
	_, err := b.Finish()
	require.NoError(t, err)

	_, err = b.Finish()
	assert.ErrorIs(t, err, errBuilderFinished)
	assert.ErrorIs(t, b.Feed(startTag("p")), errBuilderFinished)
}
