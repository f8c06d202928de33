package domparser

import (
	"fmt"
	"strings"
)

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF      TokenKind = iota
	TokenStartTag           // <name attr="value">
	TokenEndTag             // </name>
	TokenText               // run of bytes up to the next '<'
)

var tokenNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenStartTag: "start tag",
	TokenEndTag:   "end tag",
	TokenText:     "text",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Tokenizer. Tag and Attrs are
// set for start and end tags, Text for text runs.
type Token struct {
	Kind  TokenKind
	Tag   Tag
	Attrs []Attribute // source order, duplicates kept
	Text  string
	Pos   Position
}

func (t Token) String() string {
	switch t.Kind {
	case TokenStartTag:
		if len(t.Attrs) == 0 {
			return fmt.Sprintf("StartTag(%s)", t.Tag)
		}
		attrs := make([]string, len(t.Attrs))
		for i, a := range t.Attrs {
			attrs[i] = a.String()
		}
		return fmt.Sprintf("StartTag(%s, [%s])", t.Tag, strings.Join(attrs, ", "))
	case TokenEndTag:
		return fmt.Sprintf("EndTag(%s)", t.Tag)
	case TokenText:
		return fmt.Sprintf("Text(%q)", t.Text)
	default:
		return t.Kind.String()
	}
}
