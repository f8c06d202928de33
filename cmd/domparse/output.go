package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sor4chi/browser/domparser"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

type attrView struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

type nodeView struct {
	Type     string      `json:"type" yaml:"type"`
	Tag      string      `json:"tag,omitempty" yaml:"tag,omitempty"`
	Known    bool        `json:"known,omitempty" yaml:"known,omitempty"`
	Attrs    []attrView  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Line     int         `json:"line" yaml:"line"`
	Column   int         `json:"column" yaml:"column"`
	Children []*nodeView `json:"children,omitempty" yaml:"children,omitempty"`
}

type tokenView struct {
	Type   string     `json:"type" yaml:"type"`
	Tag    string     `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attrs  []attrView `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text   string     `json:"text,omitempty" yaml:"text,omitempty"`
	Line   int        `json:"line" yaml:"line"`
	Column int        `json:"column" yaml:"column"`
}

func toAttrViews(attrs []domparser.Attribute) []attrView {
	if len(attrs) == 0 {
		return nil
	}
	views := make([]attrView, len(attrs))
	for i, a := range attrs {
		views[i] = attrView{Name: a.Name, Kind: a.Kind.String(), Value: a.Value}
	}
	return views
}

// toNodeViews converts the tree into its serializable form. It walks with an
// explicit stack so the encoders are the only recursive step.
func toNodeViews(nodes []*domparser.Node) []*nodeView {
	type item struct {
		node *domparser.Node
		dst  *[]*nodeView
	}
	roots := make([]*nodeView, 0, len(nodes))
	stack := make([]item, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, item{nodes[i], &roots})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := it.node
		v := &nodeView{Type: n.Kind.String(), Line: n.Pos.Line, Column: n.Pos.Column}
		if n.Kind == domparser.TextNode {
			v.Text = n.Text
		} else {
			v.Tag = n.Tag.Name
			v.Known = !n.Tag.IsUnknown()
			v.Attrs = toAttrViews(n.Attrs)
		}
		*it.dst = append(*it.dst, v)

		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{n.Children[i], &v.Children})
		}
	}
	return roots
}

func toTokenViews(tokens []domparser.Token) []tokenView {
	views := make([]tokenView, len(tokens))
	for i, tok := range tokens {
		v := tokenView{Type: tok.Kind.String(), Line: tok.Pos.Line, Column: tok.Pos.Column}
		switch tok.Kind {
		case domparser.TokenStartTag, domparser.TokenEndTag:
			v.Tag = tok.Tag.Name
			v.Attrs = toAttrViews(tok.Attrs)
		case domparser.TokenText:
			v.Text = tok.Text
		}
		views[i] = v
	}
	return views
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format outputFormat, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q cannot encode structured output", format)
	}
}
