package domparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the document is structurally valid markup but semantically broken.
	Error Severity = iota
	// Warning means the document is usable but probably not what was intended.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "duplicate_id")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Pos      Position // related source position (optional)
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, " (at %s)", d.Pos)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(nodes []*Node) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity
// diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against a parsed
// document. Returns all diagnostics regardless of severity.
func Validate(nodes []*Node, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(nodes)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(nodes []*Node, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(nodes, extraRules...)

	var errs []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	if len(errs) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errs}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		singleRootRule{},
		strayTextRule{},
		unknownTagRule{},
		unknownAttributeRule{},
		duplicateIDRule{},
		titleInHeadRule{},
		headBeforeBodyRule{},
	}
}

// --- Rules ---

type singleRootRule struct{}

func (singleRootRule) Name() string { return "single_root" }

func (singleRootRule) Apply(nodes []*Node) []Diagnostic {
	var roots []*Node
	for _, n := range nodes {
		if n.Kind == ElementNode {
			roots = append(roots, n)
		}
	}
	switch len(roots) {
	case 1:
		return nil
	case 0:
		return []Diagnostic{{
			Rule:     "single_root",
			Severity: Warning,
			Message:  "document has no root element",
		}}
	default:
		return []Diagnostic{{
			Rule:     "single_root",
			Severity: Warning,
			Message:  fmt.Sprintf("document has %d root elements", len(roots)),
			Pos:      roots[1].Pos,
			Fix:      "wrap the content in a single <html> element",
		}}
	}
}

type strayTextRule struct{}

func (strayTextRule) Name() string { return "stray_text" }

func (strayTextRule) Apply(nodes []*Node) []Diagnostic {
	var diags []Diagnostic
	for _, n := range nodes {
		if n.Kind == TextNode && strings.TrimSpace(n.Text) != "" {
			diags = append(diags, Diagnostic{
				Rule:     "stray_text",
				Severity: Warning,
				Message:  fmt.Sprintf("text %q outside of any element", truncate(n.Text, 32)),
				Pos:      n.Pos,
			})
		}
	}
	return diags
}

type unknownTagRule struct{}

func (unknownTagRule) Name() string { return "unknown_tag" }

func (unknownTagRule) Apply(nodes []*Node) []Diagnostic {
	var diags []Diagnostic
	Walk(nodes, func(n *Node, _ int) bool {
		if n.Kind == ElementNode && n.Tag.IsUnknown() {
			diags = append(diags, Diagnostic{
				Rule:     "unknown_tag",
				Severity: Info,
				Message:  fmt.Sprintf("tag <%s> is not in the vocabulary", n.Tag.Name),
				Pos:      n.Pos,
			})
		}
		return true
	})
	return diags
}

type unknownAttributeRule struct{}

func (unknownAttributeRule) Name() string { return "unknown_attribute" }

func (unknownAttributeRule) Apply(nodes []*Node) []Diagnostic {
	var diags []Diagnostic
	Walk(nodes, func(n *Node, _ int) bool {
		for _, a := range n.Attrs {
			if a.IsUnknown() {
				diags = append(diags, Diagnostic{
					Rule:     "unknown_attribute",
					Severity: Warning,
					Message:  fmt.Sprintf("attribute %q on <%s> is not in the vocabulary", a.Name, n.Tag.Name),
					Pos:      n.Pos,
					Fix:      "use class or id",
				})
			}
		}
		return true
	})
	return diags
}

type duplicateIDRule struct{}

func (duplicateIDRule) Name() string { return "duplicate_id" }

func (duplicateIDRule) Apply(nodes []*Node) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]Position)
	Walk(nodes, func(n *Node, _ int) bool {
		for _, a := range n.Attrs {
			if a.Kind != AttrID {
				continue
			}
			if first, ok := seen[a.Value]; ok {
				diags = append(diags, Diagnostic{
					Rule:     "duplicate_id",
					Severity: Error,
					Message:  fmt.Sprintf("id %q already used at %s", a.Value, first),
					Pos:      n.Pos,
				})
				continue
			}
			seen[a.Value] = n.Pos
		}
		return true
	})
	return diags
}

type titleInHeadRule struct{}

func (titleInHeadRule) Name() string { return "title_in_head" }

func (titleInHeadRule) Apply(nodes []*Node) []Diagnostic {
	var diags []Diagnostic
	report := func(n *Node) {
		diags = append(diags, Diagnostic{
			Rule:     "title_in_head",
			Severity: Warning,
			Message:  "<title> should be a child of <head>",
			Pos:      n.Pos,
		})
	}
	for _, n := range nodes {
		if n.IsElement(TagTitle) {
			report(n)
		}
	}
	Walk(nodes, func(parent *Node, _ int) bool {
		if parent.IsElement(TagHead) {
			return true
		}
		for _, c := range parent.Children {
			if c.IsElement(TagTitle) {
				report(c)
			}
		}
		return true
	})
	return diags
}

type headBeforeBodyRule struct{}

func (headBeforeBodyRule) Name() string { return "head_before_body" }

func (headBeforeBodyRule) Apply(nodes []*Node) []Diagnostic {
	var diags []Diagnostic
	for _, html := range FindAll(nodes, TagHTML) {
		sawBody := false
		for _, c := range html.Children {
			switch {
			case c.IsElement(TagBody):
				sawBody = true
			case c.IsElement(TagHead) && sawBody:
				diags = append(diags, Diagnostic{
					Rule:     "head_before_body",
					Severity: Warning,
					Message:  "<head> appears after <body>",
					Pos:      c.Pos,
					Fix:      "move <head> above <body>",
				})
			}
		}
	}
	return diags
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
