package domparser

import "fmt"

// TagKind identifies a recognized tag name.
type TagKind int

const (
	TagUnknown TagKind = iota
	TagHTML
	TagHead
	TagTitle
	TagBody
	TagH1
	TagP
)

var tagNames = map[TagKind]string{
	TagHTML:  "html",
	TagHead:  "head",
	TagTitle: "title",
	TagBody:  "body",
	TagH1:    "h1",
	TagP:     "p",
}

// tagKinds is the reverse of tagNames. Lookups are exact and case-sensitive.
var tagKinds = map[string]TagKind{
	"html":  TagHTML,
	"head":  TagHead,
	"title": TagTitle,
	"body":  TagBody,
	"h1":    TagH1,
	"p":     TagP,
}

func (k TagKind) String() string {
	if name, ok := tagNames[k]; ok {
		return name
	}
	return "unknown"
}

// Tag is a resolved tag name. Name always holds the text found in the source,
// including for TagUnknown.
type Tag struct {
	Kind TagKind
	Name string
}

// ResolveTag maps a tag name onto the vocabulary. It never fails: names that
// are not recognized resolve to TagUnknown.
func ResolveTag(name string) Tag {
	return Tag{Kind: tagKinds[name], Name: name}
}

// IsUnknown reports whether the tag is outside the vocabulary.
func (t Tag) IsUnknown() bool { return t.Kind == TagUnknown }

func (t Tag) String() string {
	if t.Kind == TagUnknown {
		return fmt.Sprintf("unknown(%q)", t.Name)
	}
	return t.Kind.String()
}

// AttrKind identifies a recognized attribute name.
type AttrKind int

const (
	AttrUnknown AttrKind = iota
	AttrClass
	AttrID
)

var attrKinds = map[string]AttrKind{
	"class": AttrClass,
	"id":    AttrID,
}

func (k AttrKind) String() string {
	switch k {
	case AttrClass:
		return "class"
	case AttrID:
		return "id"
	default:
		return "unknown"
	}
}

// Attribute is a resolved name="value" pair.
type Attribute struct {
	Kind  AttrKind
	Name  string
	Value string
}

// ResolveAttribute maps an attribute onto the vocabulary. Like ResolveTag it
// is total; unrecognized names resolve to AttrUnknown with name and value kept.
func ResolveAttribute(name, value string) Attribute {
	return Attribute{Kind: attrKinds[name], Name: name, Value: value}
}

// IsUnknown reports whether the attribute is outside the vocabulary.
func (a Attribute) IsUnknown() bool { return a.Kind == AttrUnknown }

func (a Attribute) String() string {
	if a.Kind == AttrUnknown {
		return fmt.Sprintf("unknown(%s=%q)", a.Name, a.Value)
	}
	return fmt.Sprintf("%s(%q)", a.Kind, a.Value)
}
