package core

import "regexp"

// Kind is the discriminant of a summary node.
type Kind string

const (
	KindCode          Kind = "code"
	KindHTML          Kind = "html"
	KindInlineCode    Kind = "inlineCode"
	KindLink          Kind = "link"
	KindParagraph     Kind = "paragraph"
	KindText          Kind = "text"
	KindList          Kind = "list"
	KindListItem      Kind = "listItem"
	KindHeading       Kind = "heading"
	KindStrong        Kind = "strong"
	KindEmphasis      Kind = "emphasis"
	KindThematicBreak Kind = "thematicBreak"
)

// Kinds lists every kind the renderer knows, in declaration order.
var Kinds = []Kind{
	KindCode, KindHTML, KindInlineCode, KindLink, KindParagraph, KindText,
	KindList, KindListItem, KindHeading, KindStrong, KindEmphasis, KindThematicBreak,
}

// Node is one tagged unit of a parsed documentation comment.
// The set of implementations is closed to this package.
type Node interface {
	Kind() Kind
	node()
}

// Summary is an ordered sequence of nodes forming one documentation comment.
type Summary []Node

// Code is a fenced code block.
type Code struct {
	Lang  string
	Value string
}

// HTML is raw html from the comment; it is shown literally, never interpreted.
type HTML struct {
	Value string
}

// InlineCode is a code span.
type InlineCode struct {
	Value string
}

// Link points either at an external URL or at an internal reflection id.
type Link struct {
	URL      string
	Children Summary
}

type Paragraph struct {
	Children Summary
}

type Text struct {
	Value string
}

type List struct {
	Children Summary
}

type ListItem struct {
	Children Summary
}

// Heading has a depth from 1 to 6 as produced upstream.
type Heading struct {
	Depth    int
	Children Summary
}

type Strong struct {
	Children Summary
}

type Emphasis struct {
	Children Summary
}

type ThematicBreak struct{}

// Unknown carries a discriminant the decoder did not recognize.
type Unknown struct {
	Type string
}

func (Code) Kind() Kind { return KindCode }
func (HTML) Kind() Kind { return KindHTML }
func (InlineCode) Kind() Kind { return KindInlineCode }
func (Link) Kind() Kind { return KindLink }
func (Paragraph) Kind() Kind { return KindParagraph }
func (Text) Kind() Kind { return KindText }
func (List) Kind() Kind { return KindList }
func (ListItem) Kind() Kind { return KindListItem }
func (Heading) Kind() Kind { return KindHeading }
func (Strong) Kind() Kind { return KindStrong }
func (Emphasis) Kind() Kind { return KindEmphasis }
func (ThematicBreak) Kind() Kind { return KindThematicBreak }
func (u Unknown) Kind() Kind { return Kind(u.Type) }

func (Code) node() {}
func (HTML) node() {}
func (InlineCode) node() {}
func (Link) node() {}
func (Paragraph) node() {}
func (Text) node() {}
func (List) node() {}
func (ListItem) node() {}
func (Heading) node() {}
func (Strong) node() {}
func (Emphasis) node() {}
func (ThematicBreak) node() {}
func (Unknown) node() {}

// Children returns the child sequence of container nodes and nil otherwise.
func Children(n Node) Summary {
	switch n := n.(type) {
	case Link:
		return n.Children
	case Paragraph:
		return n.Children
	case List:
		return n.Children
	case ListItem:
		return n.Children
	case Heading:
		return n.Children
	case Strong:
		return n.Children
	case Emphasis:
		return n.Children
	}
	return nil
}

// Walk visits every node of s depth-first in document order.
// Returning false from fn skips the node's children.
func Walk(s Summary, fn func(Node) bool) {
	for _, n := range s {
		if fn(n) {
			Walk(Children(n), fn)
		}
	}
}

var internalRefRegex = regexp.MustCompile(`^[0-9]+$`)

// IsInternalReference reports whether a link target is a reflection id
// (one or more digits) rather than a URL.
func IsInternalReference(url string) bool {
	return internalRefRegex.MatchString(url)
}
