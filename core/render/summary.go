// Package render provides the summary renderer and the output renderers
// built on top of it.
// This file implements SummaryRenderer, which turns a documentation-comment
// summary into an HTML element tree, one element per node.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/docsummary/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkResolver maps an internal reference id to an href.
type LinkResolver interface {
	Resolve(id string) string
}

// LinkResolverFunc adapts a function to LinkResolver.
type LinkResolverFunc func(id string) string

// Resolve calls f(id).
func (f LinkResolverFunc) Resolve(id string) string { return f(id) }

// unresolvedLinks leaves internal references with an empty href.
var unresolvedLinks = LinkResolverFunc(func(string) string { return "" })

// BaseLinkResolver joins a base URL and the reference id.
// An empty base resolves every reference to "".
type BaseLinkResolver string

// Resolve returns base + "/" + id.
func (b BaseLinkResolver) Resolve(id string) string {
	if b == "" {
		return ""
	}
	return strings.TrimSuffix(string(b), "/") + "/" + id
}

// SummaryRenderer renders summaries into HTML element trees.
// It holds no per-render state and is safe for concurrent use.
type SummaryRenderer struct {
	logger *slog.Logger
	links  LinkResolver
}

// Option configures a SummaryRenderer.
type Option func(*SummaryRenderer)

// WithLogger sets the logger that receives unknown-kind warnings.
func WithLogger(l *slog.Logger) Option {
	return func(r *SummaryRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithLinkResolver sets how internal (numeric) link targets are resolved.
func WithLinkResolver(lr LinkResolver) Option {
	return func(r *SummaryRenderer) {
		if lr != nil {
			r.links = lr
		}
	}
}

// NewSummaryRenderer creates a SummaryRenderer. Without options it logs
// to slog.Default() and leaves internal links unresolved.
func NewSummaryRenderer(opts ...Option) *SummaryRenderer {
	r := &SummaryRenderer{
		logger: slog.Default(),
		links:  unresolvedLinks,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Nodes renders s into sibling elements in input order.
// Nodes of unknown kind produce no element.
func (r *SummaryRenderer) Nodes(s core.Summary) []*html.Node {
	out := make([]*html.Node, 0, len(s))
	for _, n := range s {
		if el := r.node(n); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// Render writes s to w as an HTML fragment.
func (r *SummaryRenderer) Render(w io.Writer, s core.Summary) error {
	for _, n := range r.Nodes(s) {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering %s: %w", n.Data, err)
		}
	}
	return nil
}

// RenderString renders s to an HTML fragment string.
func (r *SummaryRenderer) RenderString(s core.Summary) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *SummaryRenderer) node(n core.Node) *html.Node {
	switch n := n.(type) {
	case core.Code:
		code := element(atom.Code)
		if n.Lang != "" {
			code.Attr = []html.Attribute{{Key: "class", Val: "language-" + n.Lang}}
		}
		code.AppendChild(text(n.Value))
		pre := element(atom.Pre)
		pre.AppendChild(code)
		return pre
	case core.HTML:
		return inlineCode(n.Value)
	case core.InlineCode:
		return inlineCode(n.Value)
	case core.Link:
		href := n.URL
		if core.IsInternalReference(n.URL) {
			href = r.links.Resolve(n.URL)
		}
		a := element(atom.A)
		a.Attr = []html.Attribute{{Key: "href", Val: href}}
		return r.wrap(a, n.Children)
	case core.Paragraph:
		return r.wrap(element(atom.P), n.Children)
	case core.Text:
		span := element(atom.Span)
		span.AppendChild(text(" " + n.Value))
		return span
	case core.List:
		return r.wrap(element(atom.Ul), n.Children)
	case core.ListItem:
		return r.wrap(element(atom.Li), n.Children)
	case core.Heading:
		h := element(headingAtom(n.Depth))
		h.Attr = []html.Attribute{{Key: "id", Val: ""}}
		return r.wrap(h, n.Children)
	case core.Strong:
		return r.wrap(element(atom.Em), n.Children)
	case core.Emphasis:
		return r.wrap(element(atom.Em), n.Children)
	case core.ThematicBreak:
		return element(atom.Hr)
	case nil:
		r.logger.Warn("unknown summary type", slog.String("kind", ""))
		return nil
	default:
		r.logger.Warn("unknown summary type", slog.String("kind", string(n.Kind())))
		return nil
	}
}

// wrap appends the rendered children to parent.
func (r *SummaryRenderer) wrap(parent *html.Node, children core.Summary) *html.Node {
	for _, c := range r.Nodes(children) {
		parent.AppendChild(c)
	}
	return parent
}

// renderChildren writes the children of parent as an HTML fragment.
func renderChildren(w io.Writer, parent *html.Node) error {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// headingLevel clamps a heading depth to 1..6.
func headingLevel(depth int) int {
	return min(max(depth, 1), len(headingAtoms))
}

func headingAtom(depth int) atom.Atom {
	return headingAtoms[headingLevel(depth)-1]
}

// atomHeadingLevel returns 1..6 for h1..h6 and 0 for any other element.
func atomHeadingLevel(a atom.Atom) int {
	for i, h := range headingAtoms {
		if a == h {
			return i + 1
		}
	}
	return 0
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func inlineCode(s string) *html.Node {
	code := element(atom.Code)
	code.AppendChild(text(s))
	return code
}
