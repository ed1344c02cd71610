// Package render — JSON renderer.
// Builds structured JSON output for an entry: the HTML fragment, its
// Markdown form, plain text, and structural information (headings, links,
// code, lists, rules) read back from the rendered tree with goquery.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/docsummary/core"
	"golang.org/x/net/html/atom"
)

// JSONRenderer produces structured JSON output for an entry.
type JSONRenderer struct {
	summary    *SummaryRenderer
	normalizer core.Normalizer
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(summary *SummaryRenderer, normalizer core.Normalizer) *JSONRenderer {
	return &JSONRenderer{summary: summary, normalizer: normalizer}
}

// Render converts an entry into the SummaryJSON structure.
func (r *JSONRenderer) Render(entry core.Entry) ([]byte, error) {
	// Query the rendered tree rather than reparsing the fragment; the HTML
	// parser would move blocks out of <p> and split nested anchors.
	root := r.summary.wrap(element(atom.Div), entry.Summary)
	doc := goquery.NewDocumentFromNode(root)

	var b strings.Builder
	if err := renderChildren(&b, root); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", entry.Name, err)
	}
	fragment := b.String()

	md, err := r.normalizer.Normalize(fragment)
	if err != nil {
		return nil, fmt.Errorf("normalizing %s: %w", entry.Name, err)
	}

	out := core.SummaryJSON{
		Name:      entry.Name,
		Path:      entry.Path,
		HTML:      fragment,
		Markdown:  md,
		Text:      strings.Join(strings.Fields(doc.Text()), " "),
		Structure: buildStructure(doc, entry.Summary),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func buildStructure(doc *goquery.Document, s core.Summary) core.SummaryStructure {
	st := core.SummaryStructure{
		Headings:     extractHeadings(doc),
		Links:        extractLinks(doc, s),
		CodeBlocks:   doc.Find("pre").Length(),
		Lists:        doc.Find("ul").Length(),
		Rules:        doc.Find("hr").Length(),
		UnknownKinds: unknownKinds(s),
	}
	st.InlineCode = doc.Find("code").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return sel.ParentsFiltered("pre").Length() == 0
	}).Length()
	return st
}

func extractHeadings(doc *goquery.Document) []core.HeadingInfo {
	headings := []core.HeadingInfo{}
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		headings = append(headings, core.HeadingInfo{
			Level: atomHeadingLevel(sel.Nodes[0].DataAtom),
			Text:  strings.TrimSpace(sel.Text()),
		})
	})
	return headings
}

// extractLinks pairs each rendered <a> with its source link node; both
// sequences are in document order.
func extractLinks(doc *goquery.Document, s core.Summary) []core.LinkInfo {
	var targets []string
	core.Walk(s, func(n core.Node) bool {
		if l, ok := n.(core.Link); ok {
			targets = append(targets, l.URL)
		}
		return true
	})

	links := []core.LinkInfo{}
	doc.Find("a").Each(func(i int, sel *goquery.Selection) {
		link := core.LinkInfo{
			Text: strings.TrimSpace(sel.Text()),
			Href: sel.AttrOr("href", ""),
		}
		if i < len(targets) {
			link.Internal = core.IsInternalReference(targets[i])
		}
		links = append(links, link)
	})
	return links
}

// unknownKinds lists the distinct unrecognized kinds in s, first seen first.
func unknownKinds(s core.Summary) []string {
	kinds := []string{}
	seen := make(map[string]bool)
	core.Walk(s, func(n core.Node) bool {
		if u, ok := n.(core.Unknown); ok && !seen[u.Type] {
			seen[u.Type] = true
			kinds = append(kinds, u.Type)
		}
		return true
	})
	return kinds
}
