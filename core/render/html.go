// Package render — HTML renderer.
// Wraps the rendered summary in a <section> naming its entry.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/docsummary/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLRenderer writes each entry as an HTML fragment.
type HTMLRenderer struct {
	summary *SummaryRenderer
}

// NewHTMLRenderer creates an HTMLRenderer on top of summary.
func NewHTMLRenderer(summary *SummaryRenderer) *HTMLRenderer {
	return &HTMLRenderer{summary: summary}
}

// Render returns the entry as <section class="doc-summary" data-name="...">.
func (r *HTMLRenderer) Render(entry core.Entry) ([]byte, error) {
	section := element(atom.Section)
	section.Attr = []html.Attribute{
		{Key: "class", Val: "doc-summary"},
		{Key: "data-name", Val: entry.Name},
	}
	r.summary.wrap(section, entry.Summary)

	var buf bytes.Buffer
	if err := html.Render(&buf, section); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", entry.Name, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
