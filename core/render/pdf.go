// Package render — PDF renderer.
// Lays out the rendered summary tree as a PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, code blocks, lists
// and rules. Inline emphasis and link targets are flattened to plain text.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/docsummary/core"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const listIndent = 6.0 // mm per nesting level

// PDFRenderer renders an entry as a PDF document.
type PDFRenderer struct {
	summary *SummaryRenderer
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(summary *SummaryRenderer) *PDFRenderer {
	return &PDFRenderer{summary: summary}
}

// pdfWriter carries the document and its cp1252 translator.
type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// Render lays out the entry's summary and returns the PDF bytes.
func (r *PDFRenderer) Render(entry core.Entry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	// Title from the entry name.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, w.tr(entry.Name), "", "L", false)
	pdf.Ln(2)

	if entry.Path != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, w.tr("Path: "+entry.Path), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	for _, n := range r.summary.Nodes(entry.Summary) {
		w.block(n, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF for %s: %w", entry.Name, err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// block writes one top-level or list-nested element.
func (w *pdfWriter) block(n *html.Node, depth int) {
	switch n.DataAtom {
	case atom.Pre:
		w.pdf.Ln(2)
		w.pdf.SetFont("Courier", "", 9)
		w.pdf.SetFillColor(245, 245, 245)
		for _, line := range strings.Split(textContent(n), "\n") {
			w.pdf.MultiCell(0, 4.5, w.tr(line), "", "L", true)
		}
		w.pdf.Ln(2)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.heading(strings.TrimSpace(textContent(n)), atomHeadingLevel(n.DataAtom))
	case atom.Ul:
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			w.listItem(li, depth)
		}
		w.pdf.Ln(1)
	case atom.Li:
		w.listItem(n, depth)
	case atom.Hr:
		w.rule()
	default:
		// Paragraphs and top-level inline elements.
		text := strings.TrimSpace(textContent(n))
		if text == "" {
			return
		}
		w.pdf.SetFont("Helvetica", "", 10)
		w.pdf.MultiCell(0, 5, w.tr(text), "", "L", false)
		w.pdf.Ln(2)
	}
}

// listItem writes a bulleted line for li's inline content, then any
// nested lists one level deeper.
func (w *pdfWriter) listItem(li *html.Node, depth int) {
	var inline strings.Builder
	var nested []*html.Node
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Ul || c.DataAtom == atom.Pre {
			nested = append(nested, c)
			continue
		}
		inline.WriteString(textContent(c))
	}

	left, _, _, _ := w.pdf.GetMargins()
	indent := float64(depth) * listIndent
	w.pdf.SetX(left + indent)
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.MultiCell(0, 5, w.tr("• "+strings.TrimSpace(inline.String())), "", "L", false)

	for _, n := range nested {
		w.block(n, depth+1)
	}
}

// heading sets the font size based on heading level and writes text.
func (w *pdfWriter) heading(text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	w.pdf.Ln(4)
	w.pdf.SetFont("Helvetica", "B", size)
	w.pdf.MultiCell(0, size*0.6, w.tr(text), "", "L", false)
	w.pdf.Ln(2)
}

// rule draws a horizontal line across the text area.
func (w *pdfWriter) rule() {
	left, _, right, _ := w.pdf.GetMargins()
	pageW, _ := w.pdf.GetPageSize()
	w.pdf.Ln(2)
	y := w.pdf.GetY()
	w.pdf.SetDrawColor(180, 180, 180)
	w.pdf.Line(left, y, pageW-right, y)
	w.pdf.Ln(3)
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
