// Package render — Markdown and terminal renderers.
// Both go through the HTML fragment: it is normalized to Markdown, and the
// terminal renderer styles that Markdown with glamour.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/gaurav-prasanna/docsummary/core"
)

// MarkdownRenderer renders entries as Markdown.
type MarkdownRenderer struct {
	summary    *SummaryRenderer
	normalizer core.Normalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(summary *SummaryRenderer, normalizer core.Normalizer) *MarkdownRenderer {
	return &MarkdownRenderer{summary: summary, normalizer: normalizer}
}

// Render converts the entry's HTML fragment to Markdown.
func (r *MarkdownRenderer) Render(entry core.Entry) ([]byte, error) {
	md, err := r.markdown(entry)
	if err != nil {
		return nil, err
	}
	return []byte(md + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func (r *MarkdownRenderer) markdown(entry core.Entry) (string, error) {
	fragment, err := r.summary.RenderString(entry.Summary)
	if err != nil {
		return "", err
	}
	md, err := r.normalizer.Normalize(fragment)
	if err != nil {
		return "", fmt.Errorf("normalizing %s: %w", entry.Name, err)
	}
	return md, nil
}

// TerminalRenderer renders entries as styled terminal text.
type TerminalRenderer struct {
	markdown *MarkdownRenderer
	style    string
	wrap     int
}

// NewTerminalRenderer creates a TerminalRenderer using a glamour standard
// style ("dark", "light", "dracula", "notty", ...) and word wrap width.
func NewTerminalRenderer(markdown *MarkdownRenderer, style string, wordWrap int) *TerminalRenderer {
	if style == "" {
		style = "dracula"
	}
	if wordWrap <= 0 {
		wordWrap = 80
	}
	return &TerminalRenderer{markdown: markdown, style: style, wrap: wordWrap}
}

// Render styles the entry's Markdown under a "# name" title.
func (r *TerminalRenderer) Render(entry core.Entry) ([]byte, error) {
	md, err := r.markdown.markdown(entry)
	if err != nil {
		return nil, err
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(r.wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := tr.Render(fmt.Sprintf("# %s\n\n%s\n", entry.Name, md))
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return []byte(out), nil
}

// Extension returns the file extension for terminal output.
func (r *TerminalRenderer) Extension() string {
	return ".txt"
}
