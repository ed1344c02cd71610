// Package normalize implements the Normalizer interface.
// It converts the HTML fragments produced by the summary renderer into
// Markdown for the Markdown, terminal and JSON outputs. Those fragments have
// a fixed shape: text in <span> with a leading space, code blocks as
// <pre><code class="language-x">, headings with an empty id, and internal
// references as <a href="">. The space-prefixed spans collapse into ordinary
// word spacing, and links without a target keep only their text.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownNormalizer converts HTML fragments to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts a rendered summary fragment into Markdown.
// A fragment with no content (e.g. a summary of only unknown kinds)
// normalizes to the empty string.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
