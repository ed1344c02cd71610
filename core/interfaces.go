// Package core defines the data model and pipeline interfaces for docsummary.
// Each stage of the pipeline is a clean, testable interface:
// fetch → extract → render → write.
package core

import "context"

// FetchResult holds the raw documentation JSON loaded from a source.
type FetchResult struct {
	Source string
	Data   []byte
}

// Entry is one named summary found in a documentation document.
type Entry struct {
	Name    string  `json:"name"`
	Path    string  `json:"path"` // gjson path of the summary array in the source
	Summary Summary `json:"-"`
}

// HeadingInfo represents a single heading rendered from a summary.
type HeadingInfo struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// LinkInfo represents a hyperlink rendered from a summary.
type LinkInfo struct {
	Text     string `json:"text"`
	Href     string `json:"href"`
	Internal bool   `json:"internal"`
}

// SummaryStructure holds structural counts taken from a rendered summary.
type SummaryStructure struct {
	Headings     []HeadingInfo `json:"headings"`
	Links        []LinkInfo    `json:"links"`
	CodeBlocks   int           `json:"code_blocks"`
	InlineCode   int           `json:"inline_code"`
	Lists        int           `json:"lists"`
	Rules        int           `json:"rules"`
	UnknownKinds []string      `json:"unknown_kinds"`
}

// SummaryJSON is the complete JSON output for a single entry.
type SummaryJSON struct {
	Name      string           `json:"name"`
	Path      string           `json:"path"`
	HTML      string           `json:"html"`
	Markdown  string           `json:"markdown"`
	Text      string           `json:"text"`
	Structure SummaryStructure `json:"structure"`
}

// Fetcher loads raw documentation JSON from a file, stdin or URL.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor decodes the summaries contained in documentation JSON.
type Extractor interface {
	Extract(result *FetchResult) ([]Entry, error)
}

// Normalizer converts a rendered HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a summary entry into a final output format.
type Renderer interface {
	Render(entry Entry) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
