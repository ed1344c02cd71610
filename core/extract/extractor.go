// Package extract implements the Extractor interface.
// It pulls summaries out of documentation JSON by:
//  1. Treating a root-level array as a single summary
//  2. Otherwise walking the document and collecting every "summary" array,
//     named after the nearest enclosing "name" field
package extract

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/docsummary/core"
	"github.com/tidwall/gjson"
)

// summaryKey is the field holding a summary array in documentation JSON.
const summaryKey = "summary"

// JSONExtractor decodes summaries from documentation JSON using gjson.
type JSONExtractor struct{}

// New creates a JSONExtractor.
func New() *JSONExtractor {
	return &JSONExtractor{}
}

// Extract returns every summary in the fetched document, in document order.
func (e *JSONExtractor) Extract(result *core.FetchResult) ([]core.Entry, error) {
	if !gjson.ValidBytes(result.Data) {
		return nil, fmt.Errorf("invalid JSON in %s", result.Source)
	}
	root := gjson.ParseBytes(result.Data)

	if root.IsArray() {
		return []core.Entry{{
			Name:    sourceName(result.Source),
			Path:    "@this",
			Summary: decodeSummary(root),
		}}, nil
	}

	var entries []core.Entry
	collect(root, "", "", &entries)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no summaries found in %s", result.Source)
	}
	return entries, nil
}

// decodeSummaryJSON parses a standalone JSON array of summary nodes.
func decodeSummaryJSON(data []byte) (core.Summary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	r := gjson.ParseBytes(data)
	if !r.IsArray() {
		return nil, fmt.Errorf("summary must be a JSON array, got %s", r.Type)
	}
	return decodeSummary(r), nil
}

// collect walks r depth-first, appending an entry for each summary array.
func collect(r gjson.Result, at, name string, out *[]core.Entry) {
	switch {
	case r.IsObject():
		if n := r.Get("name"); n.Type == gjson.String && n.String() != "" {
			name = n.String()
		}
		r.ForEach(func(key, value gjson.Result) bool {
			p := joinPath(at, escapeKey(key.String()))
			if key.String() == summaryKey && value.IsArray() {
				entryName := name
				if entryName == "" {
					entryName = p
				}
				*out = append(*out, core.Entry{
					Name:    entryName,
					Path:    p,
					Summary: decodeSummary(value),
				})
				return true
			}
			collect(value, p, name, out)
			return true
		})
	case r.IsArray():
		for i, item := range r.Array() {
			collect(item, joinPath(at, strconv.Itoa(i)), name, out)
		}
	}
}

func decodeSummary(r gjson.Result) core.Summary {
	if !r.IsArray() {
		return nil
	}
	items := r.Array()
	s := make(core.Summary, 0, len(items))
	for _, item := range items {
		s = append(s, decodeNode(item))
	}
	return s
}

// decodeNode maps one {type, ...} object onto its node struct.
// Unrecognized or missing types decode to core.Unknown.
func decodeNode(r gjson.Result) core.Node {
	kind := core.Kind(r.Get("type").String())
	switch kind {
	case core.KindCode:
		return core.Code{Lang: r.Get("lang").String(), Value: r.Get("value").String()}
	case core.KindHTML:
		return core.HTML{Value: r.Get("value").String()}
	case core.KindInlineCode:
		return core.InlineCode{Value: r.Get("value").String()}
	case core.KindLink:
		return core.Link{URL: r.Get("url").String(), Children: decodeSummary(r.Get("children"))}
	case core.KindParagraph:
		return core.Paragraph{Children: decodeSummary(r.Get("children"))}
	case core.KindText:
		return core.Text{Value: r.Get("value").String()}
	case core.KindList:
		return core.List{Children: decodeSummary(r.Get("children"))}
	case core.KindListItem:
		return core.ListItem{Children: decodeSummary(r.Get("children"))}
	case core.KindHeading:
		return core.Heading{Depth: int(r.Get("depth").Int()), Children: decodeSummary(r.Get("children"))}
	case core.KindStrong:
		return core.Strong{Children: decodeSummary(r.Get("children"))}
	case core.KindEmphasis:
		return core.Emphasis{Children: decodeSummary(r.Get("children"))}
	case core.KindThematicBreak:
		return core.ThematicBreak{}
	default:
		return core.Unknown{Type: string(kind)}
	}
}

func joinPath(at, key string) string {
	if at == "" {
		return key
	}
	return at + "." + key
}

// escapeKey escapes gjson path metacharacters in an object key.
func escapeKey(key string) string {
	var b strings.Builder
	for _, ch := range key {
		switch ch {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// sourceName derives an entry name from a file path or URL.
func sourceName(source string) string {
	base := path.Base(strings.ReplaceAll(source, "\\", "/"))
	if name := strings.TrimSuffix(base, path.Ext(base)); name != "" && name != "." && name != "/" {
		return name
	}
	return "summary"
}
