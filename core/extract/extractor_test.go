package extract

import (
	"testing"

	"github.com/gaurav-prasanna/docsummary/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDecodeSummaryAllKinds(t *testing.T) {
	data := []byte(`[
		{"type":"code","lang":"ts","value":"const a = 1;"},
		{"type":"html","value":"<br>"},
		{"type":"inlineCode","value":"x()"},
		{"type":"link","url":"https://example.com","children":[{"type":"text","value":"site"}]},
		{"type":"paragraph","children":[{"type":"text","value":"p"}]},
		{"type":"list","children":[{"type":"listItem","children":[{"type":"text","value":"i"}]}]},
		{"type":"heading","depth":3,"children":[{"type":"text","value":"h"}]},
		{"type":"strong","children":[]},
		{"type":"emphasis","children":[]},
		{"type":"thematicBreak","children":[{"type":"text","value":"ignored"}]},
		{"type":"footnote"},
		{"value":"no type"}
	]`)

	s, err := decodeSummaryJSON(data)
	require.NoError(t, err)
	require.Len(t, s, 12)

	assert.Equal(t, core.Code{Lang: "ts", Value: "const a = 1;"}, s[0])
	assert.Equal(t, core.HTML{Value: "<br>"}, s[1])
	assert.Equal(t, core.InlineCode{Value: "x()"}, s[2])
	assert.Equal(t, core.Link{URL: "https://example.com", Children: core.Summary{core.Text{Value: "site"}}}, s[3])
	assert.Equal(t, core.Paragraph{Children: core.Summary{core.Text{Value: "p"}}}, s[4])
	assert.Equal(t, core.List{Children: core.Summary{
		core.ListItem{Children: core.Summary{core.Text{Value: "i"}}},
	}}, s[5])
	assert.Equal(t, core.Heading{Depth: 3, Children: core.Summary{core.Text{Value: "h"}}}, s[6])
	assert.Equal(t, core.Strong{Children: core.Summary{}}, s[7])
	assert.Equal(t, core.Emphasis{Children: core.Summary{}}, s[8])
	assert.Equal(t, core.ThematicBreak{}, s[9])
	assert.Equal(t, core.Unknown{Type: "footnote"}, s[10])
	assert.Equal(t, core.Unknown{Type: ""}, s[11])
}

func TestDecodeSummaryErrors(t *testing.T) {
	_, err := decodeSummaryJSON([]byte(`{"type":"text"}`))
	require.Error(t, err)

	_, err = decodeSummaryJSON([]byte(`[{`))
	require.Error(t, err)
}

func TestExtractRootArray(t *testing.T) {
	entries, err := New().Extract(&core.FetchResult{
		Source: "docs/useContract.json",
		Data:   []byte(`[{"type":"text","value":"hello"}]`),
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "useContract", entries[0].Name)
	assert.Equal(t, core.Summary{core.Text{Value: "hello"}}, entries[0].Summary)
}

func TestExtractNestedDocument(t *testing.T) {
	data := []byte(`{
		"name": "sdk",
		"functions": [
			{
				"name": "getContract",
				"signatures": [
					{"summary": [{"type":"text","value":"first"}]},
					{"summary": [{"type":"text","value":"second"}]}
				]
			},
			{"summary": [{"type":"paragraph","children":[]}]}
		],
		"meta.data": {"summary": []}
	}`)

	entries, err := New().Extract(&core.FetchResult{Source: "sdk.json", Data: data})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "getContract", entries[0].Name)
	assert.Equal(t, "functions.0.signatures.0.summary", entries[0].Path)
	assert.Equal(t, "getContract", entries[1].Name)
	assert.Equal(t, "sdk", entries[2].Name)
	assert.Equal(t, `meta\.data.summary`, entries[3].Path)

	// Paths round-trip through gjson.
	for _, e := range entries {
		assert.True(t, gjson.GetBytes(data, e.Path).IsArray(), "path %s", e.Path)
	}
}

func TestExtractNoSummaries(t *testing.T) {
	_, err := New().Extract(&core.FetchResult{Source: "x.json", Data: []byte(`{"name":"x"}`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summaries found")
}

func TestExtractInvalidJSON(t *testing.T) {
	_, err := New().Extract(&core.FetchResult{Source: "x.json", Data: []byte(`{`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}
