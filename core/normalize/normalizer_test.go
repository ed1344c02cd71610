package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmpty(t *testing.T) {
	md, err := New().Normalize("  \n")
	require.NoError(t, err)
	assert.Equal(t, "", md)
}

func TestNormalizeSummaryFragment(t *testing.T) {
	md, err := New().Normalize(`<h2 id=""><span> Usage</span></h2>` +
		`<p><span> Call</span><code>connect()</code><span> first.</span></p>` +
		`<ul><li><span> one</span></li></ul>` +
		`<p><a href="https://example.com"><span> docs</span></a></p>`)
	require.NoError(t, err)

	assert.Contains(t, md, "## Usage")
	assert.Contains(t, md, "`connect()`")
	assert.Contains(t, md, "- one")
	assert.Contains(t, md, "(https://example.com)")
}

func TestNormalizeCodeBlock(t *testing.T) {
	md, err := New().Normalize(`<pre><code class="language-ts">const a = 1;</code></pre>`)
	require.NoError(t, err)
	assert.Contains(t, md, "```ts")
	assert.Contains(t, md, "const a = 1;")
}

func TestNormalizeUnresolvedReferenceKeepsText(t *testing.T) {
	md, err := New().Normalize(`<p><span> See</span><a href=""><span> Chain</span></a></p>`)
	require.NoError(t, err)
	assert.Contains(t, md, "See")
	assert.Contains(t, md, "Chain")
	assert.False(t, strings.HasPrefix(md, " "))
}
