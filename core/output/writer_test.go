package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/docsummary/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterCreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write(core.Entry{Name: "getContract"}, []byte("<p></p>"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "getContract.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", string(data))
}

func TestWriterDeduplicatesNames(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	var names []string
	for _, name := range []string{"useRead", "useRead", "use.Read", ""} {
		path, err := w.Write(core.Entry{Name: name}, nil, ".md")
		require.NoError(t, err)
		names = append(names, filepath.Base(path))
	}
	assert.Equal(t, []string{"useRead.md", "useRead_2.md", "use_Read.md", "summary.md"}, names)
}

func TestWriterSuffixDoesNotCollideWithRealName(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range []struct{ name, body string }{
		{"foo", "a"}, {"foo", "b"}, {"foo_2", "c"}, {"foo", "d"},
	} {
		path, err := w.Write(core.Entry{Name: e.name}, []byte(e.body), ".md")
		require.NoError(t, err)
		names = append(names, filepath.Base(path))
	}
	assert.Equal(t, []string{"foo.md", "foo_2.md", "foo_2_2.md", "foo_3.md"}, names)

	for name, want := range map[string]string{
		"foo.md": "a", "foo_2.md": "b", "foo_2_2.md": "c", "foo_3.md": "d",
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(data), name)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "functions_0_summary", sanitize("functions.0.summary"))
	assert.Equal(t, "a-b", sanitize("/a-b/"))
}

func TestWriteStreamAddsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, []byte("one")))
	require.NoError(t, WriteStream(&buf, []byte("two\n")))
	assert.Equal(t, "one\ntwo\n", buf.String())
}
