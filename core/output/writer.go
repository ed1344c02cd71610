// Package output handles file naming and writing for docsummary outputs.
// Filenames are derived from the entry name (e.g., getContract.md); repeated
// names, such as overloaded signatures, get a numeric suffix.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/docsummary/core"
)

// Writer writes rendered entries to disk.
type Writer struct {
	OutputDir string
	used      map[string]int
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir, used: make(map[string]int)}, nil
}

// Write writes one rendered entry and returns the file path.
func (w *Writer) Write(entry core.Entry, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, w.filename(entry.Name)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// filename returns a unique, filesystem-safe base name for name.
// used records every name issued so far, suffixed ones included, so a
// generated "foo_2" and an entry literally named "foo_2" never share a file.
func (w *Writer) filename(name string) string {
	base := sanitize(name)
	if base == "" {
		base = "summary"
	}
	candidate := base
	for n := 2; w.used[candidate] > 0; n++ {
		candidate = fmt.Sprintf("%s_%d", base, n)
	}
	w.used[candidate]++
	return candidate
}

// WriteStream writes one rendered entry to out, ending it with a newline.
func WriteStream(out io.Writer, data []byte) error {
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// sanitize replaces characters outside [A-Za-z0-9_-] with underscores and
// trims leading/trailing underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
