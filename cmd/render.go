// Package cmd — render command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → render → write.
//
// It handles flag validation, renderer selection, and --stdout / --only.
package cmd

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/docsummary/config"
	"github.com/gaurav-prasanna/docsummary/core"
	"github.com/gaurav-prasanna/docsummary/core/extract"
	"github.com/gaurav-prasanna/docsummary/core/fetch"
	"github.com/gaurav-prasanna/docsummary/core/normalize"
	"github.com/gaurav-prasanna/docsummary/core/output"
	"github.com/gaurav-prasanna/docsummary/core/render"
	"github.com/spf13/cobra"
)

// renderFlags holds the flags of one render invocation.
type renderFlags struct {
	html     bool
	markdown bool
	terminal bool
	json     bool
	pdf      bool
	stdout   bool
	only     []string
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}

	renderCmd := &cobra.Command{
		Use:   "render <file|url|->",
		Short: "Render the summaries in a documentation JSON file",
		Long: `Render loads documentation JSON, extracts every summary in it and
renders each one in the selected output format (HTML, Markdown, terminal,
JSON or PDF). The source may be a file path, an http(s) URL, or - for stdin.

Examples:
  docsummary render docs.json --html --output_dir ./out
  docsummary render docs.json --markdown --stdout --only getContract
  docsummary render https://example.com/docs.json --terminal --stdout
  cat summary.json | docsummary render - --json --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, f, args[0])
		},
	}

	flags := renderCmd.Flags()

	// Output format flags (mutually exclusive; default from config).
	flags.BoolVar(&f.html, "html", false, "Output HTML fragments")
	flags.BoolVar(&f.markdown, "markdown", false, "Output Markdown")
	flags.BoolVar(&f.terminal, "terminal", false, "Output styled terminal text")
	flags.BoolVar(&f.json, "json", false, "Output structured JSON")
	flags.BoolVar(&f.pdf, "pdf", false, "Output PDF")

	flags.BoolVar(&f.stdout, "stdout", false, "Write to stdout instead of files")
	flags.StringSliceVar(&f.only, "only", nil, "Render only entries with these names")

	flags.String("output_dir", "", "Output directory (default: current directory)")
	flags.String("link_base", "", "Base URL for internal references (default: leave unresolved)")
	flags.String("style", "", "glamour style for --terminal")
	flags.Int("word_wrap", 0, "Word wrap width for --terminal")
	for _, key := range []string{"output_dir", "link_base", "style", "word_wrap"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	return renderCmd
}

func runRender(cmd *cobra.Command, a *app, f *renderFlags, source string) error {
	format, err := f.format(a.cfg.Format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := fetch.New().Fetch(ctx, source)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	entries, err := extract.New().Extract(result)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	entries = filterEntries(entries, f.only)
	if len(entries) == 0 {
		return fmt.Errorf("no entries named %v in %s", f.only, result.Source)
	}
	a.logger.Debug("extracted summaries", "source", result.Source, "entries", len(entries))

	renderer := selectRenderer(format, a.cfg, render.NewSummaryRenderer(
		render.WithLogger(a.logger),
		render.WithLinkResolver(render.BaseLinkResolver(a.cfg.LinkBase)),
	))

	var writer *output.Writer
	if !f.stdout {
		writer, err = output.New(a.cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}

	var errCount int
	for _, entry := range entries {
		data, err := renderer.Render(entry)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", entry.Name, err)
			errCount++
			continue
		}

		if f.stdout {
			if err := output.WriteStream(cmd.OutOrStdout(), data); err != nil {
				return err
			}
			continue
		}

		path, err := writer.Write(entry, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d entries failed", errCount, len(entries))
	}
	return nil
}

// format returns the single format chosen by flags, or the configured
// default when no format flag is set.
func (f *renderFlags) format(fallback string) (string, error) {
	var chosen []string
	for name, set := range map[string]bool{
		"html":     f.html,
		"markdown": f.markdown,
		"terminal": f.terminal,
		"json":     f.json,
		"pdf":      f.pdf,
	} {
		if set {
			chosen = append(chosen, name)
		}
	}

	switch len(chosen) {
	case 0:
		return fallback, nil
	case 1:
		return chosen[0], nil
	default:
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(chosen))
	}
}

// filterEntries keeps the entries whose name is in names; no names keeps all.
func filterEntries(entries []core.Entry, names []string) []core.Entry {
	if len(names) == 0 {
		return entries
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var kept []core.Entry
	for _, e := range entries {
		if want[e.Name] {
			kept = append(kept, e)
		}
	}
	return kept
}

// selectRenderer creates the Renderer for format.
func selectRenderer(format string, cfg config.Config, summary *render.SummaryRenderer) core.Renderer {
	normalizer := normalize.New()
	markdown := render.NewMarkdownRenderer(summary, normalizer)
	switch format {
	case "markdown":
		return markdown
	case "terminal":
		return render.NewTerminalRenderer(markdown, cfg.Style, cfg.WordWrap)
	case "json":
		return render.NewJSONRenderer(summary, normalizer)
	case "pdf":
		return render.NewPDFRenderer(summary)
	default:
		return render.NewHTMLRenderer(summary)
	}
}
