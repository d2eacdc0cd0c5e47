// Package cmd — render command.
// This is the main command that orchestrates the pipeline:
// fetch → (extract) → parse → section render → output render → write.
//
// It handles flag validation, renderer selection, and single vs --all modes.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/config"
	"github.com/gaurav-prasanna/cookpipe/core"
	"github.com/gaurav-prasanna/cookpipe/core/engine"
	"github.com/gaurav-prasanna/cookpipe/core/extract"
	"github.com/gaurav-prasanna/cookpipe/core/fetch"
	"github.com/gaurav-prasanna/cookpipe/core/lifecycle"
	"github.com/gaurav-prasanna/cookpipe/core/markup"
	"github.com/gaurav-prasanna/cookpipe/core/normalize"
	"github.com/gaurav-prasanna/cookpipe/core/output"
	"github.com/gaurav-prasanna/cookpipe/core/parse"
	"github.com/gaurav-prasanna/cookpipe/core/render"
	"github.com/gaurav-prasanna/cookpipe/core/section"
	"github.com/gaurav-prasanna/cookpipe/crawl"
)

// renderFlags holds the render command's own flags.
type renderFlags struct {
	all      bool
	html     bool
	markdown bool
	json     bool
	pdf      bool
	terminal bool
	stdout   bool
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render <source>",
		Short: "Render a recipe source to the specified output format",
		Long: `Render reads a recipe source, lays it out as Ingredients, Cookware, Steps
and Image sections, and writes the result in the chosen format.

Examples:
  cookpipe render pancakes.cook --html
  cookpipe render dinner.md --markdown --output_dir ./out
  cookpipe render ./recipes --all --json
  cookpipe render https://example.com/soup.cook --terminal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), a, f, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&f.all, "all", false, "Render every recipe source under a directory")

	// Output format flags (mutually exclusive).
	cmd.Flags().BoolVar(&f.html, "html", false, "Output HTML (default)")
	cmd.Flags().BoolVar(&f.markdown, "markdown", false, "Output Markdown")
	cmd.Flags().BoolVar(&f.json, "json", false, "Output structured JSON")
	cmd.Flags().BoolVar(&f.pdf, "pdf", false, "Output PDF")
	cmd.Flags().BoolVar(&f.terminal, "terminal", false, "Print styled output to the terminal")

	cmd.Flags().BoolVar(&f.stdout, "stdout", false, "Write to stdout instead of a file")
	cmd.Flags().String("output_dir", "", "Output directory (default: current directory)")
	cmd.Flags().String("steps-style", string(section.StepsOrdered), "Step layout: ordered, unordered or paragraphs")
	cmd.Flags().Int("headings-level", 2, "Heading level for section headings")

	return cmd
}

// pipeline bundles the stages a source passes through.
type pipeline struct {
	fetcher   core.Fetcher
	extractor core.Extractor
	sections  *section.Renderer
	renderer  core.Renderer
	log       *slog.Logger
}

func newPipeline(s *config.Settings, renderer core.Renderer, log *slog.Logger) *pipeline {
	return &pipeline{
		fetcher:   fetch.New(),
		extractor: extract.New(s.NoteLanguage),
		sections:  section.New(engine.New(log), s.Render, log),
		renderer:  renderer,
		log:       log,
	}
}

func runRender(ctx context.Context, a *app, f *renderFlags, source string, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := f.validate(); err != nil {
		return err
	}

	renderer := f.selectRenderer(a.settings)
	p := newPipeline(a.settings, renderer, a.log)

	toStdout := f.stdout || f.terminal
	if toStdout && f.all {
		return fmt.Errorf("--stdout and --terminal cannot be combined with --all")
	}
	if toStdout {
		data, _, err := p.process(ctx, source)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	writer, err := output.New(a.settings.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	if f.all {
		return p.runAll(ctx, source, writer, stdout)
	}
	return p.runOnly(ctx, source, writer, stdout)
}

// runOnly processes a single source through the pipeline.
func (p *pipeline) runOnly(ctx context.Context, source string, writer *output.Writer, stdout io.Writer) error {
	data, _, err := p.process(ctx, source)
	if err != nil {
		return err
	}

	path, err := writer.WriteOnly(source, data, p.renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✓ Written: %s\n", path)
	return nil
}

// runAll discovers every recipe source under root and processes each.
// Failures are reported and counted; the rest still render.
func (p *pipeline) runAll(ctx context.Context, root string, writer *output.Writer, stdout io.Writer) error {
	sources, err := crawl.DiscoverAll(ctx, root)
	if err != nil {
		return fmt.Errorf("discovering sources: %w", err)
	}
	p.log.Info("discovered sources", "root", root, "count", len(sources))

	var errCount, skipped int
	for i, source := range sources {
		fmt.Fprintf(stdout, "[%d/%d] Rendering %s\n", i+1, len(sources), source)

		data, _, err := p.process(ctx, source)
		if errors.Is(err, core.ErrNoRecipes) {
			skipped++
			p.log.Debug("skipping note without recipes", "source", source)
			continue
		}
		if err != nil {
			p.log.Error("render failed", "source", source, "err", err)
			errCount++
			continue
		}

		path, err := writer.WriteAll(root, source, data, p.renderer.Extension())
		if err != nil {
			p.log.Error("write failed", "source", source, "err", err)
			errCount++
			continue
		}
		fmt.Fprintf(stdout, "  ✓ Written: %s\n", path)
	}

	if skipped > 0 {
		p.log.Info("skipped notes without recipes", "count", skipped)
	}
	if errCount > 0 {
		return fmt.Errorf("%d/%d sources failed", errCount, len(sources))
	}
	return nil
}

// process runs a single source through the full pipeline.
func (p *pipeline) process(ctx context.Context, source string) ([]byte, core.RecipeMeta, error) {
	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, core.RecipeMeta{}, fmt.Errorf("fetch: %w", err)
	}

	// 2-4. Extract, parse and render sections into a fresh document.
	doc, count, err := p.renderDocument(ctx, source, result.Body)
	if err != nil {
		return nil, core.RecipeMeta{}, err
	}

	meta := core.RecipeMeta{
		Source:     source,
		Title:      output.Stem(source),
		Recipes:    count,
		RenderedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// 5. Render to output format
	data, err := p.renderer.Render(doc, meta)
	if err != nil {
		return nil, core.RecipeMeta{}, fmt.Errorf("render: %w", err)
	}
	return data, meta, nil
}

// renderDocument renders every recipe in body into its own container.
// Notes contribute one container per fenced block, in note order.
func (p *pipeline) renderDocument(ctx context.Context, source, body string) (*html.Node, int, error) {
	var (
		parser  core.Parser
		sources []string
	)
	if crawl.IsNote(source) {
		blocks, err := p.extractor.Extract(body)
		if err != nil {
			return nil, 0, fmt.Errorf("extract: %w", err)
		}
		if len(blocks) == 0 {
			return nil, 0, fmt.Errorf("%s: %w", source, core.ErrNoRecipes)
		}
		parser = parse.NewCooklang()
		for _, b := range blocks {
			sources = append(sources, b.Source)
		}
	} else {
		var err error
		if parser, err = parse.ForSource(source); err != nil {
			return nil, 0, err
		}
		sources = []string{body}
	}

	owner := &lifecycle.Component{}
	if err := owner.Load(ctx); err != nil {
		return nil, 0, err
	}
	defer owner.Unload()
	start := time.Now()
	owner.Register(func() {
		p.log.Debug("released recipe views", "source", source, "recipes", len(sources), "elapsed", time.Since(start))
	})

	processor := lifecycle.NewProcessor(parser, p.sections, p.log)
	doc := markup.NewDocument()
	for i, src := range sources {
		container := markup.NewContainer()
		doc.AppendChild(container)
		if _, err := processor.Process(ctx, src, container, owner, source); err != nil {
			return nil, 0, fmt.Errorf("recipe %d of %s: %w", i+1, source, err)
		}
	}
	return doc, len(sources), nil
}

// validate checks that at most one output format is chosen.
func (f *renderFlags) validate() error {
	formatCount := 0
	for _, set := range []bool{f.html, f.markdown, f.json, f.pdf, f.terminal} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the Renderer chosen by flags; HTML when none is set.
func (f *renderFlags) selectRenderer(s *config.Settings) core.Renderer {
	switch {
	case f.markdown:
		return render.NewMarkdownRenderer(normalize.New())
	case f.json:
		return render.NewJSONRenderer()
	case f.pdf:
		return render.NewPDFRenderer()
	case f.terminal:
		return render.NewTerminalRenderer(normalize.New(), s.TerminalStyle, s.TerminalWidth)
	default:
		return render.NewHTMLRenderer()
	}
}
