// Package engine implements the MarkdownEngine interface on goldmark.
// Markdown is converted to HTML, then parsed back into nodes that are
// appended to the caller's container.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// Goldmark renders markdown with GitHub Flavored Markdown extensions.
type Goldmark struct {
	md  goldmark.Markdown
	log *slog.Logger
}

// New creates a Goldmark engine.
func New(log *slog.Logger) *Goldmark {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(&linkResolver{}, 500)),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // recipe notes may embed raw <img> tags
		),
	)
	return &Goldmark{md: md, log: log}
}

// RenderMarkdown converts markdown and appends the resulting nodes to
// target. The owner is checked on both sides of the conversion; a detached
// owner yields core.ErrDetached and leaves target unchanged.
func (g *Goldmark) RenderMarkdown(ctx context.Context, markdown string, target *html.Node, sourcePath string, owner core.Owner) error {
	if err := checkOwner(ctx, owner); err != nil {
		return err
	}

	pc := parser.NewContext()
	pc.Set(sourcePathKey, sourcePath)

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf, parser.WithContext(pc)); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	nodes, err := html.ParseFragment(&buf, &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return fmt.Errorf("parsing rendered markup: %w", err)
	}

	if err := checkOwner(ctx, owner); err != nil {
		g.log.Debug("discarding render for detached owner", "source", sourcePath)
		return err
	}

	for _, n := range nodes {
		target.AppendChild(n)
	}
	return nil
}

func checkOwner(ctx context.Context, owner core.Owner) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if owner != nil && !owner.Active() {
		return core.ErrDetached
	}
	return nil
}
