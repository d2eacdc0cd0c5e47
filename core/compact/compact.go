// Package compact renders markdown fragments inline.
// The markdown engine wraps a lone run of inline content in a <p>; inside a
// list item that paragraph breaks the line, so the compactor unwraps it.
package compact

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
	"github.com/gaurav-prasanna/cookpipe/core/markup"
)

// Compactor renders a fragment through the engine and flattens it.
type Compactor struct {
	engine core.MarkdownEngine
	log    *slog.Logger
}

// New creates a Compactor backed by engine.
func New(engine core.MarkdownEngine, log *slog.Logger) *Compactor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Compactor{engine: engine, log: log}
}

// Render appends a fresh <span> to container, renders markdown into it and
// unwraps a single wrapping paragraph if there is one.
func (c *Compactor) Render(ctx context.Context, markdown string, container *html.Node, sourcePath string, owner core.Owner) error {
	sub := markup.CreateSpan(container)
	if err := c.engine.RenderMarkdown(ctx, markdown, sub, sourcePath, owner); err != nil {
		return err
	}
	if Flatten(sub) {
		c.log.Debug("compacted fragment", "markdown", markdown)
	}
	return nil
}

// Flatten unwraps root's only element child when it is a paragraph: the
// paragraph's children take its place, in order, and the paragraph is
// removed. Any other shape is left untouched. Reports whether it unwrapped.
func Flatten(root *html.Node) bool {
	children := goquery.NewDocumentFromNode(root).Children()
	if children.Length() != 1 || !children.Is("p") {
		return false
	}
	p := children.Get(0)
	for p.FirstChild != nil {
		child := p.FirstChild
		p.RemoveChild(child)
		root.InsertBefore(child, p)
	}
	root.RemoveChild(p)
	return true
}
