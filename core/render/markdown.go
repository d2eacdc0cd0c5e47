// Package render — Markdown renderer.
// Turns the rendered tree back into Markdown through the normalizer.
package render

import (
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// MarkdownRenderer writes the rendered recipe as Markdown.
type MarkdownRenderer struct {
	normalizer core.Normalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(normalizer core.Normalizer) *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: normalizer}
}

// Render returns the Markdown for doc.
func (r *MarkdownRenderer) Render(doc *html.Node, meta core.RecipeMeta) ([]byte, error) {
	markdown, err := r.normalizer.Normalize(doc)
	if err != nil {
		return nil, err
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
