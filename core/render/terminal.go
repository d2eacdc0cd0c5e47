// Package render — terminal renderer.
// Styles the Markdown form of the recipe for a terminal using glamour.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// TerminalRenderer renders ANSI-styled output for a terminal.
type TerminalRenderer struct {
	normalizer core.Normalizer
	Style      string
	Width      int
}

// NewTerminalRenderer creates a TerminalRenderer. Empty style and
// non-positive width fall back to "dark" and 80 columns.
func NewTerminalRenderer(normalizer core.Normalizer, style string, width int) *TerminalRenderer {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	return &TerminalRenderer{normalizer: normalizer, Style: style, Width: width}
}

// Render converts doc to Markdown and styles it.
func (r *TerminalRenderer) Render(doc *html.Node, meta core.RecipeMeta) ([]byte, error) {
	markdown, err := r.normalizer.Normalize(doc)
	if err != nil {
		return nil, err
	}
	if meta.Title != "" {
		markdown = "# " + meta.Title + "\n\n" + markdown
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.Style),
		glamour.WithWordWrap(r.Width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return nil, fmt.Errorf("styling markdown: %w", err)
	}
	return []byte(out), nil
}

// Extension returns the file extension for terminal output.
func (r *TerminalRenderer) Extension() string {
	return ".ansi"
}
