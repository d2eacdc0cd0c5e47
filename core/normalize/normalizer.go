// Package normalize implements the Normalizer interface.
// It converts a rendered recipe tree back into Markdown so the rendered
// view can be saved as a plain note.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core/markup"
)

// MarkdownNormalizer converts markup to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts the children of doc into Markdown.
func (n *MarkdownNormalizer) Normalize(doc *html.Node) (string, error) {
	inner, err := markup.InnerHTML(doc)
	if err != nil {
		return "", err
	}
	markdown, err := htmltomarkdown.ConvertString(inner)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown) + "\n", nil
}
