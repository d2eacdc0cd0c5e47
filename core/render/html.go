// Package render — HTML renderer.
// Wraps the rendered recipe tree in a minimal standalone page.
package render

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// HTMLRenderer writes the markup tree as a standalone HTML document.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render serializes doc inside an HTML page titled after the source.
func (r *HTMLRenderer) Render(doc *html.Node, meta core.RecipeMeta) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(meta.Title))
	buf.WriteString("</head>\n<body>\n")
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	buf.WriteString("\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
