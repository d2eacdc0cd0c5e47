// Package render — JSON renderer.
// Builds structured JSON from the rendered recipe tree: one entry per
// recipe, each with its sections, list items and images.
package render

import (
	"encoding/json"
	"fmt"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the rendered tree and metadata into JSON.
func (r *JSONRenderer) Render(doc *html.Node, meta core.RecipeMeta) ([]byte, error) {
	page := core.DocumentJSON{
		Metadata: meta,
		Recipes:  Sections(doc),
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
