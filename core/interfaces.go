// Package core defines the pipeline interfaces for cookpipe.
// Each stage of the pipeline is a clean, testable interface:
// fetch → (extract) → parse → section render → output render → write.
package core

import (
	"context"

	"golang.org/x/net/html"
)

// FetchResult holds the raw recipe source and where it came from.
type FetchResult struct {
	Source string
	Body   string
}

// CodeBlock is a fenced recipe block found inside a markdown note.
type CodeBlock struct {
	Language string `json:"language"`
	Source   string `json:"source"`
	Line     int    `json:"line"` // 1-based line of the opening fence
}

// RecipeMeta describes one rendered document for output renderers.
type RecipeMeta struct {
	Source     string `json:"source"`
	Title      string `json:"title"`
	Recipes    int    `json:"recipes"`
	RenderedAt string `json:"rendered_at"` // ISO8601
}

// SectionJSON is one rendered section in JSON output.
type SectionJSON struct {
	Heading string   `json:"heading"`
	Level   int      `json:"level"`
	List    string   `json:"list,omitempty"` // "ul", "ol" or empty for block content
	Items   []string `json:"items"`
	Images  []Image  `json:"images,omitempty"`
}

// Image is an image reference found in rendered output.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// RecipeJSON is the JSON view of a single rendered recipe container.
type RecipeJSON struct {
	Sections []SectionJSON `json:"sections"`
}

// DocumentJSON is the complete JSON output for one source.
type DocumentJSON struct {
	Metadata RecipeMeta   `json:"metadata"`
	Recipes  []RecipeJSON `json:"recipes"`
}

// Fetcher retrieves raw recipe source from a path or URL.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor pulls fenced recipe blocks out of a markdown note.
type Extractor interface {
	Extract(note string) ([]CodeBlock, error)
}

// Parser turns recipe source text into a Recipe. It is the upstream
// boundary of the core; the core never parses on its own.
type Parser interface {
	Parse(source string) (*Recipe, error)
}

// Owner is the lifecycle handle a render is attached to. Once Active
// reports false, pending render work must stop.
type Owner interface {
	Active() bool
}

// MarkdownEngine renders markdown into markup appended to target.
// sourcePath is used only to resolve relative links.
type MarkdownEngine interface {
	RenderMarkdown(ctx context.Context, markdown string, target *html.Node, sourcePath string, owner Owner) error
}

// Normalizer converts a rendered markup tree back into Markdown.
type Normalizer interface {
	Normalize(doc *html.Node) (string, error)
}

// Renderer converts the rendered markup tree into a final output format.
type Renderer interface {
	Render(doc *html.Node, meta RecipeMeta) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
