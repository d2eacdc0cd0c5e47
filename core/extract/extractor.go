// Package extract implements the Extractor interface.
// It finds fenced code blocks tagged with the recipe language inside a
// markdown note, the same blocks a note viewer would hand to a code-block
// processor.
package extract

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// DefaultLanguage is the fence info string recipes are written under.
const DefaultLanguage = "cooklang"

// FenceExtractor extracts fenced blocks for one language.
type FenceExtractor struct {
	Language string
	md       goldmark.Markdown
}

// New creates a FenceExtractor. An empty language means DefaultLanguage.
func New(language string) *FenceExtractor {
	if language == "" {
		language = DefaultLanguage
	}
	return &FenceExtractor{
		Language: language,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Extract returns the matching fenced blocks in document order. Notes
// without any return an empty slice and no error.
func (e *FenceExtractor) Extract(note string) ([]core.CodeBlock, error) {
	src := []byte(note)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var blocks []core.CodeBlock
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if !strings.EqualFold(string(fence.Language(src)), e.Language) {
			return ast.WalkSkipChildren, nil
		}

		var body bytes.Buffer
		lines := fence.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}

		blocks = append(blocks, core.CodeBlock{
			Language: e.Language,
			Source:   body.String(),
			Line:     fenceLine(src, lines),
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// fenceLine returns the 1-based line of the opening fence, which sits
// just above the first content line, or 0 for an empty block.
func fenceLine(src []byte, lines *text.Segments) int {
	if lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	return bytes.Count(src[:start], []byte("\n"))
}
