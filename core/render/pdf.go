// Package render — PDF renderer.
// Lays out each recipe's sections with gofpdf: headings at their level's
// size, bullet or numbered list items, and block items as paragraphs.
// Images are listed by alt text and source rather than embedded.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders the recipe document as a PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts doc into PDF bytes.
func (r *PDFRenderer) Render(doc *html.Node, meta core.RecipeMeta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Source: "+meta.Source), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	for i, recipe := range Sections(doc) {
		if i > 0 {
			pdf.AddPage()
		}
		for _, s := range recipe.Sections {
			renderHeading(pdf, tr(s.Heading), s.Level)

			pdf.SetFont("Helvetica", "", 10)
			for n, item := range s.Items {
				switch s.List {
				case "ul":
					item = "• " + item
				case "ol":
					item = fmt.Sprintf("%d. %s", n+1, item)
				}
				pdf.MultiCell(0, 5, tr(item), "", "L", false)
			}

			for _, img := range s.Images {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, tr(fmt.Sprintf("[image: %s] %s", img.Alt, img.Src)), "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}
