// Package markup provides small helpers over golang.org/x/net/html nodes.
// Containers handed between pipeline stages are plain *html.Node elements;
// these helpers mirror the handful of DOM calls the renderer needs.
package markup

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ContainerClass marks the root container of one rendered recipe.
const ContainerClass = "cooklang-recipe"

// Element creates a detached element node.
func Element(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewContainer creates an empty recipe container.
func NewContainer() *html.Node {
	n := Element("div")
	n.Attr = []html.Attribute{{Key: "class", Val: ContainerClass}}
	return n
}

// NewDocument creates an empty document root that holds recipe containers.
func NewDocument() *html.Node {
	n := Element("div")
	n.Attr = []html.Attribute{{Key: "class", Val: "cookpipe"}}
	return n
}

// CreateEl appends a new element with the given tag to parent.
func CreateEl(parent *html.Node, tag string) *html.Node {
	n := Element(tag)
	parent.AppendChild(n)
	return n
}

// CreateSpan appends a new <span> to parent.
func CreateSpan(parent *html.Node) *html.Node {
	return CreateEl(parent, "span")
}

// Empty removes every child of n.
func Empty(n *html.Node) {
	goquery.NewDocumentFromNode(n).Empty()
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("rendering markup: %w", err)
		}
	}
	return buf.String(), nil
}
