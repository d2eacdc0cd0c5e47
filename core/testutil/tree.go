package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ElementChildren returns the direct element children of n, ignoring
// text and comment nodes.
func ElementChildren(n *html.Node) []*html.Node {
	return goquery.NewDocumentFromNode(n).Children().Nodes
}

// Children returns every direct child of n, in order.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// OuterHTML serializes n itself.
func OuterHTML(t testing.TB, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		t.Fatalf("rendering markup: %v", err)
	}
	return buf.String()
}

// Outline describes the shape of a tree as tag names, one line per node,
// indented by depth. Text nodes show as #text with their trimmed content.
func Outline(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node, int)
	walk = func(node *html.Node, depth int) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			b.WriteString(strings.Repeat("  ", depth))
			switch c.Type {
			case html.ElementNode:
				b.WriteString(c.Data)
			case html.TextNode:
				b.WriteString("#text " + strings.TrimSpace(c.Data))
			default:
				b.WriteString("#node")
			}
			b.WriteByte('\n')
			walk(c, depth+1)
		}
	}
	walk(n, 0)
	return b.String()
}
