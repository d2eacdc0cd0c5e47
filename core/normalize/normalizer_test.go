package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/cookpipe/core/markup"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	root := markup.NewContainer()
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
	require.NoError(t, err)
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root
}

func TestNormalizeRecipe(t *testing.T) {
	doc := parse(t, `<h2>Ingredients</h2>`+
		`<ul><li><span><span><strong>2cups flour</strong></span></span></li></ul>`+
		`<h2>Steps</h2>`+
		`<ol><li><span><span>Mix <strong>flour</strong> in a <em>bowl</em></span></span></li></ol>`)

	md, err := New().Normalize(doc)
	require.NoError(t, err)

	assert.Contains(t, md, "## Ingredients")
	assert.Contains(t, md, "**2cups flour**")
	assert.Contains(t, md, "## Steps")
	assert.Contains(t, md, "1. Mix **flour** in a *bowl*")
	assert.True(t, strings.HasSuffix(md, "\n"))
	assert.False(t, strings.HasSuffix(md, "\n\n"))
}

func TestNormalizeEmpty(t *testing.T) {
	md, err := New().Normalize(markup.NewContainer())
	require.NoError(t, err)
	assert.Equal(t, "\n", md)
}
