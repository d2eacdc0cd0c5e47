package engine

import (
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/cookpipe/core"
	"github.com/gaurav-prasanna/cookpipe/core/markup"
	"github.com/gaurav-prasanna/cookpipe/core/testutil"
)

func TestRenderMarkdownParagraph(t *testing.T) {
	g := New(testutil.NewTestLogger(t))
	target := markup.Element("span")

	require.NoError(t, g.RenderMarkdown(context.Background(), "**2cups flour**", target, "", &testutil.Owner{}))

	children := testutil.ElementChildren(target)
	require.Len(t, children, 1)
	assert.Equal(t, "p", children[0].Data)
	assert.Equal(t, "2cups flour", goquery.NewDocumentFromNode(target).Find("p > strong").Text())
}

func TestRenderMarkdownAppends(t *testing.T) {
	g := New(nil)
	target := markup.NewContainer()
	ctx := context.Background()

	require.NoError(t, g.RenderMarkdown(ctx, "## Steps", target, "", nil))
	require.NoError(t, g.RenderMarkdown(ctx, "- one\n- two", target, "", nil))

	children := testutil.ElementChildren(target)
	require.Len(t, children, 2)
	assert.Equal(t, "h2", children[0].Data)
	assert.Equal(t, "ul", children[1].Data)
}

func TestRenderMarkdownGFM(t *testing.T) {
	g := New(nil)
	target := markup.NewContainer()

	require.NoError(t, g.RenderMarkdown(context.Background(), "~~burnt~~", target, "", nil))
	assert.Equal(t, 1, goquery.NewDocumentFromNode(target).Find("del").Length())
}

func TestRenderMarkdownResolvesLinks(t *testing.T) {
	g := New(nil)
	target := markup.NewContainer()

	md := "![dish](img/dish.jpg) [site](https://example.com) [top](#steps)"
	require.NoError(t, g.RenderMarkdown(context.Background(), md, target, "vault/recipes/soup.cook", nil))

	doc := goquery.NewDocumentFromNode(target)
	assert.Equal(t, "vault/recipes/img/dish.jpg", doc.Find("img").AttrOr("src", ""))
	links := doc.Find("a")
	assert.Equal(t, "https://example.com", links.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "#steps", links.Eq(1).AttrOr("href", ""))
}

func TestRenderMarkdownDetached(t *testing.T) {
	g := New(nil)
	target := markup.NewContainer()

	err := g.RenderMarkdown(context.Background(), "**salt**", target, "", &testutil.Owner{Detached: true})
	assert.ErrorIs(t, err, core.ErrDetached)
	assert.Nil(t, target.FirstChild, "target must be left untouched")
}

func TestRenderMarkdownCanceled(t *testing.T) {
	g := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.RenderMarkdown(ctx, "**salt**", markup.NewContainer(), "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name   string
		source string
		dest   string
		want   string
	}{
		{"relative", "recipes/soup.cook", "soup.jpg", "recipes/soup.jpg"},
		{"parent dir", "recipes/mains/soup.cook", "../img/soup.jpg", "recipes/img/soup.jpg"},
		{"current dir source", "soup.cook", "soup.jpg", "soup.jpg"},
		{"absolute url", "recipes/soup.cook", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"rooted", "recipes/soup.cook", "/static/a.jpg", "/static/a.jpg"},
		{"fragment", "recipes/soup.cook", "#image", "#image"},
		{"empty", "recipes/soup.cook", "", ""},
		{"remote source", "https://example.com/r/soup.cook", "soup.jpg", "https://example.com/r/soup.jpg"},
		{"query kept", "recipes/soup.cook", "soup.jpg?w=200", "recipes/soup.jpg?w=200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLink(tt.source, tt.dest))
		})
	}
}
