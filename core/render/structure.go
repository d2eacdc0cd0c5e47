// Package render provides output renderers for the cookpipe pipeline.
// This file reads the rendered markup tree back into sections, which the
// JSON and PDF renderers share.
package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
	"github.com/gaurav-prasanna/cookpipe/core/markup"
)

var (
	headingMatcher   = cascadia.MustCompile("h1, h2, h3, h4, h5, h6")
	listMatcher      = cascadia.MustCompile("ul, ol")
	containerMatcher = cascadia.MustCompile("div." + markup.ContainerClass)
)

// Sections reads every recipe container under doc into its sections.
// A doc that is itself a container yields one recipe.
func Sections(doc *html.Node) []core.RecipeJSON {
	root := goquery.NewDocumentFromNode(doc).Selection
	containers := root.FindMatcher(containerMatcher)
	if root.IsMatcher(containerMatcher) {
		containers = root
	}

	recipes := make([]core.RecipeJSON, 0, containers.Length())
	containers.Each(func(_ int, c *goquery.Selection) {
		recipes = append(recipes, core.RecipeJSON{Sections: containerSections(c)})
	})
	return recipes
}

func containerSections(c *goquery.Selection) []core.SectionJSON {
	var sections []core.SectionJSON
	var current *core.SectionJSON

	c.Children().Each(func(_ int, el *goquery.Selection) {
		switch {
		case el.IsMatcher(headingMatcher):
			if current != nil {
				sections = append(sections, *current)
			}
			current = &core.SectionJSON{
				Heading: collapse(el.Text()),
				Level:   int(goquery.NodeName(el)[1] - '0'),
				Items:   []string{},
			}
		case current == nil:
			// Content before the first heading has no section to live in.
		case el.IsMatcher(listMatcher):
			current.List = goquery.NodeName(el)
			el.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				current.Items = append(current.Items, collapse(li.Text()))
			})
		default:
			el.Find("img").AddBack().FilterFunction(func(_ int, s *goquery.Selection) bool {
				return goquery.NodeName(s) == "img"
			}).Each(func(_ int, img *goquery.Selection) {
				current.Images = append(current.Images, core.Image{
					Src: img.AttrOr("src", ""),
					Alt: img.AttrOr("alt", ""),
				})
			})
			if text := collapse(el.Text()); text != "" {
				current.Items = append(current.Items, text)
			}
		}
	})
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// collapse trims text and folds internal whitespace runs to one space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
