// Package section renders a Recipe into its display sections:
// Ingredients, Cookware, Steps and Image, always in that order.
// Each list entry goes through the inline compactor so it sits on one
// line inside its <li>.
package section

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
	"github.com/gaurav-prasanna/cookpipe/core/compact"
	"github.com/gaurav-prasanna/cookpipe/core/markup"
)

// StepStyle selects how steps are laid out.
type StepStyle string

const (
	StepsOrdered    StepStyle = "ordered"
	StepsUnordered  StepStyle = "unordered"
	StepsParagraphs StepStyle = "paragraphs"
)

// Valid reports whether s is a known style.
func (s StepStyle) Valid() bool {
	switch s {
	case StepsOrdered, StepsUnordered, StepsParagraphs:
		return true
	}
	return false
}

// Headings holds the text of each section heading.
type Headings struct {
	Ingredients string
	Cookware    string
	Steps       string
	Image       string
}

// Options controls presentation. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	HeadingLevel int
	Headings     Headings
	StepStyle    StepStyle
}

// DefaultOptions returns the stock layout: level-2 headings and an
// ordered step list.
func DefaultOptions() Options {
	return Options{
		HeadingLevel: 2,
		Headings: Headings{
			Ingredients: "Ingredients",
			Cookware:    "Cookware",
			Steps:       "Steps",
			Image:       "Image",
		},
		StepStyle: StepsOrdered,
	}
}

// Renderer writes recipe sections into a caller-owned container.
type Renderer struct {
	engine    core.MarkdownEngine
	compactor *compact.Compactor
	opts      Options
	log       *slog.Logger
}

// New creates a Renderer that renders through engine.
func New(engine core.MarkdownEngine, opts Options, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if !opts.StepStyle.Valid() {
		opts.StepStyle = StepsOrdered
	}
	return &Renderer{
		engine:    engine,
		compactor: compact.New(engine, log),
		opts:      opts,
		log:       log,
	}
}

// Render clears container and writes the four sections into it. Entries
// are rendered one at a time so the output order matches the model.
// The first engine failure aborts the render and is returned wrapped.
func (r *Renderer) Render(ctx context.Context, recipe *core.Recipe, container *html.Node, sourcePath string, owner core.Owner) error {
	markup.Empty(container)

	r.log.Debug("rendering recipe",
		"source", sourcePath,
		"ingredients", len(recipe.Ingredients),
		"cookware", len(recipe.Cookware),
		"steps", len(recipe.Steps),
	)

	if err := r.heading(ctx, r.opts.Headings.Ingredients, container, sourcePath, owner); err != nil {
		return err
	}
	list := markup.CreateEl(container, "ul")
	for i, ingr := range recipe.Ingredients {
		if err := r.item(ctx, FormatIngredient(ingr), list, sourcePath, owner); err != nil {
			return fmt.Errorf("rendering ingredient %d (%s): %w", i+1, ingr.Name, err)
		}
	}

	if err := r.heading(ctx, r.opts.Headings.Cookware, container, sourcePath, owner); err != nil {
		return err
	}
	list = markup.CreateEl(container, "ul")
	for i, cw := range recipe.Cookware {
		if err := r.item(ctx, FormatCookware(cw), list, sourcePath, owner); err != nil {
			return fmt.Errorf("rendering cookware %d (%s): %w", i+1, cw.Name, err)
		}
	}

	if err := r.heading(ctx, r.opts.Headings.Steps, container, sourcePath, owner); err != nil {
		return err
	}
	if err := r.steps(ctx, recipe.Steps, container, sourcePath, owner); err != nil {
		return err
	}

	if err := r.heading(ctx, r.opts.Headings.Image, container, sourcePath, owner); err != nil {
		return err
	}
	for i, img := range recipe.MetadataValues(core.MetaImage) {
		if err := r.engine.RenderMarkdown(ctx, img, container, sourcePath, owner); err != nil {
			return fmt.Errorf("rendering image %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Renderer) steps(ctx context.Context, steps []core.Step, container *html.Node, sourcePath string, owner core.Owner) error {
	if r.opts.StepStyle == StepsParagraphs {
		for i, step := range steps {
			if err := r.engine.RenderMarkdown(ctx, FormatStep(step), container, sourcePath, owner); err != nil {
				return fmt.Errorf("rendering step %d: %w", i+1, err)
			}
		}
		return nil
	}

	tag := "ol"
	if r.opts.StepStyle == StepsUnordered {
		tag = "ul"
	}
	list := markup.CreateEl(container, tag)
	for i, step := range steps {
		if err := r.item(ctx, FormatStep(step), list, sourcePath, owner); err != nil {
			return fmt.Errorf("rendering step %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Renderer) heading(ctx context.Context, title string, container *html.Node, sourcePath string, owner core.Owner) error {
	if err := r.engine.RenderMarkdown(ctx, Heading(r.opts.HeadingLevel, title), container, sourcePath, owner); err != nil {
		return fmt.Errorf("rendering %q heading: %w", title, err)
	}
	return nil
}

// item adds <li><span> to list and compacts markdown into the span.
func (r *Renderer) item(ctx context.Context, markdown string, list *html.Node, sourcePath string, owner core.Owner) error {
	li := markup.CreateEl(list, "li")
	span := markup.CreateSpan(li)
	return r.compactor.Render(ctx, markdown, span, sourcePath, owner)
}
