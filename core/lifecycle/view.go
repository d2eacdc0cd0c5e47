package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// RecipeRenderer writes a recipe into a container on behalf of owner.
type RecipeRenderer interface {
	Render(ctx context.Context, recipe *core.Recipe, container *html.Node, sourcePath string, owner core.Owner) error
}

// RecipeView is the render child for one recipe instance. Loading it
// renders the recipe; unloading it detaches any render still running.
type RecipeView struct {
	Recipe    *core.Recipe
	Container *html.Node
	Origin    string

	renderer RecipeRenderer
	active   atomic.Bool
}

// NewRecipeView binds recipe to container. origin is the source path used
// for relative links.
func NewRecipeView(recipe *core.Recipe, container *html.Node, origin string, renderer RecipeRenderer) *RecipeView {
	return &RecipeView{
		Recipe:    recipe,
		Container: container,
		Origin:    origin,
		renderer:  renderer,
	}
}

// Active reports whether the view is loaded.
func (v *RecipeView) Active() bool {
	return v.active.Load()
}

// OnLoad activates the view and renders it.
func (v *RecipeView) OnLoad(ctx context.Context) error {
	v.active.Store(true)
	return v.Render(ctx)
}

// OnUnload deactivates the view.
func (v *RecipeView) OnUnload() {
	v.active.Store(false)
}

// Render re-renders the recipe into the container, replacing what is there.
func (v *RecipeView) Render(ctx context.Context) error {
	return v.renderer.Render(ctx, v.Recipe, v.Container, v.Origin, v)
}

// Processor handles one fenced recipe block: parse it, bind a view to the
// target element and attach the view to its owning component.
type Processor struct {
	parser   core.Parser
	renderer RecipeRenderer
	log      *slog.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(parser core.Parser, renderer RecipeRenderer, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Processor{parser: parser, renderer: renderer, log: log}
}

// Process parses source and attaches a RecipeView rendering into el.
// When owner is already loaded the view renders immediately.
func (p *Processor) Process(ctx context.Context, source string, el *html.Node, owner *Component, sourcePath string) (*RecipeView, error) {
	recipe, err := p.parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing recipe: %w", err)
	}
	p.log.Debug("parsed recipe block", "source", sourcePath, "steps", len(recipe.Steps))

	view := NewRecipeView(recipe, el, sourcePath, p.renderer)
	if err := owner.AddChild(ctx, view); err != nil {
		return view, fmt.Errorf("rendering recipe: %w", err)
	}
	return view, nil
}
