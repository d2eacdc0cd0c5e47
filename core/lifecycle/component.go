// Package lifecycle provides the host attachment boundary for renders.
// A Component owns child views and cleanup callbacks; once it is unloaded,
// Active reports false and in-flight renders stop at their next check.
package lifecycle

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Child is attached to a Component and follows its load state.
type Child interface {
	OnLoad(ctx context.Context) error
	OnUnload()
}

// Component is a lifecycle scope. It satisfies core.Owner.
type Component struct {
	active atomic.Bool

	mu       sync.Mutex
	children []Child
	cleanups []func()
}

// Active reports whether the component is loaded.
func (c *Component) Active() bool {
	return c.active.Load()
}

// Load activates the component and loads its children in attach order.
// Every child is loaded; their errors are joined.
func (c *Component) Load(ctx context.Context) error {
	if !c.active.CompareAndSwap(false, true) {
		return nil
	}
	c.mu.Lock()
	children := append([]Child(nil), c.children...)
	c.mu.Unlock()

	var errs []error
	for _, child := range children {
		if err := child.OnLoad(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddChild attaches child. If the component is already loaded the child
// is loaded immediately and its error returned.
func (c *Component) AddChild(ctx context.Context, child Child) error {
	c.mu.Lock()
	c.children = append(c.children, child)
	c.mu.Unlock()

	if c.Active() {
		return child.OnLoad(ctx)
	}
	return nil
}

// Register adds a cleanup that runs on Unload, in reverse order.
func (c *Component) Register(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanups = append(c.cleanups, fn)
}

// Unload deactivates the component, unloads children in reverse order and
// runs registered cleanups. Calling it twice is a no-op.
func (c *Component) Unload() {
	if !c.active.CompareAndSwap(true, false) {
		return
	}
	c.mu.Lock()
	children := c.children
	cleanups := c.cleanups
	c.children = nil
	c.cleanups = nil
	c.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].OnUnload()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
