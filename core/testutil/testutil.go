// Package testutil provides test helpers shared across cookpipe packages.
package testutil

import (
	"context"
	"log/slog"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Owner is a core.Owner whose state tests flip directly.
type Owner struct {
	Detached bool
}

// Active reports whether the owner is still attached.
func (o *Owner) Active() bool { return !o.Detached }

var _ core.Owner = (*Owner)(nil)

// StubEngine is a core.MarkdownEngine that records every call and
// appends whatever Build returns for the markdown. With a nil Build it
// appends a single <p> holding the markdown as text.
type StubEngine struct {
	Calls []string
	Build func(markdown string) []*html.Node
	// FailOn makes the engine return Err for a matching markdown string.
	FailOn string
	Err    error
}

// RenderMarkdown implements core.MarkdownEngine.
func (e *StubEngine) RenderMarkdown(_ context.Context, markdown string, target *html.Node, _ string, owner core.Owner) error {
	e.Calls = append(e.Calls, markdown)
	if owner != nil && !owner.Active() {
		return core.ErrDetached
	}
	if e.Err != nil && markdown == e.FailOn {
		return e.Err
	}
	var nodes []*html.Node
	if e.Build != nil {
		nodes = e.Build(markdown)
	} else {
		p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
		p.AppendChild(&html.Node{Type: html.TextNode, Data: markdown})
		nodes = []*html.Node{p}
	}
	for _, n := range nodes {
		target.AppendChild(n)
	}
	return nil
}
