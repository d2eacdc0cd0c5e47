package engine

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var sourcePathKey = parser.NewContextKey()

// linkResolver rewrites relative link and image destinations so they
// resolve against the directory of the source being rendered.
type linkResolver struct{}

func (r *linkResolver) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	sourcePath, _ := pc.Get(sourcePathKey).(string)
	if sourcePath == "" {
		return
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Image:
			v.Destination = []byte(ResolveLink(sourcePath, string(v.Destination)))
		case *ast.Link:
			v.Destination = []byte(ResolveLink(sourcePath, string(v.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

// ResolveLink resolves dest relative to sourcePath. Absolute URLs, rooted
// paths and fragment-only links are returned unchanged, as is everything
// when sourcePath sits in the current directory.
func ResolveLink(sourcePath, dest string) string {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") {
		return dest
	}
	ref, err := url.Parse(dest)
	if err != nil || ref.Scheme != "" || ref.Host != "" {
		return dest
	}

	// Remote sources resolve like a browser would.
	if base, err := url.Parse(sourcePath); err == nil && (base.Scheme == "http" || base.Scheme == "https") {
		return base.ResolveReference(ref).String()
	}

	dir := path.Dir(filepath.ToSlash(sourcePath))
	if dir == "." {
		return dest
	}
	ref.Path = path.Join(dir, ref.Path)
	return ref.String()
}
