// Package output places rendered recipes on disk.
// A single source becomes <stem><ext> in the output directory (URLs become
// host_path<ext>); in --all mode the source tree is mirrored below it.
package output

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrCollision reports a second source mapping to an output path that an
// earlier source already wrote, e.g. pie.cook and pie.yaml in one batch.
var ErrCollision = errors.New("output path already written by another source")

// Writer writes rendered documents below OutputDir. It remembers which
// source produced each path and refuses to overwrite one source's output
// with another's.
type Writer struct {
	OutputDir string

	written map[string]string
}

// New prepares outputDir, creating it when missing. An empty outputDir
// means the working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		outputDir = wd
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("preparing output directory %s: %w", outputDir, err)
	}
	return &Writer{OutputDir: outputDir, written: make(map[string]string)}, nil
}

// WriteOnly writes the document rendered from a single source.
// recipes/pancakes.cook with ".html" lands at <out>/pancakes.html.
func (w *Writer) WriteOnly(source string, data []byte, ext string) (string, error) {
	return w.write(source, Stem(source)+ext, data)
}

// WriteAll writes one document of a batch, keeping source's position
// relative to root: root/desserts/pie.cook lands at <out>/desserts/pie<ext>.
// A root that is the source file itself is named like WriteOnly.
func (w *Writer) WriteAll(root, source string, data []byte, ext string) (string, error) {
	rel, err := filepath.Rel(root, source)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("source %s is outside %s", source, root)
	}
	if rel == "." {
		return w.WriteOnly(source, data, ext)
	}
	return w.write(source, strings.TrimSuffix(rel, filepath.Ext(rel))+ext, data)
}

func (w *Writer) write(source, rel string, data []byte) (string, error) {
	target := filepath.Join(w.OutputDir, rel)
	if prev, ok := w.written[target]; ok && prev != source {
		return "", fmt.Errorf("writing %s for %s: %w (%s)", target, source, ErrCollision, prev)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("preparing %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	if w.written == nil {
		w.written = make(map[string]string)
	}
	w.written[target] = source
	return target, nil
}

// Stem derives an output base name from a source path or URL.
// https://example.com/r/soup.cook becomes example_com_r_soup.
func Stem(source string) string {
	if u, err := url.Parse(source); err == nil && u.Host != "" {
		p := strings.Trim(u.Path, "/")
		p = strings.TrimSuffix(p, filepath.Ext(p))
		parts := []string{u.Host}
		if p != "" {
			parts = append(parts, strings.Split(p, "/")...)
		}
		for i := range parts {
			parts[i] = sanitize(parts[i])
		}
		return strings.Join(parts, "_")
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sanitize maps every rune outside [A-Za-z0-9] to '_'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, s)
}
