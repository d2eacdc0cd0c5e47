// Package crawl — source filtering rules.
// Decides which files are recipe sources and normalizes their paths.
package crawl

import (
	"path/filepath"
	"strings"
)

// recipeExtensions are the file types the pipeline can render.
var recipeExtensions = map[string]bool{
	".cook": true, ".cooklang": true,
	".yaml": true, ".yml": true, ".json": true,
	".md": true, ".markdown": true,
}

// IsRecipeSource reports whether path has a renderable extension.
func IsRecipeSource(path string) bool {
	return recipeExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsNote reports whether path is a markdown note that may hold fenced
// recipe blocks.
func IsNote(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// IsHidden reports whether a file or directory name is hidden.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// NormalizePath cleans a path for deduplication.
func NormalizePath(path string) string {
	return filepath.Clean(path)
}
