// Package crawl provides recipe source discovery for --all mode.
// It walks a directory tree for recipe files and notes, keeping discovery
// separate from the render pipeline.
package crawl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// maxSources caps a single walk to avoid runaway traversals.
const maxSources = 10000

// DiscoverAll finds every recipe source under root in lexical walk order.
// Hidden files and directories are skipped. A root that is a file is
// returned as the only source.
func DiscoverAll(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{NormalizePath(root)}, nil
	}

	queue := NewQueue()
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path != root && IsHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsRecipeSource(path) {
			return nil
		}
		queue.Add(NormalizePath(path))
		if queue.Visited() >= maxSources {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return queue.All(), nil
}
