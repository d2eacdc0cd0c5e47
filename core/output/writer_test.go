package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"recipes/pancakes.cook", "pancakes"},
		{"notes/Dinner Plans.md", "Dinner Plans"},
		{"soup", "soup"},
		{"https://example.com/r/soup.cook", "example_com_r_soup"},
		{"https://example.com/", "example_com"},
		{"http://cook.example.org:8080/a-b/c.yaml", "cook_example_org_8080_a_b_c"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.source))
		})
	}
}

func TestWriteOnly(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	path, err := w.WriteOnly("recipes/pancakes.cook", []byte("<p>hi</p>"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "pancakes.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))
}

func TestWriteAllMirrorsTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "recipes")
	w, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	path, err := w.WriteAll(root, filepath.Join(root, "desserts", "pie.cook"), []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "desserts", "pie.json"), path)
	assert.FileExists(t, path)
}

func TestWriteAllOutsideRoot(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	_, err = w.WriteAll(filepath.Join(dir, "recipes"), filepath.Join(dir, "elsewhere", "pie.cook"), nil, ".html")
	assert.ErrorContains(t, err, "is outside")
}

func TestWriteAllFileRoot(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	src := filepath.Join(dir, "soup.cook")
	path, err := w.WriteAll(src, src, []byte("<p>soup</p>"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "soup.html"), path)
}

func TestWriteAllCollision(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "recipes")
	w, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	path, err := w.WriteAll(root, filepath.Join(root, "pie.cook"), []byte("cook"), ".html")
	require.NoError(t, err)

	_, err = w.WriteAll(root, filepath.Join(root, "pie.yaml"), []byte("yaml"), ".html")
	assert.ErrorIs(t, err, ErrCollision)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cook", string(data), "first output must survive")

	// The same source may be written again.
	_, err = w.WriteAll(root, filepath.Join(root, "pie.cook"), []byte("cook v2"), ".html")
	assert.NoError(t, err)
}
