package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/soup.cook"))
	assert.True(t, IsRemote("http://example.com/soup.cook"))
	assert.False(t, IsRemote("recipes/soup.cook"))
	assert.False(t, IsRemote("ftp://example.com/soup.cook"))
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soup.cook")
	require.NoError(t, os.WriteFile(path, []byte("Boil @water."), 0o644))

	res, err := New().Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, res.Source)
	assert.Equal(t, "Boil @water.", res.Body)
}

func TestFetchMissingFile(t *testing.T) {
	_, err := New().Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.cook"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "cookpipe")
		if r.URL.Path != "/soup.cook" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Boil @water."))
	}))
	defer srv.Close()

	res, err := New().Fetch(context.Background(), srv.URL+"/soup.cook")
	require.NoError(t, err)
	assert.Equal(t, "Boil @water.", res.Body)

	_, err = New().Fetch(context.Background(), srv.URL+"/missing.cook")
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestFetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Fetch(ctx, "recipes/soup.cook")
	assert.ErrorIs(t, err, context.Canceled)
}
