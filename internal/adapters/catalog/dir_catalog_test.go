package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glimpse/internal/domain"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func TestDirCatalog_List_FiltersByKind(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.png", "a.jpg", "clip.mp4", "notes.txt", "c.JPEG", "v.MOV")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0755))

	c := NewDirCatalog(dir)
	ctx := context.Background()

	images, err := c.List(ctx, domain.KindImage)
	require.NoError(t, err)
	names := make([]string, len(images))
	for i, item := range images {
		names[i] = item.Name
	}
	assert.Equal(t, []string{"a.jpg", "b.png", "c.JPEG"}, names, "sorted by name, extensions matched case-insensitively")

	for _, item := range images {
		assert.Equal(t, domain.KindImage, item.Kind)
		assert.Equal(t, filepath.Join(dir, item.Name), item.Path)
	}

	videos, err := c.List(ctx, domain.KindVideo)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "clip.mp4", videos[0].Name)
	assert.Equal(t, "v.MOV", videos[1].Name)
}

func TestDirCatalog_List_MissingDirectory(t *testing.T) {
	c := NewDirCatalog(filepath.Join(t.TempDir(), "nope"))

	items, err := c.List(context.Background(), domain.KindImage)
	assert.NoError(t, err, "a missing directory is an empty catalog, not a failure")
	assert.Empty(t, items)
}

func TestDirCatalog_List_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirCatalog(t.TempDir()).List(ctx, domain.KindImage)
	assert.ErrorIs(t, err, context.Canceled)
}
