package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"glimpse/internal/domain"
	"glimpse/internal/logging"
	"glimpse/internal/ports"
)

// Extensions recognized per media kind, matched case-insensitively
var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	videoExtensions = map[string]bool{".mp4": true, ".mov": true, ".m4v": true}
)

// DirCatalog enumerates stimuli by scanning a media directory. The listing
// is sorted lexicographically by file name so plan indices stay stable
// across calls.
type DirCatalog struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.MediaCatalog = (*DirCatalog)(nil)

// NewDirCatalog creates a catalog over the given directory
func NewDirCatalog(dir string) *DirCatalog {
	return &DirCatalog{dir: dir}
}

// List returns all stimuli of the requested kind. A missing directory or an
// empty match yields an empty slice, not an error; callers decide whether
// that blocks the session.
func (c *DirCatalog) List(ctx context.Context, kind domain.MediaKind) ([]domain.MediaItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger.Warn("Media directory does not exist", "dir", c.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read media directory %s: %w", c.dir, err)
	}

	extensions := imageExtensions
	if kind == domain.KindVideo {
		extensions = videoExtensions
	}

	var items []domain.MediaItem
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !extensions[ext] {
			continue
		}
		items = append(items, domain.MediaItem{
			Kind: kind,
			Name: entry.Name(),
			Path: filepath.Join(c.dir, entry.Name()),
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	logging.Logger.Debug("Scanned media directory",
		"dir", c.dir,
		"kind", string(kind),
		"count", len(items))
	return items, nil
}
