package ports

import (
	"context"

	"glimpse/internal/domain"
)

// MediaCatalog enumerates available stimuli of a kind in a stable order
// (lexicographic by identity), so index-based addressing in a trial plan is
// deterministic. An empty result is not an error; callers treat it as a
// blocking condition for entering the Show phase.
type MediaCatalog interface {
	List(ctx context.Context, kind domain.MediaKind) ([]domain.MediaItem, error)
}
