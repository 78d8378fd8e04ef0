package domain

// MediaKind classifies a stimulus as a still image or a video clip
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// MediaItem is a single cataloged stimulus (domain entity).
// Immutable once cataloged; Name is the identity used in records.
type MediaItem struct {
	GroupLabel   string // optional grouping attribute from a manifest
	Kind         MediaKind
	Name         string // file name, unique within a catalog
	OutcomeLabel string // optional ground-truth outcome from a manifest
	Path         string // absolute or catalog-relative location
}
