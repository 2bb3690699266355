package entity

import (
	"github.com/Tanjim-Islam/legal-tabular-review/constants"
)

// Location types for segments and citations.
const (
	LocationPage    = "page"
	LocationSection = "section"
)

// Document represents an ingested source document for data transfer between layers.
// Immutable once ingested for a given run.
type Document struct {
	ID         string                   `json:"id"`
	Identifier string                   `json:"identifier"`
	Path       string                   `json:"path"`
	Source     string                   `json:"source"`
	Format     constants.DocumentFormat `json:"format"`
}

// Segment is a page- or section-bounded slice of a document's canonical text.
// Offsets index into the canonical text, which is normalized before offsets
// are assigned.
type Segment struct {
	Index        int    `json:"index"`
	LocationType string `json:"location_type"`
	Location     int    `json:"location"` // 1-based page or section number
	Text         string `json:"text"`
	StartOffset  int    `json:"start_offset"`
	EndOffset    int    `json:"end_offset"`
}

// SegmentedDocument pairs a document with its canonical text and ordered
// segments. Segments are non-overlapping and ordered; offsets increase
// monotonically.
type SegmentedDocument struct {
	Document      Document  `json:"document"`
	CanonicalText string    `json:"canonical_text"`
	Segments      []Segment `json:"segments"`
}
