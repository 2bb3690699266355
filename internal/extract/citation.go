package extract

import (
	"unicode/utf8"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/segment"
)

// DefaultSnippetRadius is the context window either side of a match.
const DefaultSnippetRadius = 140

// buildCitation converts the primary match into a citation record. The
// snippet is a fixed window centered on the match, clipped to the segment
// with ellipsis markers when clipped. Coordinates stay nil: bounding boxes
// are reserved for a future source format and must not be inferred.
func buildCitation(sd *entity.SegmentedDocument, c *Candidate, radius int) *entity.Citation {
	if radius <= 0 {
		radius = DefaultSnippetRadius
	}
	seg := sd.Segments[c.SegmentIndex]

	localStart := c.CharStart - seg.StartOffset
	localEnd := c.CharEnd - seg.StartOffset

	left := localStart - radius
	if left < 0 {
		left = 0
	}
	right := localEnd + radius
	if right > len(seg.Text) {
		right = len(seg.Text)
	}
	// The window must not split a rune: widen to the enclosing rune
	// boundaries so the snippet stays valid UTF-8.
	for left > 0 && !utf8.RuneStart(seg.Text[left]) {
		left--
	}
	for right < len(seg.Text) && !utf8.RuneStart(seg.Text[right]) {
		right++
	}

	snippet := segment.CompactWhitespace(seg.Text[left:right])
	if left > 0 {
		snippet = "…" + snippet
	}
	if right < len(seg.Text) {
		snippet = snippet + "…"
	}

	return &entity.Citation{
		DocumentID:         sd.Document.ID,
		DocumentIdentifier: sd.Document.Identifier,
		LocationType:       seg.LocationType,
		Location:           seg.Location,
		Snippet:            snippet,
		CharStart:          c.CharStart,
		CharEnd:            c.CharEnd,
		Coordinates:        nil,
	}
}
