package segment

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// ParseError marks a document that could not be segmented. It is scoped to
// the one document; the job records it and continues with the rest.
type ParseError struct {
	DocumentID string
	Format     constants.DocumentFormat
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s document %s: %v", e.Format, e.DocumentID, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// part is one page or section of extracted text, prior to offset assembly.
type part struct {
	locationType string
	location     int
	text         string
}

// Segmenter turns raw document bytes into canonical text plus an ordered
// segment list. Text is whitespace-normalized per part before offsets are
// assigned, so offsets always index the canonical text actually searched.
type Segmenter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{logger: logger}
}

// Segment parses raw bytes according to the document's declared format.
// Failures come back as *ParseError.
func (s *Segmenter) Segment(doc entity.Document, raw []byte) (sd *entity.SegmentedDocument, err error) {
	// ledongthuc/pdf panics on some malformed xref tables; keep the failure
	// scoped to this document.
	defer func() {
		if r := recover(); r != nil {
			sd = nil
			err = &ParseError{DocumentID: doc.ID, Format: doc.Format, Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	var parts []part
	switch doc.Format {
	case constants.FormatPDF:
		parts, err = extractPDFPages(raw)
	case constants.FormatHTML:
		parts, err = extractHTMLSections(raw)
	default:
		err = fmt.Errorf("unsupported format %q", doc.Format)
	}
	if err != nil {
		s.logger.Warn("segmentation failed", "document_id", doc.ID, "format", doc.Format, "error", err)
		return nil, &ParseError{DocumentID: doc.ID, Format: doc.Format, Err: err}
	}
	if len(parts) == 0 {
		return nil, &ParseError{DocumentID: doc.ID, Format: doc.Format, Err: fmt.Errorf("no textual content")}
	}

	out := assemble(doc, parts)
	s.logger.Debug("segmented document",
		"document_id", doc.ID,
		"segments", len(out.Segments),
		"canonical_bytes", len(out.CanonicalText),
	)
	return out, nil
}

// assemble builds the canonical text and absolute offsets. Parts are joined
// with a blank line that belongs to no segment, so segments never overlap.
func assemble(doc entity.Document, parts []part) *entity.SegmentedDocument {
	var b strings.Builder
	segments := make([]entity.Segment, 0, len(parts))

	for i, p := range parts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		start := b.Len()
		b.WriteString(p.text)
		segments = append(segments, entity.Segment{
			Index:        i,
			LocationType: p.locationType,
			Location:     p.location,
			Text:         p.text,
			StartOffset:  start,
			EndOffset:    b.Len(),
		})
	}

	return &entity.SegmentedDocument{
		Document:      doc,
		CanonicalText: b.String(),
		Segments:      segments,
	}
}
