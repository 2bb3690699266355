package extract

import (
	"fmt"
	"log/slog"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/template"
)

// Quick-mode bounds. Quick runs are a deterministic prefix of full runs:
// first document only, first quickMaxPages PDF pages, first quickMaxFields
// template fields. HTML sections are not page-bounded.
const (
	quickMaxPages  = 3
	quickMaxFields = 5
)

// FieldResult is the outcome of extracting one field from one document. It
// carries everything the materializer needs to mint a cell.
type FieldResult struct {
	FieldKey        string
	FieldLabel      string
	FieldType       string
	Value           *string
	ValueRaw        *string
	ValueNormalized *string
	Confidence      float64
	Reasons         []constants.ReasonCode
	ReviewState     constants.ReviewState
	Citation        *entity.Citation
	CandidateCount  int
}

// Extractor runs a compiled template over segmented documents. Stateless
// between calls; safe for concurrent use.
type Extractor struct {
	tmpl          *template.Template
	logger        *slog.Logger
	snippetRadius int
}

func New(tmpl *template.Template, logger *slog.Logger, snippetRadius int) *Extractor {
	if snippetRadius <= 0 {
		snippetRadius = DefaultSnippetRadius
	}
	return &Extractor{tmpl: tmpl, logger: logger, snippetRadius: snippetRadius}
}

// Fields returns the template fields in scope for the given mode, in
// template declaration order.
func (e *Extractor) Fields(mode constants.JobMode) []template.FieldDefinition {
	return FieldsForMode(e.tmpl, mode)
}

// ExtractDocument produces one FieldResult per in-scope field, in template
// declaration order. A panic inside a single field's extraction is contained
// to that field: the result degrades to MISSING_DATA with an
// EXTRACTION_ERROR reason and the remaining fields still run.
func (e *Extractor) ExtractDocument(sd *entity.SegmentedDocument, mode constants.JobMode) []FieldResult {
	segments := SegmentsForMode(sd.Segments, mode)
	fields := e.Fields(mode)

	results := make([]FieldResult, 0, len(fields))
	for i := range fields {
		results = append(results, e.extractField(&fields[i], sd, segments))
	}
	return results
}

func (e *Extractor) extractField(field *template.FieldDefinition, sd *entity.SegmentedDocument, segments []entity.Segment) (result FieldResult) {
	result = FieldResult{
		FieldKey:    field.Key,
		FieldLabel:  field.Label,
		FieldType:   field.Type,
		ReviewState: constants.StateMissingData,
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("field extraction panicked",
				slog.String("document_id", sd.Document.ID),
				slog.String("field_key", field.Key),
				slog.String("panic", fmt.Sprint(r)))
			result = FieldResult{
				FieldKey:    field.Key,
				FieldLabel:  field.Label,
				FieldType:   field.Type,
				Confidence:  0,
				Reasons:     []constants.ReasonCode{constants.ReasonExtractionError},
				ReviewState: constants.StateMissingData,
			}
		}
	}()

	candidates := collectCandidates(field, sd, segments)
	primary := selectPrimary(candidates)

	result.CandidateCount = len(candidates)
	result.Confidence, result.Reasons = Score(field, primary, len(candidates))

	if primary == nil {
		return result
	}

	raw := primary.Raw
	result.ValueRaw = &raw
	if primary.NormalizeOK {
		norm := primary.Normalized
		result.ValueNormalized = &norm
		result.Value = &norm
	} else {
		result.Value = &raw
	}
	result.ReviewState = constants.StateExtracted
	result.Citation = buildCitation(sd, primary, e.snippetRadius)
	return result
}

// SegmentsForMode narrows segments for quick mode: PDF pages past
// quickMaxPages are dropped, sections pass through untouched.
func SegmentsForMode(segments []entity.Segment, mode constants.JobMode) []entity.Segment {
	if mode != constants.ModeQuick {
		return segments
	}
	out := make([]entity.Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.LocationType == entity.LocationPage && seg.Location > quickMaxPages {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// FieldsForMode narrows template fields for quick mode to the first
// quickMaxFields, preserving declaration order.
func FieldsForMode(tmpl *template.Template, mode constants.JobMode) []template.FieldDefinition {
	if mode == constants.ModeQuick && len(tmpl.Fields) > quickMaxFields {
		return tmpl.Fields[:quickMaxFields]
	}
	return tmpl.Fields
}
