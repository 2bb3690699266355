package extract

import (
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/template"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// docFromPages builds a segmented document whose segments mirror the
// segmenter's output exactly: per-segment text joined with "\n\n", offsets
// indexing the joined canonical text.
func docFromPages(id string, locationType string, pages ...string) *entity.SegmentedDocument {
	sd := &entity.SegmentedDocument{
		Document: entity.Document{
			ID:         id,
			Identifier: id + ".pdf",
			Format:     constants.FormatPDF,
		},
	}
	offset := 0
	for i, text := range pages {
		if i > 0 {
			offset += 2 // "\n\n" separator
		}
		sd.Segments = append(sd.Segments, entity.Segment{
			Index:        i,
			LocationType: locationType,
			Location:     i + 1,
			Text:         text,
			StartOffset:  offset,
			EndOffset:    offset + len(text),
		})
		offset += len(text)
	}
	sd.CanonicalText = strings.Join(pages, "\n\n")
	return sd
}

func mustParse(t *testing.T, body string) *template.Template {
	t.Helper()
	tmpl, err := template.Parse([]byte(body))
	require.NoError(t, err)
	return tmpl
}

const dateTemplate = `{
  "template_id": "t",
  "fields": [
    {
      "key": "effective_date",
      "label": "Effective Date",
      "type": "date",
      "patterns": [
        {"regex": "effective as of ([A-Z][a-z]+ \\d{1,2}, \\d{4})", "priority": 3, "group": 1, "normalizer": "date"},
        {"regex": "dated ([A-Z][a-z]+ \\d{1,2}, \\d{4})", "priority": 1, "group": 1, "normalizer": "date"}
      ]
    }
  ]
}`

func TestExtract_SingleMatchHighPriority(t *testing.T) {
	tmpl := mustParse(t, dateTemplate)
	ex := New(tmpl, testLogger(), 0)

	sd := docFromPages("doc1", entity.LocationPage,
		"This Agreement is effective as of January 15, 2025 between the parties.")

	results := ex.ExtractDocument(sd, constants.ModeFull)
	require.Len(t, results, 1)
	r := results[0]

	assert.Equal(t, constants.StateExtracted, r.ReviewState)
	require.NotNil(t, r.ValueRaw)
	assert.Equal(t, "January 15, 2025", *r.ValueRaw)
	require.NotNil(t, r.ValueNormalized)
	assert.Equal(t, "2025-01-15", *r.ValueNormalized)
	require.NotNil(t, r.Value)
	assert.Equal(t, "2025-01-15", *r.Value)

	// Single match on the highest-priority rule scores the maximum.
	assert.InDelta(t, 0.9, r.Confidence, 1e-9)
	assert.Equal(t, []constants.ReasonCode{constants.ReasonSingleMatch}, r.Reasons)
	assert.Equal(t, 1, r.CandidateCount)
}

func TestExtract_NoMatchIsMissingData(t *testing.T) {
	tmpl := mustParse(t, dateTemplate)
	ex := New(tmpl, testLogger(), 0)

	sd := docFromPages("doc1", entity.LocationPage, "Nothing of interest here.")

	r := ex.ExtractDocument(sd, constants.ModeFull)[0]
	assert.Equal(t, constants.StateMissingData, r.ReviewState)
	assert.Zero(t, r.Confidence)
	assert.Equal(t, []constants.ReasonCode{constants.ReasonNoMatch}, r.Reasons)
	assert.Nil(t, r.Value)
	assert.Nil(t, r.ValueRaw)
	assert.Nil(t, r.Citation)
}

func TestExtract_MultipleMatchesReduceConfidence(t *testing.T) {
	tmpl := mustParse(t, dateTemplate)
	ex := New(tmpl, testLogger(), 0)

	single := docFromPages("a", entity.LocationPage,
		"effective as of January 15, 2025.")
	double := docFromPages("b", entity.LocationPage,
		"effective as of January 15, 2025. Also effective as of March 1, 2025.")

	rSingle := ex.ExtractDocument(single, constants.ModeFull)[0]
	rDouble := ex.ExtractDocument(double, constants.ModeFull)[0]

	assert.Less(t, rDouble.Confidence, rSingle.Confidence)
	assert.Contains(t, rDouble.Reasons, constants.ReasonMultipleMatches)
	// The earliest occurrence at the top priority wins.
	assert.Equal(t, "January 15, 2025", *rDouble.ValueRaw)
}

func TestExtract_LowPriorityRulePenalized(t *testing.T) {
	tmpl := mustParse(t, dateTemplate)
	ex := New(tmpl, testLogger(), 0)

	sd := docFromPages("doc1", entity.LocationPage, "dated March 1, 2020.")
	r := ex.ExtractDocument(sd, constants.ModeFull)[0]

	assert.Equal(t, constants.StateExtracted, r.ReviewState)
	assert.Contains(t, r.Reasons, constants.ReasonLowPriorityRule)
	// base 0.5 + 0.4*(1/3) = 0.633, minus 0.15 = 0.483
	assert.InDelta(t, 0.483, r.Confidence, 1e-9)
}

func TestExtract_NormalizationFailureKeepsRaw(t *testing.T) {
	tmpl := mustParse(t, `{
	  "fields": [
	    {"key": "term", "label": "Term", "type": "date",
	     "patterns": [{"regex": "term of (.{1,40}?) from signing", "priority": 1, "group": 1, "normalizer": "date"}]}
	  ]
	}`)
	ex := New(tmpl, testLogger(), 0)

	sd := docFromPages("doc1", entity.LocationPage,
		"A term of thirty (30) days from signing applies.")
	r := ex.ExtractDocument(sd, constants.ModeFull)[0]

	assert.Equal(t, constants.StateExtracted, r.ReviewState)
	require.NotNil(t, r.ValueRaw)
	assert.Equal(t, "thirty (30) days", *r.ValueRaw)
	assert.Nil(t, r.ValueNormalized)
	assert.Equal(t, *r.ValueRaw, *r.Value)
	assert.Contains(t, r.Reasons, constants.ReasonNormalizeFailed)
	// base 0.9, minus 0.10 = 0.8
	assert.InDelta(t, 0.8, r.Confidence, 1e-9)
}

func TestExtract_CompositeMergesGroups(t *testing.T) {
	tmpl := mustParse(t, `{
	  "fields": [
	    {"key": "parties", "label": "Parties", "type": "composite",
	     "patterns": [{"regex": "between ([A-Z][\\w .,]+?) and ([A-Z][\\w .,]+?)[.;]", "priority": 1}]}
	  ]
	}`)
	ex := New(tmpl, testLogger(), 0)

	sd := docFromPages("doc1", entity.LocationPage,
		"This Agreement is between Acme Holdings Inc. and Bolt Industries LLC; witnessed.")
	r := ex.ExtractDocument(sd, constants.ModeFull)[0]

	require.NotNil(t, r.ValueRaw)
	assert.Equal(t, "Acme Holdings Inc. / Bolt Industries LLC", *r.ValueRaw)
}

func TestExtract_CitationQuotesTheMatch(t *testing.T) {
	tmpl := mustParse(t, dateTemplate)
	ex := New(tmpl, testLogger(), 20)

	long := strings.Repeat("x ", 60) + "effective as of January 15, 2025" + strings.Repeat(" y", 60)
	sd := docFromPages("doc1", entity.LocationPage, "first page, no match", long)

	r := ex.ExtractDocument(sd, constants.ModeFull)[0]
	require.NotNil(t, r.Citation)
	c := r.Citation

	assert.Equal(t, "doc1", c.DocumentID)
	assert.Equal(t, entity.LocationPage, c.LocationType)
	assert.Equal(t, 2, c.Location)
	assert.Nil(t, c.Coordinates)

	// Offsets index the canonical text of the whole document.
	assert.Equal(t, "effective as of January 15, 2025", sd.CanonicalText[c.CharStart:c.CharEnd])

	// Clipped on both sides.
	assert.True(t, strings.HasPrefix(c.Snippet, "…"))
	assert.True(t, strings.HasSuffix(c.Snippet, "…"))
	assert.Contains(t, c.Snippet, "January 15, 2025")
}

func TestExtract_CitationUnclippedAtSegmentBounds(t *testing.T) {
	tmpl := mustParse(t, dateTemplate)
	ex := New(tmpl, testLogger(), 0)

	sd := docFromPages("doc1", entity.LocationPage, "effective as of January 15, 2025")
	r := ex.ExtractDocument(sd, constants.ModeFull)[0]

	require.NotNil(t, r.Citation)
	assert.False(t, strings.HasPrefix(r.Citation.Snippet, "…"))
	assert.False(t, strings.HasSuffix(r.Citation.Snippet, "…"))
}

func TestExtract_CitationSnippetNeverSplitsRune(t *testing.T) {
	// Byte layout: "ab"(0-1) "é"(2-3) "cdef"(4-7) "MARKER"(8-13)
	// "ghij"(14-17) "é"(18-19) "kl"(20-21). With radius 5, both raw window
	// edges (3 and 19) land inside a two-byte rune; the window must widen
	// to the enclosing boundaries instead of slicing through.
	sd := docFromPages("doc1", entity.LocationPage, "abécdefMARKERghijékl")
	c := &Candidate{SegmentIndex: 0, CharStart: 8, CharEnd: 14}

	cit := buildCitation(sd, c, 5)
	require.NotNil(t, cit)
	assert.True(t, utf8.ValidString(cit.Snippet))
	assert.Equal(t, "…écdefMARKERghijé…", cit.Snippet)
}

func TestExtract_Deterministic(t *testing.T) {
	tmpl := mustParse(t, dateTemplate)
	ex := New(tmpl, testLogger(), 0)

	sd := docFromPages("doc1", entity.LocationPage,
		"effective as of January 15, 2025 and dated March 1, 2020.")

	first := ex.ExtractDocument(sd, constants.ModeFull)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ex.ExtractDocument(sd, constants.ModeFull))
	}
}

func TestSegmentsForMode_QuickDropsLatePages(t *testing.T) {
	sd := docFromPages("doc1", entity.LocationPage, "p1", "p2", "p3", "p4", "p5")

	quick := SegmentsForMode(sd.Segments, constants.ModeQuick)
	require.Len(t, quick, 3)
	assert.Equal(t, 3, quick[2].Location)

	full := SegmentsForMode(sd.Segments, constants.ModeFull)
	assert.Len(t, full, 5)
}

func TestSegmentsForMode_QuickKeepsAllSections(t *testing.T) {
	sd := docFromPages("doc1", entity.LocationSection, "s1", "s2", "s3", "s4", "s5")
	quick := SegmentsForMode(sd.Segments, constants.ModeQuick)
	assert.Len(t, quick, 5)
}

func TestFieldsForMode_QuickTakesPrefix(t *testing.T) {
	var fields []string
	for _, k := range []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7"} {
		fields = append(fields, `{"key":"`+k+`","label":"`+k+`","type":"text","patterns":[{"regex":"x","priority":1}]}`)
	}
	tmpl := mustParse(t, `{"fields":[`+strings.Join(fields, ",")+`]}`)

	quick := FieldsForMode(tmpl, constants.ModeQuick)
	require.Len(t, quick, 5)
	assert.Equal(t, "f1", quick[0].Key)
	assert.Equal(t, "f5", quick[4].Key)

	assert.Len(t, FieldsForMode(tmpl, constants.ModeFull), 7)
}

func TestSelectPrimary_TieBreakOrder(t *testing.T) {
	cands := []Candidate{
		{Priority: 1, SegmentIndex: 0, CharStart: 0, CharEnd: 5},
		{Priority: 2, SegmentIndex: 3, CharStart: 90, CharEnd: 95},
		{Priority: 2, SegmentIndex: 1, CharStart: 40, CharEnd: 44},
		{Priority: 2, SegmentIndex: 1, CharStart: 10, CharEnd: 14},
		{Priority: 2, SegmentIndex: 1, CharStart: 10, CharEnd: 30},
	}

	p := selectPrimary(cands)
	require.NotNil(t, p)
	assert.Equal(t, 2, p.Priority)
	assert.Equal(t, 1, p.SegmentIndex)
	assert.Equal(t, 10, p.CharStart)
	assert.Equal(t, 30, p.CharEnd) // longest span at the same start

	assert.Nil(t, selectPrimary(nil))
}

func TestScore_Bounds(t *testing.T) {
	field := &template.FieldDefinition{
		Key: "f", Label: "F", Type: template.TypeText,
		Patterns: []template.PatternRule{{Regex: "x", Priority: 10}, {Regex: "y", Priority: 1}},
	}

	// Worst case: lowest priority, many candidates, failed normalization.
	worst, reasons := Score(field, &Candidate{Priority: 1, NormalizeOK: false}, 50)
	assert.GreaterOrEqual(t, worst, 0.01)
	assert.Less(t, worst, 1.0)
	assert.Equal(t, []constants.ReasonCode{
		constants.ReasonMultipleMatches,
		constants.ReasonLowPriorityRule,
		constants.ReasonNormalizeFailed,
	}, reasons)

	best, _ := Score(field, &Candidate{Priority: 10, NormalizeOK: true}, 1)
	assert.InDelta(t, 0.9, best, 1e-9)
}
