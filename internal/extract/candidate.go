package extract

import (
	"sort"
	"strings"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/segment"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/template"
)

// Candidate is one raw pattern match for a field within a document, prior to
// scoring and selection. Ephemeral: produced per extraction pass, never
// persisted.
type Candidate struct {
	FieldKey     string
	DocumentID   string
	SegmentIndex int
	LocationType string
	Location     int
	Raw          string
	Normalized   string
	NormalizeOK  bool
	CharStart    int // absolute offset into canonical text
	CharEnd      int
	Priority     int
}

// collectCandidates applies every rule to every segment, in rule-priority
// order then segment order, taking all non-overlapping occurrences.
func collectCandidates(field *template.FieldDefinition, sd *entity.SegmentedDocument, segments []entity.Segment) []Candidate {
	var out []Candidate

	for ri := range field.Patterns {
		rule := &field.Patterns[ri]
		re := rule.Pattern()
		for _, seg := range segments {
			for _, m := range re.FindAllStringSubmatchIndex(seg.Text, -1) {
				raw := pickValue(field, rule, seg.Text, m)
				raw = segment.CompactWhitespace(raw)
				if raw == "" {
					continue
				}

				normalizer := rule.Normalizer
				if normalizer == "" {
					normalizer = template.DefaultNormalizer(field.Type)
				}
				norm := template.Normalize(raw, normalizer)

				out = append(out, Candidate{
					FieldKey:     field.Key,
					DocumentID:   sd.Document.ID,
					SegmentIndex: seg.Index,
					LocationType: seg.LocationType,
					Location:     seg.Location,
					Raw:          raw,
					Normalized:   norm.Value,
					NormalizeOK:  norm.OK,
					CharStart:    seg.StartOffset + m[0],
					CharEnd:      seg.StartOffset + m[1],
					Priority:     rule.Priority,
				})
			}
		}
	}
	return out
}

// pickValue extracts the value string from a match. Composite fields merge
// every non-empty capture group, joined with " / " in group order; other
// fields take the configured group, falling back to the whole match.
func pickValue(field *template.FieldDefinition, rule *template.PatternRule, text string, m []int) string {
	groupSpan := func(g int) (string, bool) {
		lo, hi := m[2*g], m[2*g+1]
		if lo < 0 || hi < 0 {
			return "", false
		}
		return text[lo:hi], true
	}

	if field.Type == template.TypeComposite {
		n := rule.Pattern().NumSubexp()
		var parts []string
		for g := 1; g <= n; g++ {
			if v, ok := groupSpan(g); ok && strings.TrimSpace(v) != "" {
				parts = append(parts, strings.TrimSpace(v))
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " / ")
		}
		return text[m[0]:m[1]]
	}

	if rule.Group > 0 {
		if v, ok := groupSpan(rule.Group); ok {
			return v
		}
	}
	return text[m[0]:m[1]]
}

// selectPrimary picks the single candidate used for scoring and citation.
// Tie-break, applied in order: highest priority, earliest segment, earliest
// start offset, longest span. Stable, so identical inputs always pick the
// same candidate.
func selectPrimary(candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.SegmentIndex != b.SegmentIndex {
			return a.SegmentIndex < b.SegmentIndex
		}
		if a.CharStart != b.CharStart {
			return a.CharStart < b.CharStart
		}
		return (a.CharEnd - a.CharStart) > (b.CharEnd - b.CharStart)
	})
	return &ordered[0]
}
