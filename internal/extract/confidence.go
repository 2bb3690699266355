package extract

import (
	"math"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/template"
)

// Scoring constants. The multi-candidate multiplier decreases monotonically
// with candidate count but asymptotes at multiFloor, so a scored cell is
// always distinguishable from a true miss (confidence 0).
const (
	baseFloor          = 0.5
	baseSpan           = 0.4
	multiFloor         = 0.6
	lowPriorityPenalty = 0.15
	normalizePenalty   = 0.10
	minScore           = 0.01
)

// Score is a pure, deterministic function of the candidate set and the
// primary match. Reason codes are appended in evaluation order, never by
// magnitude, so identical inputs always yield identical reason lists.
func Score(field *template.FieldDefinition, primary *Candidate, candidateCount int) (float64, []constants.ReasonCode) {
	if primary == nil || candidateCount == 0 {
		return 0, []constants.ReasonCode{constants.ReasonNoMatch}
	}

	var reasons []constants.ReasonCode

	maxPriority := field.MaxPriority()
	score := baseFloor + baseSpan*float64(primary.Priority)/float64(maxPriority)

	if candidateCount == 1 {
		reasons = append(reasons, constants.ReasonSingleMatch)
	} else {
		reasons = append(reasons, constants.ReasonMultipleMatches)
		score *= multiFloor + (1-multiFloor)/float64(candidateCount)
	}

	if primary.Priority < maxPriority {
		reasons = append(reasons, constants.ReasonLowPriorityRule)
		score -= lowPriorityPenalty
	}

	if !primary.NormalizeOK {
		reasons = append(reasons, constants.ReasonNormalizeFailed)
		score -= normalizePenalty
	}

	score = math.Round(score*1000) / 1000
	if score < minScore {
		score = minScore
	}
	if score > 1 {
		score = 1
	}
	return score, reasons
}
