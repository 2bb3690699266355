package constants

// ReasonCode is an enumerated, deterministic explanation contributing to a
// confidence score. Codes are appended in evaluation order, never sorted.
type ReasonCode string

const (
	ReasonSingleMatch       ReasonCode = "SINGLE_MATCH"
	ReasonMultipleMatches   ReasonCode = "MULTIPLE_MATCHES_REDUCED_CONFIDENCE"
	ReasonLowPriorityRule   ReasonCode = "LOW_PRIORITY_PATTERN"
	ReasonNormalizeFailed   ReasonCode = "NORMALIZATION_FAILED"
	ReasonNoMatch           ReasonCode = "NO_MATCH"
	ReasonParseError        ReasonCode = "PARSE_ERROR"
	ReasonExtractionError   ReasonCode = "EXTRACTION_ERROR"
)

// ReasonStrings converts a reason list for storage/transport.
func ReasonStrings(reasons []ReasonCode) []string {
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = string(r)
	}
	return out
}
