package template

import (
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
)

// Normalizer identifiers. A closed set: the template store rejects anything
// else at load time.
const (
	NormalizerText     = "text"
	NormalizerDate     = "date"
	NormalizerCurrency = "currency"
)

// NormalizationResult reports what a normalizer did. OK=false keeps the raw
// value in play and costs a confidence penalty downstream.
type NormalizationResult struct {
	Value  string
	OK     bool
	Reason string
}

var currencyPattern = regexp.MustCompile(`(\$)?\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]+)?)`)

// KnownNormalizer reports whether name is a valid normalizer id.
func KnownNormalizer(name string) bool {
	switch name {
	case NormalizerText, NormalizerDate, NormalizerCurrency:
		return true
	}
	return false
}

// DefaultNormalizer maps a field type onto the normalizer used when a rule
// does not name one.
func DefaultNormalizer(fieldType string) string {
	switch fieldType {
	case TypeDate:
		return NormalizerDate
	case TypeCurrency:
		return NormalizerCurrency
	}
	return NormalizerText
}

// Normalize applies the named normalizer to a raw matched value.
func Normalize(value, name string) NormalizationResult {
	switch name {
	case NormalizerDate:
		return normalizeDate(value)
	case NormalizerCurrency:
		return normalizeCurrency(value)
	default:
		return normalizeText(value)
	}
}

func normalizeText(value string) NormalizationResult {
	cleaned := strings.Join(strings.Fields(value), " ")
	if cleaned == "" {
		return NormalizationResult{OK: false, Reason: "empty_after_cleanup"}
	}
	return NormalizationResult{Value: cleaned, OK: true, Reason: "text_cleanup"}
}

func normalizeDate(value string) NormalizationResult {
	t, err := dateparse.ParseAny(strings.TrimSpace(value))
	if err != nil {
		return NormalizationResult{OK: false, Reason: "date_parse_failed"}
	}
	return NormalizationResult{Value: t.Format("2006-01-02"), OK: true, Reason: "date_parsed"}
}

func normalizeCurrency(value string) NormalizationResult {
	m := currencyPattern.FindStringSubmatch(value)
	if m == nil {
		return NormalizationResult{OK: false, Reason: "currency_parse_failed"}
	}
	amount := strings.ReplaceAll(m[2], ",", "")
	return NormalizationResult{Value: m[1] + amount, OK: true, Reason: "currency_parsed"}
}
