package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"January 15, 2025": "2025-01-15",
		"October 1, 2014":  "2014-10-01",
		"2023-06-30":       "2023-06-30",
	}
	for in, want := range cases {
		got := Normalize(in, NormalizerDate)
		assert.True(t, got.OK, in)
		assert.Equal(t, want, got.Value, in)
	}

	failed := Normalize("thirty days after closing", NormalizerDate)
	assert.False(t, failed.OK)
	assert.Equal(t, "date_parse_failed", failed.Reason)
}

func TestNormalizeCurrency(t *testing.T) {
	got := Normalize("USD $1,250.50", NormalizerCurrency)
	assert.True(t, got.OK)
	assert.Equal(t, "$1250.50", got.Value)

	bad := Normalize("no money here", NormalizerCurrency)
	assert.False(t, bad.OK)
}

func TestNormalizeText(t *testing.T) {
	got := Normalize("  spread \n over \t lines  ", NormalizerText)
	assert.True(t, got.OK)
	assert.Equal(t, "spread over lines", got.Value)

	empty := Normalize("   ", NormalizerText)
	assert.False(t, empty.OK)
}

func TestDefaultNormalizer(t *testing.T) {
	assert.Equal(t, NormalizerDate, DefaultNormalizer(TypeDate))
	assert.Equal(t, NormalizerCurrency, DefaultNormalizer(TypeCurrency))
	assert.Equal(t, NormalizerText, DefaultNormalizer(TypeText))
	assert.Equal(t, NormalizerText, DefaultNormalizer(TypeComposite))
}
