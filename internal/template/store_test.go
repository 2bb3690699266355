package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validTemplate = `{
  "template_id": "test",
  "fields": [
    {
      "key": "effective_date",
      "label": "Effective Date",
      "type": "date",
      "patterns": [
        {"regex": "effective as of ([A-Z][a-z]+ \\d{1,2}, \\d{4})", "priority": 1, "group": 1, "normalizer": "date"},
        {"regex": "dated ([A-Z][a-z]+ \\d{1,2}, \\d{4})", "priority": 2, "group": 1, "normalizer": "date"}
      ]
    }
  ]
}`

func TestLoad_CompilesAndSortsByPriority(t *testing.T) {
	tmpl, err := Load(writeTemplate(t, validTemplate))
	require.NoError(t, err)
	require.Len(t, tmpl.Fields, 1)

	field := tmpl.Fields[0]
	require.Len(t, field.Patterns, 2)
	// Highest priority first regardless of declaration order.
	assert.Equal(t, 2, field.Patterns[0].Priority)
	assert.Equal(t, 1, field.Patterns[1].Priority)
	assert.NotNil(t, field.Patterns[0].Pattern())
	assert.Equal(t, 2, field.MaxPriority())
}

func TestLoad_RejectsBadRegex(t *testing.T) {
	path := writeTemplate(t, `{
	  "fields": [
	    {"key": "a", "label": "A", "type": "text",
	     "patterns": [{"regex": "([unclosed", "priority": 1}]}
	  ]
	}`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoad_RejectsDuplicateKeys(t *testing.T) {
	path := writeTemplate(t, `{
	  "fields": [
	    {"key": "a", "label": "A", "type": "text", "patterns": [{"regex": "x", "priority": 1}]},
	    {"key": "a", "label": "A again", "type": "text", "patterns": [{"regex": "y", "priority": 1}]}
	  ]
	}`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoad_RejectsUnknownNormalizer(t *testing.T) {
	path := writeTemplate(t, `{
	  "fields": [
	    {"key": "a", "label": "A", "type": "text",
	     "patterns": [{"regex": "x", "priority": 1, "normalizer": "phone"}]}
	  ]
	}`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoad_RejectsGroupOutOfRange(t *testing.T) {
	path := writeTemplate(t, `{
	  "fields": [
	    {"key": "a", "label": "A", "type": "text",
	     "patterns": [{"regex": "(x)", "priority": 1, "group": 2}]}
	  ]
	}`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoad_RejectsBadShape(t *testing.T) {
	for name, body := range map[string]string{
		"no fields":     `{"template_id": "x"}`,
		"empty fields":  `{"fields": []}`,
		"bad priority":  `{"fields": [{"key":"a","label":"A","type":"text","patterns":[{"regex":"x","priority":0}]}]}`,
		"bad type":      `{"fields": [{"key":"a","label":"A","type":"number","patterns":[{"regex":"x","priority":1}]}]}`,
		"not even json": `{`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeTemplate(t, body))
			require.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestDefaultTemplateParses(t *testing.T) {
	tmpl, err := Load(filepath.Join("..", "..", "templates", "v1_template.json"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(tmpl.Fields), 7)

	_, ok := tmpl.Field("effective_date_term")
	assert.True(t, ok)
}
