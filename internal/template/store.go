package template

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidTemplate marks template validation failures. These are fatal to
// the run: an invalid template makes every subsequent extraction meaningless.
var ErrInvalidTemplate = errors.New("invalid template")

// templateSchema constrains the template file shape before any semantic
// checks run.
const templateSchemaJSON = `{
  "type": "object",
  "required": ["fields"],
  "properties": {
    "template_id": {"type": "string"},
    "description": {"type": "string"},
    "fields": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["key", "label", "type", "patterns"],
        "additionalProperties": false,
        "properties": {
          "key": {"type": "string", "minLength": 1, "pattern": "^[a-z][a-z0-9_]*$"},
          "label": {"type": "string", "minLength": 1},
          "type": {"type": "string", "enum": ["text", "date", "currency", "composite"]},
          "patterns": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["regex", "priority"],
              "additionalProperties": false,
              "properties": {
                "regex": {"type": "string", "minLength": 1},
                "priority": {"type": "integer", "minimum": 1},
                "group": {"type": "integer", "minimum": 0},
                "normalizer": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

var templateSchema = jsonschema.MustCompileString("template.schema.json", templateSchemaJSON)

// Load reads, validates and compiles a template file. It fails fast on any
// problem; a partially valid template is never returned.
func Load(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidTemplate, path, err)
	}
	return Parse(raw)
}

// Parse validates and compiles raw template JSON.
func Parse(raw []byte) (*Template, error) {
	var shape interface{}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidTemplate, err)
	}
	if err := templateSchema.Validate(shape); err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrInvalidTemplate, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var tmpl Template
	if err := dec.Decode(&tmpl); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidTemplate, err)
	}

	seen := map[string]struct{}{}
	for fi := range tmpl.Fields {
		field := &tmpl.Fields[fi]
		if _, dup := seen[field.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate field key %q", ErrInvalidTemplate, field.Key)
		}
		seen[field.Key] = struct{}{}

		for pi := range field.Patterns {
			rule := &field.Patterns[pi]
			// Case-insensitive, multiline: the canonical text keeps line
			// structure and legal boilerplate is wildly inconsistent on case.
			re, err := regexp.Compile("(?im)" + rule.Regex)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q pattern %d: %v", ErrInvalidTemplate, field.Key, pi, err)
			}
			if rule.Group > re.NumSubexp() {
				return nil, fmt.Errorf("%w: field %q pattern %d: group %d exceeds %d capture groups",
					ErrInvalidTemplate, field.Key, pi, rule.Group, re.NumSubexp())
			}
			if rule.Normalizer != "" && !KnownNormalizer(rule.Normalizer) {
				return nil, fmt.Errorf("%w: field %q pattern %d: unknown normalizer %q",
					ErrInvalidTemplate, field.Key, pi, rule.Normalizer)
			}
			rule.re = re
		}

		// Deterministic rule application order: priority desc, declaration
		// order as tie-break (SliceStable).
		sort.SliceStable(field.Patterns, func(i, j int) bool {
			return field.Patterns[i].Priority > field.Patterns[j].Priority
		})
	}

	return &tmpl, nil
}
