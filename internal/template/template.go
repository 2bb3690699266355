package template

import (
	"regexp"
)

// Field types. "composite" fields merge all non-empty capture groups of the
// primary match into one value, joined with " / " in group order.
const (
	TypeText      = "text"
	TypeDate      = "date"
	TypeCurrency  = "currency"
	TypeComposite = "composite"
)

// PatternRule is one prioritized regular expression for a field. Higher
// priority wins the primary-match tie-break. Group selects the capture group
// carrying the value (0 = whole match).
type PatternRule struct {
	Regex      string `json:"regex"`
	Priority   int    `json:"priority"`
	Group      int    `json:"group"`
	Normalizer string `json:"normalizer,omitempty"`

	re *regexp.Regexp
}

// Pattern returns the compiled expression. Only set after a successful Load.
func (r *PatternRule) Pattern() *regexp.Regexp {
	return r.re
}

// FieldDefinition is one field of the template. Patterns are kept sorted by
// descending priority after load, so rule application order is deterministic.
type FieldDefinition struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Type     string        `json:"type"`
	Patterns []PatternRule `json:"patterns"`
}

// MaxPriority returns the best priority among the field's rules.
func (f *FieldDefinition) MaxPriority() int {
	max := 0
	for _, p := range f.Patterns {
		if p.Priority > max {
			max = p.Priority
		}
	}
	return max
}

// Template is an immutable, validated field template. Swapping templates
// requires a new run; nothing mutates a loaded template.
type Template struct {
	TemplateID  string            `json:"template_id"`
	Description string            `json:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields"`
}

// Field looks a field up by key.
func (t *Template) Field(key string) (*FieldDefinition, bool) {
	for i := range t.Fields {
		if t.Fields[i].Key == key {
			return &t.Fields[i], true
		}
	}
	return nil, false
}
