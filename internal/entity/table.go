package entity

// DocumentRef identifies a document column in the review table.
type DocumentRef struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

// FieldRef identifies a field row in the review table.
type FieldRef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// TableRow groups one field's cells across all documents, in document
// ingestion order.
type TableRow struct {
	FieldKey   string  `json:"field_key"`
	FieldLabel string  `json:"field_label"`
	FieldType  string  `json:"field_type"`
	Cells      []*Cell `json:"cells"`
}

// TablePayload is the canonical result shape for a job: fields in template
// declaration order, documents in ingestion order, one row per field.
type TablePayload struct {
	Job       *Job          `json:"job"`
	Documents []DocumentRef `json:"documents"`
	Fields    []FieldRef    `json:"fields"`
	Rows      []TableRow    `json:"rows"`
}
