package run

import (
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// BuildTable groups a job's cells into the canonical result shape: one row
// per field, one column per document. Cells arrive in canonical order (field
// declaration order, then document ingestion order), which is where the
// field and document orderings are recovered from.
func BuildTable(job *entity.Job, cells []*entity.Cell) *entity.TablePayload {
	payload := &entity.TablePayload{
		Job:       job,
		Documents: []entity.DocumentRef{},
		Fields:    []entity.FieldRef{},
		Rows:      []entity.TableRow{},
	}

	seenDocs := map[string]int{}
	seenFields := map[string]int{}
	for _, cell := range cells {
		if _, ok := seenFields[cell.FieldKey]; !ok {
			seenFields[cell.FieldKey] = len(payload.Fields)
			payload.Fields = append(payload.Fields, entity.FieldRef{
				Key:   cell.FieldKey,
				Label: cell.FieldLabel,
				Type:  cell.FieldType,
			})
		}
		if _, ok := seenDocs[cell.DocumentID]; !ok {
			seenDocs[cell.DocumentID] = len(payload.Documents)
			payload.Documents = append(payload.Documents, entity.DocumentRef{
				ID:         cell.DocumentID,
				Identifier: cell.DocumentIdentifier,
			})
		}
	}

	rows := make([]entity.TableRow, len(payload.Fields))
	for i, f := range payload.Fields {
		rows[i] = entity.TableRow{
			FieldKey:   f.Key,
			FieldLabel: f.Label,
			FieldType:  f.Type,
			Cells:      make([]*entity.Cell, len(payload.Documents)),
		}
	}
	for _, cell := range cells {
		fi := seenFields[cell.FieldKey]
		di := seenDocs[cell.DocumentID]
		rows[fi].Cells[di] = cell
	}
	payload.Rows = rows
	return payload
}
