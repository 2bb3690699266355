package export

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

func sampleTable() *entity.TablePayload {
	value := "January 1, 2023"
	normalized := "2023-01-01"
	now := time.Now().UTC()

	extracted := &entity.Cell{
		ID:                 uuid.New(),
		JobID:              uuid.New(),
		DocumentID:         "doc1",
		DocumentIdentifier: "contract_a.pdf",
		FieldKey:           "effective_date_term",
		FieldLabel:         "Effective Date / Term",
		FieldType:          "date",
		Value:              &normalized,
		ValueRaw:           &value,
		ValueNormalized:    &normalized,
		Confidence:         0.9,
		ConfidenceReasons:  []string{"SINGLE_MATCH"},
		ReviewState:        constants.StateExtracted,
		Citation: &entity.Citation{
			DocumentID:         "doc1",
			DocumentIdentifier: "contract_a.pdf",
			LocationType:       entity.LocationPage,
			Location:           2,
			Snippet:            "effective as of January 1, 2023",
			CharStart:          10,
			CharEnd:            41,
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	missing := &entity.Cell{
		ID:                 uuid.New(),
		JobID:              extracted.JobID,
		DocumentID:         "doc2",
		DocumentIdentifier: "contract_b.html",
		FieldKey:           "effective_date_term",
		FieldLabel:         "Effective Date / Term",
		FieldType:          "date",
		Confidence:         0,
		ConfidenceReasons:  []string{"NO_MATCH"},
		ReviewState:        constants.StateMissingData,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return &entity.TablePayload{
		Job: &entity.Job{ID: extracted.JobID, Mode: constants.ModeFull, Status: constants.JobStatusSucceeded},
		Documents: []entity.DocumentRef{
			{ID: "doc1", Identifier: "contract_a.pdf"},
			{ID: "doc2", Identifier: "contract_b.html"},
		},
		Fields: []entity.FieldRef{{Key: "effective_date_term", Label: "Effective Date / Term", Type: "date"}},
		Rows: []entity.TableRow{{
			FieldKey:   "effective_date_term",
			FieldLabel: "Effective Date / Term",
			FieldType:  "date",
			Cells:      []*entity.Cell{extracted, missing},
		}},
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewService(slog.New(slog.DiscardHandler))

	out, err := svc.ExportCSV(sampleTable())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 cells

	assert.Equal(t, headers, records[0])

	first := records[1]
	assert.Equal(t, "effective_date_term", first[0])
	assert.Equal(t, "doc1", first[3])
	assert.Equal(t, "2023-01-01", first[5])
	assert.Equal(t, "January 1, 2023", first[6])
	assert.Equal(t, "0.9", first[8])
	assert.Equal(t, "SINGLE_MATCH", first[9])
	assert.Equal(t, "EXTRACTED", first[10])
	assert.Equal(t, "page", first[11])
	assert.Equal(t, "2", first[12])

	second := records[2]
	assert.Equal(t, "doc2", second[3])
	assert.Equal(t, "", second[5])
	assert.Equal(t, "MISSING_DATA", second[10])
	assert.Equal(t, "", second[11]) // no citation
}

func TestExportXLSX(t *testing.T) {
	svc := NewService(slog.New(slog.DiscardHandler))

	out, err := svc.ExportXLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Review")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "field_key", rows[0][0])
	assert.Equal(t, "effective_date_term", rows[1][0])
	assert.Equal(t, "contract_a.pdf", rows[1][4])
	assert.Equal(t, "EXTRACTED", rows[1][10])
	assert.Equal(t, "MISSING_DATA", rows[2][10])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "a", truncate("abc", 1))

	// A cut landing mid-rune backs off to the rune boundary.
	assert.Equal(t, "éé…", truncate("ééééé", 6))
	assert.Equal(t, "", truncate("é", 1))
	for _, n := range []int{2, 3, 4, 5, 6, 7} {
		assert.True(t, utf8.ValidString(truncate("§1 “quoted” té", n)), "n=%d", n)
	}
}
