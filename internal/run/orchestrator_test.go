package run

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/segment"
)

type fakeSource struct {
	docs  []entity.Document
	bytes map[string][]byte
}

func (f *fakeSource) List(context.Context) ([]entity.Document, error) {
	return f.docs, nil
}

func (f *fakeSource) Read(_ context.Context, doc entity.Document) ([]byte, error) {
	raw, ok := f.bytes[doc.ID]
	if !ok {
		return nil, fmt.Errorf("unknown document %s", doc.ID)
	}
	return raw, nil
}

func htmlDoc(body string) []byte {
	return []byte("<html><body><p>" + body + "</p></body></html>")
}

func addDoc(src *fakeSource, id string, format constants.DocumentFormat, raw []byte) {
	src.docs = append(src.docs, entity.Document{
		ID:         id,
		Identifier: id + ".src",
		Format:     format,
	})
	src.bytes[id] = raw
}

func writeTemplateFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const twoFieldTemplate = `{
  "template_id": "t",
  "fields": [
    {
      "key": "effective_date_term",
      "label": "Effective Date / Term",
      "type": "text",
      "patterns": [
        {"regex": "effective as of ([A-Z][a-z]+ \\d{1,2}, \\d{4})", "priority": 2, "group": 1},
        {"regex": "expires ([A-Z][a-z]+ \\d{1,2}, \\d{4})", "priority": 1, "group": 1}
      ]
    },
    {
      "key": "governing_law",
      "label": "Governing Law",
      "type": "text",
      "patterns": [
        {"regex": "governed by the laws of ([A-Z][\\w ]+?)[.,;]", "priority": 1, "group": 1}
      ]
    }
  ]
}`

func newFixture(t *testing.T, src *fakeSource) (*Orchestrator, *MemStore) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	store := NewMemStore(review.NewMemStore())
	orch := NewOrchestrator(src, store, segment.New(logger), logger, WithWorkers(2))
	return orch, store
}

func waitForJob(t *testing.T, h *Handle) *entity.Job {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	job, err := h.Wait(ctx)
	require.NoError(t, err)
	return job
}

func TestJob_FullLifecycle(t *testing.T) {
	src := &fakeSource{bytes: map[string][]byte{}}
	addDoc(src, "good", constants.FormatHTML,
		htmlDoc("This Agreement is effective as of January 1, 2023 and is governed by the laws of New York."))
	addDoc(src, "broken", constants.FormatPDF, []byte("not a pdf at all"))

	orch, store := newFixture(t, src)

	handle, err := orch.Submit(context.Background(), constants.ModeFull, writeTemplateFile(t, twoFieldTemplate))
	require.NoError(t, err)

	job := waitForJob(t, handle)
	assert.Equal(t, constants.JobStatusSucceeded, job.Status)
	assert.NotNil(t, job.StartedAt)
	assert.NotNil(t, job.FinishedAt)

	// The unparseable document is recorded, not fatal.
	require.Len(t, job.DocumentErrors, 1)
	assert.Equal(t, "broken", job.DocumentErrors[0].DocumentID)

	cells, err := store.ListCells(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, cells, 4) // 2 fields x 2 documents

	// Canonical order: field declaration order, then ingestion order.
	assert.Equal(t, "effective_date_term", cells[0].FieldKey)
	assert.Equal(t, "good", cells[0].DocumentID)
	assert.Equal(t, "effective_date_term", cells[1].FieldKey)
	assert.Equal(t, "broken", cells[1].DocumentID)
	assert.Equal(t, "governing_law", cells[2].FieldKey)

	// Scenario: single match on the top-priority rule.
	good := cells[0]
	require.NotNil(t, good.Value)
	assert.Equal(t, "January 1, 2023", *good.Value)
	assert.Equal(t, constants.StateExtracted, good.ReviewState)
	assert.Equal(t, []string{"SINGLE_MATCH"}, good.ConfidenceReasons)
	require.NotNil(t, good.Citation)
	assert.Contains(t, good.Citation.Snippet, "January 1, 2023")

	// The broken document degrades to MISSING_DATA with an explicit reason.
	broken := cells[1]
	assert.Equal(t, constants.StateMissingData, broken.ReviewState)
	assert.Zero(t, broken.Confidence)
	assert.Equal(t, []string{"PARSE_ERROR"}, broken.ConfidenceReasons)
	assert.Nil(t, broken.Citation)
}

func TestJob_TemplateFailureIsFatal(t *testing.T) {
	src := &fakeSource{bytes: map[string][]byte{}}
	addDoc(src, "doc", constants.FormatHTML, htmlDoc("anything"))

	orch, store := newFixture(t, src)
	handle, err := orch.Submit(context.Background(), constants.ModeFull,
		writeTemplateFile(t, `{"fields": []}`))
	require.NoError(t, err)

	job := waitForJob(t, handle)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "invalid template")

	cells, err := store.ListCells(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestJob_NoDocumentsIsFatal(t *testing.T) {
	orch, _ := newFixture(t, &fakeSource{bytes: map[string][]byte{}})
	handle, err := orch.Submit(context.Background(), constants.ModeFull, writeTemplateFile(t, twoFieldTemplate))
	require.NoError(t, err)

	job := waitForJob(t, handle)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "no documents")
}

func sevenFieldTemplate() string {
	fields := ""
	for i := 1; i <= 7; i++ {
		if i > 1 {
			fields += ","
		}
		fields += fmt.Sprintf(`{"key":"field_%d","label":"Field %d","type":"text",
			"patterns":[{"regex":"clause %d: (\\w+)","priority":1,"group":1}]}`, i, i, i)
	}
	return `{"fields":[` + fields + `]}`
}

func TestJob_QuickModeSlicesInputs(t *testing.T) {
	body := ""
	for i := 1; i <= 7; i++ {
		body += fmt.Sprintf("clause %d: value%d. ", i, i)
	}
	src := &fakeSource{bytes: map[string][]byte{}}
	addDoc(src, "first", constants.FormatHTML, htmlDoc(body))
	addDoc(src, "second", constants.FormatHTML, htmlDoc(body))

	orch, store := newFixture(t, src)
	handle, err := orch.Submit(context.Background(), constants.ModeQuick, writeTemplateFile(t, sevenFieldTemplate()))
	require.NoError(t, err)

	job := waitForJob(t, handle)
	require.Equal(t, constants.JobStatusSucceeded, job.Status)

	cells, err := store.ListCells(context.Background(), job.ID)
	require.NoError(t, err)
	// First document only, first 5 fields only.
	require.Len(t, cells, 5)
	for _, cell := range cells {
		assert.Equal(t, "first", cell.DocumentID)
	}
	assert.Equal(t, "field_1", cells[0].FieldKey)
	assert.Equal(t, "field_5", cells[4].FieldKey)
}

func TestJob_QuickCellsEqualFullCellsOnSharedSlice(t *testing.T) {
	body := ""
	for i := 1; i <= 7; i++ {
		body += fmt.Sprintf("clause %d: value%d. ", i, i)
	}
	src := &fakeSource{bytes: map[string][]byte{}}
	addDoc(src, "doc", constants.FormatHTML, htmlDoc(body))

	tmplPath := writeTemplateFile(t, sevenFieldTemplate())

	runMode := func(mode constants.JobMode) []*entity.Cell {
		orch, store := newFixture(t, src)
		handle, err := orch.Submit(context.Background(), mode, tmplPath)
		require.NoError(t, err)
		job := waitForJob(t, handle)
		require.Equal(t, constants.JobStatusSucceeded, job.Status)
		cells, err := store.ListCells(context.Background(), job.ID)
		require.NoError(t, err)
		return cells
	}

	quick := runMode(constants.ModeQuick)
	full := runMode(constants.ModeFull)
	require.Len(t, quick, 5)
	require.Len(t, full, 7)

	for i, qc := range quick {
		fc := full[i]
		assert.Equal(t, fc.FieldKey, qc.FieldKey)
		assert.Equal(t, *fc.Value, *qc.Value)
		assert.Equal(t, fc.Confidence, qc.Confidence)
		assert.Equal(t, fc.ConfidenceReasons, qc.ConfidenceReasons)
		assert.Equal(t, fc.Citation.Snippet, qc.Citation.Snippet)
		assert.Equal(t, fc.Citation.CharStart, qc.Citation.CharStart)
	}
}

func TestJob_Deterministic(t *testing.T) {
	src := &fakeSource{bytes: map[string][]byte{}}
	addDoc(src, "a", constants.FormatHTML,
		htmlDoc("This Agreement is effective as of January 1, 2023 and expires December 31, 2025. Governed by the laws of Delaware."))
	addDoc(src, "b", constants.FormatHTML,
		htmlDoc("No relevant clauses here."))

	tmplPath := writeTemplateFile(t, twoFieldTemplate)

	runOnce := func() []*entity.Cell {
		orch, store := newFixture(t, src)
		handle, err := orch.Submit(context.Background(), constants.ModeFull, tmplPath)
		require.NoError(t, err)
		job := waitForJob(t, handle)
		require.Equal(t, constants.JobStatusSucceeded, job.Status)
		cells, err := store.ListCells(context.Background(), job.ID)
		require.NoError(t, err)
		return cells
	}

	first := runOnce()
	second := runOnce()
	require.Equal(t, len(first), len(second))

	// Identical modulo ids and timestamps.
	for i := range first {
		a, b := first[i], second[i]
		assert.Equal(t, a.FieldKey, b.FieldKey)
		assert.Equal(t, a.DocumentID, b.DocumentID)
		assert.Equal(t, a.Value, b.Value)
		assert.Equal(t, a.ValueRaw, b.ValueRaw)
		assert.Equal(t, a.ValueNormalized, b.ValueNormalized)
		assert.Equal(t, a.Confidence, b.Confidence)
		assert.Equal(t, a.ConfidenceReasons, b.ConfidenceReasons)
		assert.Equal(t, a.ReviewState, b.ReviewState)
		assert.Equal(t, a.Citation, b.Citation)
	}

	// Confidence bounds hold for every cell.
	for _, cell := range first {
		assert.GreaterOrEqual(t, cell.Confidence, 0.0)
		assert.LessOrEqual(t, cell.Confidence, 1.0)
		if cell.Confidence == 0 {
			assert.Equal(t, constants.StateMissingData, cell.ReviewState)
		}
	}
}

func TestOrchestrator_StatusAndResult(t *testing.T) {
	src := &fakeSource{bytes: map[string][]byte{}}
	addDoc(src, "doc1", constants.FormatHTML,
		htmlDoc("effective as of January 1, 2023, governed by the laws of New York."))
	addDoc(src, "doc2", constants.FormatHTML, htmlDoc("nothing here"))

	orch, _ := newFixture(t, src)
	handle, err := orch.Submit(context.Background(), constants.ModeFull, writeTemplateFile(t, twoFieldTemplate))
	require.NoError(t, err)
	waitForJob(t, handle)

	job, err := orch.Status(context.Background(), handle.JobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusSucceeded, job.Status)

	table, err := orch.Result(context.Background(), handle.JobID)
	require.NoError(t, err)
	require.Len(t, table.Fields, 2)
	require.Len(t, table.Documents, 2)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "effective_date_term", table.Rows[0].FieldKey)
	assert.Equal(t, "doc1", table.Documents[0].ID)
	require.Len(t, table.Rows[0].Cells, 2)
	assert.Equal(t, "doc1", table.Rows[0].Cells[0].DocumentID)
	assert.Equal(t, "doc2", table.Rows[0].Cells[1].DocumentID)
	assert.Equal(t, constants.StateMissingData, table.Rows[0].Cells[1].ReviewState)
}
