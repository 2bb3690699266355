package review

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/extract"
)

func strptr(s string) *string { return &s }

func stateptr(s constants.ReviewState) *constants.ReviewState { return &s }

func seedCell(t *testing.T, store *MemStore, state constants.ReviewState, value *string) *entity.Cell {
	t.Helper()
	now := time.Now().UTC()
	cell := &entity.Cell{
		ID:                 uuid.New(),
		JobID:              uuid.New(),
		DocumentID:         "doc1",
		DocumentIdentifier: "doc1.pdf",
		FieldKey:           "governing_law",
		FieldLabel:         "Governing Law",
		FieldType:          "text",
		Value:              value,
		ValueRaw:           value,
		Confidence:         0.9,
		ConfidenceReasons:  []string{string(constants.ReasonSingleMatch)},
		ReviewState:        state,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	store.PutCell(cell)
	return cell
}

func newTestService() (*Service, *MemStore) {
	store := NewMemStore()
	return NewService(store, slog.New(slog.DiscardHandler)), store
}

func TestApply_Confirm(t *testing.T) {
	svc, store := newTestService()
	cell := seedCell(t, store, constants.StateExtracted, strptr("New York"))

	updated, err := svc.Apply(context.Background(), cell.ID, Action{
		ReviewState:     stateptr(constants.StateConfirmed),
		Actor:           "reviewer@firm.example",
		ExpectedVersion: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StateConfirmed, updated.ReviewState)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "New York", *updated.Value)
	assert.Equal(t, "New York", *updated.ValueRaw)
}

func TestApply_ManualEditPreservesRaw(t *testing.T) {
	svc, store := newTestService()
	cell := seedCell(t, store, constants.StateExtracted, strptr("New York"))

	updated, err := svc.Apply(context.Background(), cell.ID, Action{
		ManualValue:     strptr("Delaware"),
		Reason:          strptr("governing law amended in rider"),
		Actor:           "reviewer@firm.example",
		ExpectedVersion: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StateManualUpdated, updated.ReviewState)
	assert.Equal(t, "Delaware", *updated.Value)
	// The original extraction stays inspectable.
	assert.Equal(t, "New York", *updated.ValueRaw)
}

func TestApply_ManualEditFromMissingData(t *testing.T) {
	svc, store := newTestService()
	cell := seedCell(t, store, constants.StateMissingData, nil)

	updated, err := svc.Apply(context.Background(), cell.ID, Action{
		ManualValue:     strptr("California"),
		Actor:           "reviewer@firm.example",
		ExpectedVersion: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StateManualUpdated, updated.ReviewState)
	assert.Equal(t, "California", *updated.Value)
	assert.Nil(t, updated.ValueRaw)
}

func TestApply_MissingDataCanBeConfirmedOrRejected(t *testing.T) {
	svc, store := newTestService()

	for _, target := range []constants.ReviewState{constants.StateConfirmed, constants.StateRejected} {
		cell := seedCell(t, store, constants.StateMissingData, nil)
		updated, err := svc.Apply(context.Background(), cell.ID, Action{
			ReviewState:     stateptr(target),
			Actor:           "reviewer@firm.example",
			ExpectedVersion: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, target, updated.ReviewState)
	}
}

func TestApply_StaleVersionRejected(t *testing.T) {
	svc, store := newTestService()
	cell := seedCell(t, store, constants.StateExtracted, strptr("New York"))

	_, err := svc.Apply(context.Background(), cell.ID, Action{
		ReviewState:     stateptr(constants.StateConfirmed),
		Actor:           "a",
		ExpectedVersion: 1,
	})
	require.NoError(t, err)

	// Second writer still holds version 1.
	_, err = svc.Apply(context.Background(), cell.ID, Action{
		ReviewState:     stateptr(constants.StateRejected),
		Actor:           "b",
		ExpectedVersion: 1,
	})
	require.ErrorIs(t, err, ErrVersionConflict)

	// Re-read and retry succeeds.
	current, err := store.GetCell(context.Background(), cell.ID)
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), cell.ID, Action{
		ReviewState:     stateptr(constants.StateRejected),
		Actor:           "b",
		ExpectedVersion: current.Version,
	})
	require.NoError(t, err)
}

func TestApply_InvalidActions(t *testing.T) {
	svc, store := newTestService()
	cell := seedCell(t, store, constants.StateExtracted, strptr("v"))

	cases := map[string]Action{
		"neither set": {Actor: "a", ExpectedVersion: 1},
		"both set": {
			ReviewState: stateptr(constants.StateConfirmed),
			ManualValue: strptr("x"), Actor: "a", ExpectedVersion: 1,
		},
		"no actor": {ReviewState: stateptr(constants.StateConfirmed), ExpectedVersion: 1},
		"direct extracted": {
			ReviewState: stateptr(constants.StateExtracted), Actor: "a", ExpectedVersion: 1,
		},
		"direct missing_data": {
			ReviewState: stateptr(constants.StateMissingData), Actor: "a", ExpectedVersion: 1,
		},
		"direct manual_updated": {
			ReviewState: stateptr(constants.StateManualUpdated), Actor: "a", ExpectedVersion: 1,
		},
	}
	for name, action := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Apply(context.Background(), cell.ID, action)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}

	// Invalid input never mutates state.
	current, err := store.GetCell(context.Background(), cell.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Version)
	assert.Equal(t, constants.StateExtracted, current.ReviewState)
}

func TestApply_UnknownCell(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Apply(context.Background(), uuid.New(), Action{
		ReviewState:     stateptr(constants.StateConfirmed),
		Actor:           "a",
		ExpectedVersion: 1,
	})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestAudit_SequenceIsGaplessAndSnapshotsMatch(t *testing.T) {
	svc, store := newTestService()
	cell := seedCell(t, store, constants.StateExtracted, strptr("New York"))

	ctx := context.Background()
	steps := []Action{
		{ReviewState: stateptr(constants.StateRejected), Actor: "a", ExpectedVersion: 1},
		{ManualValue: strptr("Delaware"), Actor: "b", ExpectedVersion: 2},
		{ReviewState: stateptr(constants.StateConfirmed), Actor: "c", ExpectedVersion: 3},
	}
	for _, step := range steps {
		_, err := svc.Apply(ctx, cell.ID, step)
		require.NoError(t, err)
	}

	entries, err := svc.Audit(ctx, cell.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Seq)
		assert.Equal(t, cell.ID, e.CellID)
	}

	// Snapshots chain: each after matches the next before.
	assert.Equal(t, constants.StateExtracted, entries[0].BeforeState)
	assert.Equal(t, constants.StateRejected, entries[0].AfterState)
	assert.Equal(t, entries[0].AfterState, entries[1].BeforeState)
	assert.Equal(t, entries[1].AfterState, entries[2].BeforeState)

	assert.Equal(t, ActionReject, entries[0].Action)
	assert.Equal(t, ActionManualEdit, entries[1].Action)
	assert.Equal(t, ActionConfirm, entries[2].Action)

	assert.Equal(t, "New York", *entries[1].BeforeValue)
	assert.Equal(t, "Delaware", *entries[1].AfterValue)
}

func TestNewCell_FromExtraction(t *testing.T) {
	jobID := uuid.New()
	doc := entity.Document{ID: "doc1", Identifier: "doc1.pdf"}
	now := time.Now().UTC()

	raw := "January 1, 2023"
	norm := "2023-01-01"
	result := extract.FieldResult{
		FieldKey:        "effective_date_term",
		FieldLabel:      "Effective Date / Term",
		FieldType:       "composite",
		Value:           &norm,
		ValueRaw:        &raw,
		ValueNormalized: &norm,
		Confidence:      0.9,
		Reasons:         []constants.ReasonCode{constants.ReasonSingleMatch},
		ReviewState:     constants.StateExtracted,
		Citation:        &entity.Citation{DocumentID: "doc1", Snippet: "…"},
	}

	cell := NewCell(jobID, doc, result, now)
	assert.NotEqual(t, uuid.Nil, cell.ID)
	assert.Equal(t, jobID, cell.JobID)
	assert.Equal(t, "doc1", cell.DocumentID)
	assert.Equal(t, raw, *cell.ValueRaw)
	assert.Equal(t, []string{"SINGLE_MATCH"}, cell.ConfidenceReasons)
	assert.Equal(t, 1, cell.Version)
	assert.NotNil(t, cell.Citation)
}

func TestNewParseErrorCell(t *testing.T) {
	cell := NewParseErrorCell(uuid.New(), entity.Document{ID: "d", Identifier: "d.pdf"},
		"governing_law", "Governing Law", "text", time.Now().UTC())

	assert.Equal(t, constants.StateMissingData, cell.ReviewState)
	assert.Zero(t, cell.Confidence)
	assert.Equal(t, []string{"PARSE_ERROR"}, cell.ConfidenceReasons)
	assert.Nil(t, cell.Citation)
	assert.Nil(t, cell.Value)
}
