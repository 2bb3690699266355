package review

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// MemStore is an in-memory Store used by the one-shot CLI and tests. A single
// mutex serializes all review writes, which also makes audit sequence
// assignment total per cell.
type MemStore struct {
	mu    sync.Mutex
	cells map[uuid.UUID]*entity.Cell
	audit map[uuid.UUID][]*entity.AuditEntry
}

func NewMemStore() *MemStore {
	return &MemStore{
		cells: make(map[uuid.UUID]*entity.Cell),
		audit: make(map[uuid.UUID][]*entity.AuditEntry),
	}
}

// PutCell registers a freshly materialized cell. Used at job completion.
func (m *MemStore) PutCell(cell *entity.Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *cell
	m.cells[c.ID] = &c
}

func (m *MemStore) GetCell(_ context.Context, cellID uuid.UUID) (*entity.Cell, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cell, ok := m.cells[cellID]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND",
			fmt.Sprintf("cell %s not found", cellID), common.ErrNotFound)
	}
	c := *cell
	return &c, nil
}

func (m *MemStore) SaveReview(_ context.Context, cell *entity.Cell, expectedVersion int, entry *entity.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.cells[cell.ID]
	if !ok {
		return common.NewAppError("NOT_FOUND",
			fmt.Sprintf("cell %s not found", cell.ID), common.ErrNotFound)
	}
	if current.Version != expectedVersion {
		return fmt.Errorf("%w: cell %s is at version %d, write expected %d",
			ErrVersionConflict, cell.ID, current.Version, expectedVersion)
	}

	entry.Seq = len(m.audit[cell.ID]) + 1

	c := *cell
	m.cells[cell.ID] = &c
	e := *entry
	m.audit[cell.ID] = append(m.audit[cell.ID], &e)
	return nil
}

func (m *MemStore) ListAudit(_ context.Context, cellID uuid.UUID) ([]*entity.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.audit[cellID]
	out := make([]*entity.AuditEntry, len(entries))
	for i, e := range entries {
		c := *e
		out[i] = &c
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}
