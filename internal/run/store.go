package run

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
)

// DocumentSource supplies the documents a job runs over, in ingestion order.
// Ingestion owns document identity and bytes; the orchestrator never touches
// the filesystem directly.
type DocumentSource interface {
	List(ctx context.Context) ([]entity.Document, error)
	Read(ctx context.Context, doc entity.Document) ([]byte, error)
}

// Store is the job-side persistence contract. SaveCells receives cells in
// canonical order (field declaration order, then document ingestion order)
// and implementations must preserve that order on ListCells.
type Store interface {
	CreateJob(ctx context.Context, job *entity.Job) error
	UpdateJob(ctx context.Context, job *entity.Job) error
	GetJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error)
	SaveCells(ctx context.Context, cells []*entity.Cell) error
	ListCells(ctx context.Context, jobID uuid.UUID) ([]*entity.Cell, error)
}

// MemStore keeps jobs and cells in memory, sharing cell state with a
// review.MemStore so review actions and job results see the same cells.
// Used by the one-shot CLI and tests.
type MemStore struct {
	cells *review.MemStore

	mu       sync.Mutex
	jobs     map[uuid.UUID]*entity.Job
	jobCells map[uuid.UUID][]uuid.UUID
}

func NewMemStore(cells *review.MemStore) *MemStore {
	return &MemStore{
		cells:    cells,
		jobs:     make(map[uuid.UUID]*entity.Job),
		jobCells: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Cells exposes the shared review store for wiring the review service.
func (m *MemStore) Cells() *review.MemStore {
	return m.cells
}

func (m *MemStore) CreateJob(_ context.Context, job *entity.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := *job
	m.jobs[j.ID] = &j
	return nil
}

func (m *MemStore) UpdateJob(_ context.Context, job *entity.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[job.ID]; !ok {
		return common.NewAppError("NOT_FOUND",
			fmt.Sprintf("job %s not found", job.ID), common.ErrNotFound)
	}
	j := *job
	m.jobs[j.ID] = &j
	return nil
}

func (m *MemStore) GetJob(_ context.Context, jobID uuid.UUID) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND",
			fmt.Sprintf("job %s not found", jobID), common.ErrNotFound)
	}
	j := *job
	return &j, nil
}

func (m *MemStore) SaveCells(_ context.Context, cells []*entity.Cell) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cell := range cells {
		m.cells.PutCell(cell)
		m.jobCells[cell.JobID] = append(m.jobCells[cell.JobID], cell.ID)
	}
	return nil
}

func (m *MemStore) ListCells(ctx context.Context, jobID uuid.UUID) ([]*entity.Cell, error) {
	m.mu.Lock()
	ids := append([]uuid.UUID(nil), m.jobCells[jobID]...)
	m.mu.Unlock()

	out := make([]*entity.Cell, 0, len(ids))
	for _, id := range ids {
		cell, err := m.cells.GetCell(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, cell)
	}
	return out, nil
}
