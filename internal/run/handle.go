package run

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// Handle tracks one submitted job. Wait blocks until the job is terminal;
// pollers can ignore the handle and use Orchestrator.Status instead.
type Handle struct {
	JobID uuid.UUID

	done chan struct{}
	mu   sync.Mutex
	job  *entity.Job
}

func newHandle(jobID uuid.UUID) *Handle {
	return &Handle{JobID: jobID, done: make(chan struct{})}
}

func (h *Handle) resolve(job *entity.Job) {
	h.mu.Lock()
	j := *job
	h.job = &j
	h.mu.Unlock()
	close(h.done)
}

// Wait suspends the caller until the job reaches a terminal state or the
// context is cancelled. Cancellation abandons the wait, not the job.
func (h *Handle) Wait(ctx context.Context) (*entity.Job, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-h.done:
		h.mu.Lock()
		defer h.mu.Unlock()
		j := *h.job
		return &j, nil
	}
}
