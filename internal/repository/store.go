package repository

import (
	"context"
	"log/slog"

	"github.com/Tanjim-Islam/legal-tabular-review/gen/ent"
)

// Store bundles the job and cell repositories into the persistence surface
// the orchestrator and review service consume.
type Store struct {
	JobRepository
	CellRepository
	Documents DocumentRepository
}

func NewStore(entc *ent.Client, logger *slog.Logger) *Store {
	return &Store{
		JobRepository:  NewJobRepository(entc, logger),
		CellRepository: NewCellRepository(entc, logger),
		Documents:      NewDocumentRepository(entc, logger),
	}
}

// Migrate creates or updates the schema. Called once at startup.
func Migrate(ctx context.Context, entc *ent.Client, logger *slog.Logger) error {
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		return err
	}
	logger.Info("schema migration complete")
	return nil
}
