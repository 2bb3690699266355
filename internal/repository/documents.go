package repository

import (
	"context"
	"log/slog"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/gen/ent"
	entdoc "github.com/Tanjim-Islam/legal-tabular-review/gen/ent/document"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

type DocumentRepository interface {
	// UpsertAll records the current inventory. Existing rows keep their
	// first_seen_at; path and identifier refresh on conflict.
	UpsertAll(ctx context.Context, docs []entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	List(ctx context.Context) ([]entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) UpsertAll(ctx context.Context, docs []entity.Document) error {
	for _, doc := range docs {
		err := r.ent.Document.Create().
			SetID(doc.ID).
			SetIdentifier(doc.Identifier).
			SetPath(doc.Path).
			SetSource(doc.Source).
			SetFormat(string(doc.Format)).
			OnConflictColumns(entdoc.FieldID).
			UpdateIdentifier().
			UpdatePath().
			Exec(ctx)
		if err != nil {
			r.logger.Error("document upsert failed", "document_id", doc.ID, "error", err)
			return err
		}
	}
	r.logger.Debug("document inventory persisted", "count", len(docs))
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := toEntityDocument(row)
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context) ([]entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Order(ent.Asc(entdoc.FieldSource), ent.Asc(entdoc.FieldPath)).
		All(ctx)
	if err != nil {
		r.logger.Error("document list failed", "error", err)
		return nil, err
	}
	out := make([]entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toEntityDocument(row)
	}
	return out, nil
}

func toEntityDocument(row *ent.Document) entity.Document {
	return entity.Document{
		ID:         row.ID,
		Identifier: row.Identifier,
		Path:       row.Path,
		Source:     row.Source,
		Format:     constants.DocumentFormat(row.Format),
	}
}
