package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/db/ent/schema/utils"
)

type Cell struct{ ent.Schema }

func (Cell) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cells"},
	}
}

func (Cell) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("job_id", uuid.UUID{}),
		field.String("document_id").NotEmpty(),
		field.String("document_identifier").NotEmpty(),
		field.String("field_key").NotEmpty(),
		field.String("field_label").NotEmpty(),
		field.String("field_type").NotEmpty(),
		field.String("value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// Set once at creation, never mutated by review actions.
		field.String("value_raw").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("value_normalized").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("confidence").
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}),
		field.JSON("confidence_reasons", []string{}),
		field.String("review_state").NotEmpty().
			Validate(utils.EnumValidator(constants.ReviewStates...)),
		field.JSON("citation", json.RawMessage{}).Optional(),
		// Canonical position within the job: field declaration order, then
		// document ingestion order.
		field.Int("ordinal"),
		// Optimistic concurrency token for review actions.
		field.Int("version").Default(1),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Cell) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY cells -> ONE job (FK: cells.job_id)
		edge.From("job", ReviewJob.Type).
			Ref("cells").
			Field("job_id").
			Required().
			Unique(),
		// MANY cells -> ONE document (FK: cells.document_id)
		edge.From("document", Document.Type).
			Ref("cells").
			Field("document_id").
			Required().
			Unique(),
		// ONE cell -> MANY audit entries
		edge.To("audit_entries", AuditEntry.Type),
	}
}

func (Cell) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "document_id", "field_key").Unique(),
		index.Fields("job_id", "ordinal"),
		index.Fields("job_id", "review_state"),
	}
}
