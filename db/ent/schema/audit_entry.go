package schema

import (
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

// AuditEntry rows are append-only: no update or delete path exists in the
// repositories, and every field is immutable at the schema level.
type AuditEntry struct{ ent.Schema }

func (AuditEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_logs"},
	}
}

func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("cell_id", uuid.UUID{}).Immutable(),
		// Monotonic per cell, no gaps; assigned under the review write lock.
		field.Int("seq").Immutable(),
		field.String("actor").NotEmpty().Immutable(),
		field.String("action").NotEmpty().Immutable().
			Validate(utils.EnumValidator("confirm", "reject", "manual_edit")),
		field.String("reason").Optional().Nillable().Immutable(),
		field.String("before_value").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("after_value").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("before_state").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.ReviewStates...)),
		field.String("after_state").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.ReviewStates...)),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (AuditEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cell", Cell.Type).
			Ref("audit_entries").
			Field("cell_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cell_id", "seq").Unique(),
	}
}
