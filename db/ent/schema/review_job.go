package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/db/ent/schema/utils"
)

type ReviewJob struct{ ent.Schema }

func (ReviewJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "review_jobs"},
	}
}

func (ReviewJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("mode").NotEmpty().
			Validate(utils.EnumValidator(string(constants.ModeQuick), string(constants.ModeFull))),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("template_path").Optional(),
		field.String("error_message").Optional().Nillable(),
		// Per-document failures recorded without failing the job.
		field.JSON("document_errors", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ReviewJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY cells
		edge.To("cells", Cell.Type),
	}
}

func (ReviewJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
