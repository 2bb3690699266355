package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		// Content-addressed id derived from the source path.
		field.String("id").NotEmpty().Immutable(),
		field.String("identifier").NotEmpty(),
		field.String("path").NotEmpty(),
		field.String("source").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentFormats...)),
		field.Time("first_seen_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY cells
		edge.To("cells", Cell.Type),
	}
}
