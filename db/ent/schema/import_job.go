package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/lockshop/invoicer/db/ent/schema/utils"
)

type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_jobs"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("shop_id", uuid.UUID{}),
		field.String("supplier").Default("generic"),
		field.String("format").
			Validate(utils.EnumValidator("PDF", "TXT")),
		field.String("status").
			Validate(utils.EnumValidator("PARSED", "EMPTY", "EXTRACT_FAILED")),
		field.Int("item_count").Default(0).NonNegative(),
		field.Float("total_value").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ImportJob) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE shop (FK: import_jobs.shop_id)
		edge.From("shop", Shop.Type).
			Ref("jobs").
			Field("shop_id").
			Required().
			Unique(),
	}
}
