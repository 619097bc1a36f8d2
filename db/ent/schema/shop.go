package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Shop struct{ ent.Schema }

func (Shop) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "shops"},
	}
}

func (Shop) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Shop) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE shop -> MANY inventory items
		edge.To("items", InventoryItem.Type),
		// ONE shop -> MANY import jobs
		edge.To("jobs", ImportJob.Type),
	}
}
