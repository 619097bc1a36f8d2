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
)

type InventoryItem struct{ ent.Schema }

func (InventoryItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inventory_items"},
	}
}

func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("shop_id", uuid.UUID{}),
		field.String("sku").NotEmpty(),
		// sku_lower backs case-insensitive reconciliation lookups.
		field.String("sku_lower").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("category").Default("Other"),
		field.String("key_type").Default("Other"),
		field.String("make").Default("n/a"),
		field.String("model").Default("n/a"),
		field.Float("cost").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("quantity").Default(0).NonNegative(),
		field.Int("low_stock_threshold").Default(2).NonNegative(),
		field.String("supplier").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InventoryItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE shop (FK: inventory_items.shop_id)
		edge.From("shop", Shop.Type).
			Ref("items").
			Field("shop_id").
			Required().
			Unique(),
	}
}

func (InventoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("shop_id", "sku_lower").Unique(),
	}
}
