// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImportJobsColumns holds the columns for the "import_jobs" table.
	ImportJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "supplier", Type: field.TypeString, Default: "generic"},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "total_value", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "shop_id", Type: field.TypeUUID},
	}
	// ImportJobsTable holds the schema information for the "import_jobs" table.
	ImportJobsTable = &schema.Table{
		Name:       "import_jobs",
		Columns:    ImportJobsColumns,
		PrimaryKey: []*schema.Column{ImportJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_jobs_shops_jobs",
				Columns:    []*schema.Column{ImportJobsColumns[9]},
				RefColumns: []*schema.Column{ShopsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sku", Type: field.TypeString},
		{Name: "sku_lower", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "Other"},
		{Name: "key_type", Type: field.TypeString, Default: "Other"},
		{Name: "make", Type: field.TypeString, Default: "n/a"},
		{Name: "model", Type: field.TypeString, Default: "n/a"},
		{Name: "cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "quantity", Type: field.TypeInt, Default: 0},
		{Name: "low_stock_threshold", Type: field.TypeInt, Default: 2},
		{Name: "supplier", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "shop_id", Type: field.TypeUUID},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inventory_items_shops_items",
				Columns:    []*schema.Column{InventoryItemsColumns[14]},
				RefColumns: []*schema.Column{ShopsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inventoryitem_shop_id_sku_lower",
				Unique:  true,
				Columns: []*schema.Column{InventoryItemsColumns[14], InventoryItemsColumns[2]},
			},
		},
	}
	// ShopsColumns holds the columns for the "shops" table.
	ShopsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ShopsTable holds the schema information for the "shops" table.
	ShopsTable = &schema.Table{
		Name:       "shops",
		Columns:    ShopsColumns,
		PrimaryKey: []*schema.Column{ShopsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImportJobsTable,
		InventoryItemsTable,
		ShopsTable,
	}
)

func init() {
	ImportJobsTable.ForeignKeys[0].RefTable = ShopsTable
	ImportJobsTable.Annotation = &entsql.Annotation{
		Table: "import_jobs",
	}
	InventoryItemsTable.ForeignKeys[0].RefTable = ShopsTable
	InventoryItemsTable.Annotation = &entsql.Annotation{
		Table: "inventory_items",
	}
	ShopsTable.Annotation = &entsql.Annotation{
		Table: "shops",
	}
}
