// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lockshop/invoicer/db/ent/schema"
	"github.com/lockshop/invoicer/gen/ent/importjob"
	"github.com/lockshop/invoicer/gen/ent/inventoryitem"
	"github.com/lockshop/invoicer/gen/ent/shop"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescSupplier is the schema descriptor for supplier field.
	importjobDescSupplier := importjobFields[2].Descriptor()
	// importjob.DefaultSupplier holds the default value on creation for the supplier field.
	importjob.DefaultSupplier = importjobDescSupplier.Default.(string)
	// importjobDescFormat is the schema descriptor for format field.
	importjobDescFormat := importjobFields[3].Descriptor()
	// importjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	importjob.FormatValidator = importjobDescFormat.Validators[0].(func(string) error)
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[4].Descriptor()
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = importjobDescStatus.Validators[0].(func(string) error)
	// importjobDescItemCount is the schema descriptor for item_count field.
	importjobDescItemCount := importjobFields[5].Descriptor()
	// importjob.DefaultItemCount holds the default value on creation for the item_count field.
	importjob.DefaultItemCount = importjobDescItemCount.Default.(int)
	// importjob.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	importjob.ItemCountValidator = importjobDescItemCount.Validators[0].(func(int) error)
	// importjobDescTotalValue is the schema descriptor for total_value field.
	importjobDescTotalValue := importjobFields[6].Descriptor()
	// importjob.DefaultTotalValue holds the default value on creation for the total_value field.
	importjob.DefaultTotalValue = importjobDescTotalValue.Default.(float64)
	// importjobDescStartedAt is the schema descriptor for started_at field.
	importjobDescStartedAt := importjobFields[8].Descriptor()
	// importjob.DefaultStartedAt holds the default value on creation for the started_at field.
	importjob.DefaultStartedAt = importjobDescStartedAt.Default.(func() time.Time)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescSku is the schema descriptor for sku field.
	inventoryitemDescSku := inventoryitemFields[2].Descriptor()
	// inventoryitem.SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	inventoryitem.SkuValidator = inventoryitemDescSku.Validators[0].(func(string) error)
	// inventoryitemDescSkuLower is the schema descriptor for sku_lower field.
	inventoryitemDescSkuLower := inventoryitemFields[3].Descriptor()
	// inventoryitem.SkuLowerValidator is a validator for the "sku_lower" field. It is called by the builders before save.
	inventoryitem.SkuLowerValidator = inventoryitemDescSkuLower.Validators[0].(func(string) error)
	// inventoryitemDescName is the schema descriptor for name field.
	inventoryitemDescName := inventoryitemFields[4].Descriptor()
	// inventoryitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	inventoryitem.NameValidator = inventoryitemDescName.Validators[0].(func(string) error)
	// inventoryitemDescCategory is the schema descriptor for category field.
	inventoryitemDescCategory := inventoryitemFields[5].Descriptor()
	// inventoryitem.DefaultCategory holds the default value on creation for the category field.
	inventoryitem.DefaultCategory = inventoryitemDescCategory.Default.(string)
	// inventoryitemDescKeyType is the schema descriptor for key_type field.
	inventoryitemDescKeyType := inventoryitemFields[6].Descriptor()
	// inventoryitem.DefaultKeyType holds the default value on creation for the key_type field.
	inventoryitem.DefaultKeyType = inventoryitemDescKeyType.Default.(string)
	// inventoryitemDescMake is the schema descriptor for make field.
	inventoryitemDescMake := inventoryitemFields[7].Descriptor()
	// inventoryitem.DefaultMake holds the default value on creation for the make field.
	inventoryitem.DefaultMake = inventoryitemDescMake.Default.(string)
	// inventoryitemDescModel is the schema descriptor for model field.
	inventoryitemDescModel := inventoryitemFields[8].Descriptor()
	// inventoryitem.DefaultModel holds the default value on creation for the model field.
	inventoryitem.DefaultModel = inventoryitemDescModel.Default.(string)
	// inventoryitemDescCost is the schema descriptor for cost field.
	inventoryitemDescCost := inventoryitemFields[9].Descriptor()
	// inventoryitem.DefaultCost holds the default value on creation for the cost field.
	inventoryitem.DefaultCost = inventoryitemDescCost.Default.(float64)
	// inventoryitemDescQuantity is the schema descriptor for quantity field.
	inventoryitemDescQuantity := inventoryitemFields[10].Descriptor()
	// inventoryitem.DefaultQuantity holds the default value on creation for the quantity field.
	inventoryitem.DefaultQuantity = inventoryitemDescQuantity.Default.(int)
	// inventoryitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	inventoryitem.QuantityValidator = inventoryitemDescQuantity.Validators[0].(func(int) error)
	// inventoryitemDescLowStockThreshold is the schema descriptor for low_stock_threshold field.
	inventoryitemDescLowStockThreshold := inventoryitemFields[11].Descriptor()
	// inventoryitem.DefaultLowStockThreshold holds the default value on creation for the low_stock_threshold field.
	inventoryitem.DefaultLowStockThreshold = inventoryitemDescLowStockThreshold.Default.(int)
	// inventoryitem.LowStockThresholdValidator is a validator for the "low_stock_threshold" field. It is called by the builders before save.
	inventoryitem.LowStockThresholdValidator = inventoryitemDescLowStockThreshold.Validators[0].(func(int) error)
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemFields[13].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemFields[14].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescID is the schema descriptor for id field.
	inventoryitemDescID := inventoryitemFields[0].Descriptor()
	// inventoryitem.DefaultID holds the default value on creation for the id field.
	inventoryitem.DefaultID = inventoryitemDescID.Default.(func() uuid.UUID)
	shopFields := schema.Shop{}.Fields()
	_ = shopFields
	// shopDescName is the schema descriptor for name field.
	shopDescName := shopFields[1].Descriptor()
	// shop.NameValidator is a validator for the "name" field. It is called by the builders before save.
	shop.NameValidator = shopDescName.Validators[0].(func(string) error)
	// shopDescCreatedAt is the schema descriptor for created_at field.
	shopDescCreatedAt := shopFields[2].Descriptor()
	// shop.DefaultCreatedAt holds the default value on creation for the created_at field.
	shop.DefaultCreatedAt = shopDescCreatedAt.Default.(func() time.Time)
	// shopDescUpdatedAt is the schema descriptor for updated_at field.
	shopDescUpdatedAt := shopFields[3].Descriptor()
	// shop.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shop.DefaultUpdatedAt = shopDescUpdatedAt.Default.(func() time.Time)
	// shop.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shop.UpdateDefaultUpdatedAt = shopDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shopDescID is the schema descriptor for id field.
	shopDescID := shopFields[0].Descriptor()
	// shop.DefaultID holds the default value on creation for the id field.
	shop.DefaultID = shopDescID.Default.(func() uuid.UUID)
}
