// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// Shop is the predicate function for shop builders.
type Shop func(*sql.Selector)
