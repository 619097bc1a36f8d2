// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lockshop/invoicer/gen/ent/inventoryitem"
	"github.com/lockshop/invoicer/gen/ent/predicate"
	"github.com/lockshop/invoicer/gen/ent/shop"
)

// InventoryItemUpdate is the builder for updating InventoryItem entities.
type InventoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryItemMutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdate) Where(ps ...predicate.InventoryItem) *InventoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShopID sets the "shop_id" field.
func (_u *InventoryItemUpdate) SetShopID(v uuid.UUID) *InventoryItemUpdate {
	_u.mutation.SetShopID(v)
	return _u
}

// SetNillableShopID sets the "shop_id" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableShopID(v *uuid.UUID) *InventoryItemUpdate {
	if v != nil {
		_u.SetShopID(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *InventoryItemUpdate) SetSku(v string) *InventoryItemUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableSku(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetSkuLower sets the "sku_lower" field.
func (_u *InventoryItemUpdate) SetSkuLower(v string) *InventoryItemUpdate {
	_u.mutation.SetSkuLower(v)
	return _u
}

// SetNillableSkuLower sets the "sku_lower" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableSkuLower(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetSkuLower(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdate) SetName(v string) *InventoryItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableName(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdate) SetCategory(v string) *InventoryItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableCategory(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetKeyType sets the "key_type" field.
func (_u *InventoryItemUpdate) SetKeyType(v string) *InventoryItemUpdate {
	_u.mutation.SetKeyType(v)
	return _u
}

// SetNillableKeyType sets the "key_type" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableKeyType(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetKeyType(*v)
	}
	return _u
}

// SetMake sets the "make" field.
func (_u *InventoryItemUpdate) SetMake(v string) *InventoryItemUpdate {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableMake(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *InventoryItemUpdate) SetModel(v string) *InventoryItemUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableModel(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *InventoryItemUpdate) SetCost(v float64) *InventoryItemUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableCost(v *float64) *InventoryItemUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *InventoryItemUpdate) AddCost(v float64) *InventoryItemUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdate) SetQuantity(v int) *InventoryItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableQuantity(v *int) *InventoryItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdate) AddQuantity(v int) *InventoryItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetLowStockThreshold sets the "low_stock_threshold" field.
func (_u *InventoryItemUpdate) SetLowStockThreshold(v int) *InventoryItemUpdate {
	_u.mutation.ResetLowStockThreshold()
	_u.mutation.SetLowStockThreshold(v)
	return _u
}

// SetNillableLowStockThreshold sets the "low_stock_threshold" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableLowStockThreshold(v *int) *InventoryItemUpdate {
	if v != nil {
		_u.SetLowStockThreshold(*v)
	}
	return _u
}

// AddLowStockThreshold adds value to the "low_stock_threshold" field.
func (_u *InventoryItemUpdate) AddLowStockThreshold(v int) *InventoryItemUpdate {
	_u.mutation.AddLowStockThreshold(v)
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *InventoryItemUpdate) SetSupplier(v string) *InventoryItemUpdate {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableSupplier(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *InventoryItemUpdate) ClearSupplier() *InventoryItemUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InventoryItemUpdate) SetCreatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableCreatedAt(v *time.Time) *InventoryItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdate) SetUpdatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetShop sets the "shop" edge to the Shop entity.
func (_u *InventoryItemUpdate) SetShop(v *Shop) *InventoryItemUpdate {
	return _u.SetShopID(v.ID)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdate) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearShop clears the "shop" edge to the Shop entity.
func (_u *InventoryItemUpdate) ClearShop() *InventoryItemUpdate {
	_u.mutation.ClearShop()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdate) check() error {
	if v, ok := _u.mutation.Sku(); ok {
		if err := inventoryitem.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkuLower(); ok {
		if err := inventoryitem.SkuLowerValidator(v); err != nil {
			return &ValidationError{Name: "sku_lower", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.sku_lower": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := inventoryitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LowStockThreshold(); ok {
		if err := inventoryitem.LowStockThresholdValidator(v); err != nil {
			return &ValidationError{Name: "low_stock_threshold", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.low_stock_threshold": %w`, err)}
		}
	}
	if _u.mutation.ShopCleared() && len(_u.mutation.ShopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InventoryItem.shop"`)
	}
	return nil
}

func (_u *InventoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(inventoryitem.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkuLower(); ok {
		_spec.SetField(inventoryitem.FieldSkuLower, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyType(); ok {
		_spec.SetField(inventoryitem.FieldKeyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(inventoryitem.FieldMake, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(inventoryitem.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(inventoryitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(inventoryitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowStockThreshold(); ok {
		_spec.SetField(inventoryitem.FieldLowStockThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowStockThreshold(); ok {
		_spec.AddField(inventoryitem.FieldLowStockThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(inventoryitem.FieldSupplier, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(inventoryitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ShopCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inventoryitem.ShopTable,
			Columns: []string{inventoryitem.ShopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shop.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inventoryitem.ShopTable,
			Columns: []string{inventoryitem.ShopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shop.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryItemUpdateOne is the builder for updating a single InventoryItem entity.
type InventoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryItemMutation
}

// SetShopID sets the "shop_id" field.
func (_u *InventoryItemUpdateOne) SetShopID(v uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.SetShopID(v)
	return _u
}

// SetNillableShopID sets the "shop_id" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableShopID(v *uuid.UUID) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetShopID(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *InventoryItemUpdateOne) SetSku(v string) *InventoryItemUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableSku(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetSkuLower sets the "sku_lower" field.
func (_u *InventoryItemUpdateOne) SetSkuLower(v string) *InventoryItemUpdateOne {
	_u.mutation.SetSkuLower(v)
	return _u
}

// SetNillableSkuLower sets the "sku_lower" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableSkuLower(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetSkuLower(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdateOne) SetName(v string) *InventoryItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableName(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdateOne) SetCategory(v string) *InventoryItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableCategory(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetKeyType sets the "key_type" field.
func (_u *InventoryItemUpdateOne) SetKeyType(v string) *InventoryItemUpdateOne {
	_u.mutation.SetKeyType(v)
	return _u
}

// SetNillableKeyType sets the "key_type" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableKeyType(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetKeyType(*v)
	}
	return _u
}

// SetMake sets the "make" field.
func (_u *InventoryItemUpdateOne) SetMake(v string) *InventoryItemUpdateOne {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableMake(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *InventoryItemUpdateOne) SetModel(v string) *InventoryItemUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableModel(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *InventoryItemUpdateOne) SetCost(v float64) *InventoryItemUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableCost(v *float64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *InventoryItemUpdateOne) AddCost(v float64) *InventoryItemUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdateOne) SetQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableQuantity(v *int) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdateOne) AddQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetLowStockThreshold sets the "low_stock_threshold" field.
func (_u *InventoryItemUpdateOne) SetLowStockThreshold(v int) *InventoryItemUpdateOne {
	_u.mutation.ResetLowStockThreshold()
	_u.mutation.SetLowStockThreshold(v)
	return _u
}

// SetNillableLowStockThreshold sets the "low_stock_threshold" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableLowStockThreshold(v *int) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetLowStockThreshold(*v)
	}
	return _u
}

// AddLowStockThreshold adds value to the "low_stock_threshold" field.
func (_u *InventoryItemUpdateOne) AddLowStockThreshold(v int) *InventoryItemUpdateOne {
	_u.mutation.AddLowStockThreshold(v)
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *InventoryItemUpdateOne) SetSupplier(v string) *InventoryItemUpdateOne {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableSupplier(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *InventoryItemUpdateOne) ClearSupplier() *InventoryItemUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InventoryItemUpdateOne) SetCreatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableCreatedAt(v *time.Time) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdateOne) SetUpdatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetShop sets the "shop" edge to the Shop entity.
func (_u *InventoryItemUpdateOne) SetShop(v *Shop) *InventoryItemUpdateOne {
	return _u.SetShopID(v.ID)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdateOne) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearShop clears the "shop" edge to the Shop entity.
func (_u *InventoryItemUpdateOne) ClearShop() *InventoryItemUpdateOne {
	_u.mutation.ClearShop()
	return _u
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdateOne) Where(ps ...predicate.InventoryItem) *InventoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryItemUpdateOne) Select(field string, fields ...string) *InventoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryItem entity.
func (_u *InventoryItemUpdateOne) Save(ctx context.Context) (*InventoryItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) SaveX(ctx context.Context) *InventoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.Sku(); ok {
		if err := inventoryitem.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkuLower(); ok {
		if err := inventoryitem.SkuLowerValidator(v); err != nil {
			return &ValidationError{Name: "sku_lower", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.sku_lower": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := inventoryitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LowStockThreshold(); ok {
		if err := inventoryitem.LowStockThresholdValidator(v); err != nil {
			return &ValidationError{Name: "low_stock_threshold", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.low_stock_threshold": %w`, err)}
		}
	}
	if _u.mutation.ShopCleared() && len(_u.mutation.ShopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InventoryItem.shop"`)
	}
	return nil
}

func (_u *InventoryItemUpdateOne) sqlSave(ctx context.Context) (_node *InventoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InventoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for _, f := range fields {
			if !inventoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inventoryitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(inventoryitem.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkuLower(); ok {
		_spec.SetField(inventoryitem.FieldSkuLower, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyType(); ok {
		_spec.SetField(inventoryitem.FieldKeyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(inventoryitem.FieldMake, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(inventoryitem.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(inventoryitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(inventoryitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowStockThreshold(); ok {
		_spec.SetField(inventoryitem.FieldLowStockThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowStockThreshold(); ok {
		_spec.AddField(inventoryitem.FieldLowStockThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(inventoryitem.FieldSupplier, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(inventoryitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ShopCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inventoryitem.ShopTable,
			Columns: []string{inventoryitem.ShopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shop.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inventoryitem.ShopTable,
			Columns: []string{inventoryitem.ShopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shop.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InventoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
