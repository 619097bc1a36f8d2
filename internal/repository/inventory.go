package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lockshop/invoicer/gen/ent"
	"github.com/lockshop/invoicer/gen/ent/inventoryitem"
	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/utils"
)

// CreateItemRequest wraps parameters for creating an inventory row.
type CreateItemRequest struct {
	ShopID            uuid.UUID
	SKU               string
	Name              string
	Category          string
	KeyType           string
	Make              string
	Model             string
	Cost              float64
	Quantity          int
	LowStockThreshold int
	Supplier          string
}

type InventoryRepository interface {
	// FindBySKU matches case-insensitively on the trimmed SKU.
	FindBySKU(ctx context.Context, shopID uuid.UUID, sku string) (*entity.InventoryItem, error)
	// IncrementQuantity adds delta to the stored quantity in a single UPDATE
	// (no read-modify-write), so concurrent imports cannot lose increments.
	IncrementQuantity(ctx context.Context, itemID uuid.UUID, delta int) (*entity.InventoryItem, error)
	Create(ctx context.Context, req *CreateItemRequest) (*entity.InventoryItem, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.InventoryItem, error)
}

type inventoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInventoryRepository(client *ent.Client, logger *slog.Logger) InventoryRepository {
	return &inventoryRepository{client: client, logger: logger}
}

func (r *inventoryRepository) FindBySKU(ctx context.Context, shopID uuid.UUID, sku string) (*entity.InventoryItem, error) {
	row, err := r.client.InventoryItem.Query().
		Where(
			inventoryitem.ShopID(shopID),
			inventoryitem.SkuLower(strings.ToLower(strings.TrimSpace(sku))),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to look up sku", "shop_id", shopID, "sku", sku, "error", err)
		return nil, err
	}
	return utils.ToInventoryItem(row), nil
}

func (r *inventoryRepository) IncrementQuantity(ctx context.Context, itemID uuid.UUID, delta int) (*entity.InventoryItem, error) {
	row, err := r.client.InventoryItem.UpdateOneID(itemID).
		AddQuantity(delta).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to increment quantity", "item_id", itemID, "delta", delta, "error", err)
		return nil, err
	}
	return utils.ToInventoryItem(row), nil
}

func (r *inventoryRepository) Create(ctx context.Context, req *CreateItemRequest) (*entity.InventoryItem, error) {
	sku := strings.TrimSpace(req.SKU)
	row, err := r.client.InventoryItem.Create().
		SetShopID(req.ShopID).
		SetSku(sku).
		SetSkuLower(strings.ToLower(sku)).
		SetName(req.Name).
		SetCategory(req.Category).
		SetKeyType(req.KeyType).
		SetMake(req.Make).
		SetModel(req.Model).
		SetCost(req.Cost).
		SetQuantity(req.Quantity).
		SetLowStockThreshold(req.LowStockThreshold).
		SetSupplier(req.Supplier).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create inventory item", "shop_id", req.ShopID, "sku", sku, "error", err)
		return nil, err
	}
	return utils.ToInventoryItem(row), nil
}

func (r *inventoryRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.InventoryItem, error) {
	rows, err := r.client.InventoryItem.Query().
		Where(inventoryitem.ShopID(shopID)).
		Order(inventoryitem.BySku()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list inventory", "shop_id", shopID, "error", err)
		return nil, err
	}
	result := make([]*entity.InventoryItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInventoryItem(row)
	}
	return result, nil
}
