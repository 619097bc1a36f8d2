// Package inventory merges reviewed invoice line items into a shop's stock.
package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/inference"
	"github.com/lockshop/invoicer/internal/repository"
)

// Per-item reconciliation outcomes.
const (
	ActionAdded   = "added"
	ActionUpdated = "updated"
	ActionError   = "error"
)

const (
	// defaultLowStockThreshold is applied to every newly created row; the
	// reorder screen uses it until the owner tunes the item.
	defaultLowStockThreshold = 2

	// modelPlaceholder marks that invoices carry no vehicle-model data.
	modelPlaceholder = "n/a"
)

// ItemResult reports the outcome for one bulk-add input. Outcomes are
// independent: one bad item never aborts the rest of the batch.
type ItemResult struct {
	SKU      string `json:"sku"`
	Action   string `json:"action"`
	Quantity int    `json:"quantity"`
	NewTotal int    `json:"new_total,omitempty"`
	Error    string `json:"error,omitempty"`
}

type Service struct {
	items  repository.InventoryRepository
	logger *slog.Logger
}

func NewService(items repository.InventoryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{items: items, logger: logger}
}

// BulkAdd reconciles reviewed line items into the shop's inventory, in input
// order. SKU matching is case-insensitive on the trimmed SKU: a hit increments
// the stored quantity (nothing else is touched), a miss creates a new row with
// attributes inferred from the description.
func (s *Service) BulkAdd(ctx context.Context, shopID uuid.UUID, items []entity.LineItem) []ItemResult {
	results := make([]ItemResult, 0, len(items))
	for _, it := range items {
		res := s.addOne(ctx, shopID, it)
		if res.Action == ActionError {
			s.logger.Warn("bulk add item failed", "shop_id", shopID, "sku", res.SKU, "error", res.Error)
		}
		results = append(results, res)
	}
	return results
}

func (s *Service) addOne(ctx context.Context, shopID uuid.UUID, it entity.LineItem) ItemResult {
	sku := strings.TrimSpace(it.SKU)
	if sku == "" {
		return ItemResult{SKU: it.SKU, Action: ActionError, Error: "sku is required"}
	}
	qty := it.Quantity
	if qty <= 0 {
		qty = 1
	}

	existing, err := s.items.FindBySKU(ctx, shopID, sku)
	if err != nil {
		return ItemResult{SKU: sku, Action: ActionError, Quantity: qty, Error: err.Error()}
	}

	if existing != nil {
		updated, err := s.items.IncrementQuantity(ctx, existing.ID, qty)
		if err != nil {
			return ItemResult{SKU: sku, Action: ActionError, Quantity: qty, Error: err.Error()}
		}
		return ItemResult{SKU: sku, Action: ActionUpdated, Quantity: qty, NewTotal: updated.Quantity}
	}

	category := it.Category
	if category == "" {
		category = inference.CategoryFromSKUPrefix(sku)
	}
	created, err := s.items.Create(ctx, &repository.CreateItemRequest{
		ShopID:            shopID,
		SKU:               sku,
		Name:              it.Description,
		Category:          category,
		KeyType:           inference.InferKeyType(it.Description),
		Make:              inference.InferMake(it.Description),
		Model:             modelPlaceholder,
		Cost:              it.UnitPrice,
		Quantity:          qty,
		LowStockThreshold: defaultLowStockThreshold,
		Supplier:          it.Supplier,
	})
	if err != nil {
		return ItemResult{SKU: sku, Action: ActionError, Quantity: qty, Error: err.Error()}
	}
	return ItemResult{SKU: sku, Action: ActionAdded, Quantity: qty, NewTotal: created.Quantity}
}
