package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/repository"
)

// stubInventoryRepo backs the service with an in-memory map keyed by lowered
// SKU, mirroring the sku_lower column semantics.
type stubInventoryRepo struct {
	items   map[string]*entity.InventoryItem // lowered sku -> item
	created []*repository.CreateItemRequest
	findErr error
	incrErr error
}

func newStubRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[string]*entity.InventoryItem)}
}

func (s *stubInventoryRepo) FindBySKU(_ context.Context, _ uuid.UUID, sku string) (*entity.InventoryItem, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	it, ok := s.items[strings.ToLower(strings.TrimSpace(sku))]
	if !ok {
		return nil, nil
	}
	return it, nil
}

func (s *stubInventoryRepo) IncrementQuantity(_ context.Context, itemID uuid.UUID, delta int) (*entity.InventoryItem, error) {
	if s.incrErr != nil {
		return nil, s.incrErr
	}
	for _, it := range s.items {
		if it.ID == itemID {
			it.Quantity += delta
			return it, nil
		}
	}
	return nil, errors.New("item not found")
}

func (s *stubInventoryRepo) Create(_ context.Context, req *repository.CreateItemRequest) (*entity.InventoryItem, error) {
	s.created = append(s.created, req)
	it := &entity.InventoryItem{
		ID:                uuid.New(),
		ShopID:            req.ShopID,
		SKU:               req.SKU,
		Name:              req.Name,
		Category:          req.Category,
		KeyType:           req.KeyType,
		Make:              req.Make,
		Model:             req.Model,
		Cost:              req.Cost,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		Supplier:          req.Supplier,
	}
	s.items[strings.ToLower(req.SKU)] = it
	return it, nil
}

func (s *stubInventoryRepo) ListByShop(_ context.Context, _ uuid.UUID) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func seedItem(repo *stubInventoryRepo, sku string, qty int) *entity.InventoryItem {
	it := &entity.InventoryItem{ID: uuid.New(), SKU: sku, Quantity: qty}
	repo.items[strings.ToLower(sku)] = it
	return it
}

func TestBulkAddIncrementsExisting(t *testing.T) {
	repo := newStubRepo()
	seedItem(repo, "ABC-123", 5)
	svc := NewService(repo, nil)

	results := svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "ABC-123", Description: "Cam Lock", UnitPrice: 4.0, Quantity: 3},
	})
	require.Len(t, results, 1)
	require.Equal(t, ActionUpdated, results[0].Action)
	require.Equal(t, 3, results[0].Quantity)
	require.Equal(t, 8, results[0].NewTotal)
	require.Empty(t, repo.created)
}

func TestBulkAddMatchIsCaseInsensitive(t *testing.T) {
	repo := newStubRepo()
	seedItem(repo, "ABC-123", 5)
	svc := NewService(repo, nil)

	results := svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "  abc-123 ", Quantity: 2},
	})
	require.Equal(t, ActionUpdated, results[0].Action)
	require.Equal(t, 7, results[0].NewTotal)
}

func TestBulkAddCreatesNewWithInferredAttributes(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)
	shopID := uuid.New()

	results := svc.BulkAdd(context.Background(), shopID, []entity.LineItem{
		{SKU: "RS-FRD-3B", Description: "Ford Remote Shell 3 Button", UnitPrice: 4.50, Quantity: 3, Supplier: "uhs-hardware.com"},
	})
	require.Len(t, results, 1)
	require.Equal(t, ActionAdded, results[0].Action)
	require.Equal(t, 3, results[0].NewTotal)

	require.Len(t, repo.created, 1)
	req := repo.created[0]
	require.Equal(t, shopID, req.ShopID)
	require.Equal(t, "Remote Shell", req.Category) // from the RS prefix
	require.Equal(t, "Remote", req.KeyType)
	require.Equal(t, "Ford", req.Make)
	require.Equal(t, "n/a", req.Model)
	require.InDelta(t, 4.50, req.Cost, 1e-9)
	require.Equal(t, 2, req.LowStockThreshold)
	require.Equal(t, "uhs-hardware.com", req.Supplier)
}

func TestBulkAddKeepsExtractorCategory(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)

	svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "TI-4D60", Description: "Texas chip", Category: "Transponder Keys", Quantity: 1},
	})
	require.Len(t, repo.created, 1)
	require.Equal(t, "Transponder Keys", repo.created[0].Category)
}

func TestBulkAddQuantityDefaultsToOne(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)

	results := svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "NEW-1", Description: "thing"},
	})
	require.Equal(t, ActionAdded, results[0].Action)
	require.Equal(t, 1, results[0].Quantity)
	require.Equal(t, 1, repo.created[0].Quantity)
}

func TestBulkAddRequiresSKU(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)

	results := svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "   ", Description: "no sku"},
	})
	require.Equal(t, ActionError, results[0].Action)
	require.Contains(t, results[0].Error, "sku is required")
	require.Empty(t, repo.created)
}

func TestBulkAddOneFailureDoesNotAbortBatch(t *testing.T) {
	repo := newStubRepo()
	seedItem(repo, "GOOD-1", 1)
	svc := NewService(repo, nil)

	results := svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "", Description: "bad"},
		{SKU: "GOOD-1", Quantity: 4},
		{SKU: "GOOD-2", Description: "new item", Quantity: 1},
	})
	require.Len(t, results, 3)
	require.Equal(t, ActionError, results[0].Action)
	require.Equal(t, ActionUpdated, results[1].Action)
	require.Equal(t, 5, results[1].NewTotal)
	require.Equal(t, ActionAdded, results[2].Action)
}

func TestBulkAddRepositoryErrors(t *testing.T) {
	repo := newStubRepo()
	repo.findErr = errors.New("connection reset")
	svc := NewService(repo, nil)

	results := svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "ANY-1", Quantity: 1},
	})
	require.Equal(t, ActionError, results[0].Action)
	require.Contains(t, results[0].Error, "connection reset")

	repo = newStubRepo()
	seedItem(repo, "ANY-1", 1)
	repo.incrErr = errors.New("deadlock detected")
	svc = NewService(repo, nil)
	results = svc.BulkAdd(context.Background(), uuid.New(), []entity.LineItem{
		{SKU: "ANY-1", Quantity: 1},
	})
	require.Equal(t, ActionError, results[0].Action)
	require.Contains(t, results[0].Error, "deadlock detected")
}
