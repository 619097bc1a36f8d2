package utils

import (
	"time"

	"github.com/lockshop/invoicer/gen/ent"
	invoicerpb "github.com/lockshop/invoicer/gen/proto/invoicer/v1"
	"github.com/lockshop/invoicer/internal/entity"
)

func ToShop(e *ent.Shop) *entity.Shop {
	return &entity.Shop{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToInventoryItem(e *ent.InventoryItem) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:                e.ID,
		ShopID:            e.ShopID,
		SKU:               e.Sku,
		Name:              e.Name,
		Category:          e.Category,
		KeyType:           e.KeyType,
		Make:              e.Make,
		Model:             e.Model,
		Cost:              e.Cost,
		Quantity:          e.Quantity,
		LowStockThreshold: e.LowStockThreshold,
		Supplier:          e.Supplier,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToImportJob(e *ent.ImportJob) *entity.ImportJob {
	return &entity.ImportJob{
		ID:           e.ID,
		ShopID:       e.ShopID,
		Supplier:     e.Supplier,
		Format:       e.Format,
		Status:       e.Status,
		ItemCount:    e.ItemCount,
		TotalValue:   e.TotalValue,
		ErrorMessage: e.ErrorMessage,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
	}
}

func ToPBShop(s *entity.Shop) *invoicerpb.Shop {
	return &invoicerpb.Shop{
		Id:        s.ID.String(),
		Name:      s.Name,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBLineItem(it entity.LineItem) *invoicerpb.LineItem {
	return &invoicerpb.LineItem{
		Sku:         it.SKU,
		Description: it.Description,
		UnitPrice:   it.UnitPrice,
		Quantity:    int32(it.Quantity),
		LineTotal:   it.LineTotal,
		Supplier:    it.Supplier,
		Category:    it.Category,
	}
}

func FromPBLineItem(it *invoicerpb.LineItem) entity.LineItem {
	return entity.LineItem{
		SKU:         it.GetSku(),
		Description: it.GetDescription(),
		UnitPrice:   it.GetUnitPrice(),
		Quantity:    int(it.GetQuantity()),
		LineTotal:   it.GetLineTotal(),
		Supplier:    it.GetSupplier(),
		Category:    it.GetCategory(),
	}
}
