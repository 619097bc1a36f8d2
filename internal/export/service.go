package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lockshop/invoicer/internal/repository"
)

// Service is a tiny façade over the inventory repository that produces XLSX
// bytes for reorder review.
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

// ExportInventoryXLSX returns an XLSX workbook (as bytes) listing every
// inventory row for the shop, ordered by SKU.
func (s *Service) ExportInventoryXLSX(ctx context.Context, shopID uuid.UUID) ([]byte, int, error) {
	start := time.Now()

	rows, err := s.items.ListByShop(ctx, shopID)
	if err != nil {
		return nil, 0, fmt.Errorf("query inventory: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Inventory"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"SKU",
		"Name",
		"Category",
		"Key Type",
		"Make",
		"Cost",
		"Quantity",
		"Low Stock Threshold",
		"Supplier",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range rows {
		values := []any{
			it.SKU,
			it.Name,
			it.Category,
			it.KeyType,
			it.Make,
			it.Cost,
			it.Quantity,
			it.LowStockThreshold,
			it.Supplier,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// Drop the default sheet if it survived.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("inventory exported",
		"shop_id", shopID,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(rows), nil
}
