package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem represents an inventory row for data transfer between layers.
type InventoryItem struct {
	ID                uuid.UUID `json:"id"`
	ShopID            uuid.UUID `json:"shop_id"`
	SKU               string    `json:"sku"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	KeyType           string    `json:"key_type"`
	Make              string    `json:"make"`
	Model             string    `json:"model"`
	Cost              float64   `json:"cost"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	Supplier          string    `json:"supplier"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
