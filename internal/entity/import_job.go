package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportJob is the audit record for one invoice parse attempt.
type ImportJob struct {
	ID           uuid.UUID  `json:"id"`
	ShopID       uuid.UUID  `json:"shop_id"`
	Supplier     string     `json:"supplier"`
	Format       string     `json:"format"`
	Status       string     `json:"status"`
	ItemCount    int        `json:"item_count"`
	TotalValue   float64    `json:"total_value"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
