package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop represents a tenant (one locksmith shop) owning inventory rows.
type Shop struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
