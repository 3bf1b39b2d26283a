package models

import (
	"time"

	"github.com/google/uuid"
)

type Warehouse struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	OrganizationID uuid.UUID  `json:"organization_id" db:"organization_id"`
	FarmID         *uuid.UUID `json:"farm_id" db:"farm_id"`
	Name           string     `json:"name" db:"name"`
	Address        *string    `json:"address" db:"address"`
	Capacity       *float64   `json:"capacity" db:"capacity"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
