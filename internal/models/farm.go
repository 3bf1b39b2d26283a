package models

import (
	"time"

	"github.com/google/uuid"
)

// Farm types are informational labels only; no hierarchy is enforced.
const (
	FarmTypeMain = "main"
	FarmTypeSub  = "sub"
)

type Farm struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Location       *string   `json:"location" db:"location"`
	Size           *float64  `json:"size" db:"size"`
	SizeUnit       *string   `json:"size_unit" db:"size_unit"`
	ManagerName    *string   `json:"manager_name" db:"manager_name"`
	ManagerEmail   *string   `json:"manager_email" db:"manager_email"`
	Type           string    `json:"type" db:"type"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
