package models

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	ContactEmail   *string   `json:"contact_email" db:"contact_email"`
	ContactPhone   *string   `json:"contact_phone" db:"contact_phone"`
	Address        *string   `json:"address" db:"address"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
