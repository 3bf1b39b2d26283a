package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is keyed by the auth backend's subject ID, one row per user.
type UserProfile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Phone     *string   `json:"phone" db:"phone"`
	Timezone  *string   `json:"timezone" db:"timezone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Complete reports whether the profile satisfies the onboarding profile
// step: both name fields present and non-empty.
func (p *UserProfile) Complete() bool {
	return p != nil && p.FirstName != "" && p.LastName != ""
}
