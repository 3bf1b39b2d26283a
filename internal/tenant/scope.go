package tenant

import "github.com/google/uuid"

// Scope identifies the tenant a data access runs under. A zero Scope
// means no tenant is resolved yet, e.g. during onboarding. Scopes are
// values passed explicitly per call, never shared mutable state.
type Scope struct {
	OrganizationID *uuid.UUID
	FarmID         *uuid.UUID
}

// NewScope builds a scope for an organization with an optional farm.
func NewScope(orgID uuid.UUID, farmID *uuid.UUID) Scope {
	return Scope{OrganizationID: &orgID, FarmID: farmID}
}

// Active reports whether the scope resolves to an organization.
func (s Scope) Active() bool {
	return s.OrganizationID != nil
}
