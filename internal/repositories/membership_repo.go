package repositories

import (
	"context"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *models.OrganizationMembership) error
	FirstActiveByUser(ctx context.Context, userID uuid.UUID) (*models.OrganizationMembership, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.OrganizationMembership, error)
}

type membershipRepo struct {
	db Database
}

func NewMembershipRepository(db Database) MembershipRepository {
	return &membershipRepo{db: db}
}

func (r *membershipRepo) Create(ctx context.Context, membership *models.OrganizationMembership) error {
	query := `
		INSERT INTO organization_memberships (id, user_id, organization_id, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, membership.ID, membership.UserID, membership.OrganizationID, membership.Role, membership.IsActive)
	return err
}

func (r *membershipRepo) FirstActiveByUser(ctx context.Context, userID uuid.UUID) (*models.OrganizationMembership, error) {
	membership := &models.OrganizationMembership{}
	query := `
		SELECT id, user_id, organization_id, role, is_active, created_at
		FROM organization_memberships
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at ASC
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&membership.ID, &membership.UserID, &membership.OrganizationID, &membership.Role, &membership.IsActive, &membership.CreatedAt)
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func (r *membershipRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.OrganizationMembership, error) {
	query := `
		SELECT id, user_id, organization_id, role, is_active, created_at
		FROM organization_memberships
		WHERE organization_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []*models.OrganizationMembership
	for rows.Next() {
		m := &models.OrganizationMembership{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.OrganizationID, &m.Role, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}
