package services

import (
	"context"
	"errors"

	"agrihub/internal/common"
	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/google/uuid"
)

type OrganizationService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
	ListMembers(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.OrganizationMembership, error)
}

type organizationService struct {
	orgRepo        repositories.OrganizationRepository
	membershipRepo repositories.MembershipRepository
}

func NewOrganizationService(orgRepo repositories.OrganizationRepository, membershipRepo repositories.MembershipRepository) OrganizationService {
	return &organizationService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *organizationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	return s.orgRepo.GetByID(ctx, id)
}

func (s *organizationService) Update(ctx context.Context, org *models.Organization) error {
	if org.Name == "" {
		return errors.New("organization name is required")
	}

	org.Slug = common.Slugify(org.Name)

	// Check for slug collision with another organization
	existing, err := s.orgRepo.GetBySlug(ctx, org.Slug)
	if err == nil && existing != nil && existing.ID != org.ID {
		return errors.New("organization with this name already exists")
	}

	return s.orgRepo.Update(ctx, org)
}

func (s *organizationService) ListMembers(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.OrganizationMembership, error) {
	return s.membershipRepo.ListByOrganization(ctx, orgID, limit, offset)
}
