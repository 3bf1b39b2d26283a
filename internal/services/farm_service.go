package services

import (
	"context"
	"errors"

	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/google/uuid"
)

type FarmService interface {
	Create(ctx context.Context, orgID uuid.UUID, farm *models.Farm) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Farm, error)
	Update(ctx context.Context, orgID uuid.UUID, farm *models.Farm) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Farm, error)
}

type farmService struct {
	farmRepo repositories.FarmRepository
}

func NewFarmService(farmRepo repositories.FarmRepository) FarmService {
	return &farmService{
		farmRepo: farmRepo,
	}
}

func validateFarm(farm *models.Farm) error {
	if farm.Name == "" {
		return errors.New("farm name is required")
	}

	if farm.Size != nil && *farm.Size <= 0 {
		return errors.New("farm size must be greater than 0")
	}

	if farm.Type != models.FarmTypeMain && farm.Type != models.FarmTypeSub {
		return errors.New("farm type must be main or sub")
	}

	return nil
}

func (s *farmService) Create(ctx context.Context, orgID uuid.UUID, farm *models.Farm) error {
	if farm.Type == "" {
		farm.Type = models.FarmTypeSub
	}
	if err := validateFarm(farm); err != nil {
		return err
	}

	farm.OrganizationID = orgID
	farm.ID = uuid.New()

	return s.farmRepo.Create(ctx, farm)
}

func (s *farmService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Farm, error) {
	return s.farmRepo.GetByID(ctx, orgID, id)
}

func (s *farmService) Update(ctx context.Context, orgID uuid.UUID, farm *models.Farm) error {
	if err := validateFarm(farm); err != nil {
		return err
	}

	farm.OrganizationID = orgID
	return s.farmRepo.Update(ctx, farm)
}

func (s *farmService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.farmRepo.Delete(ctx, orgID, id)
}

func (s *farmService) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Farm, error) {
	return s.farmRepo.List(ctx, orgID, limit, offset)
}
