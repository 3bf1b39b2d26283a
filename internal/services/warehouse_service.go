package services

import (
	"context"
	"errors"

	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/google/uuid"
)

type WarehouseService interface {
	Create(ctx context.Context, orgID uuid.UUID, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Warehouse, error)
	Update(ctx context.Context, orgID uuid.UUID, warehouse *models.Warehouse) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Warehouse, error)
	GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Warehouse, error)
}

type warehouseService struct {
	warehouseRepo repositories.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repositories.WarehouseRepository) WarehouseService {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
	}
}

func (s *warehouseService) Create(ctx context.Context, orgID uuid.UUID, warehouse *models.Warehouse) error {
	if warehouse.Name == "" {
		return errors.New("warehouse name is required")
	}

	if warehouse.Capacity != nil && *warehouse.Capacity <= 0 {
		return errors.New("warehouse capacity must be greater than 0")
	}

	// Check for duplicate name
	existing, err := s.warehouseRepo.GetByName(ctx, orgID, warehouse.Name)
	if err == nil && existing != nil {
		return errors.New("warehouse with this name already exists")
	}

	warehouse.OrganizationID = orgID
	warehouse.ID = uuid.New()

	return s.warehouseRepo.Create(ctx, warehouse)
}

func (s *warehouseService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Warehouse, error) {
	return s.warehouseRepo.GetByID(ctx, orgID, id)
}

func (s *warehouseService) Update(ctx context.Context, orgID uuid.UUID, warehouse *models.Warehouse) error {
	if warehouse.Name == "" {
		return errors.New("warehouse name is required")
	}

	if warehouse.Capacity != nil && *warehouse.Capacity <= 0 {
		return errors.New("warehouse capacity must be greater than 0")
	}

	warehouse.OrganizationID = orgID
	return s.warehouseRepo.Update(ctx, warehouse)
}

func (s *warehouseService) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	return s.warehouseRepo.Deactivate(ctx, orgID, id)
}

func (s *warehouseService) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Warehouse, error) {
	return s.warehouseRepo.List(ctx, orgID, limit, offset)
}

func (s *warehouseService) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Warehouse, error) {
	return s.warehouseRepo.GetByName(ctx, orgID, name)
}
