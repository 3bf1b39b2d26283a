package services

import (
	"context"
	"errors"

	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, orgID uuid.UUID, supplier *models.Supplier) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, orgID uuid.UUID, supplier *models.Supplier) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Supplier, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierService(supplierRepo repositories.SupplierRepository) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
	}
}

func (s *supplierService) Create(ctx context.Context, orgID uuid.UUID, supplier *models.Supplier) error {
	if supplier.Name == "" {
		return errors.New("supplier name is required")
	}

	// Check for duplicate name
	existing, err := s.supplierRepo.GetByName(ctx, orgID, supplier.Name)
	if err == nil && existing != nil {
		return errors.New("supplier with this name already exists")
	}

	supplier.OrganizationID = orgID
	supplier.ID = uuid.New()

	return s.supplierRepo.Create(ctx, supplier)
}

func (s *supplierService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, orgID, id)
}

func (s *supplierService) Update(ctx context.Context, orgID uuid.UUID, supplier *models.Supplier) error {
	if supplier.Name == "" {
		return errors.New("supplier name is required")
	}

	supplier.OrganizationID = orgID
	return s.supplierRepo.Update(ctx, supplier)
}

func (s *supplierService) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	return s.supplierRepo.Deactivate(ctx, orgID, id)
}

func (s *supplierService) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Supplier, error) {
	return s.supplierRepo.List(ctx, orgID, limit, offset)
}
