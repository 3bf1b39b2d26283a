package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"agrihub/internal/caching"
	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/google/uuid"
)

const structureCacheTTL = 10 * time.Minute

type StructureService interface {
	Create(ctx context.Context, orgID uuid.UUID, structure *models.Structure) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Structure, error)
	Update(ctx context.Context, orgID uuid.UUID, structure *models.Structure) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*models.Structure, error)
}

type structureService struct {
	structureRepo repositories.StructureRepository
	cache         caching.CacheService
}

func NewStructureService(structureRepo repositories.StructureRepository, cache caching.CacheService) StructureService {
	return &structureService{
		structureRepo: structureRepo,
		cache:         cache,
	}
}

// prepare validates the details variant against the declared type and
// derives the basin volume from its dimensions. A stored volume is
// never taken from the caller.
func prepareStructure(structure *models.Structure) error {
	if structure.Name == "" {
		return errors.New("structure name is required")
	}
	if structure.Details == nil {
		return errors.New("structure details are required")
	}
	if structure.Details.StructureKind() != structure.Type {
		return fmt.Errorf("structure details do not match type %q", structure.Type)
	}

	if basin, ok := structure.Details.(models.BasinDetails); ok {
		volume, err := basin.ComputeVolume()
		if err != nil {
			return err
		}
		if volume <= 0 {
			return errors.New("basin dimensions must produce a positive volume")
		}
		basin.Volume = volume
		structure.Details = basin
	}

	return nil
}

func (s *structureService) Create(ctx context.Context, orgID uuid.UUID, structure *models.Structure) error {
	if err := prepareStructure(structure); err != nil {
		return err
	}

	structure.OrganizationID = orgID
	structure.ID = uuid.New()
	structure.IsActive = true

	return s.structureRepo.Create(ctx, structure)
}

func (s *structureService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Structure, error) {
	if cached, err := s.cache.GetStructure(ctx, orgID, id); err == nil && cached != nil {
		return cached, nil
	}

	structure, err := s.structureRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetStructure(ctx, orgID, structure, structureCacheTTL); err != nil {
		log.Printf("WARN: structure cache write failed: %v", err)
	}
	return structure, nil
}

func (s *structureService) Update(ctx context.Context, orgID uuid.UUID, structure *models.Structure) error {
	if err := prepareStructure(structure); err != nil {
		return err
	}

	structure.OrganizationID = orgID
	if err := s.structureRepo.Update(ctx, structure); err != nil {
		return err
	}

	if err := s.cache.DeleteStructure(ctx, orgID, structure.ID); err != nil {
		log.Printf("WARN: structure cache invalidation failed: %v", err)
	}
	return nil
}

func (s *structureService) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.structureRepo.Deactivate(ctx, orgID, id); err != nil {
		return err
	}

	if err := s.cache.DeleteStructure(ctx, orgID, id); err != nil {
		log.Printf("WARN: structure cache invalidation failed: %v", err)
	}
	return nil
}

func (s *structureService) List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*models.Structure, error) {
	return s.structureRepo.List(ctx, orgID, farmID, limit, offset)
}
