package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"agrihub/internal/caching"
	"agrihub/internal/models"
	"agrihub/internal/repositories"
	"agrihub/internal/tenant"

	"github.com/google/uuid"
)

const (
	inventoryCacheTTL = 5 * time.Minute
	inventoryFeedName = "inventory_items"
)

// InventoryItemView is an item with its derived stock status attached.
type InventoryItemView struct {
	models.InventoryItem
	Status string `json:"status"`
}

func viewOf(item *models.InventoryItem) *InventoryItemView {
	return &InventoryItemView{InventoryItem: *item, Status: item.Status()}
}

type InventoryService interface {
	Create(ctx context.Context, orgID uuid.UUID, item *models.InventoryItem) (*InventoryItemView, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*InventoryItemView, error)
	Update(ctx context.Context, orgID uuid.UUID, item *models.InventoryItem) (*InventoryItemView, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*InventoryItemView, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	stock         tenant.Store[models.InventoryItem]
	cache         caching.CacheService
	feed          tenant.Feed

	mu        sync.Mutex
	accessors map[uuid.UUID]*tenant.Accessor[models.InventoryItem]
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, stock tenant.Store[models.InventoryItem], cache caching.CacheService, feed tenant.Feed) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		stock:         stock,
		cache:         cache,
		feed:          feed,
		accessors:     make(map[uuid.UUID]*tenant.Accessor[models.InventoryItem]),
	}
}

// accessorFor returns the organization's scoped accessor over the
// stock store, creating it on first use. Writes go through it so the
// store owns ID assignment and tenant stamping in one place.
func (s *inventoryService) accessorFor(orgID uuid.UUID) *tenant.Accessor[models.InventoryItem] {
	s.mu.Lock()
	defer s.mu.Unlock()
	accessor, ok := s.accessors[orgID]
	if !ok {
		accessor = tenant.NewAccessor[models.InventoryItem](tenant.Config{
			Resource: inventoryFeedName,
			Order:    tenant.Order{Field: "name", Ascending: true},
		}, s.stock, nil)
		s.accessors[orgID] = accessor
	}
	return accessor
}

func validateInventoryItem(item *models.InventoryItem) error {
	if item.Name == "" {
		return errors.New("item name is required")
	}
	if item.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	if item.Unit == "" {
		return errors.New("unit is required")
	}
	if item.MinimumStock < 0 {
		return errors.New("minimum stock cannot be negative")
	}
	return nil
}

// publish pushes a change event to the organization's live feed. Feed
// delivery is best effort; the write already happened.
func (s *inventoryService) publish(ctx context.Context, orgID uuid.UUID, kind string, item *models.InventoryItem, id uuid.UUID) {
	event := tenant.Event{Kind: kind, ID: id.String()}
	if item != nil {
		row, err := json.Marshal(item)
		if err != nil {
			log.Printf("WARN: inventory feed marshal failed: %v", err)
			return
		}
		event.Row = row
	}
	if err := s.feed.Publish(ctx, inventoryFeedName, orgID.String(), event); err != nil {
		log.Printf("WARN: inventory feed publish failed: %v", err)
	}
}

func (s *inventoryService) Create(ctx context.Context, orgID uuid.UUID, item *models.InventoryItem) (*InventoryItemView, error) {
	if err := validateInventoryItem(item); err != nil {
		return nil, err
	}

	created, err := s.accessorFor(orgID).Create(ctx, tenant.NewScope(orgID, nil), *item)
	if err != nil {
		return nil, err
	}
	*item = created

	s.publish(ctx, orgID, tenant.EventInsert, item, item.ID)
	return viewOf(item), nil
}

func (s *inventoryService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*InventoryItemView, error) {
	if cached, err := s.cache.GetInventoryItem(ctx, orgID, id); err == nil && cached != nil {
		return viewOf(cached), nil
	}

	item, err := s.inventoryRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetInventoryItem(ctx, orgID, item, inventoryCacheTTL); err != nil {
		log.Printf("WARN: inventory cache write failed: %v", err)
	}
	return viewOf(item), nil
}

func (s *inventoryService) Update(ctx context.Context, orgID uuid.UUID, item *models.InventoryItem) (*InventoryItemView, error) {
	if err := validateInventoryItem(item); err != nil {
		return nil, err
	}

	item.OrganizationID = orgID
	updated, err := s.accessorFor(orgID).Update(ctx, tenant.NewScope(orgID, nil), *item)
	if err != nil {
		return nil, err
	}
	*item = updated

	if err := s.cache.DeleteInventoryItem(ctx, orgID, item.ID); err != nil {
		log.Printf("WARN: inventory cache invalidation failed: %v", err)
	}
	s.publish(ctx, orgID, tenant.EventUpdate, item, item.ID)
	return viewOf(item), nil
}

func (s *inventoryService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.accessorFor(orgID).Delete(ctx, tenant.NewScope(orgID, nil), id); err != nil {
		return err
	}

	if err := s.cache.DeleteInventoryItem(ctx, orgID, id); err != nil {
		log.Printf("WARN: inventory cache invalidation failed: %v", err)
	}
	s.publish(ctx, orgID, tenant.EventDelete, nil, id)
	return nil
}

func (s *inventoryService) List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*InventoryItemView, error) {
	items, err := s.inventoryRepo.List(ctx, orgID, farmID, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]*InventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, viewOf(item))
	}
	return views, nil
}
