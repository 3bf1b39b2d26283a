package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrihub/internal/models"
	"agrihub/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, orgID, farmID, limit, offset)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

// fakeStockStore backs the write path, assigning IDs and timestamps
// the way the SQL store does.
type fakeStockStore struct {
	insertErr error
	inserts   int
	deletes   int
}

func (s *fakeStockStore) Select(context.Context, tenant.Scope, []tenant.Filter, tenant.Order) ([]models.InventoryItem, error) {
	return nil, nil
}

func (s *fakeStockStore) Insert(_ context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	if s.insertErr != nil {
		return models.InventoryItem{}, s.insertErr
	}
	s.inserts++
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	return item, nil
}

func (s *fakeStockStore) Update(_ context.Context, _ tenant.Scope, item models.InventoryItem) (models.InventoryItem, error) {
	item.UpdatedAt = time.Now()
	return item, nil
}

func (s *fakeStockStore) Delete(context.Context, tenant.Scope, uuid.UUID) error {
	s.deletes++
	return nil
}

// recordingFeed captures published events in memory.
type recordingFeed struct {
	events []tenant.Event
	orgs   []string
}

func (f *recordingFeed) Publish(_ context.Context, _ string, orgID string, event tenant.Event) error {
	f.events = append(f.events, event)
	f.orgs = append(f.orgs, orgID)
	return nil
}

func (f *recordingFeed) Subscribe(context.Context, string, string) (<-chan tenant.Event, error) {
	return nil, nil
}

func TestInventoryCreate_StoreAssignsIDAndPublishesInsertEvent(t *testing.T) {
	repo := &MockInventoryRepository{}
	store := &fakeStockStore{}
	feed := &recordingFeed{}
	svc := NewInventoryService(repo, store, noopCache{}, feed)
	orgID := uuid.New()

	view, err := svc.Create(context.Background(), orgID, &models.InventoryItem{
		Name:         "Layer feed",
		Quantity:     120,
		Unit:         "kg",
		MinimumStock: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StockAvailable, view.Status)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, orgID, view.OrganizationID)
	assert.Equal(t, 1, store.inserts)

	require.Len(t, feed.events, 1)
	assert.Equal(t, tenant.EventInsert, feed.events[0].Kind)
	assert.Equal(t, view.ID.String(), feed.events[0].ID)
	assert.Equal(t, orgID.String(), feed.orgs[0])
	assert.NotEmpty(t, feed.events[0].Row)
}

func TestInventoryCreate_StoreFailureYieldsNoEvent(t *testing.T) {
	repo := &MockInventoryRepository{}
	store := &fakeStockStore{insertErr: errors.New("unique violation")}
	feed := &recordingFeed{}
	svc := NewInventoryService(repo, store, noopCache{}, feed)

	_, err := svc.Create(context.Background(), uuid.New(), &models.InventoryItem{
		Name:     "Layer feed",
		Quantity: 5,
		Unit:     "kg",
	})

	assert.Error(t, err)
	assert.Empty(t, feed.events)
}

func TestInventoryUpdate_ViewCarriesDerivedStatus(t *testing.T) {
	repo := &MockInventoryRepository{}
	store := &fakeStockStore{}
	feed := &recordingFeed{}
	svc := NewInventoryService(repo, store, noopCache{}, feed)

	view, err := svc.Update(context.Background(), uuid.New(), &models.InventoryItem{
		ID:           uuid.New(),
		Name:         "Layer feed",
		Quantity:     10,
		Unit:         "kg",
		MinimumStock: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StockLow, view.Status)
	require.Len(t, feed.events, 1)
	assert.Equal(t, tenant.EventUpdate, feed.events[0].Kind)
}

func TestInventoryDelete_PublishesDeleteWithoutRow(t *testing.T) {
	repo := &MockInventoryRepository{}
	store := &fakeStockStore{}
	feed := &recordingFeed{}
	svc := NewInventoryService(repo, store, noopCache{}, feed)
	orgID := uuid.New()
	itemID := uuid.New()

	err := svc.Delete(context.Background(), orgID, itemID)

	require.NoError(t, err)
	assert.Equal(t, 1, store.deletes)
	require.Len(t, feed.events, 1)
	assert.Equal(t, tenant.EventDelete, feed.events[0].Kind)
	assert.Equal(t, itemID.String(), feed.events[0].ID)
	assert.Empty(t, feed.events[0].Row)
}

func TestInventoryCreate_ValidationFailureSkipsStoreAndFeed(t *testing.T) {
	repo := &MockInventoryRepository{}
	store := &fakeStockStore{}
	feed := &recordingFeed{}
	svc := NewInventoryService(repo, store, noopCache{}, feed)

	_, err := svc.Create(context.Background(), uuid.New(), &models.InventoryItem{
		Name:     "",
		Quantity: 5,
		Unit:     "kg",
	})

	assert.Error(t, err)
	assert.Equal(t, 0, store.inserts)
	assert.Empty(t, feed.events)
}
