package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	FarmID         *uuid.UUID `json:"farm_id"`
	Name           string     `json:"name"`
}

func (r testRow) ResourceID() uuid.UUID { return r.ID }

func (r testRow) WithTenant(orgID uuid.UUID, farmID *uuid.UUID) testRow {
	r.OrganizationID = orgID
	if farmID != nil {
		r.FarmID = farmID
	}
	return r
}

// fakeStore records calls and serves canned rows or errors. With
// assignIDs set it fills in missing row IDs at insert time, like the
// SQL stores do.
type fakeStore struct {
	rows      []testRow
	assignIDs bool
	selectErr error
	insertErr error
	updateErr error
	deleteErr error

	lastScope   Scope
	lastFilters []Filter
}

func (s *fakeStore) Select(_ context.Context, scope Scope, filters []Filter, _ Order) ([]testRow, error) {
	s.lastScope = scope
	s.lastFilters = filters
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	return s.rows, nil
}

func (s *fakeStore) Insert(_ context.Context, item testRow) (testRow, error) {
	if s.insertErr != nil {
		return testRow{}, s.insertErr
	}
	if s.assignIDs && item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return item, nil
}

func (s *fakeStore) Update(_ context.Context, _ Scope, item testRow) (testRow, error) {
	if s.updateErr != nil {
		return testRow{}, s.updateErr
	}
	return item, nil
}

func (s *fakeStore) Delete(_ context.Context, _ Scope, _ uuid.UUID) error {
	return s.deleteErr
}

func newTestAccessor(store *fakeStore) *Accessor[testRow] {
	return NewAccessor[testRow](Config{Resource: "test_rows"}, store, nil)
}

func TestFetch_NoScopeReturnsEmptyWithoutError(t *testing.T) {
	store := &fakeStore{rows: []testRow{{ID: uuid.New()}}}
	accessor := newTestAccessor(store)

	rows, err := accessor.Fetch(context.Background(), Scope{})

	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, accessor.Err())
}

func TestFetch_NoScopeClearsPreviousMirror(t *testing.T) {
	store := &fakeStore{rows: []testRow{{ID: uuid.New(), Name: "seed"}}}
	accessor := newTestAccessor(store)

	_, err := accessor.Fetch(context.Background(), NewScope(uuid.New(), nil))
	require.NoError(t, err)
	require.Len(t, accessor.Rows(), 1)

	_, err = accessor.Fetch(context.Background(), Scope{})
	assert.NoError(t, err)
	assert.Empty(t, accessor.Rows())
}

func TestFetch_FailurePreservesMirrorAndRecordsError(t *testing.T) {
	store := &fakeStore{rows: []testRow{{ID: uuid.New(), Name: "kept"}}}
	accessor := newTestAccessor(store)
	scope := NewScope(uuid.New(), nil)

	_, err := accessor.Fetch(context.Background(), scope)
	require.NoError(t, err)

	store.selectErr = errors.New("connection reset")
	_, err = accessor.Fetch(context.Background(), scope)

	assert.Error(t, err)
	assert.Equal(t, store.selectErr, accessor.Err())
	require.Len(t, accessor.Rows(), 1)
	assert.Equal(t, "kept", accessor.Rows()[0].Name)
}

func TestFetch_SuccessClearsRecordedError(t *testing.T) {
	store := &fakeStore{selectErr: errors.New("boom")}
	accessor := newTestAccessor(store)
	scope := NewScope(uuid.New(), nil)

	_, err := accessor.Fetch(context.Background(), scope)
	require.Error(t, err)
	require.Error(t, accessor.Err())

	store.selectErr = nil
	_, err = accessor.Fetch(context.Background(), scope)
	assert.NoError(t, err)
	assert.NoError(t, accessor.Err())
}

func TestFetch_FarmScopePassedOnlyWhenConfigured(t *testing.T) {
	store := &fakeStore{}
	farmID := uuid.New()
	scope := NewScope(uuid.New(), &farmID)

	unscoped := NewAccessor[testRow](Config{Resource: "test_rows"}, store, nil)
	_, err := unscoped.Fetch(context.Background(), scope)
	require.NoError(t, err)
	assert.Nil(t, store.lastScope.FarmID)

	farmScoped := NewAccessor[testRow](Config{Resource: "test_rows", FarmScoped: true}, store, nil)
	_, err = farmScoped.Fetch(context.Background(), scope)
	require.NoError(t, err)
	require.NotNil(t, store.lastScope.FarmID)
	assert.Equal(t, farmID, *store.lastScope.FarmID)
}

func TestCreate_NoScopeFailsAndLeavesMirrorUntouched(t *testing.T) {
	store := &fakeStore{rows: []testRow{{ID: uuid.New()}}}
	accessor := newTestAccessor(store)

	_, err := accessor.Fetch(context.Background(), NewScope(uuid.New(), nil))
	require.NoError(t, err)
	before := accessor.Rows()

	_, err = accessor.Create(context.Background(), Scope{}, testRow{ID: uuid.New()})

	assert.ErrorIs(t, err, ErrNoTenant)
	assert.ErrorIs(t, accessor.Err(), ErrNoTenant)
	assert.Equal(t, before, accessor.Rows())
}

func TestCreate_StampsTenantAndAppendsMirror(t *testing.T) {
	store := &fakeStore{}
	accessor := newTestAccessor(store)
	orgID := uuid.New()

	created, err := accessor.Create(context.Background(), NewScope(orgID, nil), testRow{ID: uuid.New(), Name: "new"})

	require.NoError(t, err)
	assert.Equal(t, orgID, created.OrganizationID)
	require.Len(t, accessor.Rows(), 1)
	assert.Equal(t, created, accessor.Rows()[0])
}

func TestCreate_StoreAssignedIDReplacesOptimisticRow(t *testing.T) {
	store := &fakeStore{assignIDs: true}
	accessor := newTestAccessor(store)

	created, err := accessor.Create(context.Background(), NewScope(uuid.New(), nil), testRow{Name: "new"})

	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, accessor.Rows(), 1)
	assert.Equal(t, created, accessor.Rows()[0])
}

func TestCreate_StoreFailureRollsBackStoreAssignedInsert(t *testing.T) {
	store := &fakeStore{assignIDs: true, insertErr: errors.New("unique violation")}
	accessor := newTestAccessor(store)

	_, err := accessor.Create(context.Background(), NewScope(uuid.New(), nil), testRow{Name: "doomed"})

	assert.Error(t, err)
	assert.Empty(t, accessor.Rows())
}

func TestCreate_StoreFailureRollsBackMirror(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("unique violation")}
	accessor := newTestAccessor(store)

	_, err := accessor.Create(context.Background(), NewScope(uuid.New(), nil), testRow{ID: uuid.New()})

	assert.Error(t, err)
	assert.Empty(t, accessor.Rows())
	assert.Equal(t, store.insertErr, accessor.Err())
}

func TestUpdate_StoreFailureRestoresPreviousRow(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{rows: []testRow{{ID: id, Name: "before"}}}
	accessor := newTestAccessor(store)
	scope := NewScope(uuid.New(), nil)

	_, err := accessor.Fetch(context.Background(), scope)
	require.NoError(t, err)

	store.updateErr = errors.New("deadlock")
	_, err = accessor.Update(context.Background(), scope, testRow{ID: id, Name: "after"})

	assert.Error(t, err)
	require.Len(t, accessor.Rows(), 1)
	assert.Equal(t, "before", accessor.Rows()[0].Name)
}

func TestDelete_StoreFailureRestoresRow(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{rows: []testRow{{ID: id, Name: "sticky"}}}
	accessor := newTestAccessor(store)
	scope := NewScope(uuid.New(), nil)

	_, err := accessor.Fetch(context.Background(), scope)
	require.NoError(t, err)

	store.deleteErr = errors.New("timeout")
	err = accessor.Delete(context.Background(), scope, id)

	assert.Error(t, err)
	require.Len(t, accessor.Rows(), 1)
	assert.Equal(t, "sticky", accessor.Rows()[0].Name)
}

func TestDelete_RemovesRowFromMirror(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{rows: []testRow{{ID: id}}}
	accessor := newTestAccessor(store)
	scope := NewScope(uuid.New(), nil)

	_, err := accessor.Fetch(context.Background(), scope)
	require.NoError(t, err)

	err = accessor.Delete(context.Background(), scope, id)

	assert.NoError(t, err)
	assert.Empty(t, accessor.Rows())
}

func mustRaw(t *testing.T, row testRow) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(row)
	require.NoError(t, err)
	return raw
}

func TestApplyEvent_InsertAndUpdateUpsertByID(t *testing.T) {
	id := uuid.New()
	rows := []testRow{}

	rows, err := ApplyEvent(rows, Event{Kind: EventInsert, ID: id.String(), Row: mustRaw(t, testRow{ID: id, Name: "v1"})})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// A replayed insert with newer content wins; no duplicate appears.
	rows, err = ApplyEvent(rows, Event{Kind: EventInsert, ID: id.String(), Row: mustRaw(t, testRow{ID: id, Name: "v2"})})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "v2", rows[0].Name)

	rows, err = ApplyEvent(rows, Event{Kind: EventUpdate, ID: id.String(), Row: mustRaw(t, testRow{ID: id, Name: "v3"})})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "v3", rows[0].Name)
}

func TestApplyEvent_UpdateForUnknownRowInsertsIt(t *testing.T) {
	id := uuid.New()

	rows, err := ApplyEvent([]testRow{}, Event{Kind: EventUpdate, ID: id.String(), Row: mustRaw(t, testRow{ID: id, Name: "late"})})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "late", rows[0].Name)
}

func TestApplyEvent_DeleteRemovesOnlyMatchingRow(t *testing.T) {
	keep := testRow{ID: uuid.New(), Name: "keep"}
	drop := testRow{ID: uuid.New(), Name: "drop"}

	rows, err := ApplyEvent([]testRow{keep, drop}, Event{Kind: EventDelete, ID: drop.ID.String()})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, keep.ID, rows[0].ID)
}

func TestApplyEvent_RejectsMalformedEvents(t *testing.T) {
	rows := []testRow{{ID: uuid.New()}}

	out, err := ApplyEvent(rows, Event{Kind: EventDelete, ID: "not-a-uuid"})
	assert.Error(t, err)
	assert.Equal(t, rows, out)

	out, err = ApplyEvent(rows, Event{Kind: "TRUNCATE", ID: uuid.New().String()})
	assert.Error(t, err)
	assert.Equal(t, rows, out)
}

func TestActiveFilters_SkipsUnresolvedValues(t *testing.T) {
	supplierID := uuid.New()
	filters := []Filter{
		{Field: "supplier_id", Value: supplierID},
		{Field: "warehouse_id", Value: nil},
	}

	active := ActiveFilters(filters)

	require.Len(t, active, 1)
	assert.Equal(t, "supplier_id", active[0].Field)
}
