package repositories

import (
	"context"
	"testing"
	"time"

	"agrihub/internal/tenant"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inventoryColumnNames = []string{
	"id", "organization_id", "farm_id", "name", "quantity", "unit", "cost_per_unit",
	"packaging_type", "packaging_size", "supplier_id", "warehouse_id", "batch_number",
	"expiry_date", "minimum_stock", "created_at", "updated_at",
}

func TestInventoryStoreSelect_BindsOrganizationFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewInventoryStore(mock)
	orgID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(inventoryColumnNames).
		AddRow(uuid.New(), orgID, nil, "Layer feed", 120.0, "kg", 3.5,
			nil, nil, nil, nil, nil, nil, 40.0, now, now)

	mock.ExpectQuery(`SELECT .+ FROM inventory_items WHERE organization_id = \$1`).
		WithArgs(&orgID).
		WillReturnRows(rows)

	items, err := store.Select(context.Background(), tenant.NewScope(orgID, nil), nil, tenant.Order{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, orgID, items[0].OrganizationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryStoreSelect_AppendsFarmAndFilterClauses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewInventoryStore(mock)
	orgID := uuid.New()
	farmID := uuid.New()
	supplierID := uuid.New()

	mock.ExpectQuery(`WHERE organization_id = \$1 AND farm_id = \$2 AND supplier_id = \$3 ORDER BY name ASC`).
		WithArgs(&orgID, &farmID, supplierID).
		WillReturnRows(pgxmock.NewRows(inventoryColumnNames))

	filters := []tenant.Filter{{Field: "supplier_id", Value: supplierID}}
	order := tenant.Order{Field: "name", Ascending: true}
	items, err := store.Select(context.Background(), tenant.NewScope(orgID, &farmID), filters, order)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryStoreDelete_ScopesByOrganization(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewInventoryStore(mock)
	orgID := uuid.New()
	itemID := uuid.New()

	mock.ExpectExec(`DELETE FROM inventory_items WHERE organization_id = \$1 AND id = \$2`).
		WithArgs(&orgID, itemID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = store.Delete(context.Background(), tenant.NewScope(orgID, nil), itemID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
