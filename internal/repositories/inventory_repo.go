package repositories

import (
	"context"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

// InventoryRepository serves point and paginated reads. Writes go
// through the tenant store (NewInventoryStore) so the scoped accessor
// owns the mutation path.
type InventoryRepository interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.InventoryItem, error)
	List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*models.InventoryItem, error)
}

type inventoryRepo struct {
	db Database
}

func NewInventoryRepository(db Database) InventoryRepository {
	return &inventoryRepo{db: db}
}

const inventoryColumns = `id, organization_id, farm_id, name, quantity, unit, cost_per_unit, packaging_type, packaging_size, supplier_id, warehouse_id, batch_number, expiry_date, minimum_stock, created_at, updated_at`

func (r *inventoryRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE organization_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, orgID, id).Scan(&item.ID, &item.OrganizationID, &item.FarmID, &item.Name, &item.Quantity, &item.Unit, &item.CostPerUnit, &item.PackagingType, &item.PackagingSize, &item.SupplierID, &item.WarehouseID, &item.BatchNumber, &item.ExpiryDate, &item.MinimumStock, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepo) List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE organization_id = $1 AND ($2::uuid IS NULL OR farm_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, orgID, farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item := &models.InventoryItem{}
		if err := rows.Scan(&item.ID, &item.OrganizationID, &item.FarmID, &item.Name, &item.Quantity, &item.Unit, &item.CostPerUnit, &item.PackagingType, &item.PackagingSize, &item.SupplierID, &item.WarehouseID, &item.BatchNumber, &item.ExpiryDate, &item.MinimumStock, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
