package repositories

import (
	"context"
	"fmt"
	"strings"

	"agrihub/internal/models"
	"agrihub/internal/tenant"

	"github.com/google/uuid"
)

// inventoryStore adapts the inventory table to the generic accessor
// store contract. The scope's organization is always the first bound
// parameter of every statement.
type inventoryStore struct {
	db Database
}

func NewInventoryStore(db Database) tenant.Store[models.InventoryItem] {
	return &inventoryStore{db: db}
}

func (s *inventoryStore) Select(ctx context.Context, scope tenant.Scope, filters []tenant.Filter, order tenant.Order) ([]models.InventoryItem, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + inventoryColumns + ` FROM inventory_items WHERE organization_id = $1`)
	args := []any{scope.OrganizationID}

	if scope.FarmID != nil {
		args = append(args, scope.FarmID)
		fmt.Fprintf(&sb, " AND farm_id = $%d", len(args))
	}
	for _, f := range filters {
		args = append(args, f.Value)
		fmt.Fprintf(&sb, " AND %s = $%d", f.Field, len(args))
	}
	if order.Field != "" {
		dir := "DESC"
		if order.Ascending {
			dir = "ASC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", order.Field, dir)
	}

	rows, err := s.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.OrganizationID, &item.FarmID, &item.Name, &item.Quantity, &item.Unit, &item.CostPerUnit, &item.PackagingType, &item.PackagingSize, &item.SupplierID, &item.WarehouseID, &item.BatchNumber, &item.ExpiryDate, &item.MinimumStock, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *inventoryStore) Insert(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRow(ctx, query, item.ID, item.OrganizationID, item.FarmID, item.Name, item.Quantity, item.Unit, item.CostPerUnit, item.PackagingType, item.PackagingSize, item.SupplierID, item.WarehouseID, item.BatchNumber, item.ExpiryDate, item.MinimumStock).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (s *inventoryStore) Update(ctx context.Context, scope tenant.Scope, item models.InventoryItem) (models.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET name = $1, quantity = $2, unit = $3, cost_per_unit = $4, packaging_type = $5, packaging_size = $6,
		    supplier_id = $7, warehouse_id = $8, batch_number = $9, expiry_date = $10, minimum_stock = $11, updated_at = NOW()
		WHERE organization_id = $12 AND id = $13
		RETURNING updated_at
	`
	err := s.db.QueryRow(ctx, query, item.Name, item.Quantity, item.Unit, item.CostPerUnit, item.PackagingType, item.PackagingSize, item.SupplierID, item.WarehouseID, item.BatchNumber, item.ExpiryDate, item.MinimumStock, scope.OrganizationID, item.ID).Scan(&item.UpdatedAt)
	if err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (s *inventoryStore) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	query := `DELETE FROM inventory_items WHERE organization_id = $1 AND id = $2`
	_, err := s.db.Exec(ctx, query, scope.OrganizationID, id)
	return err
}
