package repositories

import (
	"context"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Warehouse, error)
	GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Warehouse, error)
}

type warehouseRepo struct {
	db Database
}

func NewWarehouseRepository(db Database) WarehouseRepository {
	return &warehouseRepo{db: db}
}

func (r *warehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, organization_id, farm_id, name, address, capacity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, warehouse.ID, warehouse.OrganizationID, warehouse.FarmID, warehouse.Name, warehouse.Address, warehouse.Capacity)
	return err
}

func (r *warehouseRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	query := `
		SELECT id, organization_id, farm_id, name, address, capacity, is_active, created_at, updated_at
		FROM warehouses
		WHERE organization_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, orgID, id).Scan(&warehouse.ID, &warehouse.OrganizationID, &warehouse.FarmID, &warehouse.Name, &warehouse.Address, &warehouse.Capacity, &warehouse.IsActive, &warehouse.CreatedAt, &warehouse.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (r *warehouseRepo) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	query := `
		SELECT id, organization_id, farm_id, name, address, capacity, is_active, created_at, updated_at
		FROM warehouses
		WHERE organization_id = $1 AND name = $2 AND is_active = TRUE
	`
	err := r.db.QueryRow(ctx, query, orgID, name).Scan(&warehouse.ID, &warehouse.OrganizationID, &warehouse.FarmID, &warehouse.Name, &warehouse.Address, &warehouse.Capacity, &warehouse.IsActive, &warehouse.CreatedAt, &warehouse.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (r *warehouseRepo) Update(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $1, address = $2, capacity = $3, farm_id = $4, updated_at = NOW()
		WHERE organization_id = $5 AND id = $6
	`
	_, err := r.db.Exec(ctx, query, warehouse.Name, warehouse.Address, warehouse.Capacity, warehouse.FarmID, warehouse.OrganizationID, warehouse.ID)
	return err
}

func (r *warehouseRepo) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	query := `
		UPDATE warehouses
		SET is_active = FALSE, updated_at = NOW()
		WHERE organization_id = $1 AND id = $2
	`
	_, err := r.db.Exec(ctx, query, orgID, id)
	return err
}

func (r *warehouseRepo) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Warehouse, error) {
	query := `
		SELECT id, organization_id, farm_id, name, address, capacity, is_active, created_at, updated_at
		FROM warehouses
		WHERE organization_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse := &models.Warehouse{}
		if err := rows.Scan(&warehouse.ID, &warehouse.OrganizationID, &warehouse.FarmID, &warehouse.Name, &warehouse.Address, &warehouse.Capacity, &warehouse.IsActive, &warehouse.CreatedAt, &warehouse.UpdatedAt); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}
