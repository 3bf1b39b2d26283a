package repositories

import (
	"context"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Supplier, error)
	GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (id, organization_id, name, contact_email, contact_phone, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.OrganizationID, supplier.Name, supplier.ContactEmail, supplier.ContactPhone, supplier.Address)
	return err
}

func (r *supplierRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	query := `
		SELECT id, organization_id, name, contact_email, contact_phone, address, is_active, created_at, updated_at
		FROM suppliers
		WHERE organization_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, orgID, id).Scan(&supplier.ID, &supplier.OrganizationID, &supplier.Name, &supplier.ContactEmail, &supplier.ContactPhone, &supplier.Address, &supplier.IsActive, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	query := `
		SELECT id, organization_id, name, contact_email, contact_phone, address, is_active, created_at, updated_at
		FROM suppliers
		WHERE organization_id = $1 AND name = $2 AND is_active = TRUE
	`
	err := r.db.QueryRow(ctx, query, orgID, name).Scan(&supplier.ID, &supplier.OrganizationID, &supplier.Name, &supplier.ContactEmail, &supplier.ContactPhone, &supplier.Address, &supplier.IsActive, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, contact_email = $2, contact_phone = $3, address = $4, updated_at = NOW()
		WHERE organization_id = $5 AND id = $6
	`
	_, err := r.db.Exec(ctx, query, supplier.Name, supplier.ContactEmail, supplier.ContactPhone, supplier.Address, supplier.OrganizationID, supplier.ID)
	return err
}

func (r *supplierRepo) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	query := `
		UPDATE suppliers
		SET is_active = FALSE, updated_at = NOW()
		WHERE organization_id = $1 AND id = $2
	`
	_, err := r.db.Exec(ctx, query, orgID, id)
	return err
}

func (r *supplierRepo) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Supplier, error) {
	query := `
		SELECT id, organization_id, name, contact_email, contact_phone, address, is_active, created_at, updated_at
		FROM suppliers
		WHERE organization_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		supplier := &models.Supplier{}
		if err := rows.Scan(&supplier.ID, &supplier.OrganizationID, &supplier.Name, &supplier.ContactEmail, &supplier.ContactPhone, &supplier.Address, &supplier.IsActive, &supplier.CreatedAt, &supplier.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}
