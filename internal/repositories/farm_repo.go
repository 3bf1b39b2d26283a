package repositories

import (
	"context"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

type FarmRepository interface {
	Create(ctx context.Context, farm *models.Farm) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Farm, error)
	Update(ctx context.Context, farm *models.Farm) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Farm, error)
	CountByOrganization(ctx context.Context, orgID uuid.UUID) (int, error)
}

type farmRepo struct {
	db Database
}

func NewFarmRepository(db Database) FarmRepository {
	return &farmRepo{db: db}
}

func (r *farmRepo) Create(ctx context.Context, farm *models.Farm) error {
	query := `
		INSERT INTO farms (id, organization_id, name, location, size, size_unit, manager_name, manager_email, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, farm.ID, farm.OrganizationID, farm.Name, farm.Location, farm.Size, farm.SizeUnit, farm.ManagerName, farm.ManagerEmail, farm.Type)
	return err
}

func (r *farmRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Farm, error) {
	farm := &models.Farm{}
	query := `
		SELECT id, organization_id, name, location, size, size_unit, manager_name, manager_email, type, created_at, updated_at
		FROM farms
		WHERE organization_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, orgID, id).Scan(&farm.ID, &farm.OrganizationID, &farm.Name, &farm.Location, &farm.Size, &farm.SizeUnit, &farm.ManagerName, &farm.ManagerEmail, &farm.Type, &farm.CreatedAt, &farm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return farm, nil
}

func (r *farmRepo) Update(ctx context.Context, farm *models.Farm) error {
	query := `
		UPDATE farms
		SET name = $1, location = $2, size = $3, size_unit = $4, manager_name = $5, manager_email = $6, type = $7, updated_at = NOW()
		WHERE organization_id = $8 AND id = $9
	`
	_, err := r.db.Exec(ctx, query, farm.Name, farm.Location, farm.Size, farm.SizeUnit, farm.ManagerName, farm.ManagerEmail, farm.Type, farm.OrganizationID, farm.ID)
	return err
}

func (r *farmRepo) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	query := `DELETE FROM farms WHERE organization_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, orgID, id)
	return err
}

func (r *farmRepo) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Farm, error) {
	query := `
		SELECT id, organization_id, name, location, size, size_unit, manager_name, manager_email, type, created_at, updated_at
		FROM farms
		WHERE organization_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var farms []*models.Farm
	for rows.Next() {
		farm := &models.Farm{}
		if err := rows.Scan(&farm.ID, &farm.OrganizationID, &farm.Name, &farm.Location, &farm.Size, &farm.SizeUnit, &farm.ManagerName, &farm.ManagerEmail, &farm.Type, &farm.CreatedAt, &farm.UpdatedAt); err != nil {
			return nil, err
		}
		farms = append(farms, farm)
	}
	return farms, rows.Err()
}

func (r *farmRepo) CountByOrganization(ctx context.Context, orgID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM farms WHERE organization_id = $1`
	err := r.db.QueryRow(ctx, query, orgID).Scan(&count)
	return count, err
}
