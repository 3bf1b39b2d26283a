package repositories

import (
	"context"
	"encoding/json"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

type StructureRepository interface {
	Create(ctx context.Context, structure *models.Structure) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Structure, error)
	Update(ctx context.Context, structure *models.Structure) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*models.Structure, error)
}

type structureRepo struct {
	db Database
}

func NewStructureRepository(db Database) StructureRepository {
	return &structureRepo{db: db}
}

func (r *structureRepo) Create(ctx context.Context, structure *models.Structure) error {
	details, err := json.Marshal(structure.Details)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO structures (id, organization_id, farm_id, name, type, condition, structure_details, is_active, installation_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err = r.db.Exec(ctx, query, structure.ID, structure.OrganizationID, structure.FarmID, structure.Name, structure.Type, structure.Condition, details, structure.IsActive, structure.InstallationDate)
	return err
}

func (r *structureRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Structure, error) {
	query := `
		SELECT id, organization_id, farm_id, name, type, condition, structure_details, is_active, installation_date, created_at, updated_at
		FROM structures
		WHERE organization_id = $1 AND id = $2
	`
	return scanStructure(r.db.QueryRow(ctx, query, orgID, id))
}

func (r *structureRepo) Update(ctx context.Context, structure *models.Structure) error {
	details, err := json.Marshal(structure.Details)
	if err != nil {
		return err
	}
	query := `
		UPDATE structures
		SET name = $1, type = $2, condition = $3, structure_details = $4, installation_date = $5, updated_at = NOW()
		WHERE organization_id = $6 AND id = $7
	`
	_, err = r.db.Exec(ctx, query, structure.Name, structure.Type, structure.Condition, details, structure.InstallationDate, structure.OrganizationID, structure.ID)
	return err
}

// Deactivate soft-deletes; structure rows are never removed.
func (r *structureRepo) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	query := `
		UPDATE structures
		SET is_active = FALSE, updated_at = NOW()
		WHERE organization_id = $1 AND id = $2
	`
	_, err := r.db.Exec(ctx, query, orgID, id)
	return err
}

func (r *structureRepo) List(ctx context.Context, orgID uuid.UUID, farmID *uuid.UUID, limit, offset int) ([]*models.Structure, error) {
	query := `
		SELECT id, organization_id, farm_id, name, type, condition, structure_details, is_active, installation_date, created_at, updated_at
		FROM structures
		WHERE organization_id = $1 AND is_active = TRUE AND ($2::uuid IS NULL OR farm_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, orgID, farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []*models.Structure
	for rows.Next() {
		structure, err := scanStructure(rows)
		if err != nil {
			return nil, err
		}
		structures = append(structures, structure)
	}
	return structures, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStructure(row rowScanner) (*models.Structure, error) {
	structure := &models.Structure{}
	var details []byte
	err := row.Scan(&structure.ID, &structure.OrganizationID, &structure.FarmID, &structure.Name, &structure.Type, &structure.Condition, &details, &structure.IsActive, &structure.InstallationDate, &structure.CreatedAt, &structure.UpdatedAt)
	if err != nil {
		return nil, err
	}
	structure.Details, err = models.DecodeStructureDetails(structure.Type, details)
	if err != nil {
		return nil, err
	}
	return structure, nil
}
