package repositories

import (
	"context"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByCode(ctx context.Context, orgID uuid.UUID, code string) (*models.Account, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*models.Account, error)
}

type accountRepo struct {
	db Database
}

func NewAccountRepository(db Database) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, organization_id, code, name, type, parent_id, balance, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, account.ID, account.OrganizationID, account.Code, account.Name, account.Type, account.ParentID, account.Balance, account.Description)
	return err
}

func (r *accountRepo) GetByCode(ctx context.Context, orgID uuid.UUID, code string) (*models.Account, error) {
	account := &models.Account{}
	query := `
		SELECT id, organization_id, code, name, type, parent_id, balance, description, is_active, created_at, updated_at
		FROM accounts
		WHERE organization_id = $1 AND code = $2
	`
	err := r.db.QueryRow(ctx, query, orgID, code).Scan(&account.ID, &account.OrganizationID, &account.Code, &account.Name, &account.Type, &account.ParentID, &account.Balance, &account.Description, &account.IsActive, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*models.Account, error) {
	query := `
		SELECT id, organization_id, code, name, type, parent_id, balance, description, is_active, created_at, updated_at
		FROM accounts
		WHERE organization_id = $1 AND is_active = TRUE
		ORDER BY code ASC
	`
	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account := &models.Account{}
		if err := rows.Scan(&account.ID, &account.OrganizationID, &account.Code, &account.Name, &account.Type, &account.ParentID, &account.Balance, &account.Description, &account.IsActive, &account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}
