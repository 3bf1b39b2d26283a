package accounting

import (
	"context"
	"errors"
	"testing"

	"agrihub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepo records created accounts and fails the codes it is
// told to fail.
type fakeAccountRepo struct {
	created   []*models.Account
	failCodes map[string]bool
}

func (f *fakeAccountRepo) Create(_ context.Context, account *models.Account) error {
	if f.failCodes[account.Code] {
		return errors.New("insert rejected")
	}
	f.created = append(f.created, account)
	return nil
}

func (f *fakeAccountRepo) GetByCode(_ context.Context, _ uuid.UUID, code string) (*models.Account, error) {
	for _, a := range f.created {
		if a.Code == code {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeAccountRepo) ListByOrganization(_ context.Context, _ uuid.UUID) ([]*models.Account, error) {
	return f.created, nil
}

func (f *fakeAccountRepo) byCode(code string) *models.Account {
	for _, a := range f.created {
		if a.Code == code {
			return a
		}
	}
	return nil
}

func TestDefaultChart_ParentsPrecedeChildren(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range DefaultChart {
		if entry.ParentCode != "" {
			assert.Truef(t, seen[entry.ParentCode], "entry %s references parent %s before it is defined", entry.Code, entry.ParentCode)
		}
		assert.Falsef(t, seen[entry.Code], "duplicate code %s", entry.Code)
		seen[entry.Code] = true
	}
}

func TestSeed_FullChartCreated(t *testing.T) {
	repo := &fakeAccountRepo{}
	seeder := NewSeeder(repo)
	orgID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	report := seeder.Seed(context.Background(), orgID)

	assert.Equal(t, len(DefaultChart), report.Created)
	assert.Zero(t, report.Failed)

	for _, account := range repo.created {
		assert.Equal(t, orgID, account.OrganizationID)
		assert.True(t, account.Balance.IsZero())
	}
}

func TestSeed_ChildLinksToParentID(t *testing.T) {
	repo := &fakeAccountRepo{}
	seeder := NewSeeder(repo)

	seeder.Seed(context.Background(), uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"))

	assets := repo.byCode("1000")
	currentAssets := repo.byCode("1100")
	require.NotNil(t, assets)
	require.NotNil(t, currentAssets)
	require.NotNil(t, currentAssets.ParentID)
	assert.Equal(t, assets.ID, *currentAssets.ParentID)
	assert.Nil(t, assets.ParentID)
}

func TestSeed_FailedRowIsCountedNotFatal(t *testing.T) {
	repo := &fakeAccountRepo{failCodes: map[string]bool{"4100": true}}
	seeder := NewSeeder(repo)

	report := seeder.Seed(context.Background(), uuid.New())

	assert.Equal(t, len(DefaultChart)-1, report.Created)
	assert.Equal(t, 1, report.Failed)
	assert.Nil(t, repo.byCode("4100"))
	// Later rows still land.
	assert.NotNil(t, repo.byCode("5990"))
}

func TestSeed_ChildrenOfFailedParentAreSkipped(t *testing.T) {
	repo := &fakeAccountRepo{failCodes: map[string]bool{"2100": true}}
	seeder := NewSeeder(repo)

	report := seeder.Seed(context.Background(), uuid.New())

	// 2100 failed plus its three direct children.
	assert.Equal(t, 4, report.Failed)
	assert.Nil(t, repo.byCode("2110"))
	assert.Nil(t, repo.byCode("2120"))
	assert.Nil(t, repo.byCode("2130"))
	// The sibling subtree is unaffected.
	assert.NotNil(t, repo.byCode("2210"))
}

func TestOrgIDPattern(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"00000000-0000-0000-0000-000000000000",
	}
	for _, v := range valid {
		assert.Truef(t, OrgIDPattern.MatchString(v), "expected %q to match", v)
	}

	invalid := []string{
		"",
		"not-a-uuid",
		"123E4567-E89B-12D3-A456-426614174000",
		"123e4567e89b12d3a456426614174000",
		"123e4567-e89b-12d3-a456-42661417400",
		"123e4567-e89b-12d3-a456-4266141740000",
	}
	for _, v := range invalid {
		assert.Falsef(t, OrgIDPattern.MatchString(v), "expected %q not to match", v)
	}
}
