package accounting

import (
	"context"
	"log"
	"regexp"

	"agrihub/internal/models"
	"agrihub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrgIDPattern matches a canonical lowercase UUID, the only accepted
// form of an organization id argument.
var OrgIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// Report summarizes a seeding run. Failed rows include any child whose
// parent row did not make it in.
type Report struct {
	Created int
	Failed  int
}

// Seeder inserts the default chart of accounts for an organization.
type Seeder struct {
	accounts repositories.AccountRepository
	chart    []SeedAccount
}

func NewSeeder(accounts repositories.AccountRepository) *Seeder {
	return &Seeder{accounts: accounts, chart: DefaultChart}
}

// Seed walks the chart in order, resolving each parent code to the id
// created earlier in the same run. A failed insert is logged and
// counted; the run continues so one bad row cannot block the rest of
// the chart. Children of a failed parent are counted as failed too.
func (s *Seeder) Seed(ctx context.Context, orgID uuid.UUID) Report {
	var report Report
	idsByCode := make(map[string]uuid.UUID, len(s.chart))

	for _, entry := range s.chart {
		var parentID *uuid.UUID
		if entry.ParentCode != "" {
			id, ok := idsByCode[entry.ParentCode]
			if !ok {
				log.Printf("seed accounts: %s %q skipped, parent %s not created", entry.Code, entry.Name, entry.ParentCode)
				report.Failed++
				continue
			}
			parentID = &id
		}

		account := &models.Account{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Code:           entry.Code,
			Name:           entry.Name,
			Type:           entry.Type,
			ParentID:       parentID,
			Balance:        decimal.Zero,
		}
		if entry.Description != "" {
			desc := entry.Description
			account.Description = &desc
		}

		if err := s.accounts.Create(ctx, account); err != nil {
			log.Printf("seed accounts: %s %q failed: %v", entry.Code, entry.Name, err)
			report.Failed++
			continue
		}
		idsByCode[entry.Code] = account.ID
		report.Created++
	}
	return report
}
