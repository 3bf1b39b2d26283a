package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"agrihub/internal/accounting"
	"agrihub/internal/config"
	"agrihub/internal/repositories"
	"agrihub/pkg/database"

	"github.com/google/uuid"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: seed-accounts <organization-id>")
	fmt.Fprintln(os.Stderr, "  organization-id  lowercase UUID of the organization to seed")
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	orgIDArg := os.Args[1]
	if !accounting.OrgIDPattern.MatchString(orgIDArg) {
		fmt.Fprintf(os.Stderr, "Invalid organization id: %q\n", orgIDArg)
		usage()
		os.Exit(1)
	}
	orgID := uuid.MustParse(orgIDArg)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	seeder := accounting.NewSeeder(repositories.NewAccountRepository(pool))
	report := seeder.Seed(context.Background(), orgID)

	// Partial failure is reported but does not fail the run; rows that
	// made it in are usable immediately.
	log.Printf("Chart of accounts seeded for %s: %d created, %d failed", orgID, report.Created, report.Failed)
}
