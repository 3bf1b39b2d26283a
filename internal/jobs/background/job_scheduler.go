package background

import (
	"context"
	"log"
	"sync"
	"time"

	"agrihub/internal/caching"
	"agrihub/internal/models"
	"agrihub/internal/repositories"
	"agrihub/internal/tenant"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// JobScheduler manages background jobs
type JobScheduler struct {
	scheduler gocron.Scheduler
	cacheSvc  caching.CacheService
	orgRepo   repositories.OrganizationRepository
	stock     tenant.Store[models.InventoryItem]
	feed      tenant.Feed
	jobs      map[string]gocron.Job

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	accessors map[uuid.UUID]*tenant.Accessor[models.InventoryItem]
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(cacheSvc caching.CacheService, orgRepo repositories.OrganizationRepository, stock tenant.Store[models.InventoryItem], feed tenant.Feed) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	js := &JobScheduler{
		scheduler: scheduler,
		cacheSvc:  cacheSvc,
		orgRepo:   orgRepo,
		stock:     stock,
		feed:      feed,
		jobs:      make(map[string]gocron.Job),
		ctx:       ctx,
		cancel:    cancel,
		accessors: make(map[uuid.UUID]*tenant.Accessor[models.InventoryItem]),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler and tears down feed subscriptions.
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	js.cancel()
	return js.scheduler.Shutdown()
}

// registerJobs registers all background jobs
func (js *JobScheduler) registerJobs() {
	// Low stock sweep - every 30 minutes
	lowStockJob, err := js.scheduler.NewJob(
		gocron.DurationJob(30*time.Minute),
		gocron.NewTask(js.sweepLowStock, context.Background()),
		gocron.WithName("low-stock-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create low stock job: %v", err)
	} else {
		js.jobs["low-stock-sweep"] = lowStockJob
	}

	// Cache cleanup job - every hour
	cacheJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.cleanupCache, context.Background()),
		gocron.WithName("cache-cleanup"),
	)
	if err != nil {
		log.Printf("Failed to create cache cleanup job: %v", err)
	} else {
		js.jobs["cache-cleanup"] = cacheJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

// accessorFor returns the organization's long-lived stock accessor,
// subscribing it to the live-update feed on first use so the mirror
// tracks inventory changes between sweeps.
func (js *JobScheduler) accessorFor(orgID uuid.UUID) *tenant.Accessor[models.InventoryItem] {
	js.mu.Lock()
	defer js.mu.Unlock()
	accessor, ok := js.accessors[orgID]
	if !ok {
		accessor = tenant.NewAccessor[models.InventoryItem](tenant.Config{
			Resource:    "inventory_items",
			Order:       tenant.Order{Field: "name", Ascending: true},
			LiveUpdates: true,
		}, js.stock, js.feed)
		if err := accessor.Start(js.ctx, tenant.NewScope(orgID, nil)); err != nil {
			log.Printf("WARN: live updates unavailable for organization %s: %v", orgID, err)
		}
		js.accessors[orgID] = accessor
	}
	return accessor
}

// sweepLowStock walks every organization's stock through a scoped
// accessor and logs items at or below their minimum threshold.
func (js *JobScheduler) sweepLowStock(ctx context.Context) {
	orgs, err := js.orgRepo.List(ctx, 1000, 0)
	if err != nil {
		log.Printf("low stock sweep: listing organizations failed: %v", err)
		return
	}

	for _, org := range orgs {
		accessor := js.accessorFor(org.ID)

		items, err := accessor.Fetch(ctx, tenant.NewScope(org.ID, nil))
		if err != nil {
			log.Printf("low stock sweep: fetch failed for organization %s: %v", org.ID, err)
			continue
		}

		for _, item := range items {
			switch item.Status() {
			case models.StockOut:
				log.Printf("ALERT: %q out of stock (organization %s)", item.Name, org.ID)
			case models.StockLow:
				log.Printf("ALERT: %q low on stock, %.2f %s left (organization %s)", item.Name, item.Quantity, item.Unit, org.ID)
			}
		}
	}
}

// cleanupCache drops cached rows so long-idle tenants do not hold
// stale entries.
func (js *JobScheduler) cleanupCache(ctx context.Context) {
	if err := js.cacheSvc.InvalidateAllCache(ctx); err != nil {
		log.Printf("cache cleanup failed: %v", err)
	}
}
