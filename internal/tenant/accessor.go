package tenant

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
)

// ErrNoTenant is returned when a write is attempted without a resolved
// organization scope.
var ErrNoTenant = errors.New("no organization scope resolved")

// Resource is a row type the accessor can manage. WithTenant returns a
// copy stamped with the scope's organization and, when set, farm.
type Resource[T any] interface {
	ResourceID() uuid.UUID
	WithTenant(orgID uuid.UUID, farmID *uuid.UUID) T
}

// Store is the persistence boundary of an accessor. Implementations
// must bind the scope's organization on every statement.
type Store[T any] interface {
	Select(ctx context.Context, scope Scope, filters []Filter, order Order) ([]T, error)
	Insert(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, scope Scope, item T) (T, error)
	Delete(ctx context.Context, scope Scope, id uuid.UUID) error
}

// Config describes one accessor: the resource name used for feed
// channels, the declared filters and ordering, and whether rows narrow
// to the scope's farm.
type Config struct {
	Resource    string
	Filters     []Filter
	Order       Order
	FarmScoped  bool
	LiveUpdates bool
}

// Accessor reads and writes rows of one resource under an explicit
// tenant scope, keeping an in-memory mirror of the last successful
// fetch. Writes update the mirror optimistically and roll it back when
// the store rejects them. All methods are safe for concurrent use.
type Accessor[T Resource[T]] struct {
	cfg   Config
	store Store[T]
	feed  Feed

	mu   sync.Mutex
	rows []T
	err  error
}

// NewAccessor builds an accessor over store. feed may be nil when
// cfg.LiveUpdates is false.
func NewAccessor[T Resource[T]](cfg Config, store Store[T], feed Feed) *Accessor[T] {
	return &Accessor[T]{cfg: cfg, store: store, feed: feed}
}

// Rows returns a copy of the current mirror.
func (a *Accessor[T]) Rows() []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]T, len(a.rows))
	copy(out, a.rows)
	return out
}

// Err returns the error recorded by the last failed operation, cleared
// by the next successful fetch.
func (a *Accessor[T]) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Fetch loads the rows visible under scope and replaces the mirror.
// Without an organization scope it empties the mirror and succeeds,
// matching the signed-out and mid-onboarding states. On store failure
// the previous mirror is preserved.
func (a *Accessor[T]) Fetch(ctx context.Context, scope Scope) ([]T, error) {
	if !scope.Active() {
		a.mu.Lock()
		a.rows = nil
		a.err = nil
		a.mu.Unlock()
		return nil, nil
	}

	scoped := scope
	if !a.cfg.FarmScoped {
		scoped.FarmID = nil
	}
	rows, err := a.store.Select(ctx, scoped, ActiveFilters(a.cfg.Filters), a.cfg.Order)
	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.err = err
		return nil, err
	}
	a.rows = rows
	a.err = nil
	out := make([]T, len(rows))
	copy(out, rows)
	return out, nil
}

// Create stamps item with the scope and inserts it, appending to the
// mirror first. Returns ErrNoTenant without touching the mirror when
// no organization is resolved.
func (a *Accessor[T]) Create(ctx context.Context, scope Scope, item T) (T, error) {
	var zero T
	if !scope.Active() {
		a.mu.Lock()
		a.err = ErrNoTenant
		a.mu.Unlock()
		return zero, ErrNoTenant
	}

	var farmID *uuid.UUID
	if a.cfg.FarmScoped {
		farmID = scope.FarmID
	}
	item = item.WithTenant(*scope.OrganizationID, farmID)

	// The store may assign the definitive ID at insert time, so the
	// optimistic row is tracked under its pre-insert ID.
	optimisticID := item.ResourceID()
	a.mu.Lock()
	a.rows = append(a.rows, item)
	a.mu.Unlock()

	created, err := a.store.Insert(ctx, item)
	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.rows = removeByID(a.rows, optimisticID)
		a.err = err
		return zero, err
	}
	a.rows = removeByID(a.rows, optimisticID)
	a.rows = replaceByID(a.rows, created)
	a.err = nil
	return created, nil
}

// Update replaces the row in the mirror, then persists it. On store
// failure the previous row is restored.
func (a *Accessor[T]) Update(ctx context.Context, scope Scope, item T) (T, error) {
	var zero T
	if !scope.Active() {
		a.mu.Lock()
		a.err = ErrNoTenant
		a.mu.Unlock()
		return zero, ErrNoTenant
	}

	a.mu.Lock()
	prev, had := findByID(a.rows, item.ResourceID())
	a.rows = replaceByID(a.rows, item)
	a.mu.Unlock()

	updated, err := a.store.Update(ctx, scope, item)
	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		if had {
			a.rows = replaceByID(a.rows, prev)
		} else {
			a.rows = removeByID(a.rows, item.ResourceID())
		}
		a.err = err
		return zero, err
	}
	a.rows = replaceByID(a.rows, updated)
	a.err = nil
	return updated, nil
}

// Delete removes the row from the mirror, then from the store. On
// store failure the row is restored.
func (a *Accessor[T]) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if !scope.Active() {
		a.mu.Lock()
		a.err = ErrNoTenant
		a.mu.Unlock()
		return ErrNoTenant
	}

	a.mu.Lock()
	prev, had := findByID(a.rows, id)
	a.rows = removeByID(a.rows, id)
	a.mu.Unlock()

	err := a.store.Delete(ctx, scope, id)
	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		if had {
			a.rows = append(a.rows, prev)
		}
		a.err = err
		return err
	}
	a.err = nil
	return nil
}

// Start subscribes to the live-update feed for scope and reconciles
// incoming events into the mirror until ctx is cancelled. It is a
// no-op when live updates are disabled or no organization is resolved.
func (a *Accessor[T]) Start(ctx context.Context, scope Scope) error {
	if !a.cfg.LiveUpdates || a.feed == nil || !scope.Active() {
		return nil
	}
	events, err := a.feed.Subscribe(ctx, a.cfg.Resource, scope.OrganizationID.String())
	if err != nil {
		return err
	}
	go func() {
		for ev := range events {
			a.mu.Lock()
			rows, err := ApplyEvent(a.rows, ev)
			if err != nil {
				log.Printf("feed: dropping %s event for %s: %v", ev.Kind, a.cfg.Resource, err)
			} else {
				a.rows = rows
			}
			a.mu.Unlock()
		}
	}()
	return nil
}

func findByID[T Resource[T]](rows []T, id uuid.UUID) (T, bool) {
	for _, r := range rows {
		if r.ResourceID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func replaceByID[T Resource[T]](rows []T, item T) []T {
	for i, r := range rows {
		if r.ResourceID() == item.ResourceID() {
			rows[i] = item
			return rows
		}
	}
	return append(rows, item)
}

func removeByID[T Resource[T]](rows []T, id uuid.UUID) []T {
	for i, r := range rows {
		if r.ResourceID() == id {
			return append(rows[:i], rows[i+1:]...)
		}
	}
	return rows
}
