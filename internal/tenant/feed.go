package tenant

import (
	"context"
	"encoding/json"
)

// Event kinds carried on the live-update feed.
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// Event is a single change notification for a scoped resource. Row is
// the full serialized row for inserts and updates and is empty for
// deletes.
type Event struct {
	Kind string          `json:"kind"`
	ID   string          `json:"id"`
	Row  json.RawMessage `json:"row,omitempty"`
}

// Feed delivers change events for a resource within an organization.
// Subscribe returns a channel that is closed when ctx is cancelled.
type Feed interface {
	Subscribe(ctx context.Context, resource string, orgID string) (<-chan Event, error)
	Publish(ctx context.Context, resource string, orgID string, event Event) error
}
