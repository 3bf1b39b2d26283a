package tenant

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ApplyEvent folds one feed event into rows and returns the result.
// Reconciliation is last writer wins by row id: inserts and updates
// both land as an upsert, so replayed or reordered events converge on
// the same final state. The input slice may be mutated.
func ApplyEvent[T Resource[T]](rows []T, ev Event) ([]T, error) {
	id, err := uuid.Parse(ev.ID)
	if err != nil {
		return rows, fmt.Errorf("event id: %w", err)
	}
	switch ev.Kind {
	case EventInsert, EventUpdate:
		var row T
		if err := json.Unmarshal(ev.Row, &row); err != nil {
			return rows, fmt.Errorf("event row: %w", err)
		}
		return replaceByID(rows, row), nil
	case EventDelete:
		return removeByID(rows, id), nil
	default:
		return rows, fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}
