package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/activity"
)

// ActivityJournal persists settled mutation attempts. Reading the journal is
// a query concern and goes straight to the database.
type ActivityJournal interface {
	// Add appends one entry. Entries are never updated or removed.
	Add(ctx context.Context, entry *activity.Entry) error
}
