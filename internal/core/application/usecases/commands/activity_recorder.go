package commands

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
)

// activityRecorder writes settled attempts to the journal. A nil journal
// disables recording.
type activityRecorder struct {
	journal ports.ActivityJournal
	logger  *slog.Logger
}

func (r activityRecorder) record(ctx context.Context, a activity.Attempt, err error) {
	if r.journal == nil {
		return
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}
	if err != nil && a.Outcome == "" {
		a.Outcome = activity.OutcomeFailed
		a.Message = err.Error()
	}
	if a.Outcome == "" {
		a.Outcome = activity.OutcomeSucceeded
	}

	entry, buildErr := activity.NewEntry(a)
	if buildErr != nil {
		r.logger.WarnContext(ctx, "Skipping invalid activity entry", "operation", a.Operation, "error", buildErr)
		return
	}
	if addErr := r.journal.Add(ctx, entry); addErr != nil {
		r.logger.WarnContext(ctx, "Failed to record activity",
			"operation", a.Operation, "order_id", a.OrderID, "error", addErr)
	}
}
