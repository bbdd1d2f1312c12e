package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
)

// SyncOrdersCommandHandler runs one reconciliation pass at a time.
//
// While a pass is in flight the store reports Syncing and a second request
// fails fast with dashboard.ErrSyncInProgress without reaching the backend.
//
// Example:
//
//	err := handler.Handle(ctx, NewSyncOrdersCommand())
//	if errors.Is(err, dashboard.ErrSyncInProgress) {
//	    // button stays disabled; nothing to do
//	}
type SyncOrdersCommandHandler struct {
	store     *dashboard.Store
	backend   ports.OrderBackend
	refresher boardRefresher
	recorder  activityRecorder
	logger    *slog.Logger
}

func NewSyncOrdersCommandHandler(
	backend ports.OrderBackend,
	store *dashboard.Store,
	journal ports.ActivityJournal,
	logger *slog.Logger,
) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		store:     store,
		backend:   backend,
		refresher: boardRefresher{backend: backend, store: store, logger: logger},
		recorder:  activityRecorder{journal: journal, logger: logger},
		logger:    logger,
	}
}

// Handle clears the syncing flag on every path, refreshing the board only
// when the backend reported success.
func (h SyncOrdersCommandHandler) Handle(ctx context.Context, command SyncOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.store.BeginSync(); err != nil {
		return err
	}
	defer h.store.EndSync()

	attempt := activity.Attempt{Operation: activity.OperationSync}

	if err := h.backend.Sync(ctx); err != nil {
		err = fmt.Errorf("sync orders: %w", err)
		h.logger.ErrorContext(ctx, "Failed to sync orders", "error", err)
		h.store.RecordFailure(FailureSync, "", err)
		h.recorder.record(ctx, attempt, err)
		return err
	}

	h.recorder.record(ctx, attempt, nil)
	h.refresher.settleRefresh(ctx)
	return nil
}
