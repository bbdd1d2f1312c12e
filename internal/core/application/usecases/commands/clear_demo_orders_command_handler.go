package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
)

// ClearDemoOrdersCommandHandler confirms, asks the backend to drop demo
// orders and refreshes. Being destructive, a failure raises an alert.
type ClearDemoOrdersCommandHandler struct {
	backend   ports.OrderBackend
	alerter   ports.Alerter
	refresher boardRefresher
	recorder  activityRecorder
	logger    *slog.Logger
}

func NewClearDemoOrdersCommandHandler(
	backend ports.OrderBackend,
	store *dashboard.Store,
	alerter ports.Alerter,
	journal ports.ActivityJournal,
	logger *slog.Logger,
) ClearDemoOrdersCommandHandler {
	return ClearDemoOrdersCommandHandler{
		backend:   backend,
		alerter:   alerter,
		refresher: boardRefresher{backend: backend, store: store, logger: logger},
		recorder:  activityRecorder{journal: journal, logger: logger},
		logger:    logger,
	}
}

func (h ClearDemoOrdersCommandHandler) Handle(ctx context.Context, command ClearDemoOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	attempt := activity.Attempt{Operation: activity.OperationClearDemo}

	ok, err := command.Confirmer().Confirm(ctx, "Remove all demo orders?")
	if err != nil {
		return fmt.Errorf("confirm demo clear: %w", err)
	}
	if !ok {
		attempt.Outcome = activity.OutcomeDeclined
		h.recorder.record(ctx, attempt, nil)
		return ErrDeletionDeclined
	}

	if err = h.backend.ClearDemo(ctx); err != nil {
		err = fmt.Errorf("clear demo orders: %w", err)
		h.logger.ErrorContext(ctx, "Failed to clear demo orders", "error", err)
		h.alerter.Alert(ctx, "Failed to clear demo orders. Please try again.")
		h.recorder.record(ctx, attempt, err)
		return err
	}

	h.recorder.record(ctx, attempt, nil)
	h.refresher.settleRefresh(ctx)
	return nil
}
