package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// TransitionOrderStatusCommandHandler moves an order through its lifecycle.
//
// The order must be on the current board. The local status is not touched:
// the board keeps showing the previous status until the backend acknowledges
// the change and the follow-up refresh brings the new snapshot in.
//
// Example:
//
//	handler := NewTransitionOrderStatusCommandHandler(backend, store, journal, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // not on the board; refresh first
//	case err != nil:
//	    // backend refused or unreachable; board unchanged
//	}
type TransitionOrderStatusCommandHandler struct {
	store     *dashboard.Store
	backend   ports.OrderBackend
	refresher boardRefresher
	recorder  activityRecorder
	planner   services.ActionPlanner
	logger    *slog.Logger
}

func NewTransitionOrderStatusCommandHandler(
	backend ports.OrderBackend,
	store *dashboard.Store,
	journal ports.ActivityJournal,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		store:     store,
		backend:   backend,
		refresher: boardRefresher{backend: backend, store: store, logger: logger},
		recorder:  activityRecorder{journal: journal, logger: logger},
		planner:   services.NewActionPlanner(),
		logger:    logger,
	}
}

// Handle issues the status update and refreshes on success. There is no
// retry: a failed update is logged, recorded as the board's last failure and
// returned.
func (h TransitionOrderStatusCommandHandler) Handle(ctx context.Context, command TransitionOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	id := command.OrderID()
	current, ok := h.store.Board().Find(id)
	if !ok {
		return errs.NewObjectNotFoundError("order_id", id.String())
	}

	if !h.planner.Allows(current, command.Target()) {
		h.logger.WarnContext(ctx, "Requesting transition outside the lifecycle table",
			"order_id", id.String(), "from", current.RawStatus(), "to", command.Target().String())
	}

	attempt := activity.Attempt{
		Operation:  activity.OperationTransition,
		OrderID:    id.String(),
		FromStatus: current.RawStatus(),
		ToStatus:   command.Target().String(),
	}

	if err := h.backend.UpdateStatus(ctx, id, command.Target()); err != nil {
		err = fmt.Errorf("move order %s to %s: %w", id, command.Target(), err)
		h.logger.ErrorContext(ctx, "Failed to update order status", "order_id", id.String(), "error", err)
		h.store.RecordFailure(FailureTransition, id.String(), err)
		h.recorder.record(ctx, attempt, err)
		return err
	}

	h.recorder.record(ctx, attempt, nil)
	h.refresher.settleRefresh(ctx)
	return nil
}
