package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// ErrDeletionDeclined is returned when the operator answers no. It is a
// normal early exit: nothing was sent and no guard was taken.
var ErrDeletionDeclined = errors.New("deletion declined by operator")

// DeleteOrderCommandHandler runs the deletion workflow:
//
//  1. refuse orders that are not on the board, or whose deletion is still in flight
//  2. ask for confirmation; a no stops here
//  3. mark the order as being deleted and call the backend
//  4. on success refresh the board; on failure alert the operator
//  5. clear the mark in every case
//
// The order stays on the board after a failed deletion. Deleting is
// irreversible; there is no undo.
type DeleteOrderCommandHandler struct {
	store     *dashboard.Store
	backend   ports.OrderBackend
	alerter   ports.Alerter
	refresher boardRefresher
	recorder  activityRecorder
	logger    *slog.Logger
}

func NewDeleteOrderCommandHandler(
	backend ports.OrderBackend,
	store *dashboard.Store,
	alerter ports.Alerter,
	journal ports.ActivityJournal,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		store:     store,
		backend:   backend,
		alerter:   alerter,
		refresher: boardRefresher{backend: backend, store: store, logger: logger},
		recorder:  activityRecorder{journal: journal, logger: logger},
		logger:    logger,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	id := command.OrderID()
	if _, ok := h.store.Board().Find(id); !ok {
		return errs.NewObjectNotFoundError("order_id", id.String())
	}
	if h.store.IsDeleting(id) {
		return dashboard.ErrDeletionInProgress
	}

	attempt := activity.Attempt{Operation: activity.OperationDelete, OrderID: id.String()}

	ok, err := command.Confirmer().Confirm(ctx, fmt.Sprintf("Delete order %s? This cannot be undone.", id))
	if err != nil {
		return fmt.Errorf("confirm deletion of order %s: %w", id, err)
	}
	if !ok {
		attempt.Outcome = activity.OutcomeDeclined
		h.recorder.record(ctx, attempt, nil)
		return ErrDeletionDeclined
	}

	if err = h.store.BeginDeletion(id); err != nil {
		return err
	}
	defer h.store.EndDeletion(id)

	if err = h.backend.Delete(ctx, id); err != nil {
		err = fmt.Errorf("delete order %s: %w", id, err)
		h.logger.ErrorContext(ctx, "Failed to delete order", "order_id", id.String(), "error", err)
		h.alerter.Alert(ctx, fmt.Sprintf("Failed to delete order %s. Please try again.", id))
		h.recorder.record(ctx, attempt, err)
		return err
	}

	h.recorder.record(ctx, attempt, nil)
	h.refresher.settleRefresh(ctx)
	return nil
}
