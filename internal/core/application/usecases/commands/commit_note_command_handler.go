package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
)

// CommitNoteCommandHandler saves the active draft.
//
// The edit must target the command's order. On success the edit is closed
// and the board refreshed. On failure the edit stays open with the draft
// intact so the operator can try again.
type CommitNoteCommandHandler struct {
	store     *dashboard.Store
	backend   ports.OrderBackend
	refresher boardRefresher
	recorder  activityRecorder
	logger    *slog.Logger
}

func NewCommitNoteCommandHandler(
	backend ports.OrderBackend,
	store *dashboard.Store,
	journal ports.ActivityJournal,
	logger *slog.Logger,
) CommitNoteCommandHandler {
	return CommitNoteCommandHandler{
		store:     store,
		backend:   backend,
		refresher: boardRefresher{backend: backend, store: store, logger: logger},
		recorder:  activityRecorder{journal: journal, logger: logger},
		logger:    logger,
	}
}

func (h CommitNoteCommandHandler) Handle(ctx context.Context, command CommitNoteCommand) (err error) {
	if err = command.Validate(); err != nil {
		return err
	}

	commit, err := h.store.StartNoteCommit(command.OrderID())
	if err != nil {
		return err
	}
	defer func() {
		h.store.FinishNoteCommit(commit, err == nil)
	}()

	id := command.OrderID()
	attempt := activity.Attempt{Operation: activity.OperationNoteUpdate, OrderID: id.String()}

	if err = h.backend.UpdateNote(ctx, id, commit.Draft); err != nil {
		err = fmt.Errorf("update note of order %s: %w", id, err)
		h.logger.ErrorContext(ctx, "Failed to update order note", "order_id", id.String(), "error", err)
		h.store.RecordFailure(FailureNoteUpdate, id.String(), err)
		h.recorder.record(ctx, attempt, err)
		return err
	}

	h.recorder.record(ctx, attempt, nil)
	h.refresher.settleRefresh(ctx)
	return nil
}
