package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/pkg/errs"
)

// BeginNoteEditCommandHandler makes the order the single active edit target,
// seeding the draft with the note currently on the board. An edit already in
// progress, for this or any other order, is dropped without a remote call.
type BeginNoteEditCommandHandler struct {
	store  *dashboard.Store
	logger *slog.Logger
}

func NewBeginNoteEditCommandHandler(store *dashboard.Store, logger *slog.Logger) BeginNoteEditCommandHandler {
	return BeginNoteEditCommandHandler{store: store, logger: logger}
}

func (h BeginNoteEditCommandHandler) Handle(ctx context.Context, command BeginNoteEditCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	o, ok := h.store.Board().Find(command.OrderID())
	if !ok {
		return errs.NewObjectNotFoundError("order_id", command.OrderID().String())
	}

	if replaced := h.store.BeginNoteEdit(o.OrderID(), o.Notes()); replaced != nil {
		h.logger.DebugContext(ctx, "Discarded note draft",
			"order_id", replaced.OrderID.String(), "replaced_by", o.OrderID().String())
	}
	return nil
}
