package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/pkg/guard"
)

var ErrCancelNoteEditCommandIsNotConstructed = errors.New(
	"CancelNoteEditCommand must be created via NewCancelNoteEditCommand constructor",
)

// CancelNoteEditCommand discards the active note edit.
type CancelNoteEditCommand struct {
	guard guard.ConstructorGuard
}

func NewCancelNoteEditCommand() CancelNoteEditCommand {
	return CancelNoteEditCommand{guard: guard.NewConstructorGuard()}
}

func (c CancelNoteEditCommand) Validate() error {
	return c.guard.Validate(ErrCancelNoteEditCommandIsNotConstructed)
}

// CancelNoteEditCommandHandler clears the edit target and its draft without
// any remote call. Cancelling when nothing is open is a no-op.
type CancelNoteEditCommandHandler struct {
	store *dashboard.Store
}

func NewCancelNoteEditCommandHandler(store *dashboard.Store) CancelNoteEditCommandHandler {
	return CancelNoteEditCommandHandler{store: store}
}

func (h CancelNoteEditCommandHandler) Handle(_ context.Context, command CancelNoteEditCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	h.store.CancelNoteEdit()
	return nil
}
