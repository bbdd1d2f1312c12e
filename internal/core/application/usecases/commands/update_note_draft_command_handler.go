package commands

import (
	"context"

	"orderdesk/internal/core/application/dashboard"
)

// UpdateNoteDraftCommandHandler edits the draft in the store only. It fails
// with dashboard.ErrNoActiveNoteEdit when no note is open.
type UpdateNoteDraftCommandHandler struct {
	store *dashboard.Store
}

func NewUpdateNoteDraftCommandHandler(store *dashboard.Store) UpdateNoteDraftCommandHandler {
	return UpdateNoteDraftCommandHandler{store: store}
}

func (h UpdateNoteDraftCommandHandler) Handle(_ context.Context, command UpdateNoteDraftCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return h.store.UpdateDraft(command.Text())
}
