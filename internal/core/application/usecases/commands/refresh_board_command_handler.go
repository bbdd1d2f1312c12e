package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/ports"
)

// RefreshBoardCommandHandler fetches orders, then stats. Each snapshot that
// arrives replaces its predecessor even if the other fetch fails, so a
// partial failure leaves the board partly fresh and partly stale until the
// next refresh.
type RefreshBoardCommandHandler struct {
	refresher boardRefresher
}

func NewRefreshBoardCommandHandler(
	backend ports.OrderBackend,
	store *dashboard.Store,
	logger *slog.Logger,
) RefreshBoardCommandHandler {
	return RefreshBoardCommandHandler{
		refresher: boardRefresher{backend: backend, store: store, logger: logger},
	}
}

// Handle returns the joined fetch errors, if any.
func (h RefreshBoardCommandHandler) Handle(ctx context.Context, command RefreshBoardCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return h.refresher.refresh(ctx)
}
