package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/pkg/guard"
)

var ErrDismissAlertsCommandIsNotConstructed = errors.New(
	"DismissAlertsCommand must be created via NewDismissAlertsCommand constructor",
)

// DismissAlertsCommand acknowledges every pending alert.
type DismissAlertsCommand struct {
	guard guard.ConstructorGuard
}

func NewDismissAlertsCommand() DismissAlertsCommand {
	return DismissAlertsCommand{guard: guard.NewConstructorGuard()}
}

func (c DismissAlertsCommand) Validate() error {
	return c.guard.Validate(ErrDismissAlertsCommandIsNotConstructed)
}

type DismissAlertsCommandHandler struct {
	store *dashboard.Store
}

func NewDismissAlertsCommandHandler(store *dashboard.Store) DismissAlertsCommandHandler {
	return DismissAlertsCommandHandler{store: store}
}

// Handle returns how many alerts were dismissed.
func (h DismissAlertsCommandHandler) Handle(_ context.Context, command DismissAlertsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}
	return h.store.DismissAlerts(), nil
}
