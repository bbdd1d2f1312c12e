package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrSyncOrdersCommandIsNotConstructed = errors.New(
	"SyncOrdersCommand must be created via NewSyncOrdersCommand constructor",
)

// SyncOrdersCommand asks the backend to re-pull orders from the upstream
// commerce platform.
type SyncOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewSyncOrdersCommand() SyncOrdersCommand {
	return SyncOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c SyncOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrdersCommandIsNotConstructed)
}
