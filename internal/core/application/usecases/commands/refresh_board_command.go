package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrRefreshBoardCommandIsNotConstructed = errors.New(
	"RefreshBoardCommand must be created via NewRefreshBoardCommand constructor",
)

// RefreshBoardCommand re-fetches the order list and the stats from the
// backend and replaces both snapshots in the store.
//
// Example:
//
//	handler := NewRefreshBoardCommandHandler(backend, store, logger)
//	if err := handler.Handle(ctx, NewRefreshBoardCommand()); err != nil {
//	    log.Printf("board is stale: %v", err)
//	}
type RefreshBoardCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshBoardCommand() RefreshBoardCommand {
	return RefreshBoardCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RefreshBoardCommand) Validate() error {
	return c.guard.Validate(ErrRefreshBoardCommandIsNotConstructed)
}
