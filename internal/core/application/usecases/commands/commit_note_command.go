package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrCommitNoteCommandIsNotConstructed = errors.New(
	"CommitNoteCommand must be created via NewCommitNoteCommand constructor",
)

// CommitNoteCommand sends the active draft as the note of orderID.
type CommitNoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewCommitNoteCommand(orderID string) (CommitNoteCommand, error) {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return CommitNoteCommand{}, err
	}
	return CommitNoteCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c CommitNoteCommand) Validate() error {
	return c.guard.Validate(ErrCommitNoteCommandIsNotConstructed)
}

func (c CommitNoteCommand) OrderID() kernel.OrderID {
	return c.orderID
}
