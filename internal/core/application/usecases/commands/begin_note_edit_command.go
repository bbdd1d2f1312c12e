package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrBeginNoteEditCommandIsNotConstructed = errors.New(
	"BeginNoteEditCommand must be created via NewBeginNoteEditCommand constructor",
)

// BeginNoteEditCommand opens the note of one order for editing.
type BeginNoteEditCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewBeginNoteEditCommand(orderID string) (BeginNoteEditCommand, error) {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return BeginNoteEditCommand{}, err
	}
	return BeginNoteEditCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c BeginNoteEditCommand) Validate() error {
	return c.guard.Validate(ErrBeginNoteEditCommandIsNotConstructed)
}

func (c BeginNoteEditCommand) OrderID() kernel.OrderID {
	return c.orderID
}
