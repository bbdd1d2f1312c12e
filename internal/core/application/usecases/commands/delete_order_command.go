package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes one order after the operator confirms.
//
// The confirmer is asked by the handler, so the same command works with an
// interactive prompt and with a confirmation already given up front.
//
// Example:
//
//	cmd, err := NewDeleteOrderCommand("1001", prompt)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDeletionDeclined) {
//	    return nil
//	}
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	confirmer ports.Confirmer

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID string, confirmer ports.Confirmer) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setConfirmer(confirmer),
	); err != nil {
		return DeleteOrderCommand{}, err
	}
	return cmd, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c DeleteOrderCommand) Confirmer() ports.Confirmer {
	return c.confirmer
}

func (c *DeleteOrderCommand) setOrderID(s string) error {
	id, err := kernel.NewOrderID(s)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *DeleteOrderCommand) setConfirmer(confirmer ports.Confirmer) error {
	if confirmer == nil {
		return errs.NewValueIsRequiredError("confirmer")
	}
	c.confirmer = confirmer
	return nil
}
