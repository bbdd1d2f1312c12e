package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand asks the backend to move one order to a new
// status.
//
// Example:
//
//	cmd, err := NewTransitionOrderStatusCommand("1001", "confirmed")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand validates the order id and requires target
// to be one of the seven statuses. Whether target is reachable from the
// order's current status is left to the backend.
func NewTransitionOrderStatusCommand(orderID, target string) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderStatusCommand) setOrderID(s string) error {
	id, err := kernel.NewOrderID(s)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *TransitionOrderStatusCommand) setTarget(s string) error {
	st := order.ParseStatus(s)
	if err := st.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a status", s))
	}
	c.target = st
	return nil
}
