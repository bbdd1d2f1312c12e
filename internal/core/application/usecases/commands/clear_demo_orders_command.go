package commands

import (
	"errors"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrClearDemoOrdersCommandIsNotConstructed = errors.New(
	"ClearDemoOrdersCommand must be created via NewClearDemoOrdersCommand constructor",
)

// ClearDemoOrdersCommand removes every demo order from the backend. It is a
// maintenance operation and asks for confirmation like a deletion.
type ClearDemoOrdersCommand struct {
	confirmer ports.Confirmer

	guard guard.ConstructorGuard
}

func NewClearDemoOrdersCommand(confirmer ports.Confirmer) (ClearDemoOrdersCommand, error) {
	if confirmer == nil {
		return ClearDemoOrdersCommand{}, errs.NewValueIsRequiredError("confirmer")
	}
	return ClearDemoOrdersCommand{confirmer: confirmer, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearDemoOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearDemoOrdersCommandIsNotConstructed)
}

func (c ClearDemoOrdersCommand) Confirmer() ports.Confirmer {
	return c.confirmer
}
