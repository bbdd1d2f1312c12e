// Package guard holds small helpers that protect value types against being
// used without their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Commands and
// queries embed one so that a zero value is rejected by their Validate method:
//
//	type SyncOrdersCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSyncOrdersCommand() SyncOrdersCommand {
//	    return SyncOrdersCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c SyncOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrSyncOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
