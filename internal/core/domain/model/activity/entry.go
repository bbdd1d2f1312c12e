// Package activity models the journal of mutations operators issued from the
// dashboard: what was attempted, against which order, and how it ended.
package activity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Operation names a dashboard mutation.
type Operation string

const (
	OperationTransition Operation = "transition"
	OperationNoteUpdate Operation = "note_update"
	OperationDelete     Operation = "delete"
	OperationSync       Operation = "sync"
	OperationClearDemo  Operation = "clear_demo"
)

func (o Operation) Validate() error {
	switch o {
	case OperationTransition, OperationNoteUpdate, OperationDelete, OperationSync, OperationClearDemo:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("operation", fmt.Errorf("%q is not an operation", string(o)))
}

// Outcome is how an attempted mutation settled.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	// OutcomeDeclined means the operator said no at the confirmation prompt;
	// nothing was sent to the backend.
	OutcomeDeclined Outcome = "declined"
)

func (o Outcome) Validate() error {
	switch o {
	case OutcomeSucceeded, OutcomeFailed, OutcomeDeclined:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%q is not an outcome", string(o)))
}

// Attempt describes a settled mutation; it is the input of NewEntry.
type Attempt struct {
	Operation  Operation
	OrderID    string
	FromStatus string
	ToStatus   string
	Outcome    Outcome
	Message    string
	OccurredAt time.Time
}

// Entry is one journal line.
type Entry struct {
	id kernel.UUID
	Attempt

	isConstructed bool
}

// NewEntry validates a and assigns a fresh identifier.
func NewEntry(a Attempt) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), a)
}

// RestoreEntry rebuilds a persisted entry.
func RestoreEntry(id kernel.UUID, a Attempt) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		a.Operation.Validate(),
		a.Outcome.Validate(),
		validateOccurredAt(a.OccurredAt),
	); err != nil {
		return nil, err
	}
	a.OrderID = strings.TrimSpace(a.OrderID)
	a.Message = strings.TrimSpace(a.Message)
	return &Entry{id: id, Attempt: a, isConstructed: true}, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func validateOccurredAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("occurred_at")
	}
	return nil
}
