package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Status is the dashboard-owned fulfillment stage of an order, distinct from
// any upstream commerce-platform status.
//
// Values received from the backend that are not part of the closed set map to
// Unrecognized rather than being rejected; Order keeps the raw value.
type Status int

const (
	// Unrecognized is the explicit variant for wire values outside the closed
	// set. It is displayed as "Unknown" and offers no actions.
	Unrecognized Status = iota
	New
	Confirmed
	Cancelled
	NotPicked
	Dispatched
	Delivered
	RTO
)

type statusInfo struct {
	name  string
	label string
}

var statusTable = map[Status]statusInfo{
	New:        {"new", "New"},
	Confirmed:  {"confirmed", "Confirmed"},
	Cancelled:  {"cancelled", "Cancelled"},
	NotPicked:  {"not_picked", "Not Picked"},
	Dispatched: {"dispatched", "Dispatched"},
	Delivered:  {"delivered", "Delivered"},
	RTO:        {"rto", "RTO"},
}

// transitions lists, per status, the targets the dashboard offers as actions.
// Order matters: it is the order in which actions are presented.
var transitions = map[Status][]Status{
	New:        {Confirmed, Cancelled},
	Confirmed:  {Dispatched, NotPicked},
	Cancelled:  {Confirmed},
	NotPicked:  {Confirmed, Cancelled},
	Dispatched: {Delivered, RTO},
	Delivered:  nil,
	RTO:        nil,
}

// AllStatuses returns the closed set in display order.
func AllStatuses() []Status {
	return []Status{New, Confirmed, Cancelled, NotPicked, Dispatched, Delivered, RTO}
}

// ParseStatus maps a wire value ("not_picked") to its Status. Matching is
// exact after trimming; anything else is Unrecognized.
func ParseStatus(s string) Status {
	s = strings.TrimSpace(s)
	for status, info := range statusTable {
		if info.name == s {
			return status
		}
	}
	return Unrecognized
}

// String returns the wire name, or "unknown" for Unrecognized.
func (s Status) String() string {
	if info, ok := statusTable[s]; ok {
		return info.name
	}
	return "unknown"
}

// Label returns the display label, "Unknown" for Unrecognized.
func (s Status) Label() string {
	if info, ok := statusTable[s]; ok {
		return info.label
	}
	return "Unknown"
}

// Validate rejects Unrecognized and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusTable[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsActive reports whether the order still needs operator attention before
// dispatch: new, confirmed and not_picked.
func (s Status) IsActive() bool {
	return s == New || s == Confirmed || s == NotPicked
}

// IsTerminal reports whether the status offers no further actions.
func (s Status) IsTerminal() bool {
	return s.Validate() != nil || len(transitions[s]) == 0
}

// AllowedTransitions returns the targets reachable from s, in presentation
// order. The returned slice is a copy.
func (s Status) AllowedTransitions() []Status {
	targets := transitions[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether target is reachable from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateTransition returns an error when target is not reachable from s.
//
// The backend remains authoritative; this exists so callers can refuse to
// present or issue a transition the dashboard would never offer.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(target) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("%s cannot move to %s", s, target),
		)
	}
	return nil
}
