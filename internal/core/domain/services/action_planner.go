package services

import (
	"orderdesk/internal/core/domain/model/order"
)

// Action is one status transition offered to the operator.
type Action struct {
	Target order.Status
	Label  string
}

// ActionPlanner generates the action set for an order. The dashboard only
// ever offers transitions from the lifecycle table, so a transition request
// built from a planned action is legal at the time it was planned.
//
// Example:
//
//	planner := services.NewActionPlanner()
//	for _, a := range planner.Plan(o) {
//	    fmt.Printf("[%s] -> %s\n", a.Label, a.Target)
//	}
type ActionPlanner struct{}

func NewActionPlanner() ActionPlanner {
	return ActionPlanner{}
}

// Plan returns one action per allowed target of o's status, in table order.
// Orders with terminal or unrecognized statuses get an empty, non-nil slice.
func (p ActionPlanner) Plan(o *order.Order) []Action {
	if o == nil {
		return []Action{}
	}
	from := o.Status()
	targets := from.AllowedTransitions()
	actions := make([]Action, 0, len(targets))
	for _, to := range targets {
		actions = append(actions, Action{Target: to, Label: actionLabel(from, to)})
	}
	return actions
}

// Allows reports whether target is among the planned actions for o.
func (p ActionPlanner) Allows(o *order.Order, target order.Status) bool {
	return o != nil && o.Status().CanTransitionTo(target)
}

func actionLabel(from, to order.Status) string {
	switch to {
	case order.Confirmed:
		if from == order.Cancelled {
			return "Re-confirm"
		}
		return "Confirm"
	case order.Cancelled:
		return "Cancel"
	case order.NotPicked:
		return "Not Picked"
	case order.Dispatched:
		return "Dispatch"
	case order.Delivered:
		return "Mark Delivered"
	case order.RTO:
		return "Mark RTO"
	default:
		return to.Label()
	}
}
