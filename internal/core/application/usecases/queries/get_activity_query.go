package queries

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 500
)

var ErrGetActivityQueryIsNotConstructed = errors.New(
	"GetActivityQuery must be created via NewGetActivityQuery constructor",
)

// GetActivityQuery lists journal entries, newest first, optionally for one
// order only.
//
// Example:
//
//	query, _ := NewGetActivityQuery("1001", 0) // default limit
//	entries, err := handler.Handle(ctx, query)
type GetActivityQuery struct { //nolint:recvcheck //using for validation
	orderID *kernel.OrderID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetActivityQuery treats a blank orderID as "every order" and a zero
// limit as DefaultActivityLimit.
func NewGetActivityQuery(orderID string, limit int) (GetActivityQuery, error) {
	q := GetActivityQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setLimit(limit),
	); err != nil {
		return GetActivityQuery{}, err
	}
	return q, nil
}

func (q GetActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetActivityQueryIsNotConstructed)
}

// OrderID is nil when the query spans every order.
func (q GetActivityQuery) OrderID() *kernel.OrderID {
	return q.orderID
}

func (q GetActivityQuery) Limit() int {
	return q.limit
}

func (q *GetActivityQuery) setOrderID(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	id, err := kernel.NewOrderID(s)
	if err != nil {
		return err
	}
	q.orderID = &id
	return nil
}

func (q *GetActivityQuery) setLimit(limit int) error {
	if limit == 0 {
		limit = DefaultActivityLimit
	}
	if limit < 1 || limit > MaxActivityLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxActivityLimit)
	}
	q.limit = limit
	return nil
}

// GetActivityQueryResponse is one journal line.
type GetActivityQueryResponse struct {
	ID         kernel.UUID
	Operation  string
	OrderID    string
	FromStatus string
	ToStatus   string
	Outcome    string
	Message    string
	OccurredAt time.Time
}
