package queries

import (
	"context"
	"errors"
	"strings"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderCountQueryIsNotConstructed = errors.New(
	"GetOrderCountQuery must be created via NewGetOrderCountQuery constructor",
)

// GetOrderCountQuery asks for the count shown on one tab badge. Any status
// key is accepted, including ones the backend reports outside the closed set.
type GetOrderCountQuery struct {
	status string

	guard guard.ConstructorGuard
}

func NewGetOrderCountQuery(status string) (GetOrderCountQuery, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return GetOrderCountQuery{}, errs.NewValueIsRequiredError("status")
	}
	return GetOrderCountQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCountQueryIsNotConstructed)
}

func (q GetOrderCountQuery) Status() string {
	return q.status
}

// GetOrderCountQueryHandler returns the order list length for "all" and the
// stats snapshot value (0 when absent) for anything else.
type GetOrderCountQueryHandler struct {
	store *dashboard.Store
}

func NewGetOrderCountQueryHandler(store *dashboard.Store) GetOrderCountQueryHandler {
	return GetOrderCountQueryHandler{store: store}
}

func (h GetOrderCountQueryHandler) Handle(_ context.Context, query GetOrderCountQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.store.Board().Count(query.Status()), nil
}
