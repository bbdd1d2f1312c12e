package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderBackend is the remote source of truth for orders. The dashboard never
// mutates orders locally; it asks the backend and fetches again.
//
// Every method returns a non-nil error when the request could not be completed
// or the backend answered with a non-success status. Implementations must
// honour ctx cancellation so a stalled call cannot pin a guard flag.
type OrderBackend interface {
	// FetchOrders returns the complete order list in backend order.
	FetchOrders(ctx context.Context) ([]*order.Order, error)

	// FetchStats returns the per-status counts computed by the backend.
	FetchStats(ctx context.Context) (board.Stats, error)

	// Sync asks the backend to re-pull orders from the upstream commerce
	// platform. The reconciliation algorithm is entirely the backend's.
	Sync(ctx context.Context) error

	// UpdateStatus moves the order to status. The backend is authoritative
	// on legality and may reject the request.
	UpdateStatus(ctx context.Context, id kernel.OrderID, status order.Status) error

	// UpdateNote replaces the order's note text.
	UpdateNote(ctx context.Context, id kernel.OrderID, note string) error

	// Delete removes the order. It cannot be undone.
	Delete(ctx context.Context, id kernel.OrderID) error

	// ClearDemo removes every demo order. Maintenance only.
	ClearDemo(ctx context.Context) error

	// Health checks that the backend answers.
	Health(ctx context.Context) error
}
