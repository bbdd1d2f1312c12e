package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/ports"
)

// Operation names recorded as the board's last failure.
const (
	FailureFetchOrders = "fetch_orders"
	FailureFetchStats  = "fetch_stats"
	FailureTransition  = "transition"
	FailureNoteUpdate  = "note_update"
	FailureSync        = "sync"
)

// boardRefresher re-fetches the order list and then the stats. The two
// fetches are independent: a failed order fetch does not skip the stats.
type boardRefresher struct {
	backend ports.OrderBackend
	store   *dashboard.Store
	logger  *slog.Logger
}

func (r boardRefresher) refresh(ctx context.Context) error {
	var ordersErr, statsErr error

	orders, err := r.backend.FetchOrders(ctx)
	if err != nil {
		ordersErr = fmt.Errorf("fetch orders: %w", err)
		r.logger.ErrorContext(ctx, "Failed to fetch orders", "error", err)
		r.store.RecordFailure(FailureFetchOrders, "", ordersErr)
	} else {
		r.store.ReplaceOrders(orders)
	}

	stats, err := r.backend.FetchStats(ctx)
	if err != nil {
		statsErr = fmt.Errorf("fetch stats: %w", err)
		r.logger.ErrorContext(ctx, "Failed to fetch stats", "error", err)
		r.store.RecordFailure(FailureFetchStats, "", statsErr)
	} else {
		r.store.ReplaceStats(stats)
	}

	if err := errors.Join(ordersErr, statsErr); err != nil {
		return err
	}
	r.store.ClearFailure()
	return nil
}

// settleRefresh runs a refresh after a successful mutation. A failed refresh
// does not turn the mutation into a failure; it is already logged and
// recorded on the board.
func (r boardRefresher) settleRefresh(ctx context.Context) {
	_ = r.refresh(ctx)
}
