package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderBackend struct{ mock.Mock }

func (m *MockOrderBackend) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderBackend) FetchStats(ctx context.Context) (board.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(board.Stats), args.Error(1)
}

func (m *MockOrderBackend) Sync(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderBackend) UpdateStatus(ctx context.Context, id kernel.OrderID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderBackend) UpdateNote(ctx context.Context, id kernel.OrderID, note string) error {
	args := m.Called(ctx, id, note)
	return args.Error(0)
}

func (m *MockOrderBackend) Delete(ctx context.Context, id kernel.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderBackend) ClearDemo(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderBackend) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockActivityJournal struct{ mock.Mock }

func (m *MockActivityJournal) Add(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockConfirmer struct{ mock.Mock }

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

type MockAlerter struct{ mock.Mock }

func (m *MockAlerter) Alert(ctx context.Context, message string) {
	m.Called(ctx, message)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrder(t *testing.T, id, status string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{OrderID: id, LocalStatus: status})
	require.NoError(t, err)
	return o
}

func newOrderWithNote(t *testing.T, id, status, note string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{OrderID: id, LocalStatus: status, Notes: note})
	require.NoError(t, err)
	return o
}

func seededStore(orders []*order.Order, counts map[string]int) *dashboard.Store {
	s := dashboard.NewStore()
	s.ReplaceOrders(orders)
	s.ReplaceStats(board.NewStats(counts))
	return s
}

// entryWith matches journal entries by operation and outcome.
func entryWith(op activity.Operation, outcome activity.Outcome) any {
	return mock.MatchedBy(func(e *activity.Entry) bool {
		return e.Operation == op && e.Outcome == outcome
	})
}

func orderIDs(orders []*order.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID().String())
	}
	return ids
}
