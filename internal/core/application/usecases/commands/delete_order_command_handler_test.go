package commands_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Declined(t *testing.T) {
	ctx := t.Context()
	store := seededStore([]*order.Order{newOrder(t, "1001", "new")}, map[string]int{"new": 1})
	backend := &MockOrderBackend{}
	alerter := &MockAlerter{}
	journal := &MockActivityJournal{}
	confirmer := &MockConfirmer{}

	confirmer.On("Confirm", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	journal.On("Add", mock.Anything, entryWith(activity.OperationDelete, activity.OutcomeDeclined)).Return(nil).Once()

	cmd, err := commands.NewDeleteOrderCommand("1001", confirmer)
	require.NoError(t, err)

	handler := commands.NewDeleteOrderCommandHandler(backend, store, alerter, journal, discardLogger())
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrDeletionDeclined)
	assert.Equal(t, []string{"1001"}, orderIDs(store.Board().Orders()))
	assert.Empty(t, store.Snapshot().Deleting)
	backend.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	alerter.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)
	confirmer.AssertExpectations(t)
	journal.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotOnBoard(t *testing.T) {
	ctx := t.Context()
	store := seededStore([]*order.Order{newOrder(t, "1001", "new")}, map[string]int{"new": 1})
	backend := &MockOrderBackend{}
	alerter := &MockAlerter{}
	confirmer := &MockConfirmer{}

	cmd, err := commands.NewDeleteOrderCommand("demo/clear", confirmer)
	require.NoError(t, err)

	handler := commands.NewDeleteOrderCommandHandler(backend, store, alerter, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	alerter.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)
	assert.Empty(t, store.Snapshot().Deleting)
}

func TestDeleteOrderCommandHandler_Handle_BackendFails(t *testing.T) {
	ctx := t.Context()
	store := seededStore([]*order.Order{newOrder(t, "1001", "new")}, map[string]int{"new": 1})
	backend := &MockOrderBackend{}
	alerter := &MockAlerter{}
	confirmer := &MockConfirmer{}
	id := kernel.MustOrderID("1001")

	confirmer.On("Confirm", mock.Anything, mock.Anything).Return(true, nil).Once()
	backend.On("Delete", mock.Anything, id).Return(errors.New("503 service unavailable")).Once()
	alerter.On("Alert", mock.Anything, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Once()

	cmd, err := commands.NewDeleteOrderCommand("1001", confirmer)
	require.NoError(t, err)

	handler := commands.NewDeleteOrderCommandHandler(backend, store, alerter, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	_, stillThere := store.Board().Find(id)
	assert.True(t, stillThere)
	assert.False(t, store.IsDeleting(id))
	alerter.AssertExpectations(t)
	backend.AssertNotCalled(t, "FetchOrders", mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := seededStore(
		[]*order.Order{newOrder(t, "1001", "new"), newOrder(t, "1002", "new")},
		map[string]int{"new": 2},
	)
	backend := &MockOrderBackend{}
	alerter := &MockAlerter{}
	confirmer := &MockConfirmer{}
	journal := &MockActivityJournal{}
	id := kernel.MustOrderID("1001")

	confirmer.On("Confirm", mock.Anything, mock.Anything).Return(true, nil).Once()
	mock.InOrder(
		backend.On("Delete", mock.Anything, id).Return(nil).Once(),
		backend.On("FetchOrders", mock.Anything).Return([]*order.Order{newOrder(t, "1002", "new")}, nil).Once(),
		backend.On("FetchStats", mock.Anything).Return(board.NewStats(map[string]int{"new": 1}), nil).Once(),
	)
	journal.On("Add", mock.Anything, entryWith(activity.OperationDelete, activity.OutcomeSucceeded)).Return(nil).Once()

	cmd, err := commands.NewDeleteOrderCommand("1001", confirmer)
	require.NoError(t, err)

	handler := commands.NewDeleteOrderCommandHandler(backend, store, alerter, journal, discardLogger())

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, []string{"1002"}, orderIDs(store.Board().Orders()))
	assert.False(t, store.IsDeleting(id))
	alerter.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)
	backend.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_SameOrderWhileInFlight(t *testing.T) {
	ctx := t.Context()
	store := seededStore([]*order.Order{newOrder(t, "1001", "new"), newOrder(t, "1002", "new")}, nil)
	backend := &MockOrderBackend{}
	confirmer := &MockConfirmer{}
	id := kernel.MustOrderID("1001")

	started := make(chan struct{})
	release := make(chan struct{})
	confirmer.On("Confirm", mock.Anything, mock.Anything).Return(true, nil)
	backend.On("Delete", mock.Anything, id).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(errors.New("gateway timeout")).Once()
	backend.On("Delete", mock.Anything, kernel.MustOrderID("1002")).Return(errors.New("gateway timeout")).Once()
	backend.On("Delete", mock.Anything, id).Return(errors.New("gateway timeout")).Once()

	cmd, err := commands.NewDeleteOrderCommand("1001", confirmer)
	require.NoError(t, err)
	other, err := commands.NewDeleteOrderCommand("1002", confirmer)
	require.NoError(t, err)

	handler := commands.NewDeleteOrderCommandHandler(backend, store, dashboard.NewStore(), nil, discardLogger())

	done := make(chan error, 1)
	go func() {
		done <- handler.Handle(ctx, cmd)
	}()
	<-started

	assert.ErrorIs(t, handler.Handle(ctx, cmd), dashboard.ErrDeletionInProgress)
	assert.NotErrorIs(t, handler.Handle(ctx, other), dashboard.ErrDeletionInProgress)

	close(release)
	require.Error(t, <-done)
	assert.False(t, store.IsDeleting(id))

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.NotErrorIs(t, err, dashboard.ErrDeletionInProgress)
	backend.AssertNumberOfCalls(t, "Delete", 3)
	confirmer.AssertNumberOfCalls(t, "Confirm", 3)
}

func TestClearDemoOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		store := seededStore([]*order.Order{newOrder(t, "1001", "new")}, nil)
		backend := &MockOrderBackend{}
		confirmer := &MockConfirmer{}

		confirmer.On("Confirm", mock.Anything, mock.Anything).Return(true, nil).Once()
		mock.InOrder(
			backend.On("ClearDemo", mock.Anything).Return(nil).Once(),
			backend.On("FetchOrders", mock.Anything).Return([]*order.Order{}, nil).Once(),
			backend.On("FetchStats", mock.Anything).Return(board.NewStats(nil), nil).Once(),
		)

		cmd, err := commands.NewClearDemoOrdersCommand(confirmer)
		require.NoError(t, err)

		handler := commands.NewClearDemoOrdersCommandHandler(backend, store, &MockAlerter{}, nil, discardLogger())

		require.NoError(t, handler.Handle(t.Context(), cmd))
		assert.Equal(t, 0, store.Board().Len())
		backend.AssertExpectations(t)
	})

	t.Run("declined", func(t *testing.T) {
		backend := &MockOrderBackend{}
		confirmer := &MockConfirmer{}
		confirmer.On("Confirm", mock.Anything, mock.Anything).Return(false, nil).Once()

		cmd, err := commands.NewClearDemoOrdersCommand(confirmer)
		require.NoError(t, err)

		handler := commands.NewClearDemoOrdersCommandHandler(
			backend, dashboard.NewStore(), &MockAlerter{}, nil, discardLogger(),
		)

		assert.ErrorIs(t, handler.Handle(t.Context(), cmd), commands.ErrDeletionDeclined)
		backend.AssertNotCalled(t, "ClearDemo", mock.Anything)
	})

	t.Run("failure alerts", func(t *testing.T) {
		backend := &MockOrderBackend{}
		confirmer := &MockConfirmer{}
		store := dashboard.NewStore()
		confirmer.On("Confirm", mock.Anything, mock.Anything).Return(true, nil).Once()
		backend.On("ClearDemo", mock.Anything).Return(errors.New("403 forbidden")).Once()

		cmd, err := commands.NewClearDemoOrdersCommand(confirmer)
		require.NoError(t, err)

		handler := commands.NewClearDemoOrdersCommandHandler(backend, store, store, nil, discardLogger())

		require.Error(t, handler.Handle(t.Context(), cmd))
		assert.Len(t, store.Snapshot().Alerts, 1)
	})
}
