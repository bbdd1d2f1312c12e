package queries_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookURL = "http://localhost:8001/api/webhook/shopify"

func restore(t *testing.T, s order.Snapshot) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}

func storeWith(t *testing.T, counts map[string]int, snapshots ...order.Snapshot) *dashboard.Store {
	t.Helper()
	orders := make([]*order.Order, 0, len(snapshots))
	for _, s := range snapshots {
		orders = append(orders, restore(t, s))
	}
	store := dashboard.NewStore()
	store.ReplaceOrders(orders)
	store.ReplaceStats(board.NewStats(counts))
	return store
}

func countsByTab(view queries.GetBoardQueryResponse) map[string]int {
	out := make(map[string]int, len(view.Counts))
	for _, c := range view.Counts {
		out[c.Tab] = c.Count
	}
	return out
}

func TestNewGetBoardQuery(t *testing.T) {
	q, err := queries.NewGetBoardQuery("")
	require.NoError(t, err)
	assert.True(t, q.Tab().IsAll())

	q, err = queries.NewGetBoardQuery("not_picked")
	require.NoError(t, err)
	assert.Equal(t, "not_picked", q.Tab().String())

	_, err = queries.NewGetBoardQuery("archived")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, queries.GetBoardQuery{}.Validate(), queries.ErrGetBoardQueryIsNotConstructed)
}

func TestGetBoardQueryHandler_Handle_CountsDisagreeWithList(t *testing.T) {
	store := storeWith(t, map[string]int{"confirmed": 3},
		order.Snapshot{OrderID: "1", LocalStatus: "confirmed"},
		order.Snapshot{OrderID: "2", LocalStatus: "confirmed"},
		order.Snapshot{OrderID: "3", LocalStatus: "new"},
		order.Snapshot{OrderID: "4", LocalStatus: "new"},
		order.Snapshot{OrderID: "5", LocalStatus: "dispatched"},
	)
	q, err := queries.NewGetBoardQuery("confirmed")
	require.NoError(t, err)

	view, err := queries.NewGetBoardQueryHandler(store, webhookURL).Handle(t.Context(), q)

	require.NoError(t, err)
	counts := countsByTab(view)
	assert.Equal(t, 5, counts["all"])
	assert.Equal(t, 3, counts["confirmed"])
	assert.Equal(t, 0, counts["new"])
	assert.Len(t, view.Counts, 8)

	listed := make(map[string]int, len(view.Counts))
	for _, c := range view.Counts {
		listed[c.Tab] = c.Listed
	}
	assert.Equal(t, 5, listed["all"])
	assert.Equal(t, 2, listed["confirmed"])
	assert.Equal(t, 2, listed["new"])
	assert.Equal(t, 1, listed["dispatched"])
	assert.Equal(t, 0, listed["rto"])
	require.Len(t, view.Orders, 2)
	assert.Equal(t, "1", view.Orders[0].OrderID)
	assert.Equal(t, "2", view.Orders[1].OrderID)
	assert.Equal(t, webhookURL, view.WebhookURL)
}

func TestGetBoardQueryHandler_Handle_OrderRows(t *testing.T) {
	store := storeWith(t, nil,
		order.Snapshot{
			ID: "row-1", OrderID: "1001", OrderNumber: "#1001", CustomerName: "Asha",
			PaymentMethod: "Cash on Delivery (COD)", TotalPrice: "1499.00", LocalStatus: "new",
		},
		order.Snapshot{OrderID: "1002", PaymentMethod: "prepaid_card", LocalStatus: "cancelled"},
		order.Snapshot{OrderID: "1003", LocalStatus: "delivered"},
		order.Snapshot{OrderID: "1004", LocalStatus: "on_hold", OrderNumber: "#DEMO-4"},
	)
	q, err := queries.NewGetBoardQuery("all")
	require.NoError(t, err)

	view, err := queries.NewGetBoardQueryHandler(store, webhookURL).Handle(t.Context(), q)

	require.NoError(t, err)
	require.Len(t, view.Orders, 4)

	first := view.Orders[0]
	assert.Equal(t, "row-1", first.ID)
	assert.Equal(t, "COD", first.PaymentType)
	assert.Equal(t, "INR", first.Currency)
	assert.Equal(t, "New", first.StatusLabel)
	assert.Equal(t, []queries.ActionView{
		{Status: "confirmed", Label: "Confirm"},
		{Status: "cancelled", Label: "Cancel"},
	}, first.Actions)

	assert.Equal(t, "Prepaid", view.Orders[1].PaymentType)
	assert.Equal(t, []queries.ActionView{{Status: "confirmed", Label: "Re-confirm"}}, view.Orders[1].Actions)

	assert.Empty(t, view.Orders[2].Actions)

	unknown := view.Orders[3]
	assert.Equal(t, "on_hold", unknown.Status)
	assert.Equal(t, "Unknown", unknown.StatusLabel)
	assert.Empty(t, unknown.Actions)
	assert.True(t, unknown.IsDemo)
}

func TestGetBoardQueryHandler_Handle_GuardsAndFlags(t *testing.T) {
	store := storeWith(t, nil,
		order.Snapshot{OrderID: "A", LocalStatus: "new", Notes: "ring twice"},
		order.Snapshot{OrderID: "B", LocalStatus: "new"},
	)
	require.NoError(t, store.BeginSync())
	require.NoError(t, store.BeginDeletion(kernel.MustOrderID("B")))
	store.BeginNoteEdit(kernel.MustOrderID("A"), "ring twice")
	store.RecordFailure("sync", "", errors.New("upstream down"))
	store.Alert(t.Context(), "Failed to delete order C")

	q, err := queries.NewGetBoardQuery("new")
	require.NoError(t, err)

	view, err := queries.NewGetBoardQueryHandler(store, webhookURL).Handle(t.Context(), q)

	require.NoError(t, err)
	assert.True(t, view.Syncing)
	assert.Equal(t, []string{"B"}, view.Deleting)
	require.NotNil(t, view.NoteEdit)
	assert.Equal(t, "A", view.NoteEdit.OrderID)
	assert.Equal(t, "ring twice", view.NoteEdit.Draft)
	require.NotNil(t, view.LastFailure)
	assert.Equal(t, "upstream down", view.LastFailure.Message)
	require.Len(t, view.Alerts, 1)

	require.Len(t, view.Orders, 2)
	assert.True(t, view.Orders[0].IsEditingNote)
	assert.False(t, view.Orders[0].IsDeleting)
	assert.True(t, view.Orders[1].IsDeleting)
}

func TestGetOrderCountQueryHandler_Handle(t *testing.T) {
	store := storeWith(t, map[string]int{"confirmed": 3, "legacy": 9},
		order.Snapshot{OrderID: "1", LocalStatus: "confirmed"},
		order.Snapshot{OrderID: "2", LocalStatus: "new"},
	)
	handler := queries.NewGetOrderCountQueryHandler(store)

	testCases := map[string]int{
		"all":       2,
		"confirmed": 3,
		"new":       0,
		"legacy":    9,
	}
	for status, want := range testCases {
		q, err := queries.NewGetOrderCountQuery(status)
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, want, got, status)
	}

	_, err := queries.NewGetOrderCountQuery(" ")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
