package queries

import (
	"context"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// GetBoardQueryHandler reads one consistent snapshot of the store and
// derives the view from it. It never calls the backend.
//
// Counts follow the board rules: "all" is the length of the order list,
// every status comes from the stats snapshot, so a tab badge may disagree
// with the rows under it until the next refresh.
type GetBoardQueryHandler struct {
	store      *dashboard.Store
	planner    services.ActionPlanner
	webhookURL string
}

func NewGetBoardQueryHandler(store *dashboard.Store, webhookURL string) GetBoardQueryHandler {
	return GetBoardQueryHandler{
		store:      store,
		planner:    services.NewActionPlanner(),
		webhookURL: webhookURL,
	}
}

func (h GetBoardQueryHandler) Handle(_ context.Context, query GetBoardQuery) (GetBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardQueryResponse{}, err
	}

	st := h.store.Snapshot()
	tab := query.Tab()

	resp := GetBoardQueryResponse{
		Tab:         tab.String(),
		Syncing:     st.Syncing,
		Deleting:    make([]string, 0, len(st.Deleting)),
		Alerts:      make([]AlertView, 0, len(st.Alerts)),
		RefreshedAt: st.RefreshedAt,
		WebhookURL:  h.webhookURL,
	}
	for _, id := range st.Deleting {
		resp.Deleting = append(resp.Deleting, id.String())
	}
	for _, a := range st.Alerts {
		resp.Alerts = append(resp.Alerts, AlertView(a))
	}
	if st.NoteEdit != nil {
		resp.NoteEdit = &NoteEditView{
			OrderID:    st.NoteEdit.OrderID.String(),
			Draft:      st.NoteEdit.Draft,
			Committing: st.NoteEdit.Committing,
		}
	}
	if st.LastFailure != nil {
		resp.LastFailure = &FailureView{
			Operation: st.LastFailure.Operation,
			OrderID:   st.LastFailure.OrderID,
			Message:   st.LastFailure.Message,
			At:        st.LastFailure.At,
		}
	}

	for _, t := range board.Tabs() {
		resp.Counts = append(resp.Counts, TabCount{
			Tab:    t.String(),
			Label:  t.Label(),
			Count:  st.Board.Count(t.String()),
			Listed: st.Board.CountLocal(t.String()),
		})
	}

	rows := st.Board.FilterByStatus(tab.String())
	resp.Orders = make([]OrderView, 0, len(rows))
	for _, o := range rows {
		resp.Orders = append(resp.Orders, h.orderView(o, st))
	}

	return resp, nil
}

func (h GetBoardQueryHandler) orderView(o *order.Order, st dashboard.State) OrderView {
	actions := h.planner.Plan(o)
	views := make([]ActionView, 0, len(actions))
	for _, a := range actions {
		views = append(views, ActionView{Status: a.Target.String(), Label: a.Label})
	}

	return OrderView{
		ID:                o.ID(),
		OrderID:           o.OrderID().String(),
		OrderNumber:       o.OrderNumber(),
		CustomerName:      o.CustomerName(),
		Phone:             o.Phone(),
		Email:             o.Email(),
		PaymentMethod:     o.PaymentMethod(),
		PaymentType:       o.PaymentType().String(),
		ShippingAddress:   o.ShippingAddress(),
		Products:          o.Products(),
		TotalPrice:        o.Total().Amount(),
		Currency:          o.Total().Currency(),
		FinancialStatus:   o.FinancialStatus(),
		FulfillmentStatus: o.FulfillmentStatus(),
		Notes:             o.Notes(),
		Status:            o.RawStatus(),
		StatusLabel:       o.Status().Label(),
		CreatedAt:         o.CreatedAt(),
		StatusUpdatedAt:   o.StatusUpdatedAt(),
		Actions:           views,
		IsDeleting:        st.IsDeleting(o.OrderID()),
		IsEditingNote:     st.NoteEdit != nil && st.NoteEdit.OrderID.IsEqual(o.OrderID()),
		IsDemo:            o.IsDemo(),
	}
}
