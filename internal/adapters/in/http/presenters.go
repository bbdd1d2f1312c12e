package http

import (
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/generated/servers"
)

func toBoard(view queries.GetBoardQueryResponse) servers.Board {
	out := servers.Board{
		Tab:        view.Tab,
		Orders:     make([]servers.Order, len(view.Orders)),
		Counts:     make([]servers.TabCount, len(view.Counts)),
		Syncing:    view.Syncing,
		Deleting:   view.Deleting,
		Alerts:     make([]servers.Alert, len(view.Alerts)),
		WebhookUrl: view.WebhookURL,
	}
	if out.Deleting == nil {
		out.Deleting = []string{}
	}
	for i, o := range view.Orders {
		out.Orders[i] = toOrder(o)
	}
	for i, c := range view.Counts {
		out.Counts[i] = servers.TabCount{Tab: c.Tab, Label: c.Label, Count: c.Count, Listed: c.Listed}
	}
	for i, a := range view.Alerts {
		out.Alerts[i] = servers.Alert{Message: a.Message, At: a.At}
	}
	if view.NoteEdit != nil {
		out.NoteEdit = &servers.NoteEdit{
			OrderId:    view.NoteEdit.OrderID,
			Draft:      view.NoteEdit.Draft,
			Committing: view.NoteEdit.Committing,
		}
	}
	if view.LastFailure != nil {
		out.LastFailure = &servers.Failure{
			Operation: view.LastFailure.Operation,
			OrderId:   optional(view.LastFailure.OrderID),
			Message:   view.LastFailure.Message,
			At:        view.LastFailure.At,
		}
	}
	out.RefreshedAt = optionalTime(view.RefreshedAt)
	return out
}

func toOrder(o queries.OrderView) servers.Order {
	out := servers.Order{
		Id:                o.ID,
		OrderId:           o.OrderID,
		OrderNumber:       o.OrderNumber,
		CustomerName:      o.CustomerName,
		Phone:             optional(o.Phone),
		Email:             optional(o.Email),
		PaymentMethod:     optional(o.PaymentMethod),
		PaymentType:       servers.OrderPaymentType(o.PaymentType),
		Products:          make([]servers.LineItem, len(o.Products)),
		TotalPrice:        o.TotalPrice,
		Currency:          o.Currency,
		FinancialStatus:   optional(o.FinancialStatus),
		FulfillmentStatus: optional(o.FulfillmentStatus),
		Notes:             optional(o.Notes),
		Status:            o.Status,
		StatusLabel:       o.StatusLabel,
		CreatedAt:         optionalTime(o.CreatedAt),
		StatusUpdatedAt:   o.StatusUpdatedAt,
		Actions:           make([]servers.Action, len(o.Actions)),
		IsDeleting:        o.IsDeleting,
		IsEditingNote:     o.IsEditingNote,
		IsDemo:            o.IsDemo,
	}
	if o.ShippingAddress != nil {
		out.ShippingAddress = toAddress(*o.ShippingAddress)
	}
	for i, p := range o.Products {
		out.Products[i] = servers.LineItem{
			Title:        p.Title,
			VariantTitle: optional(p.VariantTitle),
			Quantity:     p.Quantity,
			Price:        p.Price,
		}
	}
	for i, a := range o.Actions {
		out.Actions[i] = servers.Action{Status: a.Status, Label: a.Label}
	}
	return out
}

func toAddress(a order.Address) *servers.Address {
	return &servers.Address{
		FullAddress: optional(a.FullAddress),
		City:        optional(a.City),
		Province:    optional(a.Province),
		Zip:         optional(a.Zip),
		Country:     optional(a.Country),
	}
}

func toActivity(entries []queries.GetActivityQueryResponse) []servers.ActivityEntry {
	out := make([]servers.ActivityEntry, len(entries))
	for i, e := range entries {
		out[i] = servers.ActivityEntry{
			Id:         e.ID.Bytes(),
			Operation:  e.Operation,
			OrderId:    optional(e.OrderID),
			FromStatus: optional(e.FromStatus),
			ToStatus:   optional(e.ToStatus),
			Outcome:    e.Outcome,
			Message:    optional(e.Message),
			OccurredAt: e.OccurredAt,
		}
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
