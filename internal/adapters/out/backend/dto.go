package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

type ordersPayload struct {
	Orders []orderPayload `json:"orders"`
}

type statsPayload struct {
	Stats map[string]int `json:"stats"`
}

type orderPayload struct {
	ID                string            `json:"id"`
	OrderID           looseString       `json:"order_id"`
	OrderNumber       string            `json:"order_number"`
	CustomerName      string            `json:"customer_name"`
	Phone             *string           `json:"phone"`
	Email             *string           `json:"email"`
	PaymentMethod     *string           `json:"payment_method"`
	ShippingAddress   *addressPayload   `json:"shipping_address"`
	BillingAddress    *addressPayload   `json:"billing_address"`
	Products          []lineItemPayload `json:"products"`
	TotalPrice        looseString       `json:"total_price"`
	Currency          *string           `json:"currency"`
	FinancialStatus   *string           `json:"financial_status"`
	FulfillmentStatus *string           `json:"fulfillment_status"`
	Notes             *string           `json:"notes"`
	LocalStatus       *string           `json:"local_status"`
	CreatedAt         *string           `json:"created_at"`
	StatusUpdatedAt   *string           `json:"status_updated_at"`
}

type addressPayload struct {
	FullAddress *string `json:"full_address"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	Zip         *string `json:"zip"`
	Country     *string `json:"country"`
}

type lineItemPayload struct {
	Title        *string     `json:"title"`
	VariantTitle *string     `json:"variant_title"`
	Quantity     *int        `json:"quantity"`
	Price        looseString `json:"price"`
	Vendor       *string     `json:"vendor"`
	ProductID    looseString `json:"product_id"`
	VariantID    looseString `json:"variant_id"`
}

type statusUpdatePayload struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updated_at"`
}

type noteUpdatePayload struct {
	OrderID string `json:"order_id"`
	Note    string `json:"note"`
}

type errorPayload struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// looseString accepts a JSON string, number or null. Upstream identifiers and
// prices arrive as either.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = looseString(n.String())
	return nil
}

func (p orderPayload) toSnapshot() order.Snapshot {
	s := order.Snapshot{
		ID:                p.ID,
		OrderID:           string(p.OrderID),
		OrderNumber:       p.OrderNumber,
		CustomerName:      p.CustomerName,
		Phone:             deref(p.Phone),
		Email:             deref(p.Email),
		PaymentMethod:     deref(p.PaymentMethod),
		ShippingAddress:   p.ShippingAddress.toDomain(),
		BillingAddress:    p.BillingAddress.toDomain(),
		Products:          make([]order.LineItem, 0, len(p.Products)),
		TotalPrice:        string(p.TotalPrice),
		Currency:          deref(p.Currency),
		FinancialStatus:   deref(p.FinancialStatus),
		FulfillmentStatus: deref(p.FulfillmentStatus),
		Notes:             deref(p.Notes),
		LocalStatus:       deref(p.LocalStatus),
		CreatedAt:         parseTime(deref(p.CreatedAt)),
	}
	if updated := parseTime(deref(p.StatusUpdatedAt)); !updated.IsZero() {
		s.StatusUpdatedAt = &updated
	}
	for _, li := range p.Products {
		qty := 0
		if li.Quantity != nil {
			qty = *li.Quantity
		}
		s.Products = append(s.Products, order.LineItem{
			Title:        deref(li.Title),
			VariantTitle: deref(li.VariantTitle),
			Quantity:     qty,
			Price:        string(li.Price),
			Vendor:       deref(li.Vendor),
			ProductID:    string(li.ProductID),
			VariantID:    string(li.VariantID),
		})
	}
	return s
}

func (a *addressPayload) toDomain() *order.Address {
	if a == nil {
		return nil
	}
	addr := order.Address{
		FullAddress: deref(a.FullAddress),
		City:        deref(a.City),
		Province:    deref(a.Province),
		Zip:         deref(a.Zip),
		Country:     deref(a.Country),
	}
	if addr.IsEmpty() {
		return nil
	}
	return &addr
}

func (p errorPayload) reason() string {
	if len(p.Detail) > 0 {
		var s string
		if err := json.Unmarshal(p.Detail, &s); err == nil {
			return s
		}
		return string(p.Detail)
	}
	return p.Message
}

// timeLayouts covers RFC 3339 and the offset-less ISO form the backend
// writes for locally generated timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC()
	}
	return time.Time{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
