package order

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order was not built through
// RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

// Snapshot carries the raw attributes of an order as reported by the backend.
// It is the input of RestoreOrder.
type Snapshot struct {
	ID                string
	OrderID           string
	OrderNumber       string
	CustomerName      string
	Phone             string
	Email             string
	PaymentMethod     string
	ShippingAddress   *Address
	BillingAddress    *Address
	Products          []LineItem
	TotalPrice        string
	Currency          string
	FinancialStatus   string
	FulfillmentStatus string
	Notes             string
	LocalStatus       string
	CreatedAt         time.Time
	StatusUpdatedAt   *time.Time
}

// Order is a read-only view of one order as of the last fetch. Orders are
// never modified in place: every mutation goes to the backend and a fresh
// Order is restored from the next fetch.
//
// Invariants:
//   - OrderID is always valid
//   - ID is never blank; it falls back to OrderID when the backend omits it
//   - Status is one of the closed set or Unrecognized, with the raw value kept
type Order struct {
	id                string
	orderID           kernel.OrderID
	orderNumber       string
	customerName      string
	phone             string
	email             string
	paymentMethod     string
	shipping          *Address
	billing           *Address
	products          []LineItem
	total             kernel.Money
	financialStatus   string
	fulfillmentStatus string
	notes             string
	status            Status
	rawStatus         string
	createdAt         time.Time
	statusUpdatedAt   *time.Time

	isConstructed bool
}

// RestoreOrder builds an Order from backend data.
//
// Only the order_id is mandatory. An unknown local_status is accepted and
// mapped to Unrecognized; a blank one is treated as "new", the status the
// backend assigns on ingestion.
//
// Example:
//
//	o, err := order.RestoreOrder(order.Snapshot{
//	    OrderID:     "5550001",
//	    OrderNumber: "#2314",
//	    LocalStatus: "confirmed",
//	})
func RestoreOrder(s Snapshot) (*Order, error) {
	orderID, err := kernel.NewOrderID(s.OrderID)
	if err != nil {
		return nil, err
	}

	rawStatus := strings.TrimSpace(s.LocalStatus)
	if rawStatus == "" {
		rawStatus = New.String()
	}

	id := strings.TrimSpace(s.ID)
	if id == "" {
		id = orderID.String()
	}

	products := make([]LineItem, len(s.Products))
	copy(products, s.Products)

	return &Order{
		id:                id,
		orderID:           orderID,
		orderNumber:       s.OrderNumber,
		customerName:      strings.TrimSpace(s.CustomerName),
		phone:             strings.TrimSpace(s.Phone),
		email:             strings.TrimSpace(s.Email),
		paymentMethod:     s.PaymentMethod,
		shipping:          copyAddress(s.ShippingAddress),
		billing:           copyAddress(s.BillingAddress),
		products:          products,
		total:             kernel.NewMoney(s.TotalPrice, s.Currency),
		financialStatus:   s.FinancialStatus,
		fulfillmentStatus: s.FulfillmentStatus,
		notes:             s.Notes,
		status:            ParseStatus(rawStatus),
		rawStatus:         rawStatus,
		createdAt:         s.CreatedAt,
		statusUpdatedAt:   s.StatusUpdatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the order was built by RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID is the local record identity, used to key list rows.
func (o *Order) ID() string {
	return o.id
}

// OrderID is the identity used by all mutation operations.
func (o *Order) OrderID() kernel.OrderID {
	return o.orderID
}

func (o *Order) OrderNumber() string {
	return o.orderNumber
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Phone() string {
	return o.phone
}

func (o *Order) Email() string {
	return o.email
}

// PaymentMethod returns the free-text method as received.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentType classifies PaymentMethod into COD or Prepaid.
func (o *Order) PaymentType() PaymentType {
	return ClassifyPayment(o.paymentMethod)
}

// ShippingAddress returns nil when the backend sent none.
func (o *Order) ShippingAddress() *Address {
	return copyAddress(o.shipping)
}

func (o *Order) BillingAddress() *Address {
	return copyAddress(o.billing)
}

// Products returns the line items in backend order.
func (o *Order) Products() []LineItem {
	out := make([]LineItem, len(o.products))
	copy(out, o.products)
	return out
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) FinancialStatus() string {
	return o.financialStatus
}

func (o *Order) FulfillmentStatus() string {
	return o.fulfillmentStatus
}

// Notes returns the operator note, empty when none was set.
func (o *Order) Notes() string {
	return o.notes
}

// Status is the parsed local_status.
func (o *Order) Status() Status {
	return o.status
}

// RawStatus is local_status exactly as received; it differs from
// Status().String() only for Unrecognized values.
func (o *Order) RawStatus() string {
	return o.rawStatus
}

// HasStatus reports whether the raw local_status equals name.
func (o *Order) HasStatus(name string) bool {
	return o.rawStatus == name
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StatusUpdatedAt is nil until the first transition.
func (o *Order) StatusUpdatedAt() *time.Time {
	if o.statusUpdatedAt == nil {
		return nil
	}
	t := *o.statusUpdatedAt
	return &t
}

// IsDemo reports whether the order was seeded as demo data; demo orders use
// order numbers starting with "#DEMO".
func (o *Order) IsDemo() bool {
	return strings.HasPrefix(o.orderNumber, "#DEMO")
}

func copyAddress(a *Address) *Address {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
