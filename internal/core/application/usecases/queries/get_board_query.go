package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetBoardQueryIsNotConstructed = errors.New(
	"GetBoardQuery must be created via NewGetBoardQuery constructor",
)

// GetBoardQuery projects the current store into what an operator sees for
// one tab.
//
// Example:
//
//	query, err := NewGetBoardQuery("confirmed")
//	if err != nil {
//	    return err // unknown tab
//	}
//	view, err := handler.Handle(ctx, query)
//	for _, o := range view.Orders {
//	    fmt.Println(o.OrderNumber, o.StatusLabel, len(o.Actions))
//	}
type GetBoardQuery struct {
	tab board.Tab

	guard guard.ConstructorGuard
}

// NewGetBoardQuery accepts "all", a blank tab (same as "all") or a status
// name.
func NewGetBoardQuery(tab string) (GetBoardQuery, error) {
	t, err := board.ParseTab(tab)
	if err != nil {
		return GetBoardQuery{}, err
	}
	return GetBoardQuery{tab: t, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardQueryIsNotConstructed)
}

func (q GetBoardQuery) Tab() board.Tab {
	return q.tab
}

// GetBoardQueryResponse is the board as shown for one tab.
type GetBoardQueryResponse struct {
	Tab         string
	Orders      []OrderView
	Counts      []TabCount
	Syncing     bool
	Deleting    []string
	NoteEdit    *NoteEditView
	LastFailure *FailureView
	Alerts      []AlertView
	RefreshedAt time.Time
	WebhookURL  string
}

// OrderView is one row of the board.
type OrderView struct {
	ID                string
	OrderID           string
	OrderNumber       string
	CustomerName      string
	Phone             string
	Email             string
	PaymentMethod     string
	PaymentType       string
	ShippingAddress   *order.Address
	Products          []order.LineItem
	TotalPrice        string
	Currency          string
	FinancialStatus   string
	FulfillmentStatus string
	Notes             string
	Status            string
	StatusLabel       string
	CreatedAt         time.Time
	StatusUpdatedAt   *time.Time
	Actions           []ActionView
	IsDeleting        bool
	IsEditingNote     bool
	IsDemo            bool
}

// ActionView is a transition offered for an order.
type ActionView struct {
	Status string
	Label  string
}

// TabCount is the badge count of one tab.
// TabCount is one tab badge. Count is what the badge shows; Listed is how
// many rows of the current order list carry the status.
type TabCount struct {
	Tab    string
	Label  string
	Count  int
	Listed int
}

type NoteEditView struct {
	OrderID    string
	Draft      string
	Committing bool
}

type FailureView struct {
	Operation string
	OrderID   string
	Message   string
	At        time.Time
}

type AlertView struct {
	Message string
	At      time.Time
}
