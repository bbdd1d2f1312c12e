package kernel

import (
	"strings"

	"orderdesk/internal/pkg/errs"
)

// ErrOrderIDIsRequired is returned for blank order identifiers.
var ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order_id")

// ErrOrderIDIsInvalid is returned for the dot segments "." and "..", which no
// backend assigns and which would name a different resource in a URL path.
var ErrOrderIDIsInvalid = errs.NewValueIsInvalidError("order_id")

// OrderID identifies an order for all mutation operations. It is assigned by
// the remote order backend and never changes for the lifetime of the order.
type OrderID struct {
	value string
}

// NewOrderID trims s and rejects it when nothing is left.
func NewOrderID(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return OrderID{}, ErrOrderIDIsRequired
	case ".", "..":
		return OrderID{}, ErrOrderIDIsInvalid
	}
	return OrderID{value: s}, nil
}

// MustOrderID is NewOrderID for identifiers known to be valid, such as test
// fixtures. It panics on a blank or dot-segment value.
func MustOrderID(s string) OrderID {
	id, err := NewOrderID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id OrderID) String() string {
	return id.value
}

func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsRequired
	}
	return nil
}
