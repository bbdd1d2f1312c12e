package board

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// Board is an immutable snapshot of the order list and the stats.
type Board struct {
	orders []*order.Order
	stats  Stats
}

// New builds a Board from a fetched order list and stats snapshot.
func New(orders []*order.Order, stats Stats) Board {
	return Board{orders: copyOrders(orders), stats: NewStats(stats.counts)}
}

// WithOrders returns a Board whose order list is replaced wholesale.
func (b Board) WithOrders(orders []*order.Order) Board {
	return Board{orders: copyOrders(orders), stats: b.stats}
}

// WithStats returns a Board whose stats snapshot is replaced wholesale.
func (b Board) WithStats(stats Stats) Board {
	return Board{orders: b.orders, stats: NewStats(stats.counts)}
}

// Orders returns the full list in fetch order.
func (b Board) Orders() []*order.Order {
	return copyOrders(b.orders)
}

func (b Board) Stats() Stats {
	return b.stats
}

func (b Board) Len() int {
	return len(b.orders)
}

// Find looks an order up by its mutation identity.
func (b Board) Find(id kernel.OrderID) (*order.Order, bool) {
	for _, o := range b.orders {
		if o.OrderID().IsEqual(id) {
			return o, true
		}
	}
	return nil, false
}

// FilterByStatus returns, in original order, the orders whose local_status is
// status, or every order when status is "all".
func (b Board) FilterByStatus(status string) []*order.Order {
	if status == AllTab {
		return b.Orders()
	}
	out := make([]*order.Order, 0, len(b.orders))
	for _, o := range b.orders {
		if o.HasStatus(status) {
			out = append(out, o)
		}
	}
	return out
}

// Count returns the board total for "all" and the stats snapshot value for
// any other status (0 when absent). It does not look at the order list, so
// it can disagree with CountLocal until the next refresh.
func (b Board) Count(status string) int {
	if status == AllTab {
		return len(b.orders)
	}
	return b.stats.Count(status)
}

// CountLocal counts the order list itself.
func (b Board) CountLocal(status string) int {
	if status == AllTab {
		return len(b.orders)
	}
	n := 0
	for _, o := range b.orders {
		if o.HasStatus(status) {
			n++
		}
	}
	return n
}

func copyOrders(orders []*order.Order) []*order.Order {
	out := make([]*order.Order, len(orders))
	copy(out, orders)
	return out
}
