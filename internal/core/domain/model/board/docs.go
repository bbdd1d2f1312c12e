// Package board models what the dashboard currently knows: the order list and
// the stats snapshot, both as last fetched from the backend.
//
// A Board is a value. Refreshing produces a new Board via WithOrders or
// WithStats; nothing patches an existing one. The order list and the stats
// are fetched independently and may disagree for a while: Count reads the
// stats snapshot, CountLocal counts the list.
package board
