// Package order provides the Order snapshot entity and its fulfillment
// lifecycle.
//
// The package includes:
//   - Order: an immutable view of one order as last fetched from the backend
//   - Status: the dashboard-owned fulfillment stage and its transition table
//   - PaymentType: the COD / Prepaid badge derived from the payment method
//
// Transition table (current → offered targets):
//
//	new         → confirmed, cancelled
//	confirmed   → dispatched, not_picked
//	cancelled   → confirmed
//	not_picked  → confirmed, cancelled
//	dispatched  → delivered, rto
//	delivered   → (none)
//	rto         → (none)
//
// delivered and rto offer no further transitions; cancelled offers only
// re-confirmation. Orders are never mutated locally: a transition is executed
// by the backend and observed on the next fetch.
package order
