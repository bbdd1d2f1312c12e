// Package kernel provides the value objects shared by the orderdesk domain:
//
//   - OrderID: the remote-assigned, stable order identity used by every mutation
//   - Money: an order total together with its ISO 4217 currency (INR when absent)
//   - UUID: identifiers minted locally, e.g. for activity journal entries
//
// The zero value of each type is invalid; Validate reports it.
package kernel
