// Package services provides domain services that operate on orders without
// belonging to the Order entity itself.
//
// The package includes:
//   - ActionPlanner: derives the transition actions presented for an order
//     from its current status and the lifecycle table
package services
