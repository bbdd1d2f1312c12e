// Package ports defines the contracts between the dashboard core and its
// collaborators: the remote order backend, the operator (confirmation and
// alerts), and the activity journal. Adapters under internal/adapters
// implement them; tests substitute testify mocks.
package ports
