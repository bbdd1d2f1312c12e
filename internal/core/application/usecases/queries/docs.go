// Package queries contains the read side of the dashboard: the board view
// projected from the store, per-status counts, and the activity journal read
// straight from the database.
package queries
