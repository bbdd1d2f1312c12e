// Package commands contains the dashboard operations that change state,
// either on the remote order backend or in the dashboard store.
//
// Every remote mutation follows the same contract: the guard for its kind is
// taken in the store, the backend is asked, the guard is released whatever
// the outcome, and on success the order list and the stats are fetched again
// in full. Nothing is patched locally. Settled attempts are written to the
// activity journal; journal failures are logged and never fail the command.
package commands
