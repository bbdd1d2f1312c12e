// Package errs provides the standardized error types used across orderdesk.
//
// Each type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the details (parameter name, offending value, cause)
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// Domain constructors return these types so that adapters can classify a
// failure (bad input, unknown order) without string matching.
package errs
