package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport means the request never produced a response: the backend
	// was unreachable, the call timed out or the context ended.
	ErrTransport = errors.New("order backend unreachable")

	// ErrRejected means the backend answered with a non-success status.
	ErrRejected = errors.New("order backend rejected the request")
)

// RejectedError carries the status and the backend's reason for a rejected
// request. errors.Is(err, ErrRejected) holds for it.
type RejectedError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *RejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

// IsNotFound reports whether the backend did not know the order.
func (e *RejectedError) IsNotFound() bool {
	return e.StatusCode == 404
}
