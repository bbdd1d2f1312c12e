package http

import (
	"context"
	"errors"
	"net/http"

	"orderdesk/internal/adapters/out/backend"
	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/generated/servers"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrSyncInProgress),
		errors.Is(err, dashboard.ErrDeletionInProgress),
		errors.Is(err, dashboard.ErrNoActiveNoteEdit),
		errors.Is(err, dashboard.ErrNoteEditMismatch),
		errors.Is(err, dashboard.ErrNoteCommitInProgress):
		return http.StatusConflict
	case errors.Is(err, backend.ErrTransport),
		errors.Is(err, backend.ErrRejected),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Unhandled request error",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
