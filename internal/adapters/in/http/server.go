package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"orderdesk/internal/adapters/out/spreadsheet"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// HealthChecker reports whether the order backend answers.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	RefreshBoard    commands.RefreshBoardCommandHandler
	SyncOrders      commands.SyncOrdersCommandHandler
	TransitionOrder commands.TransitionOrderStatusCommandHandler
	BeginNoteEdit   commands.BeginNoteEditCommandHandler
	UpdateNoteDraft commands.UpdateNoteDraftCommandHandler
	CancelNoteEdit  commands.CancelNoteEditCommandHandler
	CommitNote      commands.CommitNoteCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	ClearDemoOrders commands.ClearDemoOrdersCommandHandler
	DismissAlerts   commands.DismissAlertsCommandHandler

	GetBoard      queries.GetBoardQueryHandler
	GetOrderCount queries.GetOrderCountQueryHandler
	GetActivity   queries.GetActivityQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	health   HealthChecker
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, health HealthChecker, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		health:   health,
		logger:   logger.With("component", "http"),
	}
}

// GetHealth handles GET /health. The dashboard is alive as long as it
// answers; the backend state is reported alongside.
func (s *Server) GetHealth(ctx echo.Context) error {
	response := servers.Health{Status: "ok", Backend: "ok"}
	if err := s.health.Health(ctx.Request().Context()); err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "Order backend is not healthy", "error", err)
		response.Backend = "unavailable"
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetBoard handles GET /api/v1/board - the board filtered to one tab.
func (s *Server) GetBoard(ctx echo.Context, params servers.GetBoardParams) error {
	view, err := s.board(ctx, params.Tab)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toBoard(view))
}

// GetOrderCount handles GET /api/v1/board/counts/{status}.
func (s *Server) GetOrderCount(ctx echo.Context, status string) error {
	query, err := queries.NewGetOrderCountQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	count, err := s.handlers.GetOrderCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Count{Status: query.Status(), Count: count})
}

// ExportBoard handles GET /api/v1/board/export - the tab as a workbook.
func (s *Server) ExportBoard(ctx echo.Context, params servers.ExportBoardParams) error {
	view, err := s.board(ctx, params.Tab)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var buf bytes.Buffer
	if err = spreadsheet.WriteBoard(&buf, view); err != nil {
		return s.writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+spreadsheet.FileName(view.Tab)+`"`)
	return ctx.Blob(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}

// RefreshBoard handles POST /api/v1/board/refresh.
func (s *Server) RefreshBoard(ctx echo.Context) error {
	err := s.handlers.RefreshBoard.Handle(ctx.Request().Context(), commands.NewRefreshBoardCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SyncOrders handles POST /api/v1/board/sync.
func (s *Server) SyncOrders(ctx echo.Context) error {
	err := s.handlers.SyncOrders.Handle(ctx.Request().Context(), commands.NewSyncOrdersCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body transitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	if err = s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// BeginNoteEdit handles POST /api/v1/orders/{orderId}/note-edit.
func (s *Server) BeginNoteEdit(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewBeginNoteEditCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.handlers.BeginNoteEdit.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateNoteDraft handles PUT /api/v1/note-edit/draft. The text is stored
// as typed.
func (s *Server) UpdateNoteDraft(ctx echo.Context) error {
	var body noteDraftRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, "Invalid note: "+err.Error())
	}

	cmd, err := commands.NewUpdateNoteDraftCommand(body.Text)
	if err != nil {
		return badRequest(ctx, "Invalid note: "+err.Error())
	}

	if err = s.handlers.UpdateNoteDraft.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelNoteEdit handles DELETE /api/v1/note-edit.
func (s *Server) CancelNoteEdit(ctx echo.Context) error {
	err := s.handlers.CancelNoteEdit.Handle(ctx.Request().Context(), commands.NewCancelNoteEditCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CommitNote handles POST /api/v1/orders/{orderId}/note.
func (s *Server) CommitNote(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewCommitNoteCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.handlers.CommitNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}. Without confirm=true
// the deletion is declined and nothing is sent to the backend.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId, params servers.DeleteOrderParams) error {
	cmd, err := commands.NewDeleteOrderCommand(orderID, confirmerFrom(params.Confirm))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	return s.outcome(ctx, s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd))
}

// ClearDemoOrders handles DELETE /api/v1/demo-orders.
func (s *Server) ClearDemoOrders(ctx echo.Context, params servers.ClearDemoOrdersParams) error {
	cmd, err := commands.NewClearDemoOrdersCommand(confirmerFrom(params.Confirm))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.outcome(ctx, s.handlers.ClearDemoOrders.Handle(ctx.Request().Context(), cmd))
}

// DismissAlerts handles POST /api/v1/alerts/dismiss.
func (s *Server) DismissAlerts(ctx echo.Context) error {
	n, err := s.handlers.DismissAlerts.Handle(ctx.Request().Context(), commands.NewDismissAlertsCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Dismissed{Dismissed: n})
}

// GetActivity handles GET /api/v1/activity - the journal, newest first.
func (s *Server) GetActivity(ctx echo.Context, params servers.GetActivityParams) error {
	var (
		orderID string
		limit   int
	)
	if params.OrderId != nil {
		orderID = *params.OrderId
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetActivityQuery(orderID, limit)
	if err != nil {
		return badRequest(ctx, "Invalid activity query: "+err.Error())
	}

	entries, err := s.handlers.GetActivity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toActivity(entries))
}

func (s *Server) board(ctx echo.Context, tab *servers.Tab) (queries.GetBoardQueryResponse, error) {
	var name string
	if tab != nil {
		name = string(*tab)
	}

	query, err := queries.NewGetBoardQuery(name)
	if err != nil {
		return queries.GetBoardQueryResponse{}, err
	}
	return s.handlers.GetBoard.Handle(ctx.Request().Context(), query)
}

func (s *Server) outcome(ctx echo.Context, err error) error {
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, servers.Outcome{Outcome: servers.Succeeded})
	case errors.Is(err, commands.ErrDeletionDeclined):
		message := "Nothing was deleted"
		return ctx.JSON(http.StatusOK, servers.Outcome{Outcome: servers.Declined, Message: &message})
	default:
		return s.writeError(ctx, err)
	}
}
