package http

import (
	"fmt"
	"net/http"

	"orderdesk/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Register mounts the dashboard API, its OpenAPI document and the Swagger UI
// on e.
func Register(e *echo.Echo, server *Server) error {
	validateRequests, err := OpenAPIValidator(servers.RawSpec())
	if err != nil {
		return err
	}

	e.Validator = NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(validateRequests)

	servers.RegisterHandlers(e, server)

	e.GET("/openapi.json", func(ctx echo.Context) error {
		doc, docErr := servers.GetSwagger()
		if docErr != nil {
			return fmt.Errorf("load openapi document: %w", docErr)
		}
		return ctx.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}
