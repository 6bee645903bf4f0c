package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestPublicEndpoint tests a public endpoint
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// TestErrorEndpoint returns an error through the centralized error handler.
// ?kind=app yields a domain error, anything else an unhandled one.
func (h *TestHandler) TestErrorEndpoint(c echo.Context) error {
	if c.QueryParam("kind") == "app" {
		return errors.WithStack(domainerrors.ErrEmptyCart.WithDetails("test"))
	}

	return errors.New("unhandled test error")
}
