package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/infra/realtime"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Hub    *realtime.CartHub `optional:"true"`
	Logger *slog.Logger
}

// CartHandler serves the cart and checkout
type CartHandler struct {
	cartUC usecase.CartUsecase
	hub    *realtime.CartHub
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		hub:    params.Hub,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart.
// A missing quantity means one unit.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  *int   `json:"quantity"`
}

// CheckoutRequest represents the request body for checkout
type CheckoutRequest struct {
	Address     string `json:"address" validate:"max=255"`
	GeoLocation string `json:"geo_location" validate:"max=64"`
}

// GetCart returns the cart lines and total
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.ListCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	line, err := h.cartUC.AddToCart(c.Request().Context(), productID, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, line)
}

// RemoveItem handles removing a single cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	if err := h.cartUC.RemoveLine(c.Request().Context(), lineID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart line removed"})
}

// ClearCart handles emptying the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	removed, err := h.cartUC.ClearCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed})
}

// Checkout turns the cart into a pending order
func (h *CartHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.cartUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		Address:     req.Address,
		GeoLocation: req.GeoLocation,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// Stream upgrades to a websocket that receives every committed cart change
func (h *CartHandler) Stream(c echo.Context) error {
	if h.hub == nil {
		return response.NotFound(c, "STREAM_DISABLED", "Cart stream is not enabled")
	}

	return h.hub.ServeWS(c.Response(), c.Request())
}
