package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the product catalog and the scanner
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ScanRequest carries the text read by the scanner
type ScanRequest struct {
	Payload string `json:"payload" validate:"required,max=512"`
}

// HealthCheck reports that the process is serving requests
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCategories returns the category chips, "Todos" first
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListCategories())
}

// ListProducts handles catalog listing with optional category and search filters
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := entity.ProductFilter{
		Category: entity.Category(c.QueryParam("category")),
		Search:   c.QueryParam("search"),
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles retrieving a single product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetProductByCode handles barcode lookups
func (h *CatalogHandler) GetProductByCode(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))

	product, found, err := h.catalogUC.FindByCode(c.Request().Context(), code)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !found {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound.WithDetails("code: "+code))
	}

	return response.Success(c, http.StatusOK, product)
}

// GetProductQR returns the product QR code as PNG image
func (h *CatalogHandler) GetProductQR(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	qrCode, err := h.catalogUC.ProductQR(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename=product-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ScanCode resolves a scanner payload to a product
func (h *CatalogHandler) ScanCode(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.ScanCode(c.Request().Context(), req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ExportCatalog downloads the catalog as a spreadsheet
func (h *CatalogHandler) ExportCatalog(c echo.Context) error {
	var buf bytes.Buffer
	if _, err := h.catalogUC.ExportCatalog(c.Request().Context(), &buf); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Binary(c, xlsxContentType, "products.xlsx", buf.Bytes())
}
