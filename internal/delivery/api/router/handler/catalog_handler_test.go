package handler

import (
	"context"
	"io"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()}), catalogUC
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")
	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}

func TestCatalogHandler_ListProducts_PassesFilter(t *testing.T) {
	handler, catalogUC := createTestCatalogHandler(t)

	catalogUC.EXPECT().
		ListProducts(mock.Anything, entity.ProductFilter{Category: entity.CategoryMemory, Search: "ddr5"}).
		Return([]*entity.Product{{ID: uuid.New(), Name: "G.Skill Trident Z5 RGB 16GB"}}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/products?category=Memorias+RAM&search=ddr5", "")
	require.NoError(t, handler.ListProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "G.Skill Trident Z5 RGB 16GB")
}

func TestCatalogHandler_GetProductByCode_NotFound(t *testing.T) {
	handler, catalogUC := createTestCatalogHandler(t)
	catalogUC.EXPECT().FindByCode(mock.Anything, "0000").Return(nil, false, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/products/code/0000", "")
	c.SetParamNames("code")
	c.SetParamValues("0000")
	require.NoError(t, handler.GetProductByCode(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestCatalogHandler_GetProductQR(t *testing.T) {
	handler, catalogUC := createTestCatalogHandler(t)
	productID := uuid.New()
	catalogUC.EXPECT().ProductQR(mock.Anything, productID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/products/"+productID.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(productID.String())
	require.NoError(t, handler.GetProductQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestCatalogHandler_ScanCode(t *testing.T) {
	handler, catalogUC := createTestCatalogHandler(t)
	catalogUC.EXPECT().ScanCode(mock.Anything, "1234567890126").Return(&entity.Product{Name: "NVIDIA RTX 4090"}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/scanner/scan", `{"payload":"1234567890126"}`)
	require.NoError(t, handler.ScanCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "NVIDIA RTX 4090")
}

func TestCatalogHandler_ScanCode_MissingPayload(t *testing.T) {
	handler, _ := createTestCatalogHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/scanner/scan", `{}`)
	require.NoError(t, handler.ScanCode(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_ScanCode_InvalidPayload(t *testing.T) {
	handler, catalogUC := createTestCatalogHandler(t)
	catalogUC.EXPECT().ScanCode(mock.Anything, "{bad").Return(nil, domainerrors.ErrInvalidArgument.WithDetails("invalid product QR payload"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/scanner/scan", `{"payload":"{bad"}`)
	require.NoError(t, handler.ScanCode(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_ExportCatalog(t *testing.T) {
	handler, catalogUC := createTestCatalogHandler(t)
	catalogUC.EXPECT().
		ExportCatalog(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, w io.Writer) (int, error) {
			_, err := w.Write([]byte("PK"))

			return 1, err
		})

	c, rec := newTestContext(http.MethodGet, "/api/v1/products/export", "")
	require.NoError(t, handler.ExportCatalog(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=products.xlsx", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", rec.Body.String())
}
