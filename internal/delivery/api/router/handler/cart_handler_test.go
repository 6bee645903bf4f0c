package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()}), cartUC
}

func TestCartHandler_AddItem_DefaultsToOneUnit(t *testing.T) {
	handler, cartUC := createTestCartHandler(t)
	productID := uuid.New()

	cartUC.EXPECT().
		AddToCart(mock.Anything, productID, 1).
		Return(&entity.CartLine{ID: uuid.New(), ProductID: productID, Quantity: 1, UnitPrice: decimal.NewFromInt(10)}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+productID.String()+`"}`)
	require.NoError(t, handler.AddItem(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), productID.String())
}

func TestCartHandler_AddItem_ExplicitQuantity(t *testing.T) {
	handler, cartUC := createTestCartHandler(t)
	productID := uuid.New()

	cartUC.EXPECT().
		AddToCart(mock.Anything, productID, 0).
		Return(nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity: 0"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+productID.String()+`","quantity":0}`)
	require.NoError(t, handler.AddItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_QUANTITY", env.Error.Code)
	assert.Equal(t, "quantity: 0", env.Error.Details)
}

func TestCartHandler_AddItem_ValidationError(t *testing.T) {
	handler, _ := createTestCartHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{"product_id":"not-a-uuid"}`)
	require.NoError(t, handler.AddItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	handler, cartUC := createTestCartHandler(t)
	lineID := uuid.New()

	cartUC.EXPECT().RemoveLine(mock.Anything, lineID).Return(domainerrors.ErrCartLineNotFound.WithDetails(lineID.String()))

	c, rec := newTestContext(http.MethodDelete, "/api/v1/cart/items/"+lineID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(lineID.String())
	require.NoError(t, handler.RemoveItem(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CART_LINE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_RemoveItem_InvalidID(t *testing.T) {
	handler, _ := createTestCartHandler(t)

	c, rec := newTestContext(http.MethodDelete, "/api/v1/cart/items/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, handler.RemoveItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_ClearCart(t *testing.T) {
	handler, cartUC := createTestCartHandler(t)
	cartUC.EXPECT().ClearCart(mock.Anything).Return(int64(3), nil)

	c, rec := newTestContext(http.MethodDelete, "/api/v1/cart", "")
	require.NoError(t, handler.ClearCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":3}`, string(decodeEnvelope(t, rec).Data))
}

func TestCartHandler_Checkout(t *testing.T) {
	handler, cartUC := createTestCartHandler(t)
	orderID := uuid.New()

	cartUC.EXPECT().
		Checkout(mock.Anything, &usecase.CheckoutInput{Address: "Calle 1"}).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(5)}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/checkout", `{"address":"Calle 1"}`)
	require.NoError(t, handler.Checkout(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
}

func TestCartHandler_Checkout_EmptyCart(t *testing.T) {
	handler, cartUC := createTestCartHandler(t)
	cartUC.EXPECT().Checkout(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmptyCart)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/checkout", `{}`)
	require.NoError(t, handler.Checkout(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMPTY_CART", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_GetCart_UnknownErrorIsReturned(t *testing.T) {
	handler, cartUC := createTestCartHandler(t)
	cartUC.EXPECT().ListCart(mock.Anything).Return(nil, errors.New("boom"))

	c, _ := newTestContext(http.MethodGet, "/api/v1/cart", "")
	assert.Error(t, handler.GetCart(c))
}

func TestCartHandler_Stream_Disabled(t *testing.T) {
	handler, _ := createTestCartHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/cart/stream", "")
	require.NoError(t, handler.Stream(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
