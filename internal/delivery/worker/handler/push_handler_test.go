package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockOrderEventUsecase) {
	t.Helper()

	orderEventUC := mockUsecase.NewMockOrderEventUsecase(t)

	return &PushHandler{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		orderEventUC: orderEventUC,
	}, orderEventUC
}

func pushBody(t *testing.T, event *service.OrderEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func doPush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func placedEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type: service.OrderEventTypePlaced,
		Order: &entity.OrderPlacedEvent{
			OrderID:   uuid.Must(uuid.NewV7()),
			Total:     decimal.RequireFromString("1500000"),
			ItemCount: 1,
		},
	}
}

func TestPushHandler_Success(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t)
	event := placedEvent()

	orderEventUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, got *service.OrderEvent) {
			assert.Equal(t, event.Order.OrderID, got.Order.OrderID)
		}).
		Return(nil)

	rec := doPush(h, pushBody(t, event, map[string]string{"request_id": "req-9"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailure(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t)

	orderEventUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	rec := doPush(h, pushBody(t, placedEvent(), nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_InvalidEventIsAcknowledged(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t)

	orderEventUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.Anything).
		Return(domainerrors.ErrInvalidArgument.WithDetails("order event has no order"))

	rec := doPush(h, pushBody(t, &service.OrderEvent{Type: service.OrderEventTypePlaced}, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "%%%"
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, doPush(h, body, nil).Code)

	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("not json"))
	body, err = json.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, doPush(h, body, nil).Code)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t)
	h.verifyPushAuth = true
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad token")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := doPush(h, pushBody(t, placedEvent(), nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(h, pushBody(t, placedEvent(), nil), http.Header{"Authorization": []string{"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil)

	rec = doPush(h, pushBody(t, placedEvent(), nil), http.Header{"Authorization": []string{"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)
	ctx := context.Background()

	assert.Equal(t, "attr", h.extractRequestID(ctx, map[string]string{"request_id": "attr"}, &service.OrderEvent{RequestID: "event"}))
	assert.Equal(t, "event", h.extractRequestID(ctx, nil, &service.OrderEvent{RequestID: "event"}))

	generated := h.extractRequestID(ctx, nil, &service.OrderEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
