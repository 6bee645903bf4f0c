package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlacedEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID: "req-1",
		Type:      service.OrderEventTypePlaced,
		Order: &entity.OrderPlacedEvent{
			OrderID:    uuid.MustParse("01929c3e-7a4b-7c3d-8e9f-0a1b2c3d4e5f"),
			Total:      decimal.RequireFromString("7440000.00"),
			ItemCount:  3,
			Address:    "Dirección de envío",
			OccurredAt: time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC),
		},
	}
}

func TestOrderEventService_HandleOrderEvent_SendsTopicNotification(t *testing.T) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	svc := NewOrderEventService(OrderEventServiceParams{
		Config:          &config.Config{Firebase: &config.FirebaseConfig{Topic: "storefront-orders"}},
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	event := newPlacedEvent()
	notificationSvc.EXPECT().
		SendTopicNotification(
			mock.Anything,
			"storefront-orders",
			"Pedido #01929c3e-7a4b-7c3d-8e9f-0a1b2c3d4e5f creado exitosamente!",
			"Total: $7,440,000.00",
			map[string]string{
				"order_id":   "01929c3e-7a4b-7c3d-8e9f-0a1b2c3d4e5f",
				"total":      "7440000.00",
				"item_count": "3",
			},
		).
		Return(nil)

	require.NoError(t, svc.HandleOrderEvent(context.Background(), event))
}

func TestOrderEventService_HandleOrderEvent_DefaultTopic(t *testing.T) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	svc := NewOrderEventService(OrderEventServiceParams{
		Config:          &config.Config{},
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, defaultOrderTopic, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	require.NoError(t, svc.HandleOrderEvent(context.Background(), newPlacedEvent()))
}

func TestOrderEventService_HandleOrderEvent_SendFailure(t *testing.T) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	svc := NewOrderEventService(OrderEventServiceParams{
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("unavailable"))

	err := svc.HandleOrderEvent(context.Background(), newPlacedEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send order notification")
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestOrderEventService_HandleOrderEvent_WithoutNotificationService(t *testing.T) {
	svc := NewOrderEventService(OrderEventServiceParams{Logger: newDiscardLogger()})

	assert.NoError(t, svc.HandleOrderEvent(context.Background(), newPlacedEvent()))
}

func TestOrderEventService_HandleOrderEvent_InvalidEvent(t *testing.T) {
	svc := NewOrderEventService(OrderEventServiceParams{Logger: newDiscardLogger()})

	err := svc.HandleOrderEvent(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	err = svc.HandleOrderEvent(context.Background(), &service.OrderEvent{Type: service.OrderEventTypePlaced})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestOrderEventService_HandleOrderEvent_IgnoresUnknownType(t *testing.T) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	svc := NewOrderEventService(OrderEventServiceParams{
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	event := newPlacedEvent()
	event.Type = "order.shipped"

	assert.NoError(t, svc.HandleOrderEvent(context.Background(), event))
}
