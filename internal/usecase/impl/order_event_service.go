package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"go.uber.org/fx"
)

const defaultOrderTopic = "orders"

// OrderEventServiceParams holds dependencies for the order event service, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	Config          *config.Config
	NotificationSvc service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

type orderEventService struct {
	notificationSvc service.NotificationService
	topic           string
	logger          *slog.Logger
}

// NewOrderEventService creates a new order event service instance
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	topic := defaultOrderTopic
	if params.Config != nil && params.Config.Firebase != nil && params.Config.Firebase.Topic != "" {
		topic = params.Config.Firebase.Topic
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orderEventService{
		notificationSvc: params.NotificationSvc,
		topic:           topic,
		logger:          logger,
	}
}

// HandleOrderEvent sends the customer notification for an order event
func (s *orderEventService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event == nil || event.Order == nil {
		return domainerrors.ErrInvalidArgument.WithDetails("order event has no order")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("order_id", event.Order.OrderID.String()),
		slog.String("event_type", event.Type),
	)

	if event.Type != service.OrderEventTypePlaced {
		logger.Warn("Ignoring unsupported order event type")

		return nil
	}

	title := fmt.Sprintf("Pedido #%s creado exitosamente!", event.Order.OrderID)
	body := "Total: " + util.FormatCurrency(event.Order.Total)
	data := map[string]string{
		"order_id":   event.Order.OrderID.String(),
		"total":      event.Order.Total.StringFixed(2),
		"item_count": fmt.Sprintf("%d", event.Order.ItemCount),
	}

	if s.notificationSvc == nil {
		logger.Info("Notification service not configured, skipping order notification",
			slog.String("title", title),
			slog.String("body", body),
		)

		return nil
	}

	if err := s.notificationSvc.SendTopicNotification(ctx, s.topic, title, body, data); err != nil {
		return fmt.Errorf("failed to send order notification: %w", err)
	}

	logger.Info("Order notification sent", slog.String("topic", s.topic))

	return nil
}
