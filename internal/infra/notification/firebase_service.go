package notification

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Messenger is the subset of the FCM client used to deliver notifications
type Messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client Messenger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	opts := make([]option.ClientOption, 0, 1)
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return NewMessagingService(client), nil
}

// NewMessagingService wraps an existing messaging client
func NewMessagingService(client Messenger) service.NotificationService {
	return &firebaseService{client: client}
}

// SendTopicNotification sends a push notification to every device subscribed to a topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return fmt.Errorf("notification topic is empty")
	}

	return s.send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return fmt.Errorf("device token is empty")
	}

	return s.send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
}

func (s *firebaseService) send(ctx context.Context, message *messaging.Message) error {
	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return fmt.Errorf("notification rejected: %w", err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// ServiceParams holds dependencies for the notification service, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// ServiceResult exposes the notification service; it is nil when Firebase is not configured
type ServiceResult struct {
	fx.Out

	Service service.NotificationService
}

// NewService builds the Firebase notification service from configuration
func NewService(params ServiceParams) (ServiceResult, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.CredentialsPath == "" && cfg.ProjectID == "") {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return ServiceResult{}, nil
	}

	svc, err := NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
	if err != nil {
		return ServiceResult{}, err
	}

	return ServiceResult{Service: svc}, nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewService),
)
