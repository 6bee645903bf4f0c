package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessenger struct {
	messages []*messaging.Message
	err      error
}

func (f *fakeMessenger) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, message)

	return "projects/test/messages/1", nil
}

func TestSendTopicNotification(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := NewMessagingService(messenger)

	err := svc.SendTopicNotification(context.Background(), "orders", "Pedido creado", "Total: $10.00", map[string]string{"order_id": "1"})
	require.NoError(t, err)
	require.Len(t, messenger.messages, 1)

	msg := messenger.messages[0]
	assert.Equal(t, "orders", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Pedido creado", msg.Notification.Title)
	assert.Equal(t, "1", msg.Data["order_id"])
}

func TestSendSingleNotification(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := NewMessagingService(messenger)

	require.NoError(t, svc.SendSingleNotification(context.Background(), "device-token", "t", "b", nil))
	require.Len(t, messenger.messages, 1)
	assert.Equal(t, "device-token", messenger.messages[0].Token)
}

func TestSendNotification_Validation(t *testing.T) {
	svc := NewMessagingService(&fakeMessenger{})

	assert.Error(t, svc.SendTopicNotification(context.Background(), "", "t", "b", nil))
	assert.Error(t, svc.SendSingleNotification(context.Background(), "", "t", "b", nil))
}

func TestSendNotification_ClientError(t *testing.T) {
	svc := NewMessagingService(&fakeMessenger{err: assert.AnError})

	err := svc.SendTopicNotification(context.Background(), "orders", "t", "b", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewService_NotConfigured(t *testing.T) {
	result, err := NewService(ServiceParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Service)
}
