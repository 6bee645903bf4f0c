package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/pubsub"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	pubsub.SQSAPI
	messages []types.Message
	deleted  []string
}

func (f *fakeQueue) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	msgs := f.messages
	f.messages = nil

	return &sqs.ReceiveMessageOutput{Messages: msgs}, nil
}

func (f *fakeQueue) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(params.ReceiptHandle))

	return &sqs.DeleteMessageOutput{}, nil
}

func message(t *testing.T, receipt string, event *service.OrderEvent) types.Message {
	t.Helper()

	body, err := json.Marshal(event)
	require.NoError(t, err)

	return types.Message{
		MessageId:     aws.String(receipt),
		ReceiptHandle: aws.String(receipt),
		Body:          aws.String(string(body)),
	}
}

func TestSQSPoller_PollOnce(t *testing.T) {
	orderEventUC := mockUsecase.NewMockOrderEventUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:       &config.Config{},
		Logger:       logger,
		OrderEventUC: orderEventUC,
	})

	okOrder := uuid.Must(uuid.NewV7())
	failOrder := uuid.Must(uuid.NewV7())

	queue := &fakeQueue{messages: []types.Message{
		message(t, "ok", &service.OrderEvent{Type: service.OrderEventTypePlaced, Order: &entity.OrderPlacedEvent{OrderID: okOrder}}),
		message(t, "retry", &service.OrderEvent{Type: service.OrderEventTypePlaced, Order: &entity.OrderPlacedEvent{OrderID: failOrder}}),
		{MessageId: aws.String("garbage"), ReceiptHandle: aws.String("garbage"), Body: aws.String("{")},
	}}

	orderEventUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Order.OrderID == okOrder })).
		Return(nil)
	orderEventUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Order.OrderID == failOrder })).
		Return(errors.New("fcm unavailable"))

	poller := NewSQSPollerWithClient(queue, "https://sqs.local/orders", pushHandler, logger)
	require.NoError(t, poller.PollOnce(context.Background()))

	// The retryable message stays on the queue; the malformed one is dropped
	assert.ElementsMatch(t, []string{"ok", "garbage"}, queue.deleted)
}

func TestSQSPoller_StopEndsServe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	poller := NewSQSPollerWithClient(&fakeQueue{}, "https://sqs.local/orders", nil, logger)

	done := make(chan error, 1)
	go func() { done <- poller.Serve(context.Background()) }()

	assert.Eventually(t, func() bool {
		poller.mu.Lock()
		defer poller.mu.Unlock()

		return poller.running != nil
	}, time.Second, 5*time.Millisecond)

	poller.Stop()
	assert.NoError(t, <-done)
}
