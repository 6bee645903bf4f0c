package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID: "req-1",
		Type:      service.OrderEventTypePlaced,
		Order: &entity.OrderPlacedEvent{
			OrderID:    uuid.MustParse("0190f1c2-0000-7000-8000-000000000001"),
			Total:      decimal.RequireFromString("2480000"),
			ItemCount:  2,
			Address:    "Calle 1",
			OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := testEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.Order.OrderID.String(), received.Message.MessageID)
	assert.Equal(t, event.Order.OrderID.String(), received.Message.Attributes["order_id"])
	assert.Equal(t, service.OrderEventTypePlaced, received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Order.OrderID, decoded.Order.OrderID)
	assert.True(t, event.Order.Total.Equal(decoded.Order.Total))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 500")
}

func TestLocalHTTPPublisher_EmptyEvent(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://localhost:0", discardLogger())

	assert.Error(t, publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{}))
}

type fakeSQS struct {
	SQSAPI
	sent []*sqs.SendMessageInput
	err  error
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)

	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSQSPublisher_PublishOrderEvent(t *testing.T) {
	client := &fakeSQS{}
	publisher := NewSQSPublisher(client, "https://sqs.local/queue", discardLogger())
	event := testEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))
	require.Len(t, client.sent, 1)

	sent := client.sent[0]
	assert.Equal(t, "https://sqs.local/queue", aws.ToString(sent.QueueUrl))
	assert.Equal(t, event.Order.OrderID.String(), aws.ToString(sent.MessageAttributes["order_id"].StringValue))
	assert.Equal(t, "req-1", aws.ToString(sent.MessageAttributes["request_id"].StringValue))

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(sent.MessageBody)), &decoded))
	assert.Equal(t, 2, decoded.Order.ItemCount)
}

func TestSQSPublisher_SendFails(t *testing.T) {
	client := &fakeSQS{err: assert.AnError}
	publisher := NewSQSPublisher(client, "https://sqs.local/queue", discardLogger())

	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
