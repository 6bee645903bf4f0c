package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/infra/pubsub"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	sqsMaxMessages       = 10
	sqsWaitTimeSeconds   = 20
	sqsVisibilityTimeout = 30
	sqsErrorBackoff      = 5 * time.Second
)

type sqsPoller struct {
	client   pubsub.SQSAPI
	queueURL string
	handler  *handler.PushHandler
	logger   *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	running  chan struct{}
}

// SQSPollerParams holds dependencies for the SQS poller
type SQSPollerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewSQSPoller creates a delivery that long-polls the order queue
func NewSQSPoller(params SQSPollerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.QueueURL == "" {
		return nil, errors.New("queue URL is required for the sqs poller")
	}

	client, err := pubsub.NewSQSClient(params.Ctx, cfg.Region)
	if err != nil {
		return nil, err
	}

	poller := NewSQSPollerWithClient(client, cfg.QueueURL, params.PushHandler, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			poller.Stop()

			return nil
		},
	})

	return poller, nil
}

// NewSQSPollerWithClient creates a poller around an existing client
func NewSQSPollerWithClient(client pubsub.SQSAPI, queueURL string, pushHandler *handler.PushHandler, logger *slog.Logger) *sqsPoller {
	return &sqsPoller{
		client:   client,
		queueURL: queueURL,
		handler:  pushHandler,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Serve polls until Stop is called or ctx is done
func (p *sqsPoller) Serve(ctx context.Context) error {
	finished := make(chan struct{})
	defer close(finished)

	p.mu.Lock()
	p.running = finished
	p.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-p.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	p.logger.Info("Starting SQS poller", slog.String("queue_url", p.queueURL))

	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := p.PollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.logger.Error("Error receiving messages", slog.Any("error", err))

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(sqsErrorBackoff):
			}
		}
	}
}

// PollOnce receives one batch and handles each message. Messages are deleted
// unless processing failed with a retryable error.
func (p *sqsPoller) PollOnce(ctx context.Context) error {
	result, err := p.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:              aws.String(p.queueURL),
		MaxNumberOfMessages:   sqsMaxMessages,
		WaitTimeSeconds:       sqsWaitTimeSeconds,
		VisibilityTimeout:     sqsVisibilityTimeout,
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	for _, msg := range result.Messages {
		p.handle(ctx, msg)
	}

	return nil
}

func (p *sqsPoller) handle(ctx context.Context, msg types.Message) {
	attributes := make(map[string]string, len(msg.MessageAttributes))
	for key, value := range msg.MessageAttributes {
		attributes[key] = aws.ToString(value.StringValue)
	}

	err := p.handler.Process(ctx, []byte(aws.ToString(msg.Body)), attributes)
	if handler.IsRetryable(err) {
		// Left on the queue; it becomes visible again after the visibility timeout
		return
	}

	_, delErr := p.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(p.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if delErr != nil {
		p.logger.Error("Failed to delete message",
			slog.String("message_id", aws.ToString(msg.MessageId)),
			slog.Any("error", delErr),
		)
	}
}

// Stop cancels polling and waits for the in-flight batch
func (p *sqsPoller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })

	p.mu.Lock()
	running := p.running
	p.mu.Unlock()

	if running != nil {
		<-running
	}
}
