package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
)

// SQSAPI is the subset of the SQS client used by the storefront
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// sqsPublisher implements EventPublisher using Amazon SQS
type sqsPublisher struct {
	client   SQSAPI
	queueURL string
	logger   *slog.Logger
}

// NewSQSClient loads the default AWS configuration for the given region
func NewSQSClient(ctx context.Context, region string) (*sqs.Client, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 1)
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return sqs.NewFromConfig(cfg), nil
}

// NewSQSPublisher creates a publisher that sends order events to an SQS queue
func NewSQSPublisher(client SQSAPI, queueURL string, logger *slog.Logger) service.EventPublisher {
	return &sqsPublisher{
		client:   client,
		queueURL: queueURL,
		logger:   logger,
	}
}

// PublishOrderEvent sends the event as the message body
func (p *sqsPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event == nil || event.Order == nil {
		return errors.New("order event is empty")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := make(map[string]types.MessageAttributeValue)
	for key, value := range eventAttributes(event) {
		attributes[key] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}

	out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          aws.String(p.queueURL),
		MessageBody:       aws.String(string(data)),
		MessageAttributes: attributes,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send SQS message")
	}

	p.logger.Info("[SQS] Event published successfully",
		slog.String("order_id", event.Order.OrderID.String()),
		slog.String("message_id", aws.ToString(out.MessageId)),
	)

	return nil
}

// Close releases resources (the SQS client holds none)
func (p *sqsPublisher) Close() error {
	return nil
}
