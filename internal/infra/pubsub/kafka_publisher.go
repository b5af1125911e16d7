package pubsub

import (
	"context"
	"log/slog"

	"slotwise/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher writes events to a kafka topic keyed by shop, so events of
// one shop land on one partition in order.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}, logger)
}

func newKafkaPublisher(writer *kafka.Writer, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, logger: logger}
}

func (p *kafkaPublisher) Publish(ctx context.Context, msg *service.OutboundMessage) error {
	attributes := messageAttributes(msg)
	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(msg.ShopID),
		Value:   msg.Body,
		Headers: headers,
	}); err != nil {
		return errors.Wrapf(err, "write %s to %s", msg.EventType, p.writer.Topic)
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("topic", p.writer.Topic),
		slog.String("event_type", msg.EventType),
		slog.String("idempotency_key", msg.IdempotencyKey),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
