package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"slotwise/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Events of one shop keep their relative order.
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Publish sends the encoded event as a Pub/Sub message. The signing headers
// travel as attributes so subscribers can verify them.
func (p *googlePubSubPublisher) Publish(ctx context.Context, msg *service.OutboundMessage) error {
	attributes := messageAttributes(msg)

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.Body,
		Attributes:  attributes,
		OrderingKey: msg.ShopID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until it is resumed.
		p.publisher.ResumePublish(msg.ShopID)

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event_type", msg.EventType),
		slog.String("idempotency_key", msg.IdempotencyKey),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

func messageAttributes(msg *service.OutboundMessage) map[string]string {
	attributes := make(map[string]string, len(msg.Headers)+3)
	for k, v := range msg.Headers {
		attributes[k] = v
	}
	attributes["shop_id"] = msg.ShopID
	attributes["event_type"] = msg.EventType
	attributes["idempotency_key"] = msg.IdempotencyKey

	return attributes
}
