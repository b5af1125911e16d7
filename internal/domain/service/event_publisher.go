package service

import (
	"context"
)

// OutboundMessage is a signed, encoded event ready for transport.
type OutboundMessage struct {
	ShopID         string
	EventType      string
	IdempotencyKey string
	Body           []byte
	Headers        map[string]string
	// WebhookURL is the shop's endpoint; only the webhook publisher uses it.
	WebhookURL string
}

// EventPublisher defines the interface for delivering events to a transport
type EventPublisher interface {
	// Publish delivers one message. A nil error means the receiver acknowledged it.
	Publish(ctx context.Context, msg *OutboundMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
