package pubsub

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/service"

	"github.com/pkg/errors"
)

// maxDrainBytes bounds how much of a response body is read before closing.
const maxDrainBytes = 4 << 10

// webhookPublisher POSTs signed events to the shop's webhook URL. Any 2xx
// response acknowledges the event.
type webhookPublisher struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookPublisher creates a publisher that delivers to msg.WebhookURL
func NewWebhookPublisher(timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	return &webhookPublisher{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (p *webhookPublisher) Publish(ctx context.Context, msg *service.OutboundMessage) error {
	if msg.WebhookURL == "" {
		return &domainerrors.EventDeliveryError{
			EventType: msg.EventType,
			Err:       errors.Errorf("shop %s has no webhook url", msg.ShopID),
		}
	}

	status, err := postEvent(ctx, p.httpClient, msg.WebhookURL, msg.Body, msg)
	if err != nil {
		return err
	}

	p.logger.Debug("[Webhook] Event delivered",
		slog.String("shop_id", msg.ShopID),
		slog.String("event_type", msg.EventType),
		slog.Int("status", status),
	)

	return nil
}

func (p *webhookPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}

// postEvent sends body with the message's signing headers and maps transport
// failures and non-2xx answers to EventDeliveryError.
func postEvent(ctx context.Context, client *http.Client, url string, body []byte, msg *service.OutboundMessage) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range msg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, &domainerrors.EventDeliveryError{EventType: msg.EventType, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, &domainerrors.EventDeliveryError{EventType: msg.EventType, StatusCode: resp.StatusCode}
	}

	return resp.StatusCode, nil
}
