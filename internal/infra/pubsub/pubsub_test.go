package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"slotwise/config"
	"slotwise/internal/domain/constants"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMessage(url string) *service.OutboundMessage {
	return &service.OutboundMessage{
		ShopID:         "shop-1",
		EventType:      "order.scheduled",
		IdempotencyKey: "abc123",
		Body:           []byte(`{"orderId":"o-1"}`),
		Headers: map[string]string{
			"X-Slotwise-Signature": "sha256=deadbeef",
			"X-Slotwise-Event":     "order.scheduled",
		},
		WebhookURL: url,
	}
}

func TestWebhookPublisher_Publish(t *testing.T) {
	var (
		gotBody      []byte
		gotSignature string
		gotEvent     string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-Slotwise-Signature")
		gotEvent = r.Header.Get("X-Slotwise-Event")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	publisher := NewWebhookPublisher(time.Second, newDiscardLogger())
	defer publisher.Close()

	err := publisher.Publish(context.Background(), testMessage(server.URL))
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":"o-1"}`, string(gotBody))
	assert.Equal(t, "sha256=deadbeef", gotSignature)
	assert.Equal(t, "order.scheduled", gotEvent)
}

func TestWebhookPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewWebhookPublisher(time.Second, newDiscardLogger())

	err := publisher.Publish(context.Background(), testMessage(server.URL))
	require.Error(t, err)

	var deliveryErr *domainerrors.EventDeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, http.StatusServiceUnavailable, deliveryErr.StatusCode)
	assert.Equal(t, "order.scheduled", deliveryErr.EventType)
}

func TestWebhookPublisher_MissingURL(t *testing.T) {
	publisher := NewWebhookPublisher(time.Second, newDiscardLogger())

	err := publisher.Publish(context.Background(), testMessage(""))

	var deliveryErr *domainerrors.EventDeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Zero(t, deliveryErr.StatusCode)
}

func TestWebhookPublisher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	publisher := NewWebhookPublisher(50*time.Millisecond, newDiscardLogger())

	err := publisher.Publish(context.Background(), testMessage(server.URL))

	var deliveryErr *domainerrors.EventDeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Error(t, deliveryErr.Err)
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var push PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, time.Second, newDiscardLogger())

	err := publisher.Publish(context.Background(), testMessage(""))
	require.NoError(t, err)

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":"o-1"}`, string(data))
	assert.Equal(t, "abc123", push.Message.MessageID)
	assert.Equal(t, "shop-1", push.Message.Attributes["shop_id"])
	assert.Equal(t, "order.scheduled", push.Message.Attributes["event_type"])
	assert.Equal(t, "sha256=deadbeef", push.Message.Attributes["X-Slotwise-Signature"])
	assert.Equal(t, "shop-1", push.Message.OrderingKey)
	assert.Equal(t, localSubscription, push.Subscription)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, time.Second, newDiscardLogger())

	err := publisher.Publish(context.Background(), testMessage(""))

	var deliveryErr *domainerrors.EventDeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, http.StatusInternalServerError, deliveryErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name           string
		cfg            *config.Config
		wantErr        bool
		wantDeadLetter bool
	}{
		{
			name: "noop",
			cfg: &config.Config{
				Events: &config.EventsConfig{Provider: constants.PublisherProviderNoop},
			},
		},
		{
			name: "webhook",
			cfg: &config.Config{
				Events: &config.EventsConfig{Provider: constants.PublisherProviderWebhook, HTTPTimeout: time.Second},
			},
		},
		{
			name: "local without endpoint",
			cfg: &config.Config{
				Events: &config.EventsConfig{Provider: constants.PublisherProviderLocal},
			},
			wantErr: true,
		},
		{
			name: "kafka with dead-letter topic",
			cfg: &config.Config{
				Events: &config.EventsConfig{
					Provider:        constants.PublisherProviderKafka,
					DeadLetterTopic: "slotwise.dlt",
				},
				Kafka: &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "slotwise.events"},
			},
			wantDeadLetter: true,
		},
		{
			name: "kafka without topic",
			cfg: &config.Config{
				Events: &config.EventsConfig{Provider: constants.PublisherProviderKafka},
				Kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.Config{
				Events: &config.EventsConfig{Provider: "carrier-pigeon"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			out, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, out.Primary)
			assert.Equal(t, tt.wantDeadLetter, out.DeadLetter != nil)

			lc.RequireStart().RequireStop()
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, publisher.Publish(context.Background(), testMessage("")))
	assert.NoError(t, publisher.Close())
}
