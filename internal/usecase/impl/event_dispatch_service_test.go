package impl

import (
	"context"
	"testing"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/service"
	mockRepo "slotwise/internal/mocks/repository"
	mockSvc "slotwise/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var dispatchNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type dispatchFixture struct {
	outboxRepo  *mockRepo.MockOutboxRepository
	catalogRepo *mockRepo.MockCatalogRepository
	publisher   *mockSvc.MockEventPublisher
	deadLetter  *mockSvc.MockEventPublisher
	signer      *mockSvc.MockEventSigner
	service     *eventDispatchService
}

func newDispatchFixture(t *testing.T, withDeadLetter bool) *dispatchFixture {
	t.Helper()

	f := &dispatchFixture{
		outboxRepo:  mockRepo.NewMockOutboxRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		signer:      mockSvc.NewMockEventSigner(t),
	}
	cfg := newTestConfig()

	params := EventDispatchServiceParams{
		OutboxRepo: f.outboxRepo,
		Settings:   NewSettingsService(f.catalogRepo, cfg),
		Publisher:  f.publisher,
		Signer:     f.signer,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}
	if withDeadLetter {
		f.deadLetter = mockSvc.NewMockEventPublisher(t)
		params.DeadLetter = f.deadLetter
	}
	f.service = NewEventDispatchService(params).(*eventDispatchService)
	f.service.now = fixedClock(dispatchNow)

	return f
}

func outboxRecord(status entity.OutboxStatus, attempts int) *entity.OutboxRecord {
	return &entity.OutboxRecord{
		ID:             uuid.New(),
		ShopID:         testShopID,
		EventType:      entity.EventOrderScheduled,
		IdempotencyKey: "9f2c",
		Payload:        []byte(`{"orderId":"order-1"}`),
		Status:         status,
		Attempts:       attempts,
		NextAttemptAt:  dispatchNow.Add(-time.Second),
	}
}

func (f *dispatchFixture) expectLease(records ...*entity.OutboxRecord) {
	f.outboxRepo.EXPECT().LeaseDue(mock.Anything, dispatchNow, 10, 30*time.Second).Return(records, nil)
	f.catalogRepo.EXPECT().FindShopSettings(mock.Anything, testShopID).Return(&entity.ShopSettings{
		WebhookURL: "https://merchant.example/hooks/slotwise",
	}, nil)
	f.signer.EXPECT().Headers(mock.Anything, dispatchNow).Return(map[string]string{
		"X-Slotwise-Signature": "sha256=abc",
	}, nil)
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: 0, expected: time.Second},
		{attempt: 1, expected: time.Second},
		{attempt: 2, expected: 2 * time.Second},
		{attempt: 3, expected: 4 * time.Second},
		{attempt: 6, expected: 32 * time.Second},
		{attempt: 10, expected: 5 * time.Minute},
		{attempt: 40, expected: 5 * time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RetryDelay(tt.attempt, time.Second, 5*time.Minute), "attempt %d", tt.attempt)
	}
}

func TestEventDispatchService_DispatchDue_Delivered(t *testing.T) {
	f := newDispatchFixture(t, false)
	record := outboxRecord(entity.OutboxPending, 0)
	f.expectLease(record)

	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(msg *service.OutboundMessage) bool {
			return msg.WebhookURL == "https://merchant.example/hooks/slotwise" &&
				msg.IdempotencyKey == "9f2c" &&
				string(msg.Body) == `{"orderId":"order-1"}` &&
				msg.Headers["X-Slotwise-Signature"] == "sha256=abc"
		})).
		Return(nil)
	f.outboxRepo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(r *entity.OutboxRecord) bool {
			return r.Status == entity.OutboxDelivered && r.Attempts == 1
		})).
		Return(nil)

	result, err := f.service.DispatchDue(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Leased)
	assert.Equal(t, 1, result.Delivered)
	require.NotNil(t, record.DeliveredAt)
	assert.Equal(t, dispatchNow, *record.DeliveredAt)
}

func TestEventDispatchService_DispatchDue_SchedulesRetry(t *testing.T) {
	f := newDispatchFixture(t, false)
	record := outboxRecord(entity.OutboxRetrying, 2)
	f.expectLease(record)

	f.publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Return(&domainerrors.EventDeliveryError{EventType: "order.scheduled", StatusCode: 503})
	f.outboxRepo.EXPECT().Save(mock.Anything, record).Return(nil)

	result, err := f.service.DispatchDue(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Retrying)
	assert.Equal(t, entity.OutboxRetrying, record.Status)
	assert.Equal(t, 3, record.Attempts)
	assert.Equal(t, dispatchNow.Add(4*time.Second), record.NextAttemptAt)
	assert.Contains(t, record.LastError, "503")
}

func TestEventDispatchService_DispatchDue_DeadLetters(t *testing.T) {
	f := newDispatchFixture(t, true)
	record := outboxRecord(entity.OutboxRetrying, 4)
	f.expectLease(record)

	f.publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Return(&domainerrors.EventDeliveryError{EventType: "order.scheduled", StatusCode: 410})
	f.deadLetter.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(msg *service.OutboundMessage) bool {
			return msg.Headers[HeaderDeadLetterReason] != "" &&
				msg.Headers["X-Slotwise-Signature"] == "sha256=abc"
		})).
		Return(nil)
	f.outboxRepo.EXPECT().Save(mock.Anything, record).Return(nil)

	result, err := f.service.DispatchDue(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, result.DeadLettered)
	assert.Equal(t, entity.OutboxDeadLettered, record.Status)
	assert.Equal(t, 5, record.Attempts)
}

func TestEventDispatchService_DispatchDue_ShopRetryCeiling(t *testing.T) {
	f := newDispatchFixture(t, false)
	record := outboxRecord(entity.OutboxRetrying, 1)

	f.outboxRepo.EXPECT().LeaseDue(mock.Anything, dispatchNow, 10, 30*time.Second).Return([]*entity.OutboxRecord{record}, nil)
	f.catalogRepo.EXPECT().FindShopSettings(mock.Anything, testShopID).Return(&entity.ShopSettings{EventRetryCeiling: 2}, nil)
	f.signer.EXPECT().Headers(record, dispatchNow).Return(map[string]string{}, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(assert.AnError)
	f.outboxRepo.EXPECT().Save(mock.Anything, record).Return(nil)

	result, err := f.service.DispatchDue(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, result.DeadLettered)
}

func TestEventDispatchService_DispatchDue_FirstFailureAlwaysRetries(t *testing.T) {
	f := newDispatchFixture(t, false)
	record := outboxRecord(entity.OutboxPending, 0)

	f.outboxRepo.EXPECT().LeaseDue(mock.Anything, dispatchNow, 10, 30*time.Second).Return([]*entity.OutboxRecord{record}, nil)
	f.catalogRepo.EXPECT().FindShopSettings(mock.Anything, testShopID).Return(&entity.ShopSettings{EventRetryCeiling: 1}, nil)
	f.signer.EXPECT().Headers(record, dispatchNow).Return(map[string]string{}, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(assert.AnError)
	f.outboxRepo.EXPECT().Save(mock.Anything, record).Return(nil)

	result, err := f.service.DispatchDue(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Retrying)
	assert.Equal(t, dispatchNow.Add(time.Second), record.NextAttemptAt)
}

func TestEventDispatchService_DispatchDue_ShutdownLeavesRecord(t *testing.T) {
	f := newDispatchFixture(t, false)
	record := outboxRecord(entity.OutboxPending, 0)
	ctx, cancel := context.WithCancel(t.Context())

	f.expectLease(record)
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.OutboundMessage) error {
			cancel()

			return context.Canceled
		})

	result, err := f.service.DispatchDue(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Delivered+result.Retrying+result.DeadLettered)
	assert.Equal(t, entity.OutboxPending, record.Status)
	assert.Equal(t, 0, record.Attempts)
}

func TestEventDispatchService_DispatchDue_Empty(t *testing.T) {
	f := newDispatchFixture(t, false)
	f.outboxRepo.EXPECT().LeaseDue(mock.Anything, dispatchNow, 10, 30*time.Second).Return(nil, nil)

	result, err := f.service.DispatchDue(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Leased)
}

func TestEventDispatchService_DispatchDue_SettingsFallback(t *testing.T) {
	f := newDispatchFixture(t, false)
	record := outboxRecord(entity.OutboxPending, 0)

	f.outboxRepo.EXPECT().LeaseDue(mock.Anything, dispatchNow, 10, 30*time.Second).Return([]*entity.OutboxRecord{record}, nil)
	f.catalogRepo.EXPECT().FindShopSettings(mock.Anything, testShopID).Return(nil, assert.AnError)
	f.signer.EXPECT().Headers(record, dispatchNow).Return(map[string]string{}, nil)
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(msg *service.OutboundMessage) bool {
			return msg.WebhookURL == ""
		})).
		Return(nil)
	f.outboxRepo.EXPECT().Save(mock.Anything, record).Return(nil)

	result, err := f.service.DispatchDue(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Delivered)
}
