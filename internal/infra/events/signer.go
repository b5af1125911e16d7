package events

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"time"

	"slotwise/config"
	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"

	"golang.org/x/crypto/hkdf"
)

// Delivery headers.
const (
	HeaderSignature      = "X-Slotwise-Signature"
	HeaderIdempotencyKey = "X-Slotwise-Idempotency-Key"
	HeaderEvent          = "X-Slotwise-Event"
	HeaderTimestamp      = "X-Slotwise-Timestamp"

	signaturePrefix = "sha256="
	keyInfoPrefix   = "slotwise-webhook-v1:"
	shopKeySize     = 32
)

// Signer derives a per-shop HMAC key from the master webhook secret and signs
// payloads with it. Without a secret no signature header is produced.
type Signer struct {
	master []byte
}

// NewSigner creates a signer from the configured webhook secret.
func NewSigner(cfg *config.Config) service.EventSigner {
	return newSigner(cfg.Events.WebhookSecret)
}

func newSigner(secret string) *Signer {
	return &Signer{master: []byte(secret)}
}

// ShopKey returns the signing key shared with one shop.
func (s *Signer) ShopKey(shopID string) ([]byte, error) {
	key := make([]byte, shopKeySize)
	r := hkdf.New(sha256.New, s.master, nil, []byte(keyInfoPrefix+shopID))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Wrap(err, "derive shop key")
	}

	return key, nil
}

// Sign returns "sha256=<hex hmac>" of body under the shop's key.
func (s *Signer) Sign(shopID string, body []byte) (string, error) {
	key, err := s.ShopKey(shopID)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(body)

	return signaturePrefix + hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks a signature header value in constant time.
func (s *Signer) Verify(shopID string, body []byte, signature string) bool {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	expected, err := s.Sign(shopID, body)
	if err != nil {
		return false
	}

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *Signer) Headers(record *entity.OutboxRecord, at time.Time) (map[string]string, error) {
	headers := map[string]string{
		HeaderIdempotencyKey: record.IdempotencyKey,
		HeaderEvent:          string(record.EventType),
		HeaderTimestamp:      strconv.FormatInt(at.Unix(), 10),
	}
	if len(s.master) == 0 {
		return headers, nil
	}

	signature, err := s.Sign(record.ShopID, record.Payload)
	if err != nil {
		return nil, err
	}
	headers[HeaderSignature] = signature

	return headers, nil
}
