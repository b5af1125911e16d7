package usecase

import "context"

// DispatchResult counts what one dispatch round did.
type DispatchResult struct {
	Leased       int
	Delivered    int
	Retrying     int
	DeadLettered int
}

// EventDispatchUsecase delivers recorded outbox events
type EventDispatchUsecase interface {
	// DispatchDue leases due events and attempts each once.
	DispatchDue(ctx context.Context) (*DispatchResult, error)
}
