package errors

import (
	"fmt"
	"net/http"

	"slotwise/internal/errors"

	"github.com/google/uuid"
)

// FieldIssue names one malformed request field.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int         // HTTP status code
	ErrorCode() string     // Business error code
	Message() string       // User-friendly error message
	Details() []FieldIssue // Field-level details (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   []FieldIssue
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details ...FieldIssue) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns field-level error information
func (e *BaseError) Details() []FieldIssue {
	return e.details
}

// WithDetails returns a copy carrying the given details
func (e *BaseError) WithDetails(details ...FieldIssue) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid credentials",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
	)

	ErrSlotNotFound = NewBaseError(
		http.StatusNotFound,
		"SLOT_NOT_FOUND",
		"slot not found",
	)

	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"booking not found",
	)

	ErrBookingAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BOOKING_ALREADY_EXISTS",
		"order already has an active booking",
	)

	ErrBookingCanceled = NewBaseError(
		http.StatusConflict,
		"BOOKING_CANCELED",
		"booking is canceled",
	)

	// ErrNothingToRelease is returned when a release finds no reservation.
	ErrNothingToRelease = NewBaseError(
		http.StatusConflict,
		"NOTHING_TO_RELEASE",
		"slot has no reservation to release",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)
)

// ValidationError reports malformed request fields. It is never retried.
type ValidationError struct {
	fields []FieldIssue
}

// NewValidationError creates a validation error for the given fields
func NewValidationError(fields ...FieldIssue) *ValidationError {
	return &ValidationError{fields: fields}
}

// Invalid is shorthand for a single-field validation error
func Invalid(field, issue string) *ValidationError {
	return NewValidationError(FieldIssue{Field: field, Issue: issue})
}

func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}

	return fmt.Sprintf("validation failed: %s %s", e.fields[0].Field, e.fields[0].Issue)
}

func (e *ValidationError) HTTPCode() int         { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string     { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string       { return "request validation failed" }
func (e *ValidationError) Details() []FieldIssue { return e.fields }

// IneligibleError is a business rejection surfaced verbatim to the caller.
type IneligibleError struct {
	Reason string
}

// NewIneligibleError creates an ineligibility error with a reason code
func NewIneligibleError(reason string) *IneligibleError {
	return &IneligibleError{Reason: reason}
}

func (e *IneligibleError) Error() string     { return "ineligible: " + e.Reason }
func (e *IneligibleError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *IneligibleError) ErrorCode() string { return "INELIGIBLE" }
func (e *IneligibleError) Message() string   { return e.Reason }
func (e *IneligibleError) Details() []FieldIssue {
	return []FieldIssue{{Field: "reason", Issue: e.Reason}}
}

// CapacityExceededError means the slot was full at reservation time. Callers
// should re-query candidates instead of retrying the same slot.
type CapacityExceededError struct {
	SlotID uuid.UUID
}

// NewCapacityExceededError creates a capacity error for slotID
func NewCapacityExceededError(slotID uuid.UUID) *CapacityExceededError {
	return &CapacityExceededError{SlotID: slotID}
}

func (e *CapacityExceededError) Error() string     { return "slot " + e.SlotID.String() + " is full" }
func (e *CapacityExceededError) HTTPCode() int     { return http.StatusConflict }
func (e *CapacityExceededError) ErrorCode() string { return "CAPACITY_EXCEEDED" }
func (e *CapacityExceededError) Message() string   { return "the selected slot is fully booked" }
func (e *CapacityExceededError) Details() []FieldIssue {
	return []FieldIssue{{Field: "slotId", Issue: "full"}}
}

// ConcurrencyConflictError is an optimistic version mismatch. The whole
// operation can be retried after re-reading current state.
type ConcurrencyConflictError struct {
	Resource string
	Expected int64
	Actual   int64
}

// NewConcurrencyConflictError creates a version conflict error
func NewConcurrencyConflictError(resource string, expected, actual int64) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Resource: resource, Expected: expected, Actual: actual}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s version conflict: expected %d, got %d", e.Resource, e.Expected, e.Actual)
}
func (e *ConcurrencyConflictError) HTTPCode() int     { return http.StatusConflict }
func (e *ConcurrencyConflictError) ErrorCode() string { return "CONCURRENCY_CONFLICT" }
func (e *ConcurrencyConflictError) Message() string {
	return "the resource was modified concurrently, reload and retry"
}
func (e *ConcurrencyConflictError) Details() []FieldIssue {
	return []FieldIssue{{Field: "version", Issue: "stale"}}
}

// ConfigurationError rejects invalid weights or rules before any ledger
// mutation happens.
type ConfigurationError struct {
	Field string
	Issue string
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(field, issue string) *ConfigurationError {
	return &ConfigurationError{Field: field, Issue: issue}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Issue)
}
func (e *ConfigurationError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *ConfigurationError) ErrorCode() string { return "CONFIGURATION_ERROR" }
func (e *ConfigurationError) Message() string   { return "merchant configuration is invalid" }
func (e *ConfigurationError) Details() []FieldIssue {
	return []FieldIssue{{Field: e.Field, Issue: e.Issue}}
}

// EventDeliveryError is a failed delivery attempt. It stays inside the
// event emitter and is never returned to booking callers.
type EventDeliveryError struct {
	EventType  string
	StatusCode int
	Err        error
}

func (e *EventDeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("deliver %s: unexpected status %d", e.EventType, e.StatusCode)
	}

	return fmt.Sprintf("deliver %s: %v", e.EventType, e.Err)
}

func (e *EventDeliveryError) Unwrap() error {
	return e.Err
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns the failing operation
func (e *DatabaseExecuteError) Details() []FieldIssue {
	if e.details == "" {
		return nil
	}

	return []FieldIssue{{Field: "operation", Issue: e.details}}
}
