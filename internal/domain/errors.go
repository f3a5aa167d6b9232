package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrEventBusNotConfigured is a configuration error: an entity tried to raise
// an event without a bus wired in.
var ErrEventBusNotConfigured = errors.New("event bus is not configured")

// ValidationError signals malformed or missing required input, detected
// before any persistence is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError carries the entity type name and the stringified identifier.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s was not found", e.Entity, e.ID)
}

// InvalidTransitionError signals a state-machine method invoked from a state
// that does not permit it.
type InvalidTransitionError struct {
	Entity string
	ID     uuid.UUID
	Msg    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Entity, e.ID, e.Msg)
}

type PropertyNotAvailableError struct {
	PropertyID uuid.UUID
	Reason     string
}

func (e *PropertyNotAvailableError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("property with ID %s is not available for rent", e.PropertyID)
}

type InvalidLeasePeriodError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidLeasePeriodError) Error() string {
	return fmt.Sprintf("lease period from %s to %s is invalid", e.Start, e.End)
}

type OverduePaymentError struct {
	TenantID uuid.UUID
}

func (e *OverduePaymentError) Error() string {
	return fmt.Sprintf("tenant with ID %s has overdue payments", e.TenantID)
}

type PaymentAlreadyCompletedError struct {
	PaymentID uuid.UUID
}

func (e *PaymentAlreadyCompletedError) Error() string {
	return fmt.Sprintf("payment with ID %s is already completed", e.PaymentID)
}

type PaymentAlreadyCancelledError struct {
	PaymentID uuid.UUID
}

func (e *PaymentAlreadyCancelledError) Error() string {
	return fmt.Sprintf("payment with ID %s is already cancelled", e.PaymentID)
}
