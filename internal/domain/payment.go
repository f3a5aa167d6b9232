package domain

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Audit
	LeaseID uuid.UUID     `gorm:"type:uuid;not null;index;column:lease_id" json:"lease_id"`
	Amount  Money         `gorm:"embedded;embeddedPrefix:amount_" json:"amount"`
	Date    time.Time     `gorm:"not null;column:date" json:"date"`
	Status  PaymentStatus `gorm:"not null;column:status" json:"status"`
}

func (Payment) TableName() string { return "payment" }

// NewPayment records a received payment; construction yields Completed
// directly.
func NewPayment(bus *EventBus, leaseID uuid.UUID, amount Money, date time.Time) (*Payment, error) {
	if date.After(time.Now().UTC()) {
		return nil, &ValidationError{Msg: "payment date cannot be in the future"}
	}
	if err := amount.Validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, ErrEventBusNotConfigured
	}
	payment := &Payment{
		Audit:   Audit{ID: newID()},
		LeaseID: leaseID,
		Amount:  amount,
		Date:    date,
		Status:  PaymentStatusCompleted,
	}
	bus.Publish(PaymentReceived{PaymentID: payment.ID, LeaseID: leaseID, Amount: amount, At: time.Now().UTC()})
	return payment, nil
}

// MarkAsCompleted rejects an already completed payment before consulting the
// transition table; the narrower check takes precedence.
func (p *Payment) MarkAsCompleted() error {
	if p.Status == PaymentStatusCompleted {
		return &PaymentAlreadyCompletedError{PaymentID: p.ID}
	}
	return p.transitionTo(PaymentStatusCompleted)
}

// Cancel rejects an already cancelled payment before consulting the
// transition table.
func (p *Payment) Cancel() error {
	if p.Status == PaymentStatusCanceled {
		return &PaymentAlreadyCancelledError{PaymentID: p.ID}
	}
	return p.transitionTo(PaymentStatusCanceled)
}

func (p *Payment) MarkAsFailed() error {
	return p.transitionTo(PaymentStatusFailed)
}

func (p *Payment) MarkAsOverdue() error {
	return p.transitionTo(PaymentStatusOverdue)
}

// Retry moves a failed payment back to pending.
func (p *Payment) Retry() error {
	return p.transitionTo(PaymentStatusPending)
}

func (p *Payment) transitionTo(next PaymentStatus) error {
	if !p.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{
			Entity: "Payment",
			ID:     p.ID,
			Msg:    "cannot transition from " + string(p.Status) + " to " + string(next),
		}
	}
	p.Status = next
	return nil
}
