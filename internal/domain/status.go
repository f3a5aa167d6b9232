package domain

type LeaseStatus string

const (
	// LeaseStatusPending is reserved for activation flows; construction
	// currently yields an active lease directly.
	LeaseStatusPending  LeaseStatus = "pending"
	LeaseStatusActive   LeaseStatus = "active"
	LeaseStatusExpired  LeaseStatus = "expired"
	LeaseStatusCanceled LeaseStatus = "canceled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCanceled  PaymentStatus = "canceled"
)

// CanTransitionTo encodes the payment transition table. Everything not listed
// is rejected.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusCompleted ||
			next == PaymentStatusFailed ||
			next == PaymentStatusOverdue ||
			next == PaymentStatusCanceled
	case PaymentStatusFailed:
		return next == PaymentStatusPending || next == PaymentStatusCanceled
	case PaymentStatusOverdue:
		return next == PaymentStatusCompleted || next == PaymentStatusCanceled
	default:
		return false
	}
}

// IsFinal reports whether the payment can no longer move.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusCanceled
}

func (s PaymentStatus) Description() string {
	switch s {
	case PaymentStatusPending:
		return "Payment is pending."
	case PaymentStatusCompleted:
		return "Payment has been completed."
	case PaymentStatusFailed:
		return "Payment failed. Please try again."
	case PaymentStatusOverdue:
		return "Payment is overdue."
	case PaymentStatusCanceled:
		return "Payment has been canceled."
	default:
		return "Unknown status."
	}
}
