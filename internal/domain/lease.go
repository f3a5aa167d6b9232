package domain

import (
	"time"

	"github.com/google/uuid"
)

type Lease struct {
	Audit
	PropertyID uuid.UUID   `gorm:"type:uuid;not null;index;column:property_id" json:"property_id"`
	TenantID   uuid.UUID   `gorm:"type:uuid;not null;index;column:tenant_id" json:"tenant_id"`
	Period     DateRange   `gorm:"embedded;embeddedPrefix:period_" json:"period"`
	Rent       Money       `gorm:"embedded;embeddedPrefix:rent_" json:"rent"`
	Status     LeaseStatus `gorm:"not null;column:status" json:"status"`

	Payments []*Payment `gorm:"foreignKey:LeaseID" json:"payments,omitempty"`
}

func (Lease) TableName() string { return "lease" }

// NewLease is internal to the domain; callers go through CreateLease.
// Construction yields an active lease directly.
func NewLease(bus *EventBus, propertyID, tenantID uuid.UUID, period DateRange, rent Money) (*Lease, error) {
	if !period.IsValid() {
		return nil, &InvalidLeasePeriodError{Start: period.Start, End: period.End}
	}
	if err := rent.Validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, ErrEventBusNotConfigured
	}
	lease := &Lease{
		Audit:      Audit{ID: newID()},
		PropertyID: propertyID,
		TenantID:   tenantID,
		Period:     period,
		Rent:       rent,
		Status:     LeaseStatusActive,
	}
	bus.Publish(LeaseCreated{LeaseID: lease.ID, At: time.Now().UTC()})
	return lease, nil
}

func (l *Lease) IsOverlapping(other DateRange) bool {
	return l.Period.Overlaps(other)
}

func (l *Lease) Activate() error {
	if l.Status != LeaseStatusPending {
		return &InvalidTransitionError{Entity: "Lease", ID: l.ID, Msg: "only pending leases can be activated"}
	}
	l.Status = LeaseStatusActive
	return nil
}

func (l *Lease) Expire() error {
	if l.Status != LeaseStatusActive {
		return &InvalidTransitionError{Entity: "Lease", ID: l.ID, Msg: "only active leases can expire"}
	}
	l.Status = LeaseStatusExpired
	return nil
}

func (l *Lease) Cancel() error {
	if l.Status == LeaseStatusExpired {
		return &InvalidTransitionError{Entity: "Lease", ID: l.ID, Msg: "cannot cancel an already expired lease"}
	}
	l.Status = LeaseStatusCanceled
	return nil
}
