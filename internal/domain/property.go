package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Property struct {
	Audit
	Name            string    `gorm:"not null;column:name" json:"name"`
	Address         Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	Description     string    `gorm:"column:description" json:"description"`
	Price           float64   `gorm:"column:price" json:"price"`
	Beds            int       `gorm:"column:beds" json:"beds"`
	Baths           int       `gorm:"column:baths" json:"baths"`
	SquareFeet      int       `gorm:"column:square_feet" json:"square_feet"`
	IsListedForRent bool      `gorm:"not null;default:false;column:is_listed_for_rent" json:"is_listed_for_rent"`

	Leases []*Lease `gorm:"foreignKey:PropertyID" json:"leases,omitempty"`
}

func (Property) TableName() string { return "property" }

func NewProperty(name string, address Address, ownerID uuid.UUID, description string, price float64, beds, baths, squareFeet int) (*Property, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Msg: "property name is required"}
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, &ValidationError{Msg: "property price must be positive"}
	}
	return &Property{
		Audit:           Audit{ID: newID()},
		Name:            name,
		Address:         address,
		OwnerID:         ownerID,
		Description:     description,
		Price:           price,
		Beds:            beds,
		Baths:           baths,
		SquareFeet:      squareFeet,
		IsListedForRent: false,
	}, nil
}

// IsAvailable requires the property's leases to be loaded; an unlisted
// property is always available.
func (p *Property) IsAvailable() bool {
	if !p.IsListedForRent {
		return true
	}
	for _, lease := range p.Leases {
		if lease.Status != LeaseStatusExpired {
			return false
		}
	}
	return true
}

func (p *Property) ChangeAddress(newAddress Address) error {
	if err := newAddress.Validate(); err != nil {
		return err
	}
	p.Address = newAddress
	return nil
}

func (p *Property) ListForRent(bus *EventBus) error {
	if p.IsListedForRent {
		return &PropertyNotAvailableError{PropertyID: p.ID, Reason: "property is already listed for rent"}
	}
	for _, lease := range p.Leases {
		if lease.Status == LeaseStatusActive {
			return &PropertyNotAvailableError{PropertyID: p.ID, Reason: "property has active leases"}
		}
	}
	if bus == nil {
		return ErrEventBusNotConfigured
	}
	p.IsListedForRent = true
	bus.Publish(PropertyListedForRent{PropertyID: p.ID, At: time.Now().UTC()})
	return nil
}

func (p *Property) UnlistForRent() {
	p.IsListedForRent = false
}

// IsAvailableFor reports whether no existing lease overlaps the period.
func (p *Property) IsAvailableFor(period DateRange) bool {
	for _, lease := range p.Leases {
		if lease.Period.Overlaps(period) {
			return false
		}
	}
	return true
}
