package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func testAddress() Address {
	return Address{
		Street:  "123 Main St",
		City:    "Austin",
		State:   "TX",
		ZipCode: "73301",
		Country: "USA",
	}
}

func TestNewPropertyValidation(t *testing.T) {
	var validationErr *ValidationError

	if _, err := NewProperty("", testAddress(), uuid.New(), "", 1000, 2, 1, 900); !errors.As(err, &validationErr) {
		t.Fatalf("blank name: expected ValidationError, got %v", err)
	}
	if _, err := NewProperty("Loft", testAddress(), uuid.New(), "", 0, 2, 1, 900); !errors.As(err, &validationErr) {
		t.Fatalf("zero price: expected ValidationError, got %v", err)
	}
	if _, err := NewProperty("Loft", Address{}, uuid.New(), "", 1000, 2, 1, 900); !errors.As(err, &validationErr) {
		t.Fatalf("empty address: expected ValidationError, got %v", err)
	}

	property, err := NewProperty("Loft", testAddress(), uuid.New(), "downtown", 1000, 2, 1, 900)
	if err != nil {
		t.Fatalf("NewProperty: %v", err)
	}
	if property.IsListedForRent {
		t.Fatal("new property must not be listed for rent")
	}
}

func TestPropertyListForRent(t *testing.T) {
	property, err := NewProperty("Loft", testAddress(), uuid.New(), "", 1000, 2, 1, 900)
	if err != nil {
		t.Fatalf("NewProperty: %v", err)
	}

	bus := NewEventBus()
	var published []Event
	bus.Subscribe(func(e Event) { published = append(published, e) })

	if err := property.ListForRent(bus); err != nil {
		t.Fatalf("ListForRent: %v", err)
	}
	if !property.IsListedForRent {
		t.Fatal("expected property to be listed")
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if _, ok := published[0].(PropertyListedForRent); !ok {
		t.Fatalf("expected PropertyListedForRent, got %T", published[0])
	}

	var notAvailableErr *PropertyNotAvailableError
	if err := property.ListForRent(bus); !errors.As(err, &notAvailableErr) {
		t.Fatalf("relisting: expected PropertyNotAvailableError, got %v", err)
	}
}

func TestPropertyListForRentWithActiveLease(t *testing.T) {
	property, err := NewProperty("Loft", testAddress(), uuid.New(), "", 1000, 2, 1, 900)
	if err != nil {
		t.Fatalf("NewProperty: %v", err)
	}
	property.Leases = []*Lease{{Audit: Audit{ID: uuid.New()}, Status: LeaseStatusActive}}

	var notAvailableErr *PropertyNotAvailableError
	if err := property.ListForRent(NewEventBus()); !errors.As(err, &notAvailableErr) {
		t.Fatalf("expected PropertyNotAvailableError, got %v", err)
	}
}

func TestPropertyListForRentRequiresBus(t *testing.T) {
	property, err := NewProperty("Loft", testAddress(), uuid.New(), "", 1000, 2, 1, 900)
	if err != nil {
		t.Fatalf("NewProperty: %v", err)
	}
	if err := property.ListForRent(nil); !errors.Is(err, ErrEventBusNotConfigured) {
		t.Fatalf("expected ErrEventBusNotConfigured, got %v", err)
	}
	if property.IsListedForRent {
		t.Fatal("property must stay unlisted when the bus is missing")
	}
}

func TestPropertyIsAvailable(t *testing.T) {
	property := &Property{Audit: Audit{ID: uuid.New()}}

	if !property.IsAvailable() {
		t.Fatal("unlisted property must be available")
	}

	property.IsListedForRent = true
	if !property.IsAvailable() {
		t.Fatal("listed property with no leases must be available")
	}

	property.Leases = []*Lease{{Status: LeaseStatusExpired}}
	if !property.IsAvailable() {
		t.Fatal("expired leases must not block availability")
	}

	property.Leases = append(property.Leases, &Lease{Status: LeaseStatusActive})
	if property.IsAvailable() {
		t.Fatal("active lease must block availability")
	}
}

func TestPropertyChangeAddress(t *testing.T) {
	property, err := NewProperty("Loft", testAddress(), uuid.New(), "", 1000, 2, 1, 900)
	if err != nil {
		t.Fatalf("NewProperty: %v", err)
	}

	next := testAddress()
	next.City = "Dallas"
	if err := property.ChangeAddress(next); err != nil {
		t.Fatalf("ChangeAddress: %v", err)
	}
	if property.Address.City != "Dallas" {
		t.Fatalf("expected Dallas, got %s", property.Address.City)
	}

	var validationErr *ValidationError
	if err := property.ChangeAddress(Address{}); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if property.Address.City != "Dallas" {
		t.Fatal("failed change must not mutate the address")
	}
}

func TestPropertyIsAvailableFor(t *testing.T) {
	period := testPeriod()
	property := &Property{
		Leases: []*Lease{{Period: period}},
	}

	if property.IsAvailableFor(period) {
		t.Fatal("identical period must not be available")
	}

	later := DateRange{Start: period.End, End: period.End.AddDate(1, 0, 0)}
	if !property.IsAvailableFor(later) {
		t.Fatal("non-overlapping period must be available")
	}
}
