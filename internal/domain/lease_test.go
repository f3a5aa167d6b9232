package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testPeriod() DateRange {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(1, 0, 0)}
}

func testRent() Money {
	return Money{Amount: 1500, Currency: "USD"}
}

func TestNewLeaseStartsActive(t *testing.T) {
	bus := NewEventBus()
	var published []Event
	bus.Subscribe(func(e Event) { published = append(published, e) })

	lease, err := NewLease(bus, uuid.New(), uuid.New(), testPeriod(), testRent())
	if err != nil {
		t.Fatalf("NewLease: %v", err)
	}
	if lease.Status != LeaseStatusActive {
		t.Fatalf("expected active lease, got %s", lease.Status)
	}
	if lease.ID == uuid.Nil {
		t.Fatal("expected lease id to be assigned")
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if _, ok := published[0].(LeaseCreated); !ok {
		t.Fatalf("expected LeaseCreated, got %T", published[0])
	}
}

func TestNewLeaseRejectsInvalidPeriod(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewLease(NewEventBus(), uuid.New(), uuid.New(), DateRange{Start: start, End: start}, testRent())
	var periodErr *InvalidLeasePeriodError
	if !errors.As(err, &periodErr) {
		t.Fatalf("expected InvalidLeasePeriodError, got %v", err)
	}
}

func TestNewLeaseRequiresBus(t *testing.T) {
	_, err := NewLease(nil, uuid.New(), uuid.New(), testPeriod(), testRent())
	if !errors.Is(err, ErrEventBusNotConfigured) {
		t.Fatalf("expected ErrEventBusNotConfigured, got %v", err)
	}
}

func TestLeaseActivate(t *testing.T) {
	lease := &Lease{Audit: Audit{ID: uuid.New()}, Status: LeaseStatusPending}
	if err := lease.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if lease.Status != LeaseStatusActive {
		t.Fatalf("expected active, got %s", lease.Status)
	}

	var transitionErr *InvalidTransitionError
	for _, status := range []LeaseStatus{LeaseStatusActive, LeaseStatusExpired, LeaseStatusCanceled} {
		lease := &Lease{Audit: Audit{ID: uuid.New()}, Status: status}
		if err := lease.Activate(); !errors.As(err, &transitionErr) {
			t.Fatalf("Activate from %s: expected InvalidTransitionError, got %v", status, err)
		}
	}
}

func TestLeaseExpire(t *testing.T) {
	lease := &Lease{Audit: Audit{ID: uuid.New()}, Status: LeaseStatusActive}
	if err := lease.Expire(); err != nil {
		t.Fatalf("Expire: %v", err)
	}
	if lease.Status != LeaseStatusExpired {
		t.Fatalf("expected expired, got %s", lease.Status)
	}

	var transitionErr *InvalidTransitionError
	for _, status := range []LeaseStatus{LeaseStatusPending, LeaseStatusExpired, LeaseStatusCanceled} {
		lease := &Lease{Audit: Audit{ID: uuid.New()}, Status: status}
		if err := lease.Expire(); !errors.As(err, &transitionErr) {
			t.Fatalf("Expire from %s: expected InvalidTransitionError, got %v", status, err)
		}
	}
}

func TestLeaseCancel(t *testing.T) {
	for _, status := range []LeaseStatus{LeaseStatusPending, LeaseStatusActive, LeaseStatusCanceled} {
		lease := &Lease{Audit: Audit{ID: uuid.New()}, Status: status}
		if err := lease.Cancel(); err != nil {
			t.Fatalf("Cancel from %s: %v", status, err)
		}
		if lease.Status != LeaseStatusCanceled {
			t.Fatalf("expected canceled, got %s", lease.Status)
		}
	}

	lease := &Lease{Audit: Audit{ID: uuid.New()}, Status: LeaseStatusExpired}
	var transitionErr *InvalidTransitionError
	if err := lease.Cancel(); !errors.As(err, &transitionErr) {
		t.Fatalf("Cancel from expired: expected InvalidTransitionError, got %v", err)
	}
}

func TestLeaseIsOverlapping(t *testing.T) {
	base := testPeriod()
	lease := &Lease{Period: base}

	overlapping := DateRange{Start: base.Start.AddDate(0, 6, 0), End: base.End.AddDate(0, 6, 0)}
	if !lease.IsOverlapping(overlapping) {
		t.Fatal("expected overlap")
	}

	adjacent := DateRange{Start: base.End, End: base.End.AddDate(1, 0, 0)}
	if lease.IsOverlapping(adjacent) {
		t.Fatal("adjacent ranges must not overlap")
	}
}
