package domain

import (
	"errors"
	"testing"
	"time"
)

func TestAddressValidate(t *testing.T) {
	if err := testAddress().Validate(); err != nil {
		t.Fatalf("valid address: %v", err)
	}

	var validationErr *ValidationError

	missing := testAddress()
	missing.City = "  "
	if err := missing.Validate(); !errors.As(err, &validationErr) {
		t.Fatalf("blank city: expected ValidationError, got %v", err)
	}

	shortZip := testAddress()
	shortZip.ZipCode = "12"
	if err := shortZip.Validate(); !errors.As(err, &validationErr) {
		t.Fatalf("short zip: expected ValidationError, got %v", err)
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Amount: 0, Currency: "USD"}).Validate(); err != nil {
		t.Fatalf("zero amount must be valid: %v", err)
	}

	var validationErr *ValidationError
	if err := (Money{Amount: -1, Currency: "USD"}).Validate(); !errors.As(err, &validationErr) {
		t.Fatalf("negative amount: expected ValidationError, got %v", err)
	}
	if err := (Money{Amount: 100, Currency: ""}).Validate(); !errors.As(err, &validationErr) {
		t.Fatalf("empty currency: expected ValidationError, got %v", err)
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name     string
		a, b     DateRange
		overlaps bool
	}{
		{"identical", DateRange{day(1), day(10)}, DateRange{day(1), day(10)}, true},
		{"contained", DateRange{day(1), day(10)}, DateRange{day(3), day(5)}, true},
		{"partial", DateRange{day(1), day(10)}, DateRange{day(5), day(15)}, true},
		{"adjacent", DateRange{day(1), day(10)}, DateRange{day(10), day(20)}, false},
		{"disjoint", DateRange{day(1), day(10)}, DateRange{day(11), day(20)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.overlaps {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, tc.overlaps)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.overlaps {
				t.Fatalf("b.Overlaps(a) = %v, want %v", got, tc.overlaps)
			}
		})
	}
}

func TestDateRangeIsValid(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if (DateRange{Start: start, End: start}).IsValid() {
		t.Fatal("zero-length range must be invalid")
	}
	if !(DateRange{Start: start, End: start.AddDate(0, 1, 0)}).IsValid() {
		t.Fatal("forward range must be valid")
	}
}
