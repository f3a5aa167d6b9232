package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/repmhq/repm-backend/internal/data/filters"
	"github.com/repmhq/repm-backend/internal/data/testutil"
	"github.com/repmhq/repm-backend/internal/domain"
)

func propertyInput(ownerID uuid.UUID) CreatePropertyInput {
	return CreatePropertyInput{
		Name: "Downtown Loft",
		Address: domain.Address{
			Street:  "123 Main St",
			City:    "Austin",
			State:   "TX",
			ZipCode: "73301",
			Country: "USA",
		},
		OwnerID:     ownerID,
		Description: "Modern loft",
		Price:       1800,
		Beds:        2,
		Baths:       2,
		SquareFeet:  1100,
	}
}

func TestPropertyCreateAndGet(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, db, "Owner", "owner@example.com")

	svc := NewPropertyService(db, log, domain.NewEventBus())
	property, err := svc.Create(ctx, propertyInput(owner.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if property.IsListedForRent {
		t.Fatal("new property must not be listed")
	}

	got, err := svc.GetByID(ctx, property.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Address.City != "Austin" {
		t.Fatalf("expected Austin, got %s", got.Address.City)
	}
}

func TestPropertyCreateValidation(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, db, "Owner", "owner@example.com")

	in := propertyInput(owner.ID)
	in.Price = 0

	svc := NewPropertyService(db, log, domain.NewEventBus())
	_, err := svc.Create(ctx, in)
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPropertyListAndUnlist(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, db, "Owner", "owner@example.com")
	property := testutil.SeedProperty(t, ctx, db, owner.ID, "Austin", 1500)

	svc := NewPropertyService(db, log, domain.NewEventBus())
	if err := svc.ListForRent(ctx, property.ID); err != nil {
		t.Fatalf("ListForRent: %v", err)
	}

	var notAvailableErr *domain.PropertyNotAvailableError
	if err := svc.ListForRent(ctx, property.ID); !errors.As(err, &notAvailableErr) {
		t.Fatalf("relisting: expected PropertyNotAvailableError, got %v", err)
	}

	listed, err := svc.ForRent(ctx, filters.PropertyFilter{})
	if err != nil {
		t.Fatalf("ForRent: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 listed property, got %d", len(listed))
	}

	if err := svc.UnlistForRent(ctx, property.ID); err != nil {
		t.Fatalf("UnlistForRent: %v", err)
	}
	listed, err = svc.ForRent(ctx, filters.PropertyFilter{})
	if err != nil {
		t.Fatalf("ForRent: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no listed properties, got %d", len(listed))
	}
}

func TestPropertyForRentFilters(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, db, "Owner", "owner@example.com")
	cheap := testutil.SeedProperty(t, ctx, db, owner.ID, "Austin", 900)
	mid := testutil.SeedProperty(t, ctx, db, owner.ID, "Austin", 1500)
	testutil.SeedProperty(t, ctx, db, owner.ID, "Dallas", 1500)

	svc := NewPropertyService(db, log, domain.NewEventBus())
	for _, p := range []uuid.UUID{cheap.ID, mid.ID} {
		if err := svc.ListForRent(ctx, p); err != nil {
			t.Fatalf("ListForRent: %v", err)
		}
	}

	city := "Austin"
	minRent := 1000.0
	maxRent := 2000.0
	got, err := svc.ForRent(ctx, filters.PropertyFilter{City: &city, MinRent: &minRent, MaxRent: &maxRent})
	if err != nil {
		t.Fatalf("ForRent: %v", err)
	}
	if len(got) != 1 || got[0].ID != mid.ID {
		t.Fatalf("expected only the mid-priced Austin listing, got %d", len(got))
	}
}

func TestPropertyUnlistedByOwner(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, db, "Owner", "owner@example.com")
	other := testutil.SeedUser(t, ctx, db, "Other", "other@example.com")
	unlisted := testutil.SeedProperty(t, ctx, db, owner.ID, "Austin", 1500)
	listed := testutil.SeedProperty(t, ctx, db, owner.ID, "Austin", 1200)
	testutil.SeedProperty(t, ctx, db, other.ID, "Dallas", 1000)

	svc := NewPropertyService(db, log, domain.NewEventBus())
	if err := svc.ListForRent(ctx, listed.ID); err != nil {
		t.Fatalf("ListForRent: %v", err)
	}

	got, err := svc.UnlistedByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("UnlistedByOwner: %v", err)
	}
	if len(got) != 1 || got[0].ID != unlisted.ID {
		t.Fatalf("expected only the owner's unlisted property, got %d", len(got))
	}
}

func TestPropertyDeleteAndHardDelete(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, db, "Owner", "owner@example.com")
	property := testutil.SeedProperty(t, ctx, db, owner.ID, "Austin", 1500)

	svc := NewPropertyService(db, log, domain.NewEventBus())
	if err := svc.Delete(ctx, property.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var notFoundErr *domain.NotFoundError
	if _, err := svc.GetByID(ctx, property.ID); !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError after soft delete, got %v", err)
	}

	// Hard delete still finds the soft-deleted row.
	if err := svc.HardDelete(ctx, property.ID); err != nil {
		t.Fatalf("HardDelete: %v", err)
	}
	if err := svc.HardDelete(ctx, property.ID); !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError after hard delete, got %v", err)
	}
}

func TestPropertyChangeAddressService(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, db, "Owner", "owner@example.com")
	property := testutil.SeedProperty(t, ctx, db, owner.ID, "Austin", 1500)

	svc := NewPropertyService(db, log, domain.NewEventBus())
	next := domain.Address{
		Street:  "456 Oak Ave",
		City:    "Dallas",
		State:   "TX",
		ZipCode: "75201",
		Country: "USA",
	}
	if err := svc.ChangeAddress(ctx, property.ID, next); err != nil {
		t.Fatalf("ChangeAddress: %v", err)
	}

	got, err := svc.GetByID(ctx, property.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Address.City != "Dallas" {
		t.Fatalf("expected Dallas, got %s", got.Address.City)
	}
}
