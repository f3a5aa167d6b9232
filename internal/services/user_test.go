package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/repmhq/repm-backend/internal/data/testutil"
	"github.com/repmhq/repm-backend/internal/domain"
)

func TestUserCreateAndUpdate(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	svc := NewUserService(db, log)
	user, err := svc.Create(ctx, "John Smith", "john.smith@example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "John Q Smith"
	updated, err := svc.Update(ctx, user.ID, UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected %s, got %s", name, updated.Name)
	}
	if updated.Email != "john.smith@example.com" {
		t.Fatal("email must be unchanged")
	}
}

func TestUserCreateValidation(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	svc := NewUserService(db, log)
	_, err := svc.Create(context.Background(), " ", "blank@example.com")
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUserGetUnknown(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)

	svc := NewUserService(db, log)
	_, err := svc.GetByID(context.Background(), uuid.New())
	var notFoundErr *domain.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUserListAndDelete(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	svc := NewUserService(db, log)
	a, err := svc.Create(ctx, "A", "a@example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "B", "b@example.com"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	users, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user after delete, got %d", len(users))
	}
}
