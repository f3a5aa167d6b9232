package testutil

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a migrated database: postgres when TEST_POSTGRES_DSN is set,
// otherwise a private in-memory sqlite per test.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=private"), cfg)
	}
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.Lease{},
		&domain.Payment{},
	); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// Tx begins a transaction rolled back when the test finishes.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		Audit: domain.Audit{ID: uuid.New(), CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()},
		Name:  name,
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProperty(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, city string, price float64) *domain.Property {
	tb.Helper()
	p := &domain.Property{
		Audit:   domain.Audit{ID: uuid.New(), CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()},
		Name:    "property",
		OwnerID: ownerID,
		Address: domain.Address{
			Street:  "1 Test St",
			City:    city,
			State:   "TX",
			ZipCode: "73301",
			Country: "USA",
		},
		Description: "seeded",
		Price:       price,
		Beds:        2,
		Baths:       1,
		SquareFeet:  900,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed property: %v", err)
	}
	return p
}

func SeedLease(tb testing.TB, ctx context.Context, tx *gorm.DB, propertyID, tenantID uuid.UUID, status domain.LeaseStatus) *domain.Lease {
	tb.Helper()
	now := time.Now().UTC()
	l := &domain.Lease{
		Audit:      domain.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PropertyID: propertyID,
		TenantID:   tenantID,
		Period:     domain.DateRange{Start: now, End: now.AddDate(1, 0, 0)},
		Rent:       domain.Money{Amount: 1500, Currency: "USD"},
		Status:     status,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lease: %v", err)
	}
	return l
}

func SeedPayment(tb testing.TB, ctx context.Context, tx *gorm.DB, leaseID uuid.UUID, status domain.PaymentStatus) *domain.Payment {
	tb.Helper()
	now := time.Now().UTC()
	p := &domain.Payment{
		Audit:   domain.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		LeaseID: leaseID,
		Amount:  domain.Money{Amount: 1500, Currency: "USD"},
		Date:    now,
		Status:  status,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed payment: %v", err)
	}
	return p
}
