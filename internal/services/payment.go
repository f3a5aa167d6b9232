package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/repmhq/repm-backend/internal/data/repo"
	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
)

type MakePaymentInput struct {
	LeaseID uuid.UUID    `json:"lease_id"`
	Amount  domain.Money `json:"amount"`
	Date    time.Time    `json:"date"`
}

type PaymentService interface {
	Make(ctx context.Context, in MakePaymentInput) (*domain.Payment, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	MarkOverdue(ctx context.Context, id uuid.UUID) error
	Retry(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ByLease(ctx context.Context, leaseID uuid.UUID) ([]*domain.Payment, error)
}

type paymentService struct {
	db  *gorm.DB
	log *logger.Logger
	bus *domain.EventBus
}

func NewPaymentService(db *gorm.DB, log *logger.Logger, bus *domain.EventBus) PaymentService {
	serviceLog := log.With("service", "PaymentService")
	return &paymentService{db: db, log: serviceLog, bus: bus}
}

// Make validates the owning lease exists before recording the payment.
func (ps *paymentService) Make(ctx context.Context, in MakePaymentInput) (*domain.Payment, error) {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	leases := repo.NewRepository[domain.Lease](uow)
	payments := repo.NewRepository[domain.Payment](uow)

	lease, err := leases.GetByIDReadOnly(ctx, in.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, &domain.NotFoundError{Entity: "Lease", ID: in.LeaseID.String()}
	}

	payment, err := domain.NewPayment(ps.bus, in.LeaseID, in.Amount, in.Date)
	if err != nil {
		return nil, err
	}

	payments.Insert(payment)
	if _, err := payments.Commit(ctx); err != nil {
		return nil, err
	}
	return payment, nil
}

func (ps *paymentService) Complete(ctx context.Context, id uuid.UUID) error {
	return ps.transition(ctx, id, (*domain.Payment).MarkAsCompleted)
}

func (ps *paymentService) Cancel(ctx context.Context, id uuid.UUID) error {
	return ps.transition(ctx, id, (*domain.Payment).Cancel)
}

func (ps *paymentService) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return ps.transition(ctx, id, (*domain.Payment).MarkAsFailed)
}

func (ps *paymentService) MarkOverdue(ctx context.Context, id uuid.UUID) error {
	return ps.transition(ctx, id, (*domain.Payment).MarkAsOverdue)
}

func (ps *paymentService) Retry(ctx context.Context, id uuid.UUID) error {
	return ps.transition(ctx, id, (*domain.Payment).Retry)
}

func (ps *paymentService) transition(ctx context.Context, id uuid.UUID, apply func(*domain.Payment) error) error {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	payments := repo.NewRepository[domain.Payment](uow)

	payment, err := payments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return &domain.NotFoundError{Entity: "Payment", ID: id.String()}
	}

	if err := apply(payment); err != nil {
		return err
	}

	payments.Update(payment)
	_, err = payments.Commit(ctx)
	return err
}

func (ps *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	payments := repo.NewRepository[domain.Payment](uow)

	payment, err := payments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return &domain.NotFoundError{Entity: "Payment", ID: id.String()}
	}

	payments.SoftDelete(payment)
	_, err = payments.Commit(ctx)
	return err
}

func (ps *paymentService) ByLease(ctx context.Context, leaseID uuid.UUID) ([]*domain.Payment, error) {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	payments := repo.NewRepository[domain.Payment](uow)

	var results []*domain.Payment
	if err := payments.ReadOnly(ctx).
		Where("lease_id = ?", leaseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
