package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/repmhq/repm-backend/internal/data/filters"
	"github.com/repmhq/repm-backend/internal/data/repo"
	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
)

type LeasePropertyInput struct {
	PropertyID uuid.UUID        `json:"property_id"`
	TenantID   uuid.UUID        `json:"tenant_id"`
	Period     domain.DateRange `json:"period"`
	Rent       domain.Money     `json:"rent"`
}

type LeaseService interface {
	LeaseProperty(ctx context.Context, in LeasePropertyInput) (*domain.Lease, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lease, error)
	Activate(ctx context.Context, id uuid.UUID) error
	Expire(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ByProperty(ctx context.Context, propertyID uuid.UUID, filter filters.LeaseFilter) ([]*domain.Lease, error)
}

type leaseService struct {
	db  *gorm.DB
	log *logger.Logger
	bus *domain.EventBus
}

func NewLeaseService(db *gorm.DB, log *logger.Logger, bus *domain.EventBus) LeaseService {
	serviceLog := log.With("service", "LeaseService")
	return &leaseService{db: db, log: serviceLog, bus: bus}
}

// LeaseProperty loads the property with its leases, the tenant, and the
// tenant's leases with payments, then hands the decision to the domain rule.
func (ls *leaseService) LeaseProperty(ctx context.Context, in LeasePropertyInput) (*domain.Lease, error) {
	uow := repo.NewUnitOfWork(ls.db, ls.log)
	properties := repo.NewRepository[domain.Property](uow)
	users := repo.NewRepository[domain.User](uow)
	leases := repo.NewRepository[domain.Lease](uow)

	var property domain.Property
	err := properties.ReadOnly(ctx).
		Preload("Leases").
		Where("id = ?", in.PropertyID).
		First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "Property", ID: in.PropertyID.String()}
	}
	if err != nil {
		return nil, err
	}

	tenant, err := users.GetByIDReadOnly(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, &domain.NotFoundError{Entity: "User", ID: in.TenantID.String()}
	}

	var tenantLeases []*domain.Lease
	if err := leases.ReadOnly(ctx).
		Preload("Payments").
		Where("tenant_id = ?", in.TenantID).
		Find(&tenantLeases).Error; err != nil {
		return nil, err
	}

	lease, err := domain.CreateLease(ls.bus, tenant, &property, in.Period, in.Rent, tenantLeases)
	if err != nil {
		return nil, err
	}

	leases.Insert(lease)
	if _, err := leases.Commit(ctx); err != nil {
		return nil, err
	}
	return lease, nil
}

func (ls *leaseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lease, error) {
	uow := repo.NewUnitOfWork(ls.db, ls.log)
	leases := repo.NewRepository[domain.Lease](uow)

	var lease domain.Lease
	err := leases.ReadOnly(ctx).
		Preload("Payments").
		Where("id = ?", id).
		First(&lease).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "Lease", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

func (ls *leaseService) Activate(ctx context.Context, id uuid.UUID) error {
	return ls.transition(ctx, id, (*domain.Lease).Activate)
}

func (ls *leaseService) Expire(ctx context.Context, id uuid.UUID) error {
	return ls.transition(ctx, id, (*domain.Lease).Expire)
}

func (ls *leaseService) Cancel(ctx context.Context, id uuid.UUID) error {
	return ls.transition(ctx, id, (*domain.Lease).Cancel)
}

func (ls *leaseService) transition(ctx context.Context, id uuid.UUID, apply func(*domain.Lease) error) error {
	uow := repo.NewUnitOfWork(ls.db, ls.log)
	leases := repo.NewRepository[domain.Lease](uow)

	lease, err := leases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lease == nil {
		return &domain.NotFoundError{Entity: "Lease", ID: id.String()}
	}

	if err := apply(lease); err != nil {
		return err
	}

	leases.Update(lease)
	_, err = leases.Commit(ctx)
	return err
}

func (ls *leaseService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := repo.NewUnitOfWork(ls.db, ls.log)
	leases := repo.NewRepository[domain.Lease](uow)

	lease, err := leases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lease == nil {
		return &domain.NotFoundError{Entity: "Lease", ID: id.String()}
	}

	leases.SoftDelete(lease)
	_, err = leases.Commit(ctx)
	return err
}

func (ls *leaseService) ByProperty(ctx context.Context, propertyID uuid.UUID, filter filters.LeaseFilter) ([]*domain.Lease, error) {
	uow := repo.NewUnitOfWork(ls.db, ls.log)
	leases := repo.NewRepository[domain.Lease](uow)

	query := leases.ReadOnly(ctx).Where("property_id = ?", propertyID)
	query = filters.Apply(query, filter)

	var results []*domain.Lease
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
