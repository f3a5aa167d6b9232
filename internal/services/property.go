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

type CreatePropertyInput struct {
	Name        string         `json:"name"`
	Address     domain.Address `json:"address"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Beds        int            `json:"beds"`
	Baths       int            `json:"baths"`
	SquareFeet  int            `json:"square_feet"`
}

type UpdatePropertyInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Beds        *int     `json:"beds"`
	Baths       *int     `json:"baths"`
	SquareFeet  *int     `json:"square_feet"`
}

type PropertyService interface {
	Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Update(ctx context.Context, id uuid.UUID, in UpdatePropertyInput) (*domain.Property, error)
	ChangeAddress(ctx context.Context, id uuid.UUID, newAddress domain.Address) error
	ListForRent(ctx context.Context, id uuid.UUID) error
	UnlistForRent(ctx context.Context, id uuid.UUID) error
	ForRent(ctx context.Context, filter filters.PropertyFilter) ([]*domain.Property, error)
	UnlistedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type propertyService struct {
	db  *gorm.DB
	log *logger.Logger
	bus *domain.EventBus
}

func NewPropertyService(db *gorm.DB, log *logger.Logger, bus *domain.EventBus) PropertyService {
	serviceLog := log.With("service", "PropertyService")
	return &propertyService{db: db, log: serviceLog, bus: bus}
}

func (ps *propertyService) Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error) {
	property, err := domain.NewProperty(in.Name, in.Address, in.OwnerID, in.Description, in.Price, in.Beds, in.Baths, in.SquareFeet)
	if err != nil {
		return nil, err
	}

	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)
	properties.Insert(property)
	if _, err := properties.Commit(ctx); err != nil {
		return nil, err
	}
	return property, nil
}

func (ps *propertyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	var property domain.Property
	err := properties.ReadOnly(ctx).
		Preload("Leases").
		Where("id = ?", id).
		First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "Property", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (ps *propertyService) Update(ctx context.Context, id uuid.UUID, in UpdatePropertyInput) (*domain.Property, error) {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	property, err := properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, &domain.NotFoundError{Entity: "Property", ID: id.String()}
	}

	if in.Name != nil {
		property.Name = *in.Name
	}
	if in.Description != nil {
		property.Description = *in.Description
	}
	if in.Price != nil {
		property.Price = *in.Price
	}
	if in.Beds != nil {
		property.Beds = *in.Beds
	}
	if in.Baths != nil {
		property.Baths = *in.Baths
	}
	if in.SquareFeet != nil {
		property.SquareFeet = *in.SquareFeet
	}

	properties.Update(property)
	if _, err := properties.Commit(ctx); err != nil {
		return nil, err
	}
	return property, nil
}

func (ps *propertyService) ChangeAddress(ctx context.Context, id uuid.UUID, newAddress domain.Address) error {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	property, err := properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return &domain.NotFoundError{Entity: "Property", ID: id.String()}
	}

	if err := property.ChangeAddress(newAddress); err != nil {
		return err
	}

	properties.Update(property)
	_, err = properties.Commit(ctx)
	return err
}

func (ps *propertyService) ListForRent(ctx context.Context, id uuid.UUID) error {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	var property domain.Property
	err := properties.Active(ctx).
		Preload("Leases").
		Where("id = ?", id).
		First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: "Property", ID: id.String()}
	}
	if err != nil {
		return err
	}

	if err := property.ListForRent(ps.bus); err != nil {
		return err
	}

	properties.Update(&property)
	_, err = properties.Commit(ctx)
	return err
}

func (ps *propertyService) UnlistForRent(ctx context.Context, id uuid.UUID) error {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	property, err := properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return &domain.NotFoundError{Entity: "Property", ID: id.String()}
	}

	property.UnlistForRent()
	properties.Update(property)
	_, err = properties.Commit(ctx)
	return err
}

func (ps *propertyService) ForRent(ctx context.Context, filter filters.PropertyFilter) ([]*domain.Property, error) {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	query := properties.ReadOnly(ctx).Where("is_listed_for_rent = ?", true)
	query = filters.Apply(query, filter)

	var results []*domain.Property
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ps *propertyService) UnlistedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Property, error) {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	var results []*domain.Property
	if err := properties.ReadOnly(ctx).
		Where("owner_id = ?", ownerID).
		Where("is_listed_for_rent = ?", false).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ps *propertyService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	property, err := properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return &domain.NotFoundError{Entity: "Property", ID: id.String()}
	}

	properties.SoftDelete(property)
	_, err = properties.Commit(ctx)
	return err
}

// HardDelete permanently removes a property, including one already
// soft-deleted. Administrative use only.
func (ps *propertyService) HardDelete(ctx context.Context, id uuid.UUID) error {
	uow := repo.NewUnitOfWork(ps.db, ps.log)
	properties := repo.NewRepository[domain.Property](uow)

	var property domain.Property
	err := properties.Query(ctx, repo.VisibilityAll).
		Where("id = ?", id).
		First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: "Property", ID: id.String()}
	}
	if err != nil {
		return err
	}

	properties.HardDelete(&property)
	_, err = properties.Commit(ctx)
	return err
}
