package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/repmhq/repm-backend/internal/data/repo"
	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
)

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UserService interface {
	Create(ctx context.Context, name, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserService(db *gorm.DB, log *logger.Logger) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog}
}

func (us *userService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := domain.NewUser(name, email)
	if err != nil {
		return nil, err
	}

	uow := repo.NewUnitOfWork(us.db, us.log)
	users := repo.NewRepository[domain.User](uow)
	users.Insert(user)
	if _, err := users.Commit(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	uow := repo.NewUnitOfWork(us.db, us.log)
	users := repo.NewRepository[domain.User](uow)

	user, err := users.GetByIDReadOnly(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Entity: "User", ID: id.String()}
	}
	return user, nil
}

func (us *userService) List(ctx context.Context) ([]*domain.User, error) {
	uow := repo.NewUnitOfWork(us.db, us.log)
	users := repo.NewRepository[domain.User](uow)

	var results []*domain.User
	if err := users.ReadOnly(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (us *userService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	uow := repo.NewUnitOfWork(us.db, us.log)
	users := repo.NewRepository[domain.User](uow)

	user, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Entity: "User", ID: id.String()}
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}

	users.Update(user)
	if _, err := users.Commit(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *userService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := repo.NewUnitOfWork(us.db, us.log)
	users := repo.NewRepository[domain.User](uow)

	user, err := users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return &domain.NotFoundError{Entity: "User", ID: id.String()}
	}

	users.SoftDelete(user)
	_, err = users.Commit(ctx)
	return err
}
