// Package seed populates an empty database with development data. It runs
// with no actor in the context, so every row is stamped with the
// unknown-actor sentinel.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
	"gopkg.in/yaml.v3"

	"github.com/repmhq/repm-backend/internal/data/repo"
	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
)

//go:embed seed.yaml
var seedYAML []byte

type seedAddress struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	ZipCode string `yaml:"zip_code"`
	Country string `yaml:"country"`
}

type seedUser struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type seedProperty struct {
	Name        string      `yaml:"name"`
	Owner       string      `yaml:"owner"`
	Description string      `yaml:"description"`
	Price       float64     `yaml:"price"`
	Beds        int         `yaml:"beds"`
	Baths       int         `yaml:"baths"`
	SquareFeet  int         `yaml:"square_feet"`
	Address     seedAddress `yaml:"address"`
}

type seedData struct {
	Users      []seedUser     `yaml:"users"`
	Properties []seedProperty `yaml:"properties"`
}

// Run seeds users and properties and lists every property for rent. It is a
// no-op when the database already contains users.
func Run(ctx context.Context, db *gorm.DB, baseLog *logger.Logger, bus *domain.EventBus) error {
	log := baseLog.With("component", "Seeder")

	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already contains data, skipping seeding")
		return nil
	}

	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	log.Info("Starting database seeding...")

	uow := repo.NewUnitOfWork(db, baseLog)
	users := repo.NewRepository[domain.User](uow)
	properties := repo.NewRepository[domain.Property](uow)

	byEmail := make(map[string]*domain.User, len(data.Users))
	for _, su := range data.Users {
		u, err := domain.NewUser(su.Name, su.Email)
		if err != nil {
			return err
		}
		users.Insert(u)
		byEmail[su.Email] = u
	}

	for _, sp := range data.Properties {
		owner, ok := byEmail[sp.Owner]
		if !ok {
			return fmt.Errorf("seed property %q references unknown owner %q", sp.Name, sp.Owner)
		}
		addr := domain.Address{
			Street:  sp.Address.Street,
			City:    sp.Address.City,
			State:   sp.Address.State,
			ZipCode: sp.Address.ZipCode,
			Country: sp.Address.Country,
		}
		p, err := domain.NewProperty(sp.Name, addr, owner.ID, sp.Description, sp.Price, sp.Beds, sp.Baths, sp.SquareFeet)
		if err != nil {
			return err
		}
		if err := p.ListForRent(bus); err != nil {
			return err
		}
		properties.Insert(p)
	}

	if _, err := uow.Commit(ctx); err != nil {
		log.Error("Database seeding failed", "error", err)
		return err
	}

	log.Info("Database seeding completed", "users", len(data.Users), "properties", len(data.Properties))
	return nil
}
