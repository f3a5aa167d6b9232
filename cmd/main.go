package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/repmhq/repm-backend/internal/data/seed"
	"github.com/repmhq/repm-backend/internal/db"
	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/handlers"
	"github.com/repmhq/repm-backend/internal/middleware"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
	"github.com/repmhq/repm-backend/internal/pkg/utils"
	"github.com/repmhq/repm-backend/internal/server"
	"github.com/repmhq/repm-backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	seedOnStart := utils.GetEnv("SEED_ON_START", "true", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Events
	log.Info("Setting up event bus from main...")
	bus := domain.NewEventBus()
	eventLog := log.With("component", "Events")
	bus.Subscribe(func(e domain.Event) {
		eventLog.Info("Domain event", "event", fmt.Sprintf("%T", e), "occurred_at", e.OccurredAt())
	})

	// Seed
	if seedOnStart == "true" {
		if err := seed.Run(context.Background(), thePG, log, bus); err != nil {
			log.Warn("Database seeding failed", "error", err)
		}
	}

	// Services
	log.Info("Setting up services from main...")
	userService := services.NewUserService(thePG, log)
	propertyService := services.NewPropertyService(thePG, log, bus)
	leaseService := services.NewLeaseService(thePG, log, bus)
	paymentService := services.NewPaymentService(thePG, log, bus)

	// Handlers
	log.Info("Setting up handlers from main...")
	userHandler := handlers.NewUserHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(log, propertyService)
	leaseHandler := handlers.NewLeaseHandler(log, leaseService)
	paymentHandler := handlers.NewPaymentHandler(log, paymentService)

	// Middleware
	log.Info("Setting up middleware from main...")
	actorMiddleware := middleware.NewActorMiddleware(log, jwtSecretKey)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		ActorMiddleware: actorMiddleware,
		UserHandler:     userHandler,
		PropertyHandler: propertyHandler,
		LeaseHandler:    leaseHandler,
		PaymentHandler:  paymentHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
