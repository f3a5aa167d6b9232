package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/repmhq/repm-backend/internal/handlers"
	"github.com/repmhq/repm-backend/internal/middleware"
)

type RouterConfig struct {
	ActorMiddleware *middleware.ActorMiddleware
	UserHandler     *handlers.UserHandler
	PropertyHandler *handlers.PropertyHandler
	LeaseHandler    *handlers.LeaseHandler
	PaymentHandler  *handlers.PaymentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.ActorMiddleware.Identify())
	{
		// Users
		api.POST("/users", cfg.UserHandler.Create)
		api.GET("/users", cfg.UserHandler.List)
		api.GET("/users/:id", cfg.UserHandler.Get)
		api.PATCH("/users/:id", cfg.UserHandler.Update)
		api.DELETE("/users/:id", cfg.UserHandler.Delete)

		// Properties
		api.POST("/properties", cfg.PropertyHandler.Create)
		api.GET("/properties/for-rent", cfg.PropertyHandler.ForRent)
		api.GET("/properties/:id", cfg.PropertyHandler.Get)
		api.PATCH("/properties/:id", cfg.PropertyHandler.Update)
		api.PUT("/properties/:id/address", cfg.PropertyHandler.ChangeAddress)
		api.POST("/properties/:id/list-for-rent", cfg.PropertyHandler.ListForRent)
		api.POST("/properties/:id/unlist-for-rent", cfg.PropertyHandler.UnlistForRent)
		api.DELETE("/properties/:id", cfg.PropertyHandler.Delete)
		api.GET("/properties/:id/leases", cfg.LeaseHandler.ByProperty)
		api.GET("/owners/:id/unlisted-properties", cfg.PropertyHandler.UnlistedByOwner)

		// Leases
		api.POST("/leases", cfg.LeaseHandler.Create)
		api.GET("/leases/:id", cfg.LeaseHandler.Get)
		api.POST("/leases/:id/activate", cfg.LeaseHandler.Activate)
		api.POST("/leases/:id/expire", cfg.LeaseHandler.Expire)
		api.POST("/leases/:id/cancel", cfg.LeaseHandler.Cancel)
		api.DELETE("/leases/:id", cfg.LeaseHandler.Delete)
		api.GET("/leases/:id/payments", cfg.PaymentHandler.ByLease)

		// Payments
		api.POST("/payments", cfg.PaymentHandler.Create)
		api.POST("/payments/:id/complete", cfg.PaymentHandler.Complete)
		api.POST("/payments/:id/cancel", cfg.PaymentHandler.Cancel)
		api.POST("/payments/:id/fail", cfg.PaymentHandler.MarkFailed)
		api.POST("/payments/:id/overdue", cfg.PaymentHandler.MarkOverdue)
		api.POST("/payments/:id/retry", cfg.PaymentHandler.Retry)
		api.DELETE("/payments/:id", cfg.PaymentHandler.Delete)
	}

	return router
}
