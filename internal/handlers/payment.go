package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/repmhq/repm-backend/internal/pkg/logger"
	"github.com/repmhq/repm-backend/internal/services"
)

type PaymentHandler struct {
	log            *logger.Logger
	paymentService services.PaymentService
}

func NewPaymentHandler(log *logger.Logger, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		log:            log.With("handler", "PaymentHandler"),
		paymentService: paymentService,
	}
}

// POST /api/payments
func (ph *PaymentHandler) Create(c *gin.Context) {
	var body services.MakePaymentInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := ph.paymentService.Make(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GET /api/leases/:id/payments
func (ph *PaymentHandler) ByLease(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease id"})
		return
	}
	payments, err := ph.paymentService.ByLease(c.Request.Context(), leaseID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// POST /api/payments/:id/complete
func (ph *PaymentHandler) Complete(c *gin.Context) {
	ph.transition(c, ph.paymentService.Complete)
}

// POST /api/payments/:id/cancel
func (ph *PaymentHandler) Cancel(c *gin.Context) {
	ph.transition(c, ph.paymentService.Cancel)
}

// POST /api/payments/:id/fail
func (ph *PaymentHandler) MarkFailed(c *gin.Context) {
	ph.transition(c, ph.paymentService.MarkFailed)
}

// POST /api/payments/:id/overdue
func (ph *PaymentHandler) MarkOverdue(c *gin.Context) {
	ph.transition(c, ph.paymentService.MarkOverdue)
}

// POST /api/payments/:id/retry
func (ph *PaymentHandler) Retry(c *gin.Context) {
	ph.transition(c, ph.paymentService.Retry)
}

func (ph *PaymentHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/payments/:id
func (ph *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}
	if err := ph.paymentService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
