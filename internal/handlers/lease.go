package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/repmhq/repm-backend/internal/data/filters"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
	"github.com/repmhq/repm-backend/internal/services"
)

type LeaseHandler struct {
	log          *logger.Logger
	leaseService services.LeaseService
}

func NewLeaseHandler(log *logger.Logger, leaseService services.LeaseService) *LeaseHandler {
	return &LeaseHandler{
		log:          log.With("handler", "LeaseHandler"),
		leaseService: leaseService,
	}
}

// POST /api/leases
func (lh *LeaseHandler) Create(c *gin.Context) {
	var body services.LeasePropertyInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lease, err := lh.leaseService.LeaseProperty(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lease": lease})
}

// GET /api/leases/:id
func (lh *LeaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease id"})
		return
	}
	lease, err := lh.leaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lease": lease})
}

// GET /api/properties/:id/leases
func (lh *LeaseHandler) ByProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}
	var filter filters.LeaseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	leases, err := lh.leaseService.ByProperty(c.Request.Context(), propertyID, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leases": leases})
}

// POST /api/leases/:id/activate
func (lh *LeaseHandler) Activate(c *gin.Context) {
	lh.transition(c, lh.leaseService.Activate)
}

// POST /api/leases/:id/expire
func (lh *LeaseHandler) Expire(c *gin.Context) {
	lh.transition(c, lh.leaseService.Expire)
}

// POST /api/leases/:id/cancel
func (lh *LeaseHandler) Cancel(c *gin.Context) {
	lh.transition(c, lh.leaseService.Cancel)
}

func (lh *LeaseHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease id"})
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/leases/:id
func (lh *LeaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lease id"})
		return
	}
	if err := lh.leaseService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
