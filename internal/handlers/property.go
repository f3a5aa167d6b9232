package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/repmhq/repm-backend/internal/data/filters"
	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
	"github.com/repmhq/repm-backend/internal/services"
)

type PropertyHandler struct {
	log             *logger.Logger
	propertyService services.PropertyService
}

func NewPropertyHandler(log *logger.Logger, propertyService services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		log:             log.With("handler", "PropertyHandler"),
		propertyService: propertyService,
	}
}

// POST /api/properties
func (ph *PropertyHandler) Create(c *gin.Context) {
	var body services.CreatePropertyInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	property, err := ph.propertyService.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// GET /api/properties/:id
func (ph *PropertyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}
	property, err := ph.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

// GET /api/properties/for-rent
// Filter fields arrive as query parameters, e.g. ?city=Austin&min_rent=1000.
func (ph *PropertyHandler) ForRent(c *gin.Context) {
	var filter filters.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	properties, err := ph.propertyService.ForRent(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GET /api/owners/:id/unlisted-properties
func (ph *PropertyHandler) UnlistedByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}
	properties, err := ph.propertyService.UnlistedByOwner(c.Request.Context(), ownerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// PATCH /api/properties/:id
func (ph *PropertyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}
	var body services.UpdatePropertyInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	property, err := ph.propertyService.Update(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

// PUT /api/properties/:id/address
func (ph *PropertyHandler) ChangeAddress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}
	var body domain.Address
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ph.propertyService.ChangeAddress(c.Request.Context(), id, body); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/properties/:id/list-for-rent
func (ph *PropertyHandler) ListForRent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}
	if err := ph.propertyService.ListForRent(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/properties/:id/unlist-for-rent
func (ph *PropertyHandler) UnlistForRent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}
	if err := ph.propertyService.UnlistForRent(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/properties/:id
func (ph *PropertyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}
	if err := ph.propertyService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
