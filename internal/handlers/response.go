package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/repmhq/repm-backend/internal/domain"
)

// writeError maps domain error types onto HTTP status codes. Anything
// unrecognized is a 500 with a generic message.
func writeError(c *gin.Context, err error) {
	var (
		validationErr       *domain.ValidationError
		notFoundErr         *domain.NotFoundError
		transitionErr       *domain.InvalidTransitionError
		notAvailableErr     *domain.PropertyNotAvailableError
		invalidPeriodErr    *domain.InvalidLeasePeriodError
		overdueErr          *domain.OverduePaymentError
		alreadyCompletedErr *domain.PaymentAlreadyCompletedError
		alreadyCancelledErr *domain.PaymentAlreadyCancelledError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &transitionErr),
		errors.As(err, &notAvailableErr),
		errors.As(err, &overdueErr),
		errors.As(err, &alreadyCompletedErr),
		errors.As(err, &alreadyCancelledErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &invalidPeriodErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
