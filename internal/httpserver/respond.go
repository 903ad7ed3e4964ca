package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prizedraw/internal/domain"
	"prizedraw/internal/gateway"
)

// writeError maps the domain and gateway error taxonomy onto HTTP statuses.
// Every handler funnels failures through here so the mapping lives in one
// place.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be between 1 and 10"})
	case errors.Is(err, domain.ErrInsufficientInventory):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Not enough tickets available"})
	case errors.Is(err, domain.ErrQuantityCapExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Maximum 10 tickets per competition allowed"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
	case errors.Is(err, gateway.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment gateway is not configured"})
	case errors.Is(err, gateway.ErrInvalidSignature), errors.Is(err, gateway.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid webhook"})
	case errors.Is(err, gateway.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"message": "payment provider unavailable, retry shortly"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
