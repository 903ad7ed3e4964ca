package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prizedraw/internal/domain"
	cartsvc "prizedraw/internal/service/cart"
)

type addCartItemRequest struct {
	CompetitionID int64 `json:"competitionId"`
	Quantity      int   `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// cartItemResponse is a cart row with its competition embedded, the shape the
// storefront renders list rows from.
type cartItemResponse struct {
	domain.CartItem
	Competition *domain.Competition `json:"competition,omitempty"`
}

func toCartItemResponse(d cartsvc.ItemDetail) cartItemResponse {
	return cartItemResponse{CartItem: d.Item, Competition: d.Competition}
}

func listCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		details, err := svc.List(c.Request.Context(), sessionID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		out := make([]cartItemResponse, 0, len(details))
		for _, d := range details {
			out = append(out, toCartItemResponse(d))
		}
		c.JSON(http.StatusOK, out)
	}
}

func addCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input data"})
			return
		}
		detail, err := svc.Add(c.Request.Context(), sessionID(c), req.CompetitionID, req.Quantity)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCartItemResponse(*detail))
	}
}

func updateCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item ID"})
			return
		}
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input data"})
			return
		}
		detail, err := svc.UpdateQuantity(c.Request.Context(), id, req.Quantity)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartItemResponse(*detail))
	}
}

func removeCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item ID"})
			return
		}
		if err := svc.Remove(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
