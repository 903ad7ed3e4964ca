package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prizedraw/internal/domain"
)

type orderItemResponse struct {
	domain.OrderItem
	Competition *domain.Competition `json:"competition,omitempty"`
}

// webhookHandler is the push completion entry point. The raw body travels to
// the service untouched; signature verification happens over exactly the
// bytes the gateway signed.
func webhookHandler(svc reconcileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid webhook"})
			return
		}
		if err := svc.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// getOrderHandler is the pull completion entry point: the success page polls
// it by payment session id until the order reports completed.
func getOrderHandler(svc reconcileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Resolve(c.Request.Context(), c.Param("paymentSessionId"))
		if err != nil {
			writeError(c, err)
			return
		}
		items := make([]orderItemResponse, 0, len(res.Items))
		for _, d := range res.Items {
			items = append(items, orderItemResponse{OrderItem: d.Item, Competition: d.Competition})
		}
		c.JSON(http.StatusOK, gin.H{"order": res.Order, "items": items})
	}
}
