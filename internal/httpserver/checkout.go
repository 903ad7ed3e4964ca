package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func createCheckoutSessionHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			// Same-origin deployments send no Origin header on POST.
			origin = "http://" + c.Request.Host
		}
		url, err := svc.CreateSession(c.Request.Context(), sessionID(c), origin)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
