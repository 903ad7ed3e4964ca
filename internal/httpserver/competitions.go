package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prizedraw/internal/domain"
)

func listCompetitionsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comps, err := svc.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			writeError(c, err)
			return
		}
		if comps == nil {
			comps = []domain.Competition{}
		}
		c.JSON(http.StatusOK, comps)
	}
}

func getCompetitionHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid competition ID"})
			return
		}
		comp, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, comp)
	}
}
