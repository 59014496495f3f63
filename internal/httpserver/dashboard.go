package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func dashboardHandler(series seriesSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
		if days < 1 || days > 365 {
			days = 30
		}
		c.JSON(http.StatusOK, series.Daily(time.Now().UTC(), days))
	}
}
