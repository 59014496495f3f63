package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"merchant-upsell/internal/service/orders"

	"github.com/gin-gonic/gin"
)

type ordersResponse struct {
	Orders []orders.ReportOrder `json:"orders"`
}

func ordersHandler(logger *log.Logger, reporter orderReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if reporter == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin api not configured"})
			return
		}

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		report, err := reporter.Recent(c.Request.Context(), limit)
		if err != nil {
			logger.Printf("orders report failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "orders unavailable"})
			return
		}
		if report == nil {
			report = []orders.ReportOrder{}
		}
		c.JSON(http.StatusOK, ordersResponse{Orders: report})
	}
}
