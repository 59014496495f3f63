package httpserver

import (
	"log"
	"net/http"

	"merchant-upsell/internal/domain"

	"github.com/gin-gonic/gin"
)

type recommendRequest struct {
	CartVariantIDs []string `json:"cartVariantIds"`
}

type recommendResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// recommendationsHandler is the app-proxy route the extension surfaces call.
// It forwards the cart variant IDs to the recommendation backend and returns
// the sanitized list.
func recommendationsHandler(logger *log.Logger, rec recommender) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rec == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendation backend not configured"})
			return
		}

		var req recommendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if len(req.CartVariantIDs) == 0 {
			c.JSON(http.StatusOK, recommendResponse{Recommendations: []domain.Recommendation{}})
			return
		}

		recs, err := rec.Recommend(c.Request.Context(), req.CartVariantIDs)
		if err != nil {
			logger.Printf("recommendation proxy failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation backend unavailable"})
			return
		}
		if recs == nil {
			recs = []domain.Recommendation{}
		}
		c.JSON(http.StatusOK, recommendResponse{Recommendations: recs})
	}
}
