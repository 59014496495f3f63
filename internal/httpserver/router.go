package httpserver

import (
	"context"
	"log"
	"time"

	"merchant-upsell/internal/domain"
	"merchant-upsell/internal/service/metrics"
	"merchant-upsell/internal/service/orders"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type recommender interface {
	Recommend(ctx context.Context, cartVariantIDs []string) ([]domain.Recommendation, error)
}

type orderReporter interface {
	Recent(ctx context.Context, limit int) ([]orders.ReportOrder, error)
}

type seriesSource interface {
	Daily(end time.Time, days int) metrics.Series
}

// Deps carries the services the routes need. Orders may be nil when the
// shop's Admin API credentials are not configured.
type Deps struct {
	Recommender recommender
	Orders      orderReporter
	Metrics     seriesSource
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestID())

	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/recommendations", recommendationsHandler(logger, deps.Recommender))
	api.GET("/orders", ordersHandler(logger, deps.Orders))
	api.GET("/dashboard", dashboardHandler(deps.Metrics))

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}
