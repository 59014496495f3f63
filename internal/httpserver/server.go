package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server setup for the admin dashboard API.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the dashboard routes.
func New(addr string, logger *log.Logger, deps Deps, allowedOrigins []string) (*Server, error) {
	router := buildRouter(logger, deps, allowedOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Recommender == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "recommendation backend not configured"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
