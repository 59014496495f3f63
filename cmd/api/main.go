package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"merchant-upsell/internal/config"
	"merchant-upsell/internal/httpserver"
	"merchant-upsell/internal/recs"
	"merchant-upsell/internal/service/metrics"
	ordersvc "merchant-upsell/internal/service/orders"
	"merchant-upsell/internal/shopify"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // loads .env if present

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	recClient := recs.New(cfg.BackendURL, cfg.RecommendationCap, logger)

	deps := httpserver.Deps{
		Recommender: recClient,
		Metrics:     metrics.NewGenerator(cfg.MetricsSeed),
	}

	if cfg.ShopDomain != "" && cfg.AccessToken != "" {
		admin := shopify.NewClient(cfg.ShopDomain, cfg.APIVersion, cfg.AccessToken, logger)
		deps.Orders = ordersvc.New(admin, logger)
	} else {
		logger.Printf("admin api credentials not set, orders report disabled")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, deps, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
