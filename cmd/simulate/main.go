// Command simulate drives the upsell controller against an in-memory host
// and a real recommendation backend, printing what a POS surface would show.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"merchant-upsell/internal/config"
	"merchant-upsell/internal/domain"
	"merchant-upsell/internal/gid"
	"merchant-upsell/internal/host"
	"merchant-upsell/internal/recs"
	"merchant-upsell/internal/service/upsell"

	"github.com/joho/godotenv"
)

type logToaster struct{ logger *log.Logger }

func (t logToaster) Show(message string) { t.logger.Printf("toast: %s", message) }

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[simulate] ", log.LstdFlags)

	h := host.NewMemoryHost(
		host.Capabilities{CanAddCartLine: true, CanUpdateCartLine: true},
		domain.CartLine{ID: "line-1", MerchandiseGID: gid.ToGlobalID("111"), Quantity: 1},
		domain.CartLine{ID: "line-2", MerchandiseGID: gid.ToGlobalID("222"), Quantity: 2},
	)

	recClient := recs.New(cfg.BackendURL, cfg.RecommendationCap, logger)
	controller := upsell.New(h, h, recClient, logger, upsell.Options{
		Debounce: cfg.CartDebounce,
		Toaster:  logToaster{logger: logger},
	})
	defer controller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Printf("fetching recommendations from %s", cfg.BackendURL)
	controller.Start(ctx)

	for !controller.Status().Terminal() {
		time.Sleep(50 * time.Millisecond)
	}

	logger.Printf("status: %s", controller.Status())
	for _, rec := range controller.Recommendations() {
		logger.Printf("recommended: %s %s (%s) variant=%s", rec.ProductTitle, rec.VariantTitle, rec.Price, rec.VariantID)
	}

	if controller.Status() == domain.StatusSuccess && controller.CanAdd() {
		if err := controller.AddAll(ctx); err != nil {
			logger.Printf("add all failed: %v", err)
		}
	}

	for _, line := range h.Current().Lines {
		logger.Printf("cart line: %s x%d", line.MerchandiseGID, line.Quantity)
	}
}
