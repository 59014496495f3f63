// Package orders is the read-only reporting passthrough behind the admin
// dashboard's orders view.
package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"merchant-upsell/internal/domain"
	"merchant-upsell/internal/gid"
)

// MaxOrders bounds one report page.
const MaxOrders = 50

type Fetcher interface {
	RecentOrders(ctx context.Context, first int) ([]domain.Order, error)
}

type Service struct {
	fetcher Fetcher
	logger  *log.Logger
}

func New(fetcher Fetcher, logger *log.Logger) *Service {
	return &Service{fetcher: fetcher, logger: logger}
}

// ReportOrder is an order row with IDs normalized for the dashboard.
type ReportOrder struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	Lines     []ReportLine `json:"lineItems"`
}

type ReportLine struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	VariantID string `json:"variantId,omitempty"`
	ProductID string `json:"productId,omitempty"`
}

// Recent returns up to MaxOrders newest orders. Variant and product global
// IDs are normalized to their numeric form; no other transformation applies.
func (s *Service) Recent(ctx context.Context, limit int) ([]ReportOrder, error) {
	if limit <= 0 || limit > MaxOrders {
		limit = MaxOrders
	}

	fetched, err := s.fetcher.RecentOrders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	report := make([]ReportOrder, 0, len(fetched))
	for _, order := range fetched {
		row := ReportOrder{
			ID:        order.GID,
			Name:      order.Name,
			CreatedAt: order.CreatedAt,
			Lines:     make([]ReportLine, 0, len(order.Lines)),
		}
		for _, line := range order.Lines {
			rl := ReportLine{Title: line.Title, Quantity: line.Quantity}
			if numeric, ok := gid.ToNumeric(line.VariantGID); ok {
				rl.VariantID = numeric
			}
			if numeric, ok := gid.ToNumeric(line.ProductGID); ok {
				rl.ProductID = numeric
			}
			row.Lines = append(row.Lines, rl)
		}
		report = append(report, row)
	}
	return report, nil
}
