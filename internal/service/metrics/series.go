// Package metrics generates the synthetic time series behind the demo
// dashboard. The generator is seedable so the same seed always yields the
// same series.
package metrics

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Point is one day of dashboard data.
type Point struct {
	Date          string          `json:"date"`
	Orders        int             `json:"orders"`
	Revenue       decimal.Decimal `json:"revenue"`
	UpsellRevenue decimal.Decimal `json:"upsellRevenue"`
	AttachRate    float64         `json:"attachRate"`
}

// Series is a dashboard time series plus its totals.
type Series struct {
	Points             []Point         `json:"points"`
	TotalOrders        int             `json:"totalOrders"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalUpsellRevenue decimal.Decimal `json:"totalUpsellRevenue"`
}

// Generator produces deterministic synthetic series for a seed.
type Generator struct {
	seed int64
}

func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Daily returns one point per day, ending at end (inclusive), oldest first.
func (g *Generator) Daily(end time.Time, days int) Series {
	if days <= 0 {
		days = 30
	}
	rng := rand.New(rand.NewSource(g.seed))
	end = end.UTC().Truncate(24 * time.Hour)

	series := Series{
		Points:             make([]Point, 0, days),
		TotalRevenue:       decimal.Zero,
		TotalUpsellRevenue: decimal.Zero,
	}

	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		orders := 15 + rng.Intn(45)
		avgOrder := 35 + rng.Float64()*55
		revenue := decimal.NewFromFloat(avgOrder * float64(orders)).Round(2)
		attachRate := 0.05 + rng.Float64()*0.25
		upsell := revenue.Mul(decimal.NewFromFloat(attachRate * 0.4)).Round(2)

		series.Points = append(series.Points, Point{
			Date:          day.Format("2006-01-02"),
			Orders:        orders,
			Revenue:       revenue,
			UpsellRevenue: upsell,
			AttachRate:    attachRate,
		})
		series.TotalOrders += orders
		series.TotalRevenue = series.TotalRevenue.Add(revenue)
		series.TotalUpsellRevenue = series.TotalUpsellRevenue.Add(upsell)
	}
	return series
}
