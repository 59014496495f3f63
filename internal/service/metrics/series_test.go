package metrics

import (
	"testing"
	"time"
)

var end = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestDailyIsDeterministicForSeed(t *testing.T) {
	a := NewGenerator(42).Daily(end, 30)
	b := NewGenerator(42).Daily(end, 30)

	if len(a.Points) != 30 || len(b.Points) != 30 {
		t.Fatalf("expected 30 points, got %d and %d", len(a.Points), len(b.Points))
	}
	for i := range a.Points {
		if a.Points[i].Date != b.Points[i].Date ||
			a.Points[i].Orders != b.Points[i].Orders ||
			!a.Points[i].Revenue.Equal(b.Points[i].Revenue) ||
			!a.Points[i].UpsellRevenue.Equal(b.Points[i].UpsellRevenue) {
			t.Fatalf("point %d differs between runs: %+v vs %+v", i, a.Points[i], b.Points[i])
		}
	}
	if !a.TotalRevenue.Equal(b.TotalRevenue) || a.TotalOrders != b.TotalOrders {
		t.Fatalf("totals differ: %+v vs %+v", a, b)
	}
}

func TestDailySeedsProduceDifferentSeries(t *testing.T) {
	a := NewGenerator(1).Daily(end, 30)
	b := NewGenerator(2).Daily(end, 30)

	same := true
	for i := range a.Points {
		if a.Points[i].Orders != b.Points[i].Orders || !a.Points[i].Revenue.Equal(b.Points[i].Revenue) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different series")
	}
}

func TestDailyDatesEndAtRequestedDay(t *testing.T) {
	s := NewGenerator(7).Daily(end, 7)

	if got := s.Points[len(s.Points)-1].Date; got != "2026-08-30" {
		t.Fatalf("expected series to end at 2026-08-30, got %s", got)
	}
	if got := s.Points[0].Date; got != "2026-08-24" {
		t.Fatalf("expected series to start at 2026-08-24, got %s", got)
	}
}

func TestDailyTotalsMatchPoints(t *testing.T) {
	s := NewGenerator(3).Daily(end, 10)

	orders := 0
	revenue := s.TotalRevenue.Sub(s.TotalRevenue) // zero with same exponent
	for _, p := range s.Points {
		orders += p.Orders
		revenue = revenue.Add(p.Revenue)
	}
	if orders != s.TotalOrders {
		t.Fatalf("order total mismatch: %d vs %d", orders, s.TotalOrders)
	}
	if !revenue.Equal(s.TotalRevenue) {
		t.Fatalf("revenue total mismatch: %s vs %s", revenue, s.TotalRevenue)
	}
}

func TestDailyDefaultsDays(t *testing.T) {
	if got := len(NewGenerator(1).Daily(end, 0).Points); got != 30 {
		t.Fatalf("expected 30 default points, got %d", got)
	}
}
