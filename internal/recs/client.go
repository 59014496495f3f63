// Package recs calls the external recommendation backend and sanitizes its
// responses for the upsell surfaces.
package recs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"merchant-upsell/internal/domain"

	"github.com/sony/gobreaker"
)

// Client issues recommendation fetches against {backend}/api/recommendations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
	cb         *gobreaker.CircuitBreaker
	logger     *log.Logger
}

// New builds a Client. maxResults caps the sanitized list; zero means
// uncapped (POS modal surface).
func New(baseURL string, maxResults int, logger *log.Logger) *Client {
	st := gobreaker.Settings{
		Name:     "recommendation-backend",
		Interval: 10 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		maxResults: maxResults,
		cb:         gobreaker.NewCircuitBreaker(st),
		logger:     logger,
	}
}

type recommendRequest struct {
	CartVariantIDs []string `json:"cartVariantIds"`
}

type recommendResponse struct {
	Recommendations json.RawMessage `json:"recommendations"`
}

// Recommend POSTs the de-duplicated cart variant IDs and returns the
// sanitized recommendation list: entries without a variantId are dropped,
// duplicates keep only the first occurrence, and the list is truncated to
// maxResults. An empty list with a nil error is a valid outcome.
func (c *Client) Recommend(ctx context.Context, cartVariantIDs []string) ([]domain.Recommendation, error) {
	payload, err := json.Marshal(recommendRequest{CartVariantIDs: dedupe(cartVariantIDs)})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.post(ctx, payload)
	})
	if err != nil {
		fetchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	recs := Sanitize(res.([]domain.Recommendation), c.maxResults)
	if len(recs) == 0 {
		fetchesTotal.WithLabelValues("empty").Inc()
	} else {
		fetchesTotal.WithLabelValues("success").Inc()
	}
	return recs, nil
}

func (c *Client) post(ctx context.Context, payload []byte) ([]domain.Recommendation, error) {
	url := c.baseURL + "/api/recommendations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call recommendation backend: %w", err)
	}
	defer resp.Body.Close()
	fetchDuration.Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("recommendation backend returned status %d", resp.StatusCode)
	}

	var env recommendResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	// The backend occasionally sends null or a non-array here; treat any
	// shape that isn't a recommendation array as an empty result.
	var recs []domain.Recommendation
	if len(env.Recommendations) > 0 {
		if err := json.Unmarshal(env.Recommendations, &recs); err != nil {
			c.logger.Printf("recommendations field not an array, treating as empty: %v", err)
			recs = nil
		}
	}
	return recs, nil
}

// Sanitize drops entries without a variantId, de-duplicates by variantId
// preserving first-seen order, and truncates to max (0 = uncapped).
func Sanitize(recs []domain.Recommendation, max int) []domain.Recommendation {
	cleaned := make([]domain.Recommendation, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		if rec.VariantID == "" {
			continue
		}
		if _, dup := seen[rec.VariantID]; dup {
			continue
		}
		seen[rec.VariantID] = struct{}{}
		cleaned = append(cleaned, rec)
		if max > 0 && len(cleaned) == max {
			break
		}
	}
	return cleaned
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
