// Package shopify is a thin Admin GraphQL client for the queries the app
// needs: variant image hydration and order reporting.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client talks to one shop's Admin GraphQL endpoint.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	accessToken string
	logger      *log.Logger
}

func NewClient(shopDomain, apiVersion, accessToken string, logger *log.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		endpoint:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shopDomain, apiVersion),
		accessToken: accessToken,
		logger:      logger,
	}
}

type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

type graphQLResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// post runs one GraphQL request and decodes data into T. A non-2xx status or
// a populated errors list is returned as an error.
func post[T any](ctx context.Context, c *Client, query string, variables any) (T, error) {
	var zero T

	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return zero, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("call admin api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, fmt.Errorf("admin api returned status %d", resp.StatusCode)
	}

	var out graphQLResponse[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(out.Errors) > 0 {
		return zero, fmt.Errorf("admin api error: %s", out.Errors[0].Message)
	}
	return out.Data, nil
}
