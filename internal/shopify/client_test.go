package shopify

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(endpoint string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: time.Second},
		endpoint:    endpoint,
		accessToken: "test-token",
		logger:      log.New(io.Discard, "", 0),
	}
}

func TestVariantImagesPrefersVariantImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Shopify-Access-Token"); got != "test-token" {
			t.Errorf("missing access token header, got %q", got)
		}
		var body struct {
			Variables struct {
				IDs []string `json:"ids"`
			} `json:"variables"`
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("unmarshal request: %v", err)
		}
		if len(body.Variables.IDs) != 2 || body.Variables.IDs[0] != "gid://shopify/ProductVariant/1" {
			t.Errorf("unexpected ids %v", body.Variables.IDs)
		}
		w.Write([]byte(`{"data":{"nodes":[
			{"id":"gid://shopify/ProductVariant/1","image":{"url":"v1.png","altText":"v1"},"product":{"featuredImage":{"url":"p1.png"}}},
			{"id":"gid://shopify/ProductVariant/2","image":null,"product":{"featuredImage":{"url":"p2.png","altText":"p2"}}}
		]}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	images, err := c.VariantImages(context.Background(), []string{"1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if images["1"].URL != "v1.png" {
		t.Fatalf("expected variant image preferred, got %+v", images["1"])
	}
	if images["2"].URL != "p2.png" || images["2"].AltText != "p2" {
		t.Fatalf("expected featured image fallback, got %+v", images["2"])
	}
}

func TestVariantImagesSkipsNodesWithoutImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"nodes":[{"id":"gid://shopify/ProductVariant/7","image":null,"product":{"featuredImage":null}},null]}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	images, err := c.VariantImages(context.Background(), []string{"7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %v", images)
	}
}

func TestVariantImagesEmptyInputSkipsCall(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1") // would fail if called
	images, err := c.VariantImages(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected empty map, got %v", images)
	}
}

func TestPostSurfacesGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"throttled"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.VariantImages(context.Background(), []string{"1"}); err == nil {
		t.Fatal("expected error from graphql errors list")
	}
}

func TestRecentOrdersParsesLineItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"orders":{"edges":[
			{"node":{"id":"gid://shopify/Order/10","name":"#1001","createdAt":"2026-08-01T10:00:00Z","lineItems":{"edges":[
				{"node":{"title":"Gift Card","quantity":2,"variant":{"id":"gid://shopify/ProductVariant/999","product":{"id":"gid://shopify/Product/55"}}}},
				{"node":{"title":"Deleted variant","quantity":1,"variant":null}}
			]}}}
		]}}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	orders, err := c.RecentOrders(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	order := orders[0]
	if order.Name != "#1001" || len(order.Lines) != 2 {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Lines[0].VariantGID != "gid://shopify/ProductVariant/999" || order.Lines[0].ProductGID != "gid://shopify/Product/55" {
		t.Fatalf("unexpected first line %+v", order.Lines[0])
	}
	if order.Lines[1].VariantGID != "" {
		t.Fatalf("expected empty variant for deleted variant line, got %+v", order.Lines[1])
	}
}
