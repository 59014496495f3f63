package gid

import "testing"

func TestToNumericStripsVariantPrefix(t *testing.T) {
	got, ok := ToNumeric("gid://shopify/ProductVariant/45678")
	if !ok || got != "45678" {
		t.Fatalf("expected 45678, got %q ok=%v", got, ok)
	}
}

func TestToNumericTakesLastSegmentForOtherTypes(t *testing.T) {
	got, ok := ToNumeric("gid://shopify/Product/123")
	if !ok || got != "123" {
		t.Fatalf("expected 123, got %q ok=%v", got, ok)
	}
}

func TestToNumericPassesThroughBareNumbers(t *testing.T) {
	got, ok := ToNumeric("999")
	if !ok || got != "999" {
		t.Fatalf("expected 999, got %q ok=%v", got, ok)
	}
}

func TestToNumericRejectsEmpty(t *testing.T) {
	if _, ok := ToNumeric(""); ok {
		t.Fatal("expected ok=false for empty input")
	}
	if _, ok := ToNumeric("   "); ok {
		t.Fatal("expected ok=false for blank input")
	}
	if _, ok := ToNumeric("gid://shopify/ProductVariant/"); ok {
		t.Fatal("expected ok=false for prefix with no id")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []string{"1", "42", "4567891234567"} {
		got, ok := ToNumeric(ToGlobalID(n))
		if !ok || got != n {
			t.Fatalf("round trip of %q produced %q ok=%v", n, got, ok)
		}
	}
}
