package upsell

import (
	"context"
	"errors"
	"testing"

	"merchant-upsell/internal/domain"
)

type stubImageSource struct {
	images map[string]domain.Image
	err    error
	gotIDs []string
	calls  int
}

func (s *stubImageSource) VariantImages(_ context.Context, numericIDs []string) (map[string]domain.Image, error) {
	s.calls++
	s.gotIDs = numericIDs
	return s.images, s.err
}

func TestHydrateAttachesMissingImages(t *testing.T) {
	existing := &domain.Image{URL: "already.png"}
	src := &stubImageSource{images: map[string]domain.Image{
		"2": {URL: "two.png", AltText: "two"},
	}}
	h := NewImageHydrator(src, testLogger())

	in := []domain.Recommendation{
		{VariantID: "1", Image: existing},
		{VariantID: "2"},
		{VariantID: "3"},
	}
	out := h.Hydrate(context.Background(), in)

	if len(src.gotIDs) != 2 || src.gotIDs[0] != "2" || src.gotIDs[1] != "3" {
		t.Fatalf("expected query only for recs without images, got %v", src.gotIDs)
	}
	if out[0].Image != existing {
		t.Fatal("expected existing image untouched")
	}
	if out[1].Image == nil || out[1].Image.URL != "two.png" {
		t.Fatalf("expected image attached, got %+v", out[1].Image)
	}
	if out[2].Image != nil {
		t.Fatalf("expected rec without backend image left bare, got %+v", out[2].Image)
	}
	if in[1].Image != nil {
		t.Fatal("expected input list unmodified")
	}
}

func TestHydrateFailureReturnsOriginalList(t *testing.T) {
	src := &stubImageSource{err: errors.New("admin api throttled")}
	h := NewImageHydrator(src, testLogger())

	in := []domain.Recommendation{{VariantID: "1"}, {VariantID: "2"}}
	out := h.Hydrate(context.Background(), in)

	if len(out) != 2 || out[0].Image != nil || out[1].Image != nil {
		t.Fatalf("expected original image-less list, got %+v", out)
	}
}

func TestHydrateSkipsCallWhenAllHaveImages(t *testing.T) {
	src := &stubImageSource{}
	h := NewImageHydrator(src, testLogger())

	img := &domain.Image{URL: "x.png"}
	h.Hydrate(context.Background(), []domain.Recommendation{{VariantID: "1", Image: img}})

	if src.calls != 0 {
		t.Fatalf("expected no admin call, got %d", src.calls)
	}
}
