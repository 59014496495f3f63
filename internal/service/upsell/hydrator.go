package upsell

import (
	"context"
	"log"

	"merchant-upsell/internal/domain"
)

type imageSource interface {
	VariantImages(ctx context.Context, numericIDs []string) (map[string]domain.Image, error)
}

// ImageHydrator attaches Admin API images to recommendations that lack one.
// Failure of the secondary call is non-fatal: the original list is returned
// unchanged.
type ImageHydrator struct {
	images imageSource
	logger *log.Logger
}

func NewImageHydrator(images imageSource, logger *log.Logger) *ImageHydrator {
	return &ImageHydrator{images: images, logger: logger}
}

func (h *ImageHydrator) Hydrate(ctx context.Context, recs []domain.Recommendation) []domain.Recommendation {
	missing := make([]string, 0, len(recs))
	for _, rec := range recs {
		if rec.Image == nil {
			missing = append(missing, rec.VariantID)
		}
	}
	if len(missing) == 0 {
		return recs
	}

	images, err := h.images.VariantImages(ctx, missing)
	if err != nil {
		h.logger.Printf("image hydration failed, serving recommendations without images: %v", err)
		return recs
	}

	out := make([]domain.Recommendation, len(recs))
	copy(out, recs)
	for i := range out {
		if out[i].Image != nil {
			continue
		}
		if img, ok := images[out[i].VariantID]; ok {
			attached := img
			out[i].Image = &attached
		}
	}
	return out
}
