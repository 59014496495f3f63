package shopify

import (
	"context"

	"merchant-upsell/internal/domain"
	"merchant-upsell/internal/gid"
)

const variantImagesQuery = `
query VariantImages($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on ProductVariant {
      id
      image { url altText }
      product { featuredImage { url altText } }
    }
  }
}`

type imagePayload struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type variantImagesData struct {
	Nodes []struct {
		ID      string        `json:"id"`
		Image   *imagePayload `json:"image"`
		Product struct {
			FeaturedImage *imagePayload `json:"featuredImage"`
		} `json:"product"`
	} `json:"nodes"`
}

// VariantImages fetches images for the given numeric variant IDs in one
// batched nodes query. The result is keyed by numeric ID. A variant-level
// image wins over the product's featured image.
func (c *Client) VariantImages(ctx context.Context, numericIDs []string) (map[string]domain.Image, error) {
	if len(numericIDs) == 0 {
		return map[string]domain.Image{}, nil
	}

	ids := make([]string, 0, len(numericIDs))
	for _, n := range numericIDs {
		ids = append(ids, gid.ToGlobalID(n))
	}

	data, err := post[variantImagesData](ctx, c, variantImagesQuery, map[string]any{"ids": ids})
	if err != nil {
		return nil, err
	}

	images := make(map[string]domain.Image, len(data.Nodes))
	for _, node := range data.Nodes {
		numeric, ok := gid.ToNumeric(node.ID)
		if !ok {
			continue
		}
		img := node.Image
		if img == nil {
			img = node.Product.FeaturedImage
		}
		if img == nil || img.URL == "" {
			continue
		}
		images[numeric] = domain.Image{URL: img.URL, AltText: img.AltText}
	}
	return images, nil
}
