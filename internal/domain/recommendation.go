package domain

// Image is an optional product or variant image attached to a recommendation.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

// Recommendation is one upsell candidate returned by the recommendation
// backend. Lists are ephemeral and replaced wholesale on each fetch.
type Recommendation struct {
	VariantID         string `json:"variantId"`
	ProductTitle      string `json:"productTitle"`
	VariantTitle      string `json:"variantTitle,omitempty"`
	Price             string `json:"price,omitempty"`
	InventoryQuantity *int   `json:"inventoryQuantity,omitempty"`
	Image             *Image `json:"image,omitempty"`
}
