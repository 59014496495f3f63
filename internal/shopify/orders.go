package shopify

import (
	"context"
	"time"

	"merchant-upsell/internal/domain"
)

const recentOrdersQuery = `
query RecentOrders($first: Int!) {
  orders(first: $first, sortKey: CREATED_AT, reverse: true) {
    edges {
      node {
        id
        name
        createdAt
        lineItems(first: 25) {
          edges {
            node {
              title
              quantity
              variant {
                id
                product { id }
              }
            }
          }
        }
      }
    }
  }
}`

type ordersData struct {
	Orders struct {
		Edges []struct {
			Node struct {
				ID        string `json:"id"`
				Name      string `json:"name"`
				CreatedAt string `json:"createdAt"`
				LineItems struct {
					Edges []struct {
						Node struct {
							Title    string `json:"title"`
							Quantity int    `json:"quantity"`
							Variant  *struct {
								ID      string `json:"id"`
								Product struct {
									ID string `json:"id"`
								} `json:"product"`
							} `json:"variant"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"lineItems"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"orders"`
}

// RecentOrders fetches the newest orders with their line items.
func (c *Client) RecentOrders(ctx context.Context, first int) ([]domain.Order, error) {
	data, err := post[ordersData](ctx, c, recentOrdersQuery, map[string]any{"first": first})
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(data.Orders.Edges))
	for _, edge := range data.Orders.Edges {
		node := edge.Node
		createdAt, _ := time.Parse(time.RFC3339, node.CreatedAt)
		order := domain.Order{
			GID:       node.ID,
			Name:      node.Name,
			CreatedAt: createdAt,
			Lines:     make([]domain.OrderLine, 0, len(node.LineItems.Edges)),
		}
		for _, li := range node.LineItems.Edges {
			line := domain.OrderLine{
				Title:    li.Node.Title,
				Quantity: li.Node.Quantity,
			}
			if li.Node.Variant != nil {
				line.VariantGID = li.Node.Variant.ID
				line.ProductGID = li.Node.Variant.Product.ID
			}
			order.Lines = append(order.Lines, line)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
