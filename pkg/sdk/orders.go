package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// OrderingClient is the typed passthrough to the ordering service.
type OrderingClient struct {
	client *Client
}

func NewOrderingClient(client *Client) *OrderingClient {
	return &OrderingClient{client: client}
}

// ListOrders returns all orders visible to the current user.
func (c *OrderingClient) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.client.Do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder fetches one order with its items.
func (c *OrderingClient) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var out Order
	if err := c.client.Do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder places a new order.
func (c *OrderingClient) CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error) {
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	var out Order
	if err := c.client.Do(ctx, http.MethodPost, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
