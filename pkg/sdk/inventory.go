package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// InventoryClient is the typed passthrough to the inventory service.
type InventoryClient struct {
	client *Client
}

func NewInventoryClient(client *Client) *InventoryClient {
	return &InventoryClient{client: client}
}

// ListIngredients returns every ingredient the service knows about.
func (c *InventoryClient) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	var out []Ingredient
	if err := c.client.Do(ctx, http.MethodGet, "/ingredients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIngredient fetches one ingredient by ID.
func (c *InventoryClient) GetIngredient(ctx context.Context, id int64) (*Ingredient, error) {
	var out Ingredient
	if err := c.client.Do(ctx, http.MethodGet, fmt.Sprintf("/ingredients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStock returns current stock levels across all ingredients.
func (c *InventoryClient) ListStock(ctx context.Context) ([]IngredientStock, error) {
	var out []IngredientStock
	if err := c.client.Do(ctx, http.MethodGet, "/stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
