package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// PricingClient is the typed passthrough to the pricing service.
type PricingClient struct {
	client *Client
}

func NewPricingClient(client *Client) *PricingClient {
	return &PricingClient{client: client}
}

// ListPrices returns prices for every priced recipe.
func (c *PricingClient) ListPrices(ctx context.Context) ([]RecipePrice, error) {
	var out []RecipePrice
	if err := c.client.Do(ctx, http.MethodGet, "/prices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecipePrice returns the cost and price for one recipe.
func (c *PricingClient) GetRecipePrice(ctx context.Context, recipeID int64) (*RecipePrice, error) {
	var out RecipePrice
	if err := c.client.Do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d/price", recipeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
