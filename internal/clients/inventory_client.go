// internal/clients/inventory_client.go
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"foodtracker/internal/inventory"
)

// InventoryClient calls the inventory service over HTTP.
type InventoryClient struct {
	baseURL string
}

func NewInventoryClient(baseURL string) *InventoryClient {
	return &InventoryClient{baseURL: baseURL}
}

// ExpiringSoonFoods fetches the active items with 0 to 3 days remaining,
// soonest first.
func (c *InventoryClient) ExpiringSoonFoods(ctx context.Context) ([]*inventory.Food, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/foods/expiring-soon", c.baseURL), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var foods []*inventory.Food
	if err := json.NewDecoder(resp.Body).Decode(&foods); err != nil {
		return nil, err
	}

	return foods, nil
}
