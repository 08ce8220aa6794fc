package client

import (
	"fmt"
	"net/http"

	"jewelcms/internal/models"
)

func (c *Client) ListWishlists() ([]models.Wishlist, error) {
	var out struct {
		Wishlists []models.Wishlist `json:"wishlists"`
	}
	if err := c.do(http.MethodGet, "/api/admin/wishlists", nil, &out); err != nil {
		return nil, err
	}
	return out.Wishlists, nil
}

func (c *Client) RegenerateWishlistShareToken(id string) (string, error) {
	var out struct {
		ShareToken string `json:"shareToken"`
	}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/admin/wishlists/%s/share-token", id), nil, &out); err != nil {
		return "", err
	}
	return out.ShareToken, nil
}

func (c *Client) DeleteWishlist(id string) error {
	return c.do(http.MethodDelete, "/api/admin/wishlists/"+id, nil, nil)
}

func (c *Client) ListCustomers() ([]*models.Customer, error) {
	var out struct {
		Customers []*models.Customer `json:"customers"`
	}
	if err := c.do(http.MethodGet, "/api/admin/customers", nil, &out); err != nil {
		return nil, err
	}
	return out.Customers, nil
}

func (c *Client) CustomerStats() (*models.CustomerStats, error) {
	var out struct {
		Stats *models.CustomerStats `json:"stats"`
	}
	if err := c.do(http.MethodGet, "/api/admin/customers/stats", nil, &out); err != nil {
		return nil, err
	}
	return out.Stats, nil
}

func (c *Client) Customer(id string) (*models.Customer, error) {
	var out struct {
		Customer *models.Customer `json:"customer"`
	}
	if err := c.do(http.MethodGet, "/api/admin/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out.Customer, nil
}

func (c *Client) SetCustomerActive(id string, isActive bool) (*models.Customer, error) {
	var out struct {
		Customer *models.Customer `json:"customer"`
	}
	body := map[string]bool{"isActive": isActive}
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/admin/customers/%s/active", id), body, &out); err != nil {
		return nil, err
	}
	return out.Customer, nil
}

func (c *Client) Settings() (map[string]string, error) {
	var out struct {
		Settings map[string]string `json:"settings"`
	}
	if err := c.do(http.MethodGet, "/api/admin/settings", nil, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

// SaveSettings upserts the given keys and returns the full settings map
// as the server now sees it.
func (c *Client) SaveSettings(values map[string]string) (map[string]string, error) {
	var out struct {
		Settings map[string]string `json:"settings"`
	}
	if err := c.do(http.MethodPut, "/api/admin/settings", values, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

// DashboardSummary backs the landing page tiles.
type DashboardSummary struct {
	Leads         *models.LeadStats `json:"leads"`
	TotalProducts int               `json:"totalProducts"`
	TotalLists    int               `json:"totalWishlists"`
}

func (c *Client) ReportSummary() (*DashboardSummary, error) {
	var out DashboardSummary
	if err := c.do(http.MethodGet, "/api/admin/reports/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
