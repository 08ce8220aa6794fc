package client

import (
	"fmt"
	"net/http"

	"jewelcms/internal/models"
)

func (c *Client) ListBrands() ([]models.Brand, error) {
	var out struct {
		Brands []models.Brand `json:"brands"`
	}
	if err := c.do(http.MethodGet, "/api/admin/brands", nil, &out); err != nil {
		return nil, err
	}
	return out.Brands, nil
}

func (c *Client) CreateBrand(name, description string, logoURL *string) (*models.Brand, error) {
	var out struct {
		Brand *models.Brand `json:"brand"`
	}
	body := map[string]any{"name": name, "description": description, "logoUrl": logoURL}
	if err := c.do(http.MethodPost, "/api/admin/brands", body, &out); err != nil {
		return nil, err
	}
	return out.Brand, nil
}

func (c *Client) UpdateBrand(id, name, description string, logoURL *string) (*models.Brand, error) {
	var out struct {
		Brand *models.Brand `json:"brand"`
	}
	body := map[string]any{"name": name, "description": description, "logoUrl": logoURL}
	if err := c.do(http.MethodPut, "/api/admin/brands/"+id, body, &out); err != nil {
		return nil, err
	}
	return out.Brand, nil
}

func (c *Client) DeleteBrand(id string) error {
	return c.do(http.MethodDelete, "/api/admin/brands/"+id, nil, nil)
}

func (c *Client) ListCategories() ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(http.MethodGet, "/api/admin/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) CreateCategory(name, description string) (*models.Category, error) {
	var out struct {
		Category *models.Category `json:"category"`
	}
	body := map[string]string{"name": name, "description": description}
	if err := c.do(http.MethodPost, "/api/admin/categories", body, &out); err != nil {
		return nil, err
	}
	return out.Category, nil
}

func (c *Client) UpdateCategory(id, name, description string) (*models.Category, error) {
	var out struct {
		Category *models.Category `json:"category"`
	}
	body := map[string]string{"name": name, "description": description}
	if err := c.do(http.MethodPut, "/api/admin/categories/"+id, body, &out); err != nil {
		return nil, err
	}
	return out.Category, nil
}

func (c *Client) DeleteCategory(id string) error {
	return c.do(http.MethodDelete, "/api/admin/categories/"+id, nil, nil)
}

func (c *Client) CreateSubcategory(categoryID, name string) (*models.Subcategory, error) {
	var out struct {
		Subcategory *models.Subcategory `json:"subcategory"`
	}
	body := map[string]string{"name": name}
	path := fmt.Sprintf("/api/admin/categories/%s/subcategories", categoryID)
	if err := c.do(http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out.Subcategory, nil
}

func (c *Client) DeleteSubcategory(categoryID, id string) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/admin/categories/%s/subcategories/%s", categoryID, id), nil, nil)
}

func (c *Client) ListTags() ([]models.Tag, error) {
	var out struct {
		Tags []models.Tag `json:"tags"`
	}
	if err := c.do(http.MethodGet, "/api/admin/tags", nil, &out); err != nil {
		return nil, err
	}
	return out.Tags, nil
}

func (c *Client) CreateTag(name string) (*models.Tag, error) {
	var out struct {
		Tag *models.Tag `json:"tag"`
	}
	body := map[string]string{"name": name}
	if err := c.do(http.MethodPost, "/api/admin/tags", body, &out); err != nil {
		return nil, err
	}
	return out.Tag, nil
}

func (c *Client) DeleteTag(id string) error {
	return c.do(http.MethodDelete, "/api/admin/tags/"+id, nil, nil)
}
