package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"jewelcms/internal/models"
)

// ValidationError lists the fields the form is missing. Validation runs
// before any request is sent: an invalid form never reaches the wire.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func validateProductForm(p *models.Product) error {
	var missing []string
	if strings.TrimSpace(p.SKU) == "" {
		missing = append(missing, "sku")
	}
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if p.Price <= 0 {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(p.BrandID) == "" {
		missing = append(missing, "brandId")
	}
	if strings.TrimSpace(p.CategoryID) == "" {
		missing = append(missing, "categoryId")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

type ListProductsOptions struct {
	Status     string
	Search     string
	BrandID    string
	CategoryID string
	Limit      int
}

func (c *Client) ListProducts(opts ListProductsOptions) ([]*models.Product, error) {
	params := map[string]string{
		"status":     opts.Status,
		"search":     opts.Search,
		"brandId":    opts.BrandID,
		"categoryId": opts.CategoryID,
	}
	if opts.Limit > 0 {
		params["limit"] = strconv.Itoa(opts.Limit)
	}
	var out struct {
		Products []*models.Product `json:"products"`
	}
	if err := c.do(http.MethodGet, "/api/admin/products"+query(params), nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) Product(id string) (*models.Product, error) {
	var out struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(http.MethodGet, "/api/admin/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

func (c *Client) CreateProduct(p *models.Product) (*models.Product, error) {
	if err := validateProductForm(p); err != nil {
		return nil, err
	}
	var out struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(http.MethodPost, "/api/admin/products", p, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

func (c *Client) UpdateProduct(id string, p *models.Product) (*models.Product, error) {
	if err := validateProductForm(p); err != nil {
		return nil, err
	}
	var out struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(http.MethodPut, "/api/admin/products/"+id, p, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

func (c *Client) UpdateProductStatus(id, status string) (*models.Product, error) {
	var out struct {
		Product *models.Product `json:"product"`
	}
	body := map[string]string{"status": status}
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/admin/products/%s/status", id), body, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

func (c *Client) DeleteProduct(id string) error {
	return c.do(http.MethodDelete, "/api/admin/products/"+id, nil, nil)
}

// BulkUpdateStatus fires one status PUT per selected product. Requests
// run concurrently; failures are collected, successes are never rolled
// back.
func (c *Client) BulkUpdateStatus(ids []string, status string) error {
	var wg sync.WaitGroup
	errCh := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := c.UpdateProductStatus(id, status); err != nil {
				errCh <- fmt.Errorf("%s: %w", id, err)
			}
		}(id)
	}
	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d updates failed: %w", len(errs), len(ids), errors.Join(errs...))
	}
	return nil
}

// DuplicateProduct copies an existing product into a fresh draft with a
// derived SKU.
func (c *Client) DuplicateProduct(id string) (*models.Product, error) {
	src, err := c.Product(id)
	if err != nil {
		return nil, err
	}
	dup := *src
	dup.ID = ""
	dup.SKU = src.SKU + "-COPY"
	dup.Name = src.Name + " (Copy)"
	dup.Slug = ""
	dup.Status = models.ProductStatusDraft
	dup.PublishedAt = nil
	dup.Images = nil
	return c.CreateProduct(&dup)
}

// SetProductRelationships replaces the grouped and related id lists and
// saves the product in one PUT.
func (c *Client) SetProductRelationships(id string, groupedIDs, relatedIDs []string) (*models.Product, error) {
	p, err := c.Product(id)
	if err != nil {
		return nil, err
	}
	p.GroupedProductIDs = groupedIDs
	p.RelatedProductIDs = relatedIDs
	return c.UpdateProduct(id, p)
}

func (c *Client) BulkUploadCSV(filename string, file io.Reader) (*models.BulkUploadResult, error) {
	var out struct {
		Result *models.BulkUploadResult `json:"result"`
	}
	if err := c.doMultipart("/api/admin/products/bulk-upload", "file", filename, file, nil, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func (c *Client) UploadProductImage(productID, filename string, file io.Reader, altText string) (*models.ProductImage, error) {
	var out struct {
		Image *models.ProductImage `json:"image"`
	}
	fields := map[string]string{"altText": altText}
	path := fmt.Sprintf("/api/admin/products/%s/images", productID)
	if err := c.doMultipart(path, "image", filename, file, fields, &out); err != nil {
		return nil, err
	}
	return out.Image, nil
}

func (c *Client) ReorderProductImages(productID string, imageIDs []string) ([]models.ProductImage, error) {
	var out struct {
		Images []models.ProductImage `json:"images"`
	}
	body := map[string][]string{"imageIds": imageIDs}
	path := fmt.Sprintf("/api/admin/products/%s/images/reorder", productID)
	if err := c.do(http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return out.Images, nil
}

func (c *Client) DeleteProductImage(productID, imageID string) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/admin/products/%s/images/%s", productID, imageID), nil, nil)
}

// --- list view helpers (local, no requests) ---

// SortProducts orders a fetched page in place. Keys mirror the list view
// column headers; unknown keys leave the slice untouched.
func SortProducts(products []*models.Product, key string, descending bool) {
	var less func(a, b *models.Product) bool
	switch key {
	case "name":
		less = func(a, b *models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "price":
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case "stock":
		less = func(a, b *models.Product) bool { return a.StockQuantity < b.StockQuantity }
	case "createdAt":
		less = func(a, b *models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if descending {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

// Paginate slices one page out of the sorted list. Pages are 1-based; an
// out-of-range page comes back empty.
func Paginate(products []*models.Product, page, perPage int) []*models.Product {
	if perPage <= 0 {
		perPage = 20
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(products) {
		return []*models.Product{}
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
