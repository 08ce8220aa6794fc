package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"jewelcms/internal/models"
	"jewelcms/internal/utils"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("a product with this SKU already exists")
	ErrInvalidProduct  = errors.New("invalid product")
)

type ProductStore interface {
	Create(p *models.Product) error
	Update(p *models.Product) error
	UpdateStatus(id, status string, publishedAt *time.Time) error
	GetByID(id string) (*models.Product, error)
	Delete(id string) error
	SKUExists(sku, excludeID string) (bool, error)
	Filter(status, search, brandID, categoryID string, limit int) ([]*models.Product, error)
	SetTags(productID string, tagIDs []string) error
	TagIDs(productID string) ([]string, error)
	CountAll() (int, error)
}

type ProductImageStore interface {
	Create(img *models.ProductImage) error
	ListByProduct(productID string) ([]models.ProductImage, error)
	Get(productID, imageID string) (*models.ProductImage, error)
	Delete(productID, imageID string) error
	Reorder(productID string, imageIDs []string) error
	CountByProduct(productID string) (int, error)
}

type ProductService struct {
	Repo   ProductStore
	Images ProductImageStore
}

func NewProductService(repo ProductStore, images ProductImageStore) *ProductService {
	return &ProductService{Repo: repo, Images: images}
}

func validateProduct(p *models.Product) error {
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
		return fmt.Errorf("%w: missing %s", ErrInvalidProduct, strings.Join(missing, ", "))
	}
	switch p.Status {
	case "", models.ProductStatusDraft, models.ProductStatusPublished, models.ProductStatusArchived:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidProduct, p.Status)
	}
	return nil
}

func (s *ProductService) Create(p *models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	dup, err := s.Repo.SKUExists(p.SKU, "")
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateSKU
	}

	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = models.ProductStatusDraft
	}
	if p.Status == models.ProductStatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Name)
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}
	if p.GroupedProductIDs == nil {
		p.GroupedProductIDs = []string{}
	}
	if p.RelatedProductIDs == nil {
		p.RelatedProductIDs = []string{}
	}

	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	if len(p.TagIDs) > 0 {
		if err := s.Repo.SetTags(p.ID, p.TagIDs); err != nil {
			return nil, err
		}
	}
	return s.Get(p.ID)
}

func (s *ProductService) Update(id string, p *models.Product) (*models.Product, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrProductNotFound
	}
	p.ID = id
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	dup, err := s.Repo.SKUExists(p.SKU, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateSKU
	}
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Name)
	}
	if p.Status == models.ProductStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	if err := s.Repo.SetTags(id, p.TagIDs); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// UpdateStatus is the single-field path used by bulk publish/draft.
func (s *ProductService) UpdateStatus(id, status string) (*models.Product, error) {
	switch status {
	case models.ProductStatusDraft, models.ProductStatusPublished, models.ProductStatusArchived:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidProduct, status)
	}
	var publishedAt *time.Time
	if status == models.ProductStatusPublished {
		now := time.Now()
		publishedAt = &now
	}
	if err := s.Repo.UpdateStatus(id, status, publishedAt); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ProductService) Get(id string) (*models.Product, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if p.Images, err = s.Images.ListByProduct(id); err != nil {
		return nil, err
	}
	if p.TagIDs, err = s.Repo.TagIDs(id); err != nil {
		return nil, err
	}
	if p.TagIDs == nil {
		p.TagIDs = []string{}
	}
	return p, nil
}

func (s *ProductService) List(status, search, brandID, categoryID string, limit int) ([]*models.Product, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	products, err := s.Repo.Filter(status, search, brandID, categoryID, limit)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.Images, err = s.Images.ListByProduct(p.ID); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (s *ProductService) Delete(id string) error {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	return s.Repo.Delete(id)
}

// --- CSV bulk import ---

// csv columns, in order; header row required
var bulkColumns = []string{"sku", "name", "description", "price", "brandId", "categoryId", "metalType", "stockQuantity", "status"}

// ImportCSV ingests a raw CSV upload. Rows fail independently; the result
// is reported in aggregate only.
func (s *ProductService) ImportCSV(r io.Reader) (*models.BulkUploadResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"sku", "name", "price", "brandId", "categoryId"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	result := &models.BulkUploadResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		price, _ := strconv.ParseFloat(field(record, "price"), 64)
		stock, _ := strconv.Atoi(field(record, "stockQuantity"))
		status := field(record, "status")
		if status == "" {
			status = models.ProductStatusDraft
		}
		var metalType *string
		if v := field(record, "metalType"); v != "" {
			metalType = &v
		}

		p := &models.Product{
			SKU:           field(record, "sku"),
			Name:          field(record, "name"),
			Description:   field(record, "description"),
			Price:         price,
			BrandID:       field(record, "brandId"),
			CategoryID:    field(record, "categoryId"),
			MetalType:     metalType,
			StockQuantity: stock,
			InStock:       stock > 0,
			Status:        status,
		}
		if _, err := s.Create(p); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d (%s): %v", line, p.SKU, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

func (s *ProductService) Count() (int, error) {
	return s.Repo.CountAll()
}
