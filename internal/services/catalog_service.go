package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jewelcms/internal/models"
	"jewelcms/internal/repositories"
	"jewelcms/internal/utils"
)

var (
	ErrCatalogNotFound = errors.New("not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInUse           = errors.New("still referenced by products")
)

// CatalogService covers the small taxonomy entities: brands, categories,
// subcategories and tags. They share the same shape of CRUD, so one
// service keeps the wiring flat.
type CatalogService struct {
	Brands     *repositories.BrandRepository
	Categories *repositories.CategoryRepository
	Tags       *repositories.TagRepository
}

func NewCatalogService(brands *repositories.BrandRepository, categories *repositories.CategoryRepository, tags *repositories.TagRepository) *CatalogService {
	return &CatalogService{Brands: brands, Categories: categories, Tags: tags}
}

func (s *CatalogService) CreateBrand(name, description string, logoURL *string) (*models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	b := &models.Brand{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: description,
		LogoURL:     logoURL,
		CreatedAt:   time.Now(),
	}
	if err := s.Brands.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *CatalogService) UpdateBrand(id, name, description string, logoURL *string) (*models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	b, err := s.Brands.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrCatalogNotFound
	}
	b.Name = name
	b.Slug = utils.Slugify(name)
	b.Description = description
	b.LogoURL = logoURL
	if err := s.Brands.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *CatalogService) ListBrands() ([]models.Brand, error) {
	return s.Brands.List()
}

func (s *CatalogService) DeleteBrand(id string) error {
	n, err := s.Brands.ProductCount(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d products", ErrInUse, n)
	}
	return s.Brands.Delete(id)
}

func (s *CatalogService) CreateCategory(name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	c := &models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.Categories.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(id, name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	c, err := s.Categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCatalogNotFound
	}
	c.Name = name
	c.Slug = utils.Slugify(name)
	c.Description = description
	if err := s.Categories.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.Categories.List()
}

func (s *CatalogService) DeleteCategory(id string) error {
	n, err := s.Categories.ProductCount(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d products", ErrInUse, n)
	}
	return s.Categories.Delete(id)
}

func (s *CatalogService) CreateSubcategory(categoryID, name string) (*models.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	parent, err := s.Categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrCatalogNotFound
	}
	sub := &models.Subcategory{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Name:       name,
		Slug:       utils.Slugify(name),
		CreatedAt:  time.Now(),
	}
	if err := s.Categories.CreateSubcategory(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *CatalogService) UpdateSubcategory(categoryID, id, name string) (*models.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	sub := &models.Subcategory{
		ID:         id,
		CategoryID: categoryID,
		Name:       name,
		Slug:       utils.Slugify(name),
	}
	if err := s.Categories.UpdateSubcategory(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *CatalogService) DeleteSubcategory(categoryID, id string) error {
	return s.Categories.DeleteSubcategory(categoryID, id)
}

func (s *CatalogService) CreateTag(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	t := &models.Tag{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      utils.Slugify(name),
		CreatedAt: time.Now(),
	}
	if err := s.Tags.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) UpdateTag(id, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	t := &models.Tag{ID: id, Name: name, Slug: utils.Slugify(name)}
	if err := s.Tags.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) ListTags() ([]models.Tag, error) {
	return s.Tags.List()
}

func (s *CatalogService) DeleteTag(id string) error {
	return s.Tags.Delete(id)
}
