package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewelcms/internal/models"
)

type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Create(p *models.Product) error { return m.Called(p).Error(0) }
func (m *MockProductStore) Update(p *models.Product) error { return m.Called(p).Error(0) }

func (m *MockProductStore) UpdateStatus(id, status string, publishedAt *time.Time) error {
	return m.Called(id, status, publishedAt).Error(0)
}

func (m *MockProductStore) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *MockProductStore) Delete(id string) error { return m.Called(id).Error(0) }

func (m *MockProductStore) SKUExists(sku, excludeID string) (bool, error) {
	args := m.Called(sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductStore) Filter(status, search, brandID, categoryID string, limit int) ([]*models.Product, error) {
	args := m.Called(status, search, brandID, categoryID, limit)
	products, _ := args.Get(0).([]*models.Product)
	return products, args.Error(1)
}

func (m *MockProductStore) SetTags(productID string, tagIDs []string) error {
	return m.Called(productID, tagIDs).Error(0)
}

func (m *MockProductStore) TagIDs(productID string) ([]string, error) {
	args := m.Called(productID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockProductStore) CountAll() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type MockProductImageStore struct {
	mock.Mock
}

func (m *MockProductImageStore) Create(img *models.ProductImage) error {
	return m.Called(img).Error(0)
}

func (m *MockProductImageStore) ListByProduct(productID string) ([]models.ProductImage, error) {
	args := m.Called(productID)
	images, _ := args.Get(0).([]models.ProductImage)
	return images, args.Error(1)
}

func (m *MockProductImageStore) Get(productID, imageID string) (*models.ProductImage, error) {
	args := m.Called(productID, imageID)
	img, _ := args.Get(0).(*models.ProductImage)
	return img, args.Error(1)
}

func (m *MockProductImageStore) Delete(productID, imageID string) error {
	return m.Called(productID, imageID).Error(0)
}

func (m *MockProductImageStore) Reorder(productID string, imageIDs []string) error {
	return m.Called(productID, imageIDs).Error(0)
}

func (m *MockProductImageStore) CountByProduct(productID string) (int, error) {
	args := m.Called(productID)
	return args.Int(0), args.Error(1)
}

func validProduct() *models.Product {
	return &models.Product{
		SKU:        "RING-001",
		Name:       "Solitaire Ring",
		Price:      1200,
		BrandID:    "b1",
		CategoryID: "c1",
	}
}

func newProductService(store *MockProductStore, images *MockProductImageStore) *ProductService {
	if images == nil {
		images = new(MockProductImageStore)
	}
	return NewProductService(store, images)
}

func TestCreateProductRejectsMissingFields(t *testing.T) {
	svc := newProductService(new(MockProductStore), nil)
	_, err := svc.Create(&models.Product{Name: "No SKU"})

	require.ErrorIs(t, err, ErrInvalidProduct)
	assert.Contains(t, err.Error(), "sku")
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "brandId")
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	store := new(MockProductStore)
	store.On("SKUExists", "RING-001", "").Return(true, nil)

	svc := newProductService(store, nil)
	_, err := svc.Create(validProduct())
	assert.ErrorIs(t, err, ErrDuplicateSKU)
	store.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProductDefaultsDraftAndSlug(t *testing.T) {
	store := new(MockProductStore)
	store.On("SKUExists", "RING-001", "").Return(false, nil)
	var saved *models.Product
	store.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.Product)
	}).Return(nil)
	store.On("GetByID", mock.AnythingOfType("string")).Return(validProduct(), nil)
	store.On("TagIDs", mock.AnythingOfType("string")).Return([]string{}, nil)

	images := new(MockProductImageStore)
	images.On("ListByProduct", mock.AnythingOfType("string")).Return([]models.ProductImage{}, nil)

	svc := newProductService(store, images)
	_, err := svc.Create(validProduct())
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, models.ProductStatusDraft, saved.Status)
	assert.Equal(t, "solitaire-ring", saved.Slug)
	assert.Nil(t, saved.PublishedAt)
}

func TestCreatePublishedProductStampsPublishedAt(t *testing.T) {
	store := new(MockProductStore)
	store.On("SKUExists", "RING-001", "").Return(false, nil)
	var saved *models.Product
	store.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.Product)
	}).Return(nil)
	store.On("GetByID", mock.AnythingOfType("string")).Return(validProduct(), nil)
	store.On("TagIDs", mock.AnythingOfType("string")).Return([]string{}, nil)

	images := new(MockProductImageStore)
	images.On("ListByProduct", mock.AnythingOfType("string")).Return([]models.ProductImage{}, nil)

	p := validProduct()
	p.Status = models.ProductStatusPublished

	svc := newProductService(store, images)
	_, err := svc.Create(p)
	require.NoError(t, err)
	assert.NotNil(t, saved.PublishedAt)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := newProductService(new(MockProductStore), nil)
	_, err := svc.UpdateStatus("p1", "LIVE")
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestDeleteMissingProduct(t *testing.T) {
	store := new(MockProductStore)
	store.On("GetByID", "ghost").Return(nil, nil)

	svc := newProductService(store, nil)
	assert.ErrorIs(t, svc.Delete("ghost"), ErrProductNotFound)
}

func TestImportCSVRowsFailIndependently(t *testing.T) {
	store := new(MockProductStore)
	// second row collides on SKU, first and third go through
	store.On("SKUExists", "S1", "").Return(false, nil)
	store.On("SKUExists", "S2", "").Return(true, nil)
	store.On("SKUExists", "S3", "").Return(false, nil)
	store.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)
	store.On("GetByID", mock.AnythingOfType("string")).Return(validProduct(), nil)
	store.On("TagIDs", mock.AnythingOfType("string")).Return([]string{}, nil)

	images := new(MockProductImageStore)
	images.On("ListByProduct", mock.AnythingOfType("string")).Return([]models.ProductImage{}, nil)

	csv := strings.Join([]string{
		"sku,name,price,brandId,categoryId,stockQuantity",
		"S1,Ring,100,b1,c1,5",
		"S2,Dup Ring,200,b1,c1,3",
		"S3,Bracelet,300,b1,c1,0",
	}, "\n")

	svc := newProductService(store, images)
	result, err := svc.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "S2")
}

func TestImportCSVMissingRequiredColumn(t *testing.T) {
	svc := newProductService(new(MockProductStore), nil)
	_, err := svc.ImportCSV(strings.NewReader("sku,name\nS1,Ring\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}
