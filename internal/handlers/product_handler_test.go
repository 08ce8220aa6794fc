package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelcms/internal/models"
	"jewelcms/internal/services"
)

type stubImageStore struct {
	images    []models.ProductImage
	reordered []string
}

func (s *stubImageStore) Create(*models.ProductImage) error { return nil }

func (s *stubImageStore) ListByProduct(string) ([]models.ProductImage, error) {
	return s.images, nil
}

func (s *stubImageStore) Get(_, imageID string) (*models.ProductImage, error) {
	for i := range s.images {
		if s.images[i].ID == imageID {
			img := s.images[i]
			return &img, nil
		}
	}
	return nil, nil
}

func (s *stubImageStore) Delete(_, imageID string) error {
	kept := s.images[:0]
	for _, img := range s.images {
		if img.ID != imageID {
			kept = append(kept, img)
		}
	}
	s.images = kept
	return nil
}

func (s *stubImageStore) Reorder(_ string, imageIDs []string) error {
	s.reordered = imageIDs
	return nil
}

func (s *stubImageStore) CountByProduct(string) (int, error) { return len(s.images), nil }

func deleteImage(t *testing.T, h *ProductHandler, productID, imageID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/api/admin/products/:id/images/:imageId", h.DeleteImage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/admin/products/%s/images/%s", productID, imageID), nil)
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteImagePromotesNextAndRemovesFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "products"), 0o755))
	stored := filepath.Join(root, "products", "pic.jpg")
	require.NoError(t, os.WriteFile(stored, []byte("jpeg"), 0o644))

	images := &stubImageStore{images: []models.ProductImage{
		{ID: "i1", ProductID: "p1", URL: "/files/products/pic.jpg", IsPrimary: true, Position: 0},
		{ID: "i2", ProductID: "p1", URL: "/files/products/b.jpg", Position: 1},
		{ID: "i3", ProductID: "p1", URL: "/files/products/c.jpg", Position: 2},
	}}
	h := NewProductHandler(services.NewProductService(nil, images), root)

	w := deleteImage(t, h, "p1", "i1")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.NoFileExists(t, stored)
	// the survivor with the lowest position takes the primary slot
	assert.Equal(t, []string{"i2", "i3"}, images.reordered)
}

func TestDeleteNonPrimaryImageLeavesOrderAlone(t *testing.T) {
	images := &stubImageStore{images: []models.ProductImage{
		{ID: "i1", ProductID: "p1", URL: "/files/products/a.jpg", IsPrimary: true, Position: 0},
		{ID: "i2", ProductID: "p1", URL: "/files/products/b.jpg", Position: 1},
	}}
	h := NewProductHandler(services.NewProductService(nil, images), t.TempDir())

	w := deleteImage(t, h, "p1", "i2")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, images.reordered)
}
