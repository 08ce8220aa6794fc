package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jewelcms/internal/models"
	"jewelcms/internal/services"
)

type ProductHandler struct {
	Service   *services.ProductService
	FilesRoot string
}

func NewProductHandler(service *services.ProductService, filesRoot string) *ProductHandler {
	return &ProductHandler{Service: service, FilesRoot: filesRoot}
}

func productErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateSKU):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidProduct):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param status query string false "DRAFT|PUBLISHED|ARCHIVED"
// @Param search query string false "Match against name or SKU"
// @Param brandId query string false "Brand filter"
// @Param categoryId query string false "Category filter"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	products, err := h.Service.List(
		c.Query("status"), c.Query("search"), c.Query("brandId"), c.Query("categoryId"), limit,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.Service.Get(c.Param("id"))
	if err != nil {
		c.JSON(productErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(&p)
	if err != nil {
		c.JSON(productErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Service.Update(c.Param("id"), &p)
	if err != nil {
		c.JSON(productErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": updated})
}

type updateProductStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus is the single-field path the bulk toolbar hits once per
// selected product.
func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	var req updateProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Service.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(productErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": updated})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		c.JSON(productErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkUpload ingests a CSV file under the "file" form field.
func (h *ProductHandler) BulkUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return
	}
	defer f.Close()

	result, err := h.Service.ImportCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// --- images ---

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

func (h *ProductHandler) UploadImage(c *gin.Context) {
	productID := c.Param("id")
	if _, err := h.Service.Get(productID); err != nil {
		c.JSON(productErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.FilesRoot, "products", name)
	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	count, err := h.Service.Images.CountByProduct(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}
	img := &models.ProductImage{
		ID:        uuid.NewString(),
		ProductID: productID,
		URL:       fmt.Sprintf("/files/products/%s", name),
		AltText:   c.PostForm("altText"),
		IsPrimary: count == 0,
		Position:  count,
	}
	if err := h.Service.Images.Create(img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": img})
}

type reorderImagesRequest struct {
	ImageIDs []string `json:"imageIds" binding:"required"`
}

func (h *ProductHandler) ReorderImages(c *gin.Context) {
	var req reorderImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	productID := c.Param("id")
	if err := h.Service.Images.Reorder(productID, req.ImageIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder images"})
		return
	}
	images, err := h.Service.Images.ListByProduct(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder images"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (h *ProductHandler) DeleteImage(c *gin.Context) {
	productID := c.Param("id")
	imageID := c.Param("imageId")
	img, err := h.Service.Images.Get(productID, imageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}
	if img == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	if err := h.Service.Images.Delete(productID, imageID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}

	// stored file removal is best effort
	if rel, ok := strings.CutPrefix(img.URL, "/files/"); ok {
		_ = os.Remove(filepath.Join(h.FilesRoot, filepath.FromSlash(rel)))
	}

	// the primary slot never stays vacant while images remain
	if img.IsPrimary {
		remaining, err := h.Service.Images.ListByProduct(productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
			return
		}
		if len(remaining) > 0 {
			ids := make([]string, len(remaining))
			for i, m := range remaining {
				ids[i] = m.ID
			}
			if err := h.Service.Images.Reorder(productID, ids); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
				return
			}
		}
	}
	c.Status(http.StatusNoContent)
}
