package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelcms/internal/services"
)

// CatalogHandler serves brands, categories, subcategories and tags. The
// admin UI treats them as one settings area, so one handler does too.
type CatalogHandler struct {
	Service *services.CatalogService
}

func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

func catalogErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCatalogNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type brandRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	LogoURL     *string `json:"logoUrl"`
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.Service.ListBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve brands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Service.CreateBrand(req.Name, req.Description, req.LogoURL)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"brand": b})
}

func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Service.UpdateBrand(c.Param("id"), req.Name, req.Description, req.LogoURL)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand": b})
}

func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	if err := h.Service.DeleteBrand(c.Param("id")); err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.Service.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.Service.CreateCategory(req.Name, req.Description)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.Service.UpdateCategory(c.Param("id"), req.Name, req.Description)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.Service.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type subcategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CatalogHandler) CreateSubcategory(c *gin.Context) {
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.Service.CreateSubcategory(c.Param("id"), req.Name)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subcategory": sub})
}

func (h *CatalogHandler) UpdateSubcategory(c *gin.Context) {
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.Service.UpdateSubcategory(c.Param("id"), c.Param("subId"), req.Name)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategory": sub})
}

func (h *CatalogHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.Service.DeleteSubcategory(c.Param("id"), c.Param("subId")); err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type tagRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CatalogHandler) ListTags(c *gin.Context) {
	tags, err := h.Service.ListTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tags"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (h *CatalogHandler) CreateTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.Service.CreateTag(req.Name)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tag": t})
}

func (h *CatalogHandler) UpdateTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.Service.UpdateTag(c.Param("id"), req.Name)
	if err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": t})
}

func (h *CatalogHandler) DeleteTag(c *gin.Context) {
	if err := h.Service.DeleteTag(c.Param("id")); err != nil {
		c.JSON(catalogErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
