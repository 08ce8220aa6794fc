package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelcms/internal/services"
)

type WishlistHandler struct {
	Service *services.WishlistService
}

func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{Service: service}
}

func (h *WishlistHandler) List(c *gin.Context) {
	wishlists, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve wishlists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlists": wishlists})
}

func (h *WishlistHandler) RegenerateShareToken(c *gin.Context) {
	token, err := h.Service.RegenerateShareToken(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrWishlistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "wishlist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to regenerate share token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shareToken": token})
}

func (h *WishlistHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete wishlist"})
		return
	}
	c.Status(http.StatusNoContent)
}
