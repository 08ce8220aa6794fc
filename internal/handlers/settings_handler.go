package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelcms/internal/services"
)

type SettingsHandler struct {
	Service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: service}
}

func (h *SettingsHandler) GetAll(c *gin.Context) {
	settings, err := h.Service.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// Put saves a flat key/value map. Each pair is upserted independently; a
// failed key aborts with the keys before it already written.
func (h *SettingsHandler) Put(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for key, value := range body {
		if err := h.Service.Put(key, value); err != nil {
			if errors.Is(err, services.ErrSettingKeyRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
			return
		}
	}
	settings, err := h.Service.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
