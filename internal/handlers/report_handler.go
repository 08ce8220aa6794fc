package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"jewelcms/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// Summary backs the dashboard landing page.
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.Service.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportLeadsPDF renders the pipeline report and streams it back.
func (h *ReportHandler) ExportLeadsPDF(c *gin.Context) {
	path, err := h.Service.ExportLeadsPDF()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
