package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jewelcms/internal/middleware"
	"jewelcms/internal/realtime"
	"jewelcms/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
	Hub     *realtime.Hub // nil disables live board pushes
}

func NewLeadHandler(service *services.LeadService, hub *realtime.Hub) *LeadHandler {
	return &LeadHandler{Service: service, Hub: hub}
}

// Capture is the public storefront endpoint; no auth, score is computed
// server-side.
func (h *LeadHandler) Capture(c *gin.Context) {
	var in services.CaptureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.IPAddress == nil {
		ip := c.ClientIP()
		in.IPAddress = &ip
	}
	if in.UserAgent == nil {
		ua := c.Request.UserAgent()
		in.UserAgent = &ua
	}

	lead, err := h.Service.Capture(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save lead"})
		return
	}
	middleware.RecordLeadCaptured(lead.Category)
	if h.Hub != nil {
		h.Hub.Broadcast(realtime.NewEvent("lead.captured", lead))
	}
	c.JSON(http.StatusCreated, gin.H{"lead": lead})
}

// List godoc
// @Summary List leads for the pipeline board
// @Tags leads
// @Produce json
// @Param status query string false "Filter by pipeline stage"
// @Param limit query int false "Max rows" default(200)
// @Param sort query string false "createdAt_desc|createdAt_asc|score_desc|score_asc"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	leads, err := h.Service.List(c.Query("status"), limit, c.DefaultQuery("sort", "createdAt_desc"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve leads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (h *LeadHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	lead, notes, err := h.Service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lead": lead, "notes": notes})
}

type updateLeadRequest struct {
	Status     *string `json:"status"`
	AssignedTo *string `json:"assignedTo"`
}

// Update handles the board's drop commit (status) and assignment edits.
// Exactly one field is acted on per request; status wins when both are set.
func (h *LeadHandler) Update(c *gin.Context) {
	var req updateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if req.Status != nil {
		lead, err := h.Service.UpdateStatus(id, *req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLeadNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidTransition):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lead"})
			}
			return
		}
		middleware.RecordLeadTransition(lead.Status)
		if h.Hub != nil {
			h.Hub.Broadcast(realtime.NewEvent("lead.status_changed", lead))
		}
		c.JSON(http.StatusOK, gin.H{"lead": lead})
		return
	}

	lead, err := h.Service.Assign(id, req.AssignedTo)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

type addNoteRequest struct {
	Note      string `json:"note" binding:"required"`
	CreatedBy string `json:"createdBy"`
}

func (h *LeadHandler) AddNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy, _ = getUserAndRole(c)
	}
	note, err := h.Service.AddNote(c.Param("id"), req.Note, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		case errors.Is(err, services.ErrEmptyNote):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add note"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"note": note})
}
