package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelcms/internal/realtime"
)

type EventsHandler struct {
	Hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{Hub: hub}
}

// Subscribe upgrades the request and streams board events until the
// dashboard disconnects.
func (h *EventsHandler) Subscribe(c *gin.Context) {
	conn, err := realtime.Upgrade(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
		return
	}
	h.Hub.Register(conn)
	defer h.Hub.Unregister(conn)
	conn.ServeReads()
}
