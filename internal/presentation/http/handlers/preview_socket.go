package handlers

import (
	"net/http"

	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// PreviewSocketHandlers upgrades admin preview clients onto the page hub.
type PreviewSocketHandlers struct {
	hub         *messaging.PreviewHub
	pageService *services.PageService
	upgrader    websocket.Upgrader
	logger      *logging.ChanneledLogger
}

// NewPreviewSocketHandlers builds the upgrader. Origins are already checked
// by CORS and the auth token, so the upgrader accepts any origin.
func NewPreviewSocketHandlers(hub *messaging.PreviewHub, pageService *services.PageService, logger *logging.ChanneledLogger) *PreviewSocketHandlers {
	return &PreviewSocketHandlers{
		hub:         hub,
		pageService: pageService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// GetPreviewSocket handles GET /api/v1/admin/pages/:id/live
func (h *PreviewSocketHandlers) GetPreviewSocket(c *gin.Context) {
	pageID := c.Param("id")
	if _, err := h.pageService.GetByID(c.Request.Context(), pageID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Realtime().Warn("Preview websocket upgrade failed", "pageId", pageID, "error", err.Error())
		return
	}
	h.logger.Realtime().Info("Preview client connected", "pageId", pageID, "clients", h.hub.ClientCount(pageID)+1)
	h.hub.Serve(conn, pageID)
}
