package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/monitoring"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetLogLevelRequest changes one channel's minimum level.
type SetLogLevelRequest struct {
	Channel string `json:"channel" binding:"required"`
	Level   string `json:"level" binding:"required"`
}

// SystemHandlers serves health and operator endpoints.
type SystemHandlers struct {
	db            Pinger
	editorService *services.EditorService
	cacheMonitor  *monitoring.CacheMonitor
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

func NewSystemHandlers(db Pinger, editorService *services.EditorService, cacheMonitor *monitoring.CacheMonitor, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SystemHandlers {
	return &SystemHandlers{
		db:            db,
		editorService: editorService,
		cacheMonitor:  cacheMonitor,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// GetHealth handles GET /healthz
func (h *SystemHandlers) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.System().Error("Health check failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}

// GetStatus handles GET /api/v1/admin/system/status
func (h *SystemHandlers) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"health":         h.perfTracker.Health(),
		"uptime":         h.perfTracker.Uptime().String(),
		"operations":     h.perfTracker.Stats(),
		"cache":          h.cacheMonitor.Snapshot(),
		"editorSessions": h.editorService.Count(),
	})
}

// GetLogs handles GET /api/v1/admin/system/logs?channel=&level=
func (h *SystemHandlers) GetLogs(c *gin.Context) {
	var min slog.Level
	if err := min.UnmarshalText([]byte(c.DefaultQuery("level", "info"))); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level"})
		return
	}
	tail := h.logger.Tail()
	if tail == nil {
		c.JSON(http.StatusOK, gin.H{"entries": []logging.LogEntry{}, "count": 0})
		return
	}
	entries := tail.Entries(c.Query("channel"), min)
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// GetLogLevels handles GET /api/v1/admin/system/logs/levels
func (h *SystemHandlers) GetLogLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"levels": h.logger.GetChannelLevels()})
}

// SetLogLevel handles POST /api/v1/admin/system/logs/levels
func (h *SystemHandlers) SetLogLevel(c *gin.Context) {
	var req SetLogLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	channel, ok := logging.ParseChannel(req.Channel)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown channel"})
		return
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(req.Level)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level"})
		return
	}
	if err := h.logger.SetChannelLevel(channel, level); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.logger.System().Info("Log level changed", "channel", req.Channel, "level", level.String())
	c.JSON(http.StatusOK, gin.H{"success": true})
}
