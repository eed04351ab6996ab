package handlers

import (
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/domain/editor"
	"github.com/AtRiskMedia/landstack-go/internal/domain/upload"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// OpenSessionRequest opens the editor on one component.
type OpenSessionRequest struct {
	PageID      string `json:"pageId" binding:"required"`
	ComponentID string `json:"componentId" binding:"required"`
}

// EditorHandlers exposes editor sessions over HTTP.
type EditorHandlers struct {
	editorService *services.EditorService
	uploadService *services.UploadService
	renderService *services.RenderService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

func NewEditorHandlers(
	editorService *services.EditorService,
	uploadService *services.UploadService,
	renderService *services.RenderService,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *EditorHandlers {
	return &EditorHandlers{
		editorService: editorService,
		uploadService: uploadService,
		renderService: renderService,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// OpenSession handles POST /api/v1/admin/editor/sessions
func (h *EditorHandlers) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	sess, err := h.editorService.Open(c.Request.Context(), req.PageID, req.ComponentID, middleware.AdminEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.editorService.View(sess.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/v1/admin/editor/sessions/:id
func (h *EditorHandlers) GetSession(c *gin.Context) {
	view, err := h.editorService.View(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyOperation handles POST /api/v1/admin/editor/sessions/:id/operations
func (h *EditorHandlers) ApplyOperation(c *gin.Context) {
	var op editor.Operation
	if err := c.ShouldBindJSON(&op); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	view, err := h.editorService.Apply(c.Param("id"), op)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UploadImage handles POST /api/v1/admin/editor/sessions/:id/upload with
// multipart fields "file" and "path". The URL is written at path only when
// the upload succeeds.
func (h *EditorHandlers) UploadImage(c *gin.Context) {
	sessionID := c.Param("id")
	maxBytes := h.uploadService.Constraints().MaxBytes

	data, filename, err := readUpload(c, maxBytes)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) {
			respondUploadError(c, err, maxBytes)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "a file is required", "details": err.Error()})
		return
	}
	path := c.PostForm("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "path is required"})
		return
	}

	url, err := h.editorService.Upload(c.Request.Context(), sessionID, path, data, filename)
	if err != nil {
		if isUploadError(err) {
			respondUploadError(c, err, maxBytes)
			return
		}
		respondError(c, err)
		return
	}
	view, err := h.editorService.View(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url, "session": view})
}

// SaveSession handles POST /api/v1/admin/editor/sessions/:id/save
func (h *EditorHandlers) SaveSession(c *gin.Context) {
	start := time.Now()
	sessionID := c.Param("id")
	marker := h.perfTracker.StartOperation("save_session_request", sessionID)
	defer marker.Complete()

	cfg, err := h.editorService.Save(c.Request.Context(), sessionID)
	if err != nil {
		marker.SetError(err)
		respondError(c, err)
		return
	}

	h.logger.Editor().Info("Save request completed", "sessionId", sessionID, "duration", time.Since(start))
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"success": true, "config": cfg})
}

// CancelSession handles DELETE /api/v1/admin/editor/sessions/:id
func (h *EditorHandlers) CancelSession(c *gin.Context) {
	if err := h.editorService.Cancel(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PreviewSession handles GET /api/v1/admin/editor/sessions/:id/preview
// and renders the working copy, not the stored config.
func (h *EditorHandlers) PreviewSession(c *gin.Context) {
	frag, err := h.renderService.PreviewSession(c.Param("id"), middleware.GetViewport(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, frag)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(frag.HTML))
}

func isUploadError(err error) bool {
	return errors.Is(err, upload.ErrTooLarge) ||
		errors.Is(err, upload.ErrUnsupportedType) ||
		errors.Is(err, upload.ErrUploadTimeout) ||
		errors.Is(err, upload.ErrUploadFailed)
}
