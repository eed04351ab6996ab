package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ClonePageRequest names the slug for the copy.
type ClonePageRequest struct {
	Slug string `json:"slug" binding:"required"`
}

// AddComponentRequest places a new component, optionally from a template.
type AddComponentRequest struct {
	Type       string `json:"type" binding:"required"`
	TemplateID string `json:"templateId"`
}

// PageHandlers contains all landing page HTTP handlers
type PageHandlers struct {
	pageService   *services.PageService
	renderService *services.RenderService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(pageService *services.PageService, renderService *services.RenderService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PageHandlers {
	return &PageHandlers{
		pageService:   pageService,
		renderService: renderService,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// GetPages handles GET /api/v1/admin/pages
func (h *PageHandlers) GetPages(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("get_pages_request", "")
	defer marker.Complete()

	filter := content.PageFilter{
		Status:         content.PageStatus(c.Query("status")),
		CampaignSource: c.Query("campaign"),
		CreatedBy:      c.Query("createdBy"),
		Search:         c.Query("search"),
		Limit:          queryInt(c, "limit", 0),
		Offset:         queryInt(c, "offset", 0),
	}
	pages, total, err := h.pageService.List(c.Request.Context(), filter)
	if err != nil {
		marker.SetError(err)
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Get pages request completed", "count", len(pages), "total", total, "duration", time.Since(start))
	marker.SetSuccess(true)
	if c.Query("full") == "true" {
		c.JSON(http.StatusOK, gin.H{"pages": pages, "count": len(pages), "total": total})
		return
	}
	rows := make([]content.PageSummary, len(pages))
	for i, p := range pages {
		rows[i] = p.Summary()
	}
	c.JSON(http.StatusOK, gin.H{
		"pages": rows,
		"count": len(rows),
		"total": total,
	})
}

// GetPage handles GET /api/v1/admin/pages/:id
func (h *PageHandlers) GetPage(c *gin.Context) {
	page, err := h.pageService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreatePage handles POST /api/v1/admin/pages
func (h *PageHandlers) CreatePage(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("create_page_request", "")
	defer marker.Complete()

	var req services.PageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	page, err := h.pageService.Create(c.Request.Context(), req, middleware.AdminEmail(c))
	if err != nil {
		marker.SetError(err)
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Create page request completed", "id", page.ID, "slug", page.Slug, "duration", time.Since(start))
	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, page)
}

// UpdatePage handles PUT /api/v1/admin/pages/:id
func (h *PageHandlers) UpdatePage(c *gin.Context) {
	var req services.PageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	page, err := h.pageService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeletePage handles DELETE /api/v1/admin/pages/:id
func (h *PageHandlers) DeletePage(c *gin.Context) {
	if err := h.pageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PublishPage handles POST /api/v1/admin/pages/:id/publish
func (h *PageHandlers) PublishPage(c *gin.Context) {
	page, err := h.pageService.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ArchivePage handles POST /api/v1/admin/pages/:id/archive
func (h *PageHandlers) ArchivePage(c *gin.Context) {
	page, err := h.pageService.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ClonePage handles POST /api/v1/admin/pages/:id/clone
func (h *PageHandlers) ClonePage(c *gin.Context) {
	var req ClonePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	page, err := h.pageService.Clone(c.Request.Context(), c.Param("id"), req.Slug, middleware.AdminEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

// AddComponent handles POST /api/v1/admin/pages/:id/components
func (h *PageHandlers) AddComponent(c *gin.Context) {
	var req AddComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	kind, err := blocks.ParseKind(req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	component, err := h.pageService.AddComponent(c.Request.Context(), c.Param("id"), kind, req.TemplateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, component)
}

// RemoveComponent handles DELETE /api/v1/admin/pages/:id/components/:componentId
func (h *PageHandlers) RemoveComponent(c *gin.Context) {
	if err := h.pageService.RemoveComponent(c.Request.Context(), c.Param("id"), c.Param("componentId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPreview handles GET /api/v1/admin/pages/:id/preview?viewport=
// format=fragments returns per-component JSON instead of a document.
func (h *PageHandlers) GetPreview(c *gin.Context) {
	start := time.Now()
	pageID := c.Param("id")
	marker := h.perfTracker.StartOperation("get_preview_request", pageID)
	defer marker.Complete()

	viewport := middleware.GetViewport(c)
	if c.Query("format") == "fragments" {
		frags, err := h.renderService.PreviewFragments(c.Request.Context(), pageID, viewport)
		if err != nil {
			marker.SetError(err)
			respondError(c, err)
			return
		}
		marker.SetSuccess(true)
		c.JSON(http.StatusOK, gin.H{"viewport": viewport, "fragments": frags})
		return
	}

	html, err := h.renderService.Preview(c.Request.Context(), pageID, viewport)
	if err != nil {
		marker.SetError(err)
		respondError(c, err)
		return
	}

	h.logger.Content().Debug("Preview rendered", "pageId", pageID, "viewport", viewport, "duration", time.Since(start))
	marker.SetSuccess(true)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func queryInt(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return def
}
