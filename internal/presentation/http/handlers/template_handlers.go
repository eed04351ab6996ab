package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// CreateTemplateRequest defines the structure for creating a component template.
type CreateTemplateRequest struct {
	Name         string         `json:"name" binding:"required"`
	Type         string         `json:"type" binding:"required"`
	Config       map[string]any `json:"config"`
	PreviewImage string         `json:"previewImage"`
}

// TemplateHandlers contains all component template HTTP handlers
type TemplateHandlers struct {
	templateService *services.TemplateService
	logger          *logging.ChanneledLogger
}

func NewTemplateHandlers(templateService *services.TemplateService, logger *logging.ChanneledLogger) *TemplateHandlers {
	return &TemplateHandlers{templateService: templateService, logger: logger}
}

// GetTemplates handles GET /api/v1/admin/templates?type=
func (h *TemplateHandlers) GetTemplates(c *gin.Context) {
	templates, err := h.templateService.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates, "count": len(templates)})
}

// GetTemplate handles GET /api/v1/admin/templates/:id
func (h *TemplateHandlers) GetTemplate(c *gin.Context) {
	tpl, err := h.templateService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// CreateTemplate handles POST /api/v1/admin/templates
func (h *TemplateHandlers) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	in, err := templateInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	tpl, err := h.templateService.Create(c.Request.Context(), in, middleware.AdminEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.logger.Content().Info("Component template created", "id", tpl.ID, "type", tpl.Type)
	c.JSON(http.StatusCreated, tpl)
}

// UpdateTemplate handles PUT /api/v1/admin/templates/:id
func (h *TemplateHandlers) UpdateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	in, err := templateInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	tpl, err := h.templateService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DeleteTemplate handles DELETE /api/v1/admin/templates/:id
func (h *TemplateHandlers) DeleteTemplate(c *gin.Context) {
	if err := h.templateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func templateInput(req CreateTemplateRequest) (services.TemplateInput, error) {
	in := services.TemplateInput{Name: req.Name, Type: req.Type, PreviewImage: req.PreviewImage}
	if req.Config != nil {
		raw, err := json.Marshal(req.Config)
		if err != nil {
			return in, err
		}
		in.Config = raw
	}
	return in, nil
}
