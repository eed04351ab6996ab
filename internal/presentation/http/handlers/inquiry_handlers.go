package handlers

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// InquiryHandlers accepts public form posts and lists them for admins.
type InquiryHandlers struct {
	inquiryService *services.InquiryService
	logger         *logging.ChanneledLogger
}

func NewInquiryHandlers(inquiryService *services.InquiryService, logger *logging.ChanneledLogger) *InquiryHandlers {
	return &InquiryHandlers{inquiryService: inquiryService, logger: logger}
}

// PostInquiry handles POST /api/v1/lp/:slug/inquiries
func (h *InquiryHandlers) PostInquiry(c *gin.Context) {
	start := time.Now()
	slug := c.Param("slug")

	var req services.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	inquiry, form, err := h.inquiryService.Submit(c.Request.Context(), slug, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Inquiry().Debug("Inquiry request completed", "slug", slug, "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      inquiry.ID,
		"message": form.SuccessMessage,
	})
}

// GetInquiries handles GET /api/v1/admin/pages/:id/inquiries
func (h *InquiryHandlers) GetInquiries(c *gin.Context) {
	inquiries, err := h.inquiryService.ListByPage(c.Request.Context(), c.Param("id"), queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries, "count": len(inquiries)})
}
