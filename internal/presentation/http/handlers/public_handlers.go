package handlers

import (
	"html/template"
	"net/http"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

var notFoundTmpl = template.Must(template.New("notFound").Parse(
	`<!DOCTYPE html><html lang="id"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">` +
		`<title>Halaman tidak ditemukan</title></head>` +
		`<body><main style="max-width:32rem;margin:4rem auto;font-family:sans-serif;text-align:center">` +
		`<h1>Halaman tidak ditemukan</h1><p>Halaman {{.}} tidak tersedia atau sudah berakhir.</p></main></body></html>`,
))

// PublicHandlers serves published landing pages.
type PublicHandlers struct {
	renderService *services.RenderService
	logger        *logging.ChanneledLogger
}

func NewPublicHandlers(renderService *services.RenderService, logger *logging.ChanneledLogger) *PublicHandlers {
	return &PublicHandlers{renderService: renderService, logger: logger}
}

// GetLandingPage handles GET /lp/:slug
func (h *PublicHandlers) GetLandingPage(c *gin.Context) {
	slug := c.Param("slug")
	viewport := middleware.GetViewport(c)

	// The response differs by device class.
	c.Header("Accept-CH", "Sec-CH-UA-Mobile")
	c.Header("Vary", "User-Agent, Sec-CH-UA-Mobile")

	html, err := h.renderService.RenderPublic(c.Request.Context(), slug, viewport)
	if err != nil {
		if errors.Is(err, services.ErrNotLive) || errors.Is(err, repositories.ErrNotFound) {
			c.Status(http.StatusNotFound)
			c.Header("Content-Type", "text/html; charset=utf-8")
			if err := notFoundTmpl.Execute(c.Writer, slug); err != nil {
				h.logger.Content().Error("Failed to write not-found page", "slug", slug, "error", err.Error())
			}
			return
		}
		h.logger.Content().Error("Public render failed", "slug", slug, "error", err.Error())
		c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("internal server error"))
		return
	}

	c.Header("Cache-Control", "public, max-age=60")
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
