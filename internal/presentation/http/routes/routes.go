// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/application/container"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/handlers"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/middleware"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(config.CORSAllowOrigins))

	// Local uploads are served from the media directory.
	if config.UploadBackend == "local" && strings.HasPrefix(config.MediaBaseURL, "/") {
		r.Static(config.MediaBaseURL, config.MediaDir)
	}

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(handlers.AuthSettings{
		AdminEmail:        config.AdminEmail,
		AdminPasswordHash: config.AdminPasswordHash,
		JWTSecret:         config.JWTSecret,
		TokenTTL:          config.JWTTTL,
		SecureCookie:      strings.HasPrefix(config.PublicBaseURL, "https://"),
	}, container.Logger, container.PerfTracker)
	pageHandlers := handlers.NewPageHandlers(container.PageService, container.RenderService, container.Logger, container.PerfTracker)
	templateHandlers := handlers.NewTemplateHandlers(container.TemplateService, container.Logger)
	editorHandlers := handlers.NewEditorHandlers(container.EditorService, container.UploadService, container.RenderService, container.Logger, container.PerfTracker)
	uploadHandlers := handlers.NewUploadHandlers(container.UploadService, container.Logger, container.PerfTracker)
	inquiryHandlers := handlers.NewInquiryHandlers(container.InquiryService, container.Logger)
	publicHandlers := handlers.NewPublicHandlers(container.RenderService, container.Logger)
	socketHandlers := handlers.NewPreviewSocketHandlers(container.PreviewHub, container.PageService, container.Logger)
	systemHandlers := handlers.NewSystemHandlers(container.DB, container.EditorService, container.CacheMonitor, container.Logger, container.PerfTracker)

	r.GET("/healthz", systemHandlers.GetHealth)
	r.GET("/lp/:slug", middleware.DeviceViewport(), publicHandlers.GetLandingPage)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(10, container.Logger), authHandlers.PostLogin)
			auth.POST("/logout", authHandlers.PostLogout)
		}

		api.POST("/lp/:slug/inquiries", middleware.RateLimit(config.InquiryRatePerMinute, container.Logger), inquiryHandlers.PostInquiry)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(config.JWTSecret, container.Logger))
		{
			admin.GET("/auth/status", authHandlers.GetAuthStatus)

			pages := admin.Group("/pages")
			{
				pages.GET("", pageHandlers.GetPages)
				pages.POST("", pageHandlers.CreatePage)
				pages.GET("/:id", pageHandlers.GetPage)
				pages.PUT("/:id", pageHandlers.UpdatePage)
				pages.DELETE("/:id", pageHandlers.DeletePage)
				pages.POST("/:id/publish", pageHandlers.PublishPage)
				pages.POST("/:id/archive", pageHandlers.ArchivePage)
				pages.POST("/:id/clone", pageHandlers.ClonePage)
				pages.POST("/:id/components", pageHandlers.AddComponent)
				pages.DELETE("/:id/components/:componentId", pageHandlers.RemoveComponent)
				pages.GET("/:id/preview", middleware.Viewport(), pageHandlers.GetPreview)
				pages.GET("/:id/inquiries", inquiryHandlers.GetInquiries)
				pages.GET("/:id/live", socketHandlers.GetPreviewSocket)
			}

			tpl := admin.Group("/templates")
			{
				tpl.GET("", templateHandlers.GetTemplates)
				tpl.POST("", templateHandlers.CreateTemplate)
				tpl.GET("/:id", templateHandlers.GetTemplate)
				tpl.PUT("/:id", templateHandlers.UpdateTemplate)
				tpl.DELETE("/:id", templateHandlers.DeleteTemplate)
			}

			sessions := admin.Group("/editor/sessions")
			{
				sessions.POST("", editorHandlers.OpenSession)
				sessions.GET("/:id", editorHandlers.GetSession)
				sessions.POST("/:id/operations", editorHandlers.ApplyOperation)
				sessions.POST("/:id/upload", editorHandlers.UploadImage)
				sessions.POST("/:id/save", editorHandlers.SaveSession)
				sessions.DELETE("/:id", editorHandlers.CancelSession)
				sessions.GET("/:id/preview", middleware.Viewport(), editorHandlers.PreviewSession)
			}

			admin.POST("/uploads", uploadHandlers.PostUpload)

			system := admin.Group("/system")
			{
				system.GET("/status", systemHandlers.GetStatus)
				system.GET("/logs", systemHandlers.GetLogs)
				system.GET("/logs/levels", systemHandlers.GetLogLevels)
				system.POST("/logs/levels", systemHandlers.SetLogLevel)
			}
		}
	}

	container.Logger.Startup().Info("Routes registered", "routes", len(r.Routes()))
	return r
}
