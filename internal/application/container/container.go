// Package container provides dependency injection for all singleton services
package container

import (
	"context"
	"fmt"
	"io"

	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/domain/upload"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/email"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/media"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/monitoring"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/content"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/database"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/scheduling"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/templates"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services
	PageService     *services.PageService
	TemplateService *services.TemplateService
	UploadService   *services.UploadService
	EditorService   *services.EditorService
	RenderService   *services.RenderService
	InquiryService  *services.InquiryService
	SeedService     *services.SeedService

	// Infrastructure
	DB           *database.DB
	CacheStore   interfaces.Store
	CacheManager *manager.Manager
	CacheMonitor *monitoring.CacheMonitor
	PreviewHub   *messaging.PreviewHub
	Uploader     media.Uploader
	Scheduler    *scheduling.Scheduler

	// Observability
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer creates and wires all singleton services over db.
func NewContainer(ctx context.Context, db *database.DB, logger *logging.ChanneledLogger) (*Container, error) {
	perfTracker := performance.NewTracker(performance.DefaultTrackerConfig())
	cacheMonitor := monitoring.NewCacheMonitor()

	store, err := newCacheStore(ctx, logger)
	if err != nil {
		return nil, err
	}
	cacheManager := manager.NewManager(store, config.ContentCacheTTL, config.RenderCacheTTL, cacheMonitor, logger)

	uploader, err := media.NewFromConfig(ctx, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize uploader: %w", err)
	}

	var mailer email.Service
	if config.ResendAPIKey != "" {
		if mailer, err = email.NewService(); err != nil {
			return nil, fmt.Errorf("failed to initialize email service: %w", err)
		}
	} else {
		logger.Startup().Warn("RESEND_API_KEY not set, inquiry notifications are disabled")
	}

	scheduler, err := scheduling.NewScheduler(logger)
	if err != nil {
		return nil, err
	}

	hub := messaging.NewPreviewHub(config.PreviewPingInterval, logger)

	pageRepo := content.NewLandingPageRepository(db.DB, cacheManager, logger)
	templateRepo := content.NewComponentTemplateRepository(db.DB, logger)
	inquiryRepo := content.NewInquiryRepository(db.DB, logger)

	constraints := upload.DefaultConstraints()
	constraints.MaxBytes = config.UploadMaxBytes

	pageService := services.NewPageService(pageRepo, templateRepo, hub, perfTracker, logger)
	uploadService := services.NewUploadService(uploader, constraints, config.UploadTimeout, perfTracker, logger)
	editorService := services.NewEditorService(pageService, uploadService, config.EditorSessionTTL, logger)

	return &Container{
		PageService:     pageService,
		TemplateService: services.NewTemplateService(templateRepo, logger),
		UploadService:   uploadService,
		EditorService:   editorService,
		RenderService:   services.NewRenderService(pageService, editorService, templates.NewPageRenderer(logger), cacheManager, perfTracker, logger),
		InquiryService:  services.NewInquiryService(pageService, inquiryRepo, mailer, logger),
		SeedService:     services.NewSeedService(pageRepo, logger),

		DB:           db,
		CacheStore:   store,
		CacheManager: cacheManager,
		CacheMonitor: cacheMonitor,
		PreviewHub:   hub,
		Uploader:     uploader,
		Scheduler:    scheduler,

		Logger:      logger,
		PerfTracker: perfTracker,
	}, nil
}

func newCacheStore(ctx context.Context, logger *logging.ChanneledLogger) (interfaces.Store, error) {
	switch config.CacheBackend {
	case "", "memory":
		return stores.NewMemoryStore(config.ContentCacheTTL, 2*config.ContentCacheTTL), nil
	case "redis":
		store, err := stores.NewRedisStore(ctx, config.RedisURL, func(op string, err error) {
			logger.Cache().Warn("Redis operation failed", "op", op, "error", err.Error())
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", config.CacheBackend)
	}
}

// Close releases the cache store and scheduler. The database is owned by
// the caller.
func (c *Container) Close() error {
	var firstErr error
	if err := c.Scheduler.Shutdown(); err != nil {
		firstErr = err
	}
	if closer, ok := c.CacheStore.(io.Closer); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
