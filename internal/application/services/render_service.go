package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/templates"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/templates/components"
)

// RenderService produces public pages, admin previews and editor previews.
type RenderService struct {
	pages       *PageService
	editor      *EditorService
	renderer    *templates.PageRenderer
	cache       interfaces.ContentCache
	perfTracker *performance.Tracker
	logger      *logging.ChanneledLogger
}

func NewRenderService(
	pages *PageService,
	editor *EditorService,
	renderer *templates.PageRenderer,
	cache interfaces.ContentCache,
	perfTracker *performance.Tracker,
	logger *logging.ChanneledLogger,
) *RenderService {
	return &RenderService{
		pages:       pages,
		editor:      editor,
		renderer:    renderer,
		cache:       cache,
		perfTracker: perfTracker,
		logger:      logger,
	}
}

// RenderPublic returns the document for a live page. Renders are cached per
// slug and viewport unless a promo countdown is still running. Liveness is
// checked on every request.
func (s *RenderService) RenderPublic(ctx context.Context, slug string, viewport rendering.Viewport) ([]byte, error) {
	marker := s.perfTracker.StartOperation("render_page", slug)
	defer marker.Complete()

	page, err := s.pages.GetLive(ctx, slug)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	now := time.Now()
	cacheable := !countdownRunning(page, now)
	if cacheable {
		if html, ok := s.cache.GetRender(ctx, slug, string(viewport)); ok {
			marker.AddCacheHit()
			return html, nil
		}
	}

	html, err := s.renderer.RenderPage(page, rendering.RenderContext{Viewport: viewport, Now: now})
	if err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to render page %s: %w", slug, err)
	}
	if cacheable {
		s.cache.SetRender(ctx, slug, string(viewport), html)
	}

	marker.SetSuccess(true)
	marker.Complete()
	s.logger.Perf().Info("Performance for RenderPublic request",
		"duration", marker.Duration, "slug", slug, "viewport", viewport, "bytes", len(html))
	return html, nil
}

// countdownRunning reports whether page shows a promo timer that has not yet
// reached its deadline.
func countdownRunning(page *content.LandingPage, now time.Time) bool {
	for i := range page.Content {
		ci := &page.Content[i]
		if ci.Type != blocks.KindPromo {
			continue
		}
		cfg, err := ci.Migrated()
		if err != nil {
			continue
		}
		promo, ok := cfg.(*blocks.PromoConfig)
		if ok && blocks.Bool(promo.ShowTimer) && !components.PromoCountdown(promo.ValidUntil, now).Expired {
			return true
		}
	}
	return false
}

// Preview renders any page regardless of status, with edit affordances.
func (s *RenderService) Preview(ctx context.Context, pageID string, viewport rendering.Viewport) ([]byte, error) {
	page, err := s.pages.GetByID(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderPage(page, rendering.RenderContext{Viewport: viewport, Editable: true, Now: time.Now()})
}

// PreviewFragments renders each component of a page separately.
func (s *RenderService) PreviewFragments(ctx context.Context, pageID string, viewport rendering.Viewport) ([]rendering.Fragment, error) {
	page, err := s.pages.GetByID(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderFragments(page, rendering.RenderContext{Viewport: viewport, Editable: true, Now: time.Now()}), nil
}

// PreviewSession renders an editor session's working copy. The stored config
// is not read.
func (s *RenderService) PreviewSession(sessionID string, viewport rendering.Viewport) (rendering.Fragment, error) {
	sess, cfg, err := s.editor.Working(sessionID)
	if err != nil {
		return rendering.Fragment{}, err
	}
	rc := &rendering.RenderContext{
		PageID:      sess.PageID,
		ComponentID: sess.ComponentID,
		Viewport:    viewport,
		Editable:    true,
		Now:         time.Now(),
	}
	frag, err := components.Render(cfg, rc)
	if err != nil {
		s.logger.Editor().Warn("Session preview failed", "sessionId", sessionID, "error", err.Error())
		return components.Fallback(sess.Kind, rc), nil
	}
	return frag, nil
}
