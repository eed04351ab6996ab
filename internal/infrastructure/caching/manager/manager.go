// Package manager provides the content cache over a pluggable store.
package manager

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/monitoring"
)

var _ interfaces.ContentCache = (*Manager)(nil)

var viewports = []string{"desktop", "tablet", "mobile"}

// Manager caches page entities by id, slug lookups, and rendered public
// pages per (slug, viewport).
type Manager struct {
	store     interfaces.Store
	pageTTL   time.Duration
	renderTTL time.Duration
	monitor   *monitoring.CacheMonitor
	logger    *logging.ChanneledLogger
}

func NewManager(store interfaces.Store, pageTTL, renderTTL time.Duration, monitor *monitoring.CacheMonitor, logger *logging.ChanneledLogger) *Manager {
	logger.Cache().Info("Initializing cache manager", "backend", store.Name(), "pageTTL", pageTTL, "renderTTL", renderTTL)
	return &Manager{
		store:     store,
		pageTTL:   pageTTL,
		renderTTL: renderTTL,
		monitor:   monitor,
		logger:    logger,
	}
}

func pageKey(id string) string { return "page:" + id }

func slugKey(slug string) string { return "slug:" + slug }

func renderKey(slug, viewport string) string { return "render:" + slug + ":" + viewport }

func (m *Manager) get(ctx context.Context, layer, key string) ([]byte, bool) {
	start := time.Now()
	b, ok := m.store.Get(ctx, key)
	m.monitor.Record(layer, ok, time.Since(start))
	m.logger.LogCacheOperation("get", key, ok, time.Since(start))
	return b, ok
}

func (m *Manager) GetPage(ctx context.Context, id string) (*content.LandingPage, bool) {
	b, ok := m.get(ctx, monitoring.LayerPage, pageKey(id))
	if !ok {
		return nil, false
	}
	var page content.LandingPage
	if err := json.Unmarshal(b, &page); err != nil {
		m.logger.Cache().Warn("Discarding undecodable cached page", "id", id, "error", err.Error())
		m.store.Delete(ctx, pageKey(id))
		return nil, false
	}
	return &page, true
}

func (m *Manager) SetPage(ctx context.Context, page *content.LandingPage) {
	b, err := json.Marshal(page)
	if err != nil {
		m.logger.Cache().Error("Failed to encode page for cache", "id", page.ID, "error", err.Error())
		return
	}
	m.store.Set(ctx, pageKey(page.ID), b, m.pageTTL)
	m.store.Set(ctx, slugKey(page.Slug), []byte(page.ID), m.pageTTL)
}

func (m *Manager) GetPageIDBySlug(ctx context.Context, slug string) (string, bool) {
	b, ok := m.get(ctx, monitoring.LayerSlug, slugKey(slug))
	if !ok {
		return "", false
	}
	return string(b), true
}

// InvalidatePage drops the page entity, its slug mapping, and every cached
// render of the slug.
func (m *Manager) InvalidatePage(ctx context.Context, id, slug string) {
	keys := []string{pageKey(id)}
	if slug != "" {
		keys = append(keys, slugKey(slug))
		for _, v := range viewports {
			keys = append(keys, renderKey(slug, v))
		}
	}
	m.store.Delete(ctx, keys...)
	m.logger.Cache().Debug("Invalidated page cache", "id", id, "slug", slug)
}

func (m *Manager) GetRender(ctx context.Context, slug, viewport string) ([]byte, bool) {
	return m.get(ctx, monitoring.LayerRender, renderKey(slug, viewport))
}

func (m *Manager) SetRender(ctx context.Context, slug, viewport string, html []byte) {
	m.store.Set(ctx, renderKey(slug, viewport), html, m.renderTTL)
}

func (m *Manager) InvalidateRenders(ctx context.Context, slug string) {
	keys := make([]string, 0, len(viewports))
	for _, v := range viewports {
		keys = append(keys, renderKey(slug, v))
	}
	m.store.Delete(ctx, keys...)
}

func (m *Manager) InvalidateAll(ctx context.Context) {
	m.store.Flush(ctx)
	m.logger.Cache().Info("Flushed content cache", "backend", m.store.Name())
}
