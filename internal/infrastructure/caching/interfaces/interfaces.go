// Package interfaces defines cache operation contracts for landing page
// content.
package interfaces

import (
	"context"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
)

// Store is a byte-oriented key/value cache with per-entry TTL. Backends are
// the in-process go-cache store and the shared redis store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
	Name() string
}

// ContentCache defines operations for content caching
type ContentCache interface {
	GetPage(ctx context.Context, id string) (*content.LandingPage, bool)
	SetPage(ctx context.Context, page *content.LandingPage)
	GetPageIDBySlug(ctx context.Context, slug string) (string, bool)
	InvalidatePage(ctx context.Context, id, slug string)

	GetRender(ctx context.Context, slug, viewport string) ([]byte, bool)
	SetRender(ctx context.Context, slug, viewport string, html []byte)
	InvalidateRenders(ctx context.Context, slug string)

	InvalidateAll(ctx context.Context)
}
