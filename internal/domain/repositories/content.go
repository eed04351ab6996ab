// Package repositories defines the repository interfaces for landing page
// entities. These repositories abstract the data persistence details, ensuring
// the core application is clean and decoupled from the database.
package repositories

import (
	"context"
	"encoding/json"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
)

// ErrNotFound is returned when a lookup matches nothing.
const ErrNotFound = errors.Sentinel("not found")

// ErrConflict is returned when a unique constraint such as a page slug is
// violated.
const ErrConflict = errors.Sentinel("conflict")

type LandingPageRepository interface {
	FindByID(ctx context.Context, id string) (*content.LandingPage, error)
	FindBySlug(ctx context.Context, slug string) (*content.LandingPage, error)
	List(ctx context.Context, filter content.PageFilter) ([]*content.LandingPage, error)
	Count(ctx context.Context, filter content.PageFilter) (int, error)
	FindExpired(ctx context.Context, now time.Time) ([]*content.LandingPage, error)
	Store(ctx context.Context, page *content.LandingPage) error
	Update(ctx context.Context, page *content.LandingPage) error
	Delete(ctx context.Context, id string) error

	AddComponent(ctx context.Context, pageID string, component *content.ComponentInstance) error
	RemoveComponent(ctx context.Context, pageID, componentID string) error
	ReplaceComponentConfig(ctx context.Context, pageID, componentID string, config json.RawMessage) error
}

type ComponentTemplateRepository interface {
	FindByID(ctx context.Context, id string) (*content.ComponentTemplate, error)
	List(ctx context.Context, kind string) ([]*content.ComponentTemplate, error)
	Store(ctx context.Context, tpl *content.ComponentTemplate) error
	Update(ctx context.Context, tpl *content.ComponentTemplate) error
	Delete(ctx context.Context, id string) error
}

type InquiryRepository interface {
	Store(ctx context.Context, inquiry *content.Inquiry) error
	ListByPage(ctx context.Context, pageID string, limit, offset int) ([]*content.Inquiry, error)
}
