package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/asaskevich/govalidator"
	"github.com/iancoleman/strcase"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// PageInput carries page fields from the admin API. Nil pointers leave the
// stored value unchanged on update.
type PageInput struct {
	Title           *string          `json:"title"`
	Slug            *string          `json:"slug"`
	Description     *string          `json:"description"`
	MetaTitle       *string          `json:"metaTitle"`
	MetaDescription *string          `json:"metaDescription"`
	OGImage         *string          `json:"ogImage"`
	Status          *string          `json:"status"`
	TemplateType    *string          `json:"templateType"`
	TargetAudience  *string          `json:"targetAudience"`
	CampaignSource  *string          `json:"campaignSource"`
	TrackingCode    *string          `json:"trackingCode"`
	Settings        *json.RawMessage `json:"settings"`
	ExpiresAt       *time.Time       `json:"expiresAt"`
	ClearExpiry     bool             `json:"clearExpiry"`
}

// PageService orchestrates landing page operations with cache-first repository pattern
type PageService struct {
	pageRepo     repositories.LandingPageRepository
	templateRepo repositories.ComponentTemplateRepository
	publisher    messaging.Publisher
	perfTracker  *performance.Tracker
	logger       *logging.ChanneledLogger
	now          func() time.Time
}

func NewPageService(
	pageRepo repositories.LandingPageRepository,
	templateRepo repositories.ComponentTemplateRepository,
	publisher messaging.Publisher,
	perfTracker *performance.Tracker,
	logger *logging.ChanneledLogger,
) *PageService {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &PageService{
		pageRepo:     pageRepo,
		templateRepo: templateRepo,
		publisher:    publisher,
		perfTracker:  perfTracker,
		logger:       logger,
		now:          time.Now,
	}
}

// List returns a page of results and the total matching count.
func (s *PageService) List(ctx context.Context, filter content.PageFilter) ([]*content.LandingPage, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, invalid("unknown status", "status", filter.Status)
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	pages, err := s.pageRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pages: %w", err)
	}
	total, err := s.pageRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return pages, total, nil
}

// GetByID returns a page by ID (cache-first)
func (s *PageService) GetByID(ctx context.Context, id string) (*content.LandingPage, error) {
	if id == "" {
		return nil, invalid("page ID cannot be empty")
	}
	page, err := s.pageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", id, err)
	}
	return page, nil
}

// GetLive returns the page at slug only when the public may see it.
func (s *PageService) GetLive(ctx context.Context, slug string) (*content.LandingPage, error) {
	page, err := s.pageRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", slug, err)
	}
	if !page.Live(s.now()) {
		return nil, fmt.Errorf("page %s: %w", slug, ErrNotLive)
	}
	return page, nil
}

// Create stores a new draft page. A missing slug is derived from the title.
func (s *PageService) Create(ctx context.Context, in PageInput, createdBy string) (*content.LandingPage, error) {
	marker := s.perfTracker.StartOperation("create_page", createdBy)
	defer marker.Complete()

	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, invalid("title is required")
	}
	now := s.now().UTC()
	page := &content.LandingPage{
		ID:        security.GenerateUUID(),
		Status:    content.StatusDraft,
		Content:   []content.ComponentInstance{},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Slug == nil || strings.TrimSpace(*in.Slug) == "" {
		slug := Slugify(*in.Title)
		in.Slug = &slug
	}
	if err := applyPageInput(page, in); err != nil {
		marker.SetError(err)
		return nil, err
	}
	if page.Status == content.StatusPublished {
		page.PublishedAt = &now
	}

	if err := s.pageRepo.Store(ctx, page); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	marker.SetSuccess(true)
	s.logger.Content().Info("Page created", "id", page.ID, "slug", page.Slug, "createdBy", createdBy)
	return page, nil
}

// Update applies in to the stored page.
func (s *PageService) Update(ctx context.Context, id string, in PageInput) (*content.LandingPage, error) {
	page, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *page
	wasPublished := page.Status == content.StatusPublished
	if err := applyPageInput(&updated, in); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if updated.Status == content.StatusPublished && !wasPublished {
		updated.PublishedAt = &now
	}
	updated.UpdatedAt = now

	if err := s.pageRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update page %s: %w", id, err)
	}
	s.publisher.Publish(messaging.PreviewEvent{Type: messaging.EventPageUpdated, PageID: id})
	s.logger.Content().Info("Page updated", "id", id, "status", updated.Status)
	return &updated, nil
}

// Publish makes the page live.
func (s *PageService) Publish(ctx context.Context, id string) (*content.LandingPage, error) {
	status := string(content.StatusPublished)
	return s.Update(ctx, id, PageInput{Status: &status})
}

// Archive takes the page offline.
func (s *PageService) Archive(ctx context.Context, id string) (*content.LandingPage, error) {
	status := string(content.StatusArchived)
	return s.Update(ctx, id, PageInput{Status: &status})
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("page ID cannot be empty")
	}
	if err := s.pageRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete page %s: %w", id, err)
	}
	s.logger.Content().Info("Page deleted", "id", id)
	return nil
}

// Clone copies a page and its components into a new draft. Component
// configs are copied as stored.
func (s *PageService) Clone(ctx context.Context, id, slug, createdBy string) (*content.LandingPage, error) {
	src, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slug == "" {
		slug = src.Slug + "-copy"
	}
	if !slugPattern.MatchString(slug) {
		return nil, invalid("slug must be lowercase words separated by hyphens", "slug", slug)
	}

	now := s.now().UTC()
	clone := *src
	clone.ID = security.GenerateUUID()
	clone.Slug = slug
	clone.Title = src.Title + " (Copy)"
	clone.Status = content.StatusDraft
	clone.PublishedAt = nil
	clone.CreatedBy = createdBy
	clone.CreatedAt = now
	clone.UpdatedAt = now
	clone.Content = make([]content.ComponentInstance, len(src.Content))
	for i, c := range src.Content {
		clone.Content[i] = content.ComponentInstance{
			ID:        strings.ToLower(security.GenerateULID()),
			Type:      c.Type,
			Config:    append(json.RawMessage(nil), c.Config...),
			Order:     i,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	if err := s.pageRepo.Store(ctx, &clone); err != nil {
		return nil, fmt.Errorf("failed to clone page %s: %w", id, err)
	}
	s.logger.Content().Info("Page cloned", "sourceId", id, "id", clone.ID, "slug", clone.Slug)
	return &clone, nil
}

// AddComponent appends a new component of kind. Its config comes from the
// template when templateID is set, otherwise from the kind's defaults.
func (s *PageService) AddComponent(ctx context.Context, pageID string, kind blocks.Kind, templateID string) (*content.ComponentInstance, error) {
	if !kind.Valid() {
		return nil, invalid("unknown component type", "type", kind)
	}

	var raw json.RawMessage
	if templateID != "" {
		tpl, err := s.templateRepo.FindByID(ctx, templateID)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", templateID, err)
		}
		if tpl.Type != kind {
			return nil, invalid("template is for a different component type", "template", tpl.Type, "type", kind)
		}
		raw = append(json.RawMessage(nil), tpl.Config...)
	} else {
		cfg, err := blocks.New(kind)
		if err != nil {
			return nil, err
		}
		if raw, err = blocks.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode defaults for %s: %w", kind, err)
		}
	}

	now := s.now().UTC()
	component := &content.ComponentInstance{
		ID:        strings.ToLower(security.GenerateULID()),
		Type:      kind,
		Config:    raw,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.pageRepo.AddComponent(ctx, pageID, component); err != nil {
		return nil, fmt.Errorf("failed to add component to page %s: %w", pageID, err)
	}
	s.publisher.Publish(messaging.PreviewEvent{
		Type: messaging.EventComponentAdded, PageID: pageID, ComponentID: component.ID, Kind: string(kind), Config: raw,
	})
	s.logger.Content().Info("Component added", "pageId", pageID, "componentId", component.ID, "type", kind)
	return component, nil
}

func (s *PageService) RemoveComponent(ctx context.Context, pageID, componentID string) error {
	if err := s.pageRepo.RemoveComponent(ctx, pageID, componentID); err != nil {
		return fmt.Errorf("failed to remove component %s: %w", componentID, err)
	}
	s.publisher.Publish(messaging.PreviewEvent{Type: messaging.EventComponentRemoved, PageID: pageID, ComponentID: componentID})
	return nil
}

// Component returns one instance of a page.
func (s *PageService) Component(ctx context.Context, pageID, componentID string) (*content.LandingPage, *content.ComponentInstance, error) {
	page, err := s.GetByID(ctx, pageID)
	if err != nil {
		return nil, nil, err
	}
	c := page.Component(componentID)
	if c == nil {
		return nil, nil, fmt.Errorf("component %s: %w", componentID, repositories.ErrNotFound)
	}
	return page, c, nil
}

// ReplaceComponentConfig is the editor's write-back. It is the only path
// that changes a stored config.
func (s *PageService) ReplaceComponentConfig(ctx context.Context, pageID, componentID string, raw json.RawMessage) error {
	marker := s.perfTracker.StartOperation("save_component", componentID)
	defer marker.Complete()

	if err := s.pageRepo.ReplaceComponentConfig(ctx, pageID, componentID, raw); err != nil {
		marker.SetError(err)
		return fmt.Errorf("failed to save component %s: %w", componentID, err)
	}
	marker.SetSuccess(true)
	marker.Complete()

	s.publisher.Publish(messaging.PreviewEvent{
		Type: messaging.EventComponentUpdated, PageID: pageID, ComponentID: componentID, Config: raw,
	})
	s.logger.Perf().Info("Performance for ReplaceComponentConfig request",
		"duration", marker.Duration, "pageId", pageID, "componentId", componentID, "success", true)
	return nil
}

// ArchiveExpired archives every published page whose expiry has passed and
// returns how many were archived.
func (s *PageService) ArchiveExpired(ctx context.Context) (int, error) {
	now := s.now()
	expired, err := s.pageRepo.FindExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired pages: %w", err)
	}
	archived := 0
	for _, page := range expired {
		if _, err := s.Archive(ctx, page.ID); err != nil {
			s.logger.Content().Error("Failed to archive expired page", "id", page.ID, "error", err.Error())
			continue
		}
		archived++
		s.logger.Content().Info("Archived expired page", "id", page.ID, "slug", page.Slug, "expiresAt", page.ExpiresAt)
	}
	return archived, nil
}

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strcase.ToKebab(title)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "page-" + strings.ToLower(security.GenerateULID()[20:])
	}
	return slug
}

func applyPageInput(p *content.LandingPage, in PageInput) error {
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return invalid("title cannot be empty")
		}
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Slug != nil {
		slug := strings.TrimSpace(*in.Slug)
		if !slugPattern.MatchString(slug) {
			return invalid("slug must be lowercase words separated by hyphens", "slug", slug)
		}
		p.Slug = slug
	}
	setString(&p.Description, in.Description)
	setString(&p.MetaTitle, in.MetaTitle)
	setString(&p.MetaDescription, in.MetaDescription)
	setString(&p.TemplateType, in.TemplateType)
	setString(&p.TargetAudience, in.TargetAudience)
	setString(&p.CampaignSource, in.CampaignSource)
	setString(&p.TrackingCode, in.TrackingCode)
	if in.OGImage != nil {
		img := strings.TrimSpace(*in.OGImage)
		if blocks.IsTransient(img) {
			return invalid("og image must be an uploaded image, not inline data")
		}
		if strings.HasPrefix(img, "http") && !govalidator.IsURL(img) {
			return invalid("og image is not a valid URL", "ogImage", img)
		}
		p.OGImage = img
	}
	if in.Status != nil {
		status := content.PageStatus(*in.Status)
		if !status.Valid() {
			return invalid("unknown status", "status", *in.Status)
		}
		p.Status = status
	}
	if in.Settings != nil {
		if !json.Valid(*in.Settings) {
			return invalid("settings must be valid JSON")
		}
		p.Settings = append(json.RawMessage(nil), (*in.Settings)...)
	}
	if in.ClearExpiry {
		p.ExpiresAt = nil
	} else if in.ExpiresAt != nil {
		at := in.ExpiresAt.UTC()
		p.ExpiresAt = &at
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
