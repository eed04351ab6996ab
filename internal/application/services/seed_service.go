package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"gopkg.in/yaml.v3"
)

// SeedFile is the import format. Component configs are stored exactly as
// written, legacy field names included; they are migrated when first read.
type SeedFile struct {
	Pages []SeedPage `yaml:"pages"`
}

type SeedPage struct {
	ID              string          `yaml:"id"`
	Title           string          `yaml:"title"`
	Slug            string          `yaml:"slug"`
	Description     string          `yaml:"description"`
	MetaTitle       string          `yaml:"metaTitle"`
	MetaDescription string          `yaml:"metaDescription"`
	OGImage         string          `yaml:"ogImage"`
	Status          string          `yaml:"status"`
	TemplateType    string          `yaml:"templateType"`
	TargetAudience  string          `yaml:"targetAudience"`
	CampaignSource  string          `yaml:"campaignSource"`
	TrackingCode    string          `yaml:"trackingCode"`
	Settings        map[string]any  `yaml:"settings"`
	ExpiresAt       *time.Time      `yaml:"expiresAt"`
	Components      []SeedComponent `yaml:"components"`
}

type SeedComponent struct {
	ID     string         `yaml:"id"`
	Type   string         `yaml:"type"`
	Config map[string]any `yaml:"config"`
}

// SeedResult counts what an import did.
type SeedResult struct {
	Pages      int      `json:"pages"`
	Components int      `json:"components"`
	Skipped    []string `json:"skipped,omitempty"`
}

// SeedService imports pages straight into storage.
type SeedService struct {
	repo   repositories.LandingPageRepository
	logger *logging.ChanneledLogger
	now    func() time.Time
}

func NewSeedService(repo repositories.LandingPageRepository, logger *logging.ChanneledLogger) *SeedService {
	return &SeedService{repo: repo, logger: logger, now: time.Now}
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	var f SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Import stores every page in f. Pages whose slug already exists are skipped
// and reported.
func (s *SeedService) Import(ctx context.Context, f *SeedFile, createdBy string) (*SeedResult, error) {
	result := &SeedResult{}
	for i := range f.Pages {
		page, err := s.build(&f.Pages[i], createdBy)
		if err != nil {
			return result, fmt.Errorf("seed page %d: %w", i, err)
		}
		if err := s.repo.Store(ctx, page); err != nil {
			if errors.Is(err, repositories.ErrConflict) {
				s.logger.Content().Warn("Seed page skipped, slug exists", "slug", page.Slug)
				result.Skipped = append(result.Skipped, page.Slug)
				continue
			}
			return result, fmt.Errorf("failed to seed page %s: %w", page.Slug, err)
		}
		result.Pages++
		result.Components += len(page.Content)
	}
	s.logger.Content().Info("Seed import completed",
		"pages", result.Pages, "components", result.Components, "skipped", len(result.Skipped))
	return result, nil
}

func (s *SeedService) build(sp *SeedPage, createdBy string) (*content.LandingPage, error) {
	now := s.now().UTC()
	slug := sp.Slug
	if slug == "" {
		slug = Slugify(sp.Title)
	}
	if sp.Title == "" || !slugPattern.MatchString(slug) {
		return nil, invalid("seed page needs a title and a valid slug", "slug", slug)
	}
	status := content.PageStatus(sp.Status)
	if status == "" {
		status = content.StatusDraft
	}
	if !status.Valid() {
		return nil, invalid("unknown page status", "status", sp.Status)
	}

	page := &content.LandingPage{
		ID:              sp.ID,
		Title:           sp.Title,
		Slug:            slug,
		Description:     sp.Description,
		MetaTitle:       sp.MetaTitle,
		MetaDescription: sp.MetaDescription,
		OGImage:         sp.OGImage,
		Status:          status,
		TemplateType:    sp.TemplateType,
		TargetAudience:  sp.TargetAudience,
		CampaignSource:  sp.CampaignSource,
		TrackingCode:    sp.TrackingCode,
		ExpiresAt:       sp.ExpiresAt,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if page.ID == "" {
		page.ID = security.GenerateUUID()
	}
	if status == content.StatusPublished {
		page.PublishedAt = &now
	}
	if sp.Settings != nil {
		raw, err := json.Marshal(sp.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to encode settings: %w", err)
		}
		page.Settings = raw
	}

	for i, sc := range sp.Components {
		if _, err := blocks.ParseKind(sc.Type); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		raw := json.RawMessage(`{}`)
		if sc.Config != nil {
			b, err := json.Marshal(sc.Config)
			if err != nil {
				return nil, fmt.Errorf("failed to encode component %d config: %w", i, err)
			}
			raw = b
		}
		id := sc.ID
		if id == "" {
			id = security.GenerateULID()
		}
		page.Content = append(page.Content, content.ComponentInstance{
			ID:        id,
			Type:      blocks.Kind(sc.Type),
			Config:    raw,
			Order:     i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return page, nil
}
