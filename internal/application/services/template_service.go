package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/iancoleman/strcase"
)

// TemplateInput carries component template fields from the admin API.
type TemplateInput struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Config       json.RawMessage `json:"config"`
	PreviewImage string          `json:"previewImage"`
}

// TemplateService manages reusable component presets. Template configs are
// normalised through the migrator and validated before they are stored, so
// a component created from a template starts schema-shaped.
type TemplateService struct {
	repo   repositories.ComponentTemplateRepository
	logger *logging.ChanneledLogger
	now    func() time.Time
}

func NewTemplateService(repo repositories.ComponentTemplateRepository, logger *logging.ChanneledLogger) *TemplateService {
	return &TemplateService{repo: repo, logger: logger, now: time.Now}
}

func (s *TemplateService) List(ctx context.Context, kind string) ([]*content.ComponentTemplate, error) {
	if kind != "" {
		k, err := blocks.ParseKind(kind)
		if err != nil {
			return nil, invalid("unknown component type", "type", kind)
		}
		kind = string(k)
	}
	templates, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (s *TemplateService) GetByID(ctx context.Context, id string) (*content.ComponentTemplate, error) {
	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", id, err)
	}
	return tpl, nil
}

func (s *TemplateService) Create(ctx context.Context, in TemplateInput, createdBy string) (*content.ComponentTemplate, error) {
	kind, raw, err := normaliseTemplate(in)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	tpl := &content.ComponentTemplate{
		ID:           security.GenerateUUID(),
		Name:         strings.TrimSpace(in.Name),
		Type:         kind,
		Config:       raw,
		PreviewImage: in.PreviewImage,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Store(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	s.logger.Content().Info("Template created", "id", tpl.ID, "type", kind)
	return tpl, nil
}

func (s *TemplateService) Update(ctx context.Context, id string, in TemplateInput) (*content.ComponentTemplate, error) {
	tpl, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl.IsSystem {
		return nil, fmt.Errorf("template %s: %w", id, ErrProtected)
	}
	kind, raw, err := normaliseTemplate(in)
	if err != nil {
		return nil, err
	}
	tpl.Name = strings.TrimSpace(in.Name)
	tpl.Type = kind
	tpl.Config = raw
	tpl.PreviewImage = in.PreviewImage
	tpl.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to update template %s: %w", id, err)
	}
	return tpl, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	tpl, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tpl.IsSystem {
		return fmt.Errorf("template %s: %w", id, ErrProtected)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}
	s.logger.Content().Info("Template deleted", "id", id)
	return nil
}

// EnsureSystemTemplates stores a defaults-only system template for every
// kind that has none yet.
func (s *TemplateService) EnsureSystemTemplates(ctx context.Context) (int, error) {
	existing, err := s.repo.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to list templates: %w", err)
	}
	have := make(map[blocks.Kind]bool)
	for _, t := range existing {
		if t.IsSystem {
			have[t.Type] = true
		}
	}

	created := 0
	now := s.now().UTC()
	for _, kind := range blocks.Kinds() {
		if have[kind] {
			continue
		}
		cfg, err := blocks.New(kind)
		if err != nil {
			return created, err
		}
		raw, err := blocks.Encode(cfg)
		if err != nil {
			return created, err
		}
		tpl := &content.ComponentTemplate{
			ID:        security.GenerateUUID(),
			Name:      kindLabel(kind) + " (Default)",
			Type:      kind,
			Config:    raw,
			IsSystem:  true,
			CreatedBy: "system",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Store(ctx, tpl); err != nil {
			return created, fmt.Errorf("failed to store system template %s: %w", kind, err)
		}
		created++
	}
	if created > 0 {
		s.logger.Content().Info("System templates created", "count", created)
	}
	return created, nil
}

func normaliseTemplate(in TemplateInput) (blocks.Kind, json.RawMessage, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", nil, invalid("name is required")
	}
	kind, err := blocks.ParseKind(in.Type)
	if err != nil {
		return "", nil, invalid("unknown component type", "type", in.Type)
	}
	cfg, err := blocks.Migrate(kind, in.Config)
	if err != nil {
		return "", nil, err
	}
	if err := blocks.Validate(cfg); err != nil {
		return "", nil, err
	}
	raw, err := blocks.Encode(cfg)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode template config: %w", err)
	}
	return kind, raw, nil
}

// kindLabel turns "unit-slider" into "Unit Slider".
func kindLabel(kind blocks.Kind) string {
	if kind == blocks.KindFAQ || kind == blocks.KindCTA {
		return strings.ToUpper(string(kind))
	}
	words := strings.Split(string(kind), "-")
	for i, w := range words {
		words[i] = strcase.ToCamel(w)
	}
	return strings.Join(words, " ")
}
