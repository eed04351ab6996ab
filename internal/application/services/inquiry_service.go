package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/email"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/asaskevich/govalidator"
)

// Submission is a public form post.
type Submission struct {
	ComponentID string            `json:"componentId"`
	Fields      map[string]string `json:"fields" binding:"required"`
	Source      string            `json:"source"`
}

// InquiryService accepts form submissions from live pages.
type InquiryService struct {
	pages  *PageService
	repo   repositories.InquiryRepository
	mailer email.Service
	logger *logging.ChanneledLogger
	now    func() time.Time
}

// NewInquiryService wires the service. mailer may be nil, in which case no
// notifications are sent.
func NewInquiryService(pages *PageService, repo repositories.InquiryRepository, mailer email.Service, logger *logging.ChanneledLogger) *InquiryService {
	return &InquiryService{pages: pages, repo: repo, mailer: mailer, logger: logger, now: time.Now}
}

// Submit validates sub against the page's form component and stores it.
func (s *InquiryService) Submit(ctx context.Context, slug string, sub Submission) (*content.Inquiry, *blocks.FormConfig, error) {
	page, err := s.pages.GetLive(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	ci, form, err := formComponent(page, sub.ComponentID)
	if err != nil {
		return nil, nil, err
	}
	if err := checkSubmission(form, sub.Fields); err != nil {
		return nil, nil, err
	}

	inquiry := &content.Inquiry{
		ID:            security.GenerateUUID(),
		LandingPageID: page.ID,
		ComponentID:   ci.ID,
		Fields:        map[string]string{},
		Source:        strings.TrimSpace(sub.Source),
		CreatedAt:     s.now().UTC(),
	}
	for name, value := range sub.Fields {
		value = strings.TrimSpace(value)
		switch name {
		case "name":
			inquiry.Name = value
		case "email":
			inquiry.Email = value
		case "phone":
			inquiry.Phone = value
		case "message":
			inquiry.Message = value
		default:
			if _, declared := form.Field(name); declared && value != "" {
				inquiry.Fields[name] = value
			}
		}
	}
	if inquiry.Source == "" {
		inquiry.Source = page.CampaignSource
	}

	if err := s.repo.Store(ctx, inquiry); err != nil {
		return nil, nil, fmt.Errorf("failed to store inquiry for page %s: %w", page.ID, err)
	}
	s.logger.Inquiry().Info("Inquiry received", "pageId", page.ID, "componentId", ci.ID, "inquiryId", inquiry.ID)

	if form.NotifyEmail != "" && s.mailer != nil {
		go s.notify(form.NotifyEmail, page, inquiry)
	}
	return inquiry, form, nil
}

func (s *InquiryService) notify(to string, page *content.LandingPage, inquiry *content.Inquiry) {
	if err := s.mailer.SendInquiryNotification(to, page, inquiry); err != nil {
		s.logger.Inquiry().Error("Inquiry notification failed", "inquiryId", inquiry.ID, "error", err.Error())
		return
	}
	s.logger.Inquiry().Debug("Inquiry notification sent", "inquiryId", inquiry.ID)
}

// ListByPage returns a page's inquiries, newest first.
func (s *InquiryService) ListByPage(ctx context.Context, pageID string, limit, offset int) ([]*content.Inquiry, error) {
	if _, err := s.pages.GetByID(ctx, pageID); err != nil {
		return nil, err
	}
	inquiries, err := s.repo.ListByPage(ctx, pageID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries for page %s: %w", pageID, err)
	}
	return inquiries, nil
}

// formComponent finds the form the submission targets: the named component,
// or the page's first form when none is named.
func formComponent(page *content.LandingPage, componentID string) (*content.ComponentInstance, *blocks.FormConfig, error) {
	var ci *content.ComponentInstance
	if componentID != "" {
		ci = page.Component(componentID)
	} else {
		for i := range page.Content {
			if page.Content[i].Type == blocks.KindForm {
				ci = &page.Content[i]
				break
			}
		}
	}
	if ci == nil || ci.Type != blocks.KindForm {
		return nil, nil, invalid("page has no such form", "componentId", componentID)
	}
	cfg, err := ci.Migrated()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read form %s: %w", ci.ID, err)
	}
	return ci, cfg.(*blocks.FormConfig), nil
}

func checkSubmission(form *blocks.FormConfig, fields map[string]string) error {
	var missing, malformed []string
	for _, f := range form.Fields {
		value := strings.TrimSpace(fields[f.Name])
		if value == "" {
			if f.Required {
				missing = append(missing, f.Name)
			}
			continue
		}
		if f.Type == "email" && !govalidator.IsEmail(value) {
			malformed = append(malformed, f.Name)
		}
	}
	if len(missing) == 0 && len(malformed) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(malformed)
	return invalid("form submission rejected", "missing", missing, "malformed", malformed)
}
