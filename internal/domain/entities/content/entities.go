// Package content defines the landing page domain entities.
package content

import (
	"encoding/json"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
)

// PageStatus is the publication state of a landing page.
type PageStatus string

const (
	StatusDraft     PageStatus = "draft"
	StatusPublished PageStatus = "published"
	StatusArchived  PageStatus = "archived"
)

// Valid reports whether s is a known status.
func (s PageStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ComponentInstance is one placed component. Config is stored opaque and
// only becomes a typed blocks.Config when read through blocks.Migrate.
type ComponentInstance struct {
	ID        string          `json:"id"`
	Type      blocks.Kind     `json:"type"`
	Config    json.RawMessage `json:"config"`
	Order     int             `json:"order"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Migrated decodes the stored config into its current schema shape.
func (c *ComponentInstance) Migrated() (blocks.Config, error) {
	return blocks.Migrate(c.Type, c.Config)
}

type LandingPage struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Slug            string              `json:"slug"`
	Description     string              `json:"description,omitempty"`
	Content         []ComponentInstance `json:"content"`
	MetaTitle       string              `json:"metaTitle,omitempty"`
	MetaDescription string              `json:"metaDescription,omitempty"`
	OGImage         string              `json:"ogImage,omitempty"`
	Status          PageStatus          `json:"status"`
	TemplateType    string              `json:"templateType,omitempty"`
	TargetAudience  string              `json:"targetAudience,omitempty"`
	CampaignSource  string              `json:"campaignSource,omitempty"`
	TrackingCode    string              `json:"trackingCode,omitempty"`
	Settings        json.RawMessage     `json:"settings,omitempty"`
	PublishedAt     *time.Time          `json:"publishedAt,omitempty"`
	ExpiresAt       *time.Time          `json:"expiresAt,omitempty"`
	CreatedBy       string              `json:"createdBy,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// Component returns the instance with id, or nil.
func (p *LandingPage) Component(id string) *ComponentInstance {
	for i := range p.Content {
		if p.Content[i].ID == id {
			return &p.Content[i]
		}
	}
	return nil
}

// Expired reports whether the page has an expiry at or before now.
func (p *LandingPage) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && !p.ExpiresAt.After(now)
}

// Live reports whether the public site may serve the page.
func (p *LandingPage) Live(now time.Time) bool {
	return p.Status == StatusPublished && !p.Expired(now)
}

// PageFilter narrows page listings. Zero values mean no constraint.
type PageFilter struct {
	Status         PageStatus
	CampaignSource string
	CreatedBy      string
	Search         string
	Limit          int
	Offset         int
}

// ComponentTemplate is a reusable preset config for one kind.
type ComponentTemplate struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         blocks.Kind     `json:"type"`
	Config       json.RawMessage `json:"config"`
	PreviewImage string          `json:"previewImage,omitempty"`
	IsSystem     bool            `json:"isSystem"`
	CreatedBy    string          `json:"createdBy,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Inquiry is a stored form submission from a public page.
type Inquiry struct {
	ID            string            `json:"id"`
	LandingPageID string            `json:"landingPageId"`
	ComponentID   string            `json:"componentId,omitempty"`
	Name          string            `json:"name"`
	Email         string            `json:"email,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Message       string            `json:"message,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Source        string            `json:"source,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}
