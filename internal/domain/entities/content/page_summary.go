package content

import "time"

// PageSummary is the row shape of the dashboard page list. It omits
// component configs.
type PageSummary struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Status         PageStatus `json:"status"`
	CampaignSource string     `json:"campaignSource,omitempty"`
	Components     int        `json:"components"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Summary derives the list row for p.
func (p *LandingPage) Summary() PageSummary {
	return PageSummary{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Status:         p.Status,
		CampaignSource: p.CampaignSource,
		Components:     len(p.Content),
		PublishedAt:    p.PublishedAt,
		ExpiresAt:      p.ExpiresAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
