// Package rendering provides domain entities for HTML rendering operations
package rendering

import (
	"html/template"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
)

// Viewport is the layout class a component is rendered for.
type Viewport string

const (
	Desktop Viewport = "desktop"
	Tablet  Viewport = "tablet"
	Mobile  Viewport = "mobile"
)

// ParseViewport maps a query value onto a viewport, defaulting to desktop.
func ParseViewport(s string) Viewport {
	switch Viewport(strings.ToLower(strings.TrimSpace(s))) {
	case Tablet:
		return Tablet
	case Mobile:
		return Mobile
	default:
		return Desktop
	}
}

// Pick returns the value for v.
func (v Viewport) Pick(desktop, tablet, mobile int) int {
	switch v {
	case Mobile:
		return mobile
	case Tablet:
		return tablet
	default:
		return desktop
	}
}

// RenderContext provides the context for HTML rendering operations
type RenderContext struct {
	PageID      string    `json:"pageId,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	ComponentID string    `json:"componentId,omitempty"`
	Viewport    Viewport  `json:"viewport"`
	Editable    bool      `json:"editable"`
	Now         time.Time `json:"now"`
}

// Fragment is the output of rendering one component: markup plus the layout
// decisions made for it.
type Fragment struct {
	ComponentID  string        `json:"componentId"`
	Kind         blocks.Kind   `json:"kind"`
	HTML         template.HTML `json:"html"`
	Columns      int           `json:"columns,omitempty"`
	Items        int           `json:"items"`
	Empty        bool          `json:"empty"`
	EmptyMessage string        `json:"emptyMessage,omitempty"`
	Layout       string        `json:"layout,omitempty"`
	Image        string        `json:"image,omitempty"`
	Failed       bool          `json:"failed,omitempty"`
}
