// Package templates renders complete landing pages from their component
// instances.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/templates/components"
	"github.com/tidwall/gjson"
)

var documentTmpl = template.Must(template.New("document").Parse(
	`<!DOCTYPE html><html lang="{{.Lang}}"><head><meta charset="utf-8">` +
		`<meta name="viewport" content="width=device-width, initial-scale=1">` +
		`<title>{{.Title}}</title>` +
		`{{if .Description}}<meta name="description" content="{{.Description}}">{{end}}` +
		`<meta property="og:title" content="{{.Title}}">` +
		`{{if .OGImage}}<meta property="og:image" content="{{.OGImage}}">{{end}}` +
		`{{if .Tracking}}<meta name="lp-tracking" content="{{.Tracking}}">{{end}}` +
		`{{if .Font}}<style>body { font-family: {{.Font}}; }</style>{{end}}` +
		`</head><body class="lp-page" data-page="{{.PageID}}" data-viewport="{{.Viewport}}"{{if .Primary}} style="--lp-primary: {{.Primary}}"{{end}}>` +
		`<main>{{range .Sections}}{{.}}{{end}}</main></body></html>`,
))

type documentData struct {
	Lang        string
	Title       string
	Description string
	OGImage     string
	Tracking    string
	Font        string
	Primary     string
	PageID      string
	Viewport    rendering.Viewport
	Sections    []template.HTML
}

// PageRenderer renders each component of a page in isolation and assembles
// the results into one document.
type PageRenderer struct {
	logger *logging.ChanneledLogger
}

func NewPageRenderer(logger *logging.ChanneledLogger) *PageRenderer {
	return &PageRenderer{logger: logger}
}

// RenderComponent migrates and renders one instance. A migration error, a
// render error or a panic in the component's template all degrade to the
// kind's empty state, marked Failed.
func (r *PageRenderer) RenderComponent(ci *content.ComponentInstance, rc rendering.RenderContext) (frag rendering.Fragment) {
	rc.ComponentID = ci.ID
	if rc.Now.IsZero() {
		rc.Now = time.Now()
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Content().Error("Component render panicked",
				"componentId", ci.ID, "kind", ci.Type, "pageId", rc.PageID, "panic", fmt.Sprint(rec))
			frag = components.Fallback(ci.Type, &rc)
		}
	}()

	cfg, err := ci.Migrated()
	if err != nil {
		r.logger.Content().Warn("Component config could not be migrated",
			"componentId", ci.ID, "kind", ci.Type, "error", err.Error())
		return components.Fallback(ci.Type, &rc)
	}
	frag, err = components.Render(cfg, &rc)
	if err != nil {
		r.logger.Content().Error("Component render failed",
			"componentId", ci.ID, "kind", ci.Type, "error", err.Error())
		return components.Fallback(ci.Type, &rc)
	}
	return frag
}

// RenderFragments renders every component of page in order.
func (r *PageRenderer) RenderFragments(page *content.LandingPage, rc rendering.RenderContext) []rendering.Fragment {
	rc.PageID = page.ID
	rc.Slug = page.Slug
	if rc.Now.IsZero() {
		rc.Now = time.Now()
	}

	frags := make([]rendering.Fragment, 0, len(page.Content))
	for i := range page.Content {
		frags = append(frags, r.RenderComponent(&page.Content[i], rc))
	}
	return frags
}

// RenderPage renders page as a complete HTML document. Page settings may
// carry lang, fontFamily and primaryColor.
func (r *PageRenderer) RenderPage(page *content.LandingPage, rc rendering.RenderContext) ([]byte, error) {
	start := time.Now()
	frags := r.RenderFragments(page, rc)

	sections := make([]template.HTML, len(frags))
	failed := 0
	for i, f := range frags {
		sections[i] = f.HTML
		if f.Failed {
			failed++
		}
	}

	settings := gjson.ParseBytes(page.Settings)
	title := page.MetaTitle
	if title == "" {
		title = page.Title
	}
	description := page.MetaDescription
	if description == "" {
		description = page.Description
	}
	lang := settings.Get("lang").String()
	if lang == "" {
		lang = "id"
	}
	viewport := rc.Viewport
	if viewport == "" {
		viewport = rendering.Desktop
	}

	var buf bytes.Buffer
	err := documentTmpl.Execute(&buf, documentData{
		Lang:        lang,
		Title:       title,
		Description: description,
		OGImage:     page.OGImage,
		Tracking:    page.TrackingCode,
		Font:        settings.Get("fontFamily").String(),
		Primary:     settings.Get("primaryColor").String(),
		PageID:      page.ID,
		Viewport:    viewport,
		Sections:    sections,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page document: %w", err)
	}

	r.logger.Content().Debug("Rendered landing page",
		"pageId", page.ID, "viewport", viewport, "components", len(frags), "failed", failed, "duration", time.Since(start))
	return buf.Bytes(), nil
}
