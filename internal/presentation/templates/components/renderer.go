// Package components renders migrated component configs to HTML for both the
// editor preview and public pages.
package components

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	mdhtml "github.com/yuin/goldmark/renderer/html"
)

type renderFunc func(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error)

var renderers map[blocks.Kind]renderFunc

func init() {
	renderers = map[blocks.Kind]renderFunc{
		blocks.KindHero:           renderHero,
		blocks.KindCTA:            renderCTA,
		blocks.KindContent:        renderContent,
		blocks.KindForm:           renderForm,
		blocks.KindGallery:        renderGallery,
		blocks.KindPricing:        renderPricing,
		blocks.KindFAQ:            renderFAQ,
		blocks.KindStatistics:     renderStatistics,
		blocks.KindVideo:          renderVideo,
		blocks.KindTimeline:       renderTimeline,
		blocks.KindLocation:       renderLocation,
		blocks.KindFooter:         renderFooter,
		blocks.KindPromo:          renderPromo,
		blocks.KindUnitSlider:     renderUnitSlider,
		blocks.KindProgressSlider: renderProgressSlider,
		blocks.KindCustomImage:    renderCustomImage,
		blocks.KindAgentContact:   renderAgentContact,

		blocks.KindFeatures:         renderFeatures,
		blocks.KindTestimonial:      renderTestimonial,
		blocks.KindCopyright:        renderCopyright,
		blocks.KindFacilities:       renderFacilities,
		blocks.KindBankPartnership:  renderBankPartnership,
		blocks.KindTitleDescription: renderTitleDescription,
		blocks.KindLocationAccess:   renderLocationAccess,
	}
}

// Render renders one component. It reads cfg and never writes to it.
func Render(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	var local rendering.RenderContext
	if rc != nil {
		local = *rc
	}
	if local.Viewport == "" {
		local.Viewport = rendering.Desktop
	}
	if local.Now.IsZero() {
		local.Now = time.Now()
	}
	rc = &local

	fn, ok := renderers[cfg.Kind()]
	if !ok {
		return rendering.Fragment{}, fmt.Errorf("no renderer for kind %q", cfg.Kind())
	}
	frag, err := fn(cfg, rc)
	if err != nil {
		return rendering.Fragment{}, fmt.Errorf("render %s: %w", cfg.Kind(), err)
	}
	frag.ComponentID = rc.ComponentID
	frag.Kind = cfg.Kind()
	return frag, nil
}

// EmptyMessage returns the text shown when a component of kind has nothing
// to display.
func EmptyMessage(kind blocks.Kind) string {
	if msg, ok := emptyMessages[kind]; ok {
		return msg
	}
	return "Nothing to display"
}

var emptyMessages = map[blocks.Kind]string{
	blocks.KindHero:           "No hero content yet",
	blocks.KindCTA:            "No call to action configured",
	blocks.KindContent:        "No content yet",
	blocks.KindForm:           "No form fields configured",
	blocks.KindGallery:        "No images to display",
	blocks.KindPricing:        "No pricing plans available",
	blocks.KindFAQ:            "No FAQs available.",
	blocks.KindStatistics:     "No statistics to display",
	blocks.KindVideo:          "No video selected",
	blocks.KindTimeline:       "No timeline items yet",
	blocks.KindLocation:       "No locations added yet",
	blocks.KindFooter:         "No footer content yet",
	blocks.KindPromo:          "No promo configured",
	blocks.KindUnitSlider:     "No units to display",
	blocks.KindProgressSlider: "No progress updates yet",
	blocks.KindCustomImage:    "No image selected",
	blocks.KindAgentContact:   "No agents added yet",

	blocks.KindFeatures:         "No features added yet",
	blocks.KindTestimonial:      "No testimonials yet",
	blocks.KindCopyright:        "No copyright text set",
	blocks.KindFacilities:       "No facilities added yet",
	blocks.KindBankPartnership:  "No banking partners added yet",
	blocks.KindTitleDescription: "No title set",
	blocks.KindLocationAccess:   "No location information added yet",
}

var shellTmpl = template.Must(template.New("shell").Parse(
	`<section id="lp-{{.ID}}" class="lp-section lp-{{.Kind}}" data-component="{{.ID}}" data-kind="{{.Kind}}" data-viewport="{{.Viewport}}"` +
		`{{if or .Background .Color}} style="{{if .Background}}background-color: {{.Background}};{{end}}{{if .Color}} color: {{.Color}};{{end}}"{{end}}>` +
		`{{if .Editable}}<button type="button" class="lp-edit" data-edit="{{.ID}}" aria-label="Edit {{.Kind}}">Edit</button>{{end}}` +
		`{{.Body}}</section>`,
))

var emptyTmpl = template.Must(template.New("empty").Parse(
	`<div class="lp-empty" data-empty="true"><p>{{.}}</p></div>`,
))

type shellData struct {
	ID         string
	Kind       blocks.Kind
	Viewport   rendering.Viewport
	Editable   bool
	Background string
	Color      string
	Body       template.HTML
}

// section wraps body in the common component shell.
func section(rc *rendering.RenderContext, kind blocks.Kind, background, color string, body template.HTML) (template.HTML, error) {
	return execute(shellTmpl, shellData{
		ID:         rc.ComponentID,
		Kind:       kind,
		Viewport:   rc.Viewport,
		Editable:   rc.Editable,
		Background: background,
		Color:      color,
		Body:       body,
	})
}

// empty renders the kind's empty state inside the shell.
func empty(rc *rendering.RenderContext, kind blocks.Kind, background string) (rendering.Fragment, error) {
	msg := EmptyMessage(kind)
	body, err := execute(emptyTmpl, msg)
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, kind, background, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Empty: true, EmptyMessage: msg}, nil
}

// Fallback renders the empty state for a component whose config could not be
// rendered, so one broken component never takes down the page.
func Fallback(kind blocks.Kind, rc *rendering.RenderContext) rendering.Fragment {
	frag, err := empty(rc, kind, "")
	if err != nil {
		frag = rendering.Fragment{HTML: `<!-- template error -->`, Empty: true, EmptyMessage: EmptyMessage(kind)}
	}
	frag.ComponentID = rc.ComponentID
	frag.Kind = kind
	frag.Failed = true
	return frag
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(mdhtml.WithHardWraps()),
)

// renderMarkdown converts author Markdown to HTML. Raw HTML in the source is
// dropped by goldmark's default renderer.
func renderMarkdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// gridColumns applies the shared desktop/tablet/mobile column rule:
// configured, at most two, one.
func gridColumns(configured, limit int, v rendering.Viewport) int {
	cols := clamp(configured, 1, limit)
	return v.Pick(cols, min(cols, 2), 1)
}

var funcs = template.FuncMap{
	"markdown": renderMarkdown,
	"bool":     blocks.Bool,
	"add":      func(a, b int) int { return a + b },
}
