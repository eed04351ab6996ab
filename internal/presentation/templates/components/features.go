package components

import (
	"html/template"
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var featuresTmpl = template.Must(template.New("features").Parse(
	`<div class="lp-features-inner {{.Padding}}">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center mb-12">{{.Title}}</h2>{{end}}` +
		`<div class="lp-features {{if eq .Layout "list"}}space-y-6{{else}}grid grid-cols-{{.Columns}} gap-8{{end}}">` +
		`{{range .Features}}<div class="lp-card text-center p-6 rounded-lg border" data-item="{{.ID}}">` +
		`<span class="lp-icon" data-icon="{{.Icon}}"></span>` +
		`<h3 class="text-xl font-semibold mt-4 mb-2">{{.Title}}</h3>` +
		`{{if .Description}}<p class="opacity-75">{{.Description}}</p>{{end}}` +
		`</div>{{end}}` +
		`</div></div>`,
))

var featureIcons = map[string]bool{
	"map-pin": true, "shield-check": true, "home": true, "trending-up": true, "star": true,
	"users": true, "award": true, "clock": true, "phone": true, "mail": true,
}

func renderFeatures(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.FeaturesConfig)
	if len(c.Features) == 0 {
		return empty(rc, blocks.KindFeatures, "")
	}

	columns := 1
	if c.Layout != "list" {
		columns = gridColumns(c.Columns, 4, rc.Viewport)
	}
	items := make([]blocks.Feature, len(c.Features))
	for i, f := range c.Features {
		if !featureIcons[f.Icon] {
			f.Icon = "home"
		}
		items[i] = f
	}

	body, err := execute(featuresTmpl, map[string]any{
		"Title":    c.Title,
		"Layout":   c.Layout,
		"Columns":  columns,
		"Features": items,
		"Padding":  sectionPadding(rc.Viewport),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindFeatures, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(c.Features), Layout: c.Layout}, nil
}

var testimonialTmpl = template.Must(template.New("testimonial").Parse(
	`<div class="lp-testimonial-inner {{.Padding}}">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center mb-12">{{.Title}}</h2>{{end}}` +
		`<div class="lp-testimonials grid grid-cols-{{.Columns}} gap-8"{{if .AutoPlay}} data-autoplay="true"{{end}}>` +
		`{{range .Items}}<figure class="lp-card p-6 rounded-lg shadow-lg" data-item="{{.ID}}">` +
		`<p class="lp-rating" aria-label="{{.Rating}} / 5">{{.Stars}}</p>` +
		`<blockquote class="italic mt-4 mb-6">&ldquo;{{.Content}}&rdquo;</blockquote>` +
		`<figcaption class="flex items-center gap-4">` +
		`{{if .Avatar}}<img class="h-10 w-10 rounded-full object-cover" src="{{.Avatar}}" alt="{{.Name}}" loading="lazy">` +
		`{{else}}<span class="lp-initials h-10 w-10 rounded-full">{{.Initials}}</span>{{end}}` +
		`<span><strong class="block">{{.Name}}</strong>{{if .Position}}<span class="text-sm opacity-75">{{.Position}}</span>{{end}}</span>` +
		`</figcaption></figure>{{end}}` +
		`</div></div>`,
))

type testimonialView struct {
	blocks.Testimonial
	Stars    string
	Initials string
}

func renderTestimonial(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.TestimonialConfig)
	if len(c.Testimonials) == 0 {
		return empty(rc, blocks.KindTestimonial, "")
	}

	items := make([]testimonialView, len(c.Testimonials))
	for i, t := range c.Testimonials {
		t.Rating = clamp(t.Rating, 0, 5)
		items[i] = testimonialView{
			Testimonial: t,
			Stars:       strings.Repeat("★", t.Rating) + strings.Repeat("☆", 5-t.Rating),
			Initials:    initials(t.Name),
		}
	}
	columns := rc.Viewport.Pick(3, 2, 1)

	body, err := execute(testimonialTmpl, map[string]any{
		"Title":    c.Title,
		"Columns":  columns,
		"AutoPlay": c.AutoPlay && c.Layout == "carousel",
		"Items":    items,
		"Padding":  sectionPadding(rc.Viewport),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindTestimonial, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(items), Layout: c.Layout}, nil
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}

func sectionPadding(v rendering.Viewport) string {
	switch v {
	case rendering.Mobile:
		return "px-4 py-8"
	case rendering.Tablet:
		return "px-6 py-12"
	default:
		return "px-8 py-16"
	}
}
