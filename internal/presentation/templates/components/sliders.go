package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var unitSliderTmpl = template.Must(template.New("unitSlider").Parse(
	`<div class="lp-slider px-4 py-12" data-per-slide="{{.PerSlide}}"{{if .AutoPlay}} data-autoplay="{{.Interval}}"{{end}}>` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`<div class="lp-slides grid grid-cols-{{.PerSlide}} gap-6 mt-8">` +
		`{{range $i, $u := .Units}}<article class="lp-card rounded-xl border overflow-hidden" data-item="{{$i}}">` +
		`{{if $u.Image}}<img src="{{$u.Image}}" alt="{{$u.Name}}" loading="lazy" class="w-full h-56 object-cover">{{end}}` +
		`<div class="p-6"><h3 class="text-xl font-semibold">{{$u.Name}}</h3>` +
		`{{if $u.Type}}<p class="text-sm opacity-75">{{$u.Type}}</p>{{end}}` +
		`{{if and $.ShowPriceLabel $u.Price}}<p class="lp-price mt-2"><small>{{$.PriceLabel}}</small> <strong>{{$u.Price}}</strong></p>{{end}}` +
		`<ul class="lp-specs flex gap-4 mt-3 text-sm">` +
		`{{if $u.Bedrooms}}<li>{{$u.Bedrooms}} KT</li>{{end}}{{if $u.Bathrooms}}<li>{{$u.Bathrooms}} KM</li>{{end}}{{if $u.Area}}<li>{{$u.Area}}</li>{{end}}</ul>` +
		`{{if $u.Description}}<p class="mt-3">{{$u.Description}}</p>{{end}}` +
		`{{if $u.Features}}<ul class="mt-3 text-sm list-disc pl-5">{{range $u.Features}}<li>{{.}}</li>{{end}}</ul>{{end}}` +
		`</div></article>{{end}}` +
		`</div>` +
		`{{if .Arrows}}<div class="lp-arrows"><button type="button" data-slide="prev" aria-label="Previous">&lsaquo;</button><button type="button" data-slide="next" aria-label="Next">&rsaquo;</button></div>{{end}}` +
		`{{if .Dots}}<div class="lp-dots flex justify-center gap-2 mt-4">{{range .Pages}}<button type="button" data-page="{{.}}"></button>{{end}}</div>{{end}}` +
		`</div>`,
))

func renderUnitSlider(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.UnitSliderConfig)
	if len(c.Units) == 0 {
		return empty(rc, blocks.KindUnitSlider, c.BackgroundColor)
	}

	perSlide := rc.Viewport.Pick(3, 2, 1)
	body, err := execute(unitSliderTmpl, map[string]any{
		"Title":          c.Title,
		"Subtitle":       c.Subtitle,
		"Units":          c.Units,
		"PerSlide":       perSlide,
		"AutoPlay":       c.AutoPlay,
		"Interval":       seconds(c.AutoPlaySpeed) * 1000,
		"ShowPriceLabel": blocks.Bool(c.ShowPriceLabel),
		"PriceLabel":     c.PriceLabel,
		"Arrows":         blocks.Bool(c.ShowNavigationArrows) && len(c.Units) > perSlide,
		"Dots":           blocks.Bool(c.ShowNavigationDots) && len(c.Units) > perSlide,
		"Pages":          pages(len(c.Units), perSlide),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindUnitSlider, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: perSlide, Items: len(c.Units)}, nil
}

var progressSliderTmpl = template.Must(template.New("progressSlider").Funcs(funcs).Parse(
	`<div class="lp-slider px-4 py-12" data-per-slide="{{.PerSlide}}"{{if .AutoPlay}} data-autoplay="{{.Interval}}"{{end}}>` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`<div class="lp-slides grid grid-cols-{{.PerSlide}} gap-6 mt-8">` +
		`{{range $i, $p := .Items}}<article class="lp-card lp-status-{{$p.Status}} rounded-xl border overflow-hidden" data-item="{{$i}}">` +
		`{{if $p.Image}}<img src="{{$p.Image}}" alt="{{$p.Title}}" loading="lazy" class="w-full h-48 object-cover">{{end}}` +
		`<div class="p-6">{{if $p.Date}}<time class="text-sm opacity-75">{{$p.Date}}</time>{{end}}` +
		`<h3 class="text-lg font-semibold">{{$p.Title}}</h3>` +
		`{{if $p.Description}}<p class="mt-2">{{$p.Description}}</p>{{end}}` +
		`{{if $.ShowBar}}<div class="mt-4 h-2 rounded bg-gray-200"><div class="h-2 rounded" style="width: {{$p.Percentage}}%; background-color: {{$.Accent}}"></div></div>{{end}}` +
		`{{if $.ShowPercentage}}<p class="mt-1 text-sm font-semibold">{{$p.Percentage}}%</p>{{end}}` +
		`</div></article>{{end}}` +
		`</div>` +
		`{{if .Arrows}}<div class="lp-arrows"><button type="button" data-slide="prev" aria-label="Previous">&lsaquo;</button><button type="button" data-slide="next" aria-label="Next">&rsaquo;</button></div>{{end}}` +
		`{{if .Dots}}<div class="lp-dots flex justify-center gap-2 mt-4">{{range .Pages}}<button type="button" data-page="{{.}}"></button>{{end}}</div>{{end}}` +
		`</div>`,
))

func renderProgressSlider(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.ProgressSliderConfig)
	if len(c.ProgressItems) == 0 {
		return empty(rc, blocks.KindProgressSlider, c.BackgroundColor)
	}

	items := make([]blocks.ProgressItem, len(c.ProgressItems))
	copy(items, c.ProgressItems)
	for i := range items {
		items[i].Percentage = clamp(items[i].Percentage, 0, 100)
	}

	perSlide := rc.Viewport.Pick(3, 2, 1)
	body, err := execute(progressSliderTmpl, map[string]any{
		"Title":          c.Title,
		"Subtitle":       c.Subtitle,
		"Items":          items,
		"PerSlide":       perSlide,
		"AutoPlay":       c.AutoPlay,
		"Interval":       seconds(c.AutoPlaySpeed) * 1000,
		"ShowBar":        blocks.Bool(c.ShowProgressBar),
		"ShowPercentage": blocks.Bool(c.ShowPercentage),
		"Accent":         c.AccentColor,
		"Arrows":         blocks.Bool(c.ShowArrows) && len(items) > perSlide,
		"Dots":           blocks.Bool(c.ShowNavigationDots) && len(items) > perSlide,
		"Pages":          pages(len(items), perSlide),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindProgressSlider, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: perSlide, Items: len(items)}, nil
}

func seconds(v int) int {
	if v <= 0 {
		return 5
	}
	return v
}

func pages(n, perSlide int) []int {
	count := (n + perSlide - 1) / perSlide
	out := make([]int, count)
	for i := range out {
		out[i] = i
	}
	return out
}
