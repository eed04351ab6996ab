package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var timelineTmpl = template.Must(template.New("timeline").Funcs(funcs).Parse(
	`<div class="lp-timeline-inner px-4 py-12">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`{{if .ShowProgress}}<div class="lp-progress mt-6 h-2 rounded bg-gray-200"><div class="h-2 rounded bg-blue-600" style="width: {{.Overall}}%"></div></div>{{end}}` +
		`<ol class="lp-timeline lp-timeline-{{.Layout}} {{if eq .Layout "horizontal"}}flex gap-6 overflow-x-auto{{else}}space-y-8 border-l-2 pl-6{{end}} mt-8">` +
		`{{range .Items}}<li class="lp-card lp-status-{{.Status}}" data-item="{{.ID}}">` +
		`{{if and $.ShowDates .Date}}<time class="text-sm opacity-75">{{.Date}}</time>{{end}}` +
		`<h3 class="font-semibold">{{.Title}}</h3>` +
		`{{if .Description}}<p class="mt-1">{{.Description}}</p>{{end}}` +
		`{{if and $.ShowImages .Image}}<img src="{{.Image}}" alt="{{.Title}}" loading="lazy" class="mt-2 rounded">{{end}}` +
		`{{if and $.ShowProgress (gt .Progress 0)}}<div class="mt-2 h-1 bg-gray-200"><div class="h-1 bg-blue-600" style="width: {{.Progress}}%"></div></div>{{end}}` +
		`</li>{{end}}` +
		`</ol></div>`,
))

func renderTimeline(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.TimelineConfig)
	if len(c.Items) == 0 {
		return empty(rc, blocks.KindTimeline, "")
	}

	layout := c.Layout
	if layout != "horizontal" || rc.Viewport == rendering.Mobile {
		layout = "vertical"
	}

	body, err := execute(timelineTmpl, map[string]any{
		"Title":        c.Title,
		"Subtitle":     c.Subtitle,
		"Layout":       layout,
		"Items":        c.Items,
		"ShowDates":    blocks.Bool(c.ShowDates),
		"ShowImages":   blocks.Bool(c.ShowImages),
		"ShowProgress": blocks.Bool(c.ShowProgress),
		"Overall":      overallProgress(c.Items),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindTimeline, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: 1, Items: len(c.Items), Layout: layout}, nil
}

// overallProgress is the share of completed milestones, in percent.
func overallProgress(items []blocks.TimelineItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if it.Status == "completed" {
			done++
		}
	}
	return done * 100 / len(items)
}
