package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var statisticsTmpl = template.Must(template.New("statistics").Parse(
	`<div class="lp-statistics-inner px-4 py-12">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`<div class="lp-statistics {{if eq .Layout "horizontal"}}flex flex-wrap justify-around{{else}}grid grid-cols-{{.Columns}}{{end}} gap-6 mt-8"` +
		`{{if .Animate}} data-animate="{{.Duration}}"{{end}}>` +
		`{{range .Items}}<div class="lp-card text-center{{if eq $.Layout "cards"}} rounded-xl border p-6{{end}}" data-item="{{.ID}}">` +
		`{{if .Icon}}<span class="lp-icon" data-icon="{{.Icon}}"></span>{{end}}` +
		`<p class="lp-stat-value text-4xl font-bold" style="color: {{.Color}}" data-value="{{.Value}}">{{.Prefix}}{{.Value}}{{.Suffix}}</p>` +
		`<p class="lp-stat-label mt-2 font-medium">{{.Label}}</p>` +
		`{{if .Description}}<p class="text-sm mt-1 opacity-75">{{.Description}}</p>{{end}}` +
		`</div>{{end}}` +
		`</div></div>`,
))

func renderStatistics(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.StatisticsConfig)
	if len(c.Items) == 0 {
		return empty(rc, blocks.KindStatistics, c.BackgroundColor)
	}

	layout := c.Layout
	if layout == "horizontal" && rc.Viewport == rendering.Mobile {
		layout = "grid"
	}
	columns := gridColumns(c.Columns, 6, rc.Viewport)

	body, err := execute(statisticsTmpl, map[string]any{
		"Title":    c.Title,
		"Subtitle": c.Subtitle,
		"Layout":   layout,
		"Columns":  columns,
		"Animate":  blocks.Bool(c.Animate),
		"Duration": c.AnimationDuration,
		"Items":    c.Items,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindStatistics, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(c.Items), Layout: layout}, nil
}
