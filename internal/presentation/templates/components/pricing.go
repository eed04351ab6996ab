package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var pricingTmpl = template.Must(template.New("pricing").Funcs(funcs).Parse(
	`<div class="lp-pricing-inner px-4 py-12">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`{{if eq .Layout "table"}}` +
		`<table class="lp-pricing-table w-full mt-8"><thead><tr><th></th>{{range .Plans}}<th data-item="{{.ID}}">{{.Name}}</th>{{end}}</tr></thead><tbody>` +
		`<tr><td>Harga</td>{{range .Plans}}<td>{{.Currency}} {{.Price}}{{if .Period}}/{{.Period}}{{end}}</td>{{end}}</tr>` +
		`{{range .FeatureRows}}<tr><td>{{.Text}}</td>{{range .Marks}}<td>{{if .}}&#10003;{{else}}&#10005;{{end}}</td>{{end}}</tr>{{end}}` +
		`</tbody></table>` +
		`{{else}}` +
		`<div class="lp-pricing grid grid-cols-{{.Columns}} gap-6 mt-8"{{if eq .Layout "toggle"}} data-toggle="true"{{end}}>` +
		`{{range .Plans}}<div class="lp-card rounded-xl border p-6{{if .Highlighted}} lp-highlighted ring-2{{end}}" data-item="{{.ID}}">` +
		`{{if .Badge}}<span class="lp-badge" style="background-color: {{.BadgeColor}}">{{.Badge}}</span>{{end}}` +
		`<h3 class="text-xl font-semibold">{{.Name}}</h3>` +
		`{{if .Description}}<p class="text-sm mt-1">{{.Description}}</p>{{end}}` +
		`<p class="lp-price text-3xl font-bold mt-4">{{.Currency}} {{.Price}}{{if .Period}}<span class="text-sm">/{{.Period}}</span>{{end}}</p>` +
		`<ul class="mt-6 space-y-2">{{range .Features}}<li class="{{if not (bool .Included)}}line-through opacity-50{{end}}{{if .Highlight}} font-semibold{{end}}">{{.Text}}</li>{{end}}</ul>` +
		`{{if .CTAText}}<a class="lp-button mt-6 block text-center" href="{{if .CTAURL}}{{.CTAURL}}{{else}}#contact{{end}}">{{.CTAText}}</a>{{end}}` +
		`</div>{{end}}` +
		`</div>{{end}}</div>`,
))

type featureRow struct {
	Text  string
	Marks []bool
}

func renderPricing(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.PricingConfig)
	if len(c.Plans) == 0 {
		return empty(rc, blocks.KindPricing, "")
	}

	layout := c.Layout
	if layout == "table" && rc.Viewport == rendering.Mobile {
		layout = "cards"
	}
	columns := gridColumns(c.Columns, 4, rc.Viewport)

	body, err := execute(pricingTmpl, map[string]any{
		"Title":       c.Title,
		"Subtitle":    c.Subtitle,
		"Layout":      layout,
		"Columns":     columns,
		"Plans":       c.Plans,
		"FeatureRows": comparisonRows(c.Plans),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindPricing, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(c.Plans), Layout: layout}, nil
}

// comparisonRows lines up features by text across plans for the table layout.
func comparisonRows(plans []blocks.PricingPlan) []featureRow {
	var order []string
	seen := map[string]bool{}
	for _, p := range plans {
		for _, f := range p.Features {
			if !seen[f.Text] {
				seen[f.Text] = true
				order = append(order, f.Text)
			}
		}
	}
	rows := make([]featureRow, 0, len(order))
	for _, text := range order {
		row := featureRow{Text: text, Marks: make([]bool, len(plans))}
		for i, p := range plans {
			for _, f := range p.Features {
				if f.Text == text && blocks.Bool(f.Included) {
					row.Marks[i] = true
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
