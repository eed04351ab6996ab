package components

import (
	"fmt"
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var footerTmpl = template.Must(template.New("footer").Parse(
	`<footer class="lp-footer px-4 py-12">` +
		`<div class="lp-footer-grid {{if eq .Layout "stacked"}}space-y-8{{else}}grid grid-cols-{{.Columns}} gap-8{{end}}">` +
		`<div class="lp-footer-brand">` +
		`{{if .Logo}}<img src="{{.Logo}}" alt="{{.Company}}" class="h-10 mb-4">{{end}}` +
		`{{if .Company}}<h3 class="text-xl font-bold">{{.Company}}</h3>{{end}}` +
		`{{if .Description}}<p class="mt-2 opacity-75">{{.Description}}</p>{{end}}` +
		`{{if .Address}}<p class="mt-4">{{.Address}}</p>{{end}}` +
		`{{if .Phone}}<p><a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}` +
		`{{if .Email}}<p><a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}` +
		`</div>` +
		`{{range .Sections}}<div class="lp-footer-section" data-item="{{.Title}}"><h4 class="font-semibold mb-3">{{.Title}}</h4>` +
		`<ul class="space-y-2">{{range .Links}}<li><a href="{{.URL}}">{{.Label}}</a></li>{{end}}</ul></div>{{end}}` +
		`</div>` +
		`{{if .Social}}<div class="lp-social flex gap-4 mt-8">{{range .Social}}<a href="{{.URL}}" data-platform="{{.Platform}}" aria-label="{{.Platform}}" rel="noopener" target="_blank">{{if .Icon}}{{.Icon}}{{else}}{{.Platform}}{{end}}</a>{{end}}</div>{{end}}` +
		`{{if .Divider}}<hr class="my-8 opacity-25">{{end}}` +
		`<p class="lp-copyright text-sm opacity-75">{{.Copyright}}</p>` +
		`</footer>`,
))

func renderFooter(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.FooterConfig)
	if len(c.Sections) == 0 && len(c.SocialMedia) == 0 {
		return empty(rc, blocks.KindFooter, c.BackgroundColor)
	}

	columns := 1
	if c.Layout != "stacked" {
		columns = rc.Viewport.Pick(clamp(c.Columns, 1, 4), 2, 1)
	}
	copyright := c.Copyright
	if copyright == "" {
		copyright = fmt.Sprintf("© %d %s. All rights reserved.", rc.Now.Year(), c.CompanyName)
	}

	body, err := execute(footerTmpl, map[string]any{
		"Layout":      c.Layout,
		"Columns":     columns,
		"Logo":        c.Logo,
		"Company":     c.CompanyName,
		"Description": c.Description,
		"Address":     c.Address,
		"Phone":       c.Phone,
		"Email":       c.Email,
		"Sections":    c.Sections,
		"Social":      c.SocialMedia,
		"Divider":     blocks.Bool(c.ShowDivider),
		"Copyright":   copyright,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindFooter, c.BackgroundColor, c.TextColor, body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(c.Sections), Layout: c.Layout}, nil
}
