package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var facilitiesTmpl = template.Must(template.New("facilities").Parse(
	`<div class="lp-facilities-inner px-4 py-8 sm:px-6 sm:py-12 lg:px-8 lg:py-16">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`<div class="lp-facilities mt-8 {{if eq .Layout "list"}}space-y-4{{else}}grid grid-cols-{{.Columns}} gap-6{{end}}">` +
		`{{range .Facilities}}<div class="lp-card lp-card-{{$.CardStyle}} rounded-lg p-6" data-item="{{.ID}}">` +
		`{{if and .Image $.ShowImages}}<img class="w-full h-40 object-cover rounded-lg mb-4" src="{{.Image}}" alt="{{.Name}}" loading="lazy">` +
		`{{else if $.ShowIcons}}<span class="lp-icon" data-icon="{{.Icon}}"></span>{{end}}` +
		`<h3 class="text-lg font-semibold mt-2">{{.Name}}</h3>` +
		`{{if .Description}}<p class="text-sm opacity-75 mt-1">{{.Description}}</p>{{end}}` +
		`</div>{{end}}` +
		`</div></div>`,
))

var facilityIcons = map[string]bool{
	"swimming": true, "parking": true, "shopping": true, "garden": true, "playground": true, "security": true,
	"wifi": true, "cctv": true, "gym": true, "pool": true, "clubhouse": true,
}

func renderFacilities(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.FacilitiesConfig)
	if len(c.Facilities) == 0 {
		return empty(rc, blocks.KindFacilities, c.BackgroundColor)
	}

	columns := 1
	if c.Layout != "list" {
		columns = gridColumns(c.Columns, 4, rc.Viewport)
	}
	items := make([]blocks.Facility, len(c.Facilities))
	for i, f := range c.Facilities {
		if !facilityIcons[f.Icon] {
			f.Icon = "clubhouse"
		}
		items[i] = f
	}
	cardStyle := c.CardStyle
	switch cardStyle {
	case "flat", "shadow", "border":
	default:
		cardStyle = "flat"
	}

	body, err := execute(facilitiesTmpl, map[string]any{
		"Title":      c.Title,
		"Subtitle":   c.Subtitle,
		"Layout":     c.Layout,
		"Columns":    columns,
		"CardStyle":  cardStyle,
		"ShowIcons":  blocks.Bool(c.ShowIcons),
		"ShowImages": blocks.Bool(c.ShowImages),
		"Facilities": items,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindFacilities, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(items), Layout: c.Layout}, nil
}

var bankPartnershipTmpl = template.Must(template.New("bankPartnership").Parse(
	`<div class="lp-bank-inner px-4 py-8 sm:px-6 sm:py-12 lg:px-8 lg:py-16">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`<div class="lp-banks grid grid-cols-{{.Columns}} gap-6 mt-8"{{if eq .Layout "carousel"}} data-carousel="true"{{end}}>` +
		`{{range .Banks}}<div class="lp-card rounded-lg border p-6 text-center" data-item="{{.ID}}">` +
		`{{if .Website}}<a href="{{.Website}}" target="_blank" rel="noopener">{{end}}` +
		`{{if .Logo}}<img class="mx-auto h-16 object-contain" src="{{.Logo}}" alt="{{.Name}}" loading="lazy">` +
		`{{else}}<span class="lp-icon" data-icon="building-bank"></span>{{end}}` +
		`<h3 class="font-semibold mt-4">{{.Name}}</h3>` +
		`{{if .Website}}</a>{{end}}` +
		`{{if and $.ShowDescription .Description}}<p class="text-sm opacity-75 mt-2">{{.Description}}</p>{{end}}` +
		`{{if or .InterestRate .MaxTenor .DownPayment}}<dl class="lp-bank-terms text-sm mt-3">` +
		`{{if .InterestRate}}<dt>Bunga</dt><dd>{{.InterestRate}}</dd>{{end}}` +
		`{{if .MaxTenor}}<dt>Tenor</dt><dd>{{.MaxTenor}}</dd>{{end}}` +
		`{{if .DownPayment}}<dt>DP</dt><dd>{{.DownPayment}}</dd>{{end}}` +
		`</dl>{{end}}` +
		`{{if .Features}}<ul class="text-sm mt-2">{{range .Features}}<li>{{.}}</li>{{end}}</ul>{{end}}` +
		`</div>{{end}}` +
		`</div>` +
		`{{if and .CTAText .CTALink}}<div class="text-center mt-8"><a class="lp-button" href="{{.CTALink}}">{{.CTAText}}</a></div>{{end}}` +
		`</div>`,
))

func renderBankPartnership(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.BankPartnershipConfig)
	if len(c.Banks) == 0 {
		return empty(rc, blocks.KindBankPartnership, c.BackgroundColor)
	}

	columns := rc.Viewport.Pick(4, 3, 2)
	body, err := execute(bankPartnershipTmpl, map[string]any{
		"Title":           c.Title,
		"Subtitle":        c.Subtitle,
		"Layout":          c.Layout,
		"Columns":         columns,
		"ShowDescription": blocks.Bool(c.ShowDescription),
		"Banks":           c.Banks,
		"CTAText":         c.CTAText,
		"CTALink":         c.CTALink,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindBankPartnership, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(c.Banks), Layout: c.Layout}, nil
}
