package components

import (
	"fmt"
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var locationTmpl = template.Must(template.New("location").Parse(
	`<div class="lp-location-inner px-4 py-12">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`{{if .MapSrc}}<iframe class="lp-map w-full mt-8 rounded-lg" src="{{.MapSrc}}" style="height: {{.MapHeight}}px" loading="lazy" title="Peta lokasi"></iframe>` +
		`{{else if .MapEmbed}}<div class="lp-map mt-8" style="height: {{.MapHeight}}px">{{.MapEmbed}}</div>{{end}}` +
		`<div class="lp-locations grid grid-cols-{{.Columns}} gap-6 mt-8">` +
		`{{range .Locations}}<div class="lp-card rounded-lg border p-6" data-item="{{.ID}}">` +
		`<h3 class="font-semibold">{{.Name}}</h3><p class="mt-1">{{.Address}}</p>` +
		`{{if $.ShowContact}}` +
		`{{if .Phone}}<p class="mt-2"><a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}` +
		`{{if .Email}}<p><a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}` +
		`{{if .Hours}}<p class="text-sm opacity-75">{{.Hours}}</p>{{end}}` +
		`{{end}}</div>{{end}}` +
		`</div></div>`,
))

func renderLocation(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.LocationConfig)
	if len(c.Locations) == 0 {
		return empty(rc, blocks.KindLocation, "")
	}

	data := map[string]any{
		"Title":       c.Title,
		"Subtitle":    c.Subtitle,
		"Locations":   c.Locations,
		"ShowContact": blocks.Bool(c.ShowContactInfo),
		"MapHeight":   mapHeight(c.MapHeight, rc.Viewport),
		"Columns":     rc.Viewport.Pick(2, 2, 1),
	}
	if blocks.Bool(c.ShowMap) {
		switch c.MapType {
		case "google":
			data["MapSrc"] = c.MapURL
		case "embed":
			// Map embed code is entered by authenticated editors only.
			data["MapEmbed"] = template.HTML(c.EmbedCode)
		default:
			data["MapSrc"] = osmEmbed(c.Locations)
		}
	}

	body, err := execute(locationTmpl, data)
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindLocation, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: data["Columns"].(int), Items: len(c.Locations)}, nil
}

func mapHeight(h int, v rendering.Viewport) int {
	if v == rendering.Mobile && h > 300 {
		return 300
	}
	return h
}

// osmEmbed centres an OpenStreetMap embed on the first location with
// coordinates.
func osmEmbed(places []blocks.Place) string {
	for _, p := range places {
		if p.Coordinates == nil {
			continue
		}
		lat, lng := p.Coordinates.Lat, p.Coordinates.Lng
		const d = 0.01
		return fmt.Sprintf("https://www.openstreetmap.org/export/embed.html?bbox=%f,%f,%f,%f&layer=mapnik&marker=%f,%f",
			lng-d, lat-d, lng+d, lat+d, lat, lng)
	}
	return ""
}
