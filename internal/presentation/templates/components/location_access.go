package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var locationAccessTmpl = template.Must(template.New("locationAccess").Parse(
	`<div class="lp-location-access-inner {{.Padding}}">` +
		`<div class="text-center mb-12">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle mt-2">{{.Subtitle}}</p>{{end}}` +
		`{{if .Address}}<p class="lp-address mt-4"><span class="lp-icon" data-icon="map-pin"></span> {{.Address}}</p>{{end}}` +
		`{{if .MapURL}}<a class="lp-button-outline mt-4" href="{{.MapURL}}" target="_blank" rel="noopener">Lihat di Peta</a>{{end}}` +
		`</div>` +
		`<div class="grid grid-cols-{{.Columns}} gap-8">` +
		`{{if .Access}}<div class="lp-access-points"><h3 class="text-xl font-semibold mb-6">Akses Transportasi</h3>` +
		`{{range .Access}}<div class="lp-card rounded-lg p-4 shadow-md mb-4" data-item="{{.ID}}">` +
		`<span class="lp-icon" data-icon="{{.Icon}}"></span>` +
		`<h4 class="font-semibold">{{.Name}}</h4>` +
		`{{if .Category}}<p class="text-xs uppercase opacity-60">{{.Category}}</p>{{end}}` +
		`<p class="text-sm">{{if .Distance}}<span data-distance>{{.Distance}}</span>{{end}}{{if .Time}} <span data-time>{{.Time}}</span>{{end}}</p>` +
		`{{if .Description}}<p class="text-sm opacity-75">{{.Description}}</p>{{end}}` +
		`</div>{{end}}</div>{{end}}` +
		`{{if .Nearby}}<div class="lp-nearby"><h3 class="text-xl font-semibold mb-6">Lokasi Terdekat</h3>` +
		`{{range .Nearby}}<div class="lp-card rounded-lg p-4 shadow-md mb-4" data-item="{{.ID}}">` +
		`<span class="lp-icon" data-icon="{{.Icon}}"></span>` +
		`<h4 class="font-semibold">{{.Name}}</h4>` +
		`{{if .Distance}}<p class="text-sm" data-distance>{{.Distance}}</p>{{end}}` +
		`{{if .Description}}<p class="text-sm opacity-75">{{.Description}}</p>{{end}}` +
		`</div>{{end}}</div>{{end}}` +
		`</div></div>`,
))

var transportIcons = map[string]bool{
	"car": true, "public_transport": true, "walking": true, "airport": true, "train": true, "bus": true,
}

var placeIcons = map[string]bool{
	"shopping": true, "school": true, "hospital": true, "restaurant": true, "office": true, "recreation": true,
}

func renderLocationAccess(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.LocationAccessConfig)

	var access []blocks.AccessPoint
	if blocks.Bool(c.ShowAccessPoints) {
		for _, p := range c.AccessPoints {
			if !transportIcons[p.Icon] {
				p.Icon = "car"
			}
			access = append(access, p)
		}
	}
	var nearby []blocks.NearbyLocation
	if blocks.Bool(c.ShowNearbyLocations) {
		for _, l := range c.NearbyLocations {
			if !placeIcons[l.Icon] {
				l.Icon = "recreation"
			}
			nearby = append(nearby, l)
		}
	}
	if len(access) == 0 && len(nearby) == 0 {
		return empty(rc, blocks.KindLocationAccess, c.BackgroundColor)
	}

	mapURL := ""
	if blocks.Bool(c.ShowMap) {
		mapURL = c.MapURL
	}
	columns := rc.Viewport.Pick(2, 2, 1)
	if len(access) == 0 || len(nearby) == 0 {
		columns = 1
	}

	body, err := execute(locationAccessTmpl, map[string]any{
		"Padding":  sectionPadding(rc.Viewport),
		"Title":    c.Title,
		"Subtitle": c.Subtitle,
		"Address":  c.Address,
		"MapURL":   mapURL,
		"Columns":  columns,
		"Access":   access,
		"Nearby":   nearby,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindLocationAccess, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(access) + len(nearby)}, nil
}
