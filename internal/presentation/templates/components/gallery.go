package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var galleryTmpl = template.Must(template.New("gallery").Parse(
	`<div class="lp-gallery-inner px-4 py-12">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`<div class="lp-gallery lp-gallery-{{.Layout}} grid grid-cols-{{.Columns}} gap-{{.Gap}} mt-8"` +
		`{{if .Autoplay}} data-autoplay="{{.AutoplaySpeed}}"{{end}}>` +
		`{{range .Images}}<figure class="lp-card overflow-hidden rounded-lg" data-item="{{.ID}}">` +
		`<img src="{{.URL}}" alt="{{.Alt}}" loading="lazy" class="w-full h-full object-cover">` +
		`{{if and $.ShowCaptions .Caption}}<figcaption class="p-2 text-sm">{{.Caption}}</figcaption>{{end}}` +
		`</figure>{{end}}` +
		`</div></div>`,
))

var galleryGaps = map[string]int{"small": 2, "medium": 4, "large": 8}

func renderGallery(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.GalleryConfig)

	images := make([]blocks.GalleryImage, 0, len(c.Images))
	for _, img := range c.Images {
		if img.URL != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		return empty(rc, blocks.KindGallery, "")
	}

	layout := c.Layout
	if layout == "slider" && rc.Viewport == rendering.Mobile {
		layout = "grid"
	}
	gap, ok := galleryGaps[c.Spacing]
	if !ok {
		gap = galleryGaps["medium"]
	}
	columns := gridColumns(c.Columns, 5, rc.Viewport)

	body, err := execute(galleryTmpl, map[string]any{
		"Title":         c.Title,
		"Subtitle":      c.Subtitle,
		"Layout":        layout,
		"Columns":       columns,
		"Gap":           gap,
		"Images":        images,
		"ShowCaptions":  blocks.Bool(c.ShowCaptions),
		"Autoplay":      c.Autoplay && layout == "slider",
		"AutoplaySpeed": c.AutoplaySpeed,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindGallery, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(images), Layout: layout}, nil
}
