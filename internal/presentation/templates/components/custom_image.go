package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var customImageTmpl = template.Must(template.New("customImage").Parse(
	`<div class="lp-custom-image px-4 py-8">` +
		`{{if and .Title (ne .TextPosition "overlay")}}{{if eq .TextPosition "top"}}<h2 class="lp-title text-2xl font-bold text-{{.Align}} mb-4">{{.Title}}</h2>{{end}}{{end}}` +
		`<figure class="relative overflow-hidden rounded-lg {{.HeightClass}}">` +
		`{{if .Link}}<a href="{{.Link}}">{{end}}` +
		`<img src="{{.Src}}" alt="{{.Alt}}" class="w-full h-full object-{{.Fit}}"{{if .Popup}} data-popup="true"{{end}} loading="lazy">` +
		`{{if .Link}}</a>{{end}}` +
		`{{if and .ShowOverlay .OverlayText}}<div class="lp-overlay absolute inset-0 flex items-center justify-center bg-black/40"><p class="text-white text-{{.Align}}">{{.OverlayText}}</p></div>{{end}}` +
		`{{if and .Title (eq .TextPosition "overlay")}}<figcaption class="absolute bottom-0 w-full p-4 text-white text-{{.Align}}">{{.Title}}</figcaption>{{end}}` +
		`</figure>` +
		`{{if .EmptyMessage}}<p class="lp-empty text-center text-sm mt-2" data-empty="true">{{.EmptyMessage}}</p>{{end}}` +
		`{{if and .Title (eq .TextPosition "bottom" "center")}}<h2 class="lp-title text-2xl font-bold text-{{.Align}} mt-4">{{.Title}}</h2>{{end}}` +
		`{{if .Description}}<p class="mt-2 text-{{.Align}}">{{.Description}}</p>{{end}}` +
		`</div>`,
))

var imageHeights = map[string]string{
	"auto":   "h-auto",
	"small":  "h-48",
	"medium": "h-72",
	"large":  "h-96",
	"full":   "h-screen",
}

// SelectImage picks the source to show for v: the mobile image only at the
// mobile viewport and only when one is set, otherwise the desktop image, and
// finally the placeholder.
func SelectImage(c *blocks.CustomImageConfig, v rendering.Viewport) string {
	if v == rendering.Mobile && c.MobileImage != "" {
		return c.MobileImage
	}
	if c.DesktopImage != "" {
		return c.DesktopImage
	}
	return blocks.PlaceholderImage
}

func renderCustomImage(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.CustomImageConfig)

	src := SelectImage(c, rc.Viewport)
	isEmpty := src == blocks.PlaceholderImage
	var emptyMsg string
	if isEmpty {
		emptyMsg = EmptyMessage(blocks.KindCustomImage)
	}
	height, ok := imageHeights[c.Height]
	if !ok {
		height = imageHeights["auto"]
	}
	var link string
	if c.ClickAction == "link" {
		link = c.LinkURL
	}

	body, err := execute(customImageTmpl, map[string]any{
		"Title":        c.Title,
		"Description":  c.Description,
		"Src":          src,
		"Alt":          c.AltText,
		"Fit":          c.ObjectFit,
		"HeightClass":  height,
		"Link":         link,
		"Popup":        c.ClickAction == "popup",
		"ShowOverlay":  c.ShowOverlay,
		"OverlayText":  c.OverlayText,
		"TextPosition": c.TextPosition,
		"Align":        textAlign(c.TextAlign),
		"EmptyMessage": emptyMsg,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindCustomImage, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	frag := rendering.Fragment{HTML: out, Image: src, Empty: isEmpty, EmptyMessage: emptyMsg}
	if !isEmpty {
		frag.Items = 1
	}
	return frag, nil
}
