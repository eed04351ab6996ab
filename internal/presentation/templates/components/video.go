package components

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var videoTmpl = template.Must(template.New("video").Parse(
	`<div class="lp-video-inner mx-auto px-4 py-12" style="max-width: {{.MaxWidth}}">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`<div class="lp-video relative mt-6" style="padding-top: {{.Ratio}}%">` +
		`{{if .EmbedURL}}<iframe class="absolute inset-0 w-full h-full" src="{{.EmbedURL}}" title="{{.Title}}" allow="autoplay; encrypted-media; picture-in-picture" allowfullscreen loading="lazy"></iframe>` +
		`{{else if .FileURL}}<video class="absolute inset-0 w-full h-full" src="{{.FileURL}}"{{if .Poster}} poster="{{.Poster}}"{{end}}{{if .Controls}} controls{{end}}{{if .Autoplay}} autoplay muted playsinline{{end}}></video>` +
		`{{else}}<div class="absolute inset-0">{{.Embed}}</div>{{end}}` +
		`</div>` +
		`{{if .Description}}<p class="mt-4 text-center">{{.Description}}</p>{{end}}` +
		`</div>`,
))

var aspectRatios = map[string]string{
	"16:9": "56.25",
	"4:3":  "75",
	"1:1":  "100",
	"21:9": "42.857",
}

func renderVideo(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.VideoConfig)
	if !c.HasSource() {
		return empty(rc, blocks.KindVideo, "")
	}

	ratio, ok := aspectRatios[c.AspectRatio]
	if !ok {
		ratio = aspectRatios["16:9"]
	}
	data := map[string]any{
		"Title":       c.Title,
		"Description": c.Description,
		"MaxWidth":    c.MaxWidth,
		"Ratio":       ratio,
		"Poster":      c.ThumbnailURL,
		"Controls":    blocks.Bool(c.ShowControls),
		"Autoplay":    c.Autoplay,
	}
	switch c.Type {
	case "youtube", "vimeo":
		data["EmbedURL"] = embedURL(c)
	case "direct":
		data["FileURL"] = c.VideoURL
	case "embed":
		// Embed code is entered by authenticated editors only.
		data["Embed"] = template.HTML(c.EmbedCode)
	}

	body, err := execute(videoTmpl, data)
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindVideo, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Items: 1, Image: c.ThumbnailURL}, nil
}

func embedURL(c *blocks.VideoConfig) string {
	q := url.Values{}
	if c.Autoplay {
		q.Set("autoplay", "1")
		q.Set("muted", "1")
	}
	if !blocks.Bool(c.ShowControls) {
		q.Set("controls", "0")
	}
	base := fmt.Sprintf("https://www.youtube.com/embed/%s", url.PathEscape(c.VideoID))
	if c.Type == "vimeo" {
		base = fmt.Sprintf("https://player.vimeo.com/video/%s", url.PathEscape(c.VideoID))
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
