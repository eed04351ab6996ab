package components

import (
	"html/template"
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var heroTmpl = template.Must(template.New("hero").Funcs(funcs).Parse(
	`<div class="lp-hero relative min-h-[60vh] flex items-center justify-{{.Justify}} text-{{.Align}}"` +
		`{{if .Image}} style="background-image: url('{{.Image}}'); background-size: cover; background-position: center;"{{end}}>` +
		`{{if .Overlay}}<div class="lp-overlay absolute inset-0 bg-black/50"></div>{{end}}` +
		`<div class="relative z-10 {{.Padding}}">` +
		`{{if .Title}}<h1 class="lp-title {{.TitleSize}} font-bold">{{.Title}}</h1>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle mt-4">{{.Subtitle}}</p>{{end}}` +
		`{{if .CTAText}}<a class="lp-button mt-8 inline-block" href="{{.CTAHref}}" data-action="{{.CTAAction}}">{{.CTAText}}</a>{{end}}` +
		`</div></div>`,
))

type heroData struct {
	Title, Subtitle, Image      string
	CTAText, CTAHref, CTAAction string
	Overlay                     bool
	Align, Justify              string
	TitleSize, Padding          string
}

func renderHero(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.HeroConfig)
	if strings.TrimSpace(c.Title) == "" && strings.TrimSpace(c.Subtitle) == "" && c.BackgroundImage == "" {
		return empty(rc, blocks.KindHero, c.BackgroundColor)
	}

	data := heroData{
		Title:     c.Title,
		Subtitle:  c.Subtitle,
		Image:     c.BackgroundImage,
		CTAText:   c.CTAText,
		CTAHref:   actionHref(c.CTAAction, c.CTAURL),
		CTAAction: c.CTAAction,
		Overlay:   blocks.Bool(c.Overlay) && c.BackgroundImage != "",
		Align:     textAlign(c.TextAlign),
		Justify:   justify(c.TextAlign),
		TitleSize: "text-5xl",
		Padding:   "px-8 py-24",
	}
	if rc.Viewport == rendering.Mobile {
		data.TitleSize = "text-3xl"
		data.Padding = "px-4 py-16"
	}

	body, err := execute(heroTmpl, data)
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindHero, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Image: c.BackgroundImage}, nil
}

var ctaTmpl = template.Must(template.New("cta").Parse(
	`<div class="lp-cta {{.Padding}} text-center">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle mt-4">{{.Subtitle}}</p>{{end}}` +
		`<div class="lp-buttons mt-8 flex {{.Direction}} gap-4 justify-center">` +
		`{{range .Buttons}}<a class="lp-button lp-button-{{.Variant}}" href="{{.Href}}" data-action="{{.Action}}">{{.Text}}</a>{{end}}` +
		`</div></div>`,
))

type ctaButton struct {
	Text, Href, Action, Variant string
}

func renderCTA(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.CTAConfig)

	var buttons []ctaButton
	if c.PrimaryButton.Text != "" {
		buttons = append(buttons, ctaButton{c.PrimaryButton.Text, actionHref(c.PrimaryButton.Action, c.PrimaryButton.URL), c.PrimaryButton.Action, "primary"})
	}
	if c.SecondaryButton != nil && c.SecondaryButton.Text != "" {
		buttons = append(buttons, ctaButton{c.SecondaryButton.Text, actionHref(c.SecondaryButton.Action, c.SecondaryButton.URL), c.SecondaryButton.Action, "secondary"})
	}
	if c.Title == "" && len(buttons) == 0 {
		return empty(rc, blocks.KindCTA, c.BackgroundColor)
	}

	direction, padding := "flex-row", "px-8 py-16"
	if rc.Viewport == rendering.Mobile {
		direction, padding = "flex-col", "px-4 py-12"
	}
	body, err := execute(ctaTmpl, map[string]any{
		"Title":     c.Title,
		"Subtitle":  c.Subtitle,
		"Buttons":   buttons,
		"Direction": direction,
		"Padding":   padding,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindCTA, c.BackgroundColor, c.TextColor, body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Items: len(buttons)}, nil
}

var contentTmpl = template.Must(template.New("content").Parse(
	`<div class="lp-content prose max-w-none text-{{.Align}} {{.Padding}}">{{.Body}}</div>`,
))

func renderContent(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.ContentConfig)
	if strings.TrimSpace(c.Content) == "" {
		return empty(rc, blocks.KindContent, c.BackgroundColor)
	}
	padding := "px-8 py-12"
	if rc.Viewport == rendering.Mobile {
		padding = "px-4 py-8"
	}
	body, err := execute(contentTmpl, map[string]any{
		"Align":   textAlign(c.TextAlign),
		"Padding": padding,
		"Body":    renderMarkdown(c.Content),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindContent, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out}, nil
}

// actionHref maps a button action onto a link target.
func actionHref(action, url string) string {
	switch action {
	case "scroll", "form":
		if url != "" && strings.HasPrefix(url, "#") {
			return url
		}
		return "#contact"
	case "whatsapp":
		if url != "" {
			return url
		}
		return "#contact"
	default:
		if url == "" {
			return "#"
		}
		return url
	}
}

func textAlign(v string) string {
	switch v {
	case "left", "right", "center":
		return v
	}
	return "center"
}

func justify(align string) string {
	switch align {
	case "left":
		return "start"
	case "right":
		return "end"
	}
	return "center"
}
