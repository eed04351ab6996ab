package components

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var titleDescriptionTmpl = template.Must(template.New("titleDescription").Parse(
	`<div class="lp-title-description-inner {{.Padding}}"><div class="{{.Width}}">` +
		`<div class="text-{{.Align}} {{.Spacing}}">` +
		`<h2 class="{{.TitleSize}} font-bold {{.Font}}"{{if .TitleColor}} style="color: {{.TitleColor}}"{{end}}>{{.Title}}</h2>` +
		`{{if .Subtitle}}<h3 class="{{.SubtitleSize}} font-medium"{{if .SubtitleColor}} style="color: {{.SubtitleColor}}"{{end}}>{{.Subtitle}}</h3>{{end}}` +
		`{{if .Paragraphs}}<div class="{{.DescriptionSize}} leading-relaxed"{{if .DescriptionColor}} style="color: {{.DescriptionColor}}"{{end}}>` +
		`{{range .Paragraphs}}<p>{{.}}</p>{{end}}</div>{{end}}` +
		`</div></div></div>`,
))

var titleSizes = map[string][2]string{
	"small":  {"text-xl md:text-2xl", "text-lg"},
	"medium": {"text-2xl md:text-3xl", "text-xl"},
	"large":  {"text-3xl md:text-4xl", "text-2xl"},
	"xl":     {"text-4xl md:text-5xl", "text-3xl"},
}

func renderTitleDescription(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.TitleDescriptionConfig)
	if strings.TrimSpace(c.Title) == "" {
		return empty(rc, blocks.KindTitleDescription, c.BackgroundColor)
	}

	sizes, ok := titleSizes[c.TitleSize]
	if !ok {
		sizes = titleSizes["large"]
	}
	titleSize, subtitleSize, descriptionSize := sizes[0], "text-lg md:text-xl", "text-base"
	if rc.Viewport == rendering.Mobile {
		titleSize, subtitleSize, descriptionSize = sizes[1], "text-base", "text-sm"
	}

	subtitle := ""
	if blocks.Bool(c.ShowSubtitle) {
		subtitle = c.Subtitle
	}
	var paragraphs []string
	if blocks.Bool(c.ShowDescription) {
		for _, p := range strings.Split(c.Description, "\n") {
			if strings.TrimSpace(p) != "" {
				paragraphs = append(paragraphs, p)
			}
		}
	}

	body, err := execute(titleDescriptionTmpl, map[string]any{
		"Padding":          textPadding(rc.Viewport),
		"Width":            maxWidthClass(c.MaxWidth),
		"Align":            textAlign(c.TextAlign),
		"Spacing":          spacingClass(c.Spacing),
		"Title":            c.Title,
		"TitleSize":        titleSize,
		"TitleColor":       c.TitleColor,
		"Font":             fontClass(c.TitleFont),
		"Subtitle":         subtitle,
		"SubtitleSize":     subtitleSize,
		"SubtitleColor":    c.SubtitleColor,
		"Paragraphs":       paragraphs,
		"DescriptionSize":  descriptionSize,
		"DescriptionColor": c.DescriptionColor,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindTitleDescription, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Items: len(paragraphs)}, nil
}

func textPadding(v rendering.Viewport) string {
	switch v {
	case rendering.Mobile:
		return "px-4 py-6"
	case rendering.Tablet:
		return "px-6 py-8"
	default:
		return "px-8 py-12"
	}
}

// maxWidthClass maps the width setting to a container class. Older configs
// stored a CSS length here; those fall back to the container width.
func maxWidthClass(w string) string {
	switch w {
	case "narrow":
		return "max-w-2xl mx-auto"
	case "full":
		return "w-full"
	default:
		return "max-w-6xl mx-auto"
	}
}

func spacingClass(s string) string {
	switch s {
	case "compact":
		return "space-y-2"
	case "relaxed":
		return "space-y-8"
	default:
		return "space-y-4"
	}
}

func fontClass(f string) string {
	switch f {
	case "serif":
		return "font-serif"
	case "mono":
		return "font-mono"
	default:
		return "font-sans"
	}
}

var copyrightTmpl = template.Must(template.New("copyright").Parse(
	`<div class="lp-copyright-inner {{.Padding}}{{if .Border}} border-t{{end}}">` +
		`<div class="max-w-6xl mx-auto text-{{.Align}} {{.Size}}">` +
		`<p class="lp-copyright">{{.Text}}</p>` +
		`{{if .Links}}<nav class="flex flex-wrap gap-4 mt-2 justify-{{.LinkAlign}}">` +
		`{{range .Links}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Label}}</a>{{end}}</nav>{{end}}` +
		`</div></div>`,
))

// CopyrightText builds the notice line, e.g. "© 2026 Paramount Land. All
// rights reserved.".
func CopyrightText(c *blocks.CopyrightConfig, year int) string {
	var b strings.Builder
	b.WriteString("© ")
	if blocks.Bool(c.ShowYear) {
		if y := strings.TrimSpace(c.Year); y != "" {
			b.WriteString(y)
		} else {
			b.WriteString(strconv.Itoa(year))
		}
		b.WriteString(" ")
	}
	b.WriteString(c.CompanyName)
	if blocks.Bool(c.ShowAllRightsReserved) {
		b.WriteString(". All rights reserved.")
	}
	if c.AdditionalText != "" {
		b.WriteString(" ")
		b.WriteString(c.AdditionalText)
	}
	return b.String()
}

func renderCopyright(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.CopyrightConfig)
	if strings.TrimSpace(c.CompanyName) == "" {
		return empty(rc, blocks.KindCopyright, c.BackgroundColor)
	}

	size := "text-sm"
	switch c.TextSize {
	case "small":
		size = "text-xs"
	case "large":
		size = "text-base"
	}
	padding := "px-8 py-8"
	switch rc.Viewport {
	case rendering.Mobile:
		padding = "px-4 py-4"
	case rendering.Tablet:
		padding = "px-6 py-6"
	}
	align := textAlign(c.TextAlign)
	linkAlign := justify(align)
	if rc.Viewport == rendering.Mobile {
		linkAlign = "center"
	}

	body, err := execute(copyrightTmpl, map[string]any{
		"Padding":   padding,
		"Border":    c.ShowBorder,
		"Align":     align,
		"LinkAlign": linkAlign,
		"Size":      size,
		"Text":      CopyrightText(c, rc.Now.Year()),
		"Links":     c.Links,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindCopyright, c.BackgroundColor, c.TextColor, body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Items: len(c.Links)}, nil
}
