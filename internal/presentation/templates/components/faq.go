package components

import (
	"html/template"
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var faqTmpl = template.Must(template.New("faq").Funcs(funcs).Parse(
	`<div class="lp-faq-inner mx-auto max-w-3xl px-4 py-12"{{if .AllowMultiple}} data-allow-multiple="true"{{end}}>` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`{{if .Searchable}}<input type="search" class="lp-faq-search w-full mt-6" placeholder="Cari pertanyaan..." data-faq-search>{{end}}` +
		`{{if .Categories}}<div class="lp-faq-categories flex flex-wrap gap-2 mt-4"><button type="button" data-category="">Semua</button>` +
		`{{range .Categories}}<button type="button" data-category="{{.}}">{{.}}</button>{{end}}</div>{{end}}` +
		`<div class="lp-faq-items mt-6 space-y-3">` +
		`{{range .Items}}<details class="lp-card rounded-lg border p-4" data-item="{{.ID}}"{{if .Category}} data-category="{{.Category}}"{{end}}>` +
		`<summary class="font-semibold cursor-pointer">{{.Question}}</summary>` +
		`<div class="lp-faq-answer mt-2 prose">{{markdown .Answer}}</div></details>{{end}}` +
		`</div></div>`,
))

func renderFAQ(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.FAQConfig)

	items := make([]blocks.FAQItem, 0, len(c.Items))
	for _, it := range c.Items {
		if strings.TrimSpace(it.Question) != "" {
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		return empty(rc, blocks.KindFAQ, "")
	}

	body, err := execute(faqTmpl, map[string]any{
		"Title":         c.Title,
		"Subtitle":      c.Subtitle,
		"Searchable":    blocks.Bool(c.Searchable),
		"Categories":    c.Categories,
		"Items":         items,
		"AllowMultiple": c.AllowMultiple,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindFAQ, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: 1, Items: len(items)}, nil
}
