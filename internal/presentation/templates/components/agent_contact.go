package components

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var agentContactTmpl = template.Must(template.New("agentContact").Parse(
	`<div class="lp-agent px-4 py-12">` +
		`{{if .Title}}<h2 class="lp-title text-3xl font-bold text-center">{{.Title}}</h2>{{end}}` +
		`{{if .Subtitle}}<p class="lp-subtitle text-center mt-2">{{.Subtitle}}</p>{{end}}` +
		`<article class="lp-agent-{{.Layout}} mx-auto mt-8 rounded-2xl border p-6 {{if eq .Layout "banner"}}flex {{.Direction}} items-center gap-6{{else}}max-w-md text-center{{end}}" data-item="agent">` +
		`{{if and .ShowPhoto (ne .Layout "minimal")}}<img src="{{.Agent.Photo}}" alt="{{.Agent.Name}}" class="lp-agent-photo w-32 h-32 rounded-full object-cover{{if ne .Layout "banner"}} mx-auto{{end}}">{{end}}` +
		`<div class="lp-agent-body">` +
		`<h3 class="text-xl font-semibold">{{.Agent.Name}}</h3>` +
		`{{if .Agent.Title}}<p class="opacity-75">{{.Agent.Title}}</p>{{end}}` +
		`{{if .Rating}}<p class="lp-rating" aria-label="Rating {{.Rating}}">{{.Stars}}</p>{{end}}` +
		`{{if ne .Layout "minimal"}}` +
		`{{if .Agent.Description}}<p class="mt-3">{{.Agent.Description}}</p>{{end}}` +
		`<dl class="lp-agent-facts mt-4 text-sm">` +
		`{{if and .ShowExperience .Agent.Experience}}<dt>Pengalaman</dt><dd>{{.Agent.Experience}}</dd>{{end}}` +
		`{{if and .ShowSpecialization .Agent.Specialization}}<dt>Spesialisasi</dt><dd>{{.Agent.Specialization}}</dd>{{end}}` +
		`{{if and .ShowOffice .Agent.Office}}<dt>Kantor</dt><dd>{{.Agent.Office}}</dd>{{end}}` +
		`{{if and .ShowSchedule .Agent.Schedule}}<dt>Jadwal</dt><dd>{{.Agent.Schedule}}</dd>{{end}}` +
		`</dl>{{end}}` +
		`<div class="lp-agent-actions flex gap-3 mt-6{{if ne .Layout "banner"}} justify-center{{end}}">` +
		`{{if .WhatsApp}}<a class="lp-button" href="{{.WhatsApp}}" target="_blank" rel="noopener" style="background-color: #25d366">{{.WhatsAppText}}</a>{{end}}` +
		`{{if .Mail}}<a class="lp-button" href="{{.Mail}}" style="background-color: {{.Primary}}">{{.EmailText}}</a>{{end}}` +
		`{{if .Agent.Phone}}<a class="lp-button-outline" href="tel:{{.Agent.Phone}}">{{.CTAText}}</a>{{end}}` +
		`</div></div></article></div>`,
))

func renderAgentContact(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.AgentContactConfig)
	if strings.TrimSpace(c.Agent.Name) == "" {
		return empty(rc, blocks.KindAgentContact, c.BackgroundColor)
	}

	layout := c.Layout
	switch layout {
	case "card", "banner", "minimal":
	default:
		layout = "card"
	}
	var whatsapp, mail string
	if blocks.Bool(c.ShowWhatsAppButton) {
		whatsapp = c.WhatsAppLink()
	}
	if blocks.Bool(c.ShowEmailButton) && c.Agent.Email != "" {
		mail = "mailto:" + c.Agent.Email
	}
	direction := "flex-row"
	if rc.Viewport == rendering.Mobile {
		direction = "flex-col"
	}
	var rating float64
	if blocks.Bool(c.ShowRating) {
		rating = c.Agent.Rating
	}

	body, err := execute(agentContactTmpl, map[string]any{
		"Title":              c.Title,
		"Subtitle":           c.Subtitle,
		"Agent":              c.Agent,
		"Layout":             layout,
		"Direction":          direction,
		"ShowPhoto":          blocks.Bool(c.ShowPhoto),
		"Rating":             rating,
		"Stars":              stars(rating),
		"ShowExperience":     blocks.Bool(c.ShowExperience),
		"ShowSpecialization": blocks.Bool(c.ShowSpecialization),
		"ShowOffice":         blocks.Bool(c.ShowOfficeInfo),
		"ShowSchedule":       blocks.Bool(c.ShowSchedule),
		"WhatsApp":           whatsapp,
		"WhatsAppText":       c.CTAWhatsAppText,
		"Mail":               mail,
		"EmailText":          c.CTAEmailText,
		"CTAText":            c.CTAText,
		"Primary":            c.PrimaryColor,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindAgentContact, c.BackgroundColor, "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: 1, Items: 1, Layout: layout}, nil
}

// stars renders a rating out of five, rounded to the nearest whole star.
func stars(rating float64) string {
	if rating <= 0 {
		return ""
	}
	n := clamp(int(rating+0.5), 0, 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n) + fmt.Sprintf(" %.1f", rating)
}
