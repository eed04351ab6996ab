package blocks

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// Agent is the sales person featured by an agent-contact block.
type Agent struct {
	Name           string  `json:"name"`
	Title          string  `json:"title" default:"Property Consultant"`
	Phone          string  `json:"phone" default:"+62 812-0000-0000"`
	Email          string  `json:"email" default:"sales@paramountland.co.id" lp:"email"`
	WhatsApp       string  `json:"whatsapp"`
	Photo          string  `json:"photo" default:"/sales-avatar-fallback.jpg" lp:"image"`
	Description    string  `json:"description" default:"Professional property consultant ready to help you find your dream property."`
	Experience     string  `json:"experience" default:"3+ tahun"`
	Specialization string  `json:"specialization" default:"Residential Properties"`
	Office         string  `json:"office" default:"Paramount Land Office"`
	Schedule       string  `json:"schedule" default:"Sen-Jum 09:00-17:00"`
	Rating         float64 `json:"rating" default:"5"`
}

// legacyAgent is the entry shape of the old multi-agent list.
type legacyAgent struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Title    string `json:"title"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Photo    string `json:"photo"`
}

type AgentContactConfig struct {
	Passthrough
	Title              string `json:"title" default:"Hubungi Sales Terpercaya Kami"`
	Subtitle           string `json:"subtitle" default:"Dapatkan konsultasi expert dari sales in-house terbaik"`
	Agent              Agent  `json:"agent"`
	Layout             string `json:"layout" default:"card"`
	ShowPhoto          *bool  `json:"showPhoto" default:"true"`
	ShowRating         *bool  `json:"showRating" default:"true"`
	ShowExperience     *bool  `json:"showExperience" default:"true"`
	ShowSpecialization *bool  `json:"showSpecialization" default:"true"`
	ShowOfficeInfo     *bool  `json:"showOfficeInfo" default:"true"`
	ShowSchedule       *bool  `json:"showSchedule" default:"true"`
	ShowWhatsAppButton *bool  `json:"showWhatsAppButton" default:"true"`
	ShowEmailButton    *bool  `json:"showEmailButton" default:"true"`
	CTAText            string `json:"ctaText" default:"Hubungi Sekarang"`
	CTAWhatsAppText    string `json:"ctaWhatsappText" default:"WhatsApp"`
	CTAEmailText       string `json:"ctaEmailText" default:"Email"`
	BackgroundColor    string `json:"backgroundColor" default:"#ffffff"`
	PrimaryColor       string `json:"primaryColor" default:"#3b82f6"`
	WhatsAppMessage    string `json:"whatsappMessage" default:"Halo, saya tertarik dengan properti yang Anda tawarkan."`

	LegacyAgents []json.RawMessage `json:"agents,omitempty"`
}

func (*AgentContactConfig) Kind() Kind { return KindAgentContact }

// applyLegacy promotes the first entry of the old agents list when no single
// agent was stored. A stored null agent counts as absent. The list itself is
// left in place.
func (c *AgentContactConfig) applyLegacy(fields map[string]json.RawMessage) {
	raw, ok := fields["agent"]
	if ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		ok = false
	}
	if ok || len(c.LegacyAgents) == 0 {
		c.fillWhatsApp()
		return
	}
	var first legacyAgent
	if err := json.Unmarshal(c.LegacyAgents[0], &first); err == nil {
		c.Agent = Agent{
			Name:     first.Name,
			Title:    first.Position,
			Phone:    first.Phone,
			Email:    first.Email,
			WhatsApp: first.WhatsApp,
			Photo:    first.Photo,
		}
		if c.Agent.Title == "" {
			c.Agent.Title = first.Title
		}
	}
	c.fillWhatsApp()
}

func (c *AgentContactConfig) fillWhatsApp() {
	if c.Agent.WhatsApp == "" {
		c.Agent.WhatsApp = c.Agent.Phone
	}
	if c.Agent.WhatsApp == "" {
		c.Agent.WhatsApp = "+62 812-0000-0000"
	}
}

// WhatsAppLink builds a wa.me link for the agent's number with a prefilled
// message.
func (c *AgentContactConfig) WhatsAppLink() string {
	var digits strings.Builder
	for _, r := range c.Agent.WhatsApp {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(c.WhatsAppMessage)
}
