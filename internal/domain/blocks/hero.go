package blocks

import "encoding/json"

// HeroConfig is the full-bleed banner at the top of a page.
type HeroConfig struct {
	Passthrough
	Title           string `json:"title" default:"Temukan Hunian Impian Anda"`
	Subtitle        string `json:"subtitle" default:"Hunian nyaman di lokasi strategis untuk keluarga Anda"`
	BackgroundImage string `json:"backgroundImage" lp:"image"`
	BackgroundColor string `json:"backgroundColor" default:"#667eea"`
	CTAText         string `json:"ctaText" default:"Hubungi Kami"`
	CTAAction       string `json:"ctaAction" default:"scroll"`
	CTAURL          string `json:"ctaUrl" lp:"link"`
	Overlay         *bool  `json:"overlay" default:"true"`
	TextAlign       string `json:"textAlign" default:"center"`
}

func (*HeroConfig) Kind() Kind { return KindHero }

// CTAButton is one call-to-action button.
type CTAButton struct {
	Text   string `json:"text" default:"Hubungi Sekarang"`
	Action string `json:"action" default:"link"`
	URL    string `json:"url" lp:"link"`
}

type CTAConfig struct {
	Passthrough
	Title           string     `json:"title" default:"Siap Memiliki Rumah Impian?"`
	Subtitle        string     `json:"subtitle" default:"Jadwalkan kunjungan dan konsultasi gratis hari ini"`
	PrimaryButton   CTAButton  `json:"primaryButton"`
	SecondaryButton *CTAButton `json:"secondaryButton,omitempty"`
	BackgroundColor string     `json:"backgroundColor" default:"#1f2937"`
	TextColor       string     `json:"textColor" default:"#ffffff"`

	LegacyButtonText string `json:"buttonText,omitempty"`
	LegacyButtonURL  string `json:"buttonUrl,omitempty"`
}

func (*CTAConfig) Kind() Kind { return KindCTA }

func (c *CTAConfig) applyLegacy(map[string]json.RawMessage) {
	if c.PrimaryButton.Text == "" && c.LegacyButtonText != "" {
		c.PrimaryButton.Text = c.LegacyButtonText
	}
	if c.PrimaryButton.URL == "" && c.LegacyButtonURL != "" {
		c.PrimaryButton.URL = c.LegacyButtonURL
	}
}

// ContentConfig is a free-form Markdown section.
type ContentConfig struct {
	Passthrough
	Content         string `json:"content"`
	TextAlign       string `json:"textAlign" default:"left"`
	BackgroundColor string `json:"backgroundColor" default:"#ffffff"`
}

func (*ContentConfig) Kind() Kind { return KindContent }
