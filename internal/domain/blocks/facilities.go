package blocks

type Facility struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon" default:"swimming"`
	Image       string `json:"image" lp:"image"`
}

type FacilitiesConfig struct {
	Passthrough
	Title           string     `json:"title" default:"Fasilitas Lengkap"`
	Subtitle        string     `json:"subtitle" default:"Nikmati berbagai fasilitas premium untuk kenyamanan hidup Anda"`
	Facilities      []Facility `json:"facilities" default:"[]"`
	Layout          string     `json:"layout" default:"grid"`
	Columns         int        `json:"columns" default:"3"`
	ShowIcons       *bool      `json:"showIcons" default:"true"`
	ShowImages      *bool      `json:"showImages" default:"true"`
	BackgroundColor string     `json:"backgroundColor" default:"#ffffff"`
	CardStyle       string     `json:"cardStyle" default:"shadow"`
}

func (*FacilitiesConfig) Kind() Kind { return KindFacilities }

// Bank is a mortgage partner. The loan terms are optional and shown only when
// set.
type Bank struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Logo         string   `json:"logo" lp:"image"`
	Description  string   `json:"description"`
	Website      string   `json:"website" lp:"link"`
	InterestRate string   `json:"interestRate,omitempty"`
	MaxTenor     string   `json:"maxTenor,omitempty"`
	DownPayment  string   `json:"downPayment,omitempty"`
	Features     []string `json:"features,omitempty"`
}

type BankPartnershipConfig struct {
	Passthrough
	Title           string `json:"title" default:"Kerjasama Bank"`
	Subtitle        string `json:"subtitle" default:"Dapatkan kemudahan KPR dengan bunga kompetitif"`
	Banks           []Bank `json:"banks" default:"[]"`
	BackgroundColor string `json:"backgroundColor" default:"#f8f9fa"`
	ShowDescription *bool  `json:"showDescription" default:"true"`
	Layout          string `json:"layout" default:"grid"`
	CTAText         string `json:"ctaText"`
	CTALink         string `json:"ctaLink" lp:"link"`
}

func (*BankPartnershipConfig) Kind() Kind { return KindBankPartnership }
