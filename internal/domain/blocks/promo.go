package blocks

type PromoContact struct {
	Phone    string `json:"phone" default:"+62 812-3456-7890"`
	Email    string `json:"email" default:"promo@property.com" lp:"email"`
	WhatsApp string `json:"whatsapp" default:"+62 812-3456-7890"`
}

// PromoConfig is a time-limited offer. The countdown to ValidUntil is computed
// at render time and never stored.
type PromoConfig struct {
	Passthrough
	Title           string       `json:"title" default:"Promo Spesial Hari Ini!"`
	Subtitle        string       `json:"subtitle" default:"Jangan Lewatkan Kesempatan Emas"`
	Description     string       `json:"description" default:"Dapatkan diskon fantastis untuk investasi properti impian Anda. Promo terbatas, buruan daftar sekarang!"`
	PromoType       string       `json:"promoType" default:"discount"`
	DiscountValue   string       `json:"discountValue" default:"30%"`
	OriginalPrice   string       `json:"originalPrice" default:"Rp 500.000.000"`
	DiscountedPrice string       `json:"discountedPrice" default:"Rp 350.000.000"`
	ValidUntil      string       `json:"validUntil" default:"2024-12-31"`
	Terms           []string     `json:"terms" default:"[\"Berlaku untuk pembelian unit baru\",\"Tidak dapat digabung dengan promo lain\",\"Syarat dan ketentuan berlaku\"]"`
	CTAText         string       `json:"ctaText" default:"Klaim Promo Sekarang"`
	CTALink         string       `json:"ctaLink" default:"#contact" lp:"link"`
	BackgroundColor string       `json:"backgroundColor" default:"#ff6b35"`
	TextColor       string       `json:"textColor" default:"#ffffff"`
	AccentColor     string       `json:"accentColor" default:"#ffd700"`
	ShowTimer       *bool        `json:"showTimer" default:"true"`
	ContactInfo     PromoContact `json:"contactInfo"`
}

func (*PromoConfig) Kind() Kind { return KindPromo }
