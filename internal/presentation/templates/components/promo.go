package components

import (
	"html/template"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var promoTmpl = template.Must(template.New("promo").Parse(
	`<div class="lp-promo-inner px-4 py-12 text-center">` +
		`<span class="lp-badge inline-block rounded-full px-4 py-1" style="background-color: {{.Accent}}">{{.PromoLabel}}</span>` +
		`<h2 class="lp-title text-4xl font-bold mt-4">{{.Title}}</h2>` +
		`{{if .Subtitle}}<p class="lp-subtitle text-xl mt-2">{{.Subtitle}}</p>{{end}}` +
		`{{if .Description}}<p class="mt-4">{{.Description}}</p>{{end}}` +
		`{{if .DiscountValue}}<p class="lp-discount text-6xl font-extrabold mt-6" style="color: {{.Accent}}">{{.DiscountValue}}</p>{{end}}` +
		`{{if .OriginalPrice}}<p class="mt-2"><s class="opacity-75">{{.OriginalPrice}}</s> <strong class="text-2xl">{{.DiscountedPrice}}</strong></p>{{end}}` +
		`{{if .ShowTimer}}<div class="lp-countdown flex justify-center gap-4 mt-6" data-valid-until="{{.ValidUntil}}">` +
		`{{if .Expired}}<p class="font-semibold">Promo telah berakhir</p>{{else}}` +
		`<div><span data-unit="days">{{.Days}}</span><small>Hari</small></div>` +
		`<div><span data-unit="hours">{{.Hours}}</span><small>Jam</small></div>` +
		`<div><span data-unit="minutes">{{.Minutes}}</span><small>Menit</small></div>` +
		`<div><span data-unit="seconds">{{.Seconds}}</span><small>Detik</small></div>{{end}}` +
		`</div>{{end}}` +
		`{{if .Terms}}<ul class="lp-terms text-sm mt-6 space-y-1">{{range .Terms}}<li>{{.}}</li>{{end}}</ul>{{end}}` +
		`<a class="lp-button mt-8 inline-block" href="{{.CTALink}}">{{.CTAText}}</a>` +
		`<div class="lp-promo-contact grid grid-cols-{{.Columns}} gap-4 mt-8">` +
		`{{if .Phone}}<a href="tel:{{.Phone}}">{{.Phone}}</a>{{end}}` +
		`{{if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}` +
		`{{if .WhatsApp}}<a href="{{.WhatsApp}}" target="_blank" rel="noopener">WhatsApp</a>{{end}}` +
		`</div></div>`,
))

var promoLabels = map[string]string{
	"discount":     "Diskon",
	"cashback":     "Cashback",
	"bonus":        "Bonus",
	"early-bird":   "Early Bird",
	"limited-time": "Waktu Terbatas",
}

// Countdown is the time left until a promo's validUntil date, computed
// against the render clock.
type Countdown struct {
	Days, Hours, Minutes, Seconds int
	Expired                       bool
}

// PromoCountdown computes the countdown to the end of the validUntil day.
// An unparseable date counts as expired.
func PromoCountdown(validUntil string, now time.Time) Countdown {
	until, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(validUntil), now.Location())
	if err != nil {
		return Countdown{Expired: true}
	}
	left := until.Add(24*time.Hour - time.Second).Sub(now)
	if left <= 0 {
		return Countdown{Expired: true}
	}
	secs := int(left / time.Second)
	return Countdown{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}

func renderPromo(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.PromoConfig)
	if strings.TrimSpace(c.Title) == "" {
		return empty(rc, blocks.KindPromo, c.BackgroundColor)
	}

	label, ok := promoLabels[c.PromoType]
	if !ok {
		label = promoLabels["discount"]
	}
	cd := PromoCountdown(c.ValidUntil, rc.Now)
	columns := rc.Viewport.Pick(3, 3, 1)

	body, err := execute(promoTmpl, map[string]any{
		"PromoLabel":      label,
		"Title":           c.Title,
		"Subtitle":        c.Subtitle,
		"Description":     c.Description,
		"DiscountValue":   c.DiscountValue,
		"OriginalPrice":   c.OriginalPrice,
		"DiscountedPrice": c.DiscountedPrice,
		"Accent":          c.AccentColor,
		"ShowTimer":       blocks.Bool(c.ShowTimer),
		"ValidUntil":      c.ValidUntil,
		"Expired":         cd.Expired,
		"Days":            cd.Days,
		"Hours":           cd.Hours,
		"Minutes":         cd.Minutes,
		"Seconds":         cd.Seconds,
		"Terms":           c.Terms,
		"CTAText":         c.CTAText,
		"CTALink":         c.CTALink,
		"Columns":         columns,
		"Phone":           c.ContactInfo.Phone,
		"Email":           c.ContactInfo.Email,
		"WhatsApp":        waLink(c.ContactInfo.WhatsApp),
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindPromo, c.BackgroundColor, c.TextColor, body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Columns: columns, Items: len(c.Terms)}, nil
}

func waLink(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String()
}
