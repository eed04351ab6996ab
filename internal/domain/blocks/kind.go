// Package blocks defines the closed set of landing page component kinds, their
// config shapes, and the migration, encoding, and validation rules that apply
// to every config read from storage.
package blocks

import (
	"strings"

	"emperror.dev/errors"
	"github.com/iancoleman/strcase"
)

// Kind identifies a component type. The set is closed.
type Kind string

const (
	KindHero           Kind = "hero"
	KindCTA            Kind = "cta"
	KindContent        Kind = "content"
	KindForm           Kind = "form"
	KindGallery        Kind = "gallery"
	KindPricing        Kind = "pricing"
	KindFAQ            Kind = "faq"
	KindStatistics     Kind = "statistics"
	KindVideo          Kind = "video"
	KindTimeline       Kind = "timeline"
	KindLocation       Kind = "location"
	KindFooter         Kind = "footer"
	KindPromo          Kind = "promo"
	KindUnitSlider     Kind = "unit-slider"
	KindProgressSlider Kind = "progress-slider"
	KindCustomImage    Kind = "custom-image"
	KindAgentContact   Kind = "agent-contact"

	KindFeatures         Kind = "features"
	KindTestimonial      Kind = "testimonial"
	KindCopyright        Kind = "copyright"
	KindFacilities       Kind = "facilities"
	KindBankPartnership  Kind = "bank-partnership"
	KindTitleDescription Kind = "title-description"
	KindLocationAccess   Kind = "location-access"
)

var registry = map[Kind]func() Config{
	KindHero:           func() Config { return &HeroConfig{} },
	KindCTA:            func() Config { return &CTAConfig{} },
	KindContent:        func() Config { return &ContentConfig{} },
	KindForm:           func() Config { return &FormConfig{} },
	KindGallery:        func() Config { return &GalleryConfig{} },
	KindPricing:        func() Config { return &PricingConfig{} },
	KindFAQ:            func() Config { return &FAQConfig{} },
	KindStatistics:     func() Config { return &StatisticsConfig{} },
	KindVideo:          func() Config { return &VideoConfig{} },
	KindTimeline:       func() Config { return &TimelineConfig{} },
	KindLocation:       func() Config { return &LocationConfig{} },
	KindFooter:         func() Config { return &FooterConfig{} },
	KindPromo:          func() Config { return &PromoConfig{} },
	KindUnitSlider:     func() Config { return &UnitSliderConfig{} },
	KindProgressSlider: func() Config { return &ProgressSliderConfig{} },
	KindCustomImage:    func() Config { return &CustomImageConfig{} },
	KindAgentContact:   func() Config { return &AgentContactConfig{} },

	KindFeatures:         func() Config { return &FeaturesConfig{} },
	KindTestimonial:      func() Config { return &TestimonialConfig{} },
	KindCopyright:        func() Config { return &CopyrightConfig{} },
	KindFacilities:       func() Config { return &FacilitiesConfig{} },
	KindBankPartnership:  func() Config { return &BankPartnershipConfig{} },
	KindTitleDescription: func() Config { return &TitleDescriptionConfig{} },
	KindLocationAccess:   func() Config { return &LocationAccessConfig{} },
}

// Kinds returns every known kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindHero, KindCTA, KindContent, KindForm, KindGallery, KindPricing,
		KindFAQ, KindStatistics, KindVideo, KindTimeline, KindLocation,
		KindFooter, KindPromo, KindUnitSlider, KindProgressSlider,
		KindCustomImage, KindAgentContact, KindFeatures, KindTestimonial,
		KindCopyright, KindFacilities, KindBankPartnership,
		KindTitleDescription, KindLocationAccess,
	}
}

// ParseKind accepts kebab, camel, or snake spellings ("customImage",
// "custom_image") and returns the canonical kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strcase.ToKebab(strings.TrimSpace(s)))
	if _, ok := registry[k]; !ok {
		return "", errors.WithDetails(ErrUnknownKind, "kind", s)
	}
	return k, nil
}

// Valid reports whether k is part of the closed set.
func (k Kind) Valid() bool {
	_, ok := registry[k]
	return ok
}
