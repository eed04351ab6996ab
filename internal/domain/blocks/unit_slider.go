package blocks

import "encoding/json"

type Unit struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Image       string   `json:"image" lp:"image"`
	Price       string   `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        string   `json:"area"`
	Description string   `json:"description"`
	Features    []string `json:"features" default:"[]"`
}

// UnitSliderConfig is a carousel of unit types. AutoPlaySpeed is in seconds.
type UnitSliderConfig struct {
	Passthrough
	Title                string `json:"title" default:"Tipe Unit"`
	Subtitle             string `json:"subtitle"`
	Units                []Unit `json:"units" default:"[]"`
	AutoPlay             bool   `json:"autoPlay"`
	AutoPlaySpeed        int    `json:"autoPlaySpeed" default:"5"`
	ShowPriceLabel       *bool  `json:"showPriceLabel" default:"true"`
	PriceLabel           string `json:"priceLabel" default:"Mulai dari"`
	ShowNavigationDots   *bool  `json:"showNavigationDots" default:"true"`
	ShowNavigationArrows *bool  `json:"showNavigationArrows" default:"true"`
	BackgroundColor      string `json:"backgroundColor" default:"#ffffff"`

	LegacyAutoplay *bool `json:"autoplay,omitempty"`
}

func (*UnitSliderConfig) Kind() Kind { return KindUnitSlider }

func (c *UnitSliderConfig) applyLegacy(fields map[string]json.RawMessage) {
	if _, ok := fields["autoPlay"]; !ok && c.LegacyAutoplay != nil {
		c.AutoPlay = *c.LegacyAutoplay
	}
}
