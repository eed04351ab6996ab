package blocks

import "encoding/json"

// PlaceholderImage is shown when a custom image has no desktop source.
const PlaceholderImage = "/placeholder.svg"

// CustomImageConfig is a single responsive image with optional overlay text.
// LegacyImage is the field older pages stored before the desktop/mobile split.
type CustomImageConfig struct {
	Passthrough
	Title        string `json:"title"`
	Description  string `json:"description"`
	DesktopImage string `json:"desktopImage" lp:"image"`
	MobileImage  string `json:"mobileImage" lp:"image"`
	AltText      string `json:"altText" default:"Gambar"`
	ClickAction  string `json:"clickAction" default:"none"`
	LinkURL      string `json:"linkUrl" lp:"link"`
	Height       string `json:"height" default:"auto"`
	ObjectFit    string `json:"objectFit" default:"cover"`
	ShowOverlay  bool   `json:"showOverlay"`
	OverlayText  string `json:"overlayText"`
	TextPosition string `json:"textPosition" default:"bottom"`
	TextAlign    string `json:"textAlign" default:"center"`

	LegacyImage string `json:"image,omitempty" lp:"image"`
}

func (*CustomImageConfig) Kind() Kind { return KindCustomImage }

func (c *CustomImageConfig) applyLegacy(map[string]json.RawMessage) {
	if c.DesktopImage == "" && c.LegacyImage != "" {
		c.DesktopImage = c.LegacyImage
	}
}
