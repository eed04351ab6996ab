package blocks

import "encoding/json"

// GalleryImage is one picture in a gallery. LegacySrc is the pre-rename
// spelling of URL and is kept as stored.
type GalleryImage struct {
	ID        string `json:"id"`
	URL       string `json:"url" lp:"image"`
	Alt       string `json:"alt"`
	Caption   string `json:"caption"`
	LegacySrc string `json:"src,omitempty"`
}

type GalleryConfig struct {
	Passthrough
	Title         string         `json:"title" default:"Galeri Proyek"`
	Subtitle      string         `json:"subtitle"`
	Layout        string         `json:"layout" default:"grid"`
	Columns       int            `json:"columns" default:"3"`
	Spacing       string         `json:"spacing" default:"medium"`
	ShowCaptions  *bool          `json:"showCaptions" default:"true"`
	Autoplay      bool           `json:"autoplay"`
	AutoplaySpeed int            `json:"autoplaySpeed" default:"3000"`
	Images        []GalleryImage `json:"images" default:"[]"`
}

func (*GalleryConfig) Kind() Kind { return KindGallery }

func (c *GalleryConfig) applyLegacy(map[string]json.RawMessage) {
	if c.Columns < 0 {
		c.Columns = 0
	}
	for i := range c.Images {
		if c.Images[i].URL == "" && c.Images[i].LegacySrc != "" {
			c.Images[i].URL = c.Images[i].LegacySrc
		}
	}
}
