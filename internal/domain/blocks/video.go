package blocks

type VideoConfig struct {
	Passthrough
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type" default:"youtube"`
	VideoID      string `json:"videoId"`
	VideoURL     string `json:"videoUrl" lp:"link"`
	EmbedCode    string `json:"embedCode"`
	ThumbnailURL string `json:"thumbnailUrl" lp:"image"`
	Autoplay     bool   `json:"autoplay"`
	ShowControls *bool  `json:"showControls" default:"true"`
	AspectRatio  string `json:"aspectRatio" default:"16:9"`
	MaxWidth     string `json:"maxWidth" default:"100%"`
}

func (*VideoConfig) Kind() Kind { return KindVideo }

// HasSource reports whether the config points at something playable.
func (c *VideoConfig) HasSource() bool {
	switch c.Type {
	case "youtube", "vimeo":
		return c.VideoID != ""
	case "direct":
		return c.VideoURL != ""
	case "embed":
		return c.EmbedCode != ""
	}
	return false
}
