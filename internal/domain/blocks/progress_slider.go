package blocks

type ProgressItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Percentage  int    `json:"percentage"`
	Image       string `json:"image" lp:"image"`
	Status      string `json:"status" default:"upcoming"`
}

type ProgressSliderConfig struct {
	Passthrough
	Title              string         `json:"title" default:"Progres Pembangunan"`
	Subtitle           string         `json:"subtitle"`
	ProgressItems      []ProgressItem `json:"progressItems" default:"[]"`
	AutoPlay           bool           `json:"autoPlay"`
	AutoPlaySpeed      int            `json:"autoPlaySpeed" default:"5"`
	ShowProgressBar    *bool          `json:"showProgressBar" default:"true"`
	ShowPercentage     *bool          `json:"showPercentage" default:"true"`
	ShowNavigationDots *bool          `json:"showNavigationDots" default:"true"`
	ShowArrows         *bool          `json:"showArrows" default:"true"`
	BackgroundColor    string         `json:"backgroundColor" default:"#f9fafb"`
	AccentColor        string         `json:"accentColor" default:"#3b82f6"`
}

func (*ProgressSliderConfig) Kind() Kind { return KindProgressSlider }
