package blocks

type TimelineItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status" default:"upcoming"`
	Icon        string `json:"icon"`
	Image       string `json:"image" lp:"image"`
	Progress    int    `json:"progress"`
}

// TimelineConfig shows project milestones. A horizontal layout is rendered
// vertically on mobile.
type TimelineConfig struct {
	Passthrough
	Title        string         `json:"title" default:"Perjalanan Proyek"`
	Subtitle     string         `json:"subtitle"`
	Layout       string         `json:"layout" default:"vertical"`
	ShowProgress *bool          `json:"showProgress" default:"true"`
	ShowImages   *bool          `json:"showImages" default:"true"`
	ShowDates    *bool          `json:"showDates" default:"true"`
	Items        []TimelineItem `json:"items" default:"[]"`
}

func (*TimelineConfig) Kind() Kind { return KindTimeline }
