package blocks

type StatItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Prefix      string `json:"prefix"`
	Suffix      string `json:"suffix"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color" default:"#3b82f6"`
}

type StatisticsConfig struct {
	Passthrough
	Title             string     `json:"title" default:"Pencapaian Kami"`
	Subtitle          string     `json:"subtitle"`
	Layout            string     `json:"layout" default:"grid"`
	Columns           int        `json:"columns" default:"3"`
	Animate           *bool      `json:"animate" default:"true"`
	AnimationDuration int        `json:"animationDuration" default:"2000"`
	Items             []StatItem `json:"items" default:"[]"`
	BackgroundColor   string     `json:"backgroundColor" default:"#ffffff"`
}

func (*StatisticsConfig) Kind() Kind { return KindStatistics }
