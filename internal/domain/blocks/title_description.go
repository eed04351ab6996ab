package blocks

type TitleDescriptionConfig struct {
	Passthrough
	Title            string `json:"title" default:"Judul Bagian"`
	Subtitle         string `json:"subtitle" default:"Subtitle yang menjelaskan lebih detail"`
	Description      string `json:"description" default:"Deskripsi lengkap yang memberikan informasi komprehensif tentang topik yang dibahas."`
	TitleSize        string `json:"titleSize" default:"large"`
	TextAlign        string `json:"textAlign" default:"center"`
	TitleColor       string `json:"titleColor" default:"#1a1a1a"`
	SubtitleColor    string `json:"subtitleColor" default:"#6c757d"`
	DescriptionColor string `json:"descriptionColor" default:"#495057"`
	BackgroundColor  string `json:"backgroundColor"`
	ShowSubtitle     *bool  `json:"showSubtitle" default:"true"`
	ShowDescription  *bool  `json:"showDescription" default:"true"`
	TitleFont        string `json:"titleFont" default:"default"`
	Spacing          string `json:"spacing" default:"normal"`
	MaxWidth         string `json:"maxWidth" default:"container"`
}

func (*TitleDescriptionConfig) Kind() Kind { return KindTitleDescription }

// CopyrightConfig is the legal line at the bottom of a page. An empty Year
// means the current year at render time.
type CopyrightConfig struct {
	Passthrough
	CompanyName           string       `json:"companyName" default:"Paramount Land"`
	Year                  string       `json:"year"`
	AdditionalText        string       `json:"additionalText"`
	ShowYear              *bool        `json:"showYear" default:"true"`
	ShowAllRightsReserved *bool        `json:"showAllRightsReserved" default:"true"`
	TextAlign             string       `json:"textAlign" default:"center"`
	TextSize              string       `json:"textSize" default:"medium"`
	TextColor             string       `json:"textColor" default:"#6c757d"`
	BackgroundColor       string       `json:"backgroundColor" default:"#f8f9fa"`
	ShowBorder            bool         `json:"showBorder"`
	Links                 []FooterLink `json:"links" default:"[]"`
}

func (*CopyrightConfig) Kind() Kind { return KindCopyright }
