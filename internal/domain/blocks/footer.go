package blocks

type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url" lp:"link"`
}

type FooterSection struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links" default:"[]"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url" lp:"link"`
	Icon     string `json:"icon"`
}

type FooterConfig struct {
	Passthrough
	CompanyName     string          `json:"companyName" default:"Paramount Land"`
	Description     string          `json:"description"`
	Logo            string          `json:"logo" lp:"image"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email" lp:"email"`
	Sections        []FooterSection `json:"sections" default:"[]"`
	SocialMedia     []SocialLink    `json:"socialMedia" default:"[]"`
	BackgroundColor string          `json:"backgroundColor" default:"#1f2937"`
	TextColor       string          `json:"textColor" default:"#ffffff"`
	ShowDivider     *bool           `json:"showDivider" default:"true"`
	Layout          string          `json:"layout" default:"columns"`
	Columns         int             `json:"columns" default:"4"`
	Copyright       string          `json:"copyright"`
}

func (*FooterConfig) Kind() Kind { return KindFooter }
