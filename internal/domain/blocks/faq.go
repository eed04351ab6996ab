package blocks

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type FAQConfig struct {
	Passthrough
	Title         string    `json:"title" default:"Pertanyaan yang Sering Diajukan"`
	Subtitle      string    `json:"subtitle"`
	Searchable    *bool     `json:"searchable" default:"true"`
	Categories    []string  `json:"categories" default:"[]"`
	Items         []FAQItem `json:"items" default:"[]"`
	AllowMultiple bool      `json:"allowMultiple"`
}

func (*FAQConfig) Kind() Kind { return KindFAQ }
