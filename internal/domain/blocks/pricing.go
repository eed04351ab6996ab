package blocks

type PlanFeature struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Included  *bool  `json:"included" default:"true"`
	Highlight bool   `json:"highlight"`
}

type PricingPlan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	Currency    string        `json:"currency" default:"Rp"`
	Period      string        `json:"period"`
	Badge       string        `json:"badge"`
	BadgeColor  string        `json:"badgeColor" default:"#3b82f6"`
	Features    []PlanFeature `json:"features" default:"[]"`
	CTAText     string        `json:"ctaText" default:"Pilih Paket"`
	CTAURL      string        `json:"ctaUrl" lp:"link"`
	Highlighted bool          `json:"highlighted"`
}

// PricingConfig lists purchase plans side by side.
type PricingConfig struct {
	Passthrough
	Title          string        `json:"title" default:"Pilihan Harga"`
	Subtitle       string        `json:"subtitle"`
	Layout         string        `json:"layout" default:"cards"`
	Columns        int           `json:"columns" default:"3"`
	ShowComparison bool          `json:"showComparison"`
	Plans          []PricingPlan `json:"plans" default:"[]"`
}

func (*PricingConfig) Kind() Kind { return KindPricing }
