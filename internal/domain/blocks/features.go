package blocks

type Feature struct {
	ID          string `json:"id"`
	Icon        string `json:"icon" default:"home"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FeaturesConfig struct {
	Passthrough
	Title    string    `json:"title" default:"Mengapa Memilih Kami"`
	Features []Feature `json:"features" default:"[]"`
	Layout   string    `json:"layout" default:"grid"`
	Columns  int       `json:"columns" default:"2"`
}

func (*FeaturesConfig) Kind() Kind { return KindFeatures }

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Content  string `json:"content"`
	Avatar   string `json:"avatar" lp:"image"`
	Rating   int    `json:"rating" default:"5"`
}

type TestimonialConfig struct {
	Passthrough
	Title        string        `json:"title" default:"Apa Kata Mereka"`
	Testimonials []Testimonial `json:"testimonials" default:"[]"`
	Layout       string        `json:"layout" default:"grid"`
	AutoPlay     bool          `json:"autoPlay"`
}

func (*TestimonialConfig) Kind() Kind { return KindTestimonial }
