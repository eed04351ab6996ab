package blocks

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Place struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email" lp:"email"`
	Hours       string       `json:"hours"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type LocationConfig struct {
	Passthrough
	Title           string  `json:"title" default:"Lokasi Kami"`
	Subtitle        string  `json:"subtitle"`
	ShowMap         *bool   `json:"showMap" default:"true"`
	MapType         string  `json:"mapType" default:"openstreetmap"`
	MapURL          string  `json:"mapUrl" lp:"link"`
	EmbedCode       string  `json:"embedCode"`
	Locations       []Place `json:"locations" default:"[]"`
	ShowContactInfo *bool   `json:"showContactInfo" default:"true"`
	MapHeight       int     `json:"mapHeight" default:"400"`
}

func (*LocationConfig) Kind() Kind { return KindLocation }
