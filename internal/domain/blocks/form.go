package blocks

// FormField is one input of a lead form. Name is the submission key.
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type" default:"text"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FormConfig is a lead-capture form. Submissions become inquiries and are
// mailed to NotifyEmail when it is set.
type FormConfig struct {
	Passthrough
	Title          string      `json:"title" default:"Dapatkan Informasi Lengkap"`
	Fields         []FormField `json:"fields" default:"[{\"name\":\"name\",\"type\":\"text\",\"label\":\"Nama Lengkap\",\"required\":true},{\"name\":\"phone\",\"type\":\"tel\",\"label\":\"Nomor WhatsApp\",\"required\":true},{\"name\":\"email\",\"type\":\"email\",\"label\":\"Email\",\"required\":false}]"`
	SubmitText     string      `json:"submitText" default:"Kirim"`
	SuccessMessage string      `json:"successMessage" default:"Terima kasih! Tim kami akan segera menghubungi Anda."`
	Style          string      `json:"style" default:"modern"`
	ProjectID      string      `json:"projectId,omitempty"`
	ProjectName    string      `json:"projectName,omitempty"`
	NotifyEmail    string      `json:"notifyEmail,omitempty" lp:"email"`
}

func (*FormConfig) Kind() Kind { return KindForm }

// Field returns the declared field named name.
func (c *FormConfig) Field(name string) (FormField, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FormField{}, false
}
