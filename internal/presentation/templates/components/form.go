package components

import (
	"html/template"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

var formTmpl = template.Must(template.New("form").Parse(
	`<div class="lp-form lp-form-{{.Style}} mx-auto max-w-xl {{.Padding}}" id="contact">` +
		`{{if .Title}}<h2 class="lp-title text-2xl font-bold mb-6">{{.Title}}</h2>{{end}}` +
		`<form method="post" action="{{.Action}}" data-component="{{.ComponentID}}" data-success="{{.Success}}">` +
		`<input type="hidden" name="componentId" value="{{.ComponentID}}">` +
		`{{range .Fields}}<div class="lp-field mb-4" data-item="{{.Name}}">` +
		`<label for="{{$.ComponentID}}-{{.Name}}">{{.Label}}{{if .Required}} <span class="text-red-500">*</span>{{end}}</label>` +
		`{{if eq .Type "textarea"}}<textarea id="{{$.ComponentID}}-{{.Name}}" name="{{.Name}}"{{if .Required}} required{{end}}></textarea>` +
		`{{else if eq .Type "select"}}<select id="{{$.ComponentID}}-{{.Name}}" name="{{.Name}}"{{if .Required}} required{{end}}>{{range .Options}}<option value="{{.}}">{{.}}</option>{{end}}</select>` +
		`{{else}}<input id="{{$.ComponentID}}-{{.Name}}" type="{{.Type}}" name="{{.Name}}"{{if .Required}} required{{end}}>{{end}}` +
		`</div>{{end}}` +
		`<button type="submit" class="lp-button w-full">{{.SubmitText}}</button>` +
		`</form></div>`,
))

func renderForm(cfg blocks.Config, rc *rendering.RenderContext) (rendering.Fragment, error) {
	c := cfg.(*blocks.FormConfig)
	if len(c.Fields) == 0 {
		return empty(rc, blocks.KindForm, "")
	}

	action := "#"
	if rc.Slug != "" {
		action = "/api/v1/lp/" + rc.Slug + "/inquiries"
	}
	padding := "px-8 py-12"
	if rc.Viewport == rendering.Mobile {
		padding = "px-4 py-8"
	}

	body, err := execute(formTmpl, map[string]any{
		"Title":       c.Title,
		"Style":       c.Style,
		"Fields":      c.Fields,
		"SubmitText":  c.SubmitText,
		"Success":     c.SuccessMessage,
		"Action":      action,
		"ComponentID": rc.ComponentID,
		"Padding":     padding,
	})
	if err != nil {
		return rendering.Fragment{}, err
	}
	out, err := section(rc, blocks.KindForm, "", "", body)
	if err != nil {
		return rendering.Fragment{}, err
	}
	return rendering.Fragment{HTML: out, Items: len(c.Fields)}, nil
}
