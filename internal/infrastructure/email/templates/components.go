// Package templates provides email template components
package templates

import (
	"bytes"
	"html/template"
	"sort"
)

type ButtonProps struct {
	Text            string
	URL             string
	BackgroundColor string
	TextColor       string
}

// FieldRow is one label/value line in a details table.
type FieldRow struct {
	Label string
	Value string
}

var (
	buttonTemplate = template.Must(template.New("emailButton").Parse(
		`<table role="presentation" border="0" cellpadding="0" cellspacing="0" style="margin-bottom: 16px;"><tr>` +
			`<td style="border-radius: 4px; background-color: {{.BackgroundColor}};" bgcolor="{{.BackgroundColor}}">` +
			`<a href="{{.URL}}" target="_blank" style="display: inline-block; padding: 12px 24px; font-weight: bold; text-decoration: none; color: {{.TextColor}};">{{.Text}}</a>` +
			`</td></tr></table>`))

	paragraphTemplate = template.Must(template.New("emailParagraph").Parse(
		`<p style="font-size: 16px; margin: 0; margin-bottom: 16px;">{{.}}</p>`))

	fieldsTemplate = template.Must(template.New("emailFields").Parse(
		`<table role="presentation" border="0" cellpadding="6" cellspacing="0" width="100%" style="border-collapse: collapse; margin-bottom: 16px;">` +
			`{{range .}}<tr><td style="color: #6b7280; width: 35%; vertical-align: top; border-bottom: 1px solid #eaebed;">{{.Label}}</td>` +
			`<td style="vertical-align: top; border-bottom: 1px solid #eaebed; white-space: pre-wrap;">{{.Value}}</td></tr>{{end}}` +
			`</table>`))
)

func GetButton(props ButtonProps) string {
	if props.BackgroundColor == "" {
		props.BackgroundColor = "#0867ec"
	}
	if props.TextColor == "" {
		props.TextColor = "#ffffff"
	}
	return execute(buttonTemplate, props)
}

// GetParagraph renders text as an escaped paragraph.
func GetParagraph(text string) string {
	return execute(paragraphTemplate, text)
}

// GetFieldTable renders rows in order, skipping empty values.
func GetFieldTable(rows []FieldRow) string {
	kept := rows[:0:0]
	for _, r := range rows {
		if r.Value != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return execute(fieldsTemplate, kept)
}

// SortedRows turns a map into rows ordered by key.
func SortedRows(m map[string]string) []FieldRow {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([]FieldRow, len(keys))
	for i, k := range keys {
		rows[i] = FieldRow{Label: k, Value: m[k]}
	}
	return rows
}

func execute(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
