// Package templates provides email template layout
package templates

import (
	"bytes"
	"html/template"
)

type EmailLayoutProps struct {
	Preheader  string
	Title      string
	Content    string
	FooterText string
}

type emailTemplateData struct {
	Preheader  string
	Title      string
	Content    template.HTML
	FooterText string
}

var emailLayoutTemplate = template.Must(template.New("emailLayout").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>{{.Title}}</title>
  </head>
  <body style="font-family: Helvetica, sans-serif; font-size: 16px; line-height: 1.4; background-color: #f4f5f6; margin: 0; padding: 0;">
    <span style="display: none; max-height: 0; overflow: hidden;">{{.Preheader}}</span>
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%" bgcolor="#f4f5f6">
      <tr>
        <td align="center" style="padding: 24px 8px;">
          <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="600" style="max-width: 600px; background: #ffffff; border: 1px solid #eaebed; border-radius: 16px;">
            <tr><td style="padding: 24px;">{{.Content}}</td></tr>
          </table>
          <p style="color: #9a9ea6; font-size: 14px; margin-top: 24px;">{{.FooterText}}</p>
        </td>
      </tr>
    </table>
  </body>
</html>`))

// GetEmailLayout wraps already-rendered content in the shared layout.
func GetEmailLayout(props EmailLayoutProps) (string, error) {
	footer := props.FooterText
	if footer == "" {
		footer = "Sent by your landing page builder"
	}
	title := props.Title
	if title == "" {
		title = "Notification"
	}

	var buf bytes.Buffer
	err := emailLayoutTemplate.Execute(&buf, emailTemplateData{
		Preheader:  props.Preheader,
		Title:      title,
		Content:    template.HTML(props.Content),
		FooterText: footer,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
