package templates

import "strings"

type InquiryEmailProps struct {
	PageTitle string
	PageURL   string
	Name      string
	Email     string
	Phone     string
	Message   string
	Fields    map[string]string
	Source    string
}

// GetInquiryEmailContent renders the body of a new inquiry notification.
func GetInquiryEmailContent(props InquiryEmailProps) string {
	var b strings.Builder
	b.WriteString(GetParagraph("You have a new inquiry from " + props.PageTitle + "."))
	b.WriteString(GetFieldTable([]FieldRow{
		{Label: "Name", Value: props.Name},
		{Label: "Email", Value: props.Email},
		{Label: "Phone", Value: props.Phone},
		{Label: "Message", Value: props.Message},
		{Label: "Source", Value: props.Source},
	}))
	if len(props.Fields) > 0 {
		b.WriteString(GetFieldTable(SortedRows(props.Fields)))
	}
	if props.PageURL != "" {
		b.WriteString(GetButton(ButtonProps{Text: "Open landing page", URL: props.PageURL}))
	}
	return b.String()
}
