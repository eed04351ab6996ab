// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/email/templates"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendInquiryNotification(to string, page *content.LandingPage, inquiry *content.Inquiry) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	baseURL   string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}
	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.EmailFrom,
		fromName:  config.EmailFromName,
		baseURL:   config.PublicBaseURL,
	}, nil
}

// SendInquiryNotification emails a new form submission to the page's
// configured recipient.
func (c *ResendClient) SendInquiryNotification(to string, page *content.LandingPage, inquiry *content.Inquiry) error {
	params, err := c.inquiryRequest(to, page, inquiry)
	if err != nil {
		return err
	}
	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send inquiry email via Resend: %w", err)
	}
	return nil
}

func (c *ResendClient) inquiryRequest(to string, page *content.LandingPage, inquiry *content.Inquiry) (*resend.SendEmailRequest, error) {
	var pageURL string
	if c.baseURL != "" {
		pageURL = c.baseURL + "/lp/" + page.Slug
	}
	body := templates.GetInquiryEmailContent(templates.InquiryEmailProps{
		PageTitle: page.Title,
		PageURL:   pageURL,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		Message:   inquiry.Message,
		Fields:    inquiry.Fields,
		Source:    inquiry.Source,
	})
	html, err := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: "New inquiry from " + inquiry.Name,
		Title:     "New inquiry",
		Content:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render inquiry email: %w", err)
	}

	req := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: fmt.Sprintf("New inquiry: %s", page.Title),
		Html:    html,
	}
	if inquiry.Email != "" {
		req.ReplyTo = inquiry.Email
	}
	return req, nil
}
