// Package email wraps the Mailgun API as the outbound email capability.
package email

import (
	"context"
	"errors"
	"regexp"

	"github.com/mailgun/mailgun-go/v4"
)

var (
	ErrEmptyEmail    = errors.New("empty email not allowed")
	ErrNotConfigured = errors.New("email service not configured. Please provide MAILGUN_DOMAIN and MAILGUN_API_KEY environment variables")
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

type EmailSvcOpts struct {
	Domain string `json:"domain"`
	APIKey string `json:"apiKey"`
	Sender string `json:"sender"`
}

// EmailService sends HTML email through Mailgun. Constructed without
// credentials it still answers; every send then fails with ErrNotConfigured
// so the caller can surface a configuration hint instead of crashing.
type EmailService struct {
	client *mailgun.MailgunImpl
	domain string
	sender string
}

func NewEmailService(ops *EmailSvcOpts) *EmailService {
	svc := &EmailService{
		domain: ops.Domain,
		sender: ops.Sender,
	}
	if ops.Domain != "" && ops.APIKey != "" {
		svc.client = mailgun.NewMailgun(ops.Domain, ops.APIKey)
	}
	if svc.sender == "" {
		svc.sender = "no-reply@" + ops.Domain
	}
	return svc
}

func (s *EmailService) Configured() bool {
	return s.client != nil
}

// Send delivers content as HTML with a plain-text alternative and returns
// the provider message id.
func (s *EmailService) Send(ctx context.Context, to, subject, content string) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}
	if to == "" || content == "" {
		return "", ErrEmptyEmail
	}

	m := s.client.NewMessage(s.sender, subject, tagPattern.ReplaceAllString(content, ""), to)
	m.SetHtml(content)

	_, id, err := s.client.Send(ctx, m)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Verify checks that the configured domain is known to Mailgun. Backs the
// email status endpoint.
func (s *EmailService) Verify(ctx context.Context) error {
	if s.client == nil {
		return ErrNotConfigured
	}
	if _, err := s.client.GetDomain(ctx, s.domain); err != nil {
		return err
	}
	return nil
}
