package email

import (
	"context"
	"errors"

	"github.com/dmitrymomot/secretsanta/pkg/validator"
)

// EmailSender represents an interface for sending emails.
// Implementations must be safe for concurrent use.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`            // Recipient address, bare or "Name <addr>"
	Subject  string `json:"subject"`            // Subject of the email
	BodyText string `json:"body_text"`          // Plain text body
	BodyHTML string `json:"body_html"`          // HTML body
	ReplyTo  string `json:"reply_to,omitempty"` // Optional, overrides the configured reply-to
	Tag      string `json:"tag,omitempty"`      // Optional
}

// Validate checks the recipient, the subject and that at least one body is present.
func (p SendEmailParams) Validate() error {
	rules := []validator.Rule{
		validator.RequiredString("SendTo", p.SendTo),
		validator.ValidAddress("SendTo", p.SendTo),
		validator.RequiredString("Subject", p.Subject),
		validator.RequiredString("Body", p.BodyText+p.BodyHTML),
	}
	if p.ReplyTo != "" {
		rules = append(rules, validator.ValidAddress("ReplyTo", p.ReplyTo))
	}
	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

func replyTo(params SendEmailParams, fallback string) string {
	if params.ReplyTo != "" {
		return params.ReplyTo
	}
	return fallback
}
