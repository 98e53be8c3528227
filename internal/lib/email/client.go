// Package email sends notification emails through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/estate-listings/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Template names a file under templates/ without its extension.
type Template string

const (
	// TemplateContactInquiry corresponds to templates/contact_inquiry.html.
	TemplateContactInquiry Template = "contact_inquiry"
)

//go:embed templates/*.html
var templates embed.FS

// Client wraps the Resend client.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates a Client. An empty API key still yields a client;
// Enabled reports whether it can actually send.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   cfg.Integration.FromAddress,
		logger: logger,
	}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c.client != nil && c.client.ApiKey != ""
}

// Render executes a template with data.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templates, fmt.Sprintf("templates/%s.html", name))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// SendEmail renders a template and sends it to a single recipient.
func (c *Client) SendEmail(ctx context.Context, to, subject string, name Template, data map[string]string) error {
	html, err := Render(name, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().Str("template", string(name)).Str("to", to).Msg("email sent")
	return nil
}
