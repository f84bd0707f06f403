// Package mailer sends contact form submissions through the EmailJS REST API.
package mailer

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/gofolio/gofolio/internal/config"
)

const (
	sendPath = "/api/v1.0/email/send"

	defaultTimeout = 15 * time.Second
)

// Message is one contact form submission.
type Message struct {
	FromName  string
	FromEmail string
	Subject   string
	Body      string
}

// Client is the EmailJS client.
type Client struct {
	cfg  config.Mail
	http *resty.Client
}

// New creates a mailer client from the mail configuration.
func New(cfg config.Mail) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.emailjs.com"
	}

	return &Client{
		cfg: cfg,
		http: resty.New().
			SetBaseURL(cfg.Endpoint).
			SetTimeout(defaultTimeout),
	}
}

// Configured reports whether the EmailJS identifiers are present. When they
// are not, the contact page offers only the manual fallback.
func (c *Client) Configured() bool {
	return c.cfg.ServiceID != "" && c.cfg.TemplateID != "" && c.cfg.PublicKey != ""
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send posts the message as template parameters. Failures are classified so
// the contact page can explain what went wrong; the raw provider response is
// logged, never shown to visitors.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	req := sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: map[string]any{
			"from_name":  m.FromName,
			"from_email": m.FromEmail,
			"subject":    m.Subject,
			"message":    m.Body,
			"to_email":   c.cfg.ToEmail,
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(sendPath)
	if err != nil {
		return ErrProviderUnreachable
	}

	if resp.IsSuccess() {
		return nil
	}

	body := string(resp.Body())
	log.Error().
		Int("status", resp.StatusCode()).
		Str("body", body).
		Msg("email provider rejected the message")

	return classify(resp.StatusCode(), body)
}

// classify maps provider rejections onto the error taxonomy the contact page
// knows how to explain.
func classify(status int, body string) error {
	lower := strings.ToLower(body)

	// Status codes first: a 401/403 body may still mention "template".
	switch {
	case status == 401 || status == 403:
		return ErrAuthFailed
	case strings.Contains(lower, "service id not found"):
		return ErrServiceNotFound
	case strings.Contains(lower, "template"):
		return ErrTemplateNotFound
	default:
		return ErrSendFailed
	}
}
