// internal/pkg/email/api_providers.go
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/your-org/snackshop-backend/internal/config"
)

// ResendProvider delivers mail through the Resend HTTP API
type ResendProvider struct {
	apiKey string
	client *http.Client
}

// NewResendProvider creates a Resend provider from configuration
func NewResendProvider(cfg *config.Config) *ResendProvider {
	return &ResendProvider{
		apiKey: cfg.External.Email.APIKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the provider identifier
func (p *ResendProvider) Name() string { return "resend" }

// Send delivers a message through the Resend API
func (p *ResendProvider) Send(ctx context.Context, from, fromName string, msg *Message) error {
	payload := map[string]interface{}{
		"from":    fmt.Sprintf("%s <%s>", fromName, from),
		"to":      []string{msg.To},
		"subject": msg.Subject,
	}
	if msg.HTML {
		payload["html"] = msg.Body
	} else {
		payload["text"] = msg.Body
	}

	return p.post(ctx, "https://api.resend.com/emails", payload)
}

func (p *ResendProvider) post(ctx context.Context, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// SendGridProvider delivers mail through the SendGrid HTTP API
type SendGridProvider struct {
	apiKey string
	client *http.Client
}

// NewSendGridProvider creates a SendGrid provider from configuration
func NewSendGridProvider(cfg *config.Config) *SendGridProvider {
	return &SendGridProvider{
		apiKey: cfg.External.Email.APIKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the provider identifier
func (p *SendGridProvider) Name() string { return "sendgrid" }

// Send delivers a message through the SendGrid API
func (p *SendGridProvider) Send(ctx context.Context, from, fromName string, msg *Message) error {
	contentType := "text/plain"
	if msg.HTML {
		contentType = "text/html"
	}

	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": msg.To}}},
		},
		"from":    map[string]string{"email": from, "name": fromName},
		"subject": msg.Subject,
		"content": []map[string]string{
			{"type": contentType, "value": msg.Body},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.sendgrid.com/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
