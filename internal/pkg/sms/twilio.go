// internal/pkg/sms/twilio.go
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
)

// Sender delivers a single SMS message
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioClient sends SMS through the Twilio Messages API
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string
	client     *http.Client
	logger     *logrus.Logger
}

// NewTwilioClient creates a Twilio SMS client from configuration
func NewTwilioClient(cfg *config.Config, logger *logrus.Logger) *TwilioClient {
	return &TwilioClient{
		accountSID: cfg.External.SMS.AccountSID,
		authToken:  cfg.External.SMS.AuthToken,
		fromNumber: cfg.External.SMS.FromNumber,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Send delivers an SMS to the given phone number
func (c *TwilioClient) Send(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, string(detail))
	}

	c.logger.WithField("to", to).Info("SMS sent")
	return nil
}

// LogSender writes SMS messages to the log instead of sending them.
// Used when no Twilio credentials are configured.
type LogSender struct {
	Logger *logrus.Logger
}

// Send logs the message
func (s *LogSender) Send(ctx context.Context, to, body string) error {
	s.Logger.WithFields(logrus.Fields{
		"to":   to,
		"body": body,
	}).Info("SMS (log sender)")
	return nil
}
