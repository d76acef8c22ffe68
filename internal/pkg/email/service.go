// internal/pkg/email/service.go
package email

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
)

// Service sends transactional email through the configured provider
type Service struct {
	provider Provider
	from     string
	fromName string
	logger   *logrus.Logger
}

// NewService creates an email service. The provider is selected by
// EMAIL_PROVIDER; unknown values fall back to a logging no-op so a
// development setup works without credentials.
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	var provider Provider
	switch cfg.External.Email.Provider {
	case "smtp":
		provider = NewSMTPProvider(cfg)
	case "resend":
		provider = NewResendProvider(cfg)
	case "sendgrid":
		provider = NewSendGridProvider(cfg)
	default:
		provider = &logProvider{logger: logger}
	}

	logger.WithField("provider", provider.Name()).Info("Email service initialized")

	return &Service{
		provider: provider,
		from:     cfg.External.Email.FromEmail,
		fromName: cfg.External.Email.FromName,
		logger:   logger,
	}
}

// Send delivers a plain-text email to a single recipient
func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	msg := &Message{To: to, Subject: subject, Body: body}
	if err := s.provider.Send(ctx, s.from, s.fromName, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	s.logger.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Debug("Email sent")
	return nil
}

// logProvider writes mail to the log instead of sending it
type logProvider struct {
	logger *logrus.Logger
}

func (p *logProvider) Name() string { return "log" }

func (p *logProvider) Send(ctx context.Context, from, fromName string, msg *Message) error {
	p.logger.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("Email (log provider):\n" + msg.Body)
	return nil
}
