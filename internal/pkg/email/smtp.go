// internal/pkg/email/smtp.go
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/your-org/snackshop-backend/internal/config"
)

// SMTPProvider delivers mail over plain SMTP
type SMTPProvider struct {
	host     string
	port     int
	username string
	password string
	useTLS   bool
}

// NewSMTPProvider creates an SMTP provider from configuration
func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		host:     cfg.External.Email.SMTPHost,
		port:     cfg.External.Email.SMTPPort,
		username: cfg.External.Email.SMTPUser,
		password: cfg.External.Email.SMTPPass,
		useTLS:   cfg.External.Email.SMTPTLS,
	}
}

// Name returns the provider identifier
func (p *SMTPProvider) Name() string { return "smtp" }

// Send delivers a message over SMTP
func (p *SMTPProvider) Send(ctx context.Context, from, fromName string, msg *Message) error {
	addr := fmt.Sprintf("%s:%d", p.host, p.port)

	contentType := "text/plain; charset=UTF-8"
	if msg.HTML {
		contentType = "text/html; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", fromName, from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	var auth smtp.Auth
	if p.username != "" {
		auth = smtp.PlainAuth("", p.username, p.password, p.host)
	}

	done := make(chan error, 1)
	go func() {
		if p.useTLS {
			done <- p.sendTLS(addr, auth, from, msg.To, []byte(b.String()))
			return
		}
		done <- smtp.SendMail(addr, auth, from, []string{msg.To}, []byte(b.String()))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *SMTPProvider) sendTLS(addr string, auth smtp.Auth, from, to string, body []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: p.host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, p.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
