// internal/pkg/email/types.go
package email

import "context"

// Message represents an outgoing email
type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Provider delivers email messages through a concrete backend
type Provider interface {
	// Name returns the provider identifier used in configuration
	Name() string

	// Send delivers a single message
	Send(ctx context.Context, from, fromName string, msg *Message) error
}
