// internal/domain/notification/entity.go
package notification

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Channel identifies how a notification is delivered
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Status tracks outbox dispatch progress
type Status string

const (
	StatusPending    Status = "pending"
	StatusDispatched Status = "dispatched"
	StatusFailed     Status = "failed"
)

// Notification is a durable outbox row. Rows are written in the same
// transaction as the business change they announce and picked up by
// the dispatcher afterwards, so delivery is at-least-once.
type Notification struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Channel   Channel `gorm:"not null;size:20;index" json:"channel"`
	Kind      string  `gorm:"not null;size:50" json:"kind"`
	Recipient string  `gorm:"not null;size:255" json:"recipient"`
	Subject   string  `gorm:"size:255" json:"subject"`
	Body      string  `gorm:"type:text" json:"body"`

	Status       Status     `gorm:"not null;size:20;default:'pending';index" json:"status"`
	Attempts     int        `gorm:"default:0" json:"attempts"`
	LastError    string     `gorm:"type:text" json:"last_error,omitempty"`
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Notification) TableName() string { return "notifications" }

// Enqueue appends a notification to the outbox inside the caller's
// transaction
func Enqueue(tx *gorm.DB, n *Notification) error {
	n.Status = StatusPending
	if err := tx.Create(n).Error; err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

// NewStatusChangeMessage builds the customer email announcing an
// order status change
func NewStatusChangeMessage(orderNumber, email, status string) *Notification {
	return &Notification{
		Channel:   ChannelEmail,
		Kind:      "order_status_change",
		Recipient: email,
		Subject:   fmt.Sprintf("Bestellung %s: Status aktualisiert", orderNumber),
		Body: fmt.Sprintf(
			"Hallo,\n\nder Status deiner Bestellung %s hat sich geändert: %s.\n\nVielen Dank für deine Bestellung!",
			orderNumber, statusLabel(status),
		),
	}
}

func statusLabel(status string) string {
	switch status {
	case "pending":
		return "Eingegangen"
	case "processing":
		return "In Bearbeitung"
	case "delivering":
		return "Unterwegs"
	case "completed":
		return "Zugestellt"
	case "cancelled":
		return "Storniert"
	default:
		return status
	}
}
