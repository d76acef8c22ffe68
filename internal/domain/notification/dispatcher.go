// internal/domain/notification/dispatcher.go
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
	"gorm.io/gorm"
)

// EmailSender delivers a single email message
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Dispatcher drains the notification outbox. It polls for pending
// rows and delivers them, marking each row dispatched only after the
// delivery succeeded. Rows that keep failing are parked as failed
// once the attempt budget is spent.
type Dispatcher struct {
	db     *gorm.DB
	sender EmailSender
	logger *logrus.Logger

	pollInterval   time.Duration
	maxAttempts    int
	batchSize      int
	whatsAppNumber string
}

// NewDispatcher creates an outbox dispatcher
func NewDispatcher(db *gorm.DB, sender EmailSender, logger *logrus.Logger, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		db:             db,
		sender:         sender,
		logger:         logger,
		pollInterval:   cfg.Notification.PollInterval,
		maxAttempts:    cfg.Notification.MaxAttempts,
		batchSize:      20,
		whatsAppNumber: cfg.Notification.WhatsAppNumber,
	}
}

// Run polls the outbox until the context is cancelled
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.WithField("interval", d.pollInterval).Info("Notification dispatcher started")

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Notification dispatcher stopped")
			return
		case <-ticker.C:
			if n, err := d.DispatchPending(ctx); err != nil {
				d.logger.WithError(err).Error("Outbox poll failed")
			} else if n > 0 {
				d.logger.WithField("count", n).Debug("Notifications dispatched")
			}
		}
	}
}

// DispatchPending delivers one batch of pending notifications and
// returns how many were dispatched successfully
func (d *Dispatcher) DispatchPending(ctx context.Context) (int, error) {
	var pending []Notification
	err := d.db.WithContext(ctx).
		Where("status = ? AND attempts < ?", StatusPending, d.maxAttempts).
		Order("created_at ASC").
		Limit(d.batchSize).
		Find(&pending).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load pending notifications: %w", err)
	}

	dispatched := 0
	for i := range pending {
		n := &pending[i]
		if err := d.deliver(ctx, n); err != nil {
			d.recordFailure(ctx, n, err)
			continue
		}
		now := time.Now()
		if err := d.db.WithContext(ctx).Model(n).Updates(map[string]interface{}{
			"status":        StatusDispatched,
			"attempts":      n.Attempts + 1,
			"last_error":    "",
			"dispatched_at": &now,
		}).Error; err != nil {
			d.logger.WithError(err).WithField("notification_id", n.ID).
				Error("Failed to mark notification dispatched")
			continue
		}
		dispatched++
	}
	return dispatched, nil
}

func (d *Dispatcher) deliver(ctx context.Context, n *Notification) error {
	switch n.Channel {
	case ChannelEmail:
		return d.sender.Send(ctx, n.Recipient, n.Subject, n.Body)

	case ChannelWhatsApp:
		// The server cannot open a chat itself. The operator gets an
		// email carrying a prefilled deep link, and the link is logged
		// so it also appears in the operator's console.
		link := BuildWhatsAppLink(d.whatsAppNumber, n.Body)
		d.logger.WithFields(logrus.Fields{
			"notification_id": n.ID,
			"whatsapp_link":   link,
		}).Info("New order WhatsApp link")

		body := n.Body + "\n\nWhatsApp öffnen:\n" + link
		return d.sender.Send(ctx, n.Recipient, n.Subject, body)

	default:
		return fmt.Errorf("unknown notification channel: %s", n.Channel)
	}
}

func (d *Dispatcher) recordFailure(ctx context.Context, n *Notification, cause error) {
	attempts := n.Attempts + 1
	status := StatusPending
	if attempts >= d.maxAttempts {
		status = StatusFailed
	}

	if err := d.db.WithContext(ctx).Model(n).Updates(map[string]interface{}{
		"status":     status,
		"attempts":   attempts,
		"last_error": cause.Error(),
	}).Error; err != nil {
		d.logger.WithError(err).WithField("notification_id", n.ID).
			Error("Failed to record notification failure")
		return
	}

	d.logger.WithError(cause).WithFields(logrus.Fields{
		"notification_id": n.ID,
		"attempts":        attempts,
		"status":          status,
	}).Warn("Notification delivery failed")
}
