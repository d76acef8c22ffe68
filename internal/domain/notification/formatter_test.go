// internal/domain/notification/formatter_test.go
package notification

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *OrderSummary {
	return &OrderSummary{
		OrderNumber:  "ORD-20250615-ABCD1234",
		CustomerName: "Max Mustermann",
		Email:        "max@example.com",
		Phone:        "+4915112345678",
		Address:      "Deichstraße 1",
		City:         "Cuxhaven",
		PostalCode:   "27472",
		Items: []OrderLine{
			{Name: "Cola 0,5l", Quantity: 2, UnitPrice: 250, LineTotal: 500},
			{Name: "Chips Paprika", Quantity: 1, UnitPrice: 199, LineTotal: 199},
		},
		Subtotal:    699,
		DeliveryFee: 500,
		Total:       1199,
	}
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "0,00 €", FormatEuro(0))
	assert.Equal(t, "0,05 €", FormatEuro(5))
	assert.Equal(t, "19,99 €", FormatEuro(1999))
	assert.Equal(t, "5,00 €", FormatEuro(500))
	assert.Equal(t, "-2,50 €", FormatEuro(-250))
}

func TestBuildWhatsAppMessage(t *testing.T) {
	msg := BuildWhatsAppMessage(sampleOrder())

	assert.Contains(t, msg, "Neue Bestellung!")
	assert.Contains(t, msg, "ORD-20250615-ABCD1234")
	assert.Contains(t, msg, "Max Mustermann")
	assert.Contains(t, msg, "- 2x Cola 0,5l (5,00 €)")
	assert.Contains(t, msg, "- 1x Chips Paprika (1,99 €)")
	assert.Contains(t, msg, "Gesamt: 11,99 €")
	assert.NotContains(t, msg, "Anmerkung")
}

func TestBuildWhatsAppMessageWithNotes(t *testing.T) {
	o := sampleOrder()
	o.Notes = "Bitte klingeln"

	msg := BuildWhatsAppMessage(o)
	assert.Contains(t, msg, "Anmerkung: Bitte klingeln")
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("+491234567", "Hallo Welt & Co")

	require.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=491234567&text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "491234567", parsed.Query().Get("phone"))
	assert.Equal(t, "Hallo Welt & Co", parsed.Query().Get("text"))
}

func TestNewOrderConfirmation(t *testing.T) {
	n := NewOrderConfirmation(sampleOrder())

	assert.Equal(t, ChannelEmail, n.Channel)
	assert.Equal(t, "order_confirmation", n.Kind)
	assert.Equal(t, "max@example.com", n.Recipient)
	assert.Contains(t, n.Subject, "ORD-20250615-ABCD1234")
	assert.Contains(t, n.Body, "2x Cola 0,5l")
	assert.Contains(t, n.Body, "Liefergebühr: 5,00 €")
	assert.Contains(t, n.Body, "Gesamt: 11,99 €")
}

func TestNewOperatorAlert(t *testing.T) {
	n := NewOperatorAlert(sampleOrder(), "shop@example.com")

	assert.Equal(t, ChannelWhatsApp, n.Channel)
	assert.Equal(t, "new_order_alert", n.Kind)
	assert.Equal(t, "shop@example.com", n.Recipient)
	assert.Contains(t, n.Body, "Neue Bestellung!")
}

func TestNewStatusChangeMessage(t *testing.T) {
	n := NewStatusChangeMessage("ORD-1", "max@example.com", "delivering")

	assert.Equal(t, ChannelEmail, n.Channel)
	assert.Contains(t, n.Body, "Unterwegs")
	assert.Contains(t, n.Subject, "ORD-1")
}
