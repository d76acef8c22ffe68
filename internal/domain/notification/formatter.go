// internal/domain/notification/formatter.go
package notification

import (
	"fmt"
	"net/url"
	"strings"
)

// OrderSummary carries the order fields the notification templates
// need, decoupled from the order entity
type OrderSummary struct {
	OrderNumber  string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	City         string
	PostalCode   string
	Notes        string
	Items        []OrderLine
	Subtotal     int64
	DeliveryFee  int64
	Total        int64
}

// OrderLine is one line of an order summary. Amounts are in cents.
type OrderLine struct {
	Name      string
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// FormatEuro renders cents as a German-style euro amount
func FormatEuro(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d €", sign, cents/100, cents%100)
}

// BuildWhatsAppMessage renders the operator notification text for a
// new order
func BuildWhatsAppMessage(o *OrderSummary) string {
	var b strings.Builder
	b.WriteString("Neue Bestellung!\n\n")
	fmt.Fprintf(&b, "Bestellnummer: %s\n", o.OrderNumber)
	fmt.Fprintf(&b, "Kunde: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Telefon: %s\n", o.Phone)
	fmt.Fprintf(&b, "Adresse: %s, %s %s\n\n", o.Address, o.PostalCode, o.City)

	b.WriteString("Artikel:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %dx %s (%s)\n", item.Quantity, item.Name, FormatEuro(item.LineTotal))
	}

	fmt.Fprintf(&b, "\nZwischensumme: %s\n", FormatEuro(o.Subtotal))
	fmt.Fprintf(&b, "Liefergebühr: %s\n", FormatEuro(o.DeliveryFee))
	fmt.Fprintf(&b, "Gesamt: %s", FormatEuro(o.Total))

	if o.Notes != "" {
		fmt.Fprintf(&b, "\n\nAnmerkung: %s", o.Notes)
	}
	return b.String()
}

// BuildWhatsAppLink builds a deep link that opens a WhatsApp chat to
// the operator with the message prefilled. The phone number is used
// without the leading plus sign.
func BuildWhatsAppLink(phone, message string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	return fmt.Sprintf(
		"https://api.whatsapp.com/send?phone=%s&text=%s",
		url.QueryEscape(phone),
		url.QueryEscape(message),
	)
}

// NewOrderConfirmation builds the customer confirmation email for a
// freshly placed order
func NewOrderConfirmation(o *OrderSummary) *Notification {
	var b strings.Builder
	fmt.Fprintf(&b, "Hallo %s,\n\n", o.CustomerName)
	fmt.Fprintf(&b, "vielen Dank für deine Bestellung %s!\n\n", o.OrderNumber)

	b.WriteString("Deine Artikel:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %dx %s à %s = %s\n",
			item.Quantity, item.Name, FormatEuro(item.UnitPrice), FormatEuro(item.LineTotal))
	}

	fmt.Fprintf(&b, "\nZwischensumme: %s\n", FormatEuro(o.Subtotal))
	fmt.Fprintf(&b, "Liefergebühr: %s\n", FormatEuro(o.DeliveryFee))
	fmt.Fprintf(&b, "Gesamt: %s\n\n", FormatEuro(o.Total))
	fmt.Fprintf(&b, "Lieferadresse: %s, %s %s\n\n", o.Address, o.PostalCode, o.City)
	b.WriteString("Wir melden uns, sobald deine Bestellung unterwegs ist.")

	return &Notification{
		Channel:   ChannelEmail,
		Kind:      "order_confirmation",
		Recipient: o.Email,
		Subject:   fmt.Sprintf("Bestellbestätigung %s", o.OrderNumber),
		Body:      b.String(),
	}
}

// NewOperatorAlert builds the operator notification for a new order.
// It is delivered over the WhatsApp channel; the dispatcher resolves
// the deep link from the message body.
func NewOperatorAlert(o *OrderSummary, operatorEmail string) *Notification {
	return &Notification{
		Channel:   ChannelWhatsApp,
		Kind:      "new_order_alert",
		Recipient: operatorEmail,
		Subject:   fmt.Sprintf("Neue Bestellung %s", o.OrderNumber),
		Body:      BuildWhatsAppMessage(o),
	}
}

// NewContactMessage builds the operator email for a contact form
// submission
func NewContactMessage(operatorEmail, name, email, message string) *Notification {
	var b strings.Builder
	fmt.Fprintf(&b, "Neue Kontaktanfrage von %s (%s):\n\n%s", name, email, message)
	return &Notification{
		Channel:   ChannelEmail,
		Kind:      "contact_message",
		Recipient: operatorEmail,
		Subject:   fmt.Sprintf("Kontaktanfrage von %s", name),
		Body:      b.String(),
	}
}
