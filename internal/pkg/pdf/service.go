// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/notification"
	"github.com/your-org/snackshop-backend/internal/domain/order"
)

// Service renders order receipts as PDF documents
type Service struct {
	shopName string
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{shopName: cfg.App.Name}
}

type receiptData struct {
	ShopName    string
	Order       *order.Order
	Items       []receiptItem
	Subtotal    string
	DeliveryFee string
	Total       string
	Date        string
}

type receiptItem struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; }
  h1 { font-size: 20px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #ddd; }
  td.num, th.num { text-align: right; }
  .totals td { border: none; }
  .grand { font-weight: bold; }
</style>
</head>
<body>
  <h1>{{.ShopName}}</h1>
  <p>Quittung für Bestellung <strong>{{.Order.OrderNumber}}</strong><br>
  Datum: {{.Date}}</p>

  <p>{{.Order.CustomerName}}<br>
  {{.Order.Address}}<br>
  {{.Order.PostalCode}} {{.Order.City}}</p>

  <table>
    <tr><th>Artikel</th><th class="num">Menge</th><th class="num">Einzelpreis</th><th class="num">Summe</th></tr>
    {{range .Items}}
    <tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineTotal}}</td></tr>
    {{end}}
  </table>

  <table class="totals">
    <tr><td>Zwischensumme</td><td class="num">{{.Subtotal}}</td></tr>
    <tr><td>Liefergebühr</td><td class="num">{{.DeliveryFee}}</td></tr>
    <tr class="grand"><td>Gesamt</td><td class="num">{{.Total}}</td></tr>
  </table>
</body>
</html>`))

// GenerateReceipt renders the order receipt and returns the PDF bytes
func (s *Service) GenerateReceipt(o *order.Order) ([]byte, error) {
	items := make([]receiptItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, receiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: notification.FormatEuro(item.UnitPrice),
			LineTotal: notification.FormatEuro(item.LineTotal),
		})
	}

	data := receiptData{
		ShopName:    s.shopName,
		Order:       o,
		Items:       items,
		Subtotal:    notification.FormatEuro(o.Subtotal),
		DeliveryFee: notification.FormatEuro(o.DeliveryFee),
		Total:       notification.FormatEuro(o.Total),
		Date:        o.CreatedAt.Format("02.01.2006 15:04"),
	}

	var html bytes.Buffer
	if err := receiptTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render receipt template: %w", err)
	}

	generator, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}
	generator.Dpi.Set(300)
	generator.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	page.EnableLocalFileAccess.Set(false)
	generator.AddPage(page)

	if err := generator.Create(); err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return generator.Bytes(), nil
}
