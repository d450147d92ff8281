// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/prestigeweddings/storefront-backend/internal/config"
	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

// Service handles PDF invoice generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateInvoice generates a PDF invoice for an order record
func (s *Service) GenerateInvoice(record *order.Record) (*bytes.Buffer, error) {
	data := InvoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%s", record.OrderID),
		InvoiceDate:   record.CreatedAt.Format("January 2, 2006"),
		Record:        record,
		Total:         record.FormattedTotalUSD(),
		TotalKES:      order.FormatAmount(record.TotalKES),
		Store: StoreInfo{
			Name:  s.config.App.StoreName,
			Phone: s.config.App.StorePhone,
			Email: s.config.App.StoreEmail,
		},
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from the invoice template
func (s *Service) generateHTML(data InvoiceData) (string, error) {
	tmpl := template.Must(template.New("invoice").Funcs(template.FuncMap{
		"add1": func(i int) int { return i + 1 },
		"usd":  func(l cart.Line) string { return order.FormatAmount(l.TotalUSD()) },
	}).Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber string        `json:"invoice_number"`
	InvoiceDate   string        `json:"invoice_date"`
	Record        *order.Record `json:"record"`
	Total         string        `json:"total"`
	TotalKES      string        `json:"total_kes"`
	Store         StoreInfo     `json:"store"`
}

// StoreInfo represents the store identity on the invoice
type StoreInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Invoice HTML template
const invoiceTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { margin-bottom: 30px; border-bottom: 2px solid #d4af37; padding-bottom: 20px; }
        .invoice-title { font-size: 28px; font-weight: bold; color: #d4af37; margin-bottom: 10px; }
        .meta { margin-bottom: 30px; }
        table.items { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
        table.items th, table.items td { border-bottom: 1px solid #eee; padding: 8px; text-align: left; }
        table.items th { background: #f8f7f5; }
        .totals { text-align: right; font-size: 16px; }
        .totals .grand { font-weight: bold; font-size: 20px; color: #d4af37; }
        .status { margin-top: 20px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <div class="invoice-title">{{.Store.Name}}</div>
        <div>{{.Store.Email}} &middot; {{.Store.Phone}}</div>
    </div>

    <div class="meta">
        <strong>Invoice:</strong> {{.InvoiceNumber}}<br>
        <strong>Date:</strong> {{.InvoiceDate}}<br>
        <strong>Order:</strong> {{.Record.OrderID}}<br>
        <strong>Customer:</strong> {{.Record.Customer.FullName}}<br>
        <strong>Email:</strong> {{.Record.Customer.Email}}<br>
        <strong>Phone:</strong> {{.Record.Customer.Phone}}
    </div>

    <table class="items">
        <tr><th>#</th><th>Item</th><th>Size</th><th>Qty</th><th>Amount (USD)</th></tr>
        {{range $i, $line := .Record.Lines}}
        <tr>
            <td>{{add1 $i}}</td>
            <td>{{$line.Name}}</td>
            <td>{{$line.Size}}</td>
            <td>{{$line.Quantity}}</td>
            <td>${{usd $line}}</td>
        </tr>
        {{end}}
    </table>

    <div class="totals">
        Total (KES): KSh {{.TotalKES}}<br>
        <span class="grand">Total (USD): ${{.Total}}</span>
    </div>

    <div class="status">
        Payment Status: Pending &middot; Order Status: New Order
    </div>
</body>
</html>`
