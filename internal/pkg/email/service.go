// internal/pkg/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/prestigeweddings/storefront-backend/internal/config"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

// Service sends transactional email over SMTP
type Service struct {
	config *config.Config
	tmpl   *template.Template
}

// NewService creates a new email service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		tmpl:   template.Must(template.New("order_confirmation").Parse(orderConfirmationTemplate)),
	}
}

// Message represents an outbound email
type Message struct {
	To          []string
	Subject     string
	HTMLContent string
}

// SendOrderConfirmation emails the shopper a confirmation of their order
func (s *Service) SendOrderConfirmation(record *order.Record) error {
	html, err := s.renderOrderConfirmation(record)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	return s.Send(&Message{
		To:          []string{record.Customer.Email},
		Subject:     fmt.Sprintf("Order %s received - %s", record.OrderID, s.config.App.StoreName),
		HTMLContent: html,
	})
}

// Send delivers a message via the configured SMTP server
func (s *Service) Send(msg *Message) error {
	if s.config.Email.SMTPHost == "" {
		return fmt.Errorf("SMTP configuration incomplete: missing host")
	}

	var auth smtp.Auth
	if s.config.Email.SMTPUser != "" {
		auth = smtp.PlainAuth("",
			s.config.Email.SMTPUser,
			s.config.Email.SMTPPass,
			s.config.Email.SMTPHost)
	}

	from := s.config.Email.FromEmail
	if s.config.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	}

	headers := []string{
		"From: " + from,
		"To: " + strings.Join(msg.To, ", "),
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"utf-8\"",
	}

	var body bytes.Buffer
	body.WriteString(strings.Join(headers, "\r\n"))
	body.WriteString("\r\n\r\n")
	body.WriteString(msg.HTMLContent)

	serverAddr := fmt.Sprintf("%s:%d", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(serverAddr, auth, s.config.Email.FromEmail, msg.To, body.Bytes())
}

type orderConfirmationData struct {
	StoreName  string
	StoreEmail string
	StorePhone string
	Record     *order.Record
	OrderDate  string
	Total      string
}

func (s *Service) renderOrderConfirmation(record *order.Record) (string, error) {
	data := orderConfirmationData{
		StoreName:  s.config.App.StoreName,
		StoreEmail: s.config.App.StoreEmail,
		StorePhone: s.config.App.StorePhone,
		Record:     record,
		OrderDate:  record.CreatedAt.Format("January 2, 2006 15:04"),
		Total:      record.FormattedTotalUSD(),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const orderConfirmationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a1a;">
  <h2>Order Confirmed!</h2>
  <p>Thank you for your order with {{.StoreName}}. We'll contact you within
  24 hours to arrange payment and confirm your delivery date.</p>
  <p>
    <strong>Order ID:</strong> {{.Record.OrderID}}<br>
    <strong>Date:</strong> {{.OrderDate}}
  </p>
  <table cellpadding="6" cellspacing="0" border="0">
    {{range .Record.Lines}}
    <tr>
      <td>{{.Name}} ({{.Size}}) x{{.Quantity}}</td>
    </tr>
    {{end}}
  </table>
  <p><strong>Total Amount:</strong> ${{.Total}}</p>
  <p>Payment status: Pending &middot; Order status: New Order</p>
  <p>Questions? Reach us at {{.StoreEmail}} or {{.StorePhone}}.</p>
</body>
</html>`
