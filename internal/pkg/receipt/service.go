// internal/pkg/receipt/service.go
package receipt

import (
	"fmt"
	"strings"

	"github.com/prestigeweddings/storefront-backend/internal/config"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

const (
	headerWidth = 56
	divider     = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

	// timestampLayout renders the order timestamp the way the storefront
	// has always shown it: MM/DD/YYYY, 24-hour clock
	timestampLayout = "01/02/2006, 15:04:05"
)

// Service renders plain-text receipts. Formatting is pure: the same order
// record always yields byte-identical output; the timestamp comes from the
// record, never from the clock.
type Service struct {
	config *config.Config
}

// NewService creates a new receipt service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// Format renders the order receipt as a fixed-layout plain-text document
func (s *Service) Format(record *order.Record) string {
	var b strings.Builder

	s.writeHeader(&b)

	fmt.Fprintf(&b, "ORDER ID: %s\n", record.OrderID)
	fmt.Fprintf(&b, "Date & Time: %s\n\n", record.CreatedAt.Format(timestampLayout))

	address := record.Customer.Address
	if address == "" {
		address = "Not specified"
	}

	b.WriteString("CUSTOMER INFORMATION:\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Name: %s\n", record.Customer.FullName)
	fmt.Fprintf(&b, "Email: %s\n", record.Customer.Email)
	fmt.Fprintf(&b, "Phone: %s\n", record.Customer.Phone)
	fmt.Fprintf(&b, "Delivery Address: %s\n\n", address)

	b.WriteString("ORDER ITEMS:\n")
	b.WriteString(divider + "\n")
	for i, line := range record.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, line.Name)
		fmt.Fprintf(&b, "   Size: %s\n", line.Size)
		fmt.Fprintf(&b, "   Quantity: %d\n", line.Quantity)
		fmt.Fprintf(&b, "   Price: $%s\n", order.FormatAmount(line.TotalUSD()))
	}

	b.WriteString("\nORDER SUMMARY:\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Total Amount (USD): $%s\n", record.FormattedTotalUSD())
	b.WriteString("Payment Status: Pending\n")
	b.WriteString("Order Status: New Order\n\n")

	b.WriteString("NEXT STEPS:\n")
	b.WriteString(divider + "\n")
	b.WriteString("1. We'll contact you within 24 hours for payment details\n")
	b.WriteString("2. Estimated delivery: 2 weeks before your wedding date\n")
	b.WriteString("3. For any questions, contact us:\n")
	fmt.Fprintf(&b, "   - WhatsApp: %s\n", s.config.App.StoreWhatsApp)
	fmt.Fprintf(&b, "   - Email: %s\n", s.config.App.StoreEmail)
	fmt.Fprintf(&b, "   - Phone: %s\n\n", s.config.App.StorePhone)

	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Thank you for choosing %s!\n", s.config.App.StoreName)
	b.WriteString("Your special day deserves the best attire.\n")
	b.WriteString(divider + "\n")

	return b.String()
}

func (s *Service) writeHeader(b *strings.Builder) {
	bar := strings.Repeat("═", headerWidth)
	fmt.Fprintf(b, "╔%s╗\n", bar)
	fmt.Fprintf(b, "║%s║\n", centered(strings.ToUpper(s.config.App.StoreName), headerWidth))
	fmt.Fprintf(b, "║%s║\n", centered("ORDER RECEIPT", headerWidth))
	fmt.Fprintf(b, "╚%s╝\n\n", bar)
}

// centered pads text to width with spaces on both sides
func centered(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
