// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
)

// Status represents the order status
type Status string

const (
	StatusNew Status = "new"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
)

// Customer holds the checkout form fields after validation. Phone carries
// the configured dialing prefix.
type Customer struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Record is an immutable snapshot of a completed checkout. It is kept only
// in the shopper's session, never in durable storage.
type Record struct {
	OrderID       string        `json:"order_id"`
	Customer      Customer      `json:"customer"`
	Lines         []cart.Line   `json:"lines"`
	TotalUSD      int64         `json:"total_usd"` // minor units
	TotalKES      int64         `json:"total_kes"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Status        Status        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// FormattedTotalUSD returns the USD total as a 2-decimal string
func (r *Record) FormattedTotalUSD() string {
	return FormatAmount(r.TotalUSD)
}

// ReceiptFilename returns the download filename for the plain-text receipt
func (r *Record) ReceiptFilename() string {
	return fmt.Sprintf("Receipt_%s.txt", r.OrderID)
}

// FormatAmount renders a minor-unit amount with exactly 2 decimal places
func FormatAmount(minorUnits int64) string {
	return fmt.Sprintf("%.2f", float64(minorUnits)/100)
}
