package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestigeweddings/storefront-backend/internal/config"
	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

func testService() *Service {
	return NewService(&config.Config{
		App: config.AppConfig{
			StoreName:     "Prestige Weddings Kenya",
			StoreEmail:    "info@prestigeweddingskenya.com",
			StorePhone:    "+254 712 345 678",
			StoreWhatsApp: "+254 712 345 678",
		},
	})
}

func testRecord() *order.Record {
	return &order.Record{
		OrderID: "ORD-1718447400000-A1B2C3D4E",
		Customer: order.Customer{
			FullName: "Jane Wanjiku",
			Email:    "jane@example.com",
			Phone:    "+254712345678",
			Address:  "Westlands, Nairobi",
		},
		Lines: []cart.Line{
			{ID: "shirt-M", ProductID: "shirt", Name: "Tiger-Striped Short-Sleeved Shirt", PriceUSD: 3500, PriceKES: 450000, Size: "M", Quantity: 2},
			{ID: "sundress-S", ProductID: "sundress", Name: "Elegant Sundress for Ladies", PriceUSD: 4500, PriceKES: 585000, Size: "S", Quantity: 1},
		},
		TotalUSD:      11500,
		TotalKES:      1485000,
		PaymentStatus: order.PaymentStatusPending,
		Status:        order.StatusNew,
		CreatedAt:     time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestFormatIsPure(t *testing.T) {
	svc := testService()
	record := testRecord()

	first := svc.Format(record)
	second := svc.Format(record)

	assert.Equal(t, first, second)
}

func TestFormatContents(t *testing.T) {
	svc := testService()
	text := svc.Format(testRecord())

	assert.Contains(t, text, "PRESTIGE WEDDINGS KENYA")
	assert.Contains(t, text, "ORDER RECEIPT")
	assert.Contains(t, text, "ORDER ID: ORD-1718447400000-A1B2C3D4E")
	assert.Contains(t, text, "Date & Time: 06/15/2024, 10:30:00")

	assert.Contains(t, text, "Name: Jane Wanjiku")
	assert.Contains(t, text, "Delivery Address: Westlands, Nairobi")

	assert.Contains(t, text, "1. Tiger-Striped Short-Sleeved Shirt")
	assert.Contains(t, text, "   Size: M\n   Quantity: 2\n   Price: $70.00")
	assert.Contains(t, text, "2. Elegant Sundress for Ladies")
	assert.Contains(t, text, "   Size: S\n   Quantity: 1\n   Price: $45.00")

	assert.Contains(t, text, "Total Amount (USD): $115.00")
	assert.Contains(t, text, "Payment Status: Pending")
	assert.Contains(t, text, "Order Status: New Order")
	assert.Contains(t, text, "Thank you for choosing Prestige Weddings Kenya!")
}

func TestFormatEmptyAddressFallback(t *testing.T) {
	svc := testService()
	record := testRecord()
	record.Customer.Address = ""

	text := svc.Format(record)
	assert.Contains(t, text, "Delivery Address: Not specified")
}

func TestFormatTimestampComesFromRecord(t *testing.T) {
	svc := testService()
	record := testRecord()
	record.CreatedAt = time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

	text := svc.Format(record)
	assert.Contains(t, text, "Date & Time: 01/02/2023, 03:04:05")
}

func TestFormatHeaderBox(t *testing.T) {
	svc := testService()
	text := svc.Format(testRecord())

	lines := strings.Split(text, "\n")
	require.Greater(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "╔"))
	assert.True(t, strings.HasSuffix(lines[0], "╗"))
	assert.True(t, strings.HasPrefix(lines[3], "╚"))
	assert.True(t, strings.HasSuffix(lines[3], "╝"))

	// box lines all span the same width
	assert.Equal(t, len([]rune(lines[0])), len([]rune(lines[1])))
	assert.Equal(t, len([]rune(lines[0])), len([]rune(lines[2])))
	assert.Equal(t, len([]rune(lines[0])), len([]rune(lines[3])))
}

func TestCentered(t *testing.T) {
	assert.Equal(t, "  ab  ", centered("ab", 6))
	assert.Equal(t, " abc  ", centered("abc", 6))
	assert.Equal(t, "abcdef", centered("abcdefgh", 6))
}
