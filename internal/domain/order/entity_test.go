package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "115.00", FormatAmount(11500))
	assert.Equal(t, "35.00", FormatAmount(3500))
	assert.Equal(t, "0.05", FormatAmount(5))
	assert.Equal(t, "0.00", FormatAmount(0))
}

func TestReceiptFilename(t *testing.T) {
	r := Record{OrderID: "ORD-1718447400000-A1B2C3D4E"}
	assert.Equal(t, "Receipt_ORD-1718447400000-A1B2C3D4E.txt", r.ReceiptFilename())
}

func TestFormattedTotalUSD(t *testing.T) {
	r := Record{TotalUSD: 11500}
	assert.Equal(t, "115.00", r.FormattedTotalUSD())
}
