package cart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestigeweddings/storefront-backend/internal/domain/catalog"
)

var (
	shirt = catalog.Product{
		ID:       "shirt",
		Name:     "Tiger-Striped Short-Sleeved Shirt",
		PriceUSD: 3500,
		PriceKES: 450000,
	}
	sundress = catalog.Product{
		ID:       "sundress",
		Name:     "Elegant Sundress for Ladies",
		PriceUSD: 4500,
		PriceKES: 585000,
	}
)

func TestAddMergesSameProductAndSize(t *testing.T) {
	var c Cart

	line, err := c.Add(shirt, "M", 2)
	require.NoError(t, err)
	assert.Equal(t, "shirt-M", line.ID)
	assert.Equal(t, 2, line.Quantity)

	line, err = c.Add(shirt, "M", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	// still exactly one line for the (product, size) pair
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.ItemCount())
}

func TestAddDifferentSizesCreateSeparateLines(t *testing.T) {
	var c Cart

	_, err := c.Add(shirt, "M", 1)
	require.NoError(t, err)
	_, err = c.Add(shirt, "L", 1)
	require.NoError(t, err)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "shirt-M", c.Lines[0].ID)
	assert.Equal(t, "shirt-L", c.Lines[1].ID)
}

func TestAddClampsQuantityToOne(t *testing.T) {
	var c Cart

	line, err := c.Add(shirt, "M", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	line, err = c.Add(sundress, "S", -5)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddRequiresSize(t *testing.T) {
	var c Cart

	_, err := c.Add(shirt, "", 1)
	assert.ErrorIs(t, err, ErrSizeRequired)
	assert.True(t, c.IsEmpty())
}

func TestInsertionOrderPreserved(t *testing.T) {
	var c Cart

	_, _ = c.Add(sundress, "S", 1)
	_, _ = c.Add(shirt, "M", 1)
	_, _ = c.Add(sundress, "M", 1)

	require.Len(t, c.Lines, 3)
	assert.Equal(t, []string{"sundress-S", "shirt-M", "sundress-M"},
		[]string{c.Lines[0].ID, c.Lines[1].ID, c.Lines[2].ID})
}

func TestRemove(t *testing.T) {
	var c Cart

	_, _ = c.Add(shirt, "M", 2)
	_, _ = c.Add(sundress, "S", 1)

	c.Remove("shirt-M")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.ItemCount())
	assert.Equal(t, int64(4500), c.SubtotalUSD())

	// removing an absent line is a no-op
	c.Remove("shirt-M")
	c.Remove("no-such-line")
	assert.Len(t, c.Lines, 1)
}

func TestSetQuantity(t *testing.T) {
	var c Cart

	_, _ = c.Add(shirt, "M", 2)

	require.True(t, c.SetQuantity("shirt-M", 7))
	assert.Equal(t, 7, c.Lines[0].Quantity)

	// zero removes the line
	require.True(t, c.SetQuantity("shirt-M", 0))
	assert.True(t, c.IsEmpty())

	assert.False(t, c.SetQuantity("shirt-M", 1))
}

func TestSubtotalsRecomputedFromLines(t *testing.T) {
	var c Cart

	_, _ = c.Add(shirt, "M", 2)    // 2 x $35.00
	_, _ = c.Add(sundress, "S", 1) // 1 x $45.00

	assert.Equal(t, int64(11500), c.SubtotalUSD())
	assert.Equal(t, "115.00", formatUSD(c.SubtotalUSD()))
	assert.Equal(t, int64(1485000), c.SubtotalKES())

	// subtotal follows every mutation, no cached value
	c.Remove("sundress-S")
	assert.Equal(t, int64(7000), c.SubtotalUSD())

	totals := c.CalculateTotals()
	assert.Equal(t, 1, totals.LineCount)
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, int64(7000), totals.SubtotalUSD)
}

func TestClear(t *testing.T) {
	var c Cart

	_, _ = c.Add(shirt, "M", 2)
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, int64(0), c.SubtotalUSD())
}

func TestSnapshotDoesNotAliasCart(t *testing.T) {
	var c Cart

	_, _ = c.Add(shirt, "M", 2)
	snapshot := c.Snapshot()

	c.Clear()
	_, _ = c.Add(sundress, "S", 9)

	require.Len(t, snapshot, 1)
	assert.Equal(t, "shirt-M", snapshot[0].ID)
	assert.Equal(t, 2, snapshot[0].Quantity)
}

func formatUSD(minorUnits int64) string {
	return fmt.Sprintf("%.2f", float64(minorUnits)/100)
}
