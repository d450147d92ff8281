// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/prestigeweddings/storefront-backend/internal/domain/catalog"
)

// ErrSizeRequired is returned when an item is added without a size selection
var ErrSizeRequired = errors.New("size selection required")

// Line represents one product+size combination in the cart. A cart holds at
// most one line per (product, size) pair; adding the same pair again
// increments the quantity.
type Line struct {
	ID        string `json:"id"` // "<product_id>-<size>"
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	PriceUSD  int64  `json:"price_usd"` // per unit, minor units
	PriceKES  int64  `json:"price_kes"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// TotalUSD returns the line total in USD minor units
func (l Line) TotalUSD() int64 {
	return l.PriceUSD * int64(l.Quantity)
}

// TotalKES returns the line total in KES minor units
func (l Line) TotalKES() int64 {
	return l.PriceKES * int64(l.Quantity)
}

// Cart is an ordered list of lines, insertion order preserved. It is plain
// session state with no I/O of its own; the service layer loads and saves it
// through the session store.
type Cart struct {
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	LineCount   int   `json:"line_count"`   // number of distinct lines
	ItemCount   int   `json:"item_count"`   // sum of all quantities
	SubtotalUSD int64 `json:"subtotal_usd"` // minor units
	SubtotalKES int64 `json:"subtotal_kes"`
}

// Add puts a product+size into the cart. An empty size is rejected, a
// quantity below 1 is clamped to 1, and an existing (product, size) line is
// incremented instead of duplicated. Returns the updated line.
func (c *Cart) Add(product catalog.Product, size string, quantity int) (Line, error) {
	if size == "" {
		return Line{}, ErrSizeRequired
	}
	if quantity < 1 {
		quantity = 1
	}

	lineID := fmt.Sprintf("%s-%s", product.ID, size)
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity += quantity
			return c.Lines[i], nil
		}
	}

	line := Line{
		ID:        lineID,
		ProductID: product.ID,
		Name:      product.Name,
		PriceUSD:  product.PriceUSD,
		PriceKES:  product.PriceKES,
		Size:      size,
		Quantity:  quantity,
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// SetQuantity replaces the quantity of an existing line; quantity 0 removes
// it. Returns false when no line matches.
func (c *Cart) SetQuantity(lineID string, quantity int) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			if quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// Remove deletes the line with the given ID. Removing an absent line is a
// no-op, not an error.
func (c *Cart) Remove(lineID string) {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart holds no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the sum of quantities across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// SubtotalUSD returns the USD subtotal in minor units, recomputed from the
// current lines on every call
func (c *Cart) SubtotalUSD() int64 {
	var subtotal int64
	for _, line := range c.Lines {
		subtotal += line.TotalUSD()
	}
	return subtotal
}

// SubtotalKES returns the KES subtotal in minor units
func (c *Cart) SubtotalKES() int64 {
	var subtotal int64
	for _, line := range c.Lines {
		subtotal += line.TotalKES()
	}
	return subtotal
}

// CalculateTotals returns all derived aggregates in one struct
func (c *Cart) CalculateTotals() Totals {
	return Totals{
		LineCount:   len(c.Lines),
		ItemCount:   c.ItemCount(),
		SubtotalUSD: c.SubtotalUSD(),
		SubtotalKES: c.SubtotalKES(),
	}
}

// Snapshot returns a copy of the lines. Mutating the cart afterwards does
// not affect the returned slice.
func (c *Cart) Snapshot() []Line {
	out := make([]Line, len(c.Lines))
	copy(out, c.Lines)
	return out
}
