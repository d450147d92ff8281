// internal/domain/catalog/catalog.go
package catalog

import "errors"

// ErrProductNotFound is returned when a product ID is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// Product represents a purchasable product with a fixed dual-currency price.
// Prices are stored in minor units (cents).
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceUSD    int64  `json:"price_usd"`
	PriceKES    int64  `json:"price_kes"`
}

// Catalog is the fixed set of purchasable products. Products are defined at
// startup and never created or destroyed at runtime.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New creates a catalog from the given products, preserving their order
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// Default returns the catalog the storefront ships with
func Default() *Catalog {
	return New([]Product{
		{
			ID:          "shirt",
			Name:        "Tiger-Striped Short-Sleeved Shirt",
			Description: "Premium tiger-striped shirt",
			PriceUSD:    3500,
			PriceKES:    450000,
		},
		{
			ID:          "sundress",
			Name:        "Elegant Sundress for Ladies",
			Description: "Beautiful elegant sundress",
			PriceUSD:    4500,
			PriceKES:    585000,
		},
	})
}

// Get returns the product with the given ID
func (c *Catalog) Get(productID string) (Product, error) {
	p, ok := c.byID[productID]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// List returns all products in catalog order
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
