// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"

	"github.com/prestigeweddings/storefront-backend/internal/domain/catalog"
)

// Store is the slice of the session store the cart service needs. The
// session store implementations satisfy it; declaring it here keeps the
// domain package from importing infrastructure (which imports this package).
type Store interface {
	GetCart(ctx context.Context, sessionID string) (*Cart, error)
	SaveCart(ctx context.Context, sessionID string, c *Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
}

// Service handles cart business logic for shopper sessions
type Service struct {
	catalog *catalog.Catalog
	store   Store
}

// NewService creates a new cart service
func NewService(cat *catalog.Catalog, store Store) *Service {
	return &Service{
		catalog: cat,
		store:   store,
	}
}

// Response represents a shopping cart with items and summary
type Response struct {
	Lines  []Line `json:"lines"`
	Totals Totals `json:"totals"`
}

// AddToCartRequest represents an add-to-cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents an update-cart-item request. Quantity 0
// removes the line.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Response, error) {
	c, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.response(c), nil
}

// AddToCart adds a product+size to the session cart, merging into an
// existing line when the pair is already present
func (s *Service) AddToCart(ctx context.Context, sessionID string, req *AddToCartRequest) (*Response, error) {
	product, err := s.catalog.Get(req.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := c.Add(product, req.Size, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.store.SaveCart(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return s.response(c), nil
}

// UpdateItem sets the quantity of an existing line; quantity 0 removes it
func (s *Service) UpdateItem(ctx context.Context, sessionID, lineID string, quantity int) (*Response, error) {
	c, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !c.SetQuantity(lineID, quantity) {
		return nil, fmt.Errorf("item not found in cart")
	}

	if err := s.store.SaveCart(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return s.response(c), nil
}

// RemoveFromCart removes a line from the session cart. Removing a line that
// is not present leaves the cart unchanged.
func (s *Service) RemoveFromCart(ctx context.Context, sessionID, lineID string) (*Response, error) {
	c, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Remove(lineID)

	if err := s.store.SaveCart(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return s.response(c), nil
}

// ClearCart removes all items from the session cart
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.store.DeleteCart(ctx, sessionID)
}

// GetCartItemCount returns the sum of quantities in the session cart
func (s *Service) GetCartItemCount(ctx context.Context, sessionID string) (int, error) {
	c, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return 0, nil // treat a missing cart as empty
	}
	return c.ItemCount(), nil
}

func (s *Service) response(c *Cart) *Response {
	return &Response{
		Lines:  c.Snapshot(),
		Totals: c.CalculateTotals(),
	}
}
