// internal/infrastructure/session/store.go
package session

import (
	"context"
	"errors"

	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

// ErrOrderNotFound is returned when a session holds no order with the
// requested ID (or it has expired with the session)
var ErrOrderNotFound = errors.New("order not found")

// Store keeps per-session shopper state: the open cart and recently built
// orders. Entries expire with the session TTL; nothing here is durable
// order storage.
type Store interface {
	// GetCart returns the session cart, or a fresh empty cart when none
	// exists yet
	GetCart(ctx context.Context, sessionID string) (*cart.Cart, error)
	SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error

	SaveOrder(ctx context.Context, sessionID string, record *order.Record) error
	GetOrder(ctx context.Context, sessionID, orderID string) (*order.Record, error)
}
