// internal/infrastructure/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

// RedisStore keeps session carts and orders as JSON values in Redis with a
// sliding TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func orderKey(sessionID, orderID string) string {
	return fmt.Sprintf("order:session:%s:%s", sessionID, orderID)
}

// GetCart retrieves the session cart, returning a fresh empty cart when the
// key does not exist
func (s *RedisStore) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &cart.Cart{CreatedAt: now, UpdatedAt: now}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load session cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode session cart: %w", err)
	}
	return &c, nil
}

// SaveCart stores the cart and refreshes the session TTL
func (s *RedisStore) SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error {
	c.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode session cart: %w", err)
	}
	return s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err()
}

// DeleteCart removes the session cart
func (s *RedisStore) DeleteCart(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

// SaveOrder retains a built order for the session lifetime so the receipt
// and invoice can be fetched after checkout
func (s *RedisStore) SaveOrder(ctx context.Context, sessionID string, record *order.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	return s.client.Set(ctx, orderKey(sessionID, record.OrderID), data, s.ttl).Err()
}

// GetOrder retrieves a session order by ID
func (s *RedisStore) GetOrder(ctx context.Context, sessionID, orderID string) (*order.Record, error) {
	data, err := s.client.Get(ctx, orderKey(sessionID, orderID)).Result()
	if err == redis.Nil {
		return nil, ErrOrderNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	var record order.Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &record, nil
}
