// internal/infrastructure/session/memory.go
package session

import (
	"context"
	"sync"
	"time"

	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

// CleanupInterval is how often the background expiry sweep runs
const CleanupInterval = 30 * time.Second

type memoryCart struct {
	cart      *cart.Cart
	expiresAt time.Time
}

type memoryOrder struct {
	record    *order.Record
	expiresAt time.Time
}

// MemoryStore implements Store with in-process storage. Used for tests and
// single-node runs without Redis.
type MemoryStore struct {
	mu     sync.RWMutex
	ttl    time.Duration
	carts  map[string]*memoryCart  // sessionID -> cart
	orders map[string]*memoryOrder // sessionID:orderID -> order

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewMemoryStore creates an in-memory session store with a background
// expiry sweep
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:         ttl,
		carts:       make(map[string]*memoryCart),
		orders:      make(map[string]*memoryOrder),
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// Close stops the expiry sweep
func (s *MemoryStore) Close() {
	close(s.stopCleanup)
	s.wg.Wait()
}

func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireSessions()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) expireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, entry := range s.carts {
		if now.After(entry.expiresAt) {
			delete(s.carts, id)
		}
	}
	for key, entry := range s.orders {
		if now.After(entry.expiresAt) {
			delete(s.orders, key)
		}
	}
}

// GetCart returns a copy of the session cart, or a fresh empty cart
func (s *MemoryStore) GetCart(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.carts[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		now := time.Now().UTC()
		return &cart.Cart{CreatedAt: now, UpdatedAt: now}, nil
	}

	c := *entry.cart
	c.Lines = entry.cart.Snapshot()
	return &c, nil
}

// SaveCart stores a copy of the cart and refreshes the session TTL
func (s *MemoryStore) SaveCart(_ context.Context, sessionID string, c *cart.Cart) error {
	c.UpdatedAt = time.Now().UTC()

	stored := *c
	stored.Lines = c.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = &memoryCart{
		cart:      &stored,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// DeleteCart removes the session cart
func (s *MemoryStore) DeleteCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// SaveOrder retains a built order for the session lifetime
func (s *MemoryStore) SaveOrder(_ context.Context, sessionID string, record *order.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[sessionID+":"+record.OrderID] = &memoryOrder{
		record:    record,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// GetOrder retrieves a session order by ID
func (s *MemoryStore) GetOrder(_ context.Context, sessionID, orderID string) (*order.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.orders[sessionID+":"+orderID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrOrderNotFound
	}
	return entry.record, nil
}
