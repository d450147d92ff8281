package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/catalog"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
)

func newStore(t *testing.T, ttl time.Duration) *MemoryStore {
	t.Helper()
	s := NewMemoryStore(ttl)
	t.Cleanup(s.Close)
	return s
}

var shirt = catalog.Product{
	ID:       "shirt",
	Name:     "Tiger-Striped Short-Sleeved Shirt",
	PriceUSD: 3500,
	PriceKES: 450000,
}

func TestMemoryStoreGetCartReturnsEmptyCartWhenAbsent(t *testing.T) {
	s := newStore(t, time.Hour)

	c, err := s.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, c.IsEmpty())
	assert.False(t, c.CreatedAt.IsZero())
}

func TestMemoryStoreSaveAndGetCart(t *testing.T) {
	s := newStore(t, time.Hour)
	ctx := context.Background()

	c, err := s.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	_, err = c.Add(shirt, "M", 2)
	require.NoError(t, err)
	require.NoError(t, s.SaveCart(ctx, "sess-1", c))

	got, err := s.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "shirt-M", got.Lines[0].ID)
	assert.Equal(t, 2, got.Lines[0].Quantity)
}

func TestMemoryStoreCartsAreCopiedNotAliased(t *testing.T) {
	s := newStore(t, time.Hour)
	ctx := context.Background()

	c, _ := s.GetCart(ctx, "sess-1")
	_, _ = c.Add(shirt, "M", 2)
	require.NoError(t, s.SaveCart(ctx, "sess-1", c))

	// mutating the caller's cart must not leak into the store
	c.Clear()

	got, err := s.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)

	// and mutating a loaded cart must not leak either
	got.Lines[0].Quantity = 99
	again, err := s.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Lines[0].Quantity)
}

func TestMemoryStoreDeleteCart(t *testing.T) {
	s := newStore(t, time.Hour)
	ctx := context.Background()

	c, _ := s.GetCart(ctx, "sess-1")
	_, _ = c.Add(shirt, "M", 1)
	require.NoError(t, s.SaveCart(ctx, "sess-1", c))

	require.NoError(t, s.DeleteCart(ctx, "sess-1"))

	got, err := s.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	// deleting again is fine
	require.NoError(t, s.DeleteCart(ctx, "sess-1"))
}

func TestMemoryStoreCartExpiry(t *testing.T) {
	s := newStore(t, 10*time.Millisecond)
	ctx := context.Background()

	c, _ := s.GetCart(ctx, "sess-1")
	_, _ = c.Add(shirt, "M", 1)
	require.NoError(t, s.SaveCart(ctx, "sess-1", c))

	time.Sleep(20 * time.Millisecond)

	got, err := s.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestMemoryStoreSaveAndGetOrder(t *testing.T) {
	s := newStore(t, time.Hour)
	ctx := context.Background()

	record := &order.Record{
		OrderID:       "ORD-1718447400000-A1B2C3D4E",
		Lines:         []cart.Line{{ID: "shirt-M", ProductID: "shirt", Size: "M", Quantity: 2, PriceUSD: 3500}},
		TotalUSD:      7000,
		PaymentStatus: order.PaymentStatusPending,
		Status:        order.StatusNew,
	}
	require.NoError(t, s.SaveOrder(ctx, "sess-1", record))

	got, err := s.GetOrder(ctx, "sess-1", record.OrderID)
	require.NoError(t, err)
	assert.Equal(t, record.OrderID, got.OrderID)
	assert.Equal(t, int64(7000), got.TotalUSD)
}

func TestMemoryStoreOrdersAreSessionScoped(t *testing.T) {
	s := newStore(t, time.Hour)
	ctx := context.Background()

	record := &order.Record{OrderID: "ORD-1-AAAAAAAAA"}
	require.NoError(t, s.SaveOrder(ctx, "sess-1", record))

	_, err := s.GetOrder(ctx, "sess-2", record.OrderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStoreGetOrderUnknown(t *testing.T) {
	s := newStore(t, time.Hour)

	_, err := s.GetOrder(context.Background(), "sess-1", "ORD-0-XXXXXXXXX")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
