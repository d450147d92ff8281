package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/catalog"
	"github.com/prestigeweddings/storefront-backend/internal/infrastructure/session"
)

func newTestService(t *testing.T) *cart.Service {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	return cart.NewService(catalog.Default(), store)
}

func TestServiceAddToCart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.AddToCart(ctx, "sess-1", &cart.AddToCartRequest{ProductID: "shirt", Size: "M", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.Equal(t, int64(7000), resp.Totals.SubtotalUSD)

	// same (product, size) merges; two rapid adds both land
	resp, err = svc.AddToCart(ctx, "sess-1", &cart.AddToCartRequest{ProductID: "shirt", Size: "M", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 3, resp.Lines[0].Quantity)
}

func TestServiceAddToCartUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddToCart(context.Background(), "sess-1", &cart.AddToCartRequest{ProductID: "tuxedo", Size: "M", Quantity: 1})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestServiceAddToCartMissingSize(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddToCart(context.Background(), "sess-1", &cart.AddToCartRequest{ProductID: "shirt", Quantity: 1})
	assert.ErrorIs(t, err, cart.ErrSizeRequired)
}

func TestServiceCartsAreSessionScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "sess-1", &cart.AddToCartRequest{ProductID: "shirt", Size: "M", Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.GetCart(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
}

func TestServiceUpdateAndRemove(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "sess-1", &cart.AddToCartRequest{ProductID: "shirt", Size: "M", Quantity: 2})
	require.NoError(t, err)

	resp, err := svc.UpdateItem(ctx, "sess-1", "shirt-M", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Totals.ItemCount)

	_, err = svc.UpdateItem(ctx, "sess-1", "no-such-line", 5)
	assert.Error(t, err)

	resp, err = svc.RemoveFromCart(ctx, "sess-1", "shirt-M")
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)

	// removing an absent line is not an error
	resp, err = svc.RemoveFromCart(ctx, "sess-1", "shirt-M")
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
}

func TestServiceClearAndCount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "sess-1", &cart.AddToCartRequest{ProductID: "shirt", Size: "M", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "sess-1", &cart.AddToCartRequest{ProductID: "sundress", Size: "S", Quantity: 1})
	require.NoError(t, err)

	count, err := svc.GetCartItemCount(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, svc.ClearCart(ctx, "sess-1"))

	count, err = svc.GetCartItemCount(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
