package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmetics-catalog/internal/catalog"
	"cosmetics-catalog/internal/models"
	"cosmetics-catalog/internal/repository"
)

func newCheckoutFixture() (*CartService, *CheckoutService, *memCartStore, *memOrderStore) {
	source := repository.NewStaticCatalog(catalog.FallbackProducts())
	carts := &memCartStore{}
	orders := &memOrderStore{}
	return NewCartService(source, carts), NewCheckoutService(source, carts, orders), carts, orders
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	_, checkout, _, orders := newCheckoutFixture()

	_, err := checkout.Checkout(context.Background(), "empty-cart", "")

	require.ErrorIs(t, err, ErrCartEmpty)
	assert.Empty(t, orders.orders)
}

func TestCheckoutCreatesOrderAndConsumesCart(t *testing.T) {
	cartSvc, checkout, _, orders := newCheckoutFixture()
	ctx := context.Background()

	cartID := cartSvc.Start()
	require.NoError(t, cartSvc.Add(ctx, cartID, 1, 2))
	require.NoError(t, cartSvc.Add(ctx, cartID, 2, 1))

	orderID, err := checkout.Checkout(ctx, cartID, "buyer@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	// total = 2×24.99 + 19.5, recalculado en servidor
	require.Len(t, orders.orders, 1)
	order := orders.orders[0]
	assert.Equal(t, cartID, order.CartID)
	assert.Equal(t, 69.48, order.Total)
	assert.Equal(t, "buyer@example.com", order.Email)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	require.Len(t, order.Items, 2)

	// el carrito quedó consumido
	view, err := cartSvc.View(ctx, cartID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)

	// re-checkout del mismo carrito se comporta como carrito vacío
	_, err = checkout.Checkout(ctx, cartID, "")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutSkipsDanglingProducts(t *testing.T) {
	cartSvc, checkout, carts, orders := newCheckoutFixture()
	ctx := context.Background()

	require.NoError(t, cartSvc.Add(ctx, "cart-a", 2, 1))
	carts.items = append(carts.items, models.CartItem{CartID: "cart-a", ProductID: 999, Qty: 5})

	_, err := checkout.Checkout(ctx, "cart-a", "")
	require.NoError(t, err)

	// la línea huérfana no se factura pero queda en el snapshot crudo
	require.Len(t, orders.orders, 1)
	assert.Equal(t, 19.5, orders.orders[0].Total)
	assert.Len(t, orders.orders[0].Items, 2)
}

func TestCheckoutReturnsOrderWhenClearFails(t *testing.T) {
	cartSvc, checkout, carts, orders := newCheckoutFixture()
	ctx := context.Background()

	require.NoError(t, cartSvc.Add(ctx, "cart-a", 3, 1))
	carts.clearErr = errors.New("delete failed")

	// la orden ya existe: el fallo del borrado no revierte nada
	orderID, err := checkout.Checkout(ctx, "cart-a", "")
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)
	assert.Len(t, orders.orders, 1)
}

func TestCheckoutWithoutStore(t *testing.T) {
	source := repository.NewStaticCatalog(catalog.FallbackProducts())
	checkout := NewCheckoutService(source, repository.UnavailableStore{}, repository.UnavailableStore{})

	_, err := checkout.Checkout(context.Background(), "cart-a", "")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 69.48, round2(2*24.99+19.5))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 10.56, round2(10.556))
}
