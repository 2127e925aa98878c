package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmetics-catalog/internal/catalog"
	"cosmetics-catalog/internal/models"
	"cosmetics-catalog/internal/repository"
)

// memCartStore es un CartStore en memoria para los tests de servicio.
type memCartStore struct {
	items    []models.CartItem
	clearErr error
}

func (m *memCartStore) AddItem(ctx context.Context, item models.CartItem) error {
	m.items = append(m.items, item)
	return nil
}

func (m *memCartStore) ItemsByCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range m.items {
		if item.CartID == cartID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memCartStore) ClearCart(ctx context.Context, cartID string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	kept := m.items[:0]
	for _, item := range m.items {
		if item.CartID != cartID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

// memOrderStore es un OrderStore en memoria.
type memOrderStore struct {
	orders []models.Order
}

func (m *memOrderStore) Create(ctx context.Context, order *models.Order) (string, error) {
	m.orders = append(m.orders, *order)
	return fmt.Sprintf("order-%d", len(m.orders)), nil
}

func newCartService() (*CartService, *memCartStore) {
	carts := &memCartStore{}
	source := repository.NewStaticCatalog(catalog.FallbackProducts())
	return NewCartService(source, carts), carts
}

func TestStartGeneratesUniqueIDs(t *testing.T) {
	svc, carts := newCartService()

	a := svc.Start()
	b := svc.Start()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	// Start no crea estado en el store
	assert.Empty(t, carts.items)
}

func TestAddUnknownProductFails(t *testing.T) {
	svc, carts := newCartService()

	err := svc.Add(context.Background(), "cart-a", 999, 1)

	require.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Empty(t, carts.items)
}

func TestAddClampsQtyToOne(t *testing.T) {
	svc, carts := newCartService()

	require.NoError(t, svc.Add(context.Background(), "cart-a", 1, 0))
	require.NoError(t, svc.Add(context.Background(), "cart-a", 2, -3))

	require.Len(t, carts.items, 2)
	assert.Equal(t, 1, carts.items[0].Qty)
	assert.Equal(t, 1, carts.items[1].Qty)
}

func TestAddDoesNotMergeRepeatedProducts(t *testing.T) {
	svc, carts := newCartService()

	require.NoError(t, svc.Add(context.Background(), "cart-a", 1, 2))
	require.NoError(t, svc.Add(context.Background(), "cart-a", 1, 3))

	// dos adds del mismo producto son dos líneas
	require.Len(t, carts.items, 2)
	assert.Equal(t, 2, carts.items[0].Qty)
	assert.Equal(t, 3, carts.items[1].Qty)
}

func TestViewEmptyCart(t *testing.T) {
	svc, _ := newCartService()

	view, err := svc.View(context.Background(), "no-such-cart")

	require.NoError(t, err)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
}

func TestViewTotalsWithCurrentPrices(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "cart-a", 1, 2)) // 2 × 24.99
	require.NoError(t, svc.Add(ctx, "cart-a", 2, 1)) // 1 × 19.5

	view, err := svc.View(ctx, "cart-a")
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 69.48, view.Total)

	first := view.Items[0]
	assert.Equal(t, 1, first.ProductID)
	assert.Equal(t, "Sandalwood Glow Serum", first.Name)
	assert.Equal(t, 24.99, first.Price)
	assert.Equal(t, 2, first.Qty)
	assert.NotEmpty(t, first.Image)
}

func TestViewSkipsDanglingProducts(t *testing.T) {
	svc, carts := newCartService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "cart-a", 2, 1))
	// línea huérfana insertada directo al store, su producto ya no existe
	carts.items = append(carts.items, models.CartItem{CartID: "cart-a", ProductID: 999, Qty: 4})

	view, err := svc.View(ctx, "cart-a")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].ProductID)
	assert.Equal(t, 19.5, view.Total)
}

func TestViewDoesNotMixCarts(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "cart-a", 1, 1))
	require.NoError(t, svc.Add(ctx, "cart-b", 2, 1))

	view, err := svc.View(ctx, "cart-a")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].ProductID)
}

func TestCartWritesWithoutStore(t *testing.T) {
	source := repository.NewStaticCatalog(catalog.FallbackProducts())
	svc := NewCartService(source, repository.UnavailableStore{})

	err := svc.Add(context.Background(), "cart-a", 1, 1)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = svc.View(context.Background(), "cart-a")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}
