package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"cosmetics-catalog/internal/models"
	"cosmetics-catalog/internal/repository"
)

// ErrCartEmpty se devuelve al intentar checkout de un carrito sin líneas.
var ErrCartEmpty = errors.New("cart is empty")

// CartService administra la identidad del carrito y sus líneas. Un carrito
// sin líneas no existe en el store: Start solo reparte un id.
type CartService struct {
	catalog repository.CatalogSource
	carts   repository.CartStore
}

func NewCartService(catalog repository.CatalogSource, carts repository.CartStore) *CartService {
	return &CartService{
		catalog: catalog,
		carts:   carts,
	}
}

// Start reparte un id de carrito nuevo, globalmente único. No toca el store.
func (s *CartService) Start() string {
	return uuid.NewString()
}

// Add valida el producto y agrega una línea nueva. Cantidades no positivas
// se ajustan a 1; líneas repetidas del mismo producto no se fusionan.
func (s *CartService) Add(ctx context.Context, cartID string, productID, qty int) error {
	if _, err := s.catalog.ProductByID(ctx, productID); err != nil {
		return err
	}

	if qty < 1 {
		qty = 1
	}

	return s.carts.AddItem(ctx, models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Qty:       qty,
	})
}

// View resuelve las líneas contra el catálogo actual. Líneas cuyo producto
// ya no resuelve se omiten, no rompen la vista. El total usa precios
// actuales, no los del momento del add.
func (s *CartService) View(ctx context.Context, cartID string) (*models.CartView, error) {
	items, err := s.carts.ItemsByCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	view := &models.CartView{Items: []models.CartLine{}}
	var total float64
	for _, item := range items {
		product, err := s.catalog.ProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		view.Items = append(view.Items, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       item.Qty,
			Image:     product.Image,
		})
		total += product.Price * float64(item.Qty)
	}

	view.Total = round2(total)
	return view, nil
}

// round2 redondea a 2 decimales (centavos).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
