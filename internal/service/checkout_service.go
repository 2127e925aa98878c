package service

import (
	"context"
	"errors"
	"log"

	"cosmetics-catalog/internal/models"
	"cosmetics-catalog/internal/repository"
)

// CheckoutService convierte un carrito en una orden inmutable y consume el
// carrito. La secuencia leer→crear→borrar no corre en transacción: una línea
// agregada entre la lectura y el borrado no se factura pero queda borrada el
// próximo checkout; comportamiento heredado, sin locking.
type CheckoutService struct {
	catalog repository.CatalogSource
	carts   repository.CartStore
	orders  repository.OrderStore
}

func NewCheckoutService(catalog repository.CatalogSource, carts repository.CartStore, orders repository.OrderStore) *CheckoutService {
	return &CheckoutService{
		catalog: catalog,
		carts:   carts,
		orders:  orders,
	}
}

// Checkout crea la orden y devuelve su id. Carrito vacío es error del
// cliente; líneas cuyo producto ya no resuelve se omiten del total. El total
// siempre se recalcula con precios actuales, nunca se confía en el cliente.
func (s *CheckoutService) Checkout(ctx context.Context, cartID, email string) (string, error) {
	items, err := s.carts.ItemsByCart(ctx, cartID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrCartEmpty
	}

	var total float64
	for _, item := range items {
		product, err := s.catalog.ProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return "", err
		}
		total += product.Price * float64(item.Qty)
	}

	order := &models.Order{
		CartID: cartID,
		Items:  items,
		Total:  round2(total),
		Email:  email,
		Status: models.OrderStatusCreated,
	}

	orderID, err := s.orders.Create(ctx, order)
	if err != nil {
		return "", err
	}

	// La orden ya existe: si el borrado falla solo se loguea, no hay rollback
	if err := s.carts.ClearCart(ctx, cartID); err != nil {
		log.Println("⚠️ Failed to clear cart after checkout:", err)
	}

	return orderID, nil
}
