package repository

import (
	"context"

	"cosmetics-catalog/internal/models"
)

// CatalogSource es el camino de lectura del catálogo. Hay dos
// implementaciones, elegidas una sola vez al arrancar: ProductRepository
// (Mongo) y StaticCatalog (dataset en memoria). El pipeline de
// filtrado/ordenamiento corre igual sobre cualquiera de las dos.
type CatalogSource interface {
	Products(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id int) (*models.Product, error)
}

// CartStore persiste líneas de carrito.
type CartStore interface {
	AddItem(ctx context.Context, item models.CartItem) error
	ItemsByCart(ctx context.Context, cartID string) ([]models.CartItem, error)
	ClearCart(ctx context.Context, cartID string) error
}

// OrderStore persiste órdenes y devuelve el id asignado.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) (string, error)
}

// StaticCatalog sirve el catálogo desde un slice inmutable. Se usa cuando no
// hay MONGO_URI configurada o la conexión inicial falla.
type StaticCatalog struct {
	products []models.Product
}

func NewStaticCatalog(products []models.Product) *StaticCatalog {
	return &StaticCatalog{products: products}
}

func (s *StaticCatalog) Products(ctx context.Context) ([]models.Product, error) {
	// copia defensiva: los handlers no deben poder tocar el dataset
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *StaticCatalog) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// UnavailableStore implementa CartStore y OrderStore cuando no hay base de
// datos: toda mutación falla con ErrStoreUnavailable.
type UnavailableStore struct{}

func (UnavailableStore) AddItem(ctx context.Context, item models.CartItem) error {
	return ErrStoreUnavailable
}

func (UnavailableStore) ItemsByCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	return nil, ErrStoreUnavailable
}

func (UnavailableStore) ClearCart(ctx context.Context, cartID string) error {
	return ErrStoreUnavailable
}

func (UnavailableStore) Create(ctx context.Context, order *models.Order) (string, error) {
	return "", ErrStoreUnavailable
}
