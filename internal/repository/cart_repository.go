package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cosmetics-catalog/internal/models"
)

// CartRepository persiste líneas de carrito en Mongo. Cada add-to-cart es un
// documento independiente; ver un carrito inexistente devuelve lista vacía.
type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) *CartRepository {
	return &CartRepository{
		collection: collection,
	}
}

func (r *CartRepository) AddItem(ctx context.Context, item models.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *CartRepository) ItemsByCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"cart_id": cartID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// ClearCart borra todas las líneas del carrito; se llama solo después de
// crear la orden.
func (r *CartRepository) ClearCart(ctx context.Context, cartID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{"cart_id": cartID})
	return err
}
